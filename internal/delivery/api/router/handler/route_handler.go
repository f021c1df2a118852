package handler

import (
	"net/http"
	"strings"

	"ridingcourse/internal/delivery/api/middleware"
	"ridingcourse/internal/delivery/api/response"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/infra/metrics"
	"ridingcourse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const geoJSONContentType = "application/geo+json"

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC usecase.RouteUsecase
	StatsUC usecase.RouteStatsUsecase
	Metrics *metrics.Metrics
}

// RouteHandler serves route CRUD, likes, open tracking and exports.
type RouteHandler struct {
	routeUC usecase.RouteUsecase
	statsUC usecase.RouteStatsUsecase
	metrics *metrics.Metrics
}

func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC: params.RouteUC,
		statsUC: params.StatsUC,
		metrics: params.Metrics,
	}
}

// Create stores a route; the author is the optional current user.
func (h *RouteHandler) Create(c echo.Context) error {
	var input usecase.CreateRouteInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	route, err := h.routeUC.CreateRoute(c.Request().Context(), middleware.GetOptionalUserID(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toRouteView(route))
}

func (h *RouteHandler) List(c echo.Context) error {
	var input usecase.ListRoutesInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	routes, err := h.routeUC.ListRoutes(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRouteViews(routes))
}

func (h *RouteHandler) Get(c echo.Context) error {
	routeID, err := pathID(c)
	if err != nil {
		return err
	}

	route, err := h.routeUC.GetRoute(c.Request().Context(), routeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRouteView(route))
}

// Update applies a partial update from the author.
func (h *RouteHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}
	routeID, err := pathID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateRouteInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	route, err := h.routeUC.UpdateRoute(c.Request().Context(), userID, routeID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRouteView(route))
}

func (h *RouteHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}
	routeID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.routeUC.DeleteRoute(c.Request().Context(), userID, routeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"ok": true})
}

func (h *RouteHandler) Like(c echo.Context) error {
	return h.toggleLike(c, h.routeUC.LikeRoute)
}

func (h *RouteHandler) Unlike(c echo.Context) error {
	return h.toggleLike(c, h.routeUC.UnlikeRoute)
}

func (h *RouteHandler) toggleLike(c echo.Context, toggle likeFunc) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}
	routeID, err := pathID(c)
	if err != nil {
		return err
	}

	output, err := toggle(c.Request().Context(), userID, routeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

func (h *RouteHandler) Liked(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}
	routeID, err := pathID(c)
	if err != nil {
		return err
	}

	liked, err := h.routeUC.IsRouteLiked(c.Request().Context(), userID, routeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"liked": liked})
}

// TrackOpen records an "open in map app" action. The body is optional.
func (h *RouteHandler) TrackOpen(c echo.Context) error {
	routeID, err := pathID(c)
	if err != nil {
		return err
	}

	var input usecase.TrackOpenInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}
	input.UserAgent = c.Request().UserAgent()
	input.Referrer = c.Request().Referer()
	if input.Platform == "" {
		input.Platform = platformFromUserAgent(input.UserAgent)
	}

	openCount, err := h.routeUC.TrackOpen(c.Request().Context(), middleware.GetOptionalUserID(c), routeID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.metrics.RouteOpens.WithLabelValues(strings.ToLower(strings.TrimSpace(input.Platform))).Inc()

	return response.Success(c, http.StatusOK, map[string]int{"open_count": openCount})
}

// Opens returns the daily open rollup, ?days=N (default 30).
func (h *RouteHandler) Opens(c echo.Context) error {
	routeID, err := pathID(c)
	if err != nil {
		return err
	}

	var input usecase.DailyOpensInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	rows, err := h.statsUC.DailyOpens(c.Request().Context(), routeID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*DailyOpensView, len(rows))
	for i, row := range rows {
		views[i] = toDailyOpensView(row)
	}

	return response.Success(c, http.StatusOK, views)
}

// QRCode renders the route's share link as a PNG.
func (h *RouteHandler) QRCode(c echo.Context) error {
	routeID, err := pathID(c)
	if err != nil {
		return err
	}

	png, err := h.routeUC.RouteQRCode(c.Request().Context(), routeID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=300")

	return c.Blob(http.StatusOK, "image/png", png)
}

// GeoJSON returns a bare FeatureCollection so map clients can load it directly.
func (h *RouteHandler) GeoJSON(c echo.Context) error {
	routeID, err := pathID(c)
	if err != nil {
		return err
	}

	fc, err := h.routeUC.RouteGeoJSON(c.Request().Context(), routeID)
	if err != nil {
		return errors.WithStack(err)
	}

	body, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshal geojson")
	}

	return c.Blob(http.StatusOK, geoJSONContentType, body)
}

// platformFromUserAgent classifies the client coarsely for open statistics.
func platformFromUserAgent(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"):
		return "ios"
	case strings.Contains(ua, "android"):
		return "android"
	case ua == "":
		return "unknown"
	default:
		return "web"
	}
}
