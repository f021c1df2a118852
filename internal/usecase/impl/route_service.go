package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ridingcourse/internal/deeplink"
	deliverycontext "ridingcourse/internal/delivery/context"
	"ridingcourse/internal/domain/entity"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/repository"
	"ridingcourse/internal/domain/service"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

type routeService struct {
	txManager repository.TransactionManager
	routeRepo repository.RouteRepository
	routing   usecase.RoutingUsecase
	qrCode    service.QRCodeService
	publisher service.EventPublisher
	logger    *slog.Logger
}

// RouteServiceParams holds dependencies for RouteService, injected by Fx.
type RouteServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	RouteRepo repository.RouteRepository
	Routing   usecase.RoutingUsecase
	QRCode    service.QRCodeService
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewRouteService creates the route usecase.
func NewRouteService(params RouteServiceParams) usecase.RouteUsecase {
	return &routeService{
		txManager: params.TxManager,
		routeRepo: params.RouteRepo,
		routing:   params.Routing,
		qrCode:    params.QRCode,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *routeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRoute stores a route. Missing length or duration is estimated from the points.
func (srv *routeService) CreateRoute(ctx context.Context, authorID *uuid.UUID, input *usecase.CreateRouteInput) (*entity.Route, error) {
	title := strings.TrimSpace(input.Title)
	openURL := strings.TrimSpace(input.OpenURL)
	if title == "" || openURL == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title and open_url are required")
	}

	surface, traffic, err := parseConditions(input.Surface, input.Traffic)
	if err != nil {
		return nil, err
	}

	route := &entity.Route{
		AuthorID:        authorID,
		Title:           title,
		Summary:         input.Summary,
		Region1:         strings.TrimSpace(input.Region1),
		Region2:         strings.TrimSpace(input.Region2),
		LengthKm:        input.LengthKm,
		DurationMin:     input.DurationMin,
		StarsScenery:    input.StarsScenery,
		StarsDifficulty: input.StarsDifficulty,
		Surface:         surface,
		Traffic:         traffic,
		Speedbump:       input.Speedbump,
		Enforcement:     input.Enforcement,
		Signal:          input.Signal,
		TagsBitmask:     input.TagsBitmask,
		OpenURL:         openURL,
		NmapURL:         strings.TrimSpace(input.NmapURL),
		Points:          toRoutePoints(input.Points),
	}

	if err := srv.fillEstimate(ctx, route, input.Modality); err != nil {
		return nil, err
	}

	if err := srv.routeRepo.Create(ctx, route); err != nil {
		srv.log(ctx).Error("Failed to create route", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create route")
	}

	srv.log(ctx).Info("Route created", slog.Any("routeID", route.ID), slog.Int("points", len(route.Points)))

	return route, nil
}

// fillEstimate sets LengthKm and DurationMin when absent and at least two points are known.
func (srv *routeService) fillEstimate(ctx context.Context, route *entity.Route, modality string) error {
	if (route.LengthKm != nil && route.DurationMin != nil) || len(route.Points) < 2 {
		return nil
	}

	coords := make([]usecase.Coordinate, len(route.Points))
	for i, p := range route.Points {
		coords[i] = usecase.Coordinate{Lat: p.Lat, Lng: p.Lng}
	}

	mod, _ := deeplink.ParseModality(modality)
	estimate, err := srv.routing.EstimatePath(ctx, coords, mod)
	if err != nil {
		return err
	}

	if route.LengthKm == nil {
		route.LengthKm = &estimate.DistanceKm
	}
	if route.DurationMin == nil {
		route.DurationMin = &estimate.DurationMin
	}

	return nil
}

func (srv *routeService) ListRoutes(ctx context.Context, input *usecase.ListRoutesInput) ([]*entity.Route, error) {
	sort := entity.RouteSort(input.Sort)
	switch sort {
	case entity.RouteSortLatest, entity.RouteSortPopular, entity.RouteSortComments, entity.RouteSortOpens:
	default:
		sort = entity.RouteSortLatest
	}

	routes, err := srv.routeRepo.List(ctx, entity.RouteFilter{
		Region1: strings.TrimSpace(input.Region1),
		Tag:     input.Tag,
		Sort:    sort,
		Limit:   input.Limit,
		Offset:  input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list routes")
	}

	return routes, nil
}

func (srv *routeService) GetRoute(ctx context.Context, routeID uuid.UUID) (*entity.Route, error) {
	return findRoute(ctx, srv.routeRepo, routeID)
}

// UpdateRoute applies a partial update. Only the author may update.
func (srv *routeService) UpdateRoute(ctx context.Context, userID, routeID uuid.UUID, input *usecase.UpdateRouteInput) (*entity.Route, error) {
	route, err := srv.ownedRoute(ctx, userID, routeID)
	if err != nil {
		return nil, err
	}

	if err := applyRouteUpdate(route, input); err != nil {
		return nil, err
	}

	if err := srv.routeRepo.Update(ctx, route, input.Points != nil); err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return nil, domainerrors.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to update route")
	}

	return route, nil
}

// DeleteRoute removes the route and everything attached to it. Only the author may delete.
func (srv *routeService) DeleteRoute(ctx context.Context, userID, routeID uuid.UUID) error {
	if _, err := srv.ownedRoute(ctx, userID, routeID); err != nil {
		return err
	}

	if err := srv.routeRepo.Delete(ctx, routeID); err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return domainerrors.ErrRouteNotFound
		}

		return errors.Wrap(err, "failed to delete route")
	}

	srv.log(ctx).Info("Route deleted", slog.Any("routeID", routeID))

	return nil
}

func (srv *routeService) LikeRoute(ctx context.Context, userID, routeID uuid.UUID) (*usecase.LikeOutput, error) {
	return srv.toggleLike(ctx, userID, routeID, true)
}

func (srv *routeService) UnlikeRoute(ctx context.Context, userID, routeID uuid.UUID) (*usecase.LikeOutput, error) {
	return srv.toggleLike(ctx, userID, routeID, false)
}

// toggleLike keeps like_count in step with the likes table; repeating the same action changes nothing.
func (srv *routeService) toggleLike(ctx context.Context, userID, routeID uuid.UUID, like bool) (*usecase.LikeOutput, error) {
	output := &usecase.LikeOutput{Liked: like}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		routeRepo := repoFactory.NewRouteRepository()

		exists, err := routeRepo.Exists(ctx, routeID)
		if err != nil {
			return errors.Wrap(err, "failed to check route")
		}
		if !exists {
			return domainerrors.ErrRouteNotFound
		}

		var changed bool
		if like {
			changed, err = routeRepo.AddLike(ctx, routeID, userID)
		} else {
			changed, err = routeRepo.RemoveLike(ctx, routeID, userID)
		}
		if err != nil {
			return err
		}

		delta := 0
		if changed && like {
			delta = 1
		} else if changed {
			delta = -1
		}

		count, err := routeRepo.IncrementCounter(ctx, routeID, entity.CounterLikes, delta)
		if err != nil {
			return err
		}
		output.LikeCount = count

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

func (srv *routeService) IsRouteLiked(ctx context.Context, userID, routeID uuid.UUID) (bool, error) {
	liked, err := srv.routeRepo.HasLike(ctx, routeID, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check route like")
	}

	return liked, nil
}

// TrackOpen stores the open event and bumps open_count, then publishes RouteOpenedEvent.
// A publish failure is logged and does not fail the call.
func (srv *routeService) TrackOpen(ctx context.Context, userID *uuid.UUID, routeID uuid.UUID, input *usecase.TrackOpenInput) (int, error) {
	var openCount int
	event := &entity.RouteOpenEvent{
		RouteID:   routeID,
		UserID:    userID,
		UserAgent: input.UserAgent,
		Referrer:  input.Referrer,
		Platform:  strings.ToLower(strings.TrimSpace(input.Platform)),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		routeRepo := repoFactory.NewRouteRepository()

		exists, err := routeRepo.Exists(ctx, routeID)
		if err != nil {
			return errors.Wrap(err, "failed to check route")
		}
		if !exists {
			return domainerrors.ErrRouteNotFound
		}

		if err := routeRepo.CreateOpenEvent(ctx, event); err != nil {
			return err
		}

		openCount, err = routeRepo.IncrementCounter(ctx, routeID, entity.CounterOpens, 1)

		return err
	})
	if err != nil {
		return 0, err
	}

	srv.publishOpened(ctx, event, openCount)

	return openCount, nil
}

func (srv *routeService) publishOpened(ctx context.Context, event *entity.RouteOpenEvent, openCount int) {
	eventID := event.ID
	if eventID == uuid.Nil {
		eventID = uuid.New()
	}
	openedAt := event.CreatedAt
	if openedAt.IsZero() {
		openedAt = time.Now()
	}

	published := &service.RouteOpenedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   eventID.String(),
		RouteID:   event.RouteID.String(),
		Platform:  event.Platform,
		OpenCount: openCount,
		OpenedAt:  openedAt.UTC(),
	}
	if event.UserID != nil {
		published.UserID = event.UserID.String()
	}

	if err := srv.publisher.PublishRouteOpened(ctx, published); err != nil {
		srv.log(ctx).Warn("Failed to publish route opened event",
			slog.String("routeID", published.RouteID),
			slog.Any("error", err),
		)
	}
}

func (srv *routeService) RouteQRCode(ctx context.Context, routeID uuid.UUID) ([]byte, error) {
	route, err := findRoute(ctx, srv.routeRepo, routeID)
	if err != nil {
		return nil, err
	}

	link := route.ShareLink()
	if link == "" {
		return nil, domainerrors.ErrRouteHasNoLink
	}

	png, err := srv.qrCode.GenerateLinkQR(link)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate route qr code")
	}

	return png, nil
}

func (srv *routeService) RouteGeoJSON(ctx context.Context, routeID uuid.UUID) (*geojson.FeatureCollection, error) {
	route, err := findRoute(ctx, srv.routeRepo, routeID)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()

	if len(route.Points) >= 2 {
		line := make(orb.LineString, len(route.Points))
		for i, p := range route.Points {
			line[i] = orb.Point{p.Lng, p.Lat}
		}

		feature := geojson.NewFeature(line)
		feature.Properties["route_id"] = route.ID.String()
		feature.Properties["title"] = route.Title
		if route.LengthKm != nil {
			feature.Properties["length_km"] = *route.LengthKm
		}
		fc.Append(feature)
	}

	for _, p := range route.Points {
		feature := geojson.NewFeature(orb.Point{p.Lng, p.Lat})
		feature.Properties["seq"] = p.Seq
		feature.Properties["name"] = p.Name
		feature.Properties["type"] = string(p.Type)
		fc.Append(feature)
	}

	return fc, nil
}

// ownedRoute loads the route and checks that userID authored it.
func (srv *routeService) ownedRoute(ctx context.Context, userID, routeID uuid.UUID) (*entity.Route, error) {
	route, err := findRoute(ctx, srv.routeRepo, routeID)
	if err != nil {
		return nil, err
	}

	if !route.IsOwnedBy(userID) {
		srv.log(ctx).Warn("Route ownership violation", slog.Any("routeID", routeID), slog.Any("userID", userID))

		return nil, domainerrors.ErrRouteOwnershipViolation
	}

	return route, nil
}

func findRoute(ctx context.Context, repo repository.RouteRepository, routeID uuid.UUID) (*entity.Route, error) {
	route, err := repo.FindByID(ctx, routeID)
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return nil, domainerrors.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to find route")
	}

	return route, nil
}

func parseConditions(surfaceText, trafficText string) (entity.Surface, entity.Traffic, error) {
	surface := entity.SurfaceUnknown
	if surfaceText != "" {
		surface = entity.Surface(surfaceText)
	}
	if !surface.IsValid() {
		return "", "", domainerrors.ErrValidationFailed.WithDetails("unknown surface: " + surfaceText)
	}

	traffic := entity.TrafficUnknown
	if trafficText != "" {
		traffic = entity.Traffic(trafficText)
	}
	if !traffic.IsValid() {
		return "", "", domainerrors.ErrValidationFailed.WithDetails("unknown traffic: " + trafficText)
	}

	return surface, traffic, nil
}

// toRoutePoints numbers points in submission order. An untyped point is typed by position.
func toRoutePoints(inputs []usecase.RoutePointInput) []entity.RoutePoint {
	points := make([]entity.RoutePoint, len(inputs))
	for i, in := range inputs {
		pointType := entity.PointType(in.Type)
		if pointType == "" {
			switch i {
			case 0:
				pointType = entity.PointStart
			case len(inputs) - 1:
				pointType = entity.PointDest
			default:
				pointType = entity.PointWaypoint
			}
		}

		points[i] = entity.RoutePoint{
			Seq:  i,
			Lat:  in.Lat,
			Lng:  in.Lng,
			Name: strings.TrimSpace(in.Name),
			Type: pointType,
		}
	}

	return points
}

func applyRouteUpdate(route *entity.Route, input *usecase.UpdateRouteInput) error {
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return domainerrors.ErrValidationFailed.WithDetails("title must not be empty")
		}
		route.Title = title
	}
	if input.OpenURL != nil {
		openURL := strings.TrimSpace(*input.OpenURL)
		if openURL == "" {
			return domainerrors.ErrValidationFailed.WithDetails("open_url must not be empty")
		}
		route.OpenURL = openURL
	}

	surfaceText, trafficText := string(route.Surface), string(route.Traffic)
	if input.Surface != nil {
		surfaceText = *input.Surface
	}
	if input.Traffic != nil {
		trafficText = *input.Traffic
	}
	surface, traffic, err := parseConditions(surfaceText, trafficText)
	if err != nil {
		return err
	}
	route.Surface, route.Traffic = surface, traffic

	setIfPresent(&route.Summary, input.Summary)
	setIfPresent(&route.Region1, input.Region1)
	setIfPresent(&route.Region2, input.Region2)
	setIfPresent(&route.NmapURL, input.NmapURL)
	setIfPresent(&route.StarsScenery, input.StarsScenery)
	setIfPresent(&route.StarsDifficulty, input.StarsDifficulty)
	setIfPresent(&route.Speedbump, input.Speedbump)
	setIfPresent(&route.Enforcement, input.Enforcement)
	setIfPresent(&route.Signal, input.Signal)
	setIfPresent(&route.TagsBitmask, input.TagsBitmask)

	if input.LengthKm != nil {
		route.LengthKm = input.LengthKm
	}
	if input.DurationMin != nil {
		route.DurationMin = input.DurationMin
	}
	if input.Points != nil {
		route.Points = toRoutePoints(*input.Points)
	}

	return nil
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
