package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/entity"
	"ridingcourse/internal/infra/metrics"
	mockUsecase "ridingcourse/internal/mocks/usecase"
	"ridingcourse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routeHandlerFixture struct {
	e       *echo.Echo
	routeUC *mockUsecase.MockRouteUsecase
	statsUC *mockUsecase.MockRouteStatsUsecase
	metrics *metrics.Metrics
	userID  uuid.UUID
}

func newRouteHandlerFixture(t *testing.T) *routeHandlerFixture {
	f := &routeHandlerFixture{
		e:       newTestEcho(),
		routeUC: mockUsecase.NewMockRouteUsecase(t),
		statsUC: mockUsecase.NewMockRouteStatsUsecase(t),
		metrics: metrics.NewMetrics(),
		userID:  uuid.New(),
	}

	h := NewRouteHandler(RouteHandlerParams{RouteUC: f.routeUC, StatsUC: f.statsUC, Metrics: f.metrics})
	user := asUser(f.userID)

	f.e.POST("/routes", h.Create)
	f.e.POST("/me/routes", h.Create, user)
	f.e.GET("/routes", h.List)
	f.e.GET("/routes/:id", h.Get)
	f.e.PATCH("/routes/:id", h.Update)
	f.e.PATCH("/me/routes/:id", h.Update, user)
	f.e.DELETE("/me/routes/:id", h.Delete, user)
	f.e.POST("/me/routes/:id/like", h.Like, user)
	f.e.GET("/me/routes/:id/liked", h.Liked, user)
	f.e.POST("/routes/:id/open-track", h.TrackOpen)
	f.e.GET("/routes/:id/qrcode", h.QRCode)
	f.e.GET("/routes/:id/geojson", h.GeoJSON)
	f.e.GET("/routes/:id/opens", h.Opens)

	return f
}

func TestRouteHandler_CreateAnonymous(t *testing.T) {
	f := newRouteHandlerFixture(t)
	routeID := uuid.New()

	f.routeUC.EXPECT().
		CreateRoute(mock.Anything, (*uuid.UUID)(nil), mock.MatchedBy(func(in *usecase.CreateRouteInput) bool {
			return in.Title == "북악 스카이웨이" && len(in.Points) == 2
		})).
		Return(&entity.Route{ID: routeID, Title: "북악 스카이웨이", OpenURL: "nmap://route/car?dlat=1&dlng=2"}, nil)

	rec := doJSON(f.e, http.MethodPost, "/routes", `{
		"title": "북악 스카이웨이",
		"open_url": "nmap://route/car?dlat=1&dlng=2",
		"points": [{"lat": 37.59, "lng": 126.98, "type": "start"}, {"lat": 1, "lng": 2, "type": "dest"}]
	}`)

	assertStatus(t, rec, http.StatusCreated)
	view := decodeData[RouteView](t, rec)
	assert.Equal(t, routeID, view.ID)
	assert.Nil(t, view.AuthorID)
}

func TestRouteHandler_CreateWithAuthor(t *testing.T) {
	f := newRouteHandlerFixture(t)

	f.routeUC.EXPECT().
		CreateRoute(mock.Anything, &f.userID, mock.Anything).
		Return(&entity.Route{ID: uuid.New(), AuthorID: &f.userID}, nil)

	rec := doJSON(f.e, http.MethodPost, "/me/routes", `{"title":"t","open_url":"https://naver.me/x"}`)

	assertStatus(t, rec, http.StatusCreated)
	view := decodeData[RouteView](t, rec)
	require.NotNil(t, view.AuthorID)
	assert.Equal(t, f.userID, *view.AuthorID)
}

func TestRouteHandler_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing title", body: `{"open_url":"nmap://route/car?dlat=1&dlng=2"}`},
		{name: "bad point type", body: `{"title":"t","open_url":"x","points":[{"lat":1,"lng":2,"type":"via"}]}`},
		{name: "latitude out of range", body: `{"title":"t","open_url":"x","points":[{"lat":91,"lng":2}]}`},
		{name: "malformed json", body: `{"title":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouteHandlerFixture(t)

			rec := doJSON(f.e, http.MethodPost, "/routes", tt.body)

			assertStatus(t, rec, http.StatusBadRequest)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decodeErrorCode(t, rec))
		})
	}
}

func TestRouteHandler_List(t *testing.T) {
	f := newRouteHandlerFixture(t)

	f.routeUC.EXPECT().
		ListRoutes(mock.Anything, &usecase.ListRoutesInput{Region1: "강원", Tag: 6, Sort: "popular", Limit: 5}).
		Return([]*entity.Route{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	query := url.Values{"region1": {"강원"}, "tag": {"6"}, "sort": {"popular"}, "limit": {"5"}}
	rec := doJSON(f.e, http.MethodGet, "/routes?"+query.Encode(), "")

	assertStatus(t, rec, http.StatusOK)
	assert.Len(t, decodeData[[]RouteView](t, rec), 2)
}

func TestRouteHandler_ListRejectsUnknownSort(t *testing.T) {
	f := newRouteHandlerFixture(t)

	rec := doJSON(f.e, http.MethodGet, "/routes?sort=random", "")

	assertStatus(t, rec, http.StatusBadRequest)
}

func TestRouteHandler_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newRouteHandlerFixture(t)

		rec := doJSON(f.e, http.MethodGet, "/routes/not-a-uuid", "")

		assertStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decodeErrorCode(t, rec))
	})

	t.Run("not found", func(t *testing.T) {
		f := newRouteHandlerFixture(t)
		routeID := uuid.New()
		f.routeUC.EXPECT().GetRoute(mock.Anything, routeID).Return(nil, domainerrors.ErrRouteNotFound)

		rec := doJSON(f.e, http.MethodGet, "/routes/"+routeID.String(), "")

		assertStatus(t, rec, http.StatusNotFound)
		assert.Equal(t, domainerrors.ErrRouteNotFound.ErrorCode(), decodeErrorCode(t, rec))
	})

	t.Run("with points", func(t *testing.T) {
		f := newRouteHandlerFixture(t)
		routeID := uuid.New()
		f.routeUC.EXPECT().GetRoute(mock.Anything, routeID).Return(&entity.Route{
			ID: routeID,
			Points: []entity.RoutePoint{
				{Seq: 0, Lat: 37.5, Lng: 127, Type: entity.PointStart},
				{Seq: 1, Lat: 37.6, Lng: 127.1, Type: entity.PointDest},
			},
		}, nil)

		rec := doJSON(f.e, http.MethodGet, "/routes/"+routeID.String(), "")

		assertStatus(t, rec, http.StatusOK)
		view := decodeData[RouteView](t, rec)
		require.Len(t, view.Points, 2)
		assert.Equal(t, "dest", view.Points[1].Type)
	})
}

func TestRouteHandler_Update(t *testing.T) {
	t.Run("requires a user", func(t *testing.T) {
		f := newRouteHandlerFixture(t)

		rec := doJSON(f.e, http.MethodPatch, "/routes/"+uuid.NewString(), `{"title":"new"}`)

		assertStatus(t, rec, http.StatusUnauthorized)
	})

	t.Run("forwards the partial input", func(t *testing.T) {
		f := newRouteHandlerFixture(t)
		routeID := uuid.New()

		f.routeUC.EXPECT().
			UpdateRoute(mock.Anything, f.userID, routeID, mock.MatchedBy(func(in *usecase.UpdateRouteInput) bool {
				return in.Title != nil && *in.Title == "new" && in.Summary == nil && in.Points == nil
			})).
			Return(&entity.Route{ID: routeID, Title: "new"}, nil)

		rec := doJSON(f.e, http.MethodPatch, "/me/routes/"+routeID.String(), `{"title":"new"}`)

		assertStatus(t, rec, http.StatusOK)
		assert.Equal(t, "new", decodeData[RouteView](t, rec).Title)
	})

	t.Run("not the owner", func(t *testing.T) {
		f := newRouteHandlerFixture(t)
		routeID := uuid.New()
		f.routeUC.EXPECT().UpdateRoute(mock.Anything, f.userID, routeID, mock.Anything).Return(nil, domainerrors.ErrRouteOwnershipViolation)

		rec := doJSON(f.e, http.MethodPatch, "/me/routes/"+routeID.String(), `{"summary":"x"}`)

		assertStatus(t, rec, http.StatusForbidden)
	})
}

func TestRouteHandler_Delete(t *testing.T) {
	f := newRouteHandlerFixture(t)
	routeID := uuid.New()
	f.routeUC.EXPECT().DeleteRoute(mock.Anything, f.userID, routeID).Return(nil)

	rec := doJSON(f.e, http.MethodDelete, "/me/routes/"+routeID.String(), "")

	assertStatus(t, rec, http.StatusOK)
	assert.Equal(t, map[string]bool{"ok": true}, decodeData[map[string]bool](t, rec))
}

func TestRouteHandler_LikeAndLiked(t *testing.T) {
	f := newRouteHandlerFixture(t)
	routeID := uuid.New()
	f.routeUC.EXPECT().LikeRoute(mock.Anything, f.userID, routeID).Return(&usecase.LikeOutput{Liked: true, LikeCount: 3}, nil)
	f.routeUC.EXPECT().IsRouteLiked(mock.Anything, f.userID, routeID).Return(true, nil)

	rec := doJSON(f.e, http.MethodPost, "/me/routes/"+routeID.String()+"/like", "")
	assertStatus(t, rec, http.StatusOK)
	assert.Equal(t, usecase.LikeOutput{Liked: true, LikeCount: 3}, decodeData[usecase.LikeOutput](t, rec))

	rec = doJSON(f.e, http.MethodGet, "/me/routes/"+routeID.String()+"/liked", "")
	assertStatus(t, rec, http.StatusOK)
	assert.Equal(t, map[string]bool{"liked": true}, decodeData[map[string]bool](t, rec))
}

func TestRouteHandler_TrackOpen(t *testing.T) {
	t.Run("platform from user agent", func(t *testing.T) {
		f := newRouteHandlerFixture(t)
		routeID := uuid.New()
		ua := "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"

		f.routeUC.EXPECT().
			TrackOpen(mock.Anything, (*uuid.UUID)(nil), routeID, &usecase.TrackOpenInput{
				UserAgent: ua,
				Referrer:  "https://example.com/list",
				Platform:  "ios",
			}).
			Return(8, nil)

		req := httptest.NewRequest(http.MethodPost, "/routes/"+routeID.String()+"/open-track", nil)
		req.Header.Set("User-Agent", ua)
		req.Header.Set("Referer", "https://example.com/list")
		rec := httptest.NewRecorder()
		f.e.ServeHTTP(rec, req)

		assertStatus(t, rec, http.StatusOK)
		assert.Equal(t, map[string]int{"open_count": 8}, decodeData[map[string]int](t, rec))
		assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.RouteOpens.WithLabelValues("ios")), 0)
	})

	t.Run("explicit platform", func(t *testing.T) {
		f := newRouteHandlerFixture(t)
		routeID := uuid.New()

		f.routeUC.EXPECT().
			TrackOpen(mock.Anything, (*uuid.UUID)(nil), routeID, mock.MatchedBy(func(in *usecase.TrackOpenInput) bool {
				return in.Platform == "Android"
			})).
			Return(1, nil)

		rec := doJSON(f.e, http.MethodPost, "/routes/"+routeID.String()+"/open-track", `{"platform":"Android"}`)

		assertStatus(t, rec, http.StatusOK)
		assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.RouteOpens.WithLabelValues("android")), 0)
	})
}

func TestRouteHandler_QRCode(t *testing.T) {
	f := newRouteHandlerFixture(t)
	routeID := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\nfake")
	f.routeUC.EXPECT().RouteQRCode(mock.Anything, routeID).Return(png, nil)

	rec := doJSON(f.e, http.MethodGet, "/routes/"+routeID.String()+"/qrcode", "")

	assertStatus(t, rec, http.StatusOK)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestRouteHandler_QRCodeWithoutLink(t *testing.T) {
	f := newRouteHandlerFixture(t)
	routeID := uuid.New()
	f.routeUC.EXPECT().RouteQRCode(mock.Anything, routeID).Return(nil, domainerrors.ErrRouteHasNoLink)

	rec := doJSON(f.e, http.MethodGet, "/routes/"+routeID.String()+"/qrcode", "")

	assert.Equal(t, domainerrors.ErrRouteHasNoLink.HTTPCode(), rec.Code)
}

func TestRouteHandler_GeoJSON(t *testing.T) {
	f := newRouteHandlerFixture(t)
	routeID := uuid.New()

	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.LineString{{127, 37.5}, {127.1, 37.6}}))
	f.routeUC.EXPECT().RouteGeoJSON(mock.Anything, routeID).Return(fc, nil)

	rec := doJSON(f.e, http.MethodGet, "/routes/"+routeID.String()+"/geojson", "")

	assertStatus(t, rec, http.StatusOK)
	assert.Equal(t, geoJSONContentType, rec.Header().Get(echo.HeaderContentType))

	decoded, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, decoded.Features, 1)
	assert.Equal(t, "LineString", decoded.Features[0].Geometry.GeoJSONType())
}

func TestRouteHandler_Opens(t *testing.T) {
	f := newRouteHandlerFixture(t)
	routeID := uuid.New()
	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	f.statsUC.EXPECT().
		DailyOpens(mock.Anything, routeID, &usecase.DailyOpensInput{Days: 7}).
		Return([]*entity.RouteDailyOpens{{RouteID: routeID, Day: day, Platform: "ios", Opens: 3}}, nil)

	rec := doJSON(f.e, http.MethodGet, "/routes/"+routeID.String()+"/opens?days=7", "")

	assertStatus(t, rec, http.StatusOK)
	views := decodeData[[]DailyOpensView](t, rec)
	require.Len(t, views, 1)
	assert.Equal(t, DailyOpensView{Day: "2026-05-01", Platform: "ios", Opens: 3}, views[0])
}

func TestRouteHandler_OpensRejectsLongWindow(t *testing.T) {
	f := newRouteHandlerFixture(t)

	rec := doJSON(f.e, http.MethodGet, "/routes/"+uuid.NewString()+"/opens?days=365", "")

	assertStatus(t, rec, http.StatusBadRequest)
}

func TestPlatformFromUserAgent(t *testing.T) {
	assert.Equal(t, "ios", platformFromUserAgent("Mozilla/5.0 (iPad; CPU OS 16_0)"))
	assert.Equal(t, "android", platformFromUserAgent("Mozilla/5.0 (Linux; Android 14)"))
	assert.Equal(t, "web", platformFromUserAgent("Mozilla/5.0 (Windows NT 10.0)"))
	assert.Equal(t, "unknown", platformFromUserAgent(""))
}
