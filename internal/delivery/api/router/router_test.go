package router

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ridingcourse/config"
	"ridingcourse/internal/deeplink"
	"ridingcourse/internal/delivery/api/middleware"
	"ridingcourse/internal/delivery/api/router/handler"
	"ridingcourse/internal/delivery/api/validator"
	"ridingcourse/internal/domain/service"
	"ridingcourse/internal/infra/metrics"
	mockService "ridingcourse/internal/mocks/service"
	mockUsecase "ridingcourse/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	e          *echo.Echo
	tokens     *mockService.MockTokenService
	linkUC     *mockUsecase.MockLinkUsecase
	routeUC    *mockUsecase.MockRouteUsecase
	bookmarkUC *mockUsecase.MockBookmarkUsecase
}

func newRouterFixture(t *testing.T, cfg *config.Config) *routerFixture {
	f := &routerFixture{
		e:          echo.New(),
		tokens:     mockService.NewMockTokenService(t),
		linkUC:     mockUsecase.NewMockLinkUsecase(t),
		routeUC:    mockUsecase.NewMockRouteUsecase(t),
		bookmarkUC: mockUsecase.NewMockBookmarkUsecase(t),
	}
	m := metrics.NewMetrics()

	f.e.Validator = validator.New()
	f.e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError

	r := NewRouter(RouterParams{
		UserHandler:     handler.NewUserHandler(handler.UserHandlerParams{UserUC: mockUsecase.NewMockUserUsecase(t), Config: cfg}),
		LinkHandler:     handler.NewLinkHandler(handler.LinkHandlerParams{LinkUC: f.linkUC, Metrics: m}),
		RouteHandler:    handler.NewRouteHandler(handler.RouteHandlerParams{RouteUC: f.routeUC, Metrics: m}),
		PhotoHandler:    handler.NewPhotoHandler(handler.PhotoHandlerParams{PhotoUC: mockUsecase.NewMockPhotoUsecase(t)}),
		CommentHandler:  handler.NewCommentHandler(handler.CommentHandlerParams{CommentUC: mockUsecase.NewMockCommentUsecase(t)}),
		BookmarkHandler: handler.NewBookmarkHandler(handler.BookmarkHandlerParams{BookmarkUC: f.bookmarkUC}),
		ReportHandler:   handler.NewReportHandler(handler.ReportHandlerParams{ReportUC: mockUsecase.NewMockReportUsecase(t)}),
		AuthMiddleware:  middleware.NewAuthMiddleware(f.tokens, cfg),
		Metrics:         m,
		Config:          cfg,
	})
	r.RegisterRoutes(f.e)

	return f
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Auth:    &config.AuthConfig{CookieName: "rc_token"},
		Storage: &config.StorageConfig{MaxPhotoBytes: 1024},
	}
	cfg.HTTP.RateLimit = 1

	return cfg
}

func serve(e *echo.Echo, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRouter_PublicEndpoints(t *testing.T) {
	f := newRouterFixture(t, testConfig())

	rec := serve(f.e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(f.e, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	rec = serve(f.e, http.MethodGet, "/api/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_ProtectedEndpointsRequireToken(t *testing.T) {
	f := newRouterFixture(t, testConfig())
	id := uuid.NewString()

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPatch, "/api/routes/" + id},
		{http.MethodDelete, "/api/routes/" + id},
		{http.MethodPost, "/api/routes/" + id + "/like"},
		{http.MethodGet, "/api/routes/" + id + "/liked"},
		{http.MethodPost, "/api/comments/route/" + id},
		{http.MethodPost, "/api/comments/" + id + "/like"},
		{http.MethodGet, "/api/bookmarks"},
		{http.MethodPost, "/api/bookmarks/route/" + id},
	} {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec := serve(f.e, tc.method, tc.target, "", nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouter_BearerTokenReachesHandler(t *testing.T) {
	f := newRouterFixture(t, testConfig())
	userID := uuid.New()
	routeID := uuid.New()

	f.tokens.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID}, nil)
	f.bookmarkUC.EXPECT().IsBookmarked(mock.Anything, userID, routeID).Return(true, nil)

	rec := serve(f.e, http.MethodGet, "/api/bookmarks/route/"+routeID.String(), "", map[string]string{
		echo.HeaderAuthorization: "Bearer good",
	})

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"bookmarked":true`)
}

func TestRouter_ParseIsRateLimited(t *testing.T) {
	f := newRouterFixture(t, testConfig())

	normalized, err := deeplink.New().Normalize(context.Background(), "nmap://route/car?dlat=37.5&dlng=127")
	require.NoError(t, err)
	f.linkUC.EXPECT().ParseLink(mock.Anything, mock.Anything).Return(normalized, nil).Once()

	body := `{"raw":"nmap://route/car?dlat=37.5&dlng=127"}`

	rec := serve(f.e, http.MethodPost, "/api/routes/parse", body, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = serve(f.e, http.MethodPost, "/api/routes/parse", body, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "RATE_LIMITED")
}

func TestRouter_PhotoUploadBodyLimit(t *testing.T) {
	f := newRouterFixture(t, testConfig())

	big := strings.Repeat("x", 1024+multipartOverheadBytes+1)
	req := httptest.NewRequest(http.MethodPost, "/api/routes/"+uuid.NewString()+"/photos", strings.NewReader(big))
	req.Header.Set(echo.HeaderContentType, "multipart/form-data; boundary=x")
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestIsPhotoUpload(t *testing.T) {
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/routes/x/photos", nil), httptest.NewRecorder())
	c.SetPath("/api/routes/:id/photos")
	assert.True(t, IsPhotoUpload(c))

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/routes/x/photos", nil), httptest.NewRecorder())
	c.SetPath("/api/routes/:id/photos")
	assert.False(t, IsPhotoUpload(c))
}
