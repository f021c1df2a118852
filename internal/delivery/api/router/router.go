// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"math"
	"net/http"
	"strconv"

	"ridingcourse/config"
	"ridingcourse/internal/delivery/api/middleware"
	"ridingcourse/internal/delivery/api/router/handler"
	"ridingcourse/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	LinkHandler     *handler.LinkHandler
	RouteHandler    *handler.RouteHandler
	PhotoHandler    *handler.PhotoHandler
	CommentHandler  *handler.CommentHandler
	BookmarkHandler *handler.BookmarkHandler
	ReportHandler   *handler.ReportHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Metrics
	Config          *config.Config
}

const (
	routesPrefix    = "/api/routes"
	photoUploadPath = "/:id/photos"

	// multipart framing on top of the photo itself
	multipartOverheadBytes = 64 << 10
)

// IsPhotoUpload reports whether c targets the photo upload route, which has its own body limit.
func IsPhotoUpload(c echo.Context) bool {
	return c.Request().Method == http.MethodPost && c.Path() == routesPrefix+photoUploadPath
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	linkHandler     *handler.LinkHandler
	routeHandler    *handler.RouteHandler
	photoHandler    *handler.PhotoHandler
	commentHandler  *handler.CommentHandler
	bookmarkHandler *handler.BookmarkHandler
	reportHandler   *handler.ReportHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Metrics
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		linkHandler:     params.LinkHandler,
		routeHandler:    params.RouteHandler,
		photoHandler:    params.PhotoHandler,
		commentHandler:  params.CommentHandler,
		bookmarkHandler: params.BookmarkHandler,
		reportHandler:   params.ReportHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Stored photos, addressed by object key
	e.GET("/media/*", r.photoHandler.Media)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/logout", r.userHandler.Logout)
		authGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
	}

	auth := r.authMiddleware.Authenticate
	optional := r.authMiddleware.OptionalAuthenticate

	routeGroup := e.Group(routesPrefix)
	{
		// Parsing may hit the shortlink resolver, so it is rate limited per client.
		routeGroup.POST("/parse", r.linkHandler.Parse, r.parseRateLimiter())

		routeGroup.GET("", r.routeHandler.List)
		routeGroup.POST("", r.routeHandler.Create, optional)
		routeGroup.GET("/:id", r.routeHandler.Get)
		routeGroup.PATCH("/:id", r.routeHandler.Update, auth)
		routeGroup.DELETE("/:id", r.routeHandler.Delete, auth)

		routeGroup.POST("/:id/like", r.routeHandler.Like, auth)
		routeGroup.POST("/:id/unlike", r.routeHandler.Unlike, auth)
		routeGroup.GET("/:id/liked", r.routeHandler.Liked, auth)

		routeGroup.POST("/:id/open-track", r.routeHandler.TrackOpen, optional)
		routeGroup.GET("/:id/qrcode", r.routeHandler.QRCode)
		routeGroup.GET("/:id/geojson", r.routeHandler.GeoJSON)
		routeGroup.GET("/:id/opens", r.routeHandler.Opens)

		routeGroup.GET("/:id/photos", r.photoHandler.List)
		routeGroup.POST(photoUploadPath, r.photoHandler.Upload, r.photoBodyLimit(), optional)
	}

	commentGroup := api.Group("/comments")
	{
		commentGroup.GET("/route/:id", r.commentHandler.List, optional)
		commentGroup.POST("/route/:id", r.commentHandler.Create, auth)
		commentGroup.POST("/:id/like", r.commentHandler.Like, auth)
		commentGroup.POST("/:id/unlike", r.commentHandler.Unlike, auth)
		commentGroup.GET("/:id/liked", r.commentHandler.Liked, auth)
	}

	bookmarkGroup := api.Group("/bookmarks", auth)
	{
		bookmarkGroup.GET("", r.bookmarkHandler.List)
		bookmarkGroup.GET("/route/:id", r.bookmarkHandler.Status)
		bookmarkGroup.POST("/route/:id", r.bookmarkHandler.Add)
		bookmarkGroup.DELETE("/route/:id", r.bookmarkHandler.Remove)
	}

	reportGroup := api.Group("/reports", optional)
	{
		reportGroup.POST("/route/:id", r.reportHandler.Route)
		reportGroup.POST("/comment/:id", r.reportHandler.Comment)
	}
}

func (r *router) parseRateLimiter() echo.MiddlewareFunc {
	limit := r.config.HTTP.RateLimit
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(limit),
		Burst: int(math.Ceil(limit)),
	})

	return echomiddleware.RateLimiter(store)
}

func (r *router) photoBodyLimit() echo.MiddlewareFunc {
	var maxPhotoBytes int64
	if r.config.Storage != nil {
		maxPhotoBytes = r.config.Storage.MaxPhotoBytes
	}

	return echomiddleware.BodyLimit(strconv.FormatInt(maxPhotoBytes+multipartOverheadBytes, 10) + "B")
}
