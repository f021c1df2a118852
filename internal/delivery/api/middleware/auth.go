// Package middleware holds the API-only echo middlewares.
package middleware

import (
	"log/slog"
	"strings"

	"ridingcourse/config"
	deliverycontext "ridingcourse/internal/delivery/context"
	"ridingcourse/internal/domain/constants"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// AuthMiddleware resolves the session token from the Authorization header or the session cookie.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	cookieName string
}

func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	cookieName := "rc_token"
	if cfg.Auth != nil && cfg.Auth.CookieName != "" {
		cookieName = cfg.Auth.CookieName
	}

	return &AuthMiddleware{tokenSvc: tokenSvc, cookieName: cookieName}
}

// Authenticate rejects requests without a valid token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.resolve(c) {
			return domainerrors.ErrUnauthorized
		}

		return next(c)
	}
}

// OptionalAuthenticate sets the user when a valid token is present and lets every request through.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		m.resolve(c)

		return next(c)
	}
}

func (m *AuthMiddleware) resolve(c echo.Context) bool {
	token := m.token(c)
	if token == "" {
		return false
	}

	claims, err := m.tokenSvc.ValidateToken(token)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), slog.Default()).
			Debug("Rejected session token", slog.Any("error", err))

		return false
	}

	c.Set(constants.ContextKeyUserID, claims.UserID)
	c.SetRequest(c.Request().WithContext(deliverycontext.WithUserID(c.Request().Context(), claims.UserID)))
	slogecho.AddCustomAttributes(c, slog.String("user_id", claims.UserID.String()))

	return true
}

// token prefers a Bearer header over the cookie.
func (m *AuthMiddleware) token(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}

	if cookie, err := c.Cookie(m.cookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// GetUserID returns the authenticated user set by Authenticate or OptionalAuthenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetOptionalUserID returns nil for anonymous requests.
func GetOptionalUserID(c echo.Context) *uuid.UUID {
	if userID, ok := GetUserID(c); ok {
		return &userID
	}

	return nil
}
