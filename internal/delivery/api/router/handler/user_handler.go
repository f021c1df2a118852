// Package handler contains the HTTP handlers for the API server.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ridingcourse/config"
	"ridingcourse/internal/delivery/api/middleware"
	"ridingcourse/internal/delivery/api/response"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Config *config.Config
	Logger *slog.Logger
}

// UserHandler serves registration, login and the session cookie.
type UserHandler struct {
	userUC usecase.UserUsecase
	auth   config.AuthConfig
	logger *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	auth := config.AuthConfig{CookieName: "rc_token"}
	if params.Config != nil && params.Config.Auth != nil {
		auth = *params.Config.Auth
	}

	return &UserHandler{
		userUC: params.UserUC,
		auth:   auth,
		logger: params.Logger,
	}
}

// Register handles POST /api/auth/register.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.userUC.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(output.User))
}

// Login issues the session token both in the body and as an HttpOnly cookie.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(output.Token, output.ExpiresAt))

	return response.Success(c, http.StatusOK, map[string]any{
		"ok":         true,
		"token":      output.Token,
		"expires_at": output.ExpiresAt,
		"user":       toUserView(output.User),
	})
}

// Logout clears the session cookie. Bearer tokens stay valid until they expire.
func (h *UserHandler) Logout(c echo.Context) error {
	cookie := h.sessionCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	c.SetCookie(cookie)

	return response.Success(c, http.StatusOK, map[string]bool{"ok": true})
}

// Me returns the authenticated user.
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user))
}

func (h *UserHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.auth.CookieName,
		Value:    value,
		Path:     "/",
		Domain:   h.auth.CookieDomain,
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
