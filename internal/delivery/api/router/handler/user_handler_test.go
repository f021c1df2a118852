package handler

import (
	"net/http"
	"testing"
	"time"

	"ridingcourse/config"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/entity"
	mockUsecase "ridingcourse/internal/mocks/usecase"
	"ridingcourse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userHandlerFixture struct {
	e      *echo.Echo
	userUC *mockUsecase.MockUserUsecase
	userID uuid.UUID
}

func newUserHandlerFixture(t *testing.T) *userHandlerFixture {
	f := &userHandlerFixture{
		e:      newTestEcho(),
		userUC: mockUsecase.NewMockUserUsecase(t),
		userID: uuid.New(),
	}

	h := NewUserHandler(UserHandlerParams{
		UserUC: f.userUC,
		Config: &config.Config{Auth: &config.AuthConfig{CookieName: "rc_token", CookieSecure: true}},
	})

	f.e.POST("/register", h.Register)
	f.e.POST("/login", h.Login)
	f.e.POST("/logout", h.Logout)
	f.e.GET("/me", h.Me)
	f.e.GET("/me/signed-in", h.Me, asUser(f.userID))

	return f
}

func TestUserHandler_Register(t *testing.T) {
	f := newUserHandlerFixture(t)
	user := &entity.User{ID: uuid.New(), Email: "rider@example.com", DisplayName: "rider"}

	f.userUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterUserInput{Email: "rider@example.com", Password: "password123", DisplayName: "rider"}).
		Return(&usecase.RegisterOutput{User: user}, nil)

	rec := doJSON(f.e, http.MethodPost, "/register", `{"email":"rider@example.com","password":"password123","display_name":"rider"}`)

	assertStatus(t, rec, http.StatusCreated)
	view := decodeData[UserView](t, rec)
	assert.Equal(t, user.ID, view.ID)
	assert.Equal(t, "rider@example.com", view.Email)
}

func TestUserHandler_RegisterValidation(t *testing.T) {
	f := newUserHandlerFixture(t)

	rec := doJSON(f.e, http.MethodPost, "/register", `{"email":"not-an-email","password":"short"}`)

	assertStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decodeErrorCode(t, rec))
}

func TestUserHandler_RegisterDuplicate(t *testing.T) {
	f := newUserHandlerFixture(t)
	f.userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

	rec := doJSON(f.e, http.MethodPost, "/register", `{"email":"rider@example.com","password":"password123"}`)

	assert.Equal(t, domainerrors.ErrUserAlreadyExists.HTTPCode(), rec.Code)
	assert.Equal(t, domainerrors.ErrUserAlreadyExists.ErrorCode(), decodeErrorCode(t, rec))
}

func TestUserHandler_LoginSetsCookie(t *testing.T) {
	f := newUserHandlerFixture(t)
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	f.userUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "rider@example.com", Password: "password123"}).
		Return(&usecase.LoginOutput{
			Token:     "signed.jwt.token",
			ExpiresAt: expiresAt,
			User:      &entity.User{ID: f.userID, Email: "rider@example.com"},
		}, nil)

	rec := doJSON(f.e, http.MethodPost, "/login", `{"email":"rider@example.com","password":"password123"}`)

	assertStatus(t, rec, http.StatusOK)

	body := decodeData[struct {
		OK        bool      `json:"ok"`
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expires_at"`
		User      UserView  `json:"user"`
	}](t, rec)
	assert.True(t, body.OK)
	assert.Equal(t, "signed.jwt.token", body.Token)
	assert.True(t, expiresAt.Equal(body.ExpiresAt))
	assert.Equal(t, f.userID, body.User.ID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "rc_token", cookies[0].Name)
	assert.Equal(t, "signed.jwt.token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestUserHandler_LoginInvalidCredentials(t *testing.T) {
	f := newUserHandlerFixture(t)
	f.userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := doJSON(f.e, http.MethodPost, "/login", `{"email":"rider@example.com","password":"wrong"}`)

	assertStatus(t, rec, http.StatusUnauthorized)
	assert.Empty(t, rec.Result().Cookies())
}

func TestUserHandler_LogoutClearsCookie(t *testing.T) {
	f := newUserHandlerFixture(t)

	rec := doJSON(f.e, http.MethodPost, "/logout", "")

	assertStatus(t, rec, http.StatusOK)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "rc_token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestUserHandler_Me(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		f := newUserHandlerFixture(t)

		rec := doJSON(f.e, http.MethodGet, "/me", "")

		assertStatus(t, rec, http.StatusUnauthorized)
	})

	t.Run("signed in", func(t *testing.T) {
		f := newUserHandlerFixture(t)
		f.userUC.EXPECT().GetUser(mock.Anything, f.userID).Return(&entity.User{ID: f.userID, DisplayName: "rider"}, nil)

		rec := doJSON(f.e, http.MethodGet, "/me/signed-in", "")

		assertStatus(t, rec, http.StatusOK)
		assert.Equal(t, "rider", decodeData[UserView](t, rec).DisplayName)
	})
}
