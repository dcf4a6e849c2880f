package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"potluck/config"
	"potluck/internal/domain/entity"
	"potluck/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserUsecase lets each test pin just the method it exercises.
type stubUserUsecase struct {
	registerFn     func(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error)
	loginFn        func(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error)
	logoutFn       func(ctx context.Context, rawToken string) error
	authenticateFn func(ctx context.Context, rawToken string) (*entity.User, error)
}

func (s *stubUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return s.loginFn(ctx, input)
}

func (s *stubUserUsecase) Logout(ctx context.Context, rawToken string) error {
	return s.logoutFn(ctx, rawToken)
}

func (s *stubUserUsecase) Authenticate(ctx context.Context, rawToken string) (*entity.User, error) {
	return s.authenticateFn(ctx, rawToken)
}

func newAuthTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{CookieName: "potluck_session"},
	}
}

func sessionCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	res := http.Response{Header: rec.Header()}
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_Register_SetsSessionCookie(t *testing.T) {
	user := &entity.User{ID: uuid.New(), FirstName: "Frida", LastName: "Kahlo", Email: "frida@example.com"}
	uc := &stubUserUsecase{
		registerFn: func(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
			assert.Equal(t, "frida@example.com", input.Email)

			return &usecase.AuthOutput{
				User:         user,
				SessionToken: "raw-token",
				ExpiresAt:    time.Now().Add(time.Hour),
			}, nil
		},
	}
	h := NewAuthHandler(uc, newAuthTestConfig(), nil)

	e := echo.New()
	body := `{"first_name":"Frida","last_name":"Kahlo","email":"frida@example.com","password":"strong-password","confirm_password":"strong-password"}`
	req := httptest.NewRequest(http.MethodPost, "/create_user", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	cookie := sessionCookie(rec, "potluck_session")
	require.NotNil(t, cookie)
	assert.Equal(t, "raw-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "frida@example.com")
	assert.Contains(t, responseBody, "Frida Kahlo")
	assert.NotContains(t, responseBody, "password")
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	user := &entity.User{ID: uuid.New(), FirstName: "Frida", LastName: "Kahlo", Email: "frida@example.com"}
	uc := &stubUserUsecase{
		loginFn: func(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
			return &usecase.AuthOutput{
				User:         user,
				SessionToken: "raw-token",
				ExpiresAt:    time.Now().Add(time.Hour),
			}, nil
		},
	}
	h := NewAuthHandler(uc, newAuthTestConfig(), nil)

	e := echo.New()
	body := `{"email":"frida@example.com","password":"strong-password"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec, "potluck_session")
	require.NotNil(t, cookie)
	assert.Equal(t, "raw-token", cookie.Value)
}

func TestAuthHandler_Logout_ClearsSessionCookie(t *testing.T) {
	var gotToken string
	uc := &stubUserUsecase{
		logoutFn: func(ctx context.Context, rawToken string) error {
			gotToken = rawToken

			return nil
		},
	}
	h := NewAuthHandler(uc, newAuthTestConfig(), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "potluck_session", Value: "raw-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "raw-token", gotToken)

	cookie := sessionCookie(rec, "potluck_session")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
