// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"potluck/config"
	"potluck/internal/delivery/http/response"
	"potluck/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service healthy")
}

// AuthHandler holds dependencies for registration, login and logout handlers.
type AuthHandler struct {
	uc     usecase.UserUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// Register handles the account creation request and logs the new user in.
func (h *AuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.SessionToken, output.ExpiresAt)

	return response.Success(c, http.StatusCreated, toUserResponse(output.User), "User registered successfully")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.SessionToken, output.ExpiresAt)

	return response.Success(c, http.StatusOK, toUserResponse(output.User), "Login successful")
}

// Logout closes the session behind the cookie and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	rawToken := ""
	if cookie, err := c.Cookie(h.cfg.SessionCookieName()); err == nil {
		rawToken = cookie.Value
	}

	if err := h.uc.Logout(c.Request().Context(), rawToken); err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookie(c)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.SessionCookieName(),
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cfg.SessionCookieSecure(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.SessionCookieSecure(),
		SameSite: http.SameSiteLaxMode,
	})
}
