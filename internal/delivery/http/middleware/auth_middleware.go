// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"potluck/config"
	deliverycontext "potluck/internal/delivery/context"
	domainerrors "potluck/internal/domain/errors"
	"potluck/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware resolves the session cookie to a user on every guarded
// request. The cookie carries an opaque token; the lookup goes through the
// session store, so a logout elsewhere invalidates the cookie immediately.
type AuthMiddleware struct {
	userUc usecase.UserUsecase
	cfg    *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUc usecase.UserUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{userUc: userUc, cfg: cfg}
}

// Authenticate validates the session cookie and puts the user's ID on the
// context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cfg.SessionCookieName())
		if err != nil || cookie.Value == "" {
			return errors.Wrap(domainerrors.ErrAuthenticationRequired, "request without session cookie")
		}

		sessionUser, err := m.userUc.Authenticate(c.Request().Context(), cookie.Value)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetUserID(c, sessionUser.ID)

		req := c.Request()
		ctx := deliverycontext.WithUserID(req.Context(), sessionUser.ID)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
