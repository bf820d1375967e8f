package middleware

import (
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "kanban/internal/errors"
	"kanban/internal/model"
	"kanban/internal/service"
)

// ContextUser is the echo context key holding the authenticated *model.User.
const ContextUser = "user"

// Session authenticates "Authorization: Bearer <token>" requests. The token
// must be an access token whose session id is the user's current one.
func Session(authService service.AuthService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextUser,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return authService.Authenticate(c.Request().Context(), auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				return appErr
			}
			return apperrors.Unauthenticated("Unauthorized: No token provided")
		},
	})
}

// CurrentUser returns the user set by Session, or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextUser).(*model.User)
	return user
}

// UserID returns the authenticated user's id, 0 when unauthenticated.
func UserID(c echo.Context) uint {
	if user := CurrentUser(c); user != nil {
		return user.ID
	}
	return 0
}
