package router

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"kanban/internal/config"
	"kanban/internal/handler"
	"kanban/internal/middleware"
	"kanban/internal/service"
)

// Handlers bundles the HTTP handlers mounted by Register.
type Handlers struct {
	Auth  *handler.AuthHandler
	Board *handler.BoardHandler
	List  *handler.ListHandler
	Label *handler.LabelHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, authService service.AuthService, h Handlers) {
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Validator = NewValidator()

	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomw.Secure())
	e.Use(echomw.BodyLimit("1M"))
	e.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")
	authenticated := middleware.Session(authService)

	// Public routes
	api.POST("/auth/signup", h.Auth.Signup)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh-token", h.Auth.RefreshToken)
	api.GET("/auth/login/google", h.Auth.GoogleLogin)
	api.GET("/auth/googleRedirect", h.Auth.GoogleRedirect)

	// Secured routes (require a current session)
	api.POST("/auth/logout", h.Auth.Logout, authenticated)

	api.GET("/board", h.Board.List, authenticated)
	api.GET("/board/is-liked", h.Board.IsLiked, authenticated)
	api.POST("/board", h.Board.Create, authenticated)
	api.POST("/board/like", h.Board.Like, authenticated)
	api.PUT("/board", h.Board.Update, authenticated)
	api.DELETE("/board", h.Board.Delete, authenticated)

	api.GET("/list", h.List.List, authenticated)
	api.POST("/list", h.List.Create, authenticated)
	api.PUT("/list", h.List.Update, authenticated)
	api.DELETE("/list", h.List.Delete, authenticated)

	api.GET("/label", h.Label.List, authenticated)
	api.POST("/label", h.Label.Create, authenticated)
	api.PUT("/label", h.Label.Update, authenticated)
	api.DELETE("/label", h.Label.Delete, authenticated)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator reports fields by their JSON names.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
