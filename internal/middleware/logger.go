package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	apperrors "kanban/internal/errors"
	"kanban/internal/logger"
)

// RequestLogger logs one line per request through zerolog.
func RequestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			event := logger.Info()
			if v.Status >= 500 {
				event = logger.Error().Err(v.Error)
			} else if v.Status >= 400 {
				event = logger.Warn()
				var appErr *apperrors.AppError
				if errors.As(v.Error, &appErr) {
					event = event.Str("error_kind", appErr.Kind.String())
				}
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
