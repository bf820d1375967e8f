package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "kanban/internal/errors"
	"kanban/internal/logger"
	"kanban/internal/response"
)

// FieldError describes one rejected input field.
type FieldError struct {
	FieldName string `json:"fieldName"`
	Message   string `json:"message"`
}

// ErrorHandler maps any error returned by a handler or middleware to the
// response envelope. It is installed as echo's HTTPErrorHandler.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, data := translate(err)
	if code >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request().Method).
			Str("uri", c.Request().RequestURI).
			Msg("unhandled error")
		if hub := sentry.GetHubFromContext(c.Request().Context()); hub != nil {
			hub.CaptureException(err)
		} else {
			sentry.CaptureException(err)
		}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = response.JSON(c, code, data)
	}
	if err != nil {
		logger.Error().Err(err).Msg("write error response")
	}
}

func translate(err error) (int, interface{}) {
	var (
		appErr   *apperrors.AppError
		fieldErr validator.ValidationErrors
		bindErr  *echo.BindingError
		httpErr  *echo.HTTPError
	)

	switch {
	case errors.As(err, &appErr):
		return appErr.Status, appErr.Message
	case errors.As(err, &fieldErr):
		return http.StatusBadRequest, fieldErrors(fieldErr)
	case errors.As(err, &bindErr):
		return http.StatusBadRequest, []FieldError{{FieldName: bindErr.Field, Message: "invalid value"}}
	case errors.As(err, &httpErr):
		if httpErr.Code >= http.StatusInternalServerError {
			return http.StatusInternalServerError, "Internal server error"
		}
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, "The requested record does not exist."
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusBadRequest, "Unique constraint failed: Duplicate entry detected."
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return http.StatusBadRequest, "Foreign key constraint failed: Invalid reference."
	}
	return http.StatusInternalServerError, "Internal server error"
}

func fieldErrors(errs validator.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		out = append(out, FieldError{FieldName: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email"
	case "url":
		return "Invalid url"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must contain at least %s character(s)", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must contain at most %s character(s)", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be less than or equal to %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "eqfield":
		return "Passwords do not match"
	}
	return fe.Field() + " is invalid"
}
