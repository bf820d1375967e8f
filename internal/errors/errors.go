package errors

import (
	"fmt"
	"net/http"
)

// StatusSessionExpired is returned when a token is well-formed and signed but
// its session id no longer matches the user's current session.
const StatusSessionExpired = 498

// Kind classifies application errors independently of the HTTP status used
// to report them.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthenticated
	KindSessionExpired
	KindForbidden
	KindNotFound
	KindConflict
	KindPrecondition
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindUnauthenticated:
		return "UNAUTHENTICATED"
	case KindSessionExpired:
		return "SESSION_EXPIRED"
	case KindForbidden:
		return "FORBIDDEN"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	case KindPrecondition:
		return "PRECONDITION_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

// AppError is an error raised deliberately by business code.
type AppError struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// Is matches any AppError of the same kind, so callers can test
// errors.Is(err, ErrForbidden) regardless of message or status.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrValidation      = &AppError{Kind: KindValidation, Status: http.StatusBadRequest, Message: "validation error"}
	ErrUnauthenticated = &AppError{Kind: KindUnauthenticated, Status: http.StatusUnauthorized, Message: "unauthorized"}
	ErrSessionExpired  = &AppError{Kind: KindSessionExpired, Status: StatusSessionExpired, Message: "session expired"}
	ErrForbidden       = &AppError{Kind: KindForbidden, Status: http.StatusForbidden, Message: "forbidden"}
	ErrNotFound        = &AppError{Kind: KindNotFound, Status: http.StatusNotFound, Message: "not found"}
	ErrConflict        = &AppError{Kind: KindConflict, Status: http.StatusBadRequest, Message: "conflict"}
	ErrPrecondition    = &AppError{Kind: KindPrecondition, Status: http.StatusPreconditionFailed, Message: "precondition failed"}
)

// Validation reports malformed or missing input.
func Validation(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindValidation, Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Unauthenticated reports a missing, invalid or expired token or bad credentials.
func Unauthenticated(msg string) *AppError {
	return &AppError{Kind: KindUnauthenticated, Status: http.StatusUnauthorized, Message: msg}
}

// SessionExpired reports a token bound to a rotated session.
func SessionExpired(msg string) *AppError {
	return &AppError{Kind: KindSessionExpired, Status: StatusSessionExpired, Message: msg}
}

// Forbidden reports an authenticated caller lacking role or ownership. The
// status varies by endpoint (400 or 403).
func Forbidden(status int, msg string) *AppError {
	return &AppError{Kind: KindForbidden, Status: status, Message: msg}
}

// NotFound reports a referenced entity that does not exist.
func NotFound(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Status: http.StatusNotFound, Message: msg}
}

// Conflict reports a duplicate or otherwise conflicting write.
func Conflict(msg string) *AppError {
	return &AppError{Kind: KindConflict, Status: http.StatusBadRequest, Message: msg}
}

// Precondition reports a request missing a required body or parameter.
func Precondition(msg string) *AppError {
	return &AppError{Kind: KindPrecondition, Status: http.StatusPreconditionFailed, Message: msg}
}
