package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope wraps every payload returned by the API.
type Envelope struct {
	StatusCode int         `json:"status_code"`
	Flag       string      `json:"flag"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

type status struct {
	flag    string
	message string
}

var statusTable = map[int]status{
	http.StatusOK:                  {"OK", "Process Successful"},
	http.StatusNoContent:           {"Not created", "Could not create"},
	http.StatusBadRequest:          {"Bad Request", "The Server could not process the request due to bad syntax"},
	http.StatusUnauthorized:        {"Unauthorized", "Unauthorized access"},
	http.StatusForbidden:           {"Forbidden", "forbidden"},
	http.StatusNotFound:            {"Not found", "Not found"},
	http.StatusPreconditionFailed:  {"Pre-condition failed", "Pre-condition failed"},
	498:                            {"Invalid Token", "Invalid Token"},
	http.StatusInternalServerError: {"Internal Server error", "An Internal Server error occured"},
}

// New builds the envelope for code, deriving flag and message from the
// status table. Codes outside the table fall back to the HTTP status text.
func New(code int, data interface{}) Envelope {
	s, ok := statusTable[code]
	if !ok {
		text := http.StatusText(code)
		s = status{flag: text, message: text}
	}
	return Envelope{
		StatusCode: code,
		Flag:       s.flag,
		Message:    s.message,
		Data:       data,
	}
}

// JSON writes data wrapped in the envelope with the given status.
func JSON(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, New(code, data))
}

// OK writes a 200 envelope.
func OK(c echo.Context, data interface{}) error {
	return JSON(c, http.StatusOK, data)
}
