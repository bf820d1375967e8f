package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_KnownCodes(t *testing.T) {
	tests := []struct {
		code int
		flag string
	}{
		{http.StatusOK, "OK"},
		{http.StatusNoContent, "Not created"},
		{http.StatusBadRequest, "Bad Request"},
		{http.StatusUnauthorized, "Unauthorized"},
		{http.StatusForbidden, "Forbidden"},
		{http.StatusNotFound, "Not found"},
		{http.StatusPreconditionFailed, "Pre-condition failed"},
		{498, "Invalid Token"},
		{http.StatusInternalServerError, "Internal Server error"},
	}

	for _, tt := range tests {
		env := New(tt.code, nil)
		assert.Equal(t, tt.code, env.StatusCode)
		assert.Equal(t, tt.flag, env.Flag)
		assert.NotEmpty(t, env.Message)
	}
}

func TestNew_UnknownCodeUsesStatusText(t *testing.T) {
	env := New(http.StatusTooManyRequests, "slow down")

	assert.Equal(t, "Too Many Requests", env.Flag)
	assert.Equal(t, "Too Many Requests", env.Message)
	assert.Equal(t, "slow down", env.Data)
}

func TestOK_WritesEnvelope(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, OK(c, map[string]int{"id": 1}))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(200), body["status_code"])
	assert.Equal(t, "OK", body["flag"])
	assert.Equal(t, "Process Successful", body["message"])
	assert.Equal(t, map[string]interface{}{"id": float64(1)}, body["data"])
}
