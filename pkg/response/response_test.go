package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusOK, "2 departments found", []string{"a", "b"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(200), body["code"])
	assert.Equal(t, "2 departments found", body["message"])
	assert.Len(t, body["data"], 2)
	assert.NotContains(t, body, "error")
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name    string
		write   func(w http.ResponseWriter)
		code    int
		message string
	}{
		{name: "bad request", write: func(w http.ResponseWriter) { BadRequest(w, "") }, code: 400, message: "Bad request"},
		{name: "unauthorized", write: func(w http.ResponseWriter) { Unauthorized(w, "Invalid token") }, code: 401, message: "Invalid token"},
		{name: "forbidden", write: func(w http.ResponseWriter) { Forbidden(w, "") }, code: 403, message: "Forbidden"},
		{name: "not found", write: func(w http.ResponseWriter) { NotFound(w, "") }, code: 404, message: "Resource not found"},
		{name: "internal", write: func(w http.ResponseWriter) { InternalServerError(w, "") }, code: 500, message: "Internal server error"},
		{name: "unavailable", write: func(w http.ResponseWriter) { ServiceUnavailable(w, "") }, code: 503, message: "Service unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.code, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, float64(tt.code), body["code"])
			assert.Equal(t, tt.message, body["message"])
		})
	}
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"table": "table is required"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, map[string]any{"table": "table is required"}, body["error"])
}
