package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorUnwrap(t *testing.T) {
	inner := errors.New("db gone")
	appErr := Wrap(inner, CodeInternalError, "system", "boom", http.StatusInternalServerError)

	assert.ErrorIs(t, appErr, inner)
	assert.Contains(t, appErr.Error(), "boom")
	assert.Contains(t, appErr.Error(), "db gone")
}

func TestAsAppError(t *testing.T) {
	appErr := NewBadRequestError("nope")

	got, ok := AsAppError(appErr)
	require.True(t, ok)
	assert.Equal(t, appErr, got)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestMarshalDropsWrappedError(t *testing.T) {
	appErr := Wrap(errors.New("secret internals"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret internals")
	assert.Contains(t, string(data), "Internal server error")
}

func runHandleError(err error, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)

	HandleError(c, err)
	return w
}

func TestHandleErrorEnvelope(t *testing.T) {
	w := runHandleError(ErrEmailAlreadyExists, "/auth/register")

	assert.Equal(t, http.StatusConflict, w.Code)

	var body struct {
		StatusCode int    `json:"statusCode"`
		Timestamp  string `json:"timestamp"`
		Path       string `json:"path"`
		Error      struct {
			Code    string `json:"code"`
			Domain  string `json:"domain"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, http.StatusConflict, body.StatusCode)
	assert.Equal(t, "/auth/register", body.Path)
	assert.NotEmpty(t, body.Timestamp)
	assert.Equal(t, string(CodeConflict), body.Error.Code)
	assert.Equal(t, "Email already exists in the system", body.Error.Message)
}

func TestHandleErrorMasksUnknownErrors(t *testing.T) {
	w := runHandleError(errors.New("pq: connection refused"), "/tasks")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	w := runHandleError(ValidationError(map[string]string{"email": "Must be a valid email address"}), "/auth/register")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Must be a valid email address")
}
