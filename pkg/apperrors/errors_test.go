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

func TestAppError_UnwrapAndMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	appErr := Wrap(cause, CodeDatabaseError, "job", "failed to list jobs", http.StatusInternalServerError)

	assert.ErrorIs(t, appErr, cause)
	assert.Contains(t, appErr.Error(), "failed to list jobs")
	assert.Contains(t, appErr.Error(), "connection refused")
}

func TestAppError_JSONHidesInternals(t *testing.T) {
	t.Parallel()

	cause := errors.New("pq: relation does not exist")
	appErr := Wrap(cause, CodeInternalError, "system", "Server error", http.StatusInternalServerError)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "relation does not exist")
	assert.Contains(t, string(raw), "Server error")
}

func TestHandleError_AppErrorPassesThrough(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/jobs/xyz", nil)

	HandleError(c, ErrInvalidJobID)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid job id")
}

func TestHandleError_UnknownErrorBecomesGeneric500(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/jobs", nil)

	HandleError(c, errors.New("driver: bad connection"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Server error")
	// Internal detail never leaks.
	assert.NotContains(t, w.Body.String(), "bad connection")
}

func TestDomainErrors_StatusCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  *AppError
		code int
	}{
		{ErrEmailAlreadyExists, http.StatusConflict},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrInsufficientPermissions, http.StatusForbidden},
		{ErrInvalidJobID, http.StatusBadRequest},
		{ErrJobNotFound, http.StatusNotFound},
		{ErrMissingJobFields, http.StatusBadRequest},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.HTTPCode, tc.err.Message)
	}
}
