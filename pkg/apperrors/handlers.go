package apperrors

import (
	"jobboard_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope for every error reply.
type ErrorResponse struct {
	Error *AppError `json:"error"`
	// Message duplicates Error.Message at the top level for simple clients.
	Message string `json:"message"`
}

// HandleError converts err into an ErrorResponse and writes it. Anything that
// is not an AppError becomes a 500 with the generic "Server error" message;
// the cause is logged, never returned.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", appErr, "path", c.Request.URL.Path)
		// Never leak internals past this point.
		appErr.Details = nil
		appErr.Message = "Server error"
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr, Message: appErr.Message})
}

// AsAppError unwraps err into an *AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
