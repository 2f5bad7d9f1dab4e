package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/pkg/contextkeys"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// GetDB extracts the *gorm.DB (pool or test transaction) placed into the gin
// context by DBMiddleware. Must be called by every handler that reaches the
// store.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "db key not found in context", "key", dbKey)
		panic("DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "db in context has wrong type", "type", fmt.Sprintf("%T", val))
		panic("db in context has incorrect type")
	}

	return db
}

// BindAndValidateJSON binds the body and runs struct validation. On failure
// the error response is already written and false is returned.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWarn(c.Request.Context(), "failed to bind JSON body", "error", err.Error(), "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.validate(c, obj)
}

// BindStrictJSON is BindAndValidateJSON with unknown keys rejected. Used for
// patch payloads where silently accepted extra fields would mask client bugs.
func (h *BaseHandler) BindStrictJSON(c *gin.Context, obj interface{}) bool {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		logger.CtxWarn(c.Request.Context(), "failed to bind strict JSON body", "error", err.Error(), "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

// BindQuery binds query-string parameters into obj.
func (h *BaseHandler) BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWarn(c.Request.Context(), "failed to bind query params", "error", err.Error(), "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}
	return true
}

// HandleServiceError forwards a service failure to the central responder.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(c.Request.Context(), "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(c.Request.Context(), "internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}
