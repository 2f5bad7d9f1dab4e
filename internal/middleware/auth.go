package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/pkg/apperrors"
)

const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// AuthMiddleware verifies the Bearer token and stores the authenticated
// identity and role in the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			abortWithError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, models.UserRole(claims.Role))

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleMiddleware gates the route to a single required role. Runs after
// AuthMiddleware.
func RoleMiddleware(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextRoleKey)
		if !exists {
			abortWithError(c, apperrors.ErrInsufficientPermissions)
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			roleStr, isString := roleVal.(string)
			if !isString {
				abortWithError(c, apperrors.ErrInsufficientPermissions)
				return
			}
			role = models.UserRole(roleStr)
		}

		if role != requiredRole {
			abortWithError(c, apperrors.ErrInsufficientPermissions)
			return
		}

		c.Next()
	}
}

// AdminMiddleware is the admin-only gate.
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(models.UserRoleAdmin)
}

// GetUserID returns the authenticated user id or "".
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ContextUserIDKey)
	if !exists {
		return ""
	}
	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

func abortWithError(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.HTTPCode, apperrors.ErrorResponse{Error: err, Message: err.Message})
}
