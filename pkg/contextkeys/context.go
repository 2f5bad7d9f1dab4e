package contextkeys

// Custom key type avoids collisions with other context users.
type contextKey string

// DBContextKey is the key under which the *gorm.DB handle travels through
// gin.Context, set by middleware.DBMiddleware.
const DBContextKey = contextKey("db")
