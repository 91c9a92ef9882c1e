package contextkeys

// ContextKey is the typed key used for values shared through gin.Context
// and request contexts.
type ContextKey string

const (
	// DBContextKey carries the *gorm.DB handle (pool or transaction) set by
	// middleware.DBMiddleware.
	DBContextKey ContextKey = "app_db"

	// CurrentUserKey carries the resolved *models.User, or is absent when
	// the request is unauthenticated.
	CurrentUserKey ContextKey = "current_user"
)
