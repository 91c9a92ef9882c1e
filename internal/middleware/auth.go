package middleware

import (
	"net/http"
	"strconv"

	"workreg_backend/internal/auth"
	"workreg_backend/internal/config"
	"workreg_backend/internal/logger"
	"workreg_backend/internal/models"
	"workreg_backend/internal/repositories"
	"workreg_backend/pkg/apperrors"
	"workreg_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// CurrentUserMiddleware resolves the session cookie to a User row and stores
// it in the context. A missing or invalid session degrades to "no user" and
// the request continues; only an unreachable database aborts (fail closed:
// "cannot determine status" must never grant access).
func CurrentUserMiddleware(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := config.GetConfig()

		cookie, err := c.Cookie(cfg.Session.CookieName)
		if err != nil || cookie == "" {
			c.Next()
			return
		}

		claims, err := auth.ParseToken(cookie)
		if err != nil {
			logger.CtxDebug(c.Request.Context(), "session token rejected", "reason", err.Error())
			c.Next()
			return
		}

		db := GetDB(c)
		user, err := userRepo.GetByOpenID(db, claims.OpenID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				c.Next()
				return
			}
			apperrors.HandleError(c, apperrors.NewUnavailableError(err))
			c.Abort()
			return
		}

		c.Set(string(contextkeys.CurrentUserKey), user)
		ctx := logger.WithUserID(c.Request.Context(), strconv.FormatUint(uint64(user.ID), 10))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// CurrentUser returns the resolved user, or nil for unauthenticated
// requests.
func CurrentUser(c *gin.Context) *models.User {
	val, ok := c.Get(string(contextkeys.CurrentUserKey))
	if !ok {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// RequireApproved enforces the approval gate in front of protected routes.
// The verdict is recomputed from the current row on every request.
func RequireApproved() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)

		switch access := auth.Classify(user); access {
		case auth.AccessUnauthenticated:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    apperrors.NewUnauthorizedError("Authentication required"),
				"redirect": "/api/v1/auth/login",
			})
		case auth.AccessPending:
			// The pending view shows who the user is and their status, with
			// logout as the only action.
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    apperrors.NewForbiddenError("Account is not approved"),
				"access":   access,
				"redirect": "/pending",
				"user": gin.H{
					"name":            user.Name,
					"email":           user.Email,
					"approval_status": user.ApprovalStatus,
				},
			})
		default:
			c.Next()
		}
	}
}

// RequireAdmin guards admin-only routes. Role is the only criterion:
// approval status is not consulted for admins.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    apperrors.NewUnauthorizedError("Authentication required"),
				"redirect": "/api/v1/auth/login",
			})
			return
		}
		if !auth.IsAdmin(user) {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}
		c.Next()
	}
}
