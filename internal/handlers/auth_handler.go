package handlers

import (
	"net/http"

	"workreg_backend/internal/auth"
	"workreg_backend/internal/config"
	"workreg_backend/internal/middleware"
	"workreg_backend/internal/services"
	"workreg_backend/internal/services/dto"
	"workreg_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const stateCookieName = "oauth_state"

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.GET("/login", h.Login)
		authGroup.GET("/callback", h.Callback)
		authGroup.GET("/me", h.Me)
		authGroup.POST("/logout", h.Logout)
	}
}

// Login redirects the browser to the provider authorize URL. The CSRF state
// lives in a short-lived cookie until the callback.
func (h *AuthHandler) Login(c *gin.Context) {
	cfg := config.GetConfig()

	state := uuid.NewString()
	c.SetCookie(stateCookieName, state, 600, "/", "", cfg.Session.Secure, true)

	c.Redirect(http.StatusTemporaryRedirect, h.authService.LoginURL(state))
}

// Callback finishes the OAuth flow: state check, code exchange, upsert,
// session cookie.
func (h *AuthHandler) Callback(c *gin.Context) {
	cfg := config.GetConfig()

	state := c.Query("state")
	cookieState, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != cookieState {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid OAuth state"))
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", cfg.Session.Secure, true)

	code := c.Query("code")
	if code == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing authorization code"))
		return
	}

	db := h.GetDB(c)
	_, token, err := h.authService.HandleCallback(c.Request.Context(), db, code)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	maxAge := cfg.Session.TTLMinutes * 60
	c.SetCookie(cfg.Session.CookieName, token, maxAge, "/", "", cfg.Session.Secure, true)

	c.Redirect(http.StatusTemporaryRedirect, "/")
}

// Me returns the current-user snapshot plus the gate verdict. The client
// refetches this on every protected-route navigation instead of caching a
// stale verdict.
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, dto.MeResponse{
		User:   user,
		Access: string(auth.Classify(user)),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	cfg := config.GetConfig()
	c.SetCookie(cfg.Session.CookieName, "", -1, "/", "", cfg.Session.Secure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
