package handlers

import (
	"net/http"

	"workreg_backend/internal/middleware"
	"workreg_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the admin user-management API: listing registered
// users and the approve/reject transitions.
type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin/users")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("", h.ListUsers)
		admin.GET("/pending", h.ListPendingUsers)
		admin.POST("/:userId/approve", h.ApproveUser)
		admin.POST("/:userId/reject", h.RejectUser)
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) ListPendingUsers(c *gin.Context) {
	users, err := h.userService.ListPendingUsers(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) ApproveUser(c *gin.Context) {
	targetID, ok := h.ParseIDParam(c, "userId")
	if !ok {
		return
	}

	user, err := h.userService.Approve(h.GetDB(c), targetID, middleware.CurrentUser(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (h *UserHandler) RejectUser(c *gin.Context) {
	targetID, ok := h.ParseIDParam(c, "userId")
	if !ok {
		return
	}

	user, err := h.userService.Reject(h.GetDB(c), targetID, middleware.CurrentUser(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
