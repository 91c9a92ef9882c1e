package handlers

import (
	"net/http"

	"workreg_backend/internal/middleware"
	"workreg_backend/internal/services"
	"workreg_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	uploads := r.Group("/uploads")
	uploads.Use(middleware.RequireApproved())
	{
		uploads.POST("", h.Upload)
		uploads.GET("", h.ListOwn)
	}
}

// ListOwn returns the caller's uploads, newest first.
func (h *UploadHandler) ListOwn(c *gin.Context) {
	user := middleware.CurrentUser(c)
	uploads, err := h.uploadService.ListUserUploads(h.GetDB(c), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, uploads)
}

// Upload accepts a multipart form with a single "file" field and stores the
// document under a collision-free key.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file field"))
		return
	}

	user := middleware.CurrentUser(c)
	resp, err := h.uploadService.UploadFile(c.Request.Context(), h.GetDB(c), user.ID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
