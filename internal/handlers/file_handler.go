package handlers

import (
	"io"
	"net/http"
	"strings"

	"workreg_backend/internal/middleware"
	"workreg_backend/internal/repositories"
	"workreg_backend/internal/storage"
	"workreg_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler streams stored documents back to the client. Object storage
// backends serve files by URL directly; this route backs the local driver
// and acts as an authenticated fallback for the others.
type FileHandler struct {
	*BaseHandler
	store      storage.Storage
	uploadRepo repositories.UploadRepository
}

func NewFileHandler(base *BaseHandler, store storage.Storage, uploadRepo repositories.UploadRepository) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		store:       store,
		uploadRepo:  uploadRepo,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	files := r.Group("/files")
	files.Use(middleware.RequireApproved())
	{
		files.GET("/*filepath", h.Serve)
	}
}

func (h *FileHandler) Serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("filepath"), "/")
	if key == "" || strings.Contains(key, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file path"))
		return
	}

	upload, err := h.uploadRepo.GetByKey(h.GetDB(c), key)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUploadNotFound) {
			apperrors.HandleError(c, apperrors.ErrNotFound(err))
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	reader, err := h.store.Get(c.Request.Context(), key)
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrNotFound(err))
		return
	}
	defer reader.Close()

	c.Header("Content-Type", upload.ContentType)
	c.Header("Content-Disposition", `inline; filename="`+upload.OriginalName+`"`)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}
