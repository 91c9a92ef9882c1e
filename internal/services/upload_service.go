package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"workreg_backend/internal/config"
	"workreg_backend/internal/logger"
	"workreg_backend/internal/models"
	"workreg_backend/internal/repositories"
	"workreg_backend/internal/services/dto"
	"workreg_backend/internal/storage"
	"workreg_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadService is a passthrough: size/type checks, store bytes, record row.
type UploadService interface {
	UploadFile(ctx context.Context, db *gorm.DB, userID uint, file *multipart.FileHeader) (*dto.UploadResponse, error)
	ListUserUploads(db *gorm.DB, userID uint) ([]models.Upload, error)
}

type uploadService struct {
	uploadRepo repositories.UploadRepository
	storage    storage.Storage
	cfg        *config.Config
}

func NewUploadService(uploadRepo repositories.UploadRepository, store storage.Storage, cfg *config.Config) UploadService {
	return &uploadService{
		uploadRepo: uploadRepo,
		storage:    store,
		cfg:        cfg,
	}
}

func (s *uploadService) UploadFile(ctx context.Context, db *gorm.DB, userID uint, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	if file.Size > s.cfg.Upload.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	if !s.typeAllowed(contentType) {
		return nil, apperrors.ErrUnsupportedFileType
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.NewBadRequestError("failed to read uploaded file: " + err.Error())
	}
	defer src.Close()

	// Same key shape the old upload flow produced: timestamp prefix keeps
	// listings chronological, the uuid avoids collisions.
	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := fmt.Sprintf("%d-%s%s", time.Now().Unix(), uuid.NewString(), ext)

	if err := s.storage.Save(ctx, key, src, contentType); err != nil {
		return nil, apperrors.NewUnavailableError(err)
	}

	url, err := s.storage.GetURL(ctx, key)
	if err != nil {
		return nil, apperrors.NewUnavailableError(err)
	}

	upload := &models.Upload{
		Key:          key,
		OriginalName: file.Filename,
		ContentType:  contentType,
		Size:         file.Size,
		URL:          url,
		UploadedBy:   userID,
	}
	if err := s.uploadRepo.Create(db, upload); err != nil {
		// The object is stored but unrecorded; remove it so storage and DB
		// stay consistent.
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			logger.CtxWarn(ctx, "failed to clean up orphaned object", "key", key, "error", delErr.Error())
		}
		return nil, apperrors.NewUnavailableError(err)
	}

	logger.CtxInfo(ctx, "file uploaded", "key", key, "size", file.Size, "content_type", contentType)

	return &dto.UploadResponse{
		Success: true,
		URL:     url,
		Key:     key,
	}, nil
}

func (s *uploadService) ListUserUploads(db *gorm.DB, userID uint) ([]models.Upload, error) {
	uploads, err := s.uploadRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.NewUnavailableError(err)
	}
	return uploads, nil
}

func (s *uploadService) typeAllowed(contentType string) bool {
	for _, allowed := range s.cfg.Upload.AllowedTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}
