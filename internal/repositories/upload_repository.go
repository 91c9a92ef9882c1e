package repositories

import (
	"errors"

	"workreg_backend/internal/models"

	"gorm.io/gorm"
)

var ErrUploadNotFound = errors.New("upload not found")

type UploadRepository interface {
	Create(db *gorm.DB, upload *models.Upload) error
	GetByKey(db *gorm.DB, key string) (*models.Upload, error)
	FindByUser(db *gorm.DB, userID uint) ([]models.Upload, error)
}

type UploadRepositoryImpl struct{}

func NewUploadRepository() UploadRepository {
	return &UploadRepositoryImpl{}
}

func (r *UploadRepositoryImpl) Create(db *gorm.DB, upload *models.Upload) error {
	return db.Create(upload).Error
}

func (r *UploadRepositoryImpl) GetByKey(db *gorm.DB, key string) (*models.Upload, error) {
	var upload models.Upload
	err := db.First(&upload, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	return &upload, nil
}

func (r *UploadRepositoryImpl) FindByUser(db *gorm.DB, userID uint) ([]models.Upload, error) {
	var uploads []models.Upload
	if err := db.Where("uploaded_by = ?", userID).Order("created_at DESC").Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}
