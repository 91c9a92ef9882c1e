package repositories

import (
	"errors"

	"workreg_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEmployerNotFound = errors.New("employer not found")

type EmployerRepository interface {
	Create(db *gorm.DB, employer *models.Employer) error
	GetByID(db *gorm.DB, id uint) (*models.Employer, error)
	FindAll(db *gorm.DB) ([]models.Employer, error)
	Update(db *gorm.DB, id uint, updates map[string]interface{}) (*models.Employer, error)
	Delete(db *gorm.DB, id uint) error
}

type EmployerRepositoryImpl struct{}

func NewEmployerRepository() EmployerRepository {
	return &EmployerRepositoryImpl{}
}

func (r *EmployerRepositoryImpl) Create(db *gorm.DB, employer *models.Employer) error {
	return db.Create(employer).Error
}

func (r *EmployerRepositoryImpl) GetByID(db *gorm.DB, id uint) (*models.Employer, error) {
	var employer models.Employer
	err := db.First(&employer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployerNotFound
		}
		return nil, err
	}
	return &employer, nil
}

func (r *EmployerRepositoryImpl) FindAll(db *gorm.DB) ([]models.Employer, error) {
	var employers []models.Employer
	if err := db.Order("created_at DESC").Find(&employers).Error; err != nil {
		return nil, err
	}
	return employers, nil
}

func (r *EmployerRepositoryImpl) Update(db *gorm.DB, id uint, updates map[string]interface{}) (*models.Employer, error) {
	result := db.Model(&models.Employer{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrEmployerNotFound
	}
	return r.GetByID(db, id)
}

func (r *EmployerRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Employer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmployerNotFound
	}
	return nil
}
