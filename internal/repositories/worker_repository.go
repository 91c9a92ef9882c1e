package repositories

import (
	"errors"

	"workreg_backend/internal/models"

	"gorm.io/gorm"
)

var ErrWorkerNotFound = errors.New("worker not found")

type WorkerRepository interface {
	Create(db *gorm.DB, worker *models.Worker) error
	GetByID(db *gorm.DB, id uint) (*models.Worker, error)
	FindAll(db *gorm.DB) ([]models.Worker, error)
	FindByEmployerID(db *gorm.DB, employerID uint) ([]models.Worker, error)
	Update(db *gorm.DB, id uint, updates map[string]interface{}) (*models.Worker, error)
	Delete(db *gorm.DB, id uint) error
}

type WorkerRepositoryImpl struct{}

func NewWorkerRepository() WorkerRepository {
	return &WorkerRepositoryImpl{}
}

func (r *WorkerRepositoryImpl) Create(db *gorm.DB, worker *models.Worker) error {
	return db.Create(worker).Error
}

func (r *WorkerRepositoryImpl) GetByID(db *gorm.DB, id uint) (*models.Worker, error) {
	var worker models.Worker
	err := db.First(&worker, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return &worker, nil
}

func (r *WorkerRepositoryImpl) FindAll(db *gorm.DB) ([]models.Worker, error) {
	var workers []models.Worker
	if err := db.Order("created_at DESC").Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

func (r *WorkerRepositoryImpl) FindByEmployerID(db *gorm.DB, employerID uint) ([]models.Worker, error) {
	var workers []models.Worker
	if err := db.Where("employer_id = ?", employerID).Order("created_at DESC").Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

func (r *WorkerRepositoryImpl) Update(db *gorm.DB, id uint, updates map[string]interface{}) (*models.Worker, error) {
	result := db.Model(&models.Worker{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrWorkerNotFound
	}
	return r.GetByID(db, id)
}

func (r *WorkerRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Worker{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkerNotFound
	}
	return nil
}
