package repositories

import (
	"errors"
	"time"

	"workreg_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	// Upsert inserts the user or, on open_id conflict, refreshes
	// last_signed_in and whichever profile fields the provider sent. When
	// promoteRole is true the role column is written too (owner bootstrap).
	// Approval columns are never touched by the login path.
	Upsert(db *gorm.DB, user *models.User, promoteRole bool) (*models.User, error)

	GetByID(db *gorm.DB, id uint) (*models.User, error)
	GetByOpenID(db *gorm.DB, openID string) (*models.User, error)

	// Admin listing
	FindAll(db *gorm.DB) ([]models.User, error)
	FindByApprovalStatus(db *gorm.DB, status models.ApprovalStatus) ([]models.User, error)

	// Single-row status transitions. Both return ErrUserNotFound when the
	// update affects zero rows.
	Approve(db *gorm.DB, targetID, approvedBy uint, at time.Time) error
	Reject(db *gorm.DB, targetID uint, clearAudit bool) error
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) Upsert(db *gorm.DB, user *models.User, promoteRole bool) (*models.User, error) {
	// A nil pointer means the provider omitted the field; omitted fields
	// keep their stored value instead of being nulled out.
	assign := []string{"last_signed_in", "updated_at"}
	if user.Name != nil {
		assign = append(assign, "name")
	}
	if user.Email != nil {
		assign = append(assign, "email")
	}
	if user.LoginMethod != nil {
		assign = append(assign, "login_method")
	}
	if promoteRole {
		assign = append(assign, "role")
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.AssignmentColumns(assign),
	}).Create(user).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the merged row (the conflict path leaves
	// user.ID and approval columns stale on the in-memory struct).
	return r.GetByOpenID(db, user.OpenID)
}

func (r *UserRepositoryImpl) GetByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) GetByOpenID(db *gorm.DB, openID string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "open_id = ?", openID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindAll(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepositoryImpl) FindByApprovalStatus(db *gorm.DB, status models.ApprovalStatus) ([]models.User, error) {
	var users []models.User
	if err := db.Where("approval_status = ?", status).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepositoryImpl) Approve(db *gorm.DB, targetID, approvedBy uint, at time.Time) error {
	result := db.Model(&models.User{}).
		Where("id = ?", targetID).
		Updates(map[string]interface{}{
			"approval_status": models.ApprovalStatusApproved,
			"approved_by":     approvedBy,
			"approved_at":     at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Reject(db *gorm.DB, targetID uint, clearAudit bool) error {
	updates := map[string]interface{}{
		"approval_status": models.ApprovalStatusRejected,
	}
	if clearAudit {
		updates["approved_by"] = nil
		updates["approved_at"] = nil
	}

	result := db.Model(&models.User{}).Where("id = ?", targetID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
