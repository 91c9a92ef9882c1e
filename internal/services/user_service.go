package services

import (
	"time"

	"workreg_backend/internal/auth"
	"workreg_backend/internal/config"
	"workreg_backend/internal/models"
	"workreg_backend/internal/repositories"
	"workreg_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// UserService carries the admin approval workflow: listing users and the
// approve/reject status transitions.
type UserService interface {
	ListUsers(db *gorm.DB) ([]models.User, error)
	ListPendingUsers(db *gorm.DB) ([]models.User, error)

	// Approve sets approval_status=approved, approved_by and approved_at.
	// Idempotent: re-approving re-applies the same values. Also the
	// rejected -> approved re-approval path.
	Approve(db *gorm.DB, targetID uint, acting *models.User) (*models.User, error)

	// Reject sets approval_status=rejected. Audit columns are kept unless
	// approval.clear_audit_on_reject is set.
	Reject(db *gorm.DB, targetID uint, acting *models.User) (*models.User, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repositories.UserRepository, cfg *config.Config) UserService {
	return &UserServiceImpl{userRepo: userRepo, cfg: cfg}
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB) ([]models.User, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.NewUnavailableError(err)
	}
	return users, nil
}

func (s *UserServiceImpl) ListPendingUsers(db *gorm.DB) ([]models.User, error) {
	users, err := s.userRepo.FindByApprovalStatus(db, models.ApprovalStatusPending)
	if err != nil {
		return nil, apperrors.NewUnavailableError(err)
	}
	return users, nil
}

func (s *UserServiceImpl) Approve(db *gorm.DB, targetID uint, acting *models.User) (*models.User, error) {
	if !auth.IsAdmin(acting) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if err := s.userRepo.Approve(db, targetID, acting.ID, time.Now()); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.NewUnavailableError(err)
	}

	return s.userRepo.GetByID(db, targetID)
}

func (s *UserServiceImpl) Reject(db *gorm.DB, targetID uint, acting *models.User) (*models.User, error) {
	if !auth.IsAdmin(acting) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if err := s.userRepo.Reject(db, targetID, s.cfg.Approval.ClearAuditOnReject); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.NewUnavailableError(err)
	}

	return s.userRepo.GetByID(db, targetID)
}
