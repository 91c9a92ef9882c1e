package services

import (
	"context"
	"time"

	"workreg_backend/internal/auth"
	"workreg_backend/internal/config"
	"workreg_backend/internal/logger"
	"workreg_backend/internal/models"
	"workreg_backend/internal/oauth"
	"workreg_backend/internal/repositories"
	"workreg_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	// LoginURL builds the provider authorize URL for the given CSRF state.
	LoginURL(state string) string

	// HandleCallback exchanges the code, upserts the user by OpenID and
	// returns the user together with a signed session token.
	HandleCallback(ctx context.Context, db *gorm.DB, code string) (*models.User, string, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	provider *oauth.Provider
	cfg      *config.Config
}

func NewAuthService(userRepo repositories.UserRepository, provider *oauth.Provider, cfg *config.Config) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		provider: provider,
		cfg:      cfg,
	}
}

func (s *AuthServiceImpl) LoginURL(state string) string {
	return s.provider.AuthCodeURL(state)
}

func (s *AuthServiceImpl) HandleCallback(ctx context.Context, db *gorm.DB, code string) (*models.User, string, error) {
	info, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return nil, "", apperrors.Wrap(err, apperrors.CodeUnauthorized, "auth", "Login failed", 401)
	}

	user := &models.User{
		OpenID:       info.OpenID,
		Name:         info.Name,
		Email:        info.Email,
		LoginMethod:  info.LoginMethod,
		LastSignedIn: time.Now(),
	}

	// The designated owner is promoted to admin at upsert time. Note the
	// approval status stays at its default; the gate's role check makes
	// that moot for admins.
	promote := s.cfg.OAuth.OwnerOpenID != "" && info.OpenID == s.cfg.OAuth.OwnerOpenID
	if promote {
		user.Role = models.UserRoleAdmin
	}

	saved, err := s.userRepo.Upsert(db, user, promote)
	if err != nil {
		return nil, "", apperrors.NewUnavailableError(err)
	}

	token, err := auth.IssueToken(saved.OpenID)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user signed in", "user_id", saved.ID, "role", saved.Role, "approval_status", saved.ApprovalStatus)
	return saved, token, nil
}
