package models

import "time"

// User is created (or refreshed) on every successful OAuth callback and is
// never deleted by the application. ApprovalStatus changes only through the
// admin transition endpoints.
type User struct {
	BaseModel
	OpenID         string         `gorm:"uniqueIndex;size:64;not null" json:"open_id"`
	Name           *string        `json:"name"`
	Email          *string        `gorm:"size:320" json:"email"`
	LoginMethod    *string        `gorm:"size:64" json:"login_method"`
	Role           UserRole       `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	ApprovalStatus ApprovalStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"approval_status"`
	ApprovedBy     *uint          `json:"approved_by"`
	ApprovedAt     *time.Time     `json:"approved_at"`
	LastSignedIn   time.Time      `gorm:"not null;default:now()" json:"last_signed_in"`
}
