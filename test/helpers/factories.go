package helpers

import (
	"fmt"
	"testing"
	"time"

	"workreg_backend/internal/auth"
	"workreg_backend/internal/models"

	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// CreateUser inserts a user row in the transaction. OpenID is generated when
// empty; role and status default to a plain pending user.
func CreateUser(t *testing.T, tx *gorm.DB, user *models.User) *models.User {
	t.Helper()

	if user.OpenID == "" {
		user.OpenID = fmt.Sprintf("open-id-%d", time.Now().UnixNano())
	}
	if user.Role == "" {
		user.Role = models.UserRoleUser
	}
	if user.ApprovalStatus == "" {
		user.ApprovalStatus = models.ApprovalStatusPending
	}
	if user.LastSignedIn.IsZero() {
		user.LastSignedIn = time.Now()
	}

	if err := tx.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// LoginAs issues a session token for the user, as if they had completed the
// OAuth callback.
func LoginAs(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := auth.IssueToken(user.OpenID)
	if err != nil {
		t.Fatalf("Failed to issue session token: %v", err)
	}
	return token
}

// CreatePendingUser makes a freshly registered, not yet approved user and
// logs them in.
func CreatePendingUser(t *testing.T, tx *gorm.DB) (string, *models.User) {
	user := CreateUser(t, tx, &models.User{
		Name:  strPtr("Pending User"),
		Email: strPtr(fmt.Sprintf("pending_%d@test.com", time.Now().UnixNano())),
	})
	return LoginAs(t, user), user
}

// CreateApprovedUser makes an approved regular user and logs them in.
func CreateApprovedUser(t *testing.T, tx *gorm.DB) (string, *models.User) {
	user := CreateUser(t, tx, &models.User{
		Name:           strPtr("Approved User"),
		Email:          strPtr(fmt.Sprintf("approved_%d@test.com", time.Now().UnixNano())),
		ApprovalStatus: models.ApprovalStatusApproved,
	})
	return LoginAs(t, user), user
}

// CreateAdmin makes an admin and logs them in. Status stays pending on
// purpose: admins must pass every gate on role alone.
func CreateAdmin(t *testing.T, tx *gorm.DB) (string, *models.User) {
	user := CreateUser(t, tx, &models.User{
		Name:  strPtr("Admin User"),
		Email: strPtr(fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())),
		Role:  models.UserRoleAdmin,
	})
	return LoginAs(t, user), user
}

// CreateEmployer inserts an employer record directly in the transaction.
func CreateEmployer(t *testing.T, tx *gorm.DB, companyName string, createdBy uint) *models.Employer {
	t.Helper()

	employer := &models.Employer{
		EmployerType: models.EmployerTypeCompany,
		CompanyName:  companyName,
		TaxID:        fmt.Sprintf("TAX%d", time.Now().UnixNano()%1_000_000_000),
		CreatedBy:    &createdBy,
	}
	if err := tx.Create(employer).Error; err != nil {
		t.Fatalf("Failed to create test employer: %v", err)
	}
	return employer
}

// CreateWorker inserts a worker record directly in the transaction.
func CreateWorker(t *testing.T, tx *gorm.DB, fullName string, employerID *uint, createdBy uint) *models.Worker {
	t.Helper()

	worker := &models.Worker{
		FullName:         fullName,
		Nationality:      "Myanmar",
		PassportNo:       fmt.Sprintf("PP%d", time.Now().UnixNano()%1_000_000_000),
		EmployerID:       employerID,
		EmploymentStatus: models.EmploymentStatusActive,
		CreatedBy:        &createdBy,
	}
	if err := tx.Create(worker).Error; err != nil {
		t.Fatalf("Failed to create test worker: %v", err)
	}
	return worker
}
