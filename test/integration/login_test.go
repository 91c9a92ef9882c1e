package integration_test

import (
	"fmt"
	"testing"
	"time"

	"workreg_backend/internal/models"
	"workreg_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Repository-level coverage of the login upsert: the open_id conflict path
// must refresh the sign-in columns without ever touching role or approval.

func ptr(s string) *string { return &s }

func uniqueOpenID() string {
	return fmt.Sprintf("login-open-id-%d", time.Now().UnixNano())
}

func TestLoginUpsert_FirstLoginCreatesPendingUser(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	repo := repositories.NewUserRepository()

	created, err := repo.Upsert(tx, &models.User{
		OpenID:       uniqueOpenID(),
		Name:         ptr("First Login"),
		Email:        ptr("first.login@test.com"),
		LoginMethod:  ptr("google"),
		LastSignedIn: time.Now(),
	}, false)
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, models.UserRoleUser, created.Role)
	assert.Equal(t, models.ApprovalStatusPending, created.ApprovalStatus)
	assert.Nil(t, created.ApprovedBy)
	assert.Nil(t, created.ApprovedAt)
}

// A second login refreshes profile fields and last_signed_in but leaves the
// admin-controlled columns exactly as they were.
func TestLoginUpsert_SecondLoginPreservesRoleAndApproval(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	repo := repositories.NewUserRepository()
	openID := uniqueOpenID()

	created, err := repo.Upsert(tx, &models.User{
		OpenID:       openID,
		Name:         ptr("Old Name"),
		Email:        ptr("old@test.com"),
		LoginMethod:  ptr("google"),
		LastSignedIn: time.Now().Add(-time.Hour),
	}, false)
	require.NoError(t, err)

	// An admin approves the account between the two logins.
	approvedAt := time.Now().Add(-time.Minute)
	require.NoError(t, tx.Model(&models.User{}).Where("id = ?", created.ID).
		Updates(map[string]interface{}{
			"approval_status": models.ApprovalStatusApproved,
			"approved_by":     42,
			"approved_at":     approvedAt,
		}).Error)

	updated, err := repo.Upsert(tx, &models.User{
		OpenID:       openID,
		Name:         ptr("New Name"),
		Email:        ptr("new@test.com"),
		LoginMethod:  ptr("github"),
		LastSignedIn: time.Now(),
	}, false)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	require.NotNil(t, updated.Name)
	assert.Equal(t, "New Name", *updated.Name)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "new@test.com", *updated.Email)
	require.NotNil(t, updated.LoginMethod)
	assert.Equal(t, "github", *updated.LoginMethod)
	assert.True(t, updated.LastSignedIn.After(created.LastSignedIn))

	assert.Equal(t, models.UserRoleUser, updated.Role)
	assert.Equal(t, models.ApprovalStatusApproved, updated.ApprovalStatus)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, uint(42), *updated.ApprovedBy)
	assert.NotNil(t, updated.ApprovedAt)
}

// Fields the provider omitted on a later login keep their stored values.
func TestLoginUpsert_OmittedFieldsKeepStoredValues(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	repo := repositories.NewUserRepository()
	openID := uniqueOpenID()

	_, err := repo.Upsert(tx, &models.User{
		OpenID:       openID,
		Name:         ptr("Stable Name"),
		Email:        ptr("stable@test.com"),
		LoginMethod:  ptr("google"),
		LastSignedIn: time.Now().Add(-time.Hour),
	}, false)
	require.NoError(t, err)

	updated, err := repo.Upsert(tx, &models.User{
		OpenID:       openID,
		LastSignedIn: time.Now(),
	}, false)
	require.NoError(t, err)

	require.NotNil(t, updated.Name)
	assert.Equal(t, "Stable Name", *updated.Name)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "stable@test.com", *updated.Email)
	require.NotNil(t, updated.LoginMethod)
	assert.Equal(t, "google", *updated.LoginMethod)
}

// The owner's login writes the role column; everything else, approval status
// included, follows the normal path.
func TestLoginUpsert_OwnerPromotion(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	repo := repositories.NewUserRepository()
	openID := uniqueOpenID()

	// Owner signed in before being configured as owner: plain user row.
	created, err := repo.Upsert(tx, &models.User{
		OpenID:       openID,
		Name:         ptr("Platform Owner"),
		LastSignedIn: time.Now().Add(-time.Hour),
	}, false)
	require.NoError(t, err)
	require.Equal(t, models.UserRoleUser, created.Role)

	promoted, err := repo.Upsert(tx, &models.User{
		OpenID:       openID,
		Name:         ptr("Platform Owner"),
		Role:         models.UserRoleAdmin,
		LastSignedIn: time.Now(),
	}, true)
	require.NoError(t, err)

	assert.Equal(t, models.UserRoleAdmin, promoted.Role)
	assert.Equal(t, models.ApprovalStatusPending, promoted.ApprovalStatus)
}

// Without the promote flag, a role carried on the incoming struct must not
// reach the row.
func TestLoginUpsert_NoPromotionWithoutFlag(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	repo := repositories.NewUserRepository()
	openID := uniqueOpenID()

	_, err := repo.Upsert(tx, &models.User{
		OpenID:       openID,
		LastSignedIn: time.Now().Add(-time.Hour),
	}, false)
	require.NoError(t, err)

	updated, err := repo.Upsert(tx, &models.User{
		OpenID:       openID,
		Role:         models.UserRoleAdmin,
		LastSignedIn: time.Now(),
	}, false)
	require.NoError(t, err)

	assert.Equal(t, models.UserRoleUser, updated.Role)
}
