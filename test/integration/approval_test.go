package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"workreg_backend/internal/models"
	"workreg_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Anonymous requests to protected routes bounce to the login entry point.
func TestGate_Unauthenticated(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/employers", "", nil)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "/api/v1/auth/login")
}

// A pending user is shut out of protected routes and pointed at the pending
// view with their identity attached.
func TestGate_PendingUser(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreatePendingUser(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/workers", token, nil)

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "/pending")
	assert.Contains(t, body, *user.Email)
	assert.Contains(t, body, string(models.ApprovalStatusPending))
}

// Rejection is terminal from the user's point of view: same gate as pending.
func TestGate_RejectedUser(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	user := helpers.CreateUser(t, tx, &models.User{
		ApprovalStatus: models.ApprovalStatusRejected,
	})
	token := helpers.LoginAs(t, user)

	res, _ := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/workers", token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestGate_ApprovedUser(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateApprovedUser(t, tx)

	res, _ := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/employers", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

// An admin whose own approval status is still pending passes both the
// standard gate and the admin gate on role alone.
func TestGate_PendingAdminBypassesApproval(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, admin := helpers.CreateAdmin(t, tx)
	require.Equal(t, models.ApprovalStatusPending, admin.ApprovalStatus)

	res, _ := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/employers", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/users", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestApprove_SetsStatusAndAudit(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, admin := helpers.CreateAdmin(t, tx)
	_, target := helpers.CreatePendingUser(t, tx)

	path := fmt.Sprintf("/api/v1/admin/users/%d/approve", target.ID)
	res, body := ts.SendRequest(t, tx, http.MethodPost, path, adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated models.User
	require.NoError(t, tx.First(&updated, target.ID).Error)
	assert.Equal(t, models.ApprovalStatusApproved, updated.ApprovalStatus)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, admin.ID, *updated.ApprovedBy)
	assert.NotNil(t, updated.ApprovedAt)

	// The target can now reach protected routes.
	targetToken := helpers.LoginAs(t, target)
	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/workers", targetToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

// Re-approving an approved user succeeds and refreshes the audit columns.
func TestApprove_Idempotent(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAdmin(t, tx)
	_, target := helpers.CreatePendingUser(t, tx)

	path := fmt.Sprintf("/api/v1/admin/users/%d/approve", target.ID)
	res, _ := ts.SendRequest(t, tx, http.MethodPost, path, adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	res, _ = ts.SendRequest(t, tx, http.MethodPost, path, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var updated models.User
	require.NoError(t, tx.First(&updated, target.ID).Error)
	assert.Equal(t, models.ApprovalStatusApproved, updated.ApprovalStatus)
}

// Rejecting a previously approved user flips the status but keeps the audit
// columns as a record of who approved them.
func TestReject_KeepsAuditColumns(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, admin := helpers.CreateAdmin(t, tx)
	_, target := helpers.CreatePendingUser(t, tx)

	approvePath := fmt.Sprintf("/api/v1/admin/users/%d/approve", target.ID)
	res, _ := ts.SendRequest(t, tx, http.MethodPost, approvePath, adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	rejectPath := fmt.Sprintf("/api/v1/admin/users/%d/reject", target.ID)
	res, _ = ts.SendRequest(t, tx, http.MethodPost, rejectPath, adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var updated models.User
	require.NoError(t, tx.First(&updated, target.ID).Error)
	assert.Equal(t, models.ApprovalStatusRejected, updated.ApprovalStatus)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, admin.ID, *updated.ApprovedBy)
	assert.NotNil(t, updated.ApprovedAt)

	// And the target is gated again.
	targetToken := helpers.LoginAs(t, target)
	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/workers", targetToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// Rejected users can be approved later; rejection is not final for admins.
func TestReject_ThenReapprove(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAdmin(t, tx)
	_, target := helpers.CreatePendingUser(t, tx)

	res, _ := ts.SendRequest(t, tx, http.MethodPost, fmt.Sprintf("/api/v1/admin/users/%d/reject", target.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	res, _ = ts.SendRequest(t, tx, http.MethodPost, fmt.Sprintf("/api/v1/admin/users/%d/approve", target.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var updated models.User
	require.NoError(t, tx.First(&updated, target.ID).Error)
	assert.Equal(t, models.ApprovalStatusApproved, updated.ApprovalStatus)
}

func TestApprove_RequiresAdmin(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	userToken, _ := helpers.CreateApprovedUser(t, tx)
	_, target := helpers.CreatePendingUser(t, tx)

	path := fmt.Sprintf("/api/v1/admin/users/%d/approve", target.ID)
	res, body := ts.SendRequest(t, tx, http.MethodPost, path, userToken, nil)

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "Insufficient permissions")

	// Target must be untouched.
	var unchanged models.User
	require.NoError(t, tx.First(&unchanged, target.ID).Error)
	assert.Equal(t, models.ApprovalStatusPending, unchanged.ApprovalStatus)
}

func TestApprove_UnknownUser(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAdmin(t, tx)

	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/admin/users/999999/approve", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/admin/users/999999/reject", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestAdminListUsers(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAdmin(t, tx)
	_, pending := helpers.CreatePendingUser(t, tx)
	_, approved := helpers.CreateApprovedUser(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, *pending.Email)
	assert.Contains(t, body, *approved.Email)

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/users/pending", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var pendingUsers []models.User
	require.NoError(t, json.Unmarshal([]byte(body), &pendingUsers))
	for _, u := range pendingUsers {
		assert.Equal(t, models.ApprovalStatusPending, u.ApprovalStatus)
	}
	assert.Contains(t, body, *pending.Email)
	assert.NotContains(t, body, *approved.Email)
}
