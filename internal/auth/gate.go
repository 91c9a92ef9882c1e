package auth

import "workreg_backend/internal/models"

// Access is the gate's verdict for one request. It is recomputed on every
// protected-route navigation from the current User row; nothing is cached.
type Access string

const (
	// AccessUnauthenticated means no user could be resolved; the client
	// must go through the login entry point.
	AccessUnauthenticated Access = "unauthenticated"

	// AccessPending means the user exists but is not approved (pending or
	// rejected); the client must show the pending-approval view.
	AccessPending Access = "pending_or_rejected"

	// AccessUser grants the standard protected routes.
	AccessUser Access = "user_allowed"

	// AccessAdmin grants standard plus admin-only routes.
	AccessAdmin Access = "admin_allowed"
)

// Classify decides what an authenticated (or absent) user may reach.
// Pure classification over the user snapshot; it never errors, and absence
// of data degrades to AccessUnauthenticated.
//
// Admins bypass the approval check entirely: the status field is not
// consulted when role is admin.
func Classify(user *models.User) Access {
	if user == nil {
		return AccessUnauthenticated
	}
	if user.Role == models.UserRoleAdmin {
		return AccessAdmin
	}
	if user.ApprovalStatus == models.ApprovalStatusApproved {
		return AccessUser
	}
	return AccessPending
}

// Allowed reports whether the verdict grants the standard protected routes.
func (a Access) Allowed() bool {
	return a == AccessUser || a == AccessAdmin
}

// IsAdmin is the independent sub-check guarding admin-only routes and the
// transition API. Approval status is irrelevant here.
func IsAdmin(user *models.User) bool {
	return user != nil && user.Role == models.UserRoleAdmin
}
