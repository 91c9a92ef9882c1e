package apperrors

import "net/http"

// Factories and predefined errors for common domain cases.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound or a
// zero-row update) into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInsufficientPermissions is returned when a non-admin attempts an
// admin-only transition.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrFileTooLarge is returned when an upload exceeds the configured limit.
var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// ErrUnsupportedFileType is returned when an upload's MIME type is not in
// the allowlist.
var ErrUnsupportedFileType = New(
	CodeValidationFailed,
	"validation",
	"File type is not allowed",
	http.StatusBadRequest,
)
