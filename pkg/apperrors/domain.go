package apperrors

import "net/http"

// Predefined errors and factories for the account and task domains.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrEmailAlreadyExists - registration with an email that is already taken.
var ErrEmailAlreadyExists = New(
	CodeConflict,
	"account",
	"Email already exists in the system",
	http.StatusConflict,
)

// ErrInvalidCredentials covers unknown email, wrong password AND inactive
// account. They must stay indistinguishable to the caller so responses
// cannot be used to enumerate registered emails.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - unknown, already consumed or expired activation/reset token.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusBadRequest,
)

// ErrWeakPassword - password fails the minimum-length policy.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"account",
	"Password must be at least 6 characters",
	http.StatusBadRequest,
)

// ErrInsufficientPermissions - a non-admin attempted an admin-only operation.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrNotOwner - a non-admin touched a record they did not create.
var ErrNotOwner = New(
	CodeForbidden,
	"auth",
	"You are not allowed to access this resource",
	http.StatusForbidden,
)

// ErrCannotChangeRole - a non-admin tried to change a role.
var ErrCannotChangeRole = New(
	CodeForbidden,
	"account",
	"You are not allowed to change roles",
	http.StatusForbidden,
)
