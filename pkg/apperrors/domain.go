package apperrors

import "net/http"

// Predefined domain errors. Messages mirror the public API contract, so tests
// assert against them directly.

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrMissingAuthFields = New(
	CodeValidationFailed,
	"auth",
	"name, email, password are required",
	http.StatusBadRequest,
)

var ErrInvalidUserRole = New(
	CodeValidationFailed,
	"auth",
	"Invalid user role",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidJobID = New(
	CodeInvalidID,
	"job",
	"Invalid job id",
	http.StatusBadRequest,
)

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

var ErrMissingJobFields = New(
	CodeValidationFailed,
	"job",
	"All required fields must be filled",
	http.StatusBadRequest,
)

var ErrNegativeSalary = New(
	CodeValidationFailed,
	"job",
	"Salary must be non-negative",
	http.StatusBadRequest,
)
