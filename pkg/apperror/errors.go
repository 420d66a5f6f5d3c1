package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Content (CNT) ----

func ErrContentNotFound() *AppError {
	return New("CNT_001", "Content not found", http.StatusNotFound)
}

func ErrInvalidContentID() *AppError {
	return New("CNT_002", "Invalid content id", http.StatusBadRequest)
}

func ErrNotAFile() *AppError {
	return New("CNT_003", "Content not found or not a file", http.StatusNotFound)
}

func ErrInvalidPayee() *AppError {
	return New("CNT_004", "Invalid payee address", http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrCreatorSuspended() *AppError {
	return New("AUTH_003", "Creator account suspended", http.StatusForbidden)
}

func ErrNotContentOwner() *AppError {
	return New("AUTH_004", "Not the content owner", http.StatusForbidden)
}

func ErrCreatorNotFound() *AppError {
	return New("AUTH_005", "Creator not found", http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Upstream collaborators (UPS) ----

// ErrBlobUnavailable covers blob-store failures. The stored bytes are the
// content itself, so a missing or unreadable blob surfaces as 404 to the
// caller, matching an unknown content id.
func ErrBlobUnavailable(err error) *AppError {
	return Wrap("UPS_001", "File not found on server", http.StatusNotFound, err)
}

func ErrFacilitatorUnreachable(err error) *AppError {
	return Wrap("UPS_002", "Payment settlement failed", http.StatusBadGateway, err)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a CNT_002-style validation error.
func Validation(message string) *AppError {
	return New("CNT_002", message, http.StatusBadRequest)
}
