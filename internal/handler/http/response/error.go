package response

import (
	"errors"
	"net/http"

	"github.com/storemate/storemate-backend-go/internal/domain/attendance"
	"github.com/storemate/storemate-backend-go/internal/domain/auth"
	"github.com/storemate/storemate-backend-go/internal/domain/employee"
	"github.com/storemate/storemate-backend-go/internal/domain/feedback"
	"github.com/storemate/storemate-backend-go/internal/domain/order"
	"github.com/storemate/storemate-backend-go/internal/domain/product"
	"github.com/storemate/storemate-backend-go/internal/domain/user"
	"github.com/storemate/storemate-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		BadRequest(w, "Google login is not configured", nil)
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Employee has already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "Employee has not checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Employee has already checked out today")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrTimeOutBeforeTimeIn):
		BadRequest(w, "Check-out time cannot be before check-in time", nil)
	case errors.Is(err, attendance.ErrTimeOutWithoutTimeIn):
		BadRequest(w, "Check-out time requires a check-in time", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is not active")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrInvalidBadgeCode):
		Unauthorized(w, "Invalid or expired badge code")

	// Product domain errors
	case errors.Is(err, product.ErrProductNotFound):
		NotFound(w, "Product not found")
	case errors.Is(err, product.ErrSKUExists):
		Conflict(w, "SKU already exists")
	case errors.Is(err, product.ErrInsufficientStock):
		Conflict(w, "Insufficient stock")

	// Order domain errors
	case errors.Is(err, order.ErrOrderNotFound):
		NotFound(w, "Order not found")
	case errors.Is(err, order.ErrEmptyOrder):
		BadRequest(w, "Order has no items", nil)
	case errors.Is(err, order.ErrInvalidTransition):
		Conflict(w, "Order status transition not allowed")

	// Feedback domain errors
	case errors.Is(err, feedback.ErrFeedbackNotFound):
		NotFound(w, "Feedback not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
