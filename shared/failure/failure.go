package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// FieldError describes a single violated constraint on a request field.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// ValidationFailure is a Failure that carries the per-field error list so the
// response layer can render it inside the envelope.
type ValidationFailure struct {
	Failure
	Errors []FieldError `json:"errors"`
}

// Validation returns a new ValidationFailure for a malformed request payload.
func Validation(fieldErrors []FieldError) error {
	return &ValidationFailure{
		Failure: Failure{
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
		},
		Errors: fieldErrors,
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var valFail *ValidationFailure
	if errors.As(err, &valFail) {
		return valFail.Code
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetFieldErrors returns the per-field error list when err wraps a
// ValidationFailure, or nil otherwise.
func GetFieldErrors(err error) []FieldError {
	var valFail *ValidationFailure
	if errors.As(err, &valFail) {
		return valFail.Errors
	}

	return nil
}
