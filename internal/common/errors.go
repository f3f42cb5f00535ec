// File: internal/common/errors.go
package common

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// APIError represents a standard structure for API errors.
// Cause is never serialised; it carries the underlying error for logs.
type APIError struct {
	StatusCode int         `json:"-"`
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	Cause      error       `json:"-"`
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("APIError: StatusCode=%d, Code=%s, Message=%s, Cause=%v", e.StatusCode, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("APIError: StatusCode=%d, Code=%s, Message=%s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an APIError with the same code, so that
// copies produced by WithDetails/WithCause still match their sentinel.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func NewAPIError(statusCode int, code, message string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Message: message}
}

// WithDetails returns a copy of e carrying details. The receiver is left untouched.
func (e *APIError) WithDetails(details interface{}) *APIError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithMessage returns a copy of e with a more specific message.
func (e *APIError) WithMessage(message string) *APIError {
	cp := *e
	cp.Message = message
	return &cp
}

// WithCause returns a copy of e wrapping cause.
func (e *APIError) WithCause(cause error) *APIError {
	cp := *e
	cp.Cause = cause
	return &cp
}

var (
	ErrBadRequest            = NewAPIError(http.StatusBadRequest, "BAD_REQUEST", "The request is invalid.")
	ErrValidation            = NewAPIError(http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed.")
	ErrInvalidCredentialPair = NewAPIError(http.StatusBadRequest, "INVALID_CREDENTIAL_PAIR", "Username and password must be supplied together.")
	ErrUnauthorized          = NewAPIError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication is required and has failed or has not yet been provided.")
	ErrAuthenticationFailed  = NewAPIError(http.StatusUnauthorized, "AUTHENTICATION_FAILED", "Login failed")
	ErrNotFound              = NewAPIError(http.StatusNotFound, "NOT_FOUND", "The requested resource could not be found.")
	ErrMethodNotAllowed      = NewAPIError(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "The request method is not supported for this resource.")
	ErrConflict              = NewAPIError(http.StatusConflict, "CONFLICT", "A conflict occurred with the current state of the resource.")
	ErrDuplicateUsername     = NewAPIError(http.StatusConflict, "DUPLICATE_USERNAME", "Username is already taken.")
	ErrStoreFailure          = NewAPIError(http.StatusInternalServerError, "STORE_FAILURE", "A storage error occurred while processing the request.")
	ErrInternalServer        = NewAPIError(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An unexpected error occurred on the server.")
	ErrServiceUnavailable    = NewAPIError(http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "The server is currently unable to handle the request.")
)

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// StoreFailure classifies an underlying storage error. The cause is kept for
// server-side logging only.
func StoreFailure(err error) *APIError {
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr
	}
	return ErrStoreFailure.WithCause(err)
}

func NewValidationAPIError(details interface{}) *APIError {
	return ErrValidation.WithDetails(details)
}

// BindingError classifies an error returned by gin's ShouldBind* helpers.
func BindingError(err error) *APIError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return NewValidationAPIError(FormatValidationErrors(ve))
	}
	return ErrBadRequest.WithDetails(err.Error())
}

// FormatValidationErrors converts validator.ValidationErrors into a map.
func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMap := make(map[string]string)
	for _, e := range errs {
		field := e.Field()
		name := strings.ToLower(field)
		var message string
		switch e.Tag() {
		case "required":
			message = fmt.Sprintf("The %s field is required.", name)
		case "required_with":
			message = fmt.Sprintf("The %s field is required when %s is present.", name, strings.ToLower(e.Param()))
		case "email":
			message = fmt.Sprintf("The %s field must be a valid email address.", name)
		case "url":
			message = fmt.Sprintf("The %s field must be a valid URL.", name)
		case "min":
			message = fmt.Sprintf("The %s field must be at least %s.", name, e.Param())
		case "max":
			message = fmt.Sprintf("The %s field may not be greater than %s.", name, e.Param())
		case "gt":
			message = fmt.Sprintf("The %s field must be greater than %s.", name, e.Param())
		case "oneof":
			message = fmt.Sprintf("The %s field must be one of the following values: %s.", name, e.Param())
		case "freelancertype":
			message = fmt.Sprintf("The %s field must be a known freelancer type.", name)
		case "rateunit":
			message = fmt.Sprintf("The %s field must be a known rate unit.", name)
		case "specialization":
			message = fmt.Sprintf("The %s field contains an unknown specialization.", name)
		default:
			message = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag.", field, e.Tag())
		}
		errorMap[field] = message
	}
	return errorMap
}
