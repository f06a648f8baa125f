package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND_ERROR"
	CodeRateLimit   = "RATE_LIMIT_ERROR"
	CodeExternalAPI = "EXTERNAL_API_ERROR"
	CodeTimeout     = "TIMEOUT_ERROR"
	CodeDatabase    = "DATABASE_ERROR"
	CodeConflict    = "CONFLICT_ERROR"
	CodeUnknown     = "UNKNOWN_ERROR"
)

// AppContextError carries the layer and operation an error originated from,
// along with structured context for logs and HTTP responses.
type AppContextError struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Layer     string         `json:"layer,omitempty"`     // rest, usecase, gateway, driver, job
	Component string         `json:"component,omitempty"` // e.g. SQLiteStore, UpdateAPIClient
	Operation string         `json:"operation,omitempty"` // e.g. UpsertNewsResources
	Cause     error          `json:"-"`
	Context   map[string]any `json:"context,omitempty"`
}

func (e *AppContextError) Error() string {
	var prefix string
	if e.Layer != "" && e.Component != "" && e.Operation != "" {
		prefix = fmt.Sprintf("[%s:%s:%s] ", e.Layer, e.Component, e.Operation)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %s (caused by: %v)", prefix, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Code, e.Message)
}

func (e *AppContextError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps error codes to HTTP status codes
func (e *AppContextError) HTTPStatusCode() int {
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeRateLimit:
		return http.StatusTooManyRequests
	case CodeExternalAPI:
		return http.StatusBadGateway
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// HTTPContextResponse is the JSON body of an error response.
type HTTPContextResponse struct {
	Error     string         `json:"error"`
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Layer     string         `json:"layer,omitempty"`
	Component string         `json:"component,omitempty"`
	Operation string         `json:"operation,omitempty"`
	Context   map[string]any `json:"context,omitempty"`
}

func (e *AppContextError) ToHTTPResponse() HTTPContextResponse {
	return HTTPContextResponse{
		Error:     "error",
		Code:      e.Code,
		Message:   e.Message,
		Layer:     e.Layer,
		Component: e.Component,
		Operation: e.Operation,
		Context:   e.Context,
	}
}

// IsRetryable determines if the error represents a retryable condition
func (e *AppContextError) IsRetryable() bool {
	switch e.Code {
	case CodeRateLimit, CodeTimeout, CodeExternalAPI, CodeConflict:
		return true
	default:
		return false
	}
}

func NewAppContextError(code, message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	if context == nil {
		context = make(map[string]any)
	}

	return &AppContextError{
		Code:      code,
		Message:   message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     cause,
		Context:   context,
	}
}

func withType(context map[string]any, errorType string) map[string]any {
	if context == nil {
		context = make(map[string]any)
	}
	context["error_type"] = errorType
	return context
}

func NewDatabaseContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeDatabase, message, layer, component, operation, cause, withType(context, "database"))
}

func NewValidationContextError(message, layer, component, operation string, context map[string]any) *AppContextError {
	return NewAppContextError(CodeValidation, message, layer, component, operation, ErrInvalidInput, withType(context, "validation"))
}

func NewNotFoundContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeNotFound, message, layer, component, operation, cause, withType(context, "not_found"))
}

func NewRateLimitContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeRateLimit, message, layer, component, operation, cause, withType(context, "rate_limit"))
}

func NewExternalAPIContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeExternalAPI, message, layer, component, operation, cause, withType(context, "external_api"))
}

func NewTimeoutContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeTimeout, message, layer, component, operation, cause, withType(context, "timeout"))
}

func NewConflictContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeConflict, message, layer, component, operation, cause, withType(context, "conflict"))
}

func NewUnknownContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeUnknown, message, layer, component, operation, cause, withType(context, "unknown"))
}

// AsAppContextError extracts the first AppContextError in err's chain.
func AsAppContextError(err error) (*AppContextError, bool) {
	var appErr *AppContextError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
