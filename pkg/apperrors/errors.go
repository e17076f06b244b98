package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application-wide error type. Services translate
// repository sentinels into AppError; handlers only write it out.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError without an underlying cause.
func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying error to a new AppError.
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// MarshalJSON keeps Err and HTTPCode out of the wire representation.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Domain  string      `json:"domain"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Domain:  e.Domain,
		Message: e.Message,
		Details: e.Details,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// InternalError wraps an unexpected system error.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Erro interno do servidor", http.StatusInternalServerError)
}

// ValidationError carries a field -> message map from the validator.
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Dados inválidos", http.StatusBadRequest).WithDetails(details)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeInvalidOperation, "request", message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, "auth", message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, "auth", message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, "resource", message, http.StatusNotFound)
}
