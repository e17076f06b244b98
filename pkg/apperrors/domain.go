package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors and predefined variables for
// frequent static errors.

// ErrNotFound converts a repository "no row" error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Registro não encontrado", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Registro já existe", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation flags a request that cannot be honored in the
// current state of the resource.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus flags a forbidden status transition, e.g. paying a
// payment that is already cancelled.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"E-mail ou senha inválidos",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Permissões insuficientes",
	http.StatusForbidden,
)
