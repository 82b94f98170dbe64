package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrSubmitInProgress  = errors.New("ya hay un envío en curso para este formulario")
)

// AuthenticationError credenciales rechazadas o respuesta de autenticación mal formada.
type AuthenticationError struct {
	Reason string
	Err    error
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("autenticación: %s: %v", e.Reason, e.Err)
	}
	return "autenticación: " + e.Reason
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// RequestFailed cualquier respuesta no-2xx o fallo de red al llamar al backend.
// Status es 0 cuando la petición no llegó a obtener respuesta.
type RequestFailed struct {
	Method string
	Path   string
	Status int
	Body   string
	Err    error
}

func (e *RequestFailed) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Path, e.Status)
}

func (e *RequestFailed) Unwrap() error { return e.Err }

// Is traduce el status del backend a los errores de dominio:
// 401 ErrUnauthorized, 403 ErrForbidden, 404 ErrNotFound, 409 ErrDuplicate, 400/422 ErrInvalidInput.
func (e *RequestFailed) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrDuplicate:
		return e.Status == http.StatusConflict
	case ErrInvalidInput:
		return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
	}
	return false
}

// SessionExpired indica que el backend rechazó el token de la sesión (HTTP 401).
func (e *RequestFailed) SessionExpired() bool {
	return e.Status == http.StatusUnauthorized
}

// IsSessionExpired recorre la cadena de errores buscando un 401 del backend.
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// ValidationError errores locales por campo; nunca se envían al backend.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: %d campo(s) inválido(s)", len(e.Fields))
}

// Field devuelve el mensaje de un campo o "" si es válido.
func (e *ValidationError) Field(name string) string {
	if e == nil {
		return ""
	}
	return e.Fields[name]
}

// NewValidationError devuelve nil si no hay errores, para poder retornarlo directamente.
func NewValidationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// AsValidation extrae el ValidationError de la cadena, o nil.
func AsValidation(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
