package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// ErrPermissionDenied lo devuelven las compuertas de acceso (vendedores, pantallas).
	// Es consultivo: la frontera real de autorización es el almacén de entidades.
	ErrPermissionDenied = fmt.Errorf("permiso denegado: %w", ErrForbidden)
)

// ValidationError indica una transición o entrada inválida detectada antes de cualquier llamada remota.
type ValidationError struct {
	Reason string
}

// NewValidationError construye un ValidationError con el motivo indicado.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return "validación: " + e.Reason
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// RemoteError envuelve un fallo del almacén de entidades (red, validación o auth del lado remoto).
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// IsRemote indica si err (o alguno de sus envueltos) es un RemoteError.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
