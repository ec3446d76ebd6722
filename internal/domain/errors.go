package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrInvalidArgument        = errors.New("argumento inválido")
	ErrInvalidStateTransition = errors.New("transición de estado inválida")
	ErrQuoteNotApproved       = errors.New("el presupuesto no está aprobado")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrUnauthorized           = errors.New("no autorizado")
	ErrEmailAlreadyExists     = errors.New("el email ya está registrado")
	ErrEmailNotConfirmed      = errors.New("email not confirmed")
	ErrInvalidCredentials     = errors.New("credenciales inválidas")
)

// FieldError error de validación de un campo. Field es la ruta JSON ("address.zip_code").
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa los errores de campo de un formulario.
// errors.Is(err, ErrInvalidArgument) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Unwrap permite errors.Is(err, ErrInvalidArgument).
func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

// NewValidationError construye un ValidationError de un solo campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// AuthError fallo de login/registro con mensaje para el usuario.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Message, e.Err)
	}
	return "auth: " + e.Message
}

func (e *AuthError) Unwrap() error { return e.Err }

// PersistenceError fallo de lectura/escritura en el almacenamiento.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistencia: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NewPersistenceError envuelve err salvo que ya sea un error de dominio conocido.
func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicate) {
		return err
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// ExportError fallo al generar un documento (PDF).
type ExportError struct {
	Document string
	Err      error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("exportar %s: %v", e.Document, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
