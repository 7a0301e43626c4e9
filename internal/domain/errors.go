package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Error es un error de dominio con el mensaje que se devuelve al cliente.
// Kind es uno de los sentinels de arriba; errors.Is funciona contra él.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Invalid construye un error de validación (422).
func Invalid(msg string) error { return &Error{Kind: ErrInvalidInput, Message: msg} }

// NotFound construye un error de recurso inexistente (404).
func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Message: msg} }

// Conflict construye un error de conflicto (409).
func Conflict(msg string) error { return &Error{Kind: ErrConflict, Message: msg} }

// Duplicate construye un error de unicidad (409).
func Duplicate(msg string) error { return &Error{Kind: ErrDuplicate, Message: msg} }

// Message devuelve el mensaje para el cliente si err es un *Error.
func Message(err error) (string, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Message, true
	}
	return "", false
}
