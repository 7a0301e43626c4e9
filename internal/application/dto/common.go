package dto

// ErrorResponse cuerpo de error HTTP ({"error": ...}).
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse cuerpo de error que usa la clave "message" (delete de categoría,
// conflicto en update de producto y listado por categoría).
type MessageResponse struct {
	Message string `json:"message"`
}
