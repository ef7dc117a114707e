package dto

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta con mensaje y payload opcional
// (formato de las rutas de asignación de stock).
type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
