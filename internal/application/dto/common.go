package dto

// ErrorResponse cuerpo de error HTTP: {"error": "mensaje"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse confirmación simple de escritura.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ExistsResponse respuesta de los chequeos de existencia. Siempre viaja con
// 200: ante cualquier fallo interno se degrada a false para no bloquear la
// validación interactiva de formularios.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}
