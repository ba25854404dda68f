package dto

import "github.com/jpcarreon/ventastock/internal/domain/entity"

// ClienteRequest entrada para crear o actualizar un cliente. El id no viaja
// en el cuerpo: lo genera el servidor al crear y no cambia al editar.
type ClienteRequest struct {
	Nombre        *string `json:"nombre"`
	Telefono      *string `json:"telefono"`
	Email         *string `json:"email"`
	Direccion     *string `json:"direccion"`
	FechaCreacion *string `json:"fechaCreacion"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	IDCliente     string `json:"idcliente"`
	Nombre        string `json:"nombre"`
	Telefono      string `json:"telefono"`
	Email         string `json:"email"`
	Direccion     string `json:"direccion"`
	FechaCreacion string `json:"fechaCreacion"`
}

// ClientesListResponse lista completa: {"clientes": [...]}.
type ClientesListResponse struct {
	Clientes []ClienteResponse `json:"clientes"`
}

// ClienteCreadoResponse respuesta del alta con el registro generado.
type ClienteCreadoResponse struct {
	Success bool            `json:"success"`
	Cliente ClienteResponse `json:"cliente"`
}

// NewClienteResponse mapea la entidad a su DTO de salida.
func NewClienteResponse(c entity.Cliente) ClienteResponse {
	return ClienteResponse{
		IDCliente:     c.IDCliente,
		Nombre:        c.Nombre,
		Telefono:      c.Telefono,
		Email:         c.Email,
		Direccion:     c.Direccion,
		FechaCreacion: c.FechaCreacion,
	}
}
