package dto

import "github.com/jpcarreon/ventastock/internal/domain/entity"

// ProveedorRequest entrada para crear o actualizar un proveedor. "id" e
// "idproveedor" son alias en el cuerpo y el segundo gana; en edición un id
// distinto al de la ruta renombra el proveedor previa verificación de duplicado.
type ProveedorRequest struct {
	ID          *string `json:"id"`
	IDProveedor *string `json:"idproveedor"`
	Nombre      *string `json:"nombre"`
	Telefono    *string `json:"telefono"`
	Email       *string `json:"email"`
	Direccion   *string `json:"direccion"`
	Contacto    *string `json:"contacto"`
}

// ResolverID devuelve el id efectivo del cuerpo: idproveedor ?? id.
func (r ProveedorRequest) ResolverID() string {
	if r.IDProveedor != nil {
		return *r.IDProveedor
	}
	if r.ID != nil {
		return *r.ID
	}
	return ""
}

// ProveedorResponse salida de un proveedor.
type ProveedorResponse struct {
	IDProveedor string `json:"idproveedor"`
	Nombre      string `json:"nombre"`
	Telefono    string `json:"telefono"`
	Email       string `json:"email"`
	Direccion   string `json:"direccion"`
	Contacto    string `json:"contacto"`
}

// ProveedoresListResponse lista completa: {"proveedores": [...]}.
type ProveedoresListResponse struct {
	Proveedores []ProveedorResponse `json:"proveedores"`
}

// ProveedorCreadoResponse respuesta del alta con el registro guardado.
type ProveedorCreadoResponse struct {
	Success   bool              `json:"success"`
	Proveedor ProveedorResponse `json:"proveedor"`
}

// NewProveedorResponse mapea la entidad a su DTO de salida.
func NewProveedorResponse(p entity.Proveedor) ProveedorResponse {
	return ProveedorResponse{
		IDProveedor: p.IDProveedor,
		Nombre:      p.Nombre,
		Telefono:    p.Telefono,
		Email:       p.Email,
		Direccion:   p.Direccion,
		Contacto:    p.Contacto,
	}
}
