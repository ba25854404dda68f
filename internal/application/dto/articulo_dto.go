package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jpcarreon/ventastock/internal/domain/entity"
)

// ArticuloRequest entrada para crear o actualizar un artículo. Los punteros
// distinguen campo ausente de campo vacío; "id" e "idarticulo" son alias en
// el cuerpo y el segundo gana.
type ArticuloRequest struct {
	Codbarra    *string          `json:"codbarra"`
	ID          *string          `json:"id"`
	IDArticulo  *string          `json:"idarticulo"`
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Stock       *int             `json:"stock"`
}

// ResolverID devuelve el id efectivo del cuerpo: idarticulo ?? id.
func (r ArticuloRequest) ResolverID() string {
	if r.IDArticulo != nil {
		return *r.IDArticulo
	}
	if r.ID != nil {
		return *r.ID
	}
	return ""
}

// ArticuloResponse salida de un artículo.
type ArticuloResponse struct {
	Codbarra    string          `json:"codbarra"`
	IDArticulo  string          `json:"idarticulo"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	Categoria   string          `json:"categoria,omitempty"`
}

// ArticulosListResponse lista completa: {"articulos": [...]}.
type ArticulosListResponse struct {
	Articulos []ArticuloResponse `json:"articulos"`
}

// ArticuloCreadoResponse respuesta del alta: {"success": true, "articulo": {...}}.
type ArticuloCreadoResponse struct {
	Success  bool             `json:"success"`
	Articulo ArticuloResponse `json:"articulo"`
}

// ArticuloBusqueda forma reducida que devuelve /api/articulos/buscar; incluye
// "id" e "idarticulo" duplicados porque los formularios consumen ambos.
type ArticuloBusqueda struct {
	ID         string          `json:"id"`
	IDArticulo string          `json:"idarticulo"`
	Codbarra   string          `json:"codbarra"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Stock      int             `json:"stock"`
}

// BusquedaResponse resultado de la búsqueda: articulo o null, siempre 200.
type BusquedaResponse struct {
	Articulo *ArticuloBusqueda `json:"articulo"`
}

// NewArticuloResponse mapea la entidad a su DTO de salida.
func NewArticuloResponse(a entity.Articulo) ArticuloResponse {
	return ArticuloResponse{
		Codbarra:    a.Codbarra,
		IDArticulo:  a.IDArticulo,
		Nombre:      a.Nombre,
		Descripcion: a.Descripcion,
		Precio:      a.Precio,
		Stock:       a.Stock,
		Categoria:   a.Categoria,
	}
}
