package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jpcarreon/ventastock/internal/domain/entity"
)

// CompraRequest entrada para crear o actualizar una compra. En actualización
// los campos ausentes conservan el valor vigente.
type CompraRequest struct {
	Fecha      *string          `json:"fecha"`
	Proveedor  *string          `json:"proveedor"`
	IDArticulo *string          `json:"idarticulo"`
	Articulo   *string          `json:"articulo"`
	Cantidad   *int             `json:"cantidad"`
	Precio     *decimal.Decimal `json:"precio"`
}

// CompraResponse salida de una compra.
type CompraResponse struct {
	IDCompra   string          `json:"idcompra"`
	Fecha      string          `json:"fecha"`
	Proveedor  string          `json:"proveedor"`
	IDArticulo string          `json:"idarticulo"`
	Articulo   string          `json:"articulo"`
	Cantidad   int             `json:"cantidad"`
	Precio     decimal.Decimal `json:"precio"`
}

// ComprasListResponse lista completa: {"compras": [...]}.
type ComprasListResponse struct {
	Compras []CompraResponse `json:"compras"`
}

// NewCompraResponse mapea la entidad a su DTO de salida.
func NewCompraResponse(c entity.Compra) CompraResponse {
	return CompraResponse{
		IDCompra:   c.IDCompra,
		Fecha:      c.Fecha,
		Proveedor:  c.Proveedor,
		IDArticulo: c.IDArticulo,
		Articulo:   c.Articulo,
		Cantidad:   c.Cantidad,
		Precio:     c.Precio,
	}
}
