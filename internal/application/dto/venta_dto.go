package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jpcarreon/ventastock/internal/domain/entity"
)

// VentaLineaRequest una línea del cuerpo de venta.
type VentaLineaRequest struct {
	IDArticulo *string          `json:"idarticulo"`
	Nombre     *string          `json:"nombre"`
	Cantidad   *int             `json:"cantidad"`
	Total      *decimal.Decimal `json:"total"`
}

// VentaRequest entrada para crear o actualizar una venta. Total ausente se
// calcula como la suma de los totales de línea.
type VentaRequest struct {
	Fecha     *string             `json:"fecha"`
	Cliente   *string             `json:"cliente"`
	Articulos []VentaLineaRequest `json:"articulos"`
	Total     *decimal.Decimal    `json:"total"`
}

// VentaLineaResponse una línea de venta en salida.
type VentaLineaResponse struct {
	IDArticulo     string          `json:"idarticulo"`
	Nombre         string          `json:"nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Total          decimal.Decimal `json:"total"`
}

// VentaResponse salida de una venta con sus líneas.
type VentaResponse struct {
	IDVenta   string               `json:"idventa"`
	Fecha     string               `json:"fecha"`
	Cliente   string               `json:"cliente"`
	Articulos []VentaLineaResponse `json:"articulos"`
	Total     decimal.Decimal      `json:"total"`
}

// VentasListResponse lista completa: {"ventas": [...]}.
type VentasListResponse struct {
	Ventas []VentaResponse `json:"ventas"`
}

// NewVentaResponse mapea la entidad a su DTO de salida.
func NewVentaResponse(v entity.Venta) VentaResponse {
	lineas := make([]VentaLineaResponse, 0, len(v.Lineas))
	for _, l := range v.Lineas {
		lineas = append(lineas, VentaLineaResponse{
			IDArticulo:     l.IDArticulo,
			Nombre:         l.Nombre,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
			Total:          l.Total,
		})
	}
	return VentaResponse{
		IDVenta:   v.IDVenta,
		Fecha:     v.Fecha,
		Cliente:   v.Cliente,
		Articulos: lineas,
		Total:     v.Total,
	}
}
