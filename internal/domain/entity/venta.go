package entity

import "github.com/shopspring/decimal"

// VentaLinea una línea de venta: un artículo con su cantidad y total.
type VentaLinea struct {
	IDArticulo     string
	Nombre         string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Total          decimal.Decimal
}

// Venta agrupa las líneas que comparten idventa en la pestaña 'ventas'.
// Los registros legacy de una sola fila se leen como ventas de una línea.
type Venta struct {
	IDVenta string
	Fecha   string // YYYY-MM-DD
	Cliente string
	Lineas  []VentaLinea
	Total   decimal.Decimal
}
