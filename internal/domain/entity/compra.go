package entity

import "github.com/shopspring/decimal"

// Compra un registro de la pestaña 'compras'. Crear una compra suma Cantidad
// al stock del artículo y fija su precio al Precio de la compra.
type Compra struct {
	IDCompra   string
	Fecha      string // YYYY-MM-DD
	Proveedor  string
	IDArticulo string
	Articulo   string
	Cantidad   int
	Precio     decimal.Decimal
}
