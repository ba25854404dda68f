package entity

import "github.com/shopspring/decimal"

// Articulo representa un artículo del inventario tal como vive en la pestaña
// 'articulos'. Codbarra es opcional pero único; IDArticulo es la llave.
// Precio y Stock los mutan las operaciones de venta/compra.
type Articulo struct {
	Codbarra    string
	IDArticulo  string
	Nombre      string
	Descripcion string
	Precio      decimal.Decimal
	Stock       int
	Categoria   string
}
