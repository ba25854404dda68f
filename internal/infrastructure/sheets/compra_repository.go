package sheets

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jpcarreon/ventastock/internal/domain"
	"github.com/jpcarreon/ventastock/internal/domain/entity"
	"github.com/jpcarreon/ventastock/internal/domain/repository"
)

const tabCompras = "compras"

var (
	aliasCompraID        = []string{"idcompra", "id compra"}
	aliasCompraFecha     = []string{"fecha"}
	aliasCompraProveedor = []string{"proveedor"}
	aliasCompraArticulo  = []string{"idarticulo", "id articulo", "articuloid"}
	aliasCompraNombre    = []string{"articulo", "nombre", "articulonombre"}
	aliasCompraCantidad  = []string{"cantidad"}
	aliasCompraPrecio    = []string{"precio", "preciounitario"}
)

var _ repository.CompraRepository = (*CompraRepo)(nil)

// CompraRepo persistencia de compras sobre la pestaña 'compras'.
// Columnas: idcompra, fecha, proveedor, idarticulo, articulo, cantidad, precio.
type CompraRepo struct {
	store TabStore
}

// NewCompraRepository construye el adaptador de persistencia para compras.
func NewCompraRepository(store TabStore) *CompraRepo {
	return &CompraRepo{store: store}
}

// List devuelve todas las compras; filas sin idcompra usan el número de fila.
func (r *CompraRepo) List(ctx context.Context) ([]entity.Compra, error) {
	rows, err := r.store.ReadAll(ctx, tabCompras)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []entity.Compra{}, nil
	}
	res := NewResolver(tabCompras, rows[0])
	idCol, _ := res.Col(aliasCompraID...)
	fechaCol, _ := res.Col(aliasCompraFecha...)
	provCol, _ := res.Col(aliasCompraProveedor...)
	artCol, _ := res.Col(aliasCompraArticulo...)
	nombreCol, _ := res.Col(aliasCompraNombre...)
	cantCol, _ := res.Col(aliasCompraCantidad...)
	precioCol, _ := res.Col(aliasCompraPrecio...)

	out := make([]entity.Compra, 0, len(rows)-1)
	for i, row := range rows[1:] {
		id := Cell(row, idCol)
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		out = append(out, entity.Compra{
			IDCompra:   id,
			Fecha:      Cell(row, fechaCol),
			Proveedor:  Cell(row, provCol),
			IDArticulo: Cell(row, artCol),
			Articulo:   Cell(row, nombreCol),
			Cantidad:   IntCell(row, cantCol),
			Precio:     NumCell(row, precioCol),
		})
	}
	return out, nil
}

// GetByID devuelve la compra con ese id, o nil si no existe.
func (r *CompraRepo) GetByID(ctx context.Context, id string) (*entity.Compra, error) {
	compras, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range compras {
		if sameKey(compras[i].IDCompra, id) {
			return &compras[i], nil
		}
	}
	return nil, nil
}

// NextID genera el siguiente idcompra secuencial: max(ids numéricos) + 1.
func (r *CompraRepo) NextID(ctx context.Context) (string, error) {
	compras, err := r.List(ctx)
	if err != nil {
		return "", err
	}
	max := 0
	for _, c := range compras {
		if n, err := strconv.Atoi(c.IDCompra); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1), nil
}

// Insert agrega la compra como una fila nueva.
func (r *CompraRepo) Insert(ctx context.Context, c entity.Compra) error {
	return r.store.Append(ctx, tabCompras, [][]interface{}{compraRow(c)})
}

// Update localiza la fila por idcompra y la sobrescribe completa. El caso de
// uso ya fusionó los campos parciales sobre la compra actual.
func (r *CompraRepo) Update(ctx context.Context, id string, c entity.Compra) error {
	rows, err := r.store.ReadAll(ctx, tabCompras)
	if err != nil {
		return err
	}
	idx, err := r.locate(rows, id)
	if err != nil {
		return err
	}
	return r.store.UpdateRow(ctx, tabCompras, idx, compraRow(c))
}

// Delete localiza la fila por idcompra y la elimina.
func (r *CompraRepo) Delete(ctx context.Context, id string) error {
	rows, err := r.store.ReadAll(ctx, tabCompras)
	if err != nil {
		return err
	}
	idx, err := r.locate(rows, id)
	if err != nil {
		return err
	}
	return r.store.DeleteRow(ctx, tabCompras, idx)
}

// locate busca la fila por idcompra; si la columna no existe, cae a la columna
// 0, como hacían las hojas viejas sin encabezado idcompra.
func (r *CompraRepo) locate(rows [][]string, id string) (int, error) {
	if len(rows) < 2 {
		return -1, fmt.Errorf("compra %s: %w", id, domain.ErrNotFound)
	}
	res := NewResolver(tabCompras, rows[0])
	idCol, ok := res.Col(aliasCompraID...)
	if !ok {
		idCol = 0
	}
	idx := findRow(rows, idCol, id)
	if idx < 0 {
		return -1, fmt.Errorf("compra %s: %w", id, domain.ErrNotFound)
	}
	return idx, nil
}

// compraRow orden canónico de columnas al escribir (A:G).
func compraRow(c entity.Compra) []interface{} {
	return []interface{}{
		c.IDCompra,
		c.Fecha,
		c.Proveedor,
		c.IDArticulo,
		c.Articulo,
		c.Cantidad,
		c.Precio.String(),
	}
}
