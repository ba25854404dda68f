package sheets

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jpcarreon/ventastock/internal/domain"
	"github.com/jpcarreon/ventastock/internal/domain/entity"
	"github.com/jpcarreon/ventastock/internal/domain/repository"
)

const tabVentas = "ventas"

var (
	aliasVentaID       = []string{"idventa", "id venta"}
	aliasVentaFecha    = []string{"fecha"}
	aliasVentaCliente  = []string{"cliente"}
	aliasVentaArticulo = []string{"idarticulo", "articuloid", "id articulo"}
	aliasVentaNombre   = []string{"nombre", "articulonombre"}
	aliasVentaCantidad = []string{"cantidad"}
	aliasVentaPrecioU  = []string{"preciounitario", "precio unitario", "precio"}
	aliasVentaTotal    = []string{"total"}
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo persistencia de ventas sobre la pestaña 'ventas'. Una venta ocupa
// una fila por línea; todas las filas comparten idventa. Las filas legacy de
// una sola línea (sin más filas con el mismo id) se leen como ventas de una
// línea, con precio unitario derivado de total/cantidad si falta la columna.
type VentaRepo struct {
	store TabStore
}

// NewVentaRepository construye el adaptador de persistencia para ventas.
func NewVentaRepository(store TabStore) *VentaRepo {
	return &VentaRepo{store: store}
}

// List agrupa las filas por idventa preservando el orden de primera aparición.
// Filas sin idventa se tratan como ventas propias con el número de fila como id.
func (r *VentaRepo) List(ctx context.Context) ([]entity.Venta, error) {
	rows, err := r.store.ReadAll(ctx, tabVentas)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []entity.Venta{}, nil
	}
	res := NewResolver(tabVentas, rows[0])
	idCol, _ := res.Col(aliasVentaID...)
	fechaCol, _ := res.Col(aliasVentaFecha...)
	clienteCol, _ := res.Col(aliasVentaCliente...)
	artCol, _ := res.Col(aliasVentaArticulo...)
	nombreCol, _ := res.Col(aliasVentaNombre...)
	cantCol, _ := res.Col(aliasVentaCantidad...)
	precioUCol, hasPrecioU := res.Col(aliasVentaPrecioU...)
	totalCol, _ := res.Col(aliasVentaTotal...)

	ventas := make([]entity.Venta, 0)
	porID := make(map[string]int) // idventa -> índice en ventas

	for i, row := range rows[1:] {
		id := Cell(row, idCol)
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		cantidad := IntCell(row, cantCol)
		total := NumCell(row, totalCol)
		precioU := decimal.Zero
		if hasPrecioU {
			precioU = NumCell(row, precioUCol)
		} else if cantidad > 0 {
			precioU = total.Div(decimal.NewFromInt(int64(cantidad)))
		}
		linea := entity.VentaLinea{
			IDArticulo:     Cell(row, artCol),
			Nombre:         Cell(row, nombreCol),
			Cantidad:       cantidad,
			PrecioUnitario: precioU,
			Total:          total,
		}
		if j, ok := porID[id]; ok {
			ventas[j].Lineas = append(ventas[j].Lineas, linea)
			ventas[j].Total = ventas[j].Total.Add(total)
			continue
		}
		porID[id] = len(ventas)
		ventas = append(ventas, entity.Venta{
			IDVenta: id,
			Fecha:   Cell(row, fechaCol),
			Cliente: Cell(row, clienteCol),
			Lineas:  []entity.VentaLinea{linea},
			Total:   total,
		})
	}
	return ventas, nil
}

// GetByID devuelve la venta con ese id, o nil si no existe.
func (r *VentaRepo) GetByID(ctx context.Context, id string) (*entity.Venta, error) {
	ventas, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range ventas {
		if sameKey(ventas[i].IDVenta, id) {
			return &ventas[i], nil
		}
	}
	return nil, nil
}

// NextID genera el siguiente idventa secuencial: max(ids numéricos) + 1.
func (r *VentaRepo) NextID(ctx context.Context) (string, error) {
	ventas, err := r.List(ctx)
	if err != nil {
		return "", err
	}
	max := 0
	for _, v := range ventas {
		if n, err := strconv.Atoi(v.IDVenta); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1), nil
}

// Insert agrega una fila por línea de la venta.
func (r *VentaRepo) Insert(ctx context.Context, v entity.Venta) error {
	return r.store.Append(ctx, tabVentas, ventaRows(v))
}

// Update reemplaza las filas de la venta. Si el número de líneas coincide con
// las filas existentes sobrescribe en sitio; si cambia, elimina las filas
// viejas (de abajo hacia arriba, para no invalidar índices) y agrega las nuevas.
func (r *VentaRepo) Update(ctx context.Context, id string, v entity.Venta) error {
	indices, err := r.rowIndices(ctx, id)
	if err != nil {
		return err
	}
	nuevas := ventaRows(v)
	if len(indices) == len(nuevas) {
		for i, idx := range indices {
			if err := r.store.UpdateRow(ctx, tabVentas, idx, nuevas[i]); err != nil {
				return err
			}
		}
		return nil
	}
	for i := len(indices) - 1; i >= 0; i-- {
		if err := r.store.DeleteRow(ctx, tabVentas, indices[i]); err != nil {
			return err
		}
	}
	return r.store.Append(ctx, tabVentas, nuevas)
}

// Delete elimina todas las filas de la venta.
func (r *VentaRepo) Delete(ctx context.Context, id string) error {
	indices, err := r.rowIndices(ctx, id)
	if err != nil {
		return err
	}
	for i := len(indices) - 1; i >= 0; i-- {
		if err := r.store.DeleteRow(ctx, tabVentas, indices[i]); err != nil {
			return err
		}
	}
	return nil
}

// rowIndices relocaliza las filas de la venta con una lectura fresca,
// inmediatamente antes de mutar.
func (r *VentaRepo) rowIndices(ctx context.Context, id string) ([]int, error) {
	rows, err := r.store.ReadAll(ctx, tabVentas)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("venta %s: %w", id, domain.ErrNotFound)
	}
	res := NewResolver(tabVentas, rows[0])
	idCol, err := res.RequireCol("idventa", aliasVentaID...)
	if err != nil {
		return nil, err
	}
	var indices []int
	for i := 1; i < len(rows); i++ {
		if sameKey(Cell(rows[i], idCol), id) {
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("venta %s: %w", id, domain.ErrNotFound)
	}
	sort.Ints(indices)
	return indices, nil
}

// ventaRows serializa la venta al orden canónico de columnas (A:H).
func ventaRows(v entity.Venta) [][]interface{} {
	rows := make([][]interface{}, 0, len(v.Lineas))
	for _, l := range v.Lineas {
		rows = append(rows, []interface{}{
			v.IDVenta,
			v.Fecha,
			v.Cliente,
			l.IDArticulo,
			l.Nombre,
			l.Cantidad,
			l.PrecioUnitario.String(),
			l.Total.String(),
		})
	}
	return rows
}
