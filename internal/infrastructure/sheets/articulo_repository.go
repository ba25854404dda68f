package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jpcarreon/ventastock/internal/domain"
	"github.com/jpcarreon/ventastock/internal/domain/entity"
	"github.com/jpcarreon/ventastock/internal/domain/repository"
)

const tabArticulos = "articulos"

// Alias aceptados por campo; el resolver pliega acentos, así que "código" y
// "codigo" son el mismo alias.
var (
	aliasArticuloCodbarra = []string{"codbarra", "cod barra"}
	aliasArticuloID       = []string{"id", "idarticulo", "id articulo", "codigo"}
	aliasArticuloNombre   = []string{"nombre"}
	aliasArticuloDesc     = []string{"descripcion"}
	aliasArticuloPrecio   = []string{"precio"}
	aliasArticuloStock    = []string{"stock", "existencia", "inventario"}
	aliasArticuloCat      = []string{"categoria"}
)

var _ repository.ArticuloRepository = (*ArticuloRepo)(nil)

// ArticuloRepo implementación del puerto ArticuloRepository sobre la pestaña
// 'articulos'. Cada operación relee la pestaña completa antes de escribir.
type ArticuloRepo struct {
	store TabStore
}

// NewArticuloRepository construye el adaptador de persistencia para artículos.
func NewArticuloRepository(store TabStore) *ArticuloRepo {
	return &ArticuloRepo{store: store}
}

// List devuelve todos los artículos; lista vacía si la pestaña solo tiene
// encabezados. La lectura es tolerante: columnas faltantes quedan en cero/vacío.
func (r *ArticuloRepo) List(ctx context.Context) ([]entity.Articulo, error) {
	rows, err := r.store.ReadAll(ctx, tabArticulos)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []entity.Articulo{}, nil
	}
	res := NewResolver(tabArticulos, rows[0])
	codbarraCol, _ := res.Col(aliasArticuloCodbarra...)
	idCol, _ := res.Col(aliasArticuloID...)
	nombreCol, _ := res.Col(aliasArticuloNombre...)
	descCol, _ := res.Col(aliasArticuloDesc...)
	precioCol, _ := res.Col(aliasArticuloPrecio...)
	stockCol, _ := res.Col(aliasArticuloStock...)
	catCol, _ := res.Col(aliasArticuloCat...)

	out := make([]entity.Articulo, 0, len(rows)-1)
	for _, row := range rows[1:] {
		out = append(out, entity.Articulo{
			Codbarra:    Cell(row, codbarraCol),
			IDArticulo:  Cell(row, idCol),
			Nombre:      Cell(row, nombreCol),
			Descripcion: Cell(row, descCol),
			Precio:      NumCell(row, precioCol),
			Stock:       IntCell(row, stockCol),
			Categoria:   Cell(row, catCol),
		})
	}
	return out, nil
}

// GetByID devuelve el artículo con ese id, o nil si no existe.
func (r *ArticuloRepo) GetByID(ctx context.Context, id string) (*entity.Articulo, error) {
	articulos, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range articulos {
		if sameKey(articulos[i].IDArticulo, id) {
			return &articulos[i], nil
		}
	}
	return nil, nil
}

// GetByCodbarra devuelve el artículo con ese código de barras, o nil.
func (r *ArticuloRepo) GetByCodbarra(ctx context.Context, codbarra string) (*entity.Articulo, error) {
	if strings.TrimSpace(codbarra) == "" {
		return nil, nil
	}
	articulos, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range articulos {
		if articulos[i].Codbarra != "" && sameKey(articulos[i].Codbarra, codbarra) {
			return &articulos[i], nil
		}
	}
	return nil, nil
}

// Exists indica si ya existe un artículo con ese id (insensible a mayúsculas).
func (r *ArticuloRepo) Exists(ctx context.Context, id string) (bool, error) {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return a != nil, nil
}

// ExistsCodbarra indica si otro artículo ya usa ese código de barras.
// excluirID omite el propio artículo en modo edición.
func (r *ArticuloRepo) ExistsCodbarra(ctx context.Context, codbarra, excluirID string) (bool, error) {
	if strings.TrimSpace(codbarra) == "" {
		return false, nil
	}
	articulos, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for i := range articulos {
		if !sameKey(articulos[i].Codbarra, codbarra) {
			continue
		}
		if excluirID != "" && sameKey(articulos[i].IDArticulo, excluirID) {
			continue
		}
		return true, nil
	}
	return false, nil
}

// Insert agrega una fila nueva. No verifica unicidad: el caso de uso consulta
// Exists/ExistsCodbarra antes de llamar.
func (r *ArticuloRepo) Insert(ctx context.Context, a entity.Articulo) error {
	return r.store.Append(ctx, tabArticulos, [][]interface{}{articuloRow(a)})
}

// Update localiza la fila por id y la sobrescribe completa.
func (r *ArticuloRepo) Update(ctx context.Context, idAntiguo string, a entity.Articulo) error {
	rows, err := r.store.ReadAll(ctx, tabArticulos)
	if err != nil {
		return err
	}
	idx, _, err := r.locate(rows, idAntiguo)
	if err != nil {
		return err
	}
	return r.store.UpdateRow(ctx, tabArticulos, idx, articuloRow(a))
}

// Delete localiza la fila por id y la elimina físicamente.
func (r *ArticuloRepo) Delete(ctx context.Context, id string) error {
	rows, err := r.store.ReadAll(ctx, tabArticulos)
	if err != nil {
		return err
	}
	idx, _, err := r.locate(rows, id)
	if err != nil {
		return err
	}
	return r.store.DeleteRow(ctx, tabArticulos, idx)
}

// UpdateStock sobrescribe solo la celda de stock, detectando la columna por
// encabezado en cada llamada.
func (r *ArticuloRepo) UpdateStock(ctx context.Context, id string, stock int) error {
	rows, err := r.store.ReadAll(ctx, tabArticulos)
	if err != nil {
		return err
	}
	idx, res, err := r.locate(rows, id)
	if err != nil {
		return err
	}
	stockCol, err := res.RequireCol("stock", aliasArticuloStock...)
	if err != nil {
		return err
	}
	return r.store.UpdateCells(ctx, tabArticulos, []CellUpdate{
		{Row: idx, Col: stockCol, Value: stock},
	})
}

// UpdatePrecioYStock sobrescribe precio y stock juntos, en una sola escritura
// por lotes, para que una compra no deje el artículo a medio actualizar.
func (r *ArticuloRepo) UpdatePrecioYStock(ctx context.Context, id string, precio decimal.Decimal, stock int) error {
	rows, err := r.store.ReadAll(ctx, tabArticulos)
	if err != nil {
		return err
	}
	idx, res, err := r.locate(rows, id)
	if err != nil {
		return err
	}
	precioCol, err := res.RequireCol("precio", aliasArticuloPrecio...)
	if err != nil {
		return err
	}
	stockCol, err := res.RequireCol("stock", aliasArticuloStock...)
	if err != nil {
		return err
	}
	return r.store.UpdateCells(ctx, tabArticulos, []CellUpdate{
		{Row: idx, Col: precioCol, Value: precio.String()},
		{Row: idx, Col: stockCol, Value: stock},
	})
}

// locate resuelve la columna id (requerida para mutaciones) y busca la fila.
func (r *ArticuloRepo) locate(rows [][]string, id string) (int, *Resolver, error) {
	if len(rows) < 2 {
		return -1, nil, fmt.Errorf("articulo %s: %w", id, domain.ErrNotFound)
	}
	res := NewResolver(tabArticulos, rows[0])
	idCol, err := res.RequireCol("id", aliasArticuloID...)
	if err != nil {
		return -1, nil, err
	}
	idx := findRow(rows, idCol, id)
	if idx < 0 {
		return -1, nil, fmt.Errorf("articulo %s: %w", id, domain.ErrNotFound)
	}
	return idx, res, nil
}

// articuloRow orden canónico de columnas al escribir (A:F). La categoría solo
// se lee; la escribe el dueño de la hoja a mano.
func articuloRow(a entity.Articulo) []interface{} {
	return []interface{}{
		a.Codbarra,
		a.IDArticulo,
		a.Nombre,
		a.Descripcion,
		a.Precio.String(),
		a.Stock,
	}
}
