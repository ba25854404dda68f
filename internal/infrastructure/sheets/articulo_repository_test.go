package sheets

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcarreon/ventastock/internal/domain"
	"github.com/jpcarreon/ventastock/internal/domain/entity"
)

func storeArticulos(rows ...[]string) *MemoryStore {
	grid := [][]string{{"codbarra", "id", "nombre", "descripcion", "precio", "stock", "categoria"}}
	grid = append(grid, rows...)
	return NewMemoryStore(map[string][][]string{tabArticulos: grid})
}

func TestArticuloRepo_ListToleraColumnasFaltantes(t *testing.T) {
	// Hoja vieja sin codbarra ni categoria y con encabezado "código".
	store := NewMemoryStore(map[string][][]string{tabArticulos: {
		{"Código", "Nombre", "Precio", "Existencia"},
		{"A1", "Tornillo", "12,50", "8"},
		{"A2", "Tuerca", "3.75", ""},
	}})
	repo := NewArticuloRepository(store)

	articulos, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, articulos, 2)

	assert.Equal(t, "A1", articulos[0].IDArticulo)
	assert.Equal(t, "Tornillo", articulos[0].Nombre)
	assert.Equal(t, "12.5", articulos[0].Precio.String())
	assert.Equal(t, 8, articulos[0].Stock)
	assert.Empty(t, articulos[0].Codbarra, "columna ausente queda vacía")
	assert.Equal(t, 0, articulos[1].Stock, "celda vacía degrada a 0")
}

func TestArticuloRepo_InsertYGetByID(t *testing.T) {
	repo := NewArticuloRepository(storeArticulos())
	ctx := context.Background()

	err := repo.Insert(ctx, entity.Articulo{
		Codbarra:   "779123",
		IDArticulo: "A1",
		Nombre:     "Tornillo",
		Precio:     decimal.NewFromFloat(12.5),
		Stock:      8,
	})
	require.NoError(t, err)

	a, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, a, "el id no distingue mayúsculas")
	assert.Equal(t, "Tornillo", a.Nombre)

	a, err = repo.GetByID(ctx, "ZZ")
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestArticuloRepo_ExistsCodbarraExcluyeElPropio(t *testing.T) {
	repo := NewArticuloRepository(storeArticulos(
		[]string{"779123", "A1", "Tornillo", "", "12.5", "8", ""},
		[]string{"", "A2", "Tuerca", "", "3.75", "20", ""},
	))
	ctx := context.Background()

	ok, err := repo.ExistsCodbarra(ctx, "779123", "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsCodbarra(ctx, "779123", "A1")
	require.NoError(t, err)
	assert.False(t, ok, "en edición el propio artículo no cuenta como duplicado")

	ok, err = repo.ExistsCodbarra(ctx, "", "")
	require.NoError(t, err)
	assert.False(t, ok, "codbarra vacío nunca es duplicado")
}

func TestArticuloRepo_UpdateSobrescribeLaFila(t *testing.T) {
	repo := NewArticuloRepository(storeArticulos(
		[]string{"", "A1", "Tornillo", "", "12.5", "8", "ferreteria"},
	))
	ctx := context.Background()

	err := repo.Update(ctx, "A1", entity.Articulo{
		IDArticulo: "B9",
		Nombre:     "Tornillo largo",
		Precio:     decimal.NewFromInt(15),
		Stock:      4,
	})
	require.NoError(t, err)

	a, err := repo.GetByID(ctx, "B9")
	require.NoError(t, err)
	require.NotNil(t, a, "el update permite renombrar el id")
	assert.Equal(t, "Tornillo largo", a.Nombre)

	viejo, err := repo.GetByID(ctx, "A1")
	require.NoError(t, err)
	assert.Nil(t, viejo)
}

func TestArticuloRepo_DeleteInexistente(t *testing.T) {
	repo := NewArticuloRepository(storeArticulos(
		[]string{"", "A1", "Tornillo", "", "12.5", "8", ""},
	))

	err := repo.Delete(context.Background(), "ZZ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestArticuloRepo_UpdateStockSoloTocaLaCelda(t *testing.T) {
	repo := NewArticuloRepository(storeArticulos(
		[]string{"779123", "A1", "Tornillo", "desc", "12.5", "8", "ferreteria"},
	))
	ctx := context.Background()

	require.NoError(t, repo.UpdateStock(ctx, "A1", 3))

	a, err := repo.GetByID(ctx, "A1")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, 3, a.Stock)
	assert.Equal(t, "12.5", a.Precio.String(), "el precio no se toca")
	assert.Equal(t, "ferreteria", a.Categoria)
}

func TestArticuloRepo_UpdatePrecioYStockJuntos(t *testing.T) {
	repo := NewArticuloRepository(storeArticulos(
		[]string{"", "A1", "Tornillo", "", "12.5", "8", ""},
	))
	ctx := context.Background()

	err := repo.UpdatePrecioYStock(ctx, "A1", decimal.NewFromFloat(14.25), 18)
	require.NoError(t, err)

	a, err := repo.GetByID(ctx, "A1")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "14.25", a.Precio.String())
	assert.Equal(t, 18, a.Stock)
}

func TestArticuloRepo_MutarSinColumnaIDEsErrorDeEsquema(t *testing.T) {
	store := NewMemoryStore(map[string][][]string{tabArticulos: {
		{"nombre", "precio"},
		{"Tornillo", "12.5"},
	}})
	repo := NewArticuloRepository(store)

	err := repo.UpdateStock(context.Background(), "A1", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSchema))
}
