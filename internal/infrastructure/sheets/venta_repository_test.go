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

var encabezadoVentas = []string{"idventa", "fecha", "cliente", "idarticulo", "nombre", "cantidad", "precioUnitario", "total"}

func storeVentas(rows ...[]string) *MemoryStore {
	grid := [][]string{encabezadoVentas}
	grid = append(grid, rows...)
	return NewMemoryStore(map[string][][]string{tabVentas: grid})
}

func TestVentaRepo_ListAgrupaPorID(t *testing.T) {
	repo := NewVentaRepository(storeVentas(
		[]string{"1", "2026-08-01", "Juan", "A1", "Tornillo", "2", "12.5", "25"},
		[]string{"1", "2026-08-01", "Juan", "A2", "Tuerca", "4", "3.75", "15"},
		[]string{"2", "2026-08-02", "", "A1", "Tornillo", "1", "12.5", "12.5"},
	))

	ventas, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ventas, 2)

	v := ventas[0]
	assert.Equal(t, "1", v.IDVenta)
	assert.Equal(t, "Juan", v.Cliente)
	require.Len(t, v.Lineas, 2)
	assert.Equal(t, "40", v.Total.String(), "el total es la suma de las líneas")
	assert.Equal(t, "A2", v.Lineas[1].IDArticulo)
	assert.Equal(t, 4, v.Lineas[1].Cantidad)

	assert.Equal(t, "2", ventas[1].IDVenta)
	assert.Len(t, ventas[1].Lineas, 1)
}

func TestVentaRepo_ListFilasLegacySinPrecioUnitario(t *testing.T) {
	// Hojas viejas: sin columna precioUnitario y sin idventa.
	store := NewMemoryStore(map[string][][]string{tabVentas: {
		{"fecha", "cliente", "idarticulo", "nombre", "cantidad", "total"},
		{"2025-01-15", "Ana", "A1", "Tornillo", "4", "50"},
	}})
	repo := NewVentaRepository(store)

	ventas, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ventas, 1)

	v := ventas[0]
	assert.Equal(t, "1", v.IDVenta, "sin idventa se usa el número de fila")
	require.Len(t, v.Lineas, 1)
	assert.Equal(t, "12.5", v.Lineas[0].PrecioUnitario.String(), "precio unitario derivado de total/cantidad")
}

func TestVentaRepo_NextIDIgnoraIDsNoNumericos(t *testing.T) {
	repo := NewVentaRepository(storeVentas(
		[]string{"7", "2026-08-01", "", "A1", "Tornillo", "1", "10", "10"},
		[]string{"V-9", "2026-08-01", "", "A1", "Tornillo", "1", "10", "10"},
	))

	id, err := repo.NextID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "8", id)
}

func TestVentaRepo_NextIDEnHojaVacia(t *testing.T) {
	repo := NewVentaRepository(storeVentas())

	id, err := repo.NextID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", id)
}

func TestVentaRepo_InsertUnaFilaPorLinea(t *testing.T) {
	repo := NewVentaRepository(storeVentas())
	ctx := context.Background()

	venta := entity.Venta{
		IDVenta: "1",
		Fecha:   "2026-08-01",
		Cliente: "Juan",
		Lineas: []entity.VentaLinea{
			{IDArticulo: "A1", Nombre: "Tornillo", Cantidad: 2, PrecioUnitario: decimal.NewFromFloat(12.5), Total: decimal.NewFromInt(25)},
			{IDArticulo: "A2", Nombre: "Tuerca", Cantidad: 4, PrecioUnitario: decimal.NewFromFloat(3.75), Total: decimal.NewFromInt(15)},
		},
		Total: decimal.NewFromInt(40),
	}
	require.NoError(t, repo.Insert(ctx, venta))

	v, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Len(t, v.Lineas, 2)
	assert.Equal(t, "40", v.Total.String())
}

func TestVentaRepo_UpdateConDistintoNumeroDeLineas(t *testing.T) {
	// La venta 1 tiene dos filas intercaladas con la venta 2; al reducirla a
	// una línea deben desaparecer ambas filas viejas sin tocar la venta 2.
	repo := NewVentaRepository(storeVentas(
		[]string{"1", "2026-08-01", "Juan", "A1", "Tornillo", "2", "12.5", "25"},
		[]string{"2", "2026-08-02", "Ana", "A3", "Clavo", "5", "2", "10"},
		[]string{"1", "2026-08-01", "Juan", "A2", "Tuerca", "4", "3.75", "15"},
	))
	ctx := context.Background()

	err := repo.Update(ctx, "1", entity.Venta{
		IDVenta: "1",
		Fecha:   "2026-08-01",
		Cliente: "Juan",
		Lineas: []entity.VentaLinea{
			{IDArticulo: "A1", Nombre: "Tornillo", Cantidad: 1, PrecioUnitario: decimal.NewFromFloat(12.5), Total: decimal.NewFromFloat(12.5)},
		},
		Total: decimal.NewFromFloat(12.5),
	})
	require.NoError(t, err)

	v, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Len(t, v.Lineas, 1)
	assert.Equal(t, "12.5", v.Total.String())

	otra, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, otra, "la venta vecina no se ve afectada")
	assert.Len(t, otra.Lineas, 1)
}

func TestVentaRepo_UpdateEnSitioMismoNumeroDeLineas(t *testing.T) {
	repo := NewVentaRepository(storeVentas(
		[]string{"1", "2026-08-01", "Juan", "A1", "Tornillo", "2", "12.5", "25"},
	))
	ctx := context.Background()

	err := repo.Update(ctx, "1", entity.Venta{
		IDVenta: "1",
		Fecha:   "2026-08-05",
		Cliente: "Pedro",
		Lineas: []entity.VentaLinea{
			{IDArticulo: "A1", Nombre: "Tornillo", Cantidad: 3, PrecioUnitario: decimal.NewFromFloat(12.5), Total: decimal.NewFromFloat(37.5)},
		},
		Total: decimal.NewFromFloat(37.5),
	})
	require.NoError(t, err)

	v, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "2026-08-05", v.Fecha)
	assert.Equal(t, "Pedro", v.Cliente)
	assert.Equal(t, 3, v.Lineas[0].Cantidad)
}

func TestVentaRepo_DeleteEliminaTodasLasFilas(t *testing.T) {
	repo := NewVentaRepository(storeVentas(
		[]string{"1", "2026-08-01", "Juan", "A1", "Tornillo", "2", "12.5", "25"},
		[]string{"1", "2026-08-01", "Juan", "A2", "Tuerca", "4", "3.75", "15"},
	))
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, "1"))

	v, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestVentaRepo_MutarVentaInexistente(t *testing.T) {
	repo := NewVentaRepository(storeVentas(
		[]string{"1", "2026-08-01", "Juan", "A1", "Tornillo", "2", "12.5", "25"},
	))

	err := repo.Delete(context.Background(), "99")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
