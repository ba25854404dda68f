package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcarreon/ventastock/internal/application/inventory"
	"github.com/jpcarreon/ventastock/internal/domain"
	"github.com/jpcarreon/ventastock/internal/infrastructure/sheets"
	"github.com/jpcarreon/ventastock/pkg/logger"
)

func nuevoStockUC(t *testing.T, filas ...[]string) (*inventory.StockUseCase, *sheets.ArticuloRepo) {
	t.Helper()
	grid := [][]string{{"codbarra", "id", "nombre", "descripcion", "precio", "stock"}}
	grid = append(grid, filas...)
	store := sheets.NewMemoryStore(map[string][][]string{"articulos": grid})
	repo := sheets.NewArticuloRepository(store)
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return inventory.NewStockUseCase(repo, log), repo
}

func stockDe(t *testing.T, repo *sheets.ArticuloRepo, id string) int {
	t.Helper()
	a, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, a)
	return a.Stock
}

func TestDescontar_RestaDelStock(t *testing.T) {
	uc, repo := nuevoStockUC(t, []string{"", "A1", "Tornillo", "", "12.5", "8"})

	require.NoError(t, uc.Descontar(context.Background(), "A1", 3))
	assert.Equal(t, 5, stockDe(t, repo, "A1"))
}

func TestDescontar_StockInsuficienteNoMuta(t *testing.T) {
	uc, repo := nuevoStockUC(t, []string{"", "A1", "Tornillo", "", "12.5", "2"})

	err := uc.Descontar(context.Background(), "A1", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	var insErr *domain.StockInsuficienteError
	require.True(t, errors.As(err, &insErr))
	assert.Equal(t, 2, insErr.Disponible)
	assert.Equal(t, 5, insErr.Solicitado)
	assert.Equal(t, 2, stockDe(t, repo, "A1"), "un descuento fallido no toca el stock")
}

func TestDescontar_ArticuloInexistente(t *testing.T) {
	uc, _ := nuevoStockUC(t)

	err := uc.Descontar(context.Background(), "ZZ", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "Artículo ZZ no encontrado")
}

func TestDescontar_EntradasVaciasSonNoOp(t *testing.T) {
	uc, repo := nuevoStockUC(t, []string{"", "A1", "Tornillo", "", "12.5", "8"})
	ctx := context.Background()

	require.NoError(t, uc.Descontar(ctx, "", 3))
	require.NoError(t, uc.Descontar(ctx, "A1", 0))
	require.NoError(t, uc.Descontar(ctx, "A1", -2))
	assert.Equal(t, 8, stockDe(t, repo, "A1"))
}

func TestReponer_SumaAlStock(t *testing.T) {
	uc, repo := nuevoStockUC(t, []string{"", "A1", "Tornillo", "", "12.5", "5"})

	require.NoError(t, uc.Reponer(context.Background(), "A1", 3))
	assert.Equal(t, 8, stockDe(t, repo, "A1"))
}

func TestReponer_ArticuloBorradoEsNoOp(t *testing.T) {
	uc, _ := nuevoStockUC(t)

	// Reponer es compensación de mejor esfuerzo: el artículo pudo borrarse
	// entre la venta y su reversión.
	require.NoError(t, uc.Reponer(context.Background(), "ZZ", 3))
}

func TestRestar_FallaEnLugarDeRecortar(t *testing.T) {
	uc, repo := nuevoStockUC(t, []string{"", "A1", "Tornillo", "", "12.5", "2"})

	err := uc.Restar(context.Background(), "A1", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, 2, stockDe(t, repo, "A1"))
}

func TestActualizarPrecioYStock_FijaPrecioYSuma(t *testing.T) {
	uc, repo := nuevoStockUC(t, []string{"", "A1", "Tornillo", "", "12.5", "5"})

	err := uc.ActualizarPrecioYStock(context.Background(), "A1", decimal.NewFromFloat(14.25), 10)
	require.NoError(t, err)

	a, err := repo.GetByID(context.Background(), "A1")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "14.25", a.Precio.String())
	assert.Equal(t, 15, a.Stock)
}
