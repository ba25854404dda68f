package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcarreon/ventastock/internal/application/dto"
	"github.com/jpcarreon/ventastock/internal/application/usecase"
	"github.com/jpcarreon/ventastock/internal/domain"
	"github.com/jpcarreon/ventastock/internal/infrastructure/sheets"
)

func entornoProveedores(t *testing.T, filas ...[]string) *usecase.ProveedorUseCase {
	t.Helper()
	grid := [][]string{{"idproveedor", "nombre", "telefono", "email", "direccion", "contacto"}}
	grid = append(grid, filas...)
	store := sheets.NewMemoryStore(map[string][][]string{"proveedores": grid})
	return usecase.NewProveedorUseCase(sheets.NewProveedorRepository(store))
}

func TestProveedorCreate_RechazaIDDuplicado(t *testing.T) {
	uc := entornoProveedores(t,
		[]string{"P1", "ACME", "", "", "", "Carlos"},
	)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.ProveedorRequest{
		ID:     strPtr("p1"),
		Nombre: strPtr("Otro"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Equal(t, "Ya existe un proveedor con ese ID", err.Error())

	resp, err := uc.Create(ctx, dto.ProveedorRequest{
		ID:       strPtr("P2"),
		Nombre:   strPtr("Ferrecentro"),
		Contacto: strPtr("Lucía"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "P2", resp.Proveedor.IDProveedor)
}

func TestProveedorCreate_Validaciones(t *testing.T) {
	uc := entornoProveedores(t)

	_, err := uc.Create(context.Background(), dto.ProveedorRequest{Nombre: strPtr("Sin id")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, "ID proveedor y nombre son obligatorios", err.Error())
}

func TestProveedorUpdate_RenombraConChequeoDeDuplicado(t *testing.T) {
	uc := entornoProveedores(t,
		[]string{"P1", "ACME", "", "", "", ""},
		[]string{"P2", "Ferrecentro", "", "", "", ""},
	)
	ctx := context.Background()

	err := uc.Update(ctx, "P1", dto.ProveedorRequest{
		ID:     strPtr("P2"),
		Nombre: strPtr("ACME"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	err = uc.Update(ctx, "P1", dto.ProveedorRequest{
		ID:     strPtr("P9"),
		Nombre: strPtr("ACME SA"),
	})
	require.NoError(t, err)
	assert.True(t, uc.Exists(ctx, "P9"))
	assert.False(t, uc.Exists(ctx, "P1"))
}

func TestProveedorUpdate_NombreObligatorio(t *testing.T) {
	uc := entornoProveedores(t,
		[]string{"P1", "ACME", "", "", "", ""},
	)

	err := uc.Update(context.Background(), "P1", dto.ProveedorRequest{})
	require.Error(t, err)
	assert.Equal(t, "Nombre es obligatorio", err.Error())
}
