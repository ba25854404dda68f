package sheets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcarreon/ventastock/internal/domain"
)

func TestResolver_AliasConAcentosYMayusculas(t *testing.T) {
	res := NewResolver("articulos", []string{" Código ", "Nombre", "DIRECCIÓN", "existencia"})

	i, ok := res.Col("codigo")
	require.True(t, ok, "código con acento debe resolver contra el alias sin acento")
	assert.Equal(t, 0, i)

	i, ok = res.Col("direccion", "dir")
	require.True(t, ok)
	assert.Equal(t, 2, i)

	// El orden de los alias manda: stock no existe, existencia sí.
	i, ok = res.Col("stock", "existencia", "inventario")
	require.True(t, ok)
	assert.Equal(t, 3, i)
}

func TestResolver_ColumnaFaltante(t *testing.T) {
	res := NewResolver("articulos", []string{"id", "nombre"})

	_, ok := res.Col("precio")
	assert.False(t, ok)

	_, err := res.RequireCol("precio", "precio")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSchema), "columna requerida ausente es un error de esquema")

	var colErr *domain.ColumnaNoEncontradaError
	require.True(t, errors.As(err, &colErr))
	assert.Equal(t, "precio", colErr.Campo)
	assert.Contains(t, colErr.Error(), "nombre", "el mensaje debe listar los encabezados encontrados")
}

func TestCell_FueraDeRangoYRecorte(t *testing.T) {
	row := []string{"  A1  ", "B1"}
	assert.Equal(t, "A1", Cell(row, 0))
	assert.Equal(t, "", Cell(row, 5), "las filas de Sheets vienen recortadas; fuera de rango es vacío")
	assert.Equal(t, "", Cell(row, -1))
}

func TestNumCell_ComaDecimalYBasura(t *testing.T) {
	row := []string{"12,50", "3.75", "abc", ""}
	assert.Equal(t, "12.5", NumCell(row, 0).String())
	assert.Equal(t, "3.75", NumCell(row, 1).String())
	assert.True(t, NumCell(row, 2).IsZero(), "texto no numérico degrada a 0")
	assert.True(t, NumCell(row, 3).IsZero())
}

func TestIntCell_TruncaDecimales(t *testing.T) {
	row := []string{"7", "2.9", "x"}
	assert.Equal(t, 7, IntCell(row, 0))
	assert.Equal(t, 2, IntCell(row, 1))
	assert.Equal(t, 0, IntCell(row, 2))
}

func TestFindRow_InsensibleAMayusculas(t *testing.T) {
	rows := [][]string{
		{"id", "nombre"},
		{"A1", "uno"},
		{" b2 ", "dos"},
	}
	assert.Equal(t, 2, findRow(rows, 0, "B2"))
	assert.Equal(t, -1, findRow(rows, 0, "c3"))
	assert.Equal(t, -1, findRow(rows, 0, "id"), "la fila de encabezados no cuenta")
}
