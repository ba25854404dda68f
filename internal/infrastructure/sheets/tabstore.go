package sheets

import "context"

// CellUpdate una celda puntual a sobrescribir. Row es el índice de fila dentro
// de los datos leídos (0 = encabezados); Col el índice de columna.
type CellUpdate struct {
	Row   int
	Col   int
	Value interface{}
}

// TabStore acceso a nivel de fila sobre una pestaña de la hoja de cálculo.
// Es el único punto de contacto con la API de Sheets; los repositorios se
// construyen encima y los tests lo sustituyen por una implementación en memoria.
//
// Los índices de fila son los de la rejilla leída con ReadAll: la fila 0 es la
// de encabezados. DeleteRow elimina físicamente la fila, desplazando las
// siguientes una posición hacia arriba.
type TabStore interface {
	ReadAll(ctx context.Context, tab string) ([][]string, error)
	Append(ctx context.Context, tab string, rows [][]interface{}) error
	UpdateRow(ctx context.Context, tab string, rowIdx int, row []interface{}) error
	// UpdateCells aplica todas las celdas en una sola escritura por lotes.
	UpdateCells(ctx context.Context, tab string, updates []CellUpdate) error
	DeleteRow(ctx context.Context, tab string, rowIdx int) error
}
