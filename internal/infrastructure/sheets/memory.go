package sheets

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore implementación de TabStore en memoria. Sirve como doble de
// pruebas y para correr la API sin credenciales en desarrollo. Reproduce la
// semántica posicional de la hoja real: la fila 0 es el encabezado y
// DeleteRow desplaza las filas siguientes.
type MemoryStore struct {
	mu   sync.RWMutex
	tabs map[string][][]string
}

var _ TabStore = (*MemoryStore)(nil)

// NewMemoryStore crea el almacén con las pestañas dadas (fila 0 = encabezados).
func NewMemoryStore(tabs map[string][][]string) *MemoryStore {
	m := &MemoryStore{tabs: make(map[string][][]string, len(tabs))}
	for tab, rows := range tabs {
		cp := make([][]string, len(rows))
		for i, r := range rows {
			cp[i] = append([]string(nil), r...)
		}
		m.tabs[tab] = cp
	}
	return m
}

// ReadAll devuelve una copia de la rejilla de la pestaña.
func (m *MemoryStore) ReadAll(_ context.Context, tab string) ([][]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rows, ok := m.tabs[tab]
	if !ok {
		return nil, fmt.Errorf("memoria: no existe la pestaña %s", tab)
	}
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = append([]string(nil), r...)
	}
	return out, nil
}

// Append agrega filas al final de la pestaña.
func (m *MemoryStore) Append(_ context.Context, tab string, rows [][]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.tabs[tab]
	if !ok {
		return fmt.Errorf("memoria: no existe la pestaña %s", tab)
	}
	for _, r := range rows {
		existing = append(existing, stringRow(r))
	}
	m.tabs[tab] = existing
	return nil
}

// UpdateRow sobrescribe la fila rowIdx completa.
func (m *MemoryStore) UpdateRow(_ context.Context, tab string, rowIdx int, row []interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.tabs[tab]
	if !ok || rowIdx < 0 || rowIdx >= len(rows) {
		return fmt.Errorf("memoria: fila %d fuera de rango en %s", rowIdx, tab)
	}
	rows[rowIdx] = stringRow(row)
	return nil
}

// UpdateCells escribe celdas puntuales, extendiendo la fila si hace falta.
func (m *MemoryStore) UpdateCells(_ context.Context, tab string, updates []CellUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.tabs[tab]
	if !ok {
		return fmt.Errorf("memoria: no existe la pestaña %s", tab)
	}
	for _, u := range updates {
		if u.Row < 0 || u.Row >= len(rows) {
			return fmt.Errorf("memoria: fila %d fuera de rango en %s", u.Row, tab)
		}
		for len(rows[u.Row]) <= u.Col {
			rows[u.Row] = append(rows[u.Row], "")
		}
		rows[u.Row][u.Col] = fmt.Sprint(u.Value)
	}
	return nil
}

// DeleteRow elimina la fila; las siguientes suben una posición.
func (m *MemoryStore) DeleteRow(_ context.Context, tab string, rowIdx int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.tabs[tab]
	if !ok || rowIdx < 0 || rowIdx >= len(rows) {
		return fmt.Errorf("memoria: fila %d fuera de rango en %s", rowIdx, tab)
	}
	m.tabs[tab] = append(rows[:rowIdx], rows[rowIdx+1:]...)
	return nil
}

func stringRow(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprint(v)
	}
	return out
}
