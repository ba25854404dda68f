package sheets

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jpcarreon/ventastock/internal/domain"
)

// foldTransformer descompone, quita marcas diacríticas y recompone, de modo
// que "dirección" y "direccion" normalizan al mismo valor.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeHeader trim + minúsculas + plegado de acentos.
func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if folded, _, err := transform.String(foldTransformer, s); err == nil {
		return folded
	}
	return s
}

// Resolver mapea nombres lógicos de campo a índices de columna a partir de la
// fila de encabezados de una pestaña. La coincidencia es insensible a
// mayúsculas, espacios y acentos, y tolera columnas faltantes o reordenadas.
type Resolver struct {
	tab      string
	headers  []string
	resolved []string
}

// NewResolver construye el resolver para la fila de encabezados dada.
func NewResolver(tab string, headers []string) *Resolver {
	resolved := make([]string, len(headers))
	for i, h := range headers {
		resolved[i] = normalizeHeader(h)
	}
	return &Resolver{tab: tab, headers: headers, resolved: resolved}
}

// Col devuelve el índice de la primera columna que coincide con alguno de los
// alias, en el orden dado. ok=false si ninguno existe.
func (r *Resolver) Col(aliases ...string) (int, bool) {
	for _, alias := range aliases {
		want := normalizeHeader(alias)
		for i, h := range r.resolved {
			if h == want {
				return i, true
			}
		}
	}
	return -1, false
}

// RequireCol como Col pero falla con ColumnaNoEncontradaError si la columna
// no existe; campo es el nombre lógico que se reporta en el error.
func (r *Resolver) RequireCol(campo string, aliases ...string) (int, error) {
	if i, ok := r.Col(aliases...); ok {
		return i, nil
	}
	return -1, &domain.ColumnaNoEncontradaError{
		Tab:         r.tab,
		Campo:       campo,
		Encabezados: r.headers,
	}
}

// Cell devuelve la celda recortada, o "" si el índice es inválido o está fuera
// de la fila (las filas de Sheets vienen recortadas a la última celda no vacía).
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// NumCell parsea la celda como decimal; 0 si está vacía o no parsea.
func NumCell(row []string, i int) decimal.Decimal {
	s := Cell(row, i)
	if s == "" {
		return decimal.Zero
	}
	// Tolerar separador decimal con coma, común en hojas en español.
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// IntCell parsea la celda como entero; trunca decimales; 0 si no parsea.
func IntCell(row []string, i int) int {
	s := Cell(row, i)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return int(NumCell(row, i).IntPart())
}

// sameKey compara llaves de fila: trim + case-insensitive.
func sameKey(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// findRow busca la primera fila de datos (saltando encabezados) cuya celda en
// col coincide con key. Devuelve el índice dentro de rows o -1.
func findRow(rows [][]string, col int, key string) int {
	for i := 1; i < len(rows); i++ {
		if sameKey(Cell(rows[i], col), key) {
			return i
		}
	}
	return -1
}
