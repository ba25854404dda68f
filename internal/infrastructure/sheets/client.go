package sheets

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	oauthjwt "golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/jpcarreon/ventastock/pkg/config"
)

// Client implementación de TabStore sobre la API de Google Sheets v4 con
// autenticación de cuenta de servicio. Se inyecta explícitamente en los
// repositorios; no hay estado global.
type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
}

var _ TabStore = (*Client)(nil)

// NewClient construye el cliente autenticado. Credenciales ausentes son un
// error fatal de configuración.
func NewClient(ctx context.Context, cfg config.SheetsConfig) (*Client, error) {
	if !cfg.HasCredentials() {
		return nil, fmt.Errorf("faltan credenciales de Google: configura GOOGLE_SERVICE_ACCOUNT_EMAIL y GOOGLE_PRIVATE_KEY")
	}
	conf := &oauthjwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{gsheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}
	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("sheets: crear servicio: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: cfg.ResolveSpreadsheetID()}, nil
}

// rangeAll rango A:Z de la pestaña completa, con el título entre comillas.
func rangeAll(tab string) string {
	return fmt.Sprintf("'%s'!A:Z", tab)
}

// ReadAll lee la rejilla completa de la pestaña (valores formateados).
func (c *Client) ReadAll(ctx context.Context, tab string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rangeAll(tab)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: leer %s: %w", tab, err)
	}
	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, v := range raw {
			if s, ok := v.(string); ok {
				row[j] = s
			} else {
				row[j] = fmt.Sprint(v)
			}
		}
		rows[i] = row
	}
	return rows, nil
}

// Append agrega filas al final de la pestaña.
func (c *Client) Append(ctx context.Context, tab string, rows [][]interface{}) error {
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rangeAll(tab), &gsheets.ValueRange{
		Values: rows,
	}).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: insertar en %s: %w", tab, err)
	}
	return nil
}

// UpdateRow sobrescribe la fila rowIdx (0 = encabezados) desde la columna A.
func (c *Client) UpdateRow(ctx context.Context, tab string, rowIdx int, row []interface{}) error {
	rng := fmt.Sprintf("'%s'!A%d", tab, rowIdx+1)
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, &gsheets.ValueRange{
		Values: [][]interface{}{row},
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: actualizar fila en %s: %w", tab, err)
	}
	return nil
}

// UpdateCells escribe celdas puntuales en un solo batchUpdate.
func (c *Client) UpdateCells(ctx context.Context, tab string, updates []CellUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	data := make([]*gsheets.ValueRange, 0, len(updates))
	for _, u := range updates {
		data = append(data, &gsheets.ValueRange{
			Range:  fmt.Sprintf("'%s'!%s%d", tab, colLetter(u.Col), u.Row+1),
			Values: [][]interface{}{{u.Value}},
		})
	}
	_, err := c.svc.Spreadsheets.Values.BatchUpdate(c.spreadsheetID, &gsheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: actualizar celdas en %s: %w", tab, err)
	}
	return nil
}

// DeleteRow elimina físicamente la fila rowIdx; las filas siguientes suben una
// posición. La API no ofrece borrado por llave, solo posicional.
func (c *Client) DeleteRow(ctx context.Context, tab string, rowIdx int) error {
	sheetID, err := c.sheetID(ctx, tab)
	if err != nil {
		return err
	}
	_, err = c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			DeleteDimension: &gsheets.DeleteDimensionRequest{
				Range: &gsheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowIdx),
					EndIndex:   int64(rowIdx + 1),
				},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: eliminar fila en %s: %w", tab, err)
	}
	return nil
}

// sheetID resuelve el id interno de la pestaña por título (case-insensitive).
func (c *Client) sheetID(ctx context.Context, tab string) (int64, error) {
	doc, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("sheets: obtener documento: %w", err)
	}
	for _, s := range doc.Sheets {
		if s.Properties != nil && strings.EqualFold(s.Properties.Title, tab) {
			return s.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("sheets: no se encontró la hoja %s", tab)
}

// colLetter índice de columna 0-based a letra de hoja (A, B, ..., AA, AB...).
func colLetter(n int) string {
	if n < 26 {
		return string(rune('A' + n))
	}
	return colLetter(n/26-1) + string(rune('A'+n%26))
}
