package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jpcarreon/ventastock/internal/application/auth"
	"github.com/jpcarreon/ventastock/internal/application/inventory"
	"github.com/jpcarreon/ventastock/internal/application/usecase"
	infrapdf "github.com/jpcarreon/ventastock/internal/infrastructure/pdf"
	"github.com/jpcarreon/ventastock/internal/infrastructure/sheets"
	httpx "github.com/jpcarreon/ventastock/internal/interfaces/http"
	"github.com/jpcarreon/ventastock/pkg/config"
	"github.com/jpcarreon/ventastock/pkg/logger"
)

// ─── armado del app de prueba ───────────────────────────────────────────────

// appDePrueba monta el router completo sobre un almacén en memoria con datos
// de ejemplo. authUC nil = API abierta.
func appDePrueba(t *testing.T, authUC *auth.UseCase) *fiber.App {
	t.Helper()
	store := sheets.NewMemoryStore(map[string][][]string{
		"articulos": {
			{"codbarra", "id", "nombre", "descripcion", "precio", "stock"},
			{"779123", "A1", "Tornillo", "caja x100", "12.5", "10"},
			{"", "A2", "Tuerca", "", "3.75", "1"},
		},
		"ventas": {
			{"idventa", "fecha", "cliente", "idarticulo", "nombre", "cantidad", "precioUnitario", "total"},
			{"1", "2026-08-01", "Juan", "A1", "Tornillo", "2", "12.5", "25"},
		},
		"compras": {
			{"idcompra", "fecha", "proveedor", "idarticulo", "articulo", "cantidad", "precio"},
		},
		"clientes": {
			{"idcliente", "nombre", "telefono", "email", "direccion", "fechaCreacion"},
			{"1", "Juan", "555-1234", "", "", "2025-01-15"},
		},
		"proveedores": {
			{"idproveedor", "nombre", "telefono", "email", "direccion", "contacto"},
		},
	})
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	articuloRepo := sheets.NewArticuloRepository(store)
	stockUC := inventory.NewStockUseCase(articuloRepo, log)

	app := fiber.New()
	httpx.Router(app, httpx.RouterDeps{
		ArticuloUC:  usecase.NewArticuloUseCase(articuloRepo),
		VentaUC:     usecase.NewVentaUseCase(sheets.NewVentaRepository(store), stockUC, log),
		CompraUC:    usecase.NewCompraUseCase(sheets.NewCompraRepository(store), stockUC, log),
		ClienteUC:   usecase.NewClienteUseCase(sheets.NewClienteRepository(store)),
		ProveedorUC: usecase.NewProveedorUseCase(sheets.NewProveedorRepository(store)),
		AuthUC:      authUC,
		Ticket:      infrapdf.NewTicketGenerator("VentaStock Test"),
	})
	return app
}

func authDePrueba(t *testing.T) *auth.UseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewUseCase(
		config.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "ventastock"},
		config.AdminConfig{User: "admin", PasswordHash: string(hash)},
	)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, headers map[string]string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ─── artículos ──────────────────────────────────────────────────────────────

func TestListarArticulos_EnvuelveYDeshabilitaCache(t *testing.T) {
	app := appDePrueba(t, nil)

	resp := doJSON(t, app, fiber.MethodGet, "/api/articulos", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-store, no-cache, must-revalidate", resp.Header.Get(fiber.HeaderCacheControl))

	var out struct {
		Articulos []map[string]interface{} `json:"articulos"`
	}
	decodeJSON(t, resp, &out)
	require.Len(t, out.Articulos, 2)
	assert.Equal(t, "A1", out.Articulos[0]["idarticulo"])
}

func TestCrearArticulo_DevuelveSuccessYArticulo(t *testing.T) {
	app := appDePrueba(t, nil)

	resp := doJSON(t, app, fiber.MethodPost, "/api/articulos", map[string]interface{}{
		"id":     "A3",
		"nombre": "Clavo",
		"precio": 2,
		"stock":  100,
	}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Success  bool                   `json:"success"`
		Articulo map[string]interface{} `json:"articulo"`
	}
	decodeJSON(t, resp, &out)
	assert.True(t, out.Success)
	assert.Equal(t, "A3", out.Articulo["idarticulo"])
}

func TestCrearArticulo_CodbarraDuplicado(t *testing.T) {
	app := appDePrueba(t, nil)

	resp := doJSON(t, app, fiber.MethodPost, "/api/articulos", map[string]interface{}{
		"codbarra": "779123",
		"id":       "A9",
		"nombre":   "Copia",
	}, nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out struct {
		Error string `json:"error"`
	}
	decodeJSON(t, resp, &out)
	assert.Equal(t, "Ya existe un artículo con ese código de barras", out.Error)
}

func TestExisteArticulo_SiempreResponde200(t *testing.T) {
	app := appDePrueba(t, nil)

	var out struct {
		Exists bool `json:"exists"`
	}

	resp := doJSON(t, app, fiber.MethodGet, "/api/articulos/A1", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &out)
	assert.True(t, out.Exists)

	resp = doJSON(t, app, fiber.MethodGet, "/api/articulos/ZZ", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &out)
	assert.False(t, out.Exists)
}

func TestBuscarArticulo_ContratoDeRespuesta(t *testing.T) {
	app := appDePrueba(t, nil)

	resp := doJSON(t, app, fiber.MethodGet, "/api/articulos/buscar", nil, nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var errOut struct {
		Error string `json:"error"`
	}
	decodeJSON(t, resp, &errOut)
	assert.Equal(t, "Debe proporcionar codbarra o id", errOut.Error)

	resp = doJSON(t, app, fiber.MethodGet, "/api/articulos/buscar?codbarra=779123", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var hit struct {
		Articulo map[string]interface{} `json:"articulo"`
	}
	decodeJSON(t, resp, &hit)
	require.NotNil(t, hit.Articulo)
	assert.Equal(t, "A1", hit.Articulo["id"])
	assert.Equal(t, "A1", hit.Articulo["idarticulo"])

	// Sin coincidencia: 200 con articulo null, no 404.
	resp = doJSON(t, app, fiber.MethodGet, "/api/articulos/buscar?id=no-existe", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var miss struct {
		Articulo *map[string]interface{} `json:"articulo"`
	}
	decodeJSON(t, resp, &miss)
	assert.Nil(t, miss.Articulo)
}

func TestCheckCodbarra_ExcluirID(t *testing.T) {
	app := appDePrueba(t, nil)

	var out struct {
		Exists bool `json:"exists"`
	}

	resp := doJSON(t, app, fiber.MethodGet, "/api/articulos/check-codbarra?codbarra=779123", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &out)
	assert.True(t, out.Exists)

	resp = doJSON(t, app, fiber.MethodGet, "/api/articulos/check-codbarra?codbarra=779123&excluirId=A1", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &out)
	assert.False(t, out.Exists, "el propio artículo no cuenta en modo edición")
}

// ─── ventas ─────────────────────────────────────────────────────────────────

func TestCrearVenta_StockInsuficiente(t *testing.T) {
	app := appDePrueba(t, nil)

	resp := doJSON(t, app, fiber.MethodPost, "/api/ventas", map[string]interface{}{
		"fecha": "2026-08-31",
		"articulos": []map[string]interface{}{
			{"idarticulo": "A2", "nombre": "Tuerca", "cantidad": 5, "total": 18.75},
		},
	}, nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out struct {
		Error string `json:"error"`
	}
	decodeJSON(t, resp, &out)
	assert.Contains(t, out.Error, "stock insuficiente")
}

func TestActualizarVenta_Inexistente(t *testing.T) {
	app := appDePrueba(t, nil)

	resp := doJSON(t, app, fiber.MethodPut, "/api/ventas/99", map[string]interface{}{
		"articulos": []map[string]interface{}{},
	}, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var out struct {
		Error string `json:"error"`
	}
	decodeJSON(t, resp, &out)
	assert.Equal(t, "Venta no encontrada", out.Error)
}

func TestTicketDeVenta_DevuelvePDF(t *testing.T) {
	app := appDePrueba(t, nil)

	resp := doJSON(t, app, fiber.MethodGet, "/api/ventas/1/ticket", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "ticket-1.pdf")

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, len(raw) > 4)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

// ─── autenticación ──────────────────────────────────────────────────────────

func TestEscrituras_SinTokenDevuelven401(t *testing.T) {
	app := appDePrueba(t, authDePrueba(t))

	resp := doJSON(t, app, fiber.MethodPost, "/api/articulos", map[string]interface{}{
		"id": "A3", "nombre": "Clavo",
	}, nil)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var out struct {
		Error string `json:"error"`
	}
	decodeJSON(t, resp, &out)
	assert.Equal(t, "Authorization header requerido", out.Error)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/ventas/1", nil, map[string]string{
		"Authorization": "Token abc",
	})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	decodeJSON(t, resp, &out)
	assert.Equal(t, "Formato esperado: Bearer <token>", out.Error)
}

func TestLecturas_SiguenSiendoPublicasConAuth(t *testing.T) {
	app := appDePrueba(t, authDePrueba(t))

	resp := doJSON(t, app, fiber.MethodGet, "/api/articulos", nil, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLogin_FlujoCompleto(t *testing.T) {
	app := appDePrueba(t, authDePrueba(t))

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login", map[string]string{
		"usuario": "admin", "password": "mala",
	}, nil)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	var errOut struct {
		Error string `json:"error"`
	}
	decodeJSON(t, resp, &errOut)
	assert.Equal(t, "Credenciales inválidas", errOut.Error)

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/login", map[string]string{
		"usuario": "admin", "password": "secreta123",
	}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var login struct {
		Token string `json:"token"`
	}
	decodeJSON(t, resp, &login)
	require.NotEmpty(t, login.Token)

	resp = doJSON(t, app, fiber.MethodPost, "/api/articulos", map[string]interface{}{
		"id": "A3", "nombre": "Clavo",
	}, map[string]string{"Authorization": "Bearer " + login.Token})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAPIAbierta_SinSecretoNoHayLoginNiBloqueo(t *testing.T) {
	app := appDePrueba(t, nil)

	resp := doJSON(t, app, fiber.MethodPost, "/api/articulos", map[string]interface{}{
		"id": "A3", "nombre": "Clavo",
	}, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "sin JWT_SECRET las escrituras no exigen token")

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/login", map[string]string{
		"usuario": "admin", "password": "x",
	}, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "la ruta de login no se registra")
}
