package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpcarreon/ventastock/internal/application/auth"
	"github.com/jpcarreon/ventastock/internal/application/usecase"
)

// RouterDeps dependencias para el router. AuthUC nil = API abierta: las
// escrituras no exigen token (despliegues de red local sin JWT_SECRET).
type RouterDeps struct {
	ArticuloUC  *usecase.ArticuloUseCase
	VentaUC     *usecase.VentaUseCase
	CompraUC    *usecase.CompraUseCase
	ClienteUC   *usecase.ClienteUseCase
	ProveedorUC *usecase.ProveedorUseCase
	AuthUC      *auth.UseCase
	Ticket      TicketGenerator
}

// Router registra las rutas de la API. Las lecturas son públicas; las
// escrituras se protegen con Bearer Token solo cuando hay auth configurada.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	escritura := func(c *fiber.Ctx) error { return c.Next() }
	if deps.AuthUC != nil {
		escritura = AuthMiddleware(deps.AuthUC)

		authHandler := NewAuthHandler(deps.AuthUC)
		api.Post("/auth/login", authHandler.Login)
	}

	// Articulos. Las rutas fijas van antes que /:id para que "buscar" y
	// "check-codbarra" no se capturen como ids.
	articulos := api.Group("/articulos")
	articuloHandler := NewArticuloHandler(deps.ArticuloUC)
	articulos.Get("/buscar", articuloHandler.Buscar)
	articulos.Get("/check-codbarra", articuloHandler.CheckCodbarra)
	articulos.Get("/", articuloHandler.List)
	articulos.Post("/", escritura, articuloHandler.Create)
	articulos.Get("/:id", articuloHandler.Exists)
	articulos.Put("/:id", escritura, articuloHandler.Update)
	articulos.Delete("/:id", escritura, articuloHandler.Delete)

	// Ventas
	ventas := api.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC, deps.Ticket)
	ventas.Get("/", ventaHandler.List)
	ventas.Post("/", escritura, ventaHandler.Create)
	ventas.Get("/:id/ticket", ventaHandler.Ticket)
	ventas.Put("/:id", escritura, ventaHandler.Update)
	ventas.Delete("/:id", escritura, ventaHandler.Delete)

	// Compras
	compras := api.Group("/compras")
	compraHandler := NewCompraHandler(deps.CompraUC)
	compras.Get("/", compraHandler.List)
	compras.Post("/", escritura, compraHandler.Create)
	compras.Put("/:id", escritura, compraHandler.Update)
	compras.Delete("/:id", escritura, compraHandler.Delete)

	// Clientes
	clientes := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Post("/", escritura, clienteHandler.Create)
	clientes.Get("/:id", clienteHandler.Exists)
	clientes.Put("/:id", escritura, clienteHandler.Update)
	clientes.Delete("/:id", escritura, clienteHandler.Delete)

	// Proveedores
	proveedores := api.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Post("/", escritura, proveedorHandler.Create)
	proveedores.Get("/:id", proveedorHandler.Exists)
	proveedores.Put("/:id", escritura, proveedorHandler.Update)
	proveedores.Delete("/:id", escritura, proveedorHandler.Delete)
}
