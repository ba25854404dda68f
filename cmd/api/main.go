package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jpcarreon/ventastock/internal/application/auth"
	"github.com/jpcarreon/ventastock/internal/application/inventory"
	"github.com/jpcarreon/ventastock/internal/application/usecase"
	infrapdf "github.com/jpcarreon/ventastock/internal/infrastructure/pdf"
	"github.com/jpcarreon/ventastock/internal/infrastructure/sheets"
	httpRouter "github.com/jpcarreon/ventastock/internal/interfaces/http"
	"github.com/jpcarreon/ventastock/pkg/config"
	"github.com/jpcarreon/ventastock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := sheets.NewClient(ctx, cfg.Sheets)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente de Google Sheets")
	}

	articuloRepo := sheets.NewArticuloRepository(store)
	ventaRepo := sheets.NewVentaRepository(store)
	compraRepo := sheets.NewCompraRepository(store)
	clienteRepo := sheets.NewClienteRepository(store)
	proveedorRepo := sheets.NewProveedorRepository(store)

	stockUC := inventory.NewStockUseCase(articuloRepo, log)
	articuloUC := usecase.NewArticuloUseCase(articuloRepo)
	ventaUC := usecase.NewVentaUseCase(ventaRepo, stockUC, log)
	compraUC := usecase.NewCompraUseCase(compraRepo, stockUC, log)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)

	// Auth solo si hay secreto configurado; sin él la API corre abierta.
	var authUC *auth.UseCase
	if cfg.JWT.Secret != "" {
		authUC = auth.NewUseCase(cfg.JWT, cfg.Admin)
		log.Info().Msg("autenticación habilitada para escrituras")
	} else {
		log.Warn().Msg("JWT_SECRET no configurado, la API corre sin autenticación")
	}

	ticketGen := infrapdf.NewTicketGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.AccessLog(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "VentaStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ArticuloUC:  articuloUC,
		VentaUC:     ventaUC,
		CompraUC:    compraUC,
		ClienteUC:   clienteUC,
		ProveedorUC: proveedorUC,
		AuthUC:      authUC,
		Ticket:      ticketGen,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
