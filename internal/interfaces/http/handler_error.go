package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jpcarreon/ventastock/internal/application/dto"
	"github.com/jpcarreon/ventastock/internal/domain"
)

// respondError mapea los centinelas de dominio al código de estado y cuerpo
// {"error": msg}. Para errores no clasificados responde 500; si fallback no
// es vacío lo usa como mensaje en lugar del texto crudo del error.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Credenciales inválidas"})
	}
	msg := err.Error()
	if fallback != "" {
		msg = fallback
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msg})
}

// noStore deshabilita el caché del cliente en los listados: los datos deben
// leerse frescos de la hoja en cada consulta.
func noStore(c *fiber.Ctx) {
	c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate")
}
