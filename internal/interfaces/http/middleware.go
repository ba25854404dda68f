package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jpcarreon/ventastock/pkg/logger"
)

// LocalRequestID clave del id de petición en c.Locals.
const LocalRequestID = "request_id"

// RequestID asigna un id único a cada petición y lo devuelve en X-Request-Id.
// Si el cliente ya trae uno, se respeta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals(LocalRequestID, id)
		c.Set("X-Request-Id", id)
		return c.Next()
	}
}

// AccessLog registra cada petición con método, ruta, estado y duración.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= 500 {
			ev = log.Error()
		}
		rid, _ := c.Locals(LocalRequestID).(string)
		ev.
			Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
