package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jpcarreon/ventastock/internal/application/auth"
	"github.com/jpcarreon/ventastock/internal/application/dto"
)

// LocalUser clave del usuario autenticado en c.Locals.
const LocalUser = "user"

// AuthMiddleware valida el Bearer Token y deja el usuario en c.Locals.
// Se monta solo cuando hay JWT_SECRET configurado.
func AuthMiddleware(authUC *auth.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Authorization header requerido"})
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Formato esperado: Bearer <token>"})
		}
		token := strings.TrimSpace(parts[1])
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Token vacío"})
		}
		user, err := authUC.Verify(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Token inválido o expirado"})
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// GetUser devuelve el usuario autenticado del contexto, o vacío.
func GetUser(c *fiber.Ctx) string {
	v := c.Locals(LocalUser)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
