package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpcarreon/ventastock/internal/application/auth"
	"github.com/jpcarreon/ventastock/internal/application/dto"
)

// AuthHandler maneja el login del administrador.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Autenticar administrador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	token, err := h.uc.Login(in.Usuario, in.Password)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(dto.LoginResponse{Token: token})
}
