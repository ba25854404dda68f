package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jpcarreon/ventastock/internal/application/dto"
	"github.com/jpcarreon/ventastock/internal/application/usecase"
)

// ClienteHandler maneja las peticiones HTTP para clientes.
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Success      200  {object}  dto.ClientesListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al cargar los clientes")
	}
	noStore(c)
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClienteRequest  true  "Datos del cliente"
// @Success      200   {object}  dto.ClienteCreadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "Error al guardar el cliente")
	}
	return c.JSON(out)
}

// Exists godoc
// @Summary      Verificar existencia de un cliente
// @Tags         clientes
// @Produce      json
// @Param        id  path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ExistsResponse
// @Router       /api/clientes/{id} [get]
func (h *ClienteHandler) Exists(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.JSON(dto.ExistsResponse{Exists: false})
	}
	return c.JSON(dto.ExistsResponse{Exists: h.uc.Exists(c.UserContext(), id)})
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.ClienteRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID es obligatorio"})
	}
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         clientes
// @Produce      json
// @Param        id  path  string  true  "ID del cliente"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID es obligatorio"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
