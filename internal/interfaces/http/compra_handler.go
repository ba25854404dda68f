package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jpcarreon/ventastock/internal/application/dto"
	"github.com/jpcarreon/ventastock/internal/application/usecase"
)

// CompraHandler maneja las peticiones HTTP para compras.
type CompraHandler struct {
	uc *usecase.CompraUseCase
}

// NewCompraHandler construye el handler.
func NewCompraHandler(uc *usecase.CompraUseCase) *CompraHandler {
	return &CompraHandler{uc: uc}
}

// List godoc
// @Summary      Listar compras
// @Tags         compras
// @Produce      json
// @Success      200  {object}  dto.ComprasListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/compras [get]
func (h *CompraHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al cargar las compras")
	}
	noStore(c)
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar compra
// @Tags         compras
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompraRequest  true  "Datos de la compra"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/compras [post]
func (h *CompraHandler) Create(c *fiber.Ctx) error {
	var in dto.CompraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	if err := h.uc.Create(c.UserContext(), in); err != nil {
		return respondError(c, err, "Error al guardar la compra")
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Update godoc
// @Summary      Actualizar compra
// @Tags         compras
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la compra"
// @Param        body  body  dto.CompraRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/compras/{id} [put]
func (h *CompraHandler) Update(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID de compra es obligatorio"})
	}
	var in dto.CompraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Delete godoc
// @Summary      Eliminar compra
// @Tags         compras
// @Produce      json
// @Param        id  path  string  true  "ID de la compra"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/{id} [delete]
func (h *CompraHandler) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID de compra es obligatorio"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
