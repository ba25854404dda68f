package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jpcarreon/ventastock/internal/application/dto"
	"github.com/jpcarreon/ventastock/internal/application/usecase"
)

// ProveedorHandler maneja las peticiones HTTP para proveedores.
type ProveedorHandler struct {
	uc *usecase.ProveedorUseCase
}

// NewProveedorHandler construye el handler.
func NewProveedorHandler(uc *usecase.ProveedorUseCase) *ProveedorHandler {
	return &ProveedorHandler{uc: uc}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         proveedores
// @Produce      json
// @Success      200  {object}  dto.ProveedoresListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/proveedores [get]
func (h *ProveedorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al cargar los proveedores")
	}
	noStore(c)
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProveedorRequest  true  "Datos del proveedor"
// @Success      200   {object}  dto.ProveedorCreadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/proveedores [post]
func (h *ProveedorHandler) Create(c *fiber.Ctx) error {
	var in dto.ProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "Error al guardar el proveedor")
	}
	return c.JSON(out)
}

// Exists godoc
// @Summary      Verificar existencia de un proveedor
// @Tags         proveedores
// @Produce      json
// @Param        id  path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.ExistsResponse
// @Router       /api/proveedores/{id} [get]
func (h *ProveedorHandler) Exists(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.JSON(dto.ExistsResponse{Exists: false})
	}
	return c.JSON(dto.ExistsResponse{Exists: h.uc.Exists(c.UserContext(), id)})
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.ProveedorRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [put]
func (h *ProveedorHandler) Update(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID es obligatorio"})
	}
	var in dto.ProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Delete godoc
// @Summary      Eliminar proveedor
// @Tags         proveedores
// @Produce      json
// @Param        id  path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [delete]
func (h *ProveedorHandler) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID es obligatorio"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
