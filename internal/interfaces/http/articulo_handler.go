package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jpcarreon/ventastock/internal/application/dto"
	"github.com/jpcarreon/ventastock/internal/application/usecase"
)

// ArticuloHandler maneja las peticiones HTTP para artículos.
type ArticuloHandler struct {
	uc *usecase.ArticuloUseCase
}

// NewArticuloHandler construye el handler.
func NewArticuloHandler(uc *usecase.ArticuloUseCase) *ArticuloHandler {
	return &ArticuloHandler{uc: uc}
}

// List godoc
// @Summary      Listar artículos
// @Tags         articulos
// @Produce      json
// @Success      200  {object}  dto.ArticulosListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/articulos [get]
func (h *ArticuloHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al cargar los artículos")
	}
	noStore(c)
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear artículo
// @Tags         articulos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ArticuloRequest  true  "Datos del artículo"
// @Success      200   {object}  dto.ArticuloCreadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/articulos [post]
func (h *ArticuloHandler) Create(c *fiber.Ctx) error {
	var in dto.ArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "Error al guardar el artículo")
	}
	return c.JSON(out)
}

// Exists godoc
// @Summary      Verificar existencia de un artículo
// @Tags         articulos
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ExistsResponse
// @Router       /api/articulos/{id} [get]
func (h *ArticuloHandler) Exists(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.JSON(dto.ExistsResponse{Exists: false})
	}
	return c.JSON(dto.ExistsResponse{Exists: h.uc.Exists(c.UserContext(), id)})
}

// Update godoc
// @Summary      Actualizar artículo
// @Tags         articulos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.ArticuloRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/articulos/{id} [put]
func (h *ArticuloHandler) Update(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID es obligatorio"})
	}
	var in dto.ArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Delete godoc
// @Summary      Eliminar artículo
// @Tags         articulos
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articulos/{id} [delete]
func (h *ArticuloHandler) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID es obligatorio"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Buscar godoc
// @Summary      Buscar artículo por código de barras o id
// @Tags         articulos
// @Produce      json
// @Param        codbarra  query  string  false  "Código de barras"
// @Param        id        query  string  false  "ID del artículo"
// @Success      200  {object}  dto.BusquedaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/articulos/buscar [get]
func (h *ArticuloHandler) Buscar(c *fiber.Ctx) error {
	out, err := h.uc.Buscar(c.UserContext(), c.Query("codbarra"), c.Query("id"))
	if err != nil {
		return respondError(c, err, "Error al buscar el artículo")
	}
	return c.JSON(out)
}

// CheckCodbarra godoc
// @Summary      Verificar código de barras en uso
// @Tags         articulos
// @Produce      json
// @Param        codbarra   query  string  true   "Código de barras"
// @Param        excluirId  query  string  false  "ID a excluir (modo edición)"
// @Success      200  {object}  dto.ExistsResponse
// @Router       /api/articulos/check-codbarra [get]
func (h *ArticuloHandler) CheckCodbarra(c *fiber.Ctx) error {
	codbarra := strings.TrimSpace(c.Query("codbarra"))
	if codbarra == "" {
		return c.JSON(dto.ExistsResponse{Exists: false})
	}
	excluirID := strings.TrimSpace(c.Query("excluirId"))
	return c.JSON(dto.ExistsResponse{Exists: h.uc.ExistsCodbarra(c.UserContext(), codbarra, excluirID)})
}
