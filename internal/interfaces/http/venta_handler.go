package http

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jpcarreon/ventastock/internal/application/dto"
	"github.com/jpcarreon/ventastock/internal/application/usecase"
	"github.com/jpcarreon/ventastock/internal/domain/entity"
)

// TicketGenerator genera el PDF del ticket de una venta.
type TicketGenerator interface {
	GenerateTicket(ctx context.Context, venta *entity.Venta) ([]byte, error)
}

// VentaHandler maneja las peticiones HTTP para ventas.
type VentaHandler struct {
	uc     *usecase.VentaUseCase
	ticket TicketGenerator
}

// NewVentaHandler construye el handler; ticket puede ser nil si no se sirve PDF.
func NewVentaHandler(uc *usecase.VentaUseCase, ticket TicketGenerator) *VentaHandler {
	return &VentaHandler{uc: uc, ticket: ticket}
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Produce      json
// @Success      200  {object}  dto.VentasListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al cargar las ventas")
	}
	noStore(c)
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar venta
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VentaRequest  true  "Datos de la venta"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.VentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	if err := h.uc.Create(c.UserContext(), in); err != nil {
		return respondError(c, err, "Error al guardar la venta")
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Update godoc
// @Summary      Actualizar venta
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.VentaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [put]
func (h *VentaHandler) Update(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID de venta es obligatorio"})
	}
	var in dto.VentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Delete godoc
// @Summary      Eliminar venta
// @Tags         ventas
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [delete]
func (h *VentaHandler) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID de venta es obligatorio"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Ticket godoc
// @Summary      Ticket PDF de una venta
// @Tags         ventas
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/ticket [get]
func (h *VentaHandler) Ticket(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID de venta es obligatorio"})
	}
	venta, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "")
	}
	pdfBytes, err := h.ticket.GenerateTicket(c.UserContext(), venta)
	if err != nil {
		return respondError(c, err, "Error al generar el ticket")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=ticket-%s.pdf", id))
	return c.Send(pdfBytes)
}
