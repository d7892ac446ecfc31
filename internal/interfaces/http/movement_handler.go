package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ariefstwn/hotelstock-api/internal/application/dto"
	"github.com/ariefstwn/hotelstock-api/internal/application/inventory"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos
// (protegido). Contabilizar, descartar, modificar y revertir mutan stock.
type MovementHandler struct {
	uc *inventory.LedgerUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.LedgerUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Post godoc
// @Summary      Contabilizar un movimiento (IN u OUT)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostMovementRequest  true  "Documento a contabilizar"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Post(c *fiber.Ctx) error {
	var in dto.PostMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Post(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Discard godoc
// @Summary      Descartar un movimiento y revertir su efecto de stock
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/discard [post]
func (h *MovementHandler) Discard(c *fiber.Ctx) error {
	out, err := h.uc.Discard(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Modify godoc
// @Summary      Modificar un movimiento contabilizado
// @Description  Reversa el efecto vigente, aplica los campos nuevos y vuelve a contabilizar.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del documento"
// @Param        body  body  dto.ModifyMovementRequest  true  "Campos nuevos"
// @Success      200   {object}  dto.MovementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *MovementHandler) Modify(c *fiber.Ctx) error {
	var in dto.ModifyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Modify(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Revert godoc
// @Summary      Revertir un movimiento a una versión anterior de su historial
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/revert [post]
func (h *MovementHandler) Revert(c *fiber.Ctx) error {
	out, err := h.uc.Revert(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento con su historial
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar un libro de movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        direction  query  string  false  "IN | OUT (vacío: ambos)"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("direction"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
