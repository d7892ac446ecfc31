package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ariefstwn/hotelstock-api/internal/application/dto"
	"github.com/ariefstwn/hotelstock-api/internal/application/inventory"
)

// AlertHandler maneja las peticiones HTTP de alertas de stock (protegido).
// Todo es derivado del catálogo; no hay nada que mutar.
type AlertHandler struct {
	uc *inventory.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *inventory.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas de stock
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "below | critical (vacío: todas)"
// @Success      200  {object}  dto.StockAlertListResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	status := c.Query("status")
	if status != "" && status != dto.AlertStatusBelow && status != dto.AlertStatusCritical {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser below o critical"})
	}
	out, err := h.uc.List(c.UserContext(), status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Overview godoc
// @Summary      KPIs de procurement
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertOverviewResponse
// @Router       /api/alerts/overview [get]
func (h *AlertHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
