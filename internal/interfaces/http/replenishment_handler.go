package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ariefstwn/hotelstock-api/internal/application/dto"
	"github.com/ariefstwn/hotelstock-api/internal/application/replenishment"
)

// ReplenishmentHandler maneja las peticiones HTTP de solicitudes de
// reposición (protegido).
type ReplenishmentHandler struct {
	uc *replenishment.UseCase
}

// NewReplenishmentHandler construye el handler.
func NewReplenishmentHandler(uc *replenishment.UseCase) *ReplenishmentHandler {
	return &ReplenishmentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear borrador de solicitud de reposición
// @Description  from_alerts siembra líneas con la cantidad sugerida de la alerta como solicitada.
// @Tags         replenishment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReplenishmentRequest  true  "Líneas y/o selecciones de alertas"
// @Success      201   {object}  dto.ReplenishmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/replenishment [post]
func (h *ReplenishmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReplenishmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetName(c), GetRole(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar borrador o solicitud rechazada
// @Tags         replenishment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.UpdateReplenishmentRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ReplenishmentResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/replenishment/{id} [put]
func (h *ReplenishmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReplenishmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), GetName(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Enviar solicitud a revisión
// @Description  Un reenvío tras rechazo vuelve toda la cadena a PENDING.
// @Tags         replenishment
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.ReplenishmentResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/replenishment/{id}/submit [post]
func (h *ReplenishmentHandler) Submit(c *fiber.Ctx) error {
	out, err := h.uc.Submit(c.UserContext(), c.Params("id"), GetName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar como aprobador en turno
// @Tags         replenishment
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.ReplenishmentResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/replenishment/{id}/approve [post]
func (h *ReplenishmentHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.UserContext(), c.Params("id"), GetName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar como aprobador en turno
// @Tags         replenishment
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.ReplenishmentResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/replenishment/{id}/reject [post]
func (h *ReplenishmentHandler) Reject(c *fiber.Ctx) error {
	out, err := h.uc.Reject(c.UserContext(), c.Params("id"), GetName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar borrador
// @Tags         replenishment
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/replenishment/{id} [delete]
func (h *ReplenishmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), GetName(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "solicitud eliminada"})
}

// GetByID godoc
// @Summary      Obtener solicitud
// @Tags         replenishment
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.ReplenishmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/replenishment/{id} [get]
func (h *ReplenishmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar solicitudes
// @Tags         replenishment
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReplenishmentListResponse
// @Router       /api/replenishment [get]
func (h *ReplenishmentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar impreso PDF de la solicitud
// @Tags         replenishment
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/replenishment/{id}/pdf [get]
func (h *ReplenishmentHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DownloadRequestPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
