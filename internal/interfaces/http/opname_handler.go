package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ariefstwn/hotelstock-api/internal/application/dto"
	"github.com/ariefstwn/hotelstock-api/internal/application/opname"
)

// OpnameHandler maneja las peticiones HTTP de sesiones de opname (protegido).
type OpnameHandler struct {
	uc *opname.UseCase
}

// NewOpnameHandler construye el handler.
func NewOpnameHandler(uc *opname.UseCase) *OpnameHandler {
	return &OpnameHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir sesión de opname
// @Tags         opname
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOpnameRequest  true  "Nombre + cobertura"
// @Success      201   {object}  dto.OpnameSessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/opname [post]
func (h *OpnameHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOpnameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetName(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar sesiones de opname
// @Tags         opname
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OpnameListResponse
// @Router       /api/opname [get]
func (h *OpnameHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener sesión con sus líneas
// @Description  El detalle de una sesión IN_PROGRESS solo lo ve quien la creó.
// @Tags         opname
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.OpnameSessionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/opname/{id} [get]
func (h *OpnameHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"), GetName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateLine godoc
// @Summary      Registrar conteo de una línea
// @Tags         opname
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID de la sesión"
// @Param        lineId  path  string  true  "ID de la línea"
// @Param        body    body  dto.UpdateOpnameLineRequest  true  "Conteo / notas"
// @Success      200     {object}  dto.OpnameLineResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/opname/{id}/lines/{lineId} [put]
func (h *OpnameHandler) UpdateLine(c *fiber.Ctx) error {
	var in dto.UpdateOpnameLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateLine(c.UserContext(), c.Params("id"), c.Params("lineId"), GetName(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Enviar sesión a aprobación
// @Tags         opname
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.OpnameSessionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/opname/{id}/submit [post]
func (h *OpnameHandler) Submit(c *fiber.Ctx) error {
	out, err := h.uc.Submit(c.UserContext(), c.Params("id"), GetName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar sesión y contabilizar los ajustes de variancia
// @Description  Requiere rol Operational Manager. Genera a lo sumo un documento IN y uno OUT de ajuste por opname.
// @Tags         opname
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.OpnameSessionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/opname/{id}/approve [post]
func (h *OpnameHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.UserContext(), c.Params("id"), GetName(c), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
