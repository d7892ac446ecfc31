package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ariefstwn/hotelstock-api/internal/application/dto"
	"github.com/ariefstwn/hotelstock-api/internal/application/usecase"
	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
)

// ItemHandler maneja las peticiones HTTP del catálogo (protegido).
// El catálogo son dos colecciones disjuntas, así que toda operación por id
// lleva además el query param type=ROOM|LAUNDRY.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// itemTypeQuery valida el query param type; requerido para operar por id.
func itemTypeQuery(c *fiber.Ctx) (string, bool) {
	t := c.Query("type")
	if t != entity.ItemTypeRoom && t != entity.ItemTypeLaundry {
		return "", false
	}
	return t, true
}

// Create godoc
// @Summary      Crear ítem del catálogo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del ítem"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener ítem por ID
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true  "ID del ítem"
// @Param        type  query  string  true  "ROOM | LAUNDRY"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	itemType, ok := itemTypeQuery(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser ROOM o LAUNDRY"})
	}
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"), itemType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar catálogo
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        type  query  string  false  "ROOM | LAUNDRY (vacío: ambos)"
// @Success      200   {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ítem
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path   string  true  "ID del ítem"
// @Param        type  query  string  true  "ROOM | LAUNDRY"
// @Param        body  body   dto.UpdateItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	itemType, ok := itemTypeQuery(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser ROOM o LAUNDRY"})
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), itemType, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Archive godoc
// @Summary      Archivar ítem
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true  "ID del ítem"
// @Param        type  query  string  true  "ROOM | LAUNDRY"
// @Success      200   {object}  dto.ItemResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/archive [post]
func (h *ItemHandler) Archive(c *fiber.Ctx) error {
	itemType, ok := itemTypeQuery(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser ROOM o LAUNDRY"})
	}
	out, err := h.uc.Archive(c.UserContext(), c.Params("id"), itemType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
