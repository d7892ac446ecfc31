package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ariefstwn/hotelstock-api/internal/application/dto"
	"github.com/ariefstwn/hotelstock-api/internal/domain"
)

// respondError traduce errores de dominio a HTTP. Los sentinelas mapean por
// familia: validación 400, credenciales 401, permiso 403, ausencia 404,
// precondición de estado 409; lo demás es 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrNotRequestor),
		errors.Is(err, domain.ErrNotCurrentApprover):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrMovementDiscarded),
		errors.Is(err, domain.ErrNoPreviousVersion),
		errors.Is(err, domain.ErrAlreadySubmitted),
		errors.Is(err, domain.ErrOnlyDraftDeletable),
		errors.Is(err, domain.ErrWrongState):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNoLines),
		errors.Is(err, domain.ErrAttachmentRequired),
		errors.Is(err, domain.ErrPONumberRequired),
		errors.Is(err, domain.ErrAdjustmentNote):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
