package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ariefstwn/hotelstock-api/internal/application/auth"
	"github.com/ariefstwn/hotelstock-api/internal/application/dto"
)

// AuthHandler maneja las peticiones HTTP de autenticación.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Profiles godoc
// @Summary      Listar perfiles de la propiedad
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserProfile
// @Router       /api/auth/profiles [get]
func (h *AuthHandler) Profiles(c *fiber.Ctx) error {
	out, err := h.uc.Profiles()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
