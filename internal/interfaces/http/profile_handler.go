package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/proposal-pro/internal/application/dto"
	"github.com/tu-usuario/proposal-pro/internal/application/proposal"
)

// ProfileHandler maneja el perfil del negocio (protegido).
type ProfileHandler struct {
	uc *proposal.UseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(uc *proposal.UseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Get devuelve el perfil actual (campos vacíos si nunca se guardó).
// GET /api/business-profile
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Save guarda (upsert) el perfil del negocio.
// PUT /api/business-profile
func (h *ProfileHandler) Save(c *fiber.Ctx) error {
	var in dto.BusinessProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SaveProfile(in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
