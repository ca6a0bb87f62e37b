package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/agentes-ledger/internal/application/catalog"
	"github.com/tu-usuario/agentes-ledger/internal/application/dto"
)

// AuthHandler maneja el login por secreto compartido.
type AuthHandler struct {
	catalog *catalog.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(cat *catalog.UseCase) *AuthHandler {
	return &AuthHandler{catalog: cat}
}

// Login valida el secreto y, si llega session_id, vincula la sesión al agente.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.catalog.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
