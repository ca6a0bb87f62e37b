package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agentes-ledger/internal/application/balance"
	"github.com/tu-usuario/agentes-ledger/internal/application/catalog"
	"github.com/tu-usuario/agentes-ledger/internal/application/dto"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// AgentHandler maneja las peticiones HTTP de agentes y sus posiciones.
type AgentHandler struct {
	catalog *catalog.UseCase
	balance *balance.UseCase
	printer *message.Printer
}

// NewAgentHandler construye el handler.
func NewAgentHandler(cat *catalog.UseCase, bal *balance.UseCase) *AgentHandler {
	// Locale uzbeko: separador de miles por espacio, como espera el back office.
	return &AgentHandler{catalog: cat, balance: bal, printer: message.NewPrinter(language.Uzbek)}
}

// Create registra un nuevo agente.
func (h *AgentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAgentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.catalog.AddAgent(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista todos los agentes ordenados por (región, nombre).
func (h *AgentHandler) List(c *fiber.Ctx) error {
	out, err := h.balance.ListAgents(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByName obtiene un agente por nombre.
func (h *AgentHandler) GetByName(c *fiber.Ctx) error {
	out, err := h.balance.GetAgent(c.Context(), c.Params("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// BindSession vincula una sesión de chat al agente (una sola vez).
func (h *AgentHandler) BindSession(c *fiber.Ctx) error {
	var in dto.BindSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.catalog.BindAgentSession(c.Context(), c.Params("name"), in.SessionID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BySession resuelve el agente vinculado a una sesión de chat.
func (h *AgentHandler) BySession(c *fiber.Ctx) error {
	out, err := h.balance.FindAgentBySession(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Stock devuelve el inventario en manos del agente.
func (h *AgentHandler) Stock(c *fiber.Ctx) error {
	out, err := h.balance.StockPosition(c.Context(), c.Params("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Debt devuelve la posición monetaria del agente con el monto formateado.
func (h *AgentHandler) Debt(c *fiber.Ctx) error {
	out, err := h.balance.MonetaryPosition(c.Context(), c.Params("name"))
	if err != nil {
		return respondError(c, err)
	}
	out.Display = h.formatUZS(out.Debt, out.Credit)
	return c.JSON(out)
}

// formatUZS formatea el monto relevante directamente desde el decimal; los
// montos UZS son enteros en la práctica y así no hay paso por float.
func (h *AgentHandler) formatUZS(debt, credit decimal.Decimal) string {
	amount := debt
	if credit.IsPositive() {
		amount = credit
	}
	return h.printer.Sprintf("%d UZS", amount.Round(0).IntPart())
}
