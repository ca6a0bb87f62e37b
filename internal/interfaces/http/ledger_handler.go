package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/agentes-ledger/internal/application/dto"
	"github.com/tu-usuario/agentes-ledger/internal/application/ledger"
)

// LedgerHandler maneja el registro de entregas, ventas y movimientos de caja.
type LedgerHandler struct {
	ledger *ledger.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(lg *ledger.UseCase) *LedgerHandler {
	return &LedgerHandler{ledger: lg}
}

// CreateIssue registra la entrega de mercancía a un agente.
func (h *LedgerHandler) CreateIssue(c *fiber.Ctx) error {
	var in dto.CreateIssueRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.ledger.RecordIssue(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateSale registra una venta de un agente a cliente final.
func (h *LedgerHandler) CreateSale(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.ledger.RecordSale(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateEntry registra un pago o avance.
func (h *LedgerHandler) CreateEntry(c *fiber.Ctx) error {
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.ledger.RecordEntry(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
