package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/agentes-ledger/internal/application/report"
)

// ReportHandler maneja los reportes de solo lectura.
type ReportHandler struct {
	report *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(rep *report.UseCase) *ReportHandler {
	return &ReportHandler{report: rep}
}

// DailySales devuelve la tabla monoespaciada de ventas diarias. El cuerpo es
// texto plano pensado para reenviarse tal cual a un chat o terminal.
func (h *ReportHandler) DailySales(c *fiber.Ctx) error {
	table, err := h.report.DailySales(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(table)
}
