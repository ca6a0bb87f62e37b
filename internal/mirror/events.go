package mirror

import "github.com/shopspring/decimal"

// Formas de evento del contrato con el espejo (notificación unidireccional,
// mejor esfuerzo). El núcleo solo garantiza UN intento por escritura primaria
// exitosa; no hay garantía de entrega ni de orden.

// StockIssued notifica una entrega de mercancía a un agente.
type StockIssued struct {
	AgentName   string
	ProductName string
	Quantity    decimal.Decimal
	IssuePrice  decimal.Decimal
	TotalCost   decimal.Decimal
}

// SaleRecorded notifica una venta de un agente a cliente final.
type SaleRecorded struct {
	AgentName   string
	ProductName string
	Quantity    decimal.Decimal
	SalePrice   decimal.Decimal
	TotalAmount decimal.Decimal
	Date        string // YYYY-MM-DD
	Time        string // HH:MM:SS
}

// LedgerEntryRecorded notifica un movimiento de caja (pago o avance).
type LedgerEntryRecorded struct {
	AgentName    string
	Kind         string
	SignedAmount decimal.Decimal
	Date         string // YYYY-MM-DD
	Note         string
}

// Notifier es el puerto que consume la capa de aplicación: despacho sin
// retorno. El fallo del espejo solo es observable vía logs, nunca en el valor
// de retorno de la operación primaria.
type Notifier interface {
	StockIssued(e StockIssued)
	SaleRecorded(e SaleRecorded)
	LedgerEntryRecorded(e LedgerEntryRecorded)
}

// Discard es un Notifier que descarta todo; se usa cuando el espejo está
// deshabilitado por configuración.
type Discard struct{}

func (Discard) StockIssued(StockIssued)                 {}
func (Discard) SaleRecorded(SaleRecorded)               {}
func (Discard) LedgerEntryRecorded(LedgerEntryRecorded) {}
