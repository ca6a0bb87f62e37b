package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockIssue registra la entrega de mercancía de la empresa a un agente
// (inmutable, solo-inserción). Crea simultáneamente una obligación de deuda
// igual a TotalCost = Quantity × IssuePrice.
type StockIssue struct {
	ID          string
	AgentName   string
	ProductName string
	Quantity    decimal.Decimal
	IssuePrice  decimal.Decimal
	TotalCost   decimal.Decimal
	CreatedAt   time.Time
}
