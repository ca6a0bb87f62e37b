package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleTransaction registra una venta del agente a un cliente final (inmutable,
// solo-inserción). Reduce el inventario en mano del agente; no toca la deuda
// monetaria — la liquidación del efectivo se modela como un LedgerEntry aparte.
type SaleTransaction struct {
	ID          string
	AgentName   string
	ProductName string
	Quantity    decimal.Decimal
	SalePrice   decimal.Decimal // puede diferir del precio estándar
	TotalAmount decimal.Decimal
	SoldAt      time.Time
}
