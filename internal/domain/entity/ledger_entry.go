package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind clasifica un movimiento de caja entre agente y empresa.
type EntryKind string

const (
	// EntryPayment: el agente entrega dinero (reduce su deuda).
	EntryPayment EntryKind = "PAYMENT"
	// EntryAdvance: la empresa extiende crédito / el agente retira efectivo
	// (aumenta su deuda).
	EntryAdvance EntryKind = "ADVANCE"
)

// Valid indica si el tipo de movimiento es uno de los dos conocidos.
func (k EntryKind) Valid() bool {
	return k == EntryPayment || k == EntryAdvance
}

// LedgerEntry es un movimiento de dinero firmado entre agente y empresa
// (inmutable, solo-inserción). Convención de signo: pago negativo, avance positivo.
// Las correcciones se hacen insertando un asiento compensatorio, nunca mutando.
type LedgerEntry struct {
	ID        string
	AgentName string
	Kind      EntryKind
	Amount    decimal.Decimal // ya firmado según Kind
	Date      time.Time
	Note      string
}

// SignedAmount aplica la convención de signo del libro a una magnitud positiva:
// pago → negativo (reduce deuda), avance → positivo (aumenta deuda).
func SignedAmount(kind EntryKind, magnitude decimal.Decimal) decimal.Decimal {
	if kind == EntryPayment {
		return magnitude.Neg()
	}
	return magnitude
}
