package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agentes-ledger/internal/domain/entity"
)

// LedgerRepository define el puerto de persistencia para LedgerEntry.
// Solo-inserción: las correcciones son asientos compensatorios.
type LedgerRepository interface {
	Create(ctx context.Context, entry *entity.LedgerEntry) error
	// AmountTotal suma los montos firmados del agente (pagos negativos,
	// avances positivos) a lo largo de toda su historia.
	AmountTotal(ctx context.Context, agentName string) (decimal.Decimal, error)
}
