package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agentes-ledger/internal/domain/entity"
	"github.com/tu-usuario/agentes-ledger/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación de LedgerRepository (usable con pool o tx).
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Create persiste un movimiento de caja ya firmado.
func (r *LedgerRepo) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (id, agent_name, kind, amount, txn_date, note)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.AgentName, string(entry.Kind), entry.Amount, entry.Date, entry.Note,
	)
	if err != nil {
		if derr := referenceError(err); derr != nil {
			return derr
		}
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// AmountTotal suma los montos firmados de toda la historia del agente.
// Los pagos (negativos) y avances (positivos) se compensan en la propia suma.
func (r *LedgerRepo) AmountTotal(ctx context.Context, agentName string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM ledger_entries WHERE agent_name = $1`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, agentName).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum ledger amounts: %w", err)
	}
	return total, nil
}
