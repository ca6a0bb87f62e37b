package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/agentes-ledger/internal/domain/entity"
	"github.com/tu-usuario/agentes-ledger/internal/domain/report"
	"github.com/tu-usuario/agentes-ledger/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.SaleTransaction) error {
	query := `
		INSERT INTO sales (id, agent_name, product_name, quantity, sale_price, total_amount, sold_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.AgentName, sale.ProductName,
		sale.Quantity, sale.SalePrice, sale.TotalAmount, sale.SoldAt,
	)
	if err != nil {
		if derr := referenceError(err); derr != nil {
			return derr
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// TotalsByProduct suma las cantidades vendidas por el agente, por producto.
func (r *SaleRepo) TotalsByProduct(ctx context.Context, agentName string) ([]repository.ProductQuantity, error) {
	query := `
		SELECT product_name, SUM(quantity)
		FROM sales WHERE agent_name = $1
		GROUP BY product_name`
	rows, err := r.q.Query(ctx, query, agentName)
	if err != nil {
		return nil, fmt.Errorf("sum sales by product: %w", err)
	}
	defer rows.Close()
	var totals []repository.ProductQuantity
	for rows.Next() {
		var t repository.ProductQuantity
		if err := rows.Scan(&t.ProductName, &t.Quantity); err != nil {
			return nil, fmt.Errorf("scan sale total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// RecordsSince devuelve los hechos de venta (con la región del agente) desde
// la fecha dada, crudos: la consolidación por celda la hace el pivote.
func (r *SaleRepo) RecordsSince(ctx context.Context, from time.Time) ([]report.SaleRecord, error) {
	query := `
		SELECT a.region, s.agent_name, s.sold_at, s.quantity
		FROM sales s
		JOIN agents a ON a.agent_name = s.agent_name
		WHERE s.sold_at >= $1`
	rows, err := r.q.Query(ctx, query, from)
	if err != nil {
		return nil, fmt.Errorf("query sale records: %w", err)
	}
	defer rows.Close()
	var records []report.SaleRecord
	for rows.Next() {
		var rec report.SaleRecord
		if err := rows.Scan(&rec.Region, &rec.AgentName, &rec.Day, &rec.Quantity); err != nil {
			return nil, fmt.Errorf("scan sale record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
