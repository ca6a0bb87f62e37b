package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agentes-ledger/internal/domain"
	"github.com/tu-usuario/agentes-ledger/internal/domain/entity"
	"github.com/tu-usuario/agentes-ledger/internal/domain/repository"
)

var _ repository.IssueRepository = (*IssueRepo)(nil)

// IssueRepo implementación de IssueRepository (usable con pool o tx).
type IssueRepo struct {
	q Querier
}

// NewIssueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIssueRepository(q Querier) *IssueRepo {
	return &IssueRepo{q: q}
}

// Create persiste una entrega de mercancía.
func (r *IssueRepo) Create(ctx context.Context, issue *entity.StockIssue) error {
	query := `
		INSERT INTO stock_issues (id, agent_name, product_name, quantity, issue_price, total_cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		issue.ID, issue.AgentName, issue.ProductName,
		issue.Quantity, issue.IssuePrice, issue.TotalCost, issue.CreatedAt,
	)
	if err != nil {
		if derr := referenceError(err); derr != nil {
			return derr
		}
		return fmt.Errorf("insert stock issue: %w", err)
	}
	return nil
}

// TotalsByProduct suma las cantidades entregadas al agente, por producto.
func (r *IssueRepo) TotalsByProduct(ctx context.Context, agentName string) ([]repository.ProductQuantity, error) {
	query := `
		SELECT product_name, SUM(quantity)
		FROM stock_issues WHERE agent_name = $1
		GROUP BY product_name`
	rows, err := r.q.Query(ctx, query, agentName)
	if err != nil {
		return nil, fmt.Errorf("sum issues by product: %w", err)
	}
	defer rows.Close()
	var totals []repository.ProductQuantity
	for rows.Next() {
		var t repository.ProductQuantity
		if err := rows.Scan(&t.ProductName, &t.Quantity); err != nil {
			return nil, fmt.Errorf("scan issue total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// CostTotal suma total_cost de todas las entregas al agente.
func (r *IssueRepo) CostTotal(ctx context.Context, agentName string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(total_cost), 0) FROM stock_issues WHERE agent_name = $1`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, agentName).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum issue cost: %w", err)
	}
	return total, nil
}

// referenceError traduce una violación de clave foránea al error de dominio
// según la tabla referenciada; nil si el error no es de FK.
func referenceError(err error) error {
	constraint := foreignKeyConstraint(err)
	switch {
	case constraint == "":
		return nil
	case strings.Contains(constraint, "agent"):
		return domain.ErrUnknownAgent
	case strings.Contains(constraint, "product"):
		return domain.ErrUnknownProduct
	default:
		return domain.ErrInvalidInput
	}
}
