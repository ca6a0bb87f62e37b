package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agentes-ledger/internal/domain/entity"
)

// ProductQuantity es una suma agregada de cantidades por producto.
type ProductQuantity struct {
	ProductName string
	Quantity    decimal.Decimal
}

// IssueRepository define el puerto de persistencia para StockIssue.
// Solo-inserción: no existen Update ni Delete en el dominio.
type IssueRepository interface {
	Create(ctx context.Context, issue *entity.StockIssue) error
	// TotalsByProduct suma las cantidades entregadas al agente, por producto.
	TotalsByProduct(ctx context.Context, agentName string) ([]ProductQuantity, error)
	// CostTotal suma total_cost de todas las entregas al agente (base de su deuda).
	CostTotal(ctx context.Context, agentName string) (decimal.Decimal, error)
}
