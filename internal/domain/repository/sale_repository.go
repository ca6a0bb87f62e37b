package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/agentes-ledger/internal/domain/entity"
	"github.com/tu-usuario/agentes-ledger/internal/domain/report"
)

// SaleRepository define el puerto de persistencia para SaleTransaction.
// Solo-inserción: no existen Update ni Delete en el dominio.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.SaleTransaction) error
	// TotalsByProduct suma las cantidades vendidas por el agente, por producto.
	TotalsByProduct(ctx context.Context, agentName string) ([]ProductQuantity, error)
	// RecordsSince devuelve los hechos de venta (región, agente, día, cantidad)
	// con fecha >= from, crudos: la agregación por celda la hace el motor de pivote.
	RecordsSince(ctx context.Context, from time.Time) ([]report.SaleRecord, error)
}
