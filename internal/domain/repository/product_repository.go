package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agentes-ledger/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	// List devuelve el catálogo ordenado por nombre ascendente.
	List(ctx context.Context) ([]*entity.Product, error)
	// UpdatePrice cambia solo el precio de referencia, nunca filas históricas.
	// Devuelve cuántas filas tocó (0 = producto inexistente).
	UpdatePrice(ctx context.Context, name string, price decimal.Decimal) (int64, error)
}
