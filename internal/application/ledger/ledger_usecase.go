// Package ledger registra los tres hechos transaccionales del negocio:
// entregas de mercancía, ventas y movimientos de caja. Cada operación valida,
// resuelve referencias, inserta exactamente una fila inmutable y notifica al
// espejo en mejor esfuerzo.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agentes-ledger/internal/application/dto"
	"github.com/tu-usuario/agentes-ledger/internal/domain"
	"github.com/tu-usuario/agentes-ledger/internal/domain/entity"
	"github.com/tu-usuario/agentes-ledger/internal/domain/repository"
	"github.com/tu-usuario/agentes-ledger/internal/mirror"
)

const dateLayout = "2006-01-02"

// UseCase casos de uso de escritura del libro.
type UseCase struct {
	agents   repository.AgentRepository
	products repository.ProductRepository
	issues   repository.IssueRepository
	sales    repository.SaleRepository
	entries  repository.LedgerRepository
	notifier mirror.Notifier
}

// NewUseCase construye el caso de uso. Pasar mirror.Discard{} si el espejo
// está deshabilitado.
func NewUseCase(
	agents repository.AgentRepository,
	products repository.ProductRepository,
	issues repository.IssueRepository,
	sales repository.SaleRepository,
	entries repository.LedgerRepository,
	notifier mirror.Notifier,
) *UseCase {
	return &UseCase{
		agents:   agents,
		products: products,
		issues:   issues,
		sales:    sales,
		entries:  entries,
		notifier: notifier,
	}
}

// RecordIssue registra la entrega de mercancía a un agente. El costo total
// (cantidad × precio de entrega) nace como obligación de deuda del agente.
// Sin precio explícito se toma el estándar vigente del producto.
func (uc *UseCase) RecordIssue(ctx context.Context, in dto.CreateIssueRequest) (*dto.IssueResponse, error) {
	price, err := uc.resolveTransaction(ctx, in.AgentName, in.ProductName, in.Quantity, in.Price)
	if err != nil {
		return nil, err
	}
	issue := &entity.StockIssue{
		ID:          uuid.New().String(),
		AgentName:   in.AgentName,
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		IssuePrice:  price,
		TotalCost:   in.Quantity.Mul(price),
		CreatedAt:   time.Now(),
	}
	if err := uc.issues.Create(ctx, issue); err != nil {
		return nil, storage(err)
	}
	uc.notifier.StockIssued(mirror.StockIssued{
		AgentName:   issue.AgentName,
		ProductName: issue.ProductName,
		Quantity:    issue.Quantity,
		IssuePrice:  issue.IssuePrice,
		TotalCost:   issue.TotalCost,
	})
	return &dto.IssueResponse{
		ID:          issue.ID,
		AgentName:   issue.AgentName,
		ProductName: issue.ProductName,
		Quantity:    issue.Quantity,
		IssuePrice:  issue.IssuePrice,
		TotalCost:   issue.TotalCost,
	}, nil
}

// RecordSale registra una venta del agente a cliente final. Reduce inventario
// en mano; no toca la deuda. Se permite sobreventa: el balance puede quedar
// negativo y el reporte lo hace visible en vez de bloquear la operación.
func (uc *UseCase) RecordSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	price, err := uc.resolveTransaction(ctx, in.AgentName, in.ProductName, in.Quantity, in.Price)
	if err != nil {
		return nil, err
	}
	sale := &entity.SaleTransaction{
		ID:          uuid.New().String(),
		AgentName:   in.AgentName,
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		SalePrice:   price,
		TotalAmount: in.Quantity.Mul(price),
		SoldAt:      time.Now(),
	}
	if err := uc.sales.Create(ctx, sale); err != nil {
		return nil, storage(err)
	}
	uc.notifier.SaleRecorded(mirror.SaleRecorded{
		AgentName:   sale.AgentName,
		ProductName: sale.ProductName,
		Quantity:    sale.Quantity,
		SalePrice:   sale.SalePrice,
		TotalAmount: sale.TotalAmount,
		Date:        sale.SoldAt.Format(dateLayout),
		Time:        sale.SoldAt.Format("15:04:05"),
	})
	return &dto.SaleResponse{
		ID:          sale.ID,
		AgentName:   sale.AgentName,
		ProductName: sale.ProductName,
		Quantity:    sale.Quantity,
		SalePrice:   sale.SalePrice,
		TotalAmount: sale.TotalAmount,
	}, nil
}

// RecordEntry registra un pago o avance. La magnitud llega positiva y aquí se
// firma: pago negativo, avance positivo. Las correcciones son asientos
// compensatorios, nunca mutaciones.
func (uc *UseCase) RecordEntry(ctx context.Context, in dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	kind := entity.EntryKind(in.Kind)
	if !kind.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}
	if err := uc.requireAgent(ctx, in.AgentName); err != nil {
		return nil, err
	}
	entry := &entity.LedgerEntry{
		ID:        uuid.New().String(),
		AgentName: in.AgentName,
		Kind:      kind,
		Amount:    entity.SignedAmount(kind, in.Amount),
		Date:      date,
		Note:      in.Note,
	}
	if err := uc.entries.Create(ctx, entry); err != nil {
		return nil, storage(err)
	}
	uc.notifier.LedgerEntryRecorded(mirror.LedgerEntryRecorded{
		AgentName:    entry.AgentName,
		Kind:         string(entry.Kind),
		SignedAmount: entry.Amount,
		Date:         entry.Date.Format(dateLayout),
		Note:         entry.Note,
	})
	return &dto.EntryResponse{
		ID:           entry.ID,
		AgentName:    entry.AgentName,
		Kind:         string(entry.Kind),
		SignedAmount: entry.Amount,
		Date:         entry.Date.Format(dateLayout),
	}, nil
}

// resolveTransaction valida cantidad y referencias y devuelve el precio
// efectivo de la transacción (el explícito, o el estándar vigente si no llegó).
func (uc *UseCase) resolveTransaction(ctx context.Context, agentName, productName string, quantity, price decimal.Decimal) (decimal.Decimal, error) {
	if !quantity.IsPositive() {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	if price.IsNegative() {
		return decimal.Zero, domain.ErrInvalidPrice
	}
	if err := uc.requireAgent(ctx, agentName); err != nil {
		return decimal.Zero, err
	}
	product, err := uc.products.GetByName(ctx, productName)
	if err != nil {
		return decimal.Zero, storage(err)
	}
	if product == nil {
		return decimal.Zero, domain.ErrUnknownProduct
	}
	if price.IsZero() {
		return product.Price, nil
	}
	return price, nil
}

func (uc *UseCase) requireAgent(ctx context.Context, name string) error {
	agent, err := uc.agents.GetByName(ctx, name)
	if err != nil {
		return storage(err)
	}
	if agent == nil {
		return domain.ErrUnknownAgent
	}
	return nil
}

func storage(err error) error {
	if domain.IsDomain(err) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}
