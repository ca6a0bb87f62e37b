package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/agentes-ledger/internal/application/balance"
	"github.com/tu-usuario/agentes-ledger/internal/application/catalog"
	"github.com/tu-usuario/agentes-ledger/internal/application/dto"
	"github.com/tu-usuario/agentes-ledger/internal/application/ledger"
	"github.com/tu-usuario/agentes-ledger/internal/domain"
	"github.com/tu-usuario/agentes-ledger/internal/domain/entity"
	"github.com/tu-usuario/agentes-ledger/internal/domain/report"
	"github.com/tu-usuario/agentes-ledger/internal/domain/repository"
	"github.com/tu-usuario/agentes-ledger/internal/mirror"
)

// ── fakes en memoria ──────────────────────────────────────────────────────────

type fakeAgents struct {
	byName map[string]*entity.Agent
}

func (f *fakeAgents) Create(_ context.Context, a *entity.Agent) error {
	f.byName[a.Name] = a
	return nil
}
func (f *fakeAgents) GetByName(_ context.Context, name string) (*entity.Agent, error) {
	return f.byName[name], nil
}
func (f *fakeAgents) GetBySecret(context.Context, string) (*entity.Agent, error)  { return nil, nil }
func (f *fakeAgents) GetBySession(context.Context, string) (*entity.Agent, error) { return nil, nil }
func (f *fakeAgents) List(context.Context) ([]*entity.Agent, error)               { return nil, nil }
func (f *fakeAgents) BindSession(context.Context, string, string) (int64, error)  { return 0, nil }

type fakeProducts struct {
	byName map[string]*entity.Product
}

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) error {
	f.byName[p.Name] = p
	return nil
}
func (f *fakeProducts) GetByName(_ context.Context, name string) (*entity.Product, error) {
	return f.byName[name], nil
}
func (f *fakeProducts) List(context.Context) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProducts) UpdatePrice(_ context.Context, name string, price decimal.Decimal) (int64, error) {
	p, ok := f.byName[name]
	if !ok {
		return 0, nil
	}
	p.Price = price
	return 1, nil
}

type fakeIssues struct {
	created []*entity.StockIssue
	fail    error
}

func (f *fakeIssues) Create(_ context.Context, i *entity.StockIssue) error {
	if f.fail != nil {
		return f.fail
	}
	f.created = append(f.created, i)
	return nil
}
func (f *fakeIssues) TotalsByProduct(context.Context, string) ([]repository.ProductQuantity, error) {
	return nil, nil
}

// CostTotal suma las filas almacenadas, como el SQL real: la deuda deriva de
// los costos registrados, nunca del precio vigente del catálogo.
func (f *fakeIssues) CostTotal(_ context.Context, agentName string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, i := range f.created {
		if i.AgentName == agentName {
			total = total.Add(i.TotalCost)
		}
	}
	return total, nil
}

type fakeSales struct {
	created []*entity.SaleTransaction
}

func (f *fakeSales) Create(_ context.Context, s *entity.SaleTransaction) error {
	f.created = append(f.created, s)
	return nil
}
func (f *fakeSales) TotalsByProduct(context.Context, string) ([]repository.ProductQuantity, error) {
	return nil, nil
}
func (f *fakeSales) RecordsSince(context.Context, time.Time) ([]report.SaleRecord, error) {
	return nil, nil
}

type fakeEntries struct {
	created []*entity.LedgerEntry
}

func (f *fakeEntries) Create(_ context.Context, e *entity.LedgerEntry) error {
	f.created = append(f.created, e)
	return nil
}
func (f *fakeEntries) AmountTotal(context.Context, string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

// recordingNotifier captura las notificaciones al espejo.
type recordingNotifier struct {
	issues  []mirror.StockIssued
	sales   []mirror.SaleRecorded
	entries []mirror.LedgerEntryRecorded
}

func (n *recordingNotifier) StockIssued(e mirror.StockIssued)                 { n.issues = append(n.issues, e) }
func (n *recordingNotifier) SaleRecorded(e mirror.SaleRecorded)               { n.sales = append(n.sales, e) }
func (n *recordingNotifier) LedgerEntryRecorded(e mirror.LedgerEntryRecorded) { n.entries = append(n.entries, e) }

type fixture struct {
	uc       *ledger.UseCase
	agents   *fakeAgents
	products *fakeProducts
	issues   *fakeIssues
	sales    *fakeSales
	entries  *fakeEntries
	notifier *recordingNotifier
}

func newFixture() *fixture {
	f := &fixture{
		agents: &fakeAgents{byName: map[string]*entity.Agent{
			"Aziz": {Name: "Aziz", Region: "Chilanzar", Secret: "s3cr3t"},
		}},
		products: &fakeProducts{byName: map[string]*entity.Product{
			"Flour": {Name: "Flour", Price: decimal.NewFromInt(5000)},
		}},
		issues:   &fakeIssues{},
		sales:    &fakeSales{},
		entries:  &fakeEntries{},
		notifier: &recordingNotifier{},
	}
	f.uc = ledger.NewUseCase(f.agents, f.products, f.issues, f.sales, f.entries, f.notifier)
	return f
}

// ── entregas ──────────────────────────────────────────────────────────────────

func TestRecordIssue_CalculaCostoTotal(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.RecordIssue(context.Background(), dto.CreateIssueRequest{
		AgentName:   "Aziz",
		ProductName: "Flour",
		Quantity:    decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	assert.True(t, resp.IssuePrice.Equal(decimal.NewFromInt(5000)),
		"sin precio explícito debe usarse el estándar del producto")
	assert.True(t, resp.TotalCost.Equal(decimal.NewFromInt(500000)),
		"costo total = cantidad × precio")
	require.Len(t, f.issues.created, 1)
	require.Len(t, f.notifier.issues, 1, "la entrega debe notificarse al espejo")
	assert.Equal(t, "Aziz", f.notifier.issues[0].AgentName)
}

func TestRecordIssue_PrecioExplicitoPrevalece(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.RecordIssue(context.Background(), dto.CreateIssueRequest{
		AgentName:   "Aziz",
		ProductName: "Flour",
		Quantity:    decimal.NewFromInt(10),
		Price:       decimal.NewFromInt(4800),
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalCost.Equal(decimal.NewFromInt(48000)))
}

func TestRecordIssue_CantidadInvalida(t *testing.T) {
	f := newFixture()

	for _, qty := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-3)} {
		_, err := f.uc.RecordIssue(context.Background(), dto.CreateIssueRequest{
			AgentName:   "Aziz",
			ProductName: "Flour",
			Quantity:    qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
	assert.Empty(t, f.issues.created, "nada debe persistirse tras un rechazo de validación")
	assert.Empty(t, f.notifier.issues, "nada debe notificarse tras un rechazo de validación")
}

func TestRecordIssue_ReferenciasDesconocidas(t *testing.T) {
	f := newFixture()

	_, err := f.uc.RecordIssue(context.Background(), dto.CreateIssueRequest{
		AgentName: "Nadie", ProductName: "Flour", Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrUnknownAgent)

	_, err = f.uc.RecordIssue(context.Background(), dto.CreateIssueRequest{
		AgentName: "Aziz", ProductName: "Nada", Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrUnknownProduct)
}

func TestRecordIssue_FalloDeAlmacenamiento(t *testing.T) {
	f := newFixture()
	f.issues.fail = errors.New("conexión rechazada")

	_, err := f.uc.RecordIssue(context.Background(), dto.CreateIssueRequest{
		AgentName: "Aziz", ProductName: "Flour", Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Empty(t, f.notifier.issues, "un insert fallido no debe notificarse al espejo")
}

// TestCambioDePrecio_NoReescribeHistoria: subir el precio estándar después de
// una entrega no toca la fila histórica ni la deuda ya devengada; solo las
// transacciones nuevas lo usan.
func TestCambioDePrecio_NoReescribeHistoria(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	antes, err := f.uc.RecordIssue(ctx, dto.CreateIssueRequest{
		AgentName: "Aziz", ProductName: "Flour", Quantity: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	require.True(t, antes.TotalCost.Equal(decimal.NewFromInt(500000)))

	cat := catalog.NewUseCase(f.agents, f.products)
	_, err = cat.SetProductPrice(ctx, "Flour", decimal.NewFromInt(9000))
	require.NoError(t, err)

	// La fila almacenada conserva su precio y costo originales.
	require.Len(t, f.issues.created, 1)
	assert.True(t, f.issues.created[0].IssuePrice.Equal(decimal.NewFromInt(5000)))
	assert.True(t, f.issues.created[0].TotalCost.Equal(decimal.NewFromInt(500000)))

	// La posición monetaria derivada tampoco se mueve.
	bal := balance.NewUseCase(f.agents, f.issues, f.sales, f.entries)
	pos, err := bal.MonetaryPosition(ctx, "Aziz")
	require.NoError(t, err)
	assert.True(t, pos.Debt.Equal(decimal.NewFromInt(500000)),
		"la deuda devengada no cambia con el precio del catálogo")

	// Una entrega nueva sí toma el precio vigente.
	despues, err := f.uc.RecordIssue(ctx, dto.CreateIssueRequest{
		AgentName: "Aziz", ProductName: "Flour", Quantity: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.True(t, despues.TotalCost.Equal(decimal.NewFromInt(90000)))
}

// ── ventas ────────────────────────────────────────────────────────────────────

func TestRecordSale_PermiteSobreventa(t *testing.T) {
	f := newFixture()

	// Sin entrega previa: la venta se acepta igual, la sobreventa se hace
	// visible en el balance en lugar de bloquear la operación.
	resp, err := f.uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		AgentName:   "Aziz",
		ProductName: "Flour",
		Quantity:    decimal.NewFromInt(30),
		Price:       decimal.NewFromInt(6000),
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(180000)))

	require.Len(t, f.notifier.sales, 1)
	ev := f.notifier.sales[0]
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, ev.Date)
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}$`, ev.Time)
}

// ── movimientos de caja ───────────────────────────────────────────────────────

func TestRecordEntry_FirmaSegunTipo(t *testing.T) {
	f := newFixture()

	pago, err := f.uc.RecordEntry(context.Background(), dto.CreateEntryRequest{
		AgentName: "Aziz", Kind: "PAYMENT", Amount: decimal.NewFromInt(200000),
	})
	require.NoError(t, err)
	assert.True(t, pago.SignedAmount.Equal(decimal.NewFromInt(-200000)),
		"el pago se almacena negativo")

	avance, err := f.uc.RecordEntry(context.Background(), dto.CreateEntryRequest{
		AgentName: "Aziz", Kind: "ADVANCE", Amount: decimal.NewFromInt(50000),
	})
	require.NoError(t, err)
	assert.True(t, avance.SignedAmount.Equal(decimal.NewFromInt(50000)),
		"el avance se almacena positivo")

	require.Len(t, f.notifier.entries, 2)
	assert.True(t, f.notifier.entries[0].SignedAmount.IsNegative())
	assert.True(t, f.notifier.entries[1].SignedAmount.IsPositive())
}

func TestRecordEntry_FechaExplicita(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.RecordEntry(context.Background(), dto.CreateEntryRequest{
		AgentName: "Aziz", Kind: "PAYMENT", Amount: decimal.NewFromInt(1000),
		Date: "2026-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", resp.Date)
}

func TestRecordEntry_Rechazos(t *testing.T) {
	f := newFixture()

	_, err := f.uc.RecordEntry(context.Background(), dto.CreateEntryRequest{
		AgentName: "Aziz", Kind: "TRANSFER", Amount: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo de movimiento desconocido")

	_, err = f.uc.RecordEntry(context.Background(), dto.CreateEntryRequest{
		AgentName: "Aziz", Kind: "PAYMENT", Amount: decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount, "la magnitud llega positiva; el signo lo pone el libro")

	_, err = f.uc.RecordEntry(context.Background(), dto.CreateEntryRequest{
		AgentName: "Aziz", Kind: "PAYMENT", Amount: decimal.NewFromInt(5), Date: "01/03/2026",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "formato de fecha inválido")

	_, err = f.uc.RecordEntry(context.Background(), dto.CreateEntryRequest{
		AgentName: "Nadie", Kind: "PAYMENT", Amount: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrUnknownAgent)

	assert.Empty(t, f.entries.created)
}
