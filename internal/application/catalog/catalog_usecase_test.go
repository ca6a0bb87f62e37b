package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/agentes-ledger/internal/application/catalog"
	"github.com/tu-usuario/agentes-ledger/internal/application/dto"
	"github.com/tu-usuario/agentes-ledger/internal/domain"
	"github.com/tu-usuario/agentes-ledger/internal/domain/entity"
)

// ── fakes en memoria ──────────────────────────────────────────────────────────

type fakeAgents struct {
	byName map[string]*entity.Agent
}

func (f *fakeAgents) Create(_ context.Context, a *entity.Agent) error {
	if _, ok := f.byName[a.Name]; ok {
		return domain.ErrDuplicateAgent
	}
	f.byName[a.Name] = a
	return nil
}
func (f *fakeAgents) GetByName(_ context.Context, name string) (*entity.Agent, error) {
	return f.byName[name], nil
}
func (f *fakeAgents) GetBySecret(_ context.Context, secret string) (*entity.Agent, error) {
	for _, a := range f.byName {
		if a.Secret == secret {
			return a, nil
		}
	}
	return nil, nil
}
func (f *fakeAgents) GetBySession(_ context.Context, sessionID string) (*entity.Agent, error) {
	for _, a := range f.byName {
		if a.SessionID == sessionID {
			return a, nil
		}
	}
	return nil, nil
}
func (f *fakeAgents) List(context.Context) ([]*entity.Agent, error) { return nil, nil }

// BindSession replica la semántica atómica del SQL: escribe solo si la
// columna está libre o ya vale sessionID.
func (f *fakeAgents) BindSession(_ context.Context, name, sessionID string) (int64, error) {
	a, ok := f.byName[name]
	if !ok {
		return 0, nil
	}
	if a.SessionID == "" || a.SessionID == sessionID {
		a.SessionID = sessionID
		return 1, nil
	}
	return 0, nil
}

type fakeProducts struct {
	byName map[string]*entity.Product
}

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) error {
	if _, ok := f.byName[p.Name]; ok {
		return domain.ErrDuplicateProduct
	}
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

func newFixture() (*catalog.UseCase, *fakeAgents, *fakeProducts) {
	agents := &fakeAgents{byName: map[string]*entity.Agent{}}
	products := &fakeProducts{byName: map[string]*entity.Product{}}
	return catalog.NewUseCase(agents, products), agents, products
}

// ── registro ──────────────────────────────────────────────────────────────────

func TestAddAgent_RegistroYDuplicado(t *testing.T) {
	uc, _, _ := newFixture()

	resp, err := uc.AddAgent(context.Background(), dto.CreateAgentRequest{
		Name: "Aziz", Region: "Chilanzar", Phone: "+998901234567", Secret: "s3cr3t",
	})
	require.NoError(t, err)
	assert.Equal(t, "Aziz", resp.Name)
	assert.False(t, resp.Bound, "un agente recién creado no tiene sesión vinculada")

	_, err = uc.AddAgent(context.Background(), dto.CreateAgentRequest{
		Name: "Aziz", Region: "Yunusobod", Secret: "otro",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateAgent)
}

func TestAddAgent_EntradaInvalida(t *testing.T) {
	uc, _, _ := newFixture()

	casos := []dto.CreateAgentRequest{
		{Name: "", Region: "Chilanzar", Secret: "x"},
		{Name: "   ", Region: "Chilanzar", Secret: "x"},
		{Name: "Aziz", Region: "", Secret: "x"},
		{Name: "Aziz", Region: "Chilanzar", Secret: ""},
	}
	for _, in := range casos {
		_, err := uc.AddAgent(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestAddProduct_PrecioDebeSerPositivo(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.AddProduct(context.Background(), dto.CreateProductRequest{
		Name: "Flour", Price: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	resp, err := uc.AddProduct(context.Background(), dto.CreateProductRequest{
		Name: "Flour", Price: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	assert.True(t, resp.Price.Equal(decimal.NewFromInt(5000)))
}

func TestSetProductPrice_SoloHaciaAdelante(t *testing.T) {
	uc, _, products := newFixture()
	products.byName["Flour"] = &entity.Product{Name: "Flour", Price: decimal.NewFromInt(5000)}

	resp, err := uc.SetProductPrice(context.Background(), "Flour", decimal.NewFromInt(5500))
	require.NoError(t, err)
	assert.True(t, resp.Price.Equal(decimal.NewFromInt(5500)))

	_, err = uc.SetProductPrice(context.Background(), "Nada", decimal.NewFromInt(100))
	assert.ErrorIs(t, err, domain.ErrUnknownProduct)
}

// ── login y vinculación de sesión ─────────────────────────────────────────────

func TestLogin_SecretoInvalido(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Login(context.Background(), dto.LoginRequest{Secret: "nadie"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Secret: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_VinculaSesionUnaSolaVez(t *testing.T) {
	uc, agents, _ := newFixture()
	agents.byName["Aziz"] = &entity.Agent{Name: "Aziz", Region: "Chilanzar", Secret: "s3cr3t"}

	// Primer login vincula.
	resp, err := uc.Login(context.Background(), dto.LoginRequest{Secret: "s3cr3t", SessionID: "chat-77"})
	require.NoError(t, err)
	assert.Equal(t, "Aziz", resp.Name)
	assert.Equal(t, "chat-77", agents.byName["Aziz"].SessionID)

	// Mismo SessionID: rebind idempotente.
	_, err = uc.Login(context.Background(), dto.LoginRequest{Secret: "s3cr3t", SessionID: "chat-77"})
	assert.NoError(t, err)

	// SessionID distinto: el vínculo es inmutable.
	_, err = uc.Login(context.Background(), dto.LoginRequest{Secret: "s3cr3t", SessionID: "chat-99"})
	assert.ErrorIs(t, err, domain.ErrSessionAlreadyBound)
	assert.Equal(t, "chat-77", agents.byName["Aziz"].SessionID, "el vínculo original no debe cambiar")
}

func TestLogin_SinSessionIDNoVincula(t *testing.T) {
	uc, agents, _ := newFixture()
	agents.byName["Aziz"] = &entity.Agent{Name: "Aziz", Region: "Chilanzar", Secret: "s3cr3t"}

	_, err := uc.Login(context.Background(), dto.LoginRequest{Secret: "s3cr3t"})
	require.NoError(t, err)
	assert.Empty(t, agents.byName["Aziz"].SessionID)
}

func TestBindAgentSession_AgenteDesconocido(t *testing.T) {
	uc, _, _ := newFixture()

	err := uc.BindAgentSession(context.Background(), "Nadie", "chat-1")
	assert.ErrorIs(t, err, domain.ErrUnknownAgent)

	err = uc.BindAgentSession(context.Background(), "Nadie", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
