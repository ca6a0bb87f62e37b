// Package balance deriva posiciones a partir del libro: inventario en mano y
// deuda monetaria por agente. Nada de esto se persiste; cada consulta recalcula
// desde los agregados de las tablas inmutables.
package balance

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agentes-ledger/internal/application/dto"
	"github.com/tu-usuario/agentes-ledger/internal/domain"
	"github.com/tu-usuario/agentes-ledger/internal/domain/repository"
)

// UseCase casos de uso de consulta de posiciones.
type UseCase struct {
	agents  repository.AgentRepository
	issues  repository.IssueRepository
	sales   repository.SaleRepository
	entries repository.LedgerRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	agents repository.AgentRepository,
	issues repository.IssueRepository,
	sales repository.SaleRepository,
	entries repository.LedgerRepository,
) *UseCase {
	return &UseCase{agents: agents, issues: issues, sales: sales, entries: entries}
}

// ListAgents devuelve todos los agentes ordenados por (región, nombre).
func (uc *UseCase) ListAgents(ctx context.Context) ([]dto.AgentResponse, error) {
	agents, err := uc.agents.List(ctx)
	if err != nil {
		return nil, storage(err)
	}
	out := make([]dto.AgentResponse, 0, len(agents))
	for _, a := range agents {
		out = append(out, dto.AgentResponse{
			Name:   a.Name,
			Region: a.Region,
			Phone:  a.Phone,
			Bound:  a.SessionID != "",
		})
	}
	return out, nil
}

// GetAgent devuelve la vista pública de un agente por nombre.
func (uc *UseCase) GetAgent(ctx context.Context, name string) (*dto.AgentResponse, error) {
	agent, err := uc.agents.GetByName(ctx, name)
	if err != nil {
		return nil, storage(err)
	}
	if agent == nil {
		return nil, domain.ErrUnknownAgent
	}
	return &dto.AgentResponse{
		Name:   agent.Name,
		Region: agent.Region,
		Phone:  agent.Phone,
		Bound:  agent.SessionID != "",
	}, nil
}

// FindAgentBySession resuelve qué agente está detrás de una sesión de chat.
// Es la operación inversa de la vinculación: ErrNotFound si la sesión no
// vincula a nadie.
func (uc *UseCase) FindAgentBySession(ctx context.Context, sessionID string) (*dto.AgentResponse, error) {
	if sessionID == "" {
		return nil, domain.ErrInvalidInput
	}
	agent, err := uc.agents.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, storage(err)
	}
	if agent == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.AgentResponse{
		Name:   agent.Name,
		Region: agent.Region,
		Phone:  agent.Phone,
		Bound:  true,
	}, nil
}

// StockPosition calcula el inventario en manos del agente, producto por
// producto: recibido, vendido y balance = recibido − vendido. Un balance
// negativo (sobreventa) se muestra tal cual en lugar de ocultarse.
// Solo aparecen productos que el agente ha tocado alguna vez.
func (uc *UseCase) StockPosition(ctx context.Context, agentName string) (*dto.StockPositionResponse, error) {
	if err := uc.requireAgent(ctx, agentName); err != nil {
		return nil, err
	}
	received, err := uc.issues.TotalsByProduct(ctx, agentName)
	if err != nil {
		return nil, storage(err)
	}
	sold, err := uc.sales.TotalsByProduct(ctx, agentName)
	if err != nil {
		return nil, storage(err)
	}

	type position struct{ received, sold decimal.Decimal }
	byProduct := make(map[string]*position)
	at := func(name string) *position {
		p, ok := byProduct[name]
		if !ok {
			p = &position{}
			byProduct[name] = p
		}
		return p
	}
	for _, t := range received {
		at(t.ProductName).received = at(t.ProductName).received.Add(t.Quantity)
	}
	for _, t := range sold {
		at(t.ProductName).sold = at(t.ProductName).sold.Add(t.Quantity)
	}

	names := make([]string, 0, len(byProduct))
	for name := range byProduct {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]dto.StockLineResponse, 0, len(names))
	for _, name := range names {
		p := byProduct[name]
		lines = append(lines, dto.StockLineResponse{
			ProductName: name,
			Received:    p.received,
			Sold:        p.sold,
			Balance:     p.received.Sub(p.sold),
		})
	}
	return &dto.StockPositionResponse{AgentName: agentName, Lines: lines}, nil
}

// MonetaryPosition calcula la posición de dinero del agente. El neto es la
// suma de costos de entrega más los movimientos firmados del libro; un neto
// positivo es deuda del agente, uno negativo es saldo a su favor. A lo sumo
// uno de los dos campos es distinto de cero.
func (uc *UseCase) MonetaryPosition(ctx context.Context, agentName string) (*dto.DebtResponse, error) {
	if err := uc.requireAgent(ctx, agentName); err != nil {
		return nil, err
	}
	issued, err := uc.issues.CostTotal(ctx, agentName)
	if err != nil {
		return nil, storage(err)
	}
	moved, err := uc.entries.AmountTotal(ctx, agentName)
	if err != nil {
		return nil, storage(err)
	}
	net := issued.Add(moved)
	resp := &dto.DebtResponse{AgentName: agentName, Debt: decimal.Zero, Credit: decimal.Zero}
	if net.IsNegative() {
		resp.Credit = net.Neg()
	} else {
		resp.Debt = net
	}
	return resp, nil
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
