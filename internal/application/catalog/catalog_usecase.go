// Package catalog cubre el registro de agentes y productos y la vinculación
// de sesiones de chat. Son las operaciones de administración: las transacciones
// diarias viven en el paquete ledger.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agentes-ledger/internal/application/dto"
	"github.com/tu-usuario/agentes-ledger/internal/domain"
	"github.com/tu-usuario/agentes-ledger/internal/domain/entity"
	"github.com/tu-usuario/agentes-ledger/internal/domain/repository"
)

// UseCase casos de uso de catálogo y acceso.
type UseCase struct {
	agents   repository.AgentRepository
	products repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(agents repository.AgentRepository, products repository.ProductRepository) *UseCase {
	return &UseCase{agents: agents, products: products}
}

// AddAgent registra un nuevo agente. El nombre es la clave con la que todas
// las transacciones lo referenciarán; los duplicados se rechazan.
func (uc *UseCase) AddAgent(ctx context.Context, in dto.CreateAgentRequest) (*dto.AgentResponse, error) {
	name := strings.TrimSpace(in.Name)
	region := strings.TrimSpace(in.Region)
	if name == "" || region == "" || in.Secret == "" {
		return nil, domain.ErrInvalidInput
	}
	agent := &entity.Agent{
		Name:   name,
		Region: region,
		Phone:  strings.TrimSpace(in.Phone),
		Secret: in.Secret,
	}
	if err := uc.agents.Create(ctx, agent); err != nil {
		return nil, storage(err)
	}
	return toAgentResponse(agent), nil
}

// AddProduct registra un producto con su precio estándar inicial.
func (uc *UseCase) AddProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Price.IsPositive() {
		return nil, domain.ErrInvalidPrice
	}
	product := &entity.Product{Name: name, Price: in.Price}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, storage(err)
	}
	return &dto.ProductResponse{Name: product.Name, Price: product.Price}, nil
}

// ListProducts devuelve el catálogo completo.
func (uc *UseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, storage(err)
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductResponse{Name: p.Name, Price: p.Price})
	}
	return out, nil
}

// SetProductPrice cambia el precio estándar vigente. Solo afecta transacciones
// futuras: las filas históricas conservan el precio al que se registraron.
func (uc *UseCase) SetProductPrice(ctx context.Context, name string, price decimal.Decimal) (*dto.ProductResponse, error) {
	if !price.IsPositive() {
		return nil, domain.ErrInvalidPrice
	}
	affected, err := uc.products.UpdatePrice(ctx, name, price)
	if err != nil {
		return nil, storage(err)
	}
	if affected == 0 {
		return nil, domain.ErrUnknownProduct
	}
	return &dto.ProductResponse{Name: name, Price: price}, nil
}

// Login valida el secreto compartido y, si llega un SessionID, lo vincula al
// agente. La vinculación es de una sola vez: el mismo SessionID repite con
// éxito (idempotente), uno distinto se rechaza.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Secret == "" {
		return nil, domain.ErrInvalidInput
	}
	agent, err := uc.agents.GetBySecret(ctx, in.Secret)
	if err != nil {
		return nil, storage(err)
	}
	if agent == nil {
		return nil, domain.ErrNotFound
	}
	if in.SessionID != "" {
		if err := uc.bind(ctx, agent, in.SessionID); err != nil {
			return nil, err
		}
	}
	return &dto.LoginResponse{Name: agent.Name, Region: agent.Region}, nil
}

// BindAgentSession vincula una sesión de chat a un agente ya registrado.
func (uc *UseCase) BindAgentSession(ctx context.Context, name, sessionID string) error {
	if sessionID == "" {
		return domain.ErrInvalidInput
	}
	agent, err := uc.agents.GetByName(ctx, name)
	if err != nil {
		return storage(err)
	}
	if agent == nil {
		return domain.ErrUnknownAgent
	}
	return uc.bind(ctx, agent, sessionID)
}

func (uc *UseCase) bind(ctx context.Context, agent *entity.Agent, sessionID string) error {
	if agent.SessionID == sessionID {
		return nil // rebind idempotente
	}
	affected, err := uc.agents.BindSession(ctx, agent.Name, sessionID)
	if err != nil {
		return storage(err)
	}
	if affected == 0 {
		return domain.ErrSessionAlreadyBound
	}
	return nil
}

func toAgentResponse(a *entity.Agent) *dto.AgentResponse {
	return &dto.AgentResponse{
		Name:   a.Name,
		Region: a.Region,
		Phone:  a.Phone,
		Bound:  a.SessionID != "",
	}
}

// storage deja pasar los errores de dominio y envuelve el resto como fallo de
// almacenamiento, para que la presentación responda "inténtalo más tarde".
func storage(err error) error {
	if domain.IsDomain(err) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}
