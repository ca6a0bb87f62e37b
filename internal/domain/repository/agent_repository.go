package repository

import (
	"context"

	"github.com/tu-usuario/agentes-ledger/internal/domain/entity"
)

// AgentRepository define el puerto de persistencia para Agent (DIP).
// Los agentes no se borran ni se actualizan, salvo la vinculación de sesión.
type AgentRepository interface {
	Create(ctx context.Context, agent *entity.Agent) error
	GetByName(ctx context.Context, name string) (*entity.Agent, error)
	GetBySecret(ctx context.Context, secret string) (*entity.Agent, error)
	GetBySession(ctx context.Context, sessionID string) (*entity.Agent, error)
	// List devuelve todos los agentes ordenados por (región, nombre) ascendente.
	// Ese orden es contrato de UI: toda vista de listado depende de él.
	List(ctx context.Context) ([]*entity.Agent, error)
	// BindSession fija session_id solo si está libre o ya vale sessionID.
	// Devuelve cuántas filas quedaron vinculadas (0 = estaba tomada por otra sesión).
	BindSession(ctx context.Context, name, sessionID string) (int64, error)
}
