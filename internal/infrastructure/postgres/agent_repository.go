package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/agentes-ledger/internal/domain"
	"github.com/tu-usuario/agentes-ledger/internal/domain/entity"
	"github.com/tu-usuario/agentes-ledger/internal/domain/repository"
)

var _ repository.AgentRepository = (*AgentRepo)(nil)

// AgentRepo implementación de AgentRepository (usable con pool o tx).
type AgentRepo struct {
	q Querier
}

// NewAgentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAgentRepository(q Querier) *AgentRepo {
	return &AgentRepo{q: q}
}

const agentColumns = `agent_name, region, COALESCE(phone, ''), secret, COALESCE(session_id, '')`

// Create persiste un nuevo agente.
func (r *AgentRepo) Create(ctx context.Context, agent *entity.Agent) error {
	query := `
		INSERT INTO agents (agent_name, region, phone, secret, session_id)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))`
	_, err := r.q.Exec(ctx, query,
		agent.Name, agent.Region, agent.Phone, agent.Secret, agent.SessionID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateAgent
		}
		return fmt.Errorf("insert agent: %w", err)
	}
	return nil
}

// GetByName obtiene un agente por nombre. (nil, nil) si no existe.
func (r *AgentRepo) GetByName(ctx context.Context, name string) (*entity.Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents WHERE agent_name = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, name), "get agent")
}

// GetBySecret obtiene un agente por su credencial de login. (nil, nil) si no existe.
func (r *AgentRepo) GetBySecret(ctx context.Context, secret string) (*entity.Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents WHERE secret = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, secret), "get agent by secret")
}

// GetBySession obtiene el agente vinculado a la sesión. (nil, nil) si ninguno.
func (r *AgentRepo) GetBySession(ctx context.Context, sessionID string) (*entity.Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents WHERE session_id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, sessionID), "get agent by session")
}

// List devuelve todos los agentes ordenados por (región, nombre).
func (r *AgentRepo) List(ctx context.Context) ([]*entity.Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents ORDER BY region, agent_name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Agent
	for rows.Next() {
		var a entity.Agent
		if err := rows.Scan(&a.Name, &a.Region, &a.Phone, &a.Secret, &a.SessionID); err != nil {
			return nil, fmt.Errorf("scan agent: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// BindSession fija session_id de forma atómica: escribe solo si la columna
// está libre o ya vale sessionID. El conteo de filas distingue el rebind
// idempotente (1) del intento de robo de vínculo (0).
func (r *AgentRepo) BindSession(ctx context.Context, name, sessionID string) (int64, error) {
	query := `
		UPDATE agents SET session_id = $2
		WHERE agent_name = $1 AND (session_id IS NULL OR session_id = $2)`
	tag, err := r.q.Exec(ctx, query, name, sessionID)
	if err != nil {
		if isUniqueViolation(err) {
			// La sesión ya vincula a otro agente (session_id es UNIQUE).
			return 0, nil
		}
		return 0, fmt.Errorf("bind session: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *AgentRepo) scanOne(row pgx.Row, op string) (*entity.Agent, error) {
	var a entity.Agent
	err := row.Scan(&a.Name, &a.Region, &a.Phone, &a.Secret, &a.SessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}
