package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Las cinco tablas del dominio. Las tres de transacciones son solo-inserción:
// el dominio no define UPDATE ni DELETE sobre ellas, y las referencias por
// nombre exigen que agentes y productos existan al insertar.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS agents (
		agent_name VARCHAR(255) PRIMARY KEY,
		region     VARCHAR(100) NOT NULL,
		phone      VARCHAR(50),
		secret     VARCHAR(100) NOT NULL,
		session_id VARCHAR(64) UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		name  VARCHAR(255) PRIMARY KEY,
		price NUMERIC(12, 2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS stock_issues (
		id           UUID PRIMARY KEY,
		agent_name   VARCHAR(255) NOT NULL REFERENCES agents(agent_name),
		product_name VARCHAR(255) NOT NULL REFERENCES products(name),
		quantity     NUMERIC(12, 2) NOT NULL,
		issue_price  NUMERIC(12, 2) NOT NULL,
		total_cost   NUMERIC(15, 2) NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id           UUID PRIMARY KEY,
		agent_name   VARCHAR(255) NOT NULL REFERENCES agents(agent_name),
		product_name VARCHAR(255) NOT NULL REFERENCES products(name),
		quantity     NUMERIC(12, 2) NOT NULL,
		sale_price   NUMERIC(12, 2) NOT NULL,
		total_amount NUMERIC(15, 2) NOT NULL,
		sold_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ledger_entries (
		id         UUID PRIMARY KEY,
		agent_name VARCHAR(255) NOT NULL REFERENCES agents(agent_name),
		kind       VARCHAR(20) NOT NULL,
		amount     NUMERIC(15, 2) NOT NULL,
		txn_date   DATE NOT NULL,
		note       TEXT
	)`,
}

// CreateTables crea las tablas si no existen (arranque idempotente).
func CreateTables(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}
