// Package postgres implementa los repositorios del dominio sobre pgx v5.
//
// Esquema esperado:
//
//	invoices(id BIGSERIAL PK, client_name, client_address, client_phone,
//	         proposal_date, job_address, date_plans, architect,
//	         work_description, document_kind, subtotal BIGINT,
//	         tax_percent NUMERIC, total BIGINT, notes, pdf_path,
//	         created_at TIMESTAMPTZ)
//	line_items(id BIGSERIAL PK, invoice_id BIGINT REFERENCES invoices
//	           ON DELETE CASCADE, description, quantity NUMERIC,
//	           unit_price BIGINT, line_total BIGINT)
//	business_profile(id SMALLINT PK DEFAULT 1, business_name, address,
//	                 phone, email, logo_path)
//	users(id UUID PK, email UNIQUE, password_hash, name, role, status,
//	      created_at, updated_at)
package postgres

import (
	"context"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/proposal-pro/pkg/config"
)

// Querier es el subconjunto de pgx que usan los repos sin transacción propia
// (lo satisfacen *pgxpool.Pool y pgx.Tx).
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPool crea un pool de conexiones PostgreSQL usando la configuración de la app.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Registrar codec para NUMERIC/DECIMAL -> shopspring/decimal (todas las conexiones del pool).
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}
