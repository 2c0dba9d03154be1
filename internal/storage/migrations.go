package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS gerentes (
					codigo TEXT PRIMARY KEY,
					nome TEXT NOT NULL,
					telefone TEXT,
					regiao TEXT,
					ativo INTEGER DEFAULT 1,
					criado_em DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS prestacoes (
					id TEXT PRIMARY KEY,
					gerente_codigo TEXT NOT NULL,
					gerente_nome TEXT,
					total REAL NOT NULL,
					pago REAL DEFAULT 0,
					restante REAL DEFAULT 0,
					status TEXT NOT NULL DEFAULT 'ABERTA',
					data DATETIME NOT NULL
				)`,
				`CREATE INDEX idx_prestacoes_gerente ON prestacoes(gerente_codigo)`,
				`CREATE INDEX idx_prestacoes_status ON prestacoes(status)`,

				`CREATE TABLE IF NOT EXISTS despesas (
					id TEXT PRIMARY KEY,
					gerente_codigo TEXT,
					descricao TEXT,
					categoria TEXT,
					valor REAL NOT NULL,
					data DATETIME NOT NULL
				)`,
				`CREATE INDEX idx_despesas_gerente ON despesas(gerente_codigo)`,

				`CREATE TABLE IF NOT EXISTS vendas (
					id TEXT PRIMARY KEY,
					ficha TEXT NOT NULL,
					gerente_codigo TEXT,
					produto TEXT,
					forma_pgto TEXT,
					quantidade INTEGER DEFAULT 1,
					valor REAL NOT NULL,
					data DATETIME NOT NULL
				)`,
				`CREATE INDEX idx_vendas_ficha ON vendas(ficha)`,

				`CREATE TABLE IF NOT EXISTS lancamentos (
					id TEXT PRIMARY KEY,
					tipo TEXT NOT NULL,
					descricao TEXT,
					valor REAL NOT NULL,
					data DATETIME NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS pendencias (
					id TEXT PRIMARY KEY,
					gerente_codigo TEXT,
					descricao TEXT,
					valor REAL DEFAULT 0,
					data DATETIME NOT NULL
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Dashboard summary",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS resumo (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				total_gerentes INTEGER DEFAULT 0,
				prestacoes_abertas INTEGER DEFAULT 0,
				total_receber REAL DEFAULT 0,
				total_despesas REAL DEFAULT 0,
				total_vendas REAL DEFAULT 0,
				limite_despesa REAL DEFAULT 0,
				atualizado_em DATETIME DEFAULT CURRENT_TIMESTAMP
			)`)
			return err
		},
	},
	{
		Version:     3,
		Description: "Chat transcript log",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS transcript (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				quem TEXT NOT NULL,
				texto TEXT NOT NULL,
				criado_em DATETIME DEFAULT CURRENT_TIMESTAMP
			)`)
			return err
		},
	},
}

// Migrate applies all pending migrations in order.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var current int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}

		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, m.Version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		slog.Debug("applied migration", "version", m.Version, "description", m.Description)
	}

	return nil
}
