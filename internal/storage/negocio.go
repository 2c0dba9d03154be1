package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/marimarques/cobrador/internal/model"
)

// SaveGerente upserts a manager by code.
func (s *Store) SaveGerente(ctx context.Context, g model.Gerente) error {
	if g.Codigo == "" {
		return fmt.Errorf("gerente code cannot be empty")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO gerentes (codigo, nome, telefone, regiao, ativo)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(codigo) DO UPDATE SET
			nome = excluded.nome,
			telefone = excluded.telefone,
			regiao = excluded.regiao,
			ativo = excluded.ativo`,
		g.Codigo, g.Nome, g.Telefone, g.Regiao, g.Ativo)
	if err != nil {
		return fmt.Errorf("failed to save gerente %s: %w", g.Codigo, err)
	}
	return nil
}

// ListGerentes returns all active managers ordered by code.
func (s *Store) ListGerentes(ctx context.Context) ([]model.Gerente, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT codigo, nome, COALESCE(telefone, ''), COALESCE(regiao, ''), ativo
		FROM gerentes WHERE ativo = 1 ORDER BY codigo`)
	if err != nil {
		return nil, fmt.Errorf("failed to list gerentes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Gerente
	for rows.Next() {
		var g model.Gerente
		if err := rows.Scan(&g.Codigo, &g.Nome, &g.Telefone, &g.Regiao, &g.Ativo); err != nil {
			return nil, fmt.Errorf("failed to scan gerente: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// SavePrestacao upserts a settlement report.
func (s *Store) SavePrestacao(ctx context.Context, p model.Prestacao) error {
	if p.ID == "" {
		return fmt.Errorf("prestacao id cannot be empty")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO prestacoes (id, gerente_codigo, gerente_nome, total, pago, restante, status, data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			total = excluded.total,
			pago = excluded.pago,
			restante = excluded.restante,
			status = excluded.status`,
		p.ID, p.GerenteCodigo, p.GerenteNome, p.Total, p.Pago, p.Restante, string(p.Status), p.Data)
	if err != nil {
		return fmt.Errorf("failed to save prestacao %s: %w", p.ID, err)
	}
	return nil
}

// ListPrestacoes returns every settlement, open ones first, then by
// remaining balance descending.
func (s *Store) ListPrestacoes(ctx context.Context) ([]model.Prestacao, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, gerente_codigo, COALESCE(gerente_nome, ''), total, pago, restante, status, data
		FROM prestacoes
		ORDER BY status = 'QUITADA', restante DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list prestacoes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Prestacao
	for rows.Next() {
		var p model.Prestacao
		var status string
		if err := rows.Scan(&p.ID, &p.GerenteCodigo, &p.GerenteNome, &p.Total, &p.Pago, &p.Restante, &status, &p.Data); err != nil {
			return nil, fmt.Errorf("failed to scan prestacao: %w", err)
		}
		p.Status = model.PrestacaoStatus(status)
		out = append(out, p)
	}
	return out, rows.Err()
}

// SaveDespesa upserts an expense row.
func (s *Store) SaveDespesa(ctx context.Context, d model.Despesa) error {
	if d.ID == "" {
		return fmt.Errorf("despesa id cannot be empty")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO despesas (id, gerente_codigo, descricao, categoria, valor, data)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			descricao = excluded.descricao,
			categoria = excluded.categoria,
			valor = excluded.valor`,
		d.ID, d.GerenteCodigo, d.Descricao, d.Categoria, d.Valor, d.Data)
	if err != nil {
		return fmt.Errorf("failed to save despesa %s: %w", d.ID, err)
	}
	return nil
}

// ListDespesas returns all expenses, newest first.
func (s *Store) ListDespesas(ctx context.Context) ([]model.Despesa, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, COALESCE(gerente_codigo, ''), COALESCE(descricao, ''), COALESCE(categoria, ''), valor, data
		FROM despesas ORDER BY data DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list despesas: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Despesa
	for rows.Next() {
		var d model.Despesa
		if err := rows.Scan(&d.ID, &d.GerenteCodigo, &d.Descricao, &d.Categoria, &d.Valor, &d.Data); err != nil {
			return nil, fmt.Errorf("failed to scan despesa: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// SaveVenda upserts a sales row.
func (s *Store) SaveVenda(ctx context.Context, v model.Venda) error {
	if v.ID == "" {
		return fmt.Errorf("venda id cannot be empty")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vendas (id, ficha, gerente_codigo, produto, forma_pgto, quantidade, valor, data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			quantidade = excluded.quantidade,
			valor = excluded.valor`,
		v.ID, v.Ficha, v.GerenteCodigo, v.Produto, v.FormaPgto, v.Quantidade, v.Valor, v.Data)
	if err != nil {
		return fmt.Errorf("failed to save venda %s: %w", v.ID, err)
	}
	return nil
}

// ListVendas returns all sales rows, newest first.
func (s *Store) ListVendas(ctx context.Context) ([]model.Venda, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, ficha, COALESCE(gerente_codigo, ''), COALESCE(produto, ''), COALESCE(forma_pgto, ''), quantidade, valor, data
		FROM vendas ORDER BY data DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendas: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Venda
	for rows.Next() {
		var v model.Venda
		if err := rows.Scan(&v.ID, &v.Ficha, &v.GerenteCodigo, &v.Produto, &v.FormaPgto, &v.Quantidade, &v.Valor, &v.Data); err != nil {
			return nil, fmt.Errorf("failed to scan venda: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// SaveLancamento inserts a ledger entry.
func (s *Store) SaveLancamento(ctx context.Context, l model.Lancamento) error {
	if l.ID == "" {
		return fmt.Errorf("lancamento id cannot be empty")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO lancamentos (id, tipo, descricao, valor, data)
		VALUES (?, ?, ?, ?, ?)`,
		l.ID, l.Tipo, l.Descricao, l.Valor, l.Data)
	if err != nil {
		return fmt.Errorf("failed to save lancamento %s: %w", l.ID, err)
	}
	return nil
}

// ListLancamentos returns all ledger entries, newest first.
func (s *Store) ListLancamentos(ctx context.Context) ([]model.Lancamento, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, tipo, COALESCE(descricao, ''), valor, data
		FROM lancamentos ORDER BY data DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list lancamentos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Lancamento
	for rows.Next() {
		var l model.Lancamento
		if err := rows.Scan(&l.ID, &l.Tipo, &l.Descricao, &l.Valor, &l.Data); err != nil {
			return nil, fmt.Errorf("failed to scan lancamento: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// SavePendencia inserts an open follow-up item.
func (s *Store) SavePendencia(ctx context.Context, p model.Pendencia) error {
	if p.ID == "" {
		return fmt.Errorf("pendencia id cannot be empty")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO pendencias (id, gerente_codigo, descricao, valor, data)
		VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.GerenteCodigo, p.Descricao, p.Valor, p.Data)
	if err != nil {
		return fmt.Errorf("failed to save pendencia %s: %w", p.ID, err)
	}
	return nil
}

// ListPendencias returns all open follow-up items.
func (s *Store) ListPendencias(ctx context.Context) ([]model.Pendencia, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, COALESCE(gerente_codigo, ''), COALESCE(descricao, ''), valor, data
		FROM pendencias ORDER BY data DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pendencias: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Pendencia
	for rows.Next() {
		var p model.Pendencia
		if err := rows.Scan(&p.ID, &p.GerenteCodigo, &p.Descricao, &p.Valor, &p.Data); err != nil {
			return nil, fmt.Errorf("failed to scan pendencia: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SaveResumo overwrites the single dashboard summary row.
func (s *Store) SaveResumo(ctx context.Context, r model.Resumo) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO resumo
			(id, total_gerentes, prestacoes_abertas, total_receber, total_despesas, total_vendas, limite_despesa, atualizado_em)
		VALUES (1, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		r.TotalGerentes, r.PrestacoesAbertas, r.TotalReceber, r.TotalDespesas, r.TotalVendas, r.LimiteDespesa)
	if err != nil {
		return fmt.Errorf("failed to save resumo: %w", err)
	}
	return nil
}

// GetResumo returns the dashboard summary, or nil when none was computed.
func (s *Store) GetResumo(ctx context.Context) (*model.Resumo, error) {
	var r model.Resumo
	err := s.db.QueryRowContext(ctx, `
		SELECT total_gerentes, prestacoes_abertas, total_receber, total_despesas, total_vendas, limite_despesa, atualizado_em
		FROM resumo WHERE id = 1`).
		Scan(&r.TotalGerentes, &r.PrestacoesAbertas, &r.TotalReceber, &r.TotalDespesas, &r.TotalVendas, &r.LimiteDespesa, &r.AtualizadoEm)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resumo: %w", err)
	}
	return &r, nil
}
