package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/budget-pacing-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-pacing-api/internal/domain"
	"github.com/vfg2006/budget-pacing-api/pkg/utils"
)

const (
	pacingRunsTable = "pacing_runs r"
)

// PacingRunRepository persiste o registro de auditoria de cada execução do
// lote. Registros são append-only: criados no início e finalizados uma vez.
type PacingRunRepository interface {
	Create(run *domain.PacingRun) error
	Finalize(run *domain.PacingRun) error
	ListRecent(limit uint64) ([]*domain.PacingRun, error)
}

type pacingRunRepository struct {
	conn *postgres.Connection
}

func NewPacingRunRepository(conn *postgres.Connection) PacingRunRepository {
	return &pacingRunRepository{
		conn: conn,
	}
}

func (r *pacingRunRepository) Create(run *domain.PacingRun) error {
	if run.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da execução: %w", err)
		}
		run.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("pacing_runs").
		Columns("id", "scope", "started_at", "status").
		Values(run.ID, run.Scope, run.StartedAt, run.Status).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *pacingRunRepository) Finalize(run *domain.PacingRun) error {
	query, args, err := squirrel.StatementBuilder.
		Update("pacing_runs").
		Set("finished_at", run.FinishedAt).
		Set("campaigns_checked", run.CampaignsChecked).
		Set("recommendations_created", run.RecommendationsCreated).
		Set("status", run.Status).
		Set("error_message", run.ErrorMessage).
		Where(squirrel.Eq{"id": run.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *pacingRunRepository) ListRecent(limit uint64) ([]*domain.PacingRun, error) {
	if limit == 0 {
		limit = 20
	}

	query, args, err := squirrel.
		Select("r.id, r.scope, r.started_at, r.finished_at, r.campaigns_checked, r.recommendations_created, r.status, r.error_message").
		From(pacingRunsTable).
		OrderBy("r.started_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.PacingRun, 0)
	for rows.Next() {
		run := &domain.PacingRun{}
		err := rows.Scan(
			&run.ID,
			&run.Scope,
			&run.StartedAt,
			&run.FinishedAt,
			&run.CampaignsChecked,
			&run.RecommendationsCreated,
			&run.Status,
			&run.ErrorMessage,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}
