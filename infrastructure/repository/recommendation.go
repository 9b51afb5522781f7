package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/budget-pacing-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-pacing-api/internal/domain"
	"github.com/vfg2006/budget-pacing-api/pkg/utils"
)

const (
	recommendationsTable = "pacing_recommendations pr"

	recommendationColumns = "pr.id, pr.profile_id, pr.campaign_id, pr.day, pr.budget_micros, pr.spend_micros, " +
		"pr.forecast_micros, pr.pace_ratio, pr.action, pr.suggested_budget_micros, pr.reason, pr.mode, pr.state, " +
		"pr.applied_at, pr.created_at, pr.updated_at"
)

type RecommendationRepository interface {
	SaveOrUpdate(rec *domain.Recommendation) error
	GetByID(id string) (*domain.Recommendation, error)
	GetByUniqueKey(profileID, campaignID string, day time.Time) (*domain.Recommendation, error)
	ListByProfileAndDay(profileID string, day time.Time) ([]*domain.Recommendation, error)
	LatestAppliedAfter(profileID, campaignID string, since time.Time) (*domain.Recommendation, error)
	Transition(id string, state domain.RecommendationState, mode domain.RecommendationMode, appliedAt *time.Time) (bool, error)
}

type recommendationRepository struct {
	conn *postgres.Connection
}

func NewRecommendationRepository(conn *postgres.Connection) RecommendationRepository {
	return &recommendationRepository{
		conn: conn,
	}
}

// SaveOrUpdate faz o upsert da recomendação na chave única
// (profile_id, campaign_id, day). Reexecutar o lote no mesmo dia sobrescreve a
// linha com os números novos em vez de criar duplicata. Uma linha que já saiu
// do estado open é preservada intacta: o upsert não reabre recomendação
// aplicada ou descartada, e rec recebe o conteúdo gravado para o chamador
// enxergar o estado real.
func (r *recommendationRepository) SaveOrUpdate(rec *domain.Recommendation) error {
	if rec.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da recomendação: %w", err)
		}
		rec.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("pacing_recommendations").
		Columns(
			"id", "profile_id", "campaign_id", "day", "budget_micros", "spend_micros",
			"forecast_micros", "pace_ratio", "action", "suggested_budget_micros",
			"reason", "mode", "state", "applied_at",
		).
		Values(
			rec.ID,
			rec.ProfileID,
			rec.CampaignID,
			rec.Day.Format(time.DateOnly),
			rec.BudgetMicros,
			rec.SpendMicros,
			rec.ForecastMicros,
			rec.PaceRatio,
			rec.Action,
			rec.SuggestedBudgetMicros,
			rec.Reason,
			rec.Mode,
			rec.State,
			rec.AppliedAt,
		).
		Suffix(`
			ON CONFLICT (profile_id, campaign_id, day) DO UPDATE SET
				budget_micros = EXCLUDED.budget_micros,
				spend_micros = EXCLUDED.spend_micros,
				forecast_micros = EXCLUDED.forecast_micros,
				pace_ratio = EXCLUDED.pace_ratio,
				action = EXCLUDED.action,
				suggested_budget_micros = EXCLUDED.suggested_budget_micros,
				reason = EXCLUDED.reason,
				mode = EXCLUDED.mode,
				state = EXCLUDED.state,
				applied_at = EXCLUDED.applied_at,
				updated_at = NOW()
			WHERE pacing_recommendations.state = ?
			RETURNING id
		`, domain.RecommendationStateOpen).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	// No conflito a linha mantém o id original; o RETURNING devolve o id
	// efetivamente gravado para que o chamador sempre aponte para a linha certa
	if err := r.conn.QueryRow(query, args...).Scan(&rec.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// A linha do dia já está em estado terminal e o upsert não mexeu
			// nela. Carrega o conteúdo preservado para o chamador decidir o
			// que fazer com a recomendação já resolvida.
			existing, getErr := r.GetByUniqueKey(rec.ProfileID, rec.CampaignID, rec.Day)
			if getErr != nil {
				return fmt.Errorf("erro ao carregar recomendação preservada: %w", getErr)
			}
			if existing == nil {
				return fmt.Errorf("recomendação preservada não encontrada: %w", err)
			}
			*rec = *existing
			return nil
		}
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *recommendationRepository) GetByID(id string) (*domain.Recommendation, error) {
	query, args, err := squirrel.
		Select(recommendationColumns).
		From(recommendationsTable).
		Where(squirrel.Eq{"pr.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rec, err := scanRecommendationRow(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear recomendação: %w", err)
	}

	return rec, nil
}

func (r *recommendationRepository) GetByUniqueKey(profileID, campaignID string, day time.Time) (*domain.Recommendation, error) {
	query, args, err := squirrel.
		Select(recommendationColumns).
		From(recommendationsTable).
		Where(squirrel.Eq{
			"pr.profile_id":  profileID,
			"pr.campaign_id": campaignID,
			"pr.day":         day.Format(time.DateOnly),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rec, err := scanRecommendationRow(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear recomendação: %w", err)
	}

	return rec, nil
}

func (r *recommendationRepository) ListByProfileAndDay(profileID string, day time.Time) ([]*domain.Recommendation, error) {
	query, args, err := squirrel.
		Select(recommendationColumns).
		From(recommendationsTable).
		Where(squirrel.Eq{"pr.profile_id": profileID, "pr.day": day.Format(time.DateOnly)}).
		OrderBy("pr.campaign_id ASC").
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

	recommendations := make([]*domain.Recommendation, 0)
	for rows.Next() {
		rec, err := scanRecommendationRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear recomendações: %w", err)
		}
		recommendations = append(recommendations, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return recommendations, nil
}

// LatestAppliedAfter retorna a recomendação aplicada mais recente da campanha
// com applied_at posterior a since, ou nil se não houver. Usada pela checagem
// de cooldown.
func (r *recommendationRepository) LatestAppliedAfter(profileID, campaignID string, since time.Time) (*domain.Recommendation, error) {
	query, args, err := squirrel.
		Select(recommendationColumns).
		From(recommendationsTable).
		Where(squirrel.Eq{
			"pr.profile_id":  profileID,
			"pr.campaign_id": campaignID,
			"pr.state":       domain.RecommendationStateApplied,
		}).
		Where(squirrel.Gt{"pr.applied_at": since}).
		OrderBy("pr.applied_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rec, err := scanRecommendationRow(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear recomendação: %w", err)
	}

	return rec, nil
}

// Transition muda o estado de uma recomendação ainda aberta. Retorna false se
// a linha não existe ou já saiu do estado open. Não há transição a partir de
// applied ou dismissed.
func (r *recommendationRepository) Transition(id string, state domain.RecommendationState, mode domain.RecommendationMode, appliedAt *time.Time) (bool, error) {
	query, args, err := squirrel.StatementBuilder.
		Update("pacing_recommendations").
		Set("state", state).
		Set("mode", mode).
		Set("applied_at", appliedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "state": domain.RecommendationStateOpen}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecommendation(scanner rowScanner) (*domain.Recommendation, error) {
	rec := &domain.Recommendation{}
	err := scanner.Scan(
		&rec.ID,
		&rec.ProfileID,
		&rec.CampaignID,
		&rec.Day,
		&rec.BudgetMicros,
		&rec.SpendMicros,
		&rec.ForecastMicros,
		&rec.PaceRatio,
		&rec.Action,
		&rec.SuggestedBudgetMicros,
		&rec.Reason,
		&rec.Mode,
		&rec.State,
		&rec.AppliedAt,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func scanRecommendationRow(row *sql.Row) (*domain.Recommendation, error) {
	return scanRecommendation(row)
}

func scanRecommendationRows(rows *sql.Rows) (*domain.Recommendation, error) {
	return scanRecommendation(rows)
}
