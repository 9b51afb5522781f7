package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/budget-pacing-api/infrastructure/database/postgres"
)

const (
	preferencesTable = "pacing_preferences pp"
)

// PreferenceRepository consulta o consentimento de aplicação automática por
// (profile, campaign). Sem linha cadastrada, o padrão é dry-run.
type PreferenceRepository interface {
	AutoApplyEnabled(profileID, campaignID string) (bool, error)
	SetAutoApply(profileID, campaignID string, enabled bool) error
}

type preferenceRepository struct {
	conn *postgres.Connection
}

func NewPreferenceRepository(conn *postgres.Connection) PreferenceRepository {
	return &preferenceRepository{
		conn: conn,
	}
}

func (r *preferenceRepository) AutoApplyEnabled(profileID, campaignID string) (bool, error) {
	query, args, err := squirrel.
		Select("pp.auto_apply").
		From(preferencesTable).
		Where(squirrel.Eq{"pp.profile_id": profileID, "pp.campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var enabled bool
	if err := r.conn.QueryRow(query, args...).Scan(&enabled); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("erro ao consultar preferência: %w", err)
	}

	return enabled, nil
}

func (r *preferenceRepository) SetAutoApply(profileID, campaignID string, enabled bool) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("pacing_preferences").
		Columns("profile_id", "campaign_id", "auto_apply").
		Values(profileID, campaignID, enabled).
		Suffix(`
			ON CONFLICT (profile_id, campaign_id) DO UPDATE SET
				auto_apply = EXCLUDED.auto_apply,
				updated_at = NOW()
		`).
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
