package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/budget-pacing-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-pacing-api/internal/domain"
	"github.com/vfg2006/budget-pacing-api/pkg/utils"
)

const (
	profilesTable  = "profiles p"
	campaignsTable = "campaigns c"
)

type CampaignRepository interface {
	ListProfiles(statuses []domain.ProfileStatus) ([]*domain.Profile, error)
	GetProfileByID(profileID string) (*domain.Profile, error)
	ListEligibleCampaigns(profileID string) ([]*domain.CampaignSnapshot, error)
	GetCampaignByID(campaignID string) (*domain.CampaignSnapshot, error)
	SaveOrUpdateProfile(profile *domain.Profile) error
	SaveOrUpdateCampaign(campaign *domain.CampaignSnapshot) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) ListProfiles(statuses []domain.ProfileStatus) ([]*domain.Profile, error) {
	builder := squirrel.
		Select("p.id, p.external_id, p.name, p.country_code, p.status").
		From(profilesTable).
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"p.status": statuses})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	profiles := make([]*domain.Profile, 0)
	for rows.Next() {
		profile := &domain.Profile{}
		err := rows.Scan(
			&profile.ID,
			&profile.ExternalID,
			&profile.Name,
			&profile.CountryCode,
			&profile.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return profiles, nil
}

func (r *campaignRepository) GetProfileByID(profileID string) (*domain.Profile, error) {
	query, args, err := squirrel.
		Select("p.id, p.external_id, p.name, p.country_code, p.status").
		From(profilesTable).
		Where(squirrel.Eq{"p.id": profileID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	profile := &domain.Profile{}
	err = r.conn.QueryRow(query, args...).Scan(
		&profile.ID,
		&profile.ExternalID,
		&profile.Name,
		&profile.CountryCode,
		&profile.Status,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear profile: %w", err)
	}

	return profile, nil
}

// ListEligibleCampaigns retorna as campanhas do perfil elegíveis para pacing:
// ativas e com orçamento diário positivo
func (r *campaignRepository) ListEligibleCampaigns(profileID string) ([]*domain.CampaignSnapshot, error) {
	query, args, err := squirrel.
		Select("c.id, c.profile_id, c.external_id, c.name, c.daily_budget_micros, c.status, c.synced_at").
		From(campaignsTable).
		Where(squirrel.Eq{"c.profile_id": profileID, "c.status": domain.CampaignStatusEnabled}).
		Where(squirrel.Gt{"c.daily_budget_micros": 0}).
		OrderBy("c.name ASC").
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

	campaigns := make([]*domain.CampaignSnapshot, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) GetCampaignByID(campaignID string) (*domain.CampaignSnapshot, error) {
	query, args, err := squirrel.
		Select("c.id, c.profile_id, c.external_id, c.name, c.daily_budget_micros, c.status, c.synced_at").
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign := &domain.CampaignSnapshot{}
	err = r.conn.QueryRow(query, args...).Scan(
		&campaign.ID,
		&campaign.ProfileID,
		&campaign.ExternalID,
		&campaign.Name,
		&campaign.DailyBudgetMicros,
		&campaign.Status,
		&campaign.SyncedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) SaveOrUpdateProfile(profile *domain.Profile) error {
	if profile.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do profile: %w", err)
		}
		profile.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("profiles").
		Columns("id", "external_id", "name", "country_code", "status").
		Values(profile.ID, profile.ExternalID, profile.Name, profile.CountryCode, profile.Status).
		Suffix(`
			ON CONFLICT (external_id) DO UPDATE SET
				name = EXCLUDED.name,
				country_code = EXCLUDED.country_code,
				status = EXCLUDED.status,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	// No conflito a linha mantém o id original; o RETURNING garante que o
	// chamador use o id efetivamente gravado como chave estrangeira
	if err := r.conn.QueryRow(query, args...).Scan(&profile.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *campaignRepository) SaveOrUpdateCampaign(campaign *domain.CampaignSnapshot) error {
	if campaign.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da campanha: %w", err)
		}
		campaign.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns("id", "profile_id", "external_id", "name", "daily_budget_micros", "status", "synced_at").
		Values(
			campaign.ID,
			campaign.ProfileID,
			campaign.ExternalID,
			campaign.Name,
			campaign.DailyBudgetMicros,
			campaign.Status,
			campaign.SyncedAt,
		).
		Suffix(`
			ON CONFLICT (profile_id, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				daily_budget_micros = EXCLUDED.daily_budget_micros,
				status = EXCLUDED.status,
				synced_at = EXCLUDED.synced_at,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&campaign.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func scanCampaign(rows *sql.Rows) (*domain.CampaignSnapshot, error) {
	campaign := &domain.CampaignSnapshot{}
	err := rows.Scan(
		&campaign.ID,
		&campaign.ProfileID,
		&campaign.ExternalID,
		&campaign.Name,
		&campaign.DailyBudgetMicros,
		&campaign.Status,
		&campaign.SyncedAt,
	)
	if err != nil {
		return nil, err
	}
	return campaign, nil
}
