package repository

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/budget-pacing-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-pacing-api/internal/domain"
	"github.com/vfg2006/budget-pacing-api/pkg/utils"
)

const (
	alertsTable = "alerts a"
)

// AlertRepository persiste os alertas voltados a revisão humana. A entrega da
// notificação em si é responsabilidade de outro serviço.
type AlertRepository interface {
	Insert(alert *domain.Alert) error
	ListByEntity(entityType, entityID string, limit uint64) ([]*domain.Alert, error)
}

type alertRepository struct {
	conn *postgres.Connection
}

func NewAlertRepository(conn *postgres.Connection) AlertRepository {
	return &alertRepository{
		conn: conn,
	}
}

func (r *alertRepository) Insert(alert *domain.Alert) error {
	if alert.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do alerta: %w", err)
		}
		alert.ID = id
	}

	dataJSON, err := json.Marshal(alert.Data)
	if err != nil {
		return fmt.Errorf("erro ao serializar dados do alerta para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("alerts").
		Columns("id", "entity_type", "entity_id", "title", "message", "level", "data").
		Values(alert.ID, alert.EntityType, alert.EntityID, alert.Title, alert.Message, alert.Level, dataJSON).
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

func (r *alertRepository) ListByEntity(entityType, entityID string, limit uint64) ([]*domain.Alert, error) {
	if limit == 0 {
		limit = 50
	}

	query, args, err := squirrel.
		Select("a.id, a.entity_type, a.entity_id, a.title, a.message, a.level, a.data, a.created_at").
		From(alertsTable).
		Where(squirrel.Eq{"a.entity_type": entityType, "a.entity_id": entityID}).
		OrderBy("a.created_at DESC").
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

	alerts := make([]*domain.Alert, 0)
	for rows.Next() {
		alert := &domain.Alert{}
		var dataJSON []byte

		err := rows.Scan(
			&alert.ID,
			&alert.EntityType,
			&alert.EntityID,
			&alert.Title,
			&alert.Message,
			&alert.Level,
			&dataJSON,
			&alert.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear alerta: %w", err)
		}

		if dataJSON != nil {
			if err := json.Unmarshal(dataJSON, &alert.Data); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de dados do alerta: %w", err)
			}
		}

		alerts = append(alerts, alert)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return alerts, nil
}
