package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/budget-pacing-api/infrastructure/database/postgres"
)

const (
	spendRecordsTable = "spend_records sr"
)

// SpendRecordRepository consulta os registros brutos de gasto horário que o
// serviço de métricas ingere. O pacing só lê.
type SpendRecordRepository interface {
	SumSpendInRange(profileID, campaignID string, start, end time.Time) (int64, error)
	HourlyTotals(profileID, campaignID string, day time.Time) (map[int]int64, error)
}

type spendRecordRepository struct {
	conn *postgres.Connection
}

func NewSpendRecordRepository(conn *postgres.Connection) SpendRecordRepository {
	return &spendRecordRepository{
		conn: conn,
	}
}

// SumSpendInRange soma o gasto da campanha no intervalo fechado [start, end].
// Uma campanha sem registros retorna 0, não é um erro.
func (r *spendRecordRepository) SumSpendInRange(profileID, campaignID string, start, end time.Time) (int64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(sr.spend_micros), 0)").
		From(spendRecordsTable).
		Where(squirrel.Eq{"sr.profile_id": profileID, "sr.campaign_id": campaignID}).
		Where(squirrel.GtOrEq{"sr.recorded_at": start}).
		Where(squirrel.LtOrEq{"sr.recorded_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar gastos: %w", err)
	}

	return total, nil
}

// HourlyTotals retorna o gasto agregado por slot de hora (0-23) do dia UTC
// informado. Horas sem registros ficam ausentes do mapa.
func (r *spendRecordRepository) HourlyTotals(profileID, campaignID string, day time.Time) (map[int]int64, error) {
	day = day.UTC()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Second)

	query, args, err := squirrel.
		Select("EXTRACT(HOUR FROM sr.recorded_at AT TIME ZONE 'UTC')::int AS hour", "COALESCE(SUM(sr.spend_micros), 0)").
		From(spendRecordsTable).
		Where(squirrel.Eq{"sr.profile_id": profileID, "sr.campaign_id": campaignID}).
		Where(squirrel.GtOrEq{"sr.recorded_at": start}).
		Where(squirrel.LtOrEq{"sr.recorded_at": end}).
		GroupBy("hour").
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

	totals := make(map[int]int64)
	for rows.Next() {
		var hour int
		var spend int64
		if err := rows.Scan(&hour, &spend); err != nil {
			return nil, fmt.Errorf("erro ao escanear gasto horário: %w", err)
		}
		totals[hour] = spend
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}
