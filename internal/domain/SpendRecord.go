package domain

import (
	"time"
)

// SpendRecord é um registro bruto de gasto horário vindo do armazenamento de
// métricas. A ingestão desses registros é responsabilidade de outro serviço;
// o pacing apenas consulta.
type SpendRecord struct {
	ID          int64     `json:"id"`
	ProfileID   string    `json:"profile_id"`
	CampaignID  string    `json:"campaign_id"`
	RecordedAt  time.Time `json:"recorded_at"`
	SpendMicros int64     `json:"spend_micros"`
	CreatedAt   time.Time `json:"created_at"`
}
