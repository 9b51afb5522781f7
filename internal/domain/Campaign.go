package domain

import (
	"time"
)

type ProfileStatus string

const (
	ProfileStatusActive   ProfileStatus = "ACTIVE"
	ProfileStatusInactive ProfileStatus = "INACTIVE"
)

// Profile representa um perfil de anunciante da Amazon Ads vinculado à plataforma
type Profile struct {
	ID          string        `json:"id"`
	ExternalID  string        `json:"external_id"`
	Name        string        `json:"name"`
	CountryCode string        `json:"country_code"`
	Status      ProfileStatus `json:"status"`
}

type CampaignStatus string

const (
	CampaignStatusEnabled  CampaignStatus = "ENABLED"
	CampaignStatusPaused   CampaignStatus = "PAUSED"
	CampaignStatusArchived CampaignStatus = "ARCHIVED"
)

// CampaignSnapshot é a visão somente-leitura de uma campanha usada pelo pacing.
// O orçamento só é alterado pelo sistema externo de execução depois que uma
// ação é aplicada; aqui ele nunca é mutado.
type CampaignSnapshot struct {
	ID                string         `json:"id"`
	ProfileID         string         `json:"profile_id"`
	ExternalID        string         `json:"external_id"`
	Name              string         `json:"name"`
	DailyBudgetMicros int64          `json:"daily_budget_micros"`
	Status            CampaignStatus `json:"status"`
	SyncedAt          time.Time      `json:"synced_at"`
}

// EligibleForPacing indica se a campanha entra no lote de análise:
// ativa e com orçamento diário positivo configurado
func (c *CampaignSnapshot) EligibleForPacing() bool {
	if c == nil {
		return false
	}
	return c.Status == CampaignStatusEnabled && c.DailyBudgetMicros > 0
}
