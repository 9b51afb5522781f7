package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

const HoursPerDay = 24

// HourlyPattern é a distribuição normalizada do gasto diário em 24 slots de
// hora. A soma dos slots é sempre 1.0 (dentro da tolerância de ponto
// flutuante). É dado derivado: recalculado a cada execução, nunca persistido.
type HourlyPattern [HoursPerDay]float64

// UniformPattern retorna a distribuição uniforme 1/24 usada como fallback
// quando a campanha não tem histórico
func UniformPattern() HourlyPattern {
	var p HourlyPattern
	for h := range p {
		p[h] = 1.0 / HoursPerDay
	}
	return p
}

func (p HourlyPattern) Sum() float64 {
	total := 0.0
	for _, slot := range p {
		total += slot
	}
	return total
}

// ExpectedRatioUntil retorna a fração do gasto diário esperada até o instante
// com elapsedHours horas decorridas desde a meia-noite: slots das horas
// completas mais o slot da hora corrente ponderado pela fração decorrida.
// Limitado a 1.0.
func (p HourlyPattern) ExpectedRatioUntil(elapsedHours float64) float64 {
	if elapsedHours <= 0 {
		return 0
	}
	if elapsedHours >= HoursPerDay {
		return 1
	}

	full := int(elapsedHours)
	ratio := 0.0
	for h := 0; h < full; h++ {
		ratio += p[h]
	}
	ratio += p[full] * (elapsedHours - float64(full))

	if ratio > 1 {
		ratio = 1
	}
	return ratio
}

// RemainingShare retorna a fração do padrão ainda por vir depois do instante
// atual, incluindo o restante da hora corrente
func (p HourlyPattern) RemainingShare(elapsedHours float64) float64 {
	remaining := 1 - p.ExpectedRatioUntil(elapsedHours)
	if remaining < 0 {
		return 0
	}
	return remaining
}

type PacingAction string

const (
	PacingActionIncrease PacingAction = "increase"
	PacingActionDecrease PacingAction = "decrease"
	PacingActionHold     PacingAction = "hold"
)

type RecommendationState string

const (
	RecommendationStateOpen      RecommendationState = "open"
	RecommendationStateApplied   RecommendationState = "applied"
	RecommendationStateDismissed RecommendationState = "dismissed"
)

type RecommendationMode string

const (
	RecommendationModeDryRun RecommendationMode = "dry_run"
	RecommendationModeAuto   RecommendationMode = "auto"
)

// Recommendation é a entidade principal persistida pelo motor de pacing.
// Invariante: no máximo uma recomendação por (profile, campaign, day); a
// escrita é sempre um upsert idempotente nessa chave.
type Recommendation struct {
	ID                    string              `json:"id"`
	ProfileID             string              `json:"profile_id"`
	CampaignID            string              `json:"campaign_id"`
	Day                   time.Time           `json:"day"`
	BudgetMicros          int64               `json:"budget_micros"`
	SpendMicros           int64               `json:"spend_micros"`
	ForecastMicros        int64               `json:"forecast_micros"`
	PaceRatio             float64             `json:"pace_ratio"`
	Action                PacingAction        `json:"action"`
	SuggestedBudgetMicros *int64              `json:"suggested_budget_micros,omitempty"`
	Reason                string              `json:"reason"`
	Mode                  RecommendationMode  `json:"mode"`
	State                 RecommendationState `json:"state"`
	AppliedAt             *time.Time          `json:"applied_at,omitempty"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

// PacingForecast é o resultado da projeção de fim de dia de uma campanha
type PacingForecast struct {
	PaceRatio          float64 `json:"pace_ratio"`
	ForecastMicros     int64   `json:"forecast_micros"`
	ExpectedSpendRatio float64 `json:"expected_spend_ratio"`
	TrendPerHourMicros float64 `json:"trend_per_hour_micros"`
	LinearFallback     bool    `json:"linear_fallback"`
}

// PacingDecision é a saída pura do motor de decisão para uma campanha
type PacingDecision struct {
	Action                PacingAction `json:"action"`
	SuggestedBudgetMicros *int64       `json:"suggested_budget_micros,omitempty"`
	Reason                string       `json:"reason"`
}

type PacingRunStatus string

const (
	PacingRunStatusRunning   PacingRunStatus = "running"
	PacingRunStatusCompleted PacingRunStatus = "completed"
	PacingRunStatusFailed    PacingRunStatus = "failed"
)

// PacingRunScopeAll é o escopo usado quando a execução cobre todos os perfis
// ativos; caso contrário o escopo é o id do perfil
const PacingRunScopeAll = "all"

// PacingRun é o registro de auditoria de uma execução do lote. Criado no
// início, finalizado no fim, nunca alterado depois disso.
type PacingRun struct {
	ID                     string          `json:"id"`
	Scope                  string          `json:"scope"`
	StartedAt              time.Time       `json:"started_at"`
	FinishedAt             *time.Time      `json:"finished_at,omitempty"`
	CampaignsChecked       int             `json:"campaigns_checked"`
	RecommendationsCreated int             `json:"recommendations_created"`
	Status                 PacingRunStatus `json:"status"`
	ErrorMessage           *string         `json:"error_message,omitempty"`
}

type SkipReason string

const (
	SkipReasonCooldown        SkipReason = "cooldown"
	SkipReasonAnalysisError   SkipReason = "analysis_error"
	SkipReasonAlreadyResolved SkipReason = "already_resolved"
)

// CampaignOutcome é o resultado explícito da avaliação de uma campanha dentro
// do lote: uma recomendação ou um motivo de pulo. Uma campanha pulada nunca
// aborta o lote.
type CampaignOutcome struct {
	CampaignID     string          `json:"campaign_id"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
	Skip           SkipReason      `json:"skip,omitempty"`
	Err            error           `json:"-"`
}

type AlertLevel string

const (
	AlertLevelInfo AlertLevel = "info"
	AlertLevelWarn AlertLevel = "warn"
)

// AlertData carrega os campos estruturados do alerta de pacing. Campos fixos
// em vez de mapa aberto para evitar erros silenciosos de digitação de chave.
type AlertData struct {
	ProfileID             string       `json:"profile_id"`
	Day                   string       `json:"day"`
	Action                PacingAction `json:"action"`
	PaceRatio             float64      `json:"pace_ratio"`
	SuggestedBudgetMicros *int64       `json:"suggested_budget_micros,omitempty"`
}

// Alert é o aviso gerado para revisão humana quando uma recomendação não é
// elegível para aplicação automática
type Alert struct {
	ID         string     `json:"id"`
	EntityType string     `json:"entity_type"`
	EntityID   string     `json:"entity_id"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	Level      AlertLevel `json:"level"`
	Data       AlertData  `json:"data"`
	CreatedAt  time.Time  `json:"created_at"`
}

// BudgetAction é a requisição de mudança de orçamento enfileirada para o
// sistema externo de execução
type BudgetAction struct {
	ProfileID       string `json:"profile_id"`
	CampaignID      string `json:"campaign_id"`
	NewBudgetMicros int64  `json:"new_budget_micros"`
	IdempotencyKey  string `json:"idempotency_key"`
	Day             string `json:"day"`
}

// BudgetActionIdempotencyKey deriva a chave de idempotência da ação a partir
// de (profile, campaign, day, orçamento sugerido), de forma que um reenvio do
// dispatcher não gere submissão duplicada no sistema remoto
func BudgetActionIdempotencyKey(profileID, campaignID string, day time.Time, newBudgetMicros int64) string {
	raw := fmt.Sprintf("%s:%s:%s:%d", profileID, campaignID, day.Format(time.DateOnly), newBudgetMicros)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
