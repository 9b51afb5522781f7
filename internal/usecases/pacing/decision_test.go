package pacing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/budget-pacing-api/internal/domain"
)

func TestDecisionEngine_Decide(t *testing.T) {
	engine := NewDecisionEngine(DefaultPolicy())

	const budget = int64(100_000_000)

	tests := []struct {
		name     string
		forecast domain.PacingForecast
		validate func(t *testing.T, decision domain.PacingDecision)
	}{
		{
			name:     "Ritmo exatamente no limiar não dispara redução sozinho",
			forecast: domain.PacingForecast{PaceRatio: 1.25, ForecastMicros: 100_000_000},
			validate: func(t *testing.T, decision domain.PacingDecision) {
				// O limiar usa maior-que estrito; com projeção igual ao
				// orçamento a campanha cai em manutenção
				assert.Equal(t, domain.PacingActionHold, decision.Action)
				assert.Nil(t, decision.SuggestedBudgetMicros)
			},
		},
		{
			name:     "Ritmo logo acima do limiar dispara redução",
			forecast: domain.PacingForecast{PaceRatio: 1.2500001, ForecastMicros: 100_000_000},
			validate: func(t *testing.T, decision domain.PacingDecision) {
				assert.Equal(t, domain.PacingActionDecrease, decision.Action)
				assert.NotNil(t, decision.SuggestedBudgetMicros)
			},
		},
		{
			name:     "Projeção acima de 110% do orçamento dispara redução mesmo com ritmo normal",
			forecast: domain.PacingForecast{PaceRatio: 1.0, ForecastMicros: 115_000_000},
			validate: func(t *testing.T, decision domain.PacingDecision) {
				assert.Equal(t, domain.PacingActionDecrease, decision.Action)
			},
		},
		{
			name:     "Campanha gastando demais - redução com trilhos de segurança",
			forecast: domain.PacingForecast{PaceRatio: 1.6, ForecastMicros: 160_000_000},
			validate: func(t *testing.T, decision domain.PacingDecision) {
				assert.Equal(t, domain.PacingActionDecrease, decision.Action)
				assert.NotNil(t, decision.SuggestedBudgetMicros)
				suggested := *decision.SuggestedBudgetMicros
				// Nunca mais de 20% de variação nem abaixo de 60% do orçamento
				assert.LessOrEqual(t, absInt64(suggested-budget), int64(float64(budget)*0.2))
				assert.GreaterOrEqual(t, suggested, int64(float64(budget)*0.6))
			},
		},
		{
			name:     "Campanha gastando de menos - aumento limitado a 20%",
			forecast: domain.PacingForecast{PaceRatio: 0.5, ForecastMicros: 50_000_000},
			validate: func(t *testing.T, decision domain.PacingDecision) {
				assert.Equal(t, domain.PacingActionIncrease, decision.Action)
				assert.NotNil(t, decision.SuggestedBudgetMicros)
				// Alvo 55M fica abaixo do atual; o clamp segura em -20%
				assert.Equal(t, int64(80_000_000), *decision.SuggestedBudgetMicros)
			},
		},
		{
			name:     "Projeção abaixo de 90% do orçamento dispara aumento",
			forecast: domain.PacingForecast{PaceRatio: 1.0, ForecastMicros: 85_000_000},
			validate: func(t *testing.T, decision domain.PacingDecision) {
				assert.Equal(t, domain.PacingActionIncrease, decision.Action)
			},
		},
		{
			name:     "Campanha no ritmo - manutenção sem orçamento sugerido",
			forecast: domain.PacingForecast{PaceRatio: 1.0, ForecastMicros: 100_000_000},
			validate: func(t *testing.T, decision domain.PacingDecision) {
				assert.Equal(t, domain.PacingActionHold, decision.Action)
				assert.Nil(t, decision.SuggestedBudgetMicros)
				assert.NotEmpty(t, decision.Reason)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := engine.Decide(tt.forecast, budget)

			assert.NotEmpty(t, decision.Reason)
			tt.validate(t, decision)
		})
	}
}

func TestDecisionEngine_clampBudget(t *testing.T) {
	engine := NewDecisionEngine(DefaultPolicy())

	tests := []struct {
		name     string
		current  int64
		target   int64
		expected int64
	}{
		{name: "Alvo dentro da faixa passa intacto", current: 100, target: 110, expected: 110},
		{name: "Alvo acima do teto é limitado a +20%", current: 100, target: 180, expected: 120},
		{name: "Alvo abaixo do piso é limitado a -20%", current: 100, target: 40, expected: 80},
		{name: "Alvo igual ao atual não muda", current: 100, target: 100, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.clampBudget(tt.current, tt.target))
		})
	}
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
