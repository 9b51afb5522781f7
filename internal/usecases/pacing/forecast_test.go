package pacing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/budget-pacing-api/internal/domain"
)

func TestForecaster_Forecast(t *testing.T) {
	forecaster := NewForecaster(DefaultPolicy())

	tests := []struct {
		name     string
		input    ForecastInput
		validate func(t *testing.T, forecast domain.PacingForecast)
	}{
		{
			name: "Campanha no ritmo - metade do orçamento na metade do dia",
			input: ForecastInput{
				Pattern:      domain.UniformPattern(),
				SpendMicros:  50_000_000,
				BudgetMicros: 100_000_000,
				ElapsedHours: 12,
				TrailingHours: [trailingHourCount]TrailingHour{
					{SpendMicros: 4_166_667, Present: true},
					{SpendMicros: 4_166_667, Present: true},
					{SpendMicros: 4_166_667, Present: true},
				},
			},
			validate: func(t *testing.T, forecast domain.PacingForecast) {
				assert.InDelta(t, 0.5, forecast.ExpectedSpendRatio, 1e-9)
				assert.InDelta(t, 1.0, forecast.PaceRatio, 1e-9)
				// Tendência e padrão apontam para o mesmo total de fim de dia
				assert.InDelta(t, 100_000_000, float64(forecast.ForecastMicros), 200_000)
				assert.False(t, forecast.LinearFallback)
			},
		},
		{
			name: "Fim do dia - projeção é o gasto observado, sem extrapolação",
			input: ForecastInput{
				Pattern:      domain.UniformPattern(),
				SpendMicros:  87_000_000,
				BudgetMicros: 100_000_000,
				ElapsedHours: 24,
			},
			validate: func(t *testing.T, forecast domain.PacingForecast) {
				assert.Equal(t, int64(87_000_000), forecast.ForecastMicros)
			},
		},
		{
			name: "Começo do dia - expectativa zero degrada o ritmo para zero",
			input: ForecastInput{
				Pattern:      domain.UniformPattern(),
				SpendMicros:  0,
				BudgetMicros: 100_000_000,
				ElapsedHours: 0,
			},
			validate: func(t *testing.T, forecast domain.PacingForecast) {
				assert.Zero(t, forecast.PaceRatio)
				assert.Zero(t, forecast.ForecastMicros)
			},
		},
		{
			name: "Orçamento zero não divide por zero",
			input: ForecastInput{
				Pattern:      domain.UniformPattern(),
				SpendMicros:  10_000_000,
				BudgetMicros: 0,
				ElapsedHours: 12,
			},
			validate: func(t *testing.T, forecast domain.PacingForecast) {
				assert.Zero(t, forecast.PaceRatio)
			},
		},
		{
			name: "Horas ausentes saem do denominador da tendência",
			input: ForecastInput{
				Pattern:      domain.UniformPattern(),
				SpendMicros:  30_000_000,
				BudgetMicros: 100_000_000,
				ElapsedHours: 12,
				TrailingHours: [trailingHourCount]TrailingHour{
					{SpendMicros: 10_000_000, Present: true},
					{Present: false},
					{SpendMicros: 20_000_000, Present: true},
				},
			},
			validate: func(t *testing.T, forecast domain.PacingForecast) {
				// (0.5×10M + 0.2×20M) / (0.5 + 0.2)
				assert.InDelta(t, 12_857_142.857, forecast.TrendPerHourMicros, 1.0)
			},
		},
		{
			name: "Todas as horas ausentes zeram a tendência",
			input: ForecastInput{
				Pattern:      domain.UniformPattern(),
				SpendMicros:  30_000_000,
				BudgetMicros: 100_000_000,
				ElapsedHours: 2,
			},
			validate: func(t *testing.T, forecast domain.PacingForecast) {
				assert.Zero(t, forecast.TrendPerHourMicros)
				// Resta apenas a parcela do padrão histórico
				assert.Greater(t, forecast.ForecastMicros, int64(30_000_000))
			},
		},
		{
			name: "Falha na tendência cai para a extrapolação linear",
			input: ForecastInput{
				Pattern:          domain.UniformPattern(),
				SpendMicros:      30_000_000,
				BudgetMicros:     100_000_000,
				ElapsedHours:     6,
				TrendUnavailable: true,
			},
			validate: func(t *testing.T, forecast domain.PacingForecast) {
				assert.True(t, forecast.LinearFallback)
				// 30M × (24 / 6)
				assert.Equal(t, int64(120_000_000), forecast.ForecastMicros)
			},
		},
		{
			name: "Extrapolação linear com zero horas decorridas não divide por zero",
			input: ForecastInput{
				Pattern:          domain.UniformPattern(),
				SpendMicros:      5_000_000,
				BudgetMicros:     100_000_000,
				ElapsedHours:     0,
				TrendUnavailable: true,
			},
			validate: func(t *testing.T, forecast domain.PacingForecast) {
				assert.Equal(t, int64(5_000_000), forecast.ForecastMicros)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forecast := forecaster.Forecast(tt.input)

			tt.validate(t, forecast)
		})
	}
}

func TestHourlyPattern_ExpectedRatioUntil(t *testing.T) {
	uniform := domain.UniformPattern()

	tests := []struct {
		name     string
		elapsed  float64
		expected float64
	}{
		{name: "Zero horas", elapsed: 0, expected: 0},
		{name: "Hora fracionária", elapsed: 0.5, expected: 0.5 / 24.0},
		{name: "Meio do dia", elapsed: 12, expected: 0.5},
		{name: "Dia completo", elapsed: 24, expected: 1},
		{name: "Além do dia fica limitado a 1", elapsed: 30, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, uniform.ExpectedRatioUntil(tt.elapsed), 1e-9)
		})
	}
}
