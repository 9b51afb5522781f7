package pacing

import (
	"github.com/vfg2006/budget-pacing-api/internal/domain"
)

// ForecastInput reúne tudo que a projeção precisa, já buscado pelo adaptador
// de dados. A projeção em si é uma função pura de entrada para saída.
type ForecastInput struct {
	Pattern       domain.HourlyPattern
	SpendMicros   int64
	BudgetMicros  int64
	ElapsedHours  float64
	TrailingHours [trailingHourCount]TrailingHour
	// TrendUnavailable indica falha na leitura das últimas horas; a projeção
	// degrada para a extrapolação linear simples
	TrendUnavailable bool
}

// Forecaster projeta o gasto de fim de dia combinando o padrão histórico com
// a tendência das horas mais recentes
type Forecaster struct {
	policy Policy
}

func NewForecaster(policy Policy) *Forecaster {
	return &Forecaster{policy: policy}
}

func (f *Forecaster) Forecast(in ForecastInput) domain.PacingForecast {
	spend := float64(in.SpendMicros)
	budget := float64(in.BudgetMicros)

	expected := in.Pattern.ExpectedRatioUntil(in.ElapsedHours)

	// Denominador zero significa cedo demais no dia para haver expectativa
	// significativa; o ritmo degrada para zero em vez de dividir por zero
	paceRatio := 0.0
	if expectedSpend := budget * expected; expectedSpend > 0 {
		paceRatio = spend / expectedSpend
	}

	hoursRemaining := float64(domain.HoursPerDay) - in.ElapsedHours
	if hoursRemaining <= 0 {
		// Fim do dia: o gasto observado é a projeção, sem extrapolação
		return domain.PacingForecast{
			PaceRatio:          paceRatio,
			ForecastMicros:     in.SpendMicros,
			ExpectedSpendRatio: expected,
		}
	}

	if in.TrendUnavailable {
		return domain.PacingForecast{
			PaceRatio:          paceRatio,
			ForecastMicros:     f.linearForecast(in),
			ExpectedSpendRatio: expected,
			LinearFallback:     true,
		}
	}

	trendPerHour := f.trendPerHour(in.TrailingHours)

	// Projeta o total do dia a partir do ritmo observado e pega a fatia do
	// padrão que ainda está por vir
	baselineRemainder := 0.0
	if expected > 0 {
		baselineRemainder = (spend / expected) * in.Pattern.RemainingShare(in.ElapsedHours)
	}

	remaining := f.policy.TrendBlendWeight*(trendPerHour*hoursRemaining) +
		f.policy.BaselineBlendWeight*baselineRemainder
	if remaining < 0 {
		remaining = 0
	}

	return domain.PacingForecast{
		PaceRatio:          paceRatio,
		ForecastMicros:     in.SpendMicros + int64(remaining),
		ExpectedSpendRatio: expected,
		TrendPerHourMicros: trendPerHour,
	}
}

// trendPerHour é a média ponderada do gasto das últimas horas completas.
// Horas ausentes contribuem zero e saem do denominador de normalização.
func (f *Forecaster) trendPerHour(trailing [trailingHourCount]TrailingHour) float64 {
	weightedSum := 0.0
	weightTotal := 0.0

	for i, hour := range trailing {
		if !hour.Present {
			continue
		}
		weightedSum += f.policy.TrendWeights[i] * float64(hour.SpendMicros)
		weightTotal += f.policy.TrendWeights[i]
	}

	if weightTotal == 0 {
		return 0
	}
	return weightedSum / weightTotal
}

// linearForecast extrapola o gasto observado linearmente até o fim do dia
func (f *Forecaster) linearForecast(in ForecastInput) int64 {
	if in.ElapsedHours <= 0 {
		return in.SpendMicros
	}
	return int64(float64(in.SpendMicros) * (float64(domain.HoursPerDay) / in.ElapsedHours))
}
