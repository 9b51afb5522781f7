package pacing

import (
	"fmt"
	"math"

	"github.com/vfg2006/budget-pacing-api/internal/domain"
	"github.com/vfg2006/budget-pacing-api/pkg/utils"
)

// DecisionEngine converte ritmo e projeção em uma ação com orçamento sugerido
// limitado. É função pura das entradas; toda busca de dados fica no serviço.
type DecisionEngine struct {
	policy Policy
}

func NewDecisionEngine(policy Policy) *DecisionEngine {
	return &DecisionEngine{policy: policy}
}

// Decide escolhe entre diminuir, aumentar ou manter o orçamento. A condição
// de redução é avaliada primeiro; se ambas disparassem ao mesmo tempo, reduzir
// ganha. O motivo carrega os números usados para que a decisão seja auditável
// sem recomputação.
func (e *DecisionEngine) Decide(forecast domain.PacingForecast, budgetMicros int64) domain.PacingDecision {
	budget := float64(budgetMicros)
	projected := float64(forecast.ForecastMicros)

	if forecast.PaceRatio > e.policy.OverpacePaceRatio || projected > budget*e.policy.OverspendForecastRatio {
		target := math.Max(projected*e.policy.DecreaseTargetFactor, budget*e.policy.DecreaseFloorFactor)
		suggested := e.clampBudget(budgetMicros, int64(target))

		return domain.PacingDecision{
			Action:                domain.PacingActionDecrease,
			SuggestedBudgetMicros: &suggested,
			Reason: fmt.Sprintf(
				"ritmo %.2f acima do esperado; projeção de %s contra orçamento de %s",
				forecast.PaceRatio, utils.FormatMicros(forecast.ForecastMicros), utils.FormatMicros(budgetMicros),
			),
		}
	}

	if forecast.PaceRatio < e.policy.UnderpacePaceRatio || projected < budget*e.policy.UnderspendForecastRatio {
		target := math.Min(projected*e.policy.IncreaseTargetFactor, budget*e.policy.IncreaseCeilFactor)
		suggested := e.clampBudget(budgetMicros, int64(target))

		return domain.PacingDecision{
			Action:                domain.PacingActionIncrease,
			SuggestedBudgetMicros: &suggested,
			Reason: fmt.Sprintf(
				"ritmo %.2f abaixo do esperado; projeção de %s contra orçamento de %s",
				forecast.PaceRatio, utils.FormatMicros(forecast.ForecastMicros), utils.FormatMicros(budgetMicros),
			),
		}
	}

	return domain.PacingDecision{
		Action: domain.PacingActionHold,
		Reason: fmt.Sprintf(
			"campanha dentro do ritmo esperado; ritmo %.2f, projeção de %s contra orçamento de %s",
			forecast.PaceRatio, utils.FormatMicros(forecast.ForecastMicros), utils.FormatMicros(budgetMicros),
		),
	}
}

// clampBudget limita o alvo a no máximo MaxChangeRatio de variação sobre o
// orçamento atual, em qualquer direção. É um segundo trilho de segurança por
// baixo dos próprios limites do motor de decisão.
func (e *DecisionEngine) clampBudget(current, target int64) int64 {
	maxDelta := int64(float64(current) * e.policy.MaxChangeRatio)

	delta := target - current
	if delta > maxDelta {
		delta = maxDelta
	}
	if delta < -maxDelta {
		delta = -maxDelta
	}

	return current + delta
}
