package pacing

import (
	"time"

	"github.com/vfg2006/budget-pacing-api/internal/config"
)

// Policy concentra todos os números da política de pacing em um único lugar,
// de forma que os testes possam sobrescrever limiares sem tocar no código do
// motor. Os pesos de tendência e a mistura 70/30 reproduzem o comportamento
// calibrado em produção; são parâmetros ajustáveis, não invariantes.
type Policy struct {
	// Limiares de decisão
	OverpacePaceRatio      float64 // acima disso o ritmo pede redução
	UnderpacePaceRatio     float64 // abaixo disso o ritmo pede aumento
	OverspendForecastRatio float64 // projeção acima de budget × fator pede redução
	UnderspendForecastRatio float64 // projeção abaixo de budget × fator pede aumento

	// Fatores de alvo do orçamento sugerido
	DecreaseTargetFactor float64 // alvo = forecast × fator
	DecreaseFloorFactor  float64 // piso = budget × fator
	IncreaseTargetFactor float64 // alvo = forecast × fator
	IncreaseCeilFactor   float64 // teto = budget × fator

	// Projeção
	TrendWeights     [3]float64 // pesos das últimas 3 horas completas, da mais recente para a mais antiga
	TrendBlendWeight float64    // peso da tendência recente na mistura
	BaselineBlendWeight float64 // peso do padrão histórico na mistura

	// Trilhos de segurança e ciclo de vida
	MaxChangeRatio float64       // variação máxima do orçamento por recomendação
	Cooldown       time.Duration // janela mínima entre mudanças aplicadas
	HistoryWeeks   int           // semanas de histórico do mesmo dia da semana
}

func DefaultPolicy() Policy {
	return Policy{
		OverpacePaceRatio:       1.25,
		UnderpacePaceRatio:      0.75,
		OverspendForecastRatio:  1.10,
		UnderspendForecastRatio: 0.90,

		DecreaseTargetFactor: 0.9,
		DecreaseFloorFactor:  0.6,
		IncreaseTargetFactor: 1.1,
		IncreaseCeilFactor:   1.4,

		TrendWeights:        [3]float64{0.5, 0.3, 0.2},
		TrendBlendWeight:    0.7,
		BaselineBlendWeight: 0.3,

		MaxChangeRatio: 0.2,
		Cooldown:       2 * time.Hour,
		HistoryWeeks:   2,
	}
}

// PolicyFromConfig parte da política padrão e aplica os parâmetros expostos
// por variáveis de ambiente
func PolicyFromConfig(cfg config.Pacing) Policy {
	policy := DefaultPolicy()

	if cfg.CooldownMinutes > 0 {
		policy.Cooldown = time.Duration(cfg.CooldownMinutes) * time.Minute
	}
	if cfg.MaxChangeRatio > 0 {
		policy.MaxChangeRatio = cfg.MaxChangeRatio
	}
	if cfg.HistoryWeeks > 0 {
		policy.HistoryWeeks = cfg.HistoryWeeks
	}

	return policy
}
