package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PacingMetrics reúne os coletores Prometheus do motor de pacing. Um único
// conjunto é registrado no registrador padrão e compartilhado pelos pacotes.
type PacingMetrics struct {
	RunsTotal              *prometheus.CounterVec
	CampaignsChecked       prometheus.Counter
	RecommendationsCreated *prometheus.CounterVec
	CampaignsSkipped       *prometheus.CounterVec
	ActionsPublished       prometheus.Counter
	RunDuration            prometheus.Histogram
}

func NewPacingMetrics() *PacingMetrics {
	return &PacingMetrics{
		RunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pacing",
			Name:      "runs_total",
			Help:      "Total de execuções do lote de pacing por status final",
		}, []string{"status"}),
		CampaignsChecked: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "pacing",
			Name:      "campaigns_checked_total",
			Help:      "Total de campanhas avaliadas pelo lote de pacing",
		}),
		RecommendationsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pacing",
			Name:      "recommendations_created_total",
			Help:      "Total de recomendações gravadas por ação sugerida",
		}, []string{"action"}),
		CampaignsSkipped: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pacing",
			Name:      "campaigns_skipped_total",
			Help:      "Total de campanhas puladas pelo lote por motivo",
		}, []string{"reason"}),
		ActionsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "pacing",
			Name:      "budget_actions_published_total",
			Help:      "Total de ações de orçamento publicadas para execução automática",
		}),
		RunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pacing",
			Name:      "run_duration_seconds",
			Help:      "Duração das execuções do lote de pacing",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
	}
}
