package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-pacing-api/internal/config"
	"github.com/vfg2006/budget-pacing-api/internal/usecases/pacing"
	"github.com/vfg2006/budget-pacing-api/pkg/log"
)

// PacingSyncService agenda a execução periódica do lote de pacing. O lote roda
// toda hora cheia para reavaliar as campanhas com os números mais recentes.
type PacingSyncService struct {
	scheduler           *gocron.Scheduler
	cronSchedule        string
	syncEnabled         bool
	pacingService       *pacing.Service
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewPacingSyncService(pacingService *pacing.Service, appConfig *config.Config) *PacingSyncService {
	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.PacingSync.CronSchedule,
		"sync_enabled":  appConfig.PacingSync.Enabled,
	}).Info("Configuração do agendador do lote de pacing carregada")

	return &PacingSyncService{
		scheduler:     scheduler,
		cronSchedule:  appConfig.PacingSync.CronSchedule,
		syncEnabled:   appConfig.PacingSync.Enabled,
		pacingService: pacingService,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *PacingSyncService) Start(ctx context.Context) error {
	if !s.syncEnabled {
		logrus.Info("Lote de pacing desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.cronSchedule).Info("Iniciando agendador do lote de pacing")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.runPacingBatch()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o lote de pacing: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do lote de pacing")
		s.scheduler.Stop()
	}()

	return nil
}

// runPacingBatch executa o lote para todos os perfis ativos. Execuções
// sobrepostas são ignoradas; a corretude sob sobreposição fica por conta do
// upsert idempotente das recomendações.
func (s *PacingSyncService) runPacingBatch() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Lote de pacing já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ctx, correlationID := log.WithCorrelationID(context.Background())

	logrus.WithField("correlation_id", correlationID).Info("Iniciando lote de pacing agendado")

	run, err := s.pacingService.RunAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Lote de pacing agendado falhou")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"run_id":                  run.ID,
		"duration":                duration.String(),
		"campaigns_checked":       run.CampaignsChecked,
		"recommendations_created": run.RecommendationsCreated,
	}).Info("Lote de pacing agendado concluído")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma execução do lote de pacing
func (s *PacingSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Lote de pacing já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do lote de pacing")
	go s.runPacingBatch()
}

// GetStatus retorna o status atual do agendador
func (s *PacingSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.syncEnabled,
		"sync_cron":              s.cronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
