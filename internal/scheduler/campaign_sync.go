package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-pacing-api/infrastructure/integrator/amazon"
	"github.com/vfg2006/budget-pacing-api/infrastructure/repository"
	"github.com/vfg2006/budget-pacing-api/internal/config"
	"github.com/vfg2006/budget-pacing-api/internal/domain"
)

// CampaignSyncService mantém o diretório local de perfis e campanhas em dia
// com a API da Amazon Ads. O lote de pacing só enxerga o que está no diretório.
type CampaignSyncService struct {
	scheduler           *gocron.Scheduler
	cronSchedule        string
	syncEnabled         bool
	campaignRepo        repository.CampaignRepository
	amazonService       *amazon.AmazonIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewCampaignSyncService(
	campaignRepo repository.CampaignRepository,
	amazonService *amazon.AmazonIntegrator,
	appConfig *config.Config,
) *CampaignSyncService {
	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.CampaignSync.CronSchedule,
		"sync_enabled":  appConfig.CampaignSync.Enabled,
	}).Info("Configuração do agendador de sincronização de campanhas carregada")

	return &CampaignSyncService{
		scheduler:     scheduler,
		cronSchedule:  appConfig.CampaignSync.CronSchedule,
		syncEnabled:   appConfig.CampaignSync.Enabled,
		campaignRepo:  campaignRepo,
		amazonService: amazonService,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *CampaignSyncService) Start(ctx context.Context) error {
	if !s.syncEnabled {
		logrus.Info("Sincronização de campanhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cronSchedule).Info("Iniciando agendador de sincronização de campanhas")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.syncAllCampaigns()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a sincronização de campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllCampaigns atualiza o diretório local a partir da Amazon Ads. Falha em
// um perfil não interrompe os demais.
func (s *CampaignSyncService) syncAllCampaigns() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de campanhas já em andamento, ignorando")
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

	logrus.Info("Iniciando sincronização de perfis e campanhas da Amazon Ads")

	profiles, err := s.amazonService.GetProfiles()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar perfis na Amazon Ads")
		return
	}

	totalCampaigns := 0
	for _, profile := range profiles {
		if err := s.campaignRepo.SaveOrUpdateProfile(profile); err != nil {
			logrus.WithFields(logrus.Fields{
				"external_id": profile.ExternalID,
				"error":       err.Error(),
			}).Error("Erro ao salvar perfil no banco de dados")
			continue
		}

		synced := s.syncProfileCampaigns(profile)
		totalCampaigns += synced
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"profiles":  len(profiles),
		"campaigns": totalCampaigns,
	}).Info("Sincronização de perfis e campanhas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// syncProfileCampaigns sincroniza as campanhas de um perfil e retorna quantas
// foram gravadas
func (s *CampaignSyncService) syncProfileCampaigns(profile *domain.Profile) int {
	campaigns, err := s.amazonService.GetCampaigns(profile.ExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"external_id": profile.ExternalID,
			"error":       err.Error(),
		}).Error("Erro ao buscar campanhas do perfil na Amazon Ads")
		return 0
	}

	synced := 0
	for _, campaign := range campaigns {
		campaign.ProfileID = profile.ID

		if err := s.campaignRepo.SaveOrUpdateCampaign(campaign); err != nil {
			logrus.WithFields(logrus.Fields{
				"profile_id":  profile.ID,
				"external_id": campaign.ExternalID,
				"error":       err.Error(),
			}).Error("Erro ao salvar campanha no banco de dados")
			continue
		}
		synced++
	}

	logrus.WithFields(logrus.Fields{
		"profile_id": profile.ID,
		"campaigns":  synced,
	}).Info("Campanhas do perfil sincronizadas")

	return synced
}

// TriggerManualSync inicia manualmente uma sincronização de campanhas
func (s *CampaignSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de campanhas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de campanhas")
	go s.syncAllCampaigns()
}

// GetStatus retorna o status atual do agendador
func (s *CampaignSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.syncEnabled,
		"sync_cron":              s.cronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
