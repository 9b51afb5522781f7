package pacing

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/budget-pacing-api/infrastructure/metrics"
	"github.com/vfg2006/budget-pacing-api/infrastructure/repository"
	"github.com/vfg2006/budget-pacing-api/internal/config"
	"github.com/vfg2006/budget-pacing-api/internal/domain"
	"github.com/vfg2006/budget-pacing-api/pkg/log"
	"github.com/vfg2006/budget-pacing-api/pkg/utils"
)

// Service orquestra o lote de pacing: enumera campanhas elegíveis, produz uma
// recomendação por campanha e despacha a ação ou o alerta correspondente.
// Falha em uma campanha nunca aborta o lote.
type Service struct {
	cfg    *config.Config
	policy Policy

	campaignRepo repository.CampaignRepository
	recRepo      repository.RecommendationRepository
	runRepo      repository.PacingRunRepository
	prefRepo     repository.PreferenceRepository
	alertRepo    repository.AlertRepository

	patternBuilder *PatternBuilder
	tracker        *SpendTracker
	forecaster     *Forecaster
	engine         *DecisionEngine

	publisher ActionPublisher
	metrics   *metrics.PacingMetrics

	// injetável nos testes
	now func() time.Time
}

func NewService(
	cfg *config.Config,
	campaignRepo repository.CampaignRepository,
	spendRepo repository.SpendRecordRepository,
	recRepo repository.RecommendationRepository,
	runRepo repository.PacingRunRepository,
	prefRepo repository.PreferenceRepository,
	alertRepo repository.AlertRepository,
	publisher ActionPublisher,
	pacingMetrics *metrics.PacingMetrics,
) *Service {
	policy := PolicyFromConfig(cfg.Pacing)

	return &Service{
		cfg:            cfg,
		policy:         policy,
		campaignRepo:   campaignRepo,
		recRepo:        recRepo,
		runRepo:        runRepo,
		prefRepo:       prefRepo,
		alertRepo:      alertRepo,
		patternBuilder: NewPatternBuilder(spendRepo, policy),
		tracker:        NewSpendTracker(spendRepo),
		forecaster:     NewForecaster(policy),
		engine:         NewDecisionEngine(policy),
		publisher:      publisher,
		metrics:        pacingMetrics,
		now:            time.Now,
	}
}

// RunAll executa o lote para todos os perfis ativos
func (s *Service) RunAll(ctx context.Context) (*domain.PacingRun, error) {
	profiles, err := s.campaignRepo.ListProfiles([]domain.ProfileStatus{domain.ProfileStatusActive})
	if err != nil {
		return s.failRun(ctx, domain.PacingRunScopeAll, fmt.Errorf("erro ao listar os perfis ativos: %w", err))
	}

	return s.run(ctx, domain.PacingRunScopeAll, profiles)
}

// RunForProfile executa o lote para um único perfil
func (s *Service) RunForProfile(ctx context.Context, profileID string) (*domain.PacingRun, error) {
	profile, err := s.campaignRepo.GetProfileByID(profileID)
	if err != nil {
		return s.failRun(ctx, profileID, fmt.Errorf("erro ao buscar o perfil %s: %w", profileID, err))
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return s.run(ctx, profileID, []*domain.Profile{profile})
}

func (s *Service) run(ctx context.Context, scope string, profiles []*domain.Profile) (*domain.PacingRun, error) {
	startedAt := s.now().UTC()

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o id da execução: %w", err)
	}

	run := &domain.PacingRun{
		ID:        runID,
		Scope:     scope,
		StartedAt: startedAt,
		Status:    domain.PacingRunStatusRunning,
	}
	if err := s.runRepo.Create(run); err != nil {
		return nil, fmt.Errorf("erro ao registrar a execução: %w", err)
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{"run_id": run.ID, "scope": scope})
	logger.Infof("Iniciando execução de pacing para %d perfil(is)", len(profiles))

	var enumErr error
	profilesEnumerated := 0

	for _, profile := range profiles {
		campaigns, err := s.campaignRepo.ListEligibleCampaigns(profile.ID)
		if err != nil {
			// Sem a lista de campanhas não há o que avaliar neste perfil;
			// os demais perfis continuam
			logger.WithError(err).Errorf("Erro ao listar campanhas elegíveis do perfil %s", profile.ID)
			if enumErr == nil {
				enumErr = fmt.Errorf("erro ao listar campanhas elegíveis do perfil %s: %w", profile.ID, err)
			}
			continue
		}
		profilesEnumerated++

		for _, campaign := range campaigns {
			// A consulta já filtra elegibilidade, mas o snapshot pode ter
			// envelhecido entre a sincronização e a avaliação
			if !campaign.EligibleForPacing() {
				logger.Debugf("Campanha %s fora dos critérios de pacing, ignorada", campaign.ID)
				continue
			}

			outcome := s.evaluateCampaign(ctx, profile, campaign)
			run.CampaignsChecked++
			if s.metrics != nil {
				s.metrics.CampaignsChecked.Inc()
			}

			switch {
			case outcome.Recommendation != nil:
				run.RecommendationsCreated++
				if s.metrics != nil {
					s.metrics.RecommendationsCreated.WithLabelValues(string(outcome.Recommendation.Action)).Inc()
				}
			case outcome.Skip != "":
				if outcome.Err != nil {
					logger.WithError(outcome.Err).Warnf("Campanha %s pulada: %s", campaign.ID, outcome.Skip)
				} else {
					logger.Debugf("Campanha %s pulada: %s", campaign.ID, outcome.Skip)
				}
				if s.metrics != nil {
					s.metrics.CampaignsSkipped.WithLabelValues(string(outcome.Skip)).Inc()
				}
			}
		}
	}

	finishedAt := s.now().UTC()
	run.FinishedAt = &finishedAt
	run.Status = domain.PacingRunStatusCompleted

	// Quando nenhum perfil do escopo pôde ser enumerado a execução inteira
	// falhou, não há resultado parcial para reportar como sucesso
	if len(profiles) > 0 && profilesEnumerated == 0 {
		msg := enumErr.Error()
		run.Status = domain.PacingRunStatusFailed
		run.ErrorMessage = &msg
	}

	if err := s.runRepo.Finalize(run); err != nil {
		return nil, fmt.Errorf("erro ao finalizar a execução: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RunsTotal.WithLabelValues(string(run.Status)).Inc()
		s.metrics.RunDuration.Observe(finishedAt.Sub(startedAt).Seconds())
	}

	if run.Status == domain.PacingRunStatusFailed {
		logger.WithError(enumErr).Error("Execução de pacing falhou: nenhum perfil do escopo pôde ser enumerado")
		return run, enumErr
	}

	logger.Infof(
		"Execução de pacing concluída. Campanhas avaliadas: %d, Recomendações criadas: %d",
		run.CampaignsChecked, run.RecommendationsCreated,
	)

	return run, nil
}

// failRun registra uma execução que falhou antes de avaliar qualquer campanha
func (s *Service) failRun(ctx context.Context, scope string, cause error) (*domain.PacingRun, error) {
	log.ForContext(ctx).WithError(cause).Error("Execução de pacing falhou antes de iniciar o lote")

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, cause
	}

	now := s.now().UTC()
	msg := cause.Error()
	run := &domain.PacingRun{
		ID:           runID,
		Scope:        scope,
		StartedAt:    now,
		FinishedAt:   &now,
		Status:       domain.PacingRunStatusFailed,
		ErrorMessage: &msg,
	}

	if createErr := s.runRepo.Create(run); createErr == nil {
		if finalizeErr := s.runRepo.Finalize(run); finalizeErr != nil {
			log.ForContext(ctx).WithError(finalizeErr).Error("Erro ao finalizar a execução falha")
		}
	}

	if s.metrics != nil {
		s.metrics.RunsTotal.WithLabelValues(string(domain.PacingRunStatusFailed)).Inc()
	}

	return run, cause
}

// evaluateCampaign roda o ciclo completo de análise de uma campanha e retorna
// um resultado explícito: recomendação persistida ou motivo de pulo
func (s *Service) evaluateCampaign(ctx context.Context, profile *domain.Profile, campaign *domain.CampaignSnapshot) domain.CampaignOutcome {
	now := s.now().UTC()
	outcome := domain.CampaignOutcome{CampaignID: campaign.ID}

	// Janela de resfriamento: uma mudança aplicada recentemente suspende a
	// reavaliação da campanha nesta execução
	lastApplied, err := s.recRepo.LatestAppliedAfter(profile.ID, campaign.ID, now.Add(-s.policy.Cooldown))
	if err != nil {
		outcome.Skip = domain.SkipReasonAnalysisError
		outcome.Err = fmt.Errorf("erro ao verificar o resfriamento: %w", err)
		return outcome
	}
	if lastApplied != nil {
		outcome.Skip = domain.SkipReasonCooldown
		return outcome
	}

	pattern, err := s.patternBuilder.Build(profile.ID, campaign.ID, now)
	if err != nil {
		outcome.Skip = domain.SkipReasonAnalysisError
		outcome.Err = fmt.Errorf("erro ao montar o padrão horário: %w", err)
		return outcome
	}

	spend, err := s.tracker.SpendToday(profile.ID, campaign.ID, now)
	if err != nil {
		outcome.Skip = domain.SkipReasonAnalysisError
		outcome.Err = fmt.Errorf("erro ao apurar o gasto do dia: %w", err)
		return outcome
	}

	input := ForecastInput{
		Pattern:      pattern,
		SpendMicros:  spend,
		BudgetMicros: campaign.DailyBudgetMicros,
		ElapsedHours: utils.ElapsedHoursUTC(now),
	}

	trailing, err := s.tracker.TrailingHours(profile.ID, campaign.ID, now)
	if err != nil {
		// Tendência indisponível não é fatal: a projeção degrada para a
		// extrapolação linear simples
		log.ForContext(ctx).WithError(err).Warnf("Tendência recente indisponível para a campanha %s", campaign.ID)
		input.TrendUnavailable = true
	} else {
		input.TrailingHours = trailing
	}

	forecast := s.forecaster.Forecast(input)
	decision := s.engine.Decide(forecast, campaign.DailyBudgetMicros)

	rec := &domain.Recommendation{
		ProfileID:             profile.ID,
		CampaignID:            campaign.ID,
		Day:                   utils.DayStartUTC(now),
		BudgetMicros:          campaign.DailyBudgetMicros,
		SpendMicros:           spend,
		ForecastMicros:        forecast.ForecastMicros,
		PaceRatio:             forecast.PaceRatio,
		Action:                decision.Action,
		SuggestedBudgetMicros: decision.SuggestedBudgetMicros,
		Reason:                decision.Reason,
		Mode:                  domain.RecommendationModeDryRun,
		State:                 domain.RecommendationStateOpen,
	}

	if err := s.recRepo.SaveOrUpdate(rec); err != nil {
		outcome.Skip = domain.SkipReasonAnalysisError
		outcome.Err = fmt.Errorf("erro ao gravar a recomendação: %w", err)
		return outcome
	}

	// O upsert preserva a linha do dia quando ela já foi aplicada ou
	// descartada; uma recomendação resolvida não volta para revisão
	if rec.State != domain.RecommendationStateOpen {
		outcome.Skip = domain.SkipReasonAlreadyResolved
		return outcome
	}

	if err := s.dispatch(ctx, profile, campaign, rec); err != nil {
		log.ForContext(ctx).WithError(err).Errorf("Erro ao despachar a recomendação %s", rec.ID)
	}

	outcome.Recommendation = rec
	return outcome
}

// dispatch decide o destino de uma recomendação não-hold: fila de execução
// automática quando o perfil/campanha tem a permissão, alerta humano caso
// contrário
func (s *Service) dispatch(ctx context.Context, profile *domain.Profile, campaign *domain.CampaignSnapshot, rec *domain.Recommendation) error {
	if rec.Action == domain.PacingActionHold || rec.SuggestedBudgetMicros == nil {
		return nil
	}

	autoApply := false
	if s.cfg.Pacing.AutoApplyEnabled {
		enabled, err := s.prefRepo.AutoApplyEnabled(profile.ID, campaign.ID)
		if err != nil {
			return fmt.Errorf("erro ao consultar a permissão de aplicação automática: %w", err)
		}
		autoApply = enabled
	}

	if autoApply {
		return s.applyAutomatically(ctx, rec)
	}

	return s.raiseAlert(ctx, rec)
}

func (s *Service) applyAutomatically(ctx context.Context, rec *domain.Recommendation) error {
	action := domain.BudgetAction{
		ProfileID:       rec.ProfileID,
		CampaignID:      rec.CampaignID,
		NewBudgetMicros: *rec.SuggestedBudgetMicros,
		IdempotencyKey:  domain.BudgetActionIdempotencyKey(rec.ProfileID, rec.CampaignID, rec.Day, *rec.SuggestedBudgetMicros),
		Day:             rec.Day.Format(time.DateOnly),
	}

	if err := s.publisher.PublishBudgetAction(ctx, action); err != nil {
		// A recomendação fica aberta; uma nova execução ou aprovação manual
		// ainda pode aplicá-la
		return fmt.Errorf("erro ao publicar a ação de orçamento: %w", err)
	}

	if s.metrics != nil {
		s.metrics.ActionsPublished.Inc()
	}

	appliedAt := s.now().UTC()
	transitioned, err := s.recRepo.Transition(rec.ID, domain.RecommendationStateApplied, domain.RecommendationModeAuto, &appliedAt)
	if err != nil {
		return fmt.Errorf("erro ao marcar a recomendação como aplicada: %w", err)
	}
	if transitioned {
		rec.State = domain.RecommendationStateApplied
		rec.Mode = domain.RecommendationModeAuto
		rec.AppliedAt = &appliedAt
	}

	return nil
}

func (s *Service) raiseAlert(ctx context.Context, rec *domain.Recommendation) error {
	level := domain.AlertLevelInfo
	if rec.Action == domain.PacingActionDecrease {
		level = domain.AlertLevelWarn
	}

	alertID, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar o id do alerta: %w", err)
	}

	alert := &domain.Alert{
		ID:         alertID,
		EntityType: "campaign",
		EntityID:   rec.CampaignID,
		Title:      fmt.Sprintf("Pacing sugere %s de orçamento", actionLabel(rec.Action)),
		Message:    rec.Reason,
		Level:      level,
		Data: domain.AlertData{
			ProfileID:             rec.ProfileID,
			Day:                   rec.Day.Format(time.DateOnly),
			Action:                rec.Action,
			PaceRatio:             rec.PaceRatio,
			SuggestedBudgetMicros: rec.SuggestedBudgetMicros,
		},
		CreatedAt: s.now().UTC(),
	}

	if err := s.alertRepo.Insert(alert); err != nil {
		return fmt.Errorf("erro ao gravar o alerta: %w", err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id": rec.CampaignID,
		"action":      rec.Action,
		"level":       level,
	}).Info("Alerta de pacing criado para revisão humana")

	return nil
}

func actionLabel(action domain.PacingAction) string {
	switch action {
	case domain.PacingActionIncrease:
		return "aumento"
	case domain.PacingActionDecrease:
		return "redução"
	default:
		return "manutenção"
	}
}

// Approve aplica manualmente uma recomendação aberta: publica a ação de
// orçamento e marca a recomendação como aplicada
func (s *Service) Approve(ctx context.Context, recommendationID string) (*domain.Recommendation, error) {
	rec, err := s.recRepo.GetByID(recommendationID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a recomendação: %w", err)
	}
	if rec == nil {
		return nil, ErrRecommendationNotFound
	}
	if rec.State != domain.RecommendationStateOpen {
		return nil, ErrInvalidStateTransition
	}
	if rec.Action == domain.PacingActionHold || rec.SuggestedBudgetMicros == nil {
		return nil, ErrNoSuggestedBudget
	}

	action := domain.BudgetAction{
		ProfileID:       rec.ProfileID,
		CampaignID:      rec.CampaignID,
		NewBudgetMicros: *rec.SuggestedBudgetMicros,
		IdempotencyKey:  domain.BudgetActionIdempotencyKey(rec.ProfileID, rec.CampaignID, rec.Day, *rec.SuggestedBudgetMicros),
		Day:             rec.Day.Format(time.DateOnly),
	}
	if err := s.publisher.PublishBudgetAction(ctx, action); err != nil {
		return nil, fmt.Errorf("erro ao publicar a ação de orçamento: %w", err)
	}

	appliedAt := s.now().UTC()
	transitioned, err := s.recRepo.Transition(rec.ID, domain.RecommendationStateApplied, rec.Mode, &appliedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao marcar a recomendação como aplicada: %w", err)
	}
	if !transitioned {
		return nil, ErrInvalidStateTransition
	}

	rec.State = domain.RecommendationStateApplied
	rec.AppliedAt = &appliedAt

	return rec, nil
}

// Dismiss descarta uma recomendação aberta após revisão humana
func (s *Service) Dismiss(ctx context.Context, recommendationID string) (*domain.Recommendation, error) {
	rec, err := s.recRepo.GetByID(recommendationID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a recomendação: %w", err)
	}
	if rec == nil {
		return nil, ErrRecommendationNotFound
	}

	transitioned, err := s.recRepo.Transition(rec.ID, domain.RecommendationStateDismissed, rec.Mode, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao descartar a recomendação: %w", err)
	}
	if !transitioned {
		return nil, ErrInvalidStateTransition
	}

	rec.State = domain.RecommendationStateDismissed

	return rec, nil
}

// SetAutoApply liga ou desliga a aplicação automática de uma campanha. A
// campanha precisa existir e pertencer ao perfil informado.
func (s *Service) SetAutoApply(profileID, campaignID string, enabled bool) error {
	campaign, err := s.campaignRepo.GetCampaignByID(campaignID)
	if err != nil {
		return fmt.Errorf("erro ao buscar a campanha: %w", err)
	}
	if campaign == nil || campaign.ProfileID != profileID {
		return ErrCampaignNotFound
	}

	if err := s.prefRepo.SetAutoApply(profileID, campaignID, enabled); err != nil {
		return fmt.Errorf("erro ao gravar a preferência de aplicação automática: %w", err)
	}

	return nil
}

// ListRecommendations retorna as recomendações de um perfil para um dia
func (s *Service) ListRecommendations(profileID string, day time.Time) ([]*domain.Recommendation, error) {
	return s.recRepo.ListByProfileAndDay(profileID, utils.DayStartUTC(day))
}

// ListRuns retorna as execuções mais recentes do lote
func (s *Service) ListRuns(limit uint64) ([]*domain.PacingRun, error) {
	return s.runRepo.ListRecent(limit)
}
