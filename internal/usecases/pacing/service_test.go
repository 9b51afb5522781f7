package pacing

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/budget-pacing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/budget-pacing-api/internal/config"
	"github.com/vfg2006/budget-pacing-api/internal/domain"
	"github.com/vfg2006/budget-pacing-api/internal/usecases/pacing/mocks"
	"github.com/vfg2006/budget-pacing-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

type serviceMocks struct {
	campaignRepo *repomocks.MockCampaignRepository
	spendRepo    *repomocks.MockSpendRecordRepository
	recRepo      *repomocks.MockRecommendationRepository
	runRepo      *repomocks.MockPacingRunRepository
	prefRepo     *repomocks.MockPreferenceRepository
	alertRepo    *repomocks.MockAlertRepository
	publisher    *mocks.MockActionPublisher
}

func newTestService(ctrl *gomock.Controller, cfg *config.Config, now time.Time) (*Service, *serviceMocks) {
	m := &serviceMocks{
		campaignRepo: repomocks.NewMockCampaignRepository(ctrl),
		spendRepo:    repomocks.NewMockSpendRecordRepository(ctrl),
		recRepo:      repomocks.NewMockRecommendationRepository(ctrl),
		runRepo:      repomocks.NewMockPacingRunRepository(ctrl),
		prefRepo:     repomocks.NewMockPreferenceRepository(ctrl),
		alertRepo:    repomocks.NewMockAlertRepository(ctrl),
		publisher:    mocks.NewMockActionPublisher(ctrl),
	}

	policy := PolicyFromConfig(cfg.Pacing)

	service := &Service{
		cfg:            cfg,
		policy:         policy,
		campaignRepo:   m.campaignRepo,
		recRepo:        m.recRepo,
		runRepo:        m.runRepo,
		prefRepo:       m.prefRepo,
		alertRepo:      m.alertRepo,
		patternBuilder: NewPatternBuilder(m.spendRepo, policy),
		tracker:        NewSpendTracker(m.spendRepo),
		forecaster:     NewForecaster(policy),
		engine:         NewDecisionEngine(policy),
		publisher:      m.publisher,
		now:            func() time.Time { return now },
	}

	return service, m
}

// Datas de referência compartilhadas pelos testes: meio-dia UTC de uma quarta
var (
	testNow         = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	testDayStart    = time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	testDayEnd      = time.Date(2024, 5, 15, 23, 59, 59, 0, time.UTC)
	testWeekAgo     = time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	testTwoWeeksAgo = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
)

func testProfile() *domain.Profile {
	return &domain.Profile{ID: "PROF01", ExternalID: "123456", Name: "Loja A", Status: domain.ProfileStatusActive}
}

func testCampaign(id string) *domain.CampaignSnapshot {
	return &domain.CampaignSnapshot{
		ID:                id,
		ProfileID:         "PROF01",
		ExternalID:        "ext-" + id,
		Name:              "Campanha " + id,
		DailyBudgetMicros: 100_000_000,
		Status:            domain.CampaignStatusEnabled,
	}
}

// expectOnPaceCampaign monta as expectativas de uma campanha no ritmo: metade
// do orçamento gasto na metade do dia, saindo em manutenção
func expectOnPaceCampaign(m *serviceMocks, campaignID string) {
	m.recRepo.EXPECT().
		LatestAppliedAfter("PROF01", campaignID, testNow.Add(-2*time.Hour)).
		Return(nil, nil)
	m.spendRepo.EXPECT().
		HourlyTotals("PROF01", campaignID, testWeekAgo).
		Return(map[int]int64{}, nil)
	m.spendRepo.EXPECT().
		HourlyTotals("PROF01", campaignID, testTwoWeeksAgo).
		Return(map[int]int64{}, nil)
	m.spendRepo.EXPECT().
		SumSpendInRange("PROF01", campaignID, testDayStart, testDayEnd).
		Return(int64(50_000_000), nil)
	m.spendRepo.EXPECT().
		HourlyTotals("PROF01", campaignID, testDayStart).
		Return(map[int]int64{9: 4_166_667, 10: 4_166_667, 11: 4_166_667}, nil)
	m.recRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(rec *domain.Recommendation) error {
			rec.ID = "REC-" + campaignID
			return nil
		})
}

func TestService_RunForProfile_IsolamentoDeFalhas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{Pacing: config.Pacing{CooldownMinutes: 120, MaxChangeRatio: 0.2, HistoryWeeks: 2}}
	service, m := newTestService(ctrl, cfg, testNow)

	m.campaignRepo.EXPECT().GetProfileByID("PROF01").Return(testProfile(), nil)
	m.campaignRepo.EXPECT().
		ListEligibleCampaigns("PROF01").
		Return([]*domain.CampaignSnapshot{testCampaign("CAMP01"), testCampaign("CAMP02"), testCampaign("CAMP03")}, nil)

	m.runRepo.EXPECT().Create(gomock.Any()).Return(nil)

	// Campanhas 1 e 3 avaliadas normalmente
	expectOnPaceCampaign(m, "CAMP01")
	expectOnPaceCampaign(m, "CAMP03")

	// Campanha 2 falha na leitura do histórico de gasto
	m.recRepo.EXPECT().
		LatestAppliedAfter("PROF01", "CAMP02", testNow.Add(-2*time.Hour)).
		Return(nil, nil)
	m.spendRepo.EXPECT().
		HourlyTotals("PROF01", "CAMP02", testWeekAgo).
		Return(nil, assert.AnError)

	var finalized *domain.PacingRun
	m.runRepo.EXPECT().
		Finalize(gomock.Any()).
		DoAndReturn(func(run *domain.PacingRun) error {
			finalized = run
			return nil
		})

	run, err := service.RunForProfile(context.Background(), "PROF01")

	assert.NoError(t, err)
	assert.NotNil(t, run)
	assert.Equal(t, domain.PacingRunStatusCompleted, run.Status)
	assert.Equal(t, 3, run.CampaignsChecked)
	assert.Equal(t, 2, run.RecommendationsCreated)
	assert.Equal(t, finalized, run)
}

func TestService_RunForProfile_Resfriamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{Pacing: config.Pacing{CooldownMinutes: 120, MaxChangeRatio: 0.2, HistoryWeeks: 2}}

	tests := []struct {
		name            string
		appliedAt       time.Time
		expectedCreated int
	}{
		{
			name:            "Mudança aplicada há 30 minutos suspende a campanha",
			appliedAt:       testNow.Add(-30 * time.Minute),
			expectedCreated: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(ctrl, cfg, testNow)

			m.campaignRepo.EXPECT().GetProfileByID("PROF01").Return(testProfile(), nil)
			m.campaignRepo.EXPECT().
				ListEligibleCampaigns("PROF01").
				Return([]*domain.CampaignSnapshot{testCampaign("CAMP01")}, nil)
			m.runRepo.EXPECT().Create(gomock.Any()).Return(nil)
			m.runRepo.EXPECT().Finalize(gomock.Any()).Return(nil)

			applied := &domain.Recommendation{
				ID:        "REC-OLD",
				State:     domain.RecommendationStateApplied,
				AppliedAt: &tt.appliedAt,
			}
			m.recRepo.EXPECT().
				LatestAppliedAfter("PROF01", "CAMP01", testNow.Add(-2*time.Hour)).
				Return(applied, nil)

			run, err := service.RunForProfile(context.Background(), "PROF01")

			assert.NoError(t, err)
			assert.Equal(t, 1, run.CampaignsChecked)
			assert.Equal(t, tt.expectedCreated, run.RecommendationsCreated)
		})
	}

	t.Run("Mudança aplicada há 3 horas libera a campanha de novo", func(t *testing.T) {
		service, m := newTestService(ctrl, cfg, testNow)

		m.campaignRepo.EXPECT().GetProfileByID("PROF01").Return(testProfile(), nil)
		m.campaignRepo.EXPECT().
			ListEligibleCampaigns("PROF01").
			Return([]*domain.CampaignSnapshot{testCampaign("CAMP01")}, nil)
		m.runRepo.EXPECT().Create(gomock.Any()).Return(nil)
		m.runRepo.EXPECT().Finalize(gomock.Any()).Return(nil)

		// A janela consultada começa 2h atrás; uma aplicação de 3h atrás
		// fica fora dela e a consulta volta vazia
		expectOnPaceCampaign(m, "CAMP01")

		run, err := service.RunForProfile(context.Background(), "PROF01")

		assert.NoError(t, err)
		assert.Equal(t, 1, run.CampaignsChecked)
		assert.Equal(t, 1, run.RecommendationsCreated)
	})
}

func TestService_RunForProfile_AplicacaoAutomatica(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{Pacing: config.Pacing{CooldownMinutes: 120, MaxChangeRatio: 0.2, HistoryWeeks: 2, AutoApplyEnabled: true}}
	service, m := newTestService(ctrl, cfg, testNow)

	m.campaignRepo.EXPECT().GetProfileByID("PROF01").Return(testProfile(), nil)
	m.campaignRepo.EXPECT().
		ListEligibleCampaigns("PROF01").
		Return([]*domain.CampaignSnapshot{testCampaign("CAMP01")}, nil)
	m.runRepo.EXPECT().Create(gomock.Any()).Return(nil)
	m.runRepo.EXPECT().Finalize(gomock.Any()).Return(nil)

	// Campanha gastando demais: 80% do orçamento na metade do dia
	m.recRepo.EXPECT().
		LatestAppliedAfter("PROF01", "CAMP01", testNow.Add(-2*time.Hour)).
		Return(nil, nil)
	m.spendRepo.EXPECT().
		HourlyTotals("PROF01", "CAMP01", testWeekAgo).
		Return(map[int]int64{}, nil)
	m.spendRepo.EXPECT().
		HourlyTotals("PROF01", "CAMP01", testTwoWeeksAgo).
		Return(map[int]int64{}, nil)
	m.spendRepo.EXPECT().
		SumSpendInRange("PROF01", "CAMP01", testDayStart, testDayEnd).
		Return(int64(80_000_000), nil)
	m.spendRepo.EXPECT().
		HourlyTotals("PROF01", "CAMP01", testDayStart).
		Return(map[int]int64{9: 6_666_667, 10: 6_666_667, 11: 6_666_667}, nil)

	var saved *domain.Recommendation
	m.recRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(rec *domain.Recommendation) error {
			rec.ID = "REC001"
			saved = rec
			return nil
		})

	m.prefRepo.EXPECT().AutoApplyEnabled("PROF01", "CAMP01").Return(true, nil)

	var published domain.BudgetAction
	m.publisher.EXPECT().
		PublishBudgetAction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, action domain.BudgetAction) error {
			published = action
			return nil
		})

	m.recRepo.EXPECT().
		Transition("REC001", domain.RecommendationStateApplied, domain.RecommendationModeAuto, gomock.Not(gomock.Nil())).
		Return(true, nil)

	run, err := service.RunForProfile(context.Background(), "PROF01")

	assert.NoError(t, err)
	assert.Equal(t, 1, run.RecommendationsCreated)

	assert.NotNil(t, saved)
	assert.Equal(t, domain.PacingActionDecrease, saved.Action)
	assert.Equal(t, domain.RecommendationStateApplied, saved.State)
	assert.Equal(t, domain.RecommendationModeAuto, saved.Mode)

	// O trilho de 20% segura o orçamento sugerido em 120M
	assert.Equal(t, int64(120_000_000), published.NewBudgetMicros)
	assert.Equal(t, "CAMP01", published.CampaignID)
	assert.Equal(
		t,
		domain.BudgetActionIdempotencyKey("PROF01", "CAMP01", testDayStart, 120_000_000),
		published.IdempotencyKey,
	)
}

func TestService_RunForProfile_AlertaSemPermissao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Flag global ligada, mas a campanha não tem a permissão individual
	cfg := &config.Config{Pacing: config.Pacing{CooldownMinutes: 120, MaxChangeRatio: 0.2, HistoryWeeks: 2, AutoApplyEnabled: true}}
	service, m := newTestService(ctrl, cfg, testNow)

	m.campaignRepo.EXPECT().GetProfileByID("PROF01").Return(testProfile(), nil)
	m.campaignRepo.EXPECT().
		ListEligibleCampaigns("PROF01").
		Return([]*domain.CampaignSnapshot{testCampaign("CAMP01")}, nil)
	m.runRepo.EXPECT().Create(gomock.Any()).Return(nil)
	m.runRepo.EXPECT().Finalize(gomock.Any()).Return(nil)

	m.recRepo.EXPECT().
		LatestAppliedAfter("PROF01", "CAMP01", testNow.Add(-2*time.Hour)).
		Return(nil, nil)
	m.spendRepo.EXPECT().
		HourlyTotals("PROF01", "CAMP01", testWeekAgo).
		Return(map[int]int64{}, nil)
	m.spendRepo.EXPECT().
		HourlyTotals("PROF01", "CAMP01", testTwoWeeksAgo).
		Return(map[int]int64{}, nil)
	m.spendRepo.EXPECT().
		SumSpendInRange("PROF01", "CAMP01", testDayStart, testDayEnd).
		Return(int64(80_000_000), nil)
	m.spendRepo.EXPECT().
		HourlyTotals("PROF01", "CAMP01", testDayStart).
		Return(map[int]int64{9: 6_666_667, 10: 6_666_667, 11: 6_666_667}, nil)
	m.recRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(rec *domain.Recommendation) error {
			rec.ID = "REC001"
			return nil
		})

	m.prefRepo.EXPECT().AutoApplyEnabled("PROF01", "CAMP01").Return(false, nil)

	var alert *domain.Alert
	m.alertRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(a *domain.Alert) error {
			alert = a
			return nil
		})

	run, err := service.RunForProfile(context.Background(), "PROF01")

	assert.NoError(t, err)
	assert.Equal(t, 1, run.RecommendationsCreated)

	// Redução gera alerta de nível warn; a recomendação fica aberta em dry_run
	assert.NotNil(t, alert)
	assert.Equal(t, domain.AlertLevelWarn, alert.Level)
	assert.Equal(t, "campaign", alert.EntityType)
	assert.Equal(t, "CAMP01", alert.EntityID)
	assert.Equal(t, domain.PacingActionDecrease, alert.Data.Action)
}

func TestService_RunForProfile_RecomendacaoResolvidaNaoReabre(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Aplicação automática ligada: se a recomendação fosse reaberta o
	// despacho publicaria uma nova ação
	cfg := &config.Config{Pacing: config.Pacing{CooldownMinutes: 120, MaxChangeRatio: 0.2, HistoryWeeks: 2, AutoApplyEnabled: true}}
	service, m := newTestService(ctrl, cfg, testNow)

	m.campaignRepo.EXPECT().GetProfileByID("PROF01").Return(testProfile(), nil)
	m.campaignRepo.EXPECT().
		ListEligibleCampaigns("PROF01").
		Return([]*domain.CampaignSnapshot{testCampaign("CAMP01")}, nil)
	m.runRepo.EXPECT().Create(gomock.Any()).Return(nil)
	m.runRepo.EXPECT().Finalize(gomock.Any()).Return(nil)

	// Campanha gastando demais: sairia em redução se a linha estivesse aberta
	m.recRepo.EXPECT().
		LatestAppliedAfter("PROF01", "CAMP01", testNow.Add(-2*time.Hour)).
		Return(nil, nil)
	m.spendRepo.EXPECT().
		HourlyTotals("PROF01", "CAMP01", testWeekAgo).
		Return(map[int]int64{}, nil)
	m.spendRepo.EXPECT().
		HourlyTotals("PROF01", "CAMP01", testTwoWeeksAgo).
		Return(map[int]int64{}, nil)
	m.spendRepo.EXPECT().
		SumSpendInRange("PROF01", "CAMP01", testDayStart, testDayEnd).
		Return(int64(80_000_000), nil)
	m.spendRepo.EXPECT().
		HourlyTotals("PROF01", "CAMP01", testDayStart).
		Return(map[int]int64{9: 6_666_667, 10: 6_666_667, 11: 6_666_667}, nil)

	// A linha do dia foi descartada por um humano; o upsert preserva e devolve
	// o conteúdo gravado
	m.recRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(rec *domain.Recommendation) error {
			rec.ID = "REC-OLD"
			rec.State = domain.RecommendationStateDismissed
			return nil
		})

	// Nenhuma expectativa de preferência, publicação, alerta ou transição:
	// a recomendação resolvida não volta para o fluxo

	run, err := service.RunForProfile(context.Background(), "PROF01")

	assert.NoError(t, err)
	assert.Equal(t, domain.PacingRunStatusCompleted, run.Status)
	assert.Equal(t, 1, run.CampaignsChecked)
	assert.Equal(t, 0, run.RecommendationsCreated)
}

func TestService_RunForProfile_FalhaAoListarCampanhas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{Pacing: config.Pacing{CooldownMinutes: 120, MaxChangeRatio: 0.2, HistoryWeeks: 2}}
	service, m := newTestService(ctrl, cfg, testNow)

	m.campaignRepo.EXPECT().GetProfileByID("PROF01").Return(testProfile(), nil)
	m.campaignRepo.EXPECT().
		ListEligibleCampaigns("PROF01").
		Return(nil, assert.AnError)

	m.runRepo.EXPECT().Create(gomock.Any()).Return(nil)

	var finalized *domain.PacingRun
	m.runRepo.EXPECT().
		Finalize(gomock.Any()).
		DoAndReturn(func(run *domain.PacingRun) error {
			finalized = run
			return nil
		})

	run, err := service.RunForProfile(context.Background(), "PROF01")

	// O único perfil do escopo não pôde ser enumerado: a execução falha
	assert.Error(t, err)
	assert.NotNil(t, run)
	assert.Equal(t, domain.PacingRunStatusFailed, run.Status)
	assert.NotNil(t, run.ErrorMessage)
	assert.Equal(t, 0, run.CampaignsChecked)
	assert.Equal(t, finalized, run)
}

func TestService_RunForProfile_SnapshotForaDosCriterios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{Pacing: config.Pacing{CooldownMinutes: 120, MaxChangeRatio: 0.2, HistoryWeeks: 2}}
	service, m := newTestService(ctrl, cfg, testNow)

	paused := testCampaign("CAMP02")
	paused.Status = domain.CampaignStatusPaused
	semOrcamento := testCampaign("CAMP03")
	semOrcamento.DailyBudgetMicros = 0

	m.campaignRepo.EXPECT().GetProfileByID("PROF01").Return(testProfile(), nil)
	m.campaignRepo.EXPECT().
		ListEligibleCampaigns("PROF01").
		Return([]*domain.CampaignSnapshot{testCampaign("CAMP01"), paused, semOrcamento}, nil)
	m.runRepo.EXPECT().Create(gomock.Any()).Return(nil)
	m.runRepo.EXPECT().Finalize(gomock.Any()).Return(nil)

	// Apenas a campanha dentro dos critérios passa pela análise
	expectOnPaceCampaign(m, "CAMP01")

	run, err := service.RunForProfile(context.Background(), "PROF01")

	assert.NoError(t, err)
	assert.Equal(t, domain.PacingRunStatusCompleted, run.Status)
	assert.Equal(t, 1, run.CampaignsChecked)
	assert.Equal(t, 1, run.RecommendationsCreated)
}

func TestService_RunAll_FalhaAoListarPerfis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{Pacing: config.Pacing{CooldownMinutes: 120, MaxChangeRatio: 0.2, HistoryWeeks: 2}}
	service, m := newTestService(ctrl, cfg, testNow)

	m.campaignRepo.EXPECT().
		ListProfiles([]domain.ProfileStatus{domain.ProfileStatusActive}).
		Return(nil, assert.AnError)

	m.runRepo.EXPECT().Create(gomock.Any()).Return(nil)
	m.runRepo.EXPECT().Finalize(gomock.Any()).Return(nil)

	run, err := service.RunAll(context.Background())

	assert.Error(t, err)
	assert.NotNil(t, run)
	assert.Equal(t, domain.PacingRunStatusFailed, run.Status)
	assert.NotNil(t, run.ErrorMessage)
}

func TestService_RunAll_FalhaEmUmPerfilNaoDerrubaOLote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{Pacing: config.Pacing{CooldownMinutes: 120, MaxChangeRatio: 0.2, HistoryWeeks: 2}}
	service, m := newTestService(ctrl, cfg, testNow)

	profileB := &domain.Profile{ID: "PROF02", ExternalID: "654321", Name: "Loja B", Status: domain.ProfileStatusActive}

	m.campaignRepo.EXPECT().
		ListProfiles([]domain.ProfileStatus{domain.ProfileStatusActive}).
		Return([]*domain.Profile{testProfile(), profileB}, nil)
	m.runRepo.EXPECT().Create(gomock.Any()).Return(nil)
	m.runRepo.EXPECT().Finalize(gomock.Any()).Return(nil)

	m.campaignRepo.EXPECT().
		ListEligibleCampaigns("PROF01").
		Return(nil, assert.AnError)
	m.campaignRepo.EXPECT().
		ListEligibleCampaigns("PROF02").
		Return([]*domain.CampaignSnapshot{}, nil)

	run, err := service.RunAll(context.Background())

	// Um perfil enumerado com sucesso mantém a execução concluída
	assert.NoError(t, err)
	assert.Equal(t, domain.PacingRunStatusCompleted, run.Status)
	assert.Nil(t, run.ErrorMessage)
}

func TestService_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{Pacing: config.Pacing{CooldownMinutes: 120, MaxChangeRatio: 0.2, HistoryWeeks: 2}}

	suggested := int64(80_000_000)
	openRec := func() *domain.Recommendation {
		return &domain.Recommendation{
			ID:                    "REC001",
			ProfileID:             "PROF01",
			CampaignID:            "CAMP01",
			Day:                   testDayStart,
			Action:                domain.PacingActionDecrease,
			SuggestedBudgetMicros: &suggested,
			Mode:                  domain.RecommendationModeDryRun,
			State:                 domain.RecommendationStateOpen,
		}
	}

	t.Run("Recomendação aberta é publicada e marcada como aplicada", func(t *testing.T) {
		service, m := newTestService(ctrl, cfg, testNow)

		m.recRepo.EXPECT().GetByID("REC001").Return(openRec(), nil)
		m.publisher.EXPECT().
			PublishBudgetAction(gomock.Any(), gomock.Any()).
			Return(nil)
		m.recRepo.EXPECT().
			Transition("REC001", domain.RecommendationStateApplied, domain.RecommendationModeDryRun, gomock.Not(gomock.Nil())).
			Return(true, nil)

		rec, err := service.Approve(context.Background(), "REC001")

		assert.NoError(t, err)
		assert.Equal(t, domain.RecommendationStateApplied, rec.State)
		assert.NotNil(t, rec.AppliedAt)
	})

	t.Run("Recomendação inexistente", func(t *testing.T) {
		service, m := newTestService(ctrl, cfg, testNow)

		m.recRepo.EXPECT().GetByID("REC404").Return(nil, nil)

		_, err := service.Approve(context.Background(), "REC404")

		assert.ErrorIs(t, err, ErrRecommendationNotFound)
	})

	t.Run("Recomendação já aplicada não transiciona de novo", func(t *testing.T) {
		service, m := newTestService(ctrl, cfg, testNow)

		rec := openRec()
		rec.State = domain.RecommendationStateApplied
		m.recRepo.EXPECT().GetByID("REC001").Return(rec, nil)

		_, err := service.Approve(context.Background(), "REC001")

		assert.ErrorIs(t, err, ErrInvalidStateTransition)
	})

	t.Run("Manutenção não tem orçamento para aplicar", func(t *testing.T) {
		service, m := newTestService(ctrl, cfg, testNow)

		rec := openRec()
		rec.Action = domain.PacingActionHold
		rec.SuggestedBudgetMicros = nil
		m.recRepo.EXPECT().GetByID("REC001").Return(rec, nil)

		_, err := service.Approve(context.Background(), "REC001")

		assert.ErrorIs(t, err, ErrNoSuggestedBudget)
	})
}

func TestService_Dismiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{Pacing: config.Pacing{CooldownMinutes: 120, MaxChangeRatio: 0.2, HistoryWeeks: 2}}

	t.Run("Recomendação aberta é descartada", func(t *testing.T) {
		service, m := newTestService(ctrl, cfg, testNow)

		rec := &domain.Recommendation{
			ID:    "REC001",
			Mode:  domain.RecommendationModeDryRun,
			State: domain.RecommendationStateOpen,
		}
		m.recRepo.EXPECT().GetByID("REC001").Return(rec, nil)
		m.recRepo.EXPECT().
			Transition("REC001", domain.RecommendationStateDismissed, domain.RecommendationModeDryRun, nil).
			Return(true, nil)

		result, err := service.Dismiss(context.Background(), "REC001")

		assert.NoError(t, err)
		assert.Equal(t, domain.RecommendationStateDismissed, result.State)
	})

	t.Run("Recomendação já encerrada não é descartável", func(t *testing.T) {
		service, m := newTestService(ctrl, cfg, testNow)

		rec := &domain.Recommendation{
			ID:    "REC001",
			Mode:  domain.RecommendationModeDryRun,
			State: domain.RecommendationStateDismissed,
		}
		m.recRepo.EXPECT().GetByID("REC001").Return(rec, nil)
		m.recRepo.EXPECT().
			Transition("REC001", domain.RecommendationStateDismissed, domain.RecommendationModeDryRun, nil).
			Return(false, nil)

		_, err := service.Dismiss(context.Background(), "REC001")

		assert.ErrorIs(t, err, ErrInvalidStateTransition)
	})
}

func TestService_SetAutoApply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{Pacing: config.Pacing{CooldownMinutes: 120, MaxChangeRatio: 0.2, HistoryWeeks: 2}}

	t.Run("Campanha do perfil recebe a permissão", func(t *testing.T) {
		service, m := newTestService(ctrl, cfg, testNow)

		m.campaignRepo.EXPECT().GetCampaignByID("CAMP01").Return(testCampaign("CAMP01"), nil)
		m.prefRepo.EXPECT().SetAutoApply("PROF01", "CAMP01", true).Return(nil)

		err := service.SetAutoApply("PROF01", "CAMP01", true)

		assert.NoError(t, err)
	})

	t.Run("Campanha inexistente", func(t *testing.T) {
		service, m := newTestService(ctrl, cfg, testNow)

		m.campaignRepo.EXPECT().GetCampaignByID("CAMP404").Return(nil, nil)

		err := service.SetAutoApply("PROF01", "CAMP404", true)

		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})

	t.Run("Campanha de outro perfil não é alterável", func(t *testing.T) {
		service, m := newTestService(ctrl, cfg, testNow)

		m.campaignRepo.EXPECT().GetCampaignByID("CAMP01").Return(testCampaign("CAMP01"), nil)

		err := service.SetAutoApply("PROF99", "CAMP01", false)

		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})
}
