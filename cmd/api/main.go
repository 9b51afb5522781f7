package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-pacing-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-pacing-api/infrastructure/integrator/amazon"
	"github.com/vfg2006/budget-pacing-api/infrastructure/integrator/amazon/amazonclient"
	"github.com/vfg2006/budget-pacing-api/infrastructure/messaging/kafka"
	"github.com/vfg2006/budget-pacing-api/infrastructure/metrics"
	"github.com/vfg2006/budget-pacing-api/infrastructure/migration"
	"github.com/vfg2006/budget-pacing-api/infrastructure/repository"
	"github.com/vfg2006/budget-pacing-api/internal/api"
	"github.com/vfg2006/budget-pacing-api/internal/config"
	"github.com/vfg2006/budget-pacing-api/internal/scheduler"
	"github.com/vfg2006/budget-pacing-api/internal/usecases/authenticating"
	"github.com/vfg2006/budget-pacing-api/internal/usecases/pacing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := migration.Run(cfg.Database.DSN); err != nil {
		logrus.WithError(err).Fatal("Erro ao executar as migrações do banco de dados")
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	spendRepo := repository.NewSpendRecordRepository(pgConn)
	recommendationRepo := repository.NewRecommendationRepository(pgConn)
	runRepo := repository.NewPacingRunRepository(pgConn)
	preferenceRepo := repository.NewPreferenceRepository(pgConn)
	alertRepo := repository.NewAlertRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	amazonClient := amazonclient.NewClient(cfg)
	amazonIntegrator := amazon.New(cfg, amazonClient)

	actionPublisher := kafka.NewBudgetActionPublisher(cfg.Kafka)
	defer func() {
		if err := actionPublisher.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar o publisher de ações de orçamento")
		}
	}()

	pacingMetrics := metrics.NewPacingMetrics()

	pacingService := pacing.NewService(
		cfg,
		campaignRepo,
		spendRepo,
		recommendationRepo,
		runRepo,
		preferenceRepo,
		alertRepo,
		actionPublisher,
		pacingMetrics,
	)

	// Inicializa os agendadores de sincronização separados
	pacingSyncService := scheduler.NewPacingSyncService(pacingService, cfg)
	campaignSyncService := scheduler.NewCampaignSyncService(campaignRepo, amazonIntegrator, cfg)

	// Inicia os agendadores em background
	if err := pacingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do lote de pacing")
	} else {
		logrus.Info("Agendador do lote de pacing iniciado com sucesso")
	}

	if err := campaignSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de campanhas")
	} else {
		logrus.Info("Agendador de sincronização de campanhas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pacingService,
		authenticator,
		pacingSyncService,
		campaignSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
