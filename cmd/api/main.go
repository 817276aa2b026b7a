package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator/google"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/ad-insights-api/infrastructure/repository"
	"github.com/vfg2006/ad-insights-api/internal/api"
	"github.com/vfg2006/ad-insights-api/internal/config"
	"github.com/vfg2006/ad-insights-api/internal/scheduler"
	"github.com/vfg2006/ad-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/ad-insights-api/internal/usecases/linking"
	"github.com/vfg2006/ad-insights-api/internal/usecases/syncing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	accountRepo := repository.NewLinkedAccountRepository(pgConn)
	campaignInsightRepo := repository.NewCampaignInsightRepository(pgConn)
	adInsightRepo := repository.NewAdInsightRepository(pgConn)
	requestLogRepo := repository.NewApiRequestLogRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	auditor := integrator.NewAuditor(requestLogRepo)

	metaIntegrator := meta.New(cfg, metaclient.NewClient(cfg), auditor)
	googleIntegrator := google.New(cfg, googleclient.NewClient(cfg), auditor)
	tiktokIntegrator := tiktok.New(cfg, tiktokclient.NewClient(cfg), auditor)

	registry := integrator.NewRegistry()
	registry.RegisterFetcher(metaIntegrator)
	registry.RegisterFetcher(googleIntegrator)
	registry.RegisterFetcher(tiktokIntegrator)
	registry.RegisterSource(metaIntegrator)
	registry.RegisterSource(googleIntegrator)
	registry.RegisterSource(tiktokIntegrator)

	linkingService := linking.NewService(registry, accountRepo)
	syncer := syncing.NewService(cfg, registry, linkingService, accountRepo, campaignInsightRepo, adInsightRepo)
	insightService := insighting.NewService(linkingService, campaignInsightRepo, adInsightRepo, requestLogRepo)

	syncService := scheduler.NewInsightSyncService(syncer, cfg)
	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de insights")
	} else {
		logrus.Info("Agendador de sincronização de insights iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		linkingService,
		insightService,
		syncService,
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
