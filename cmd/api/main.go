package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/openai"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/repository"
	"github.com/vfg2006/marketing-copilot-api/internal/api"
	"github.com/vfg2006/marketing-copilot-api/internal/config"
	"github.com/vfg2006/marketing-copilot-api/internal/scheduler"
	"github.com/vfg2006/marketing-copilot-api/internal/usecases/account"
	"github.com/vfg2006/marketing-copilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-copilot-api/internal/usecases/campaigning"
	"github.com/vfg2006/marketing-copilot-api/internal/usecases/detecting"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	snapshotRepo := repository.NewMetricSnapshotRepository(pgConn)
	insightRepo := repository.NewInsightRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, accountRepo, cfg)

	tokenManager := adsclient.NewTokenManager(cfg)
	adsClient := adsclient.NewClient(cfg, tokenManager)
	adsIntegrator := googleads.New(cfg, adsClient)

	// Recomendações por IA são opcionais; sem chave o agendador segue sem elas
	var recommender openai.Recommender
	if cfg.OpenAI.APIKey != "" {
		openaiClient := openaiclient.NewClient(cfg)
		recommender = openai.New(cfg, openaiClient)
		logrus.Info("Integração com OpenAI habilitada para recomendações")
	} else {
		logrus.Warn("OPENAI_API_KEY ausente, recomendações por IA desabilitadas")
	}

	accountService := account.NewService(accountRepo, adsIntegrator, cfg)
	campaignService := campaigning.NewService(campaignRepo, accountRepo, snapshotRepo, adsIntegrator, cfg)

	insightService, err := detecting.NewService(cfg, insightRepo)
	if err != nil {
		logrus.Fatal(err)
	}

	// Inicializa os agendadores de sincronização e manutenção
	metricsSyncService := scheduler.NewMetricsSyncService(
		accountRepo,
		snapshotRepo,
		campaignRepo,
		adsIntegrator,
		campaignService,
		insightService,
		recommender,
		cfg,
	)

	demoCampaignPauseService := scheduler.NewDemoCampaignPauseService(
		campaignRepo,
		accountRepo,
		adsIntegrator,
		cfg,
	)

	// Inicia os agendadores em background
	if err := metricsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de métricas")
	} else {
		logrus.Info("Agendador de sincronização de métricas iniciado com sucesso")
	}

	if err := demoCampaignPauseService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de pausa de campanhas demo")
	} else {
		logrus.Info("Agendador de pausa de campanhas demo iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		insightService,
		accountService,
		campaignService,
		authenticator,
		metricsSyncService,
		demoCampaignPauseService,
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
