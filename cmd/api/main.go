package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-insights-api/infrastructure/dataset"
	"github.com/vfg2006/seller-insights-api/infrastructure/integrator/lingxing"
	"github.com/vfg2006/seller-insights-api/infrastructure/integrator/lingxing/lingxingclient"
	"github.com/vfg2006/seller-insights-api/infrastructure/repository"
	"github.com/vfg2006/seller-insights-api/internal/api"
	"github.com/vfg2006/seller-insights-api/internal/config"
	"github.com/vfg2006/seller-insights-api/internal/scheduler"
	"github.com/vfg2006/seller-insights-api/internal/usecases/enriching"
	"github.com/vfg2006/seller-insights-api/internal/usecases/reporting"
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

	financialAggregateRepo := repository.NewFinancialAggregateRepository(pgConn)
	mergedRecordRepo := repository.NewMergedRecordRepository(pgConn)

	// Fontes de dados do pipeline de enriquecimento
	salesSource := dataset.NewSalesHistoryReader(cfg)
	financialSource := dataset.NewFinancialAggregateSource(financialAggregateRepo, cfg)

	lingxingClient := lingxingclient.NewClient(cfg)
	lingxingIntegrator := lingxing.New(cfg, lingxingClient, lingxing.DefaultStores())

	enrichingService := enriching.NewService(cfg, salesSource, financialSource, mergedRecordRepo)
	reportingService := reporting.NewService(mergedRecordRepo)

	// Inicializa os agendadores de sincronização separados
	enrichmentSyncService := scheduler.NewEnrichmentSyncService(enrichingService, cfg)

	financialSyncService := scheduler.NewFinancialSyncService(
		lingxingIntegrator,
		financialAggregateRepo,
		cfg,
	)

	// Inicia os agendadores em background
	if err := enrichmentSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do pipeline de enriquecimento")
	} else {
		logrus.Info("Agendador do pipeline de enriquecimento iniciado com sucesso")
	}

	if err := financialSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de agregados financeiros")
	} else {
		logrus.Info("Agendador de sincronização de agregados financeiros iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		enrichmentSyncService,
		financialSyncService,
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
