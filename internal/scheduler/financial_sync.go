package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-insights-api/infrastructure/integrator/lingxing"
	"github.com/vfg2006/seller-insights-api/infrastructure/repository"
	"github.com/vfg2006/seller-insights-api/internal/config"
)

// FinancialSyncConfig representa a configuração do agendador de agregados financeiros
type FinancialSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// FinancialSyncService gerencia o agendamento e execução da sincronização dos
// agregados financeiros a partir da API do marketplace
type FinancialSyncService struct {
	scheduler              *gocron.Scheduler
	config                 FinancialSyncConfig
	appConfig              *config.Config
	lingxingService        lingxing.LingxingIntegrator
	financialAggregateRepo repository.FinancialAggregateRepository
	syncRunning            bool
	syncMutex              sync.Mutex
	lastSyncStartedAt      time.Time
	lastSyncCompletedAt    time.Time
}

// NewFinancialSyncService cria uma nova instância do serviço de sincronização financeira
func NewFinancialSyncService(
	lingxingService lingxing.LingxingIntegrator,
	financialAggregateRepo repository.FinancialAggregateRepository,
	appConfig *config.Config,
) *FinancialSyncService {
	// Criar a configuração com base na config global
	syncConfig := FinancialSyncConfig{
		CronSchedule: appConfig.FinancialSync.CronSchedule,
		LookbackDays: appConfig.FinancialSync.LookbackDays,
		SyncEnabled:  appConfig.FinancialSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de agregados financeiros carregada")

	return &FinancialSyncService{
		scheduler:              scheduler,
		config:                 syncConfig,
		appConfig:              appConfig,
		lingxingService:        lingxingService,
		financialAggregateRepo: financialAggregateRepo,
		syncRunning:            false,
	}
}

// Start inicia o agendador
func (s *FinancialSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de agregados financeiros desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de agregados financeiros")

	// Agendar a sincronização
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncFinancialAggregates()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de agregados financeiros: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de agregados financeiros")
		s.scheduler.Stop()
	}()

	return nil
}

// syncFinancialAggregates busca o relatório de lucro e perda do período e
// persiste cada agregado por SKU
func (s *FinancialSyncService) syncFinancialAggregates() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de agregados financeiros já em andamento, ignorando")
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

	// Janela encerrando ontem, já que o dia corrente ainda está incompleto
	endDate := time.Now().AddDate(0, 0, -1)
	startDate := endDate.AddDate(0, 0, -s.config.LookbackDays)

	logrus.WithFields(logrus.Fields{
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
	}).Info("Iniciando sincronização de agregados financeiros")

	aggregates, err := s.lingxingService.FetchFinancialAggregates(
		startDate.Format(time.DateOnly),
		endDate.Format(time.DateOnly),
	)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar agregados financeiros da API do marketplace")
		return
	}

	saved := 0
	for _, aggregate := range aggregates {
		if err := s.financialAggregateRepo.SaveOrUpdate(aggregate); err != nil {
			logrus.WithFields(logrus.Fields{
				"sku":   aggregate.SKU,
				"error": err.Error(),
			}).Error("Erro ao salvar agregado financeiro no banco de dados")
			continue
		}
		saved++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"fetched":  len(aggregates),
		"saved":    saved,
	}).Info("Sincronização de agregados financeiros concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização de agregados financeiros
func (s *FinancialSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de agregados financeiros já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de agregados financeiros")
	go s.syncFinancialAggregates()
}

// GetStatus retorna o status atual do agendador
func (s *FinancialSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
