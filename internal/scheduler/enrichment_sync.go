package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-insights-api/internal/config"
	"github.com/vfg2006/seller-insights-api/internal/usecases/enriching"
	"github.com/vfg2006/seller-insights-api/pkg/utils"
)

// EnrichmentSyncConfig representa a configuração do agendador do pipeline de enriquecimento
type EnrichmentSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// EnrichmentSyncService gerencia o agendamento e execução do pipeline de enriquecimento
type EnrichmentSyncService struct {
	scheduler           *gocron.Scheduler
	config              EnrichmentSyncConfig
	appConfig           *config.Config
	enricher            enriching.Enricher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunSummary      *enriching.RunSummary
}

// NewEnrichmentSyncService cria uma nova instância do serviço de sincronização do enriquecimento
func NewEnrichmentSyncService(
	enricher enriching.Enricher,
	appConfig *config.Config,
) *EnrichmentSyncService {
	// Criar a configuração com base na config global
	syncConfig := EnrichmentSyncConfig{
		CronSchedule: appConfig.EnrichmentSync.CronSchedule,
		SyncEnabled:  appConfig.EnrichmentSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do pipeline de enriquecimento carregada")

	return &EnrichmentSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		enricher:    enricher,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *EnrichmentSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Pipeline de enriquecimento desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do pipeline de enriquecimento")

	// Agendar a execução do pipeline
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runEnrichment(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar pipeline de enriquecimento: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do pipeline de enriquecimento")
		s.scheduler.Stop()
	}()

	return nil
}

// runEnrichment executa o pipeline completo uma vez
func (s *EnrichmentSyncService) runEnrichment(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Pipeline de enriquecimento já em andamento, ignorando")
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

	logrus.Info("Iniciando execução agendada do pipeline de enriquecimento")

	summary, err := s.enricher.Run(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar o pipeline de enriquecimento")
		return
	}

	s.lastRunSummary = summary
	s.lastSyncCompletedAt = time.Now()

	logrus.Debugf("Resumo da execução do pipeline: %s", utils.PrettyJson(summary))

	logrus.WithFields(logrus.Fields{
		"run_id":      summary.RunID,
		"merged_skus": summary.MergedCount,
		"duration":    time.Since(startTime).String(),
	}).Info("Execução agendada do pipeline de enriquecimento concluída")
}

// TriggerManualSync inicia manualmente uma execução do pipeline de enriquecimento
func (s *EnrichmentSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Pipeline de enriquecimento já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do pipeline de enriquecimento")
	go s.runEnrichment(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *EnrichmentSyncService) GetStatus() map[string]any {
	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastRunSummary != nil {
		status["last_run_id"] = s.lastRunSummary.RunID
		status["last_run_merged_skus"] = s.lastRunSummary.MergedCount
	}

	return status
}
