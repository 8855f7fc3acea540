package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-insights-api/internal/scheduler"
	"github.com/vfg2006/seller-insights-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeEnrichment = "enrichment"
	CronJobTypeFinancial  = "financial"
	CronJobTypeAll        = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	EnrichmentSyncService *scheduler.EnrichmentSyncService
	FinancialSyncService  *scheduler.FinancialSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeEnrichment:
			// Executar o pipeline de enriquecimento
			if services.EnrichmentSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de enriquecimento não disponível", nil)
				return
			}
			services.EnrichmentSyncService.TriggerManualSync()

		case CronJobTypeFinancial:
			// Executar sincronização de agregados financeiros
			if services.FinancialSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização financeira não disponível", nil)
				return
			}
			services.FinancialSyncService.TriggerManualSync()

		case CronJobTypeAll:
			// Executar ambas as sincronizações
			if services.FinancialSyncService != nil {
				services.FinancialSyncService.TriggerManualSync()
			}
			if services.EnrichmentSyncService != nil {
				services.EnrichmentSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: enrichment, financial, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"enrichment": services.EnrichmentSyncService.GetStatus(),
			"financial":  services.FinancialSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
