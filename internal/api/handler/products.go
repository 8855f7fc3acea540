package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-insights-api/internal/domain"
	"github.com/vfg2006/seller-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/seller-insights-api/pkg/apiErrors"
)

// ListProducts retorna os registros consolidados do relatório, ordenados por
// receita decrescente. Aceita os filtros theme, seasonality, brand e limit via
// querystring.
func ListProducts(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("insights: listing merged products")

		query := r.URL.Query()

		filters := &domain.ReportFilters{
			Theme:       query.Get("theme"),
			Seasonality: query.Get("seasonality"),
			Brand:       query.Get("brand"),
		}

		if rawLimit := query.Get("limit"); rawLimit != "" {
			limit, err := strconv.Atoi(rawLimit)
			if err != nil || limit < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			filters.Limit = limit
		}

		products, err := service.ListProducts(filters)
		if err != nil {
			logrus.Error("Erro ao listar produtos do relatório:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos do relatório", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			logrus.Error("Erro ao enviar resposta de produtos:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetProduct retorna o registro consolidado de um SKU específico
func GetProduct(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sku := httprouter.ParamsFromContext(r.Context()).ByName("sku")
		if sku == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "SKU não especificado", nil)
			return
		}

		logrus.WithField("sku", sku).Info("insights: fetching merged product")

		product, err := service.GetProduct(sku)
		if err != nil {
			logrus.Error("Erro ao buscar produto do relatório:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produto do relatório", nil)
			return
		}

		if product == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "SKU não encontrado no relatório", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(product); err != nil {
			logrus.Error("Erro ao enviar resposta do produto:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetReportSummary retorna as distribuições do portfólio sobre o relatório completo
func GetReportSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("insights: building portfolio summary")

		summary, err := service.Summary()
		if err != nil {
			logrus.Error("Erro ao calcular resumo do portfólio:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular resumo do portfólio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.Error("Erro ao enviar resposta do resumo:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
