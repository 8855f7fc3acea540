package enriching

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-insights-api/internal/config"
	"github.com/vfg2006/seller-insights-api/internal/domain"
	"github.com/vfg2006/seller-insights-api/pkg/utils"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthShortNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// RunSummary resume uma execução do pipeline de enriquecimento
type RunSummary struct {
	RunID           string    `json:"run_id"`
	StartedAt       time.Time `json:"started_at"`
	CompletedAt     time.Time `json:"completed_at"`
	RowsRead        int       `json:"rows_read"`
	RowsSkipped     int       `json:"rows_skipped"`
	UnparsableDates int       `json:"unparsable_dates"`
	ProductCount    int       `json:"product_count"`
	ExistingCount   int       `json:"existing_count"`
	MergedCount     int       `json:"merged_count"`
	OutputPath      string    `json:"output_path,omitempty"`
}

// Service orquestra o pipeline: agregação por SKU, enriquecimento por produto,
// reconciliação com os agregados financeiros, métricas de orgânico/pago e
// persistência da saída ordenada.
type Service struct {
	cfg             *config.Config
	salesSource     SalesHistorySource
	financialSource FinancialAggregateSource
	store           MergedRecordStore

	themes      *ThemeClassifier
	seasonality *SeasonalityEstimator
}

// NewService cria o serviço de enriquecimento com as tabelas padrão de temas e
// sazonalidade
func NewService(
	cfg *config.Config,
	salesSource SalesHistorySource,
	financialSource FinancialAggregateSource,
	store MergedRecordStore,
) Enricher {
	return &Service{
		cfg:             cfg,
		salesSource:     salesSource,
		financialSource: financialSource,
		store:           store,
		themes:          NewThemeClassifier(DefaultThemePatterns()),
		seasonality:     NewSeasonalityEstimator(DefaultThemeSeasonality(), DefaultSeasonalityBadges()),
	}
}

// Run executa o pipeline completo uma vez. Falhas de enriquecimento de um
// produto nunca abortam o processamento dos demais; apenas falhas de leitura da
// exportação ou de persistência retornam erro.
func (s *Service) Run(ctx context.Context) (*RunSummary, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	summary := &RunSummary{
		RunID:     runID,
		StartedAt: time.Now(),
	}

	logrus.WithField("run_id", runID).Info("Iniciando processamento do histórico de vendas")

	rows, err := s.salesSource.ReadRows()
	if err != nil {
		return nil, err
	}
	summary.RowsRead = len(rows)

	aggregator := NewRowAggregator()
	for _, row := range rows {
		aggregator.Add(row)
	}
	summary.RowsSkipped = aggregator.SkippedRows()
	summary.UnparsableDates = aggregator.UnparsableDates()

	aggregates := aggregator.Aggregates()
	summary.ProductCount = len(aggregates)

	logrus.WithFields(logrus.Fields{
		"run_id":      runID,
		"rows":        summary.RowsRead,
		"rows_no_sku": summary.RowsSkipped,
		"unique_skus": summary.ProductCount,
		"bad_dates":   summary.UnparsableDates,
	}).Info("Agregação por SKU concluída")

	enriched := make([]*domain.EnrichedProduct, 0, len(aggregates))
	for _, agg := range aggregates {
		enriched = append(enriched, s.enrich(agg))
	}

	existing, err := s.financialSource.ListAggregates()
	if err != nil {
		// Sem dados financeiros o pipeline segue apenas com o histórico
		logrus.WithError(err).Warn("Erro ao carregar agregados financeiros; seguindo sem dados existentes")
		existing = nil
	}
	summary.ExistingCount = len(existing)

	organicPaid := NewOrganicPaidCalculator(
		time.Now(),
		s.cfg.EnrichmentSync.WindowOffsetDays,
		s.cfg.EnrichmentSync.WindowSpanDays,
	)
	reconciler := NewMergeReconciler(organicPaid, s.themes, s.seasonality)

	merged := reconciler.Merge(enriched, existing)
	summary.MergedCount = len(merged)

	if s.store != nil {
		if err := s.store.SaveRun(ctx, runID, merged); err != nil {
			return nil, err
		}
	}

	if s.cfg.EnrichmentSync.OutputPath != "" {
		if err := s.writeArtifact(merged); err != nil {
			return nil, err
		}
		summary.OutputPath = s.cfg.EnrichmentSync.OutputPath
	}

	summary.CompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"run_id":      runID,
		"merged_skus": summary.MergedCount,
		"duration":    summary.CompletedAt.Sub(summary.StartedAt).String(),
	}).Info("Pipeline de enriquecimento concluído")

	return summary, nil
}

// enrich deriva o EnrichedProduct de um agregado finalizado
func (s *Service) enrich(agg *domain.ProductAggregate) *domain.EnrichedProduct {
	theme := s.themes.Classify(agg.ProductName, agg.Title, agg.MSKU)
	seasonality := s.seasonality.Estimate(agg.MonthlyRevenue, theme)

	// Média diária de unidades desde a primeira venda
	daysSinceFirst := 1.0
	if agg.FirstSale != "" && agg.LastSale != "" {
		first, errFirst := time.Parse(time.DateOnly, agg.FirstSale)
		last, errLast := time.Parse(time.DateOnly, agg.LastSale)
		if errFirst == nil && errLast == nil {
			daysSinceFirst = math.Max(1, math.Floor(last.Sub(first).Hours()/24))
		}
	}

	peakMonthIndex := 0
	for month := 1; month < 12; month++ {
		if agg.MonthlyRevenue[month] > agg.MonthlyRevenue[peakMonthIndex] {
			peakMonthIndex = month
		}
	}

	peakMonthUnits := 0.0
	monthlySales := make([]domain.MonthlySalesPoint, 0, 12)
	for month, units := range agg.MonthlyUnits {
		if units > peakMonthUnits {
			peakMonthUnits = units
		}
		monthlySales = append(monthlySales, domain.MonthlySalesPoint{
			Month:     monthShortNames[month],
			Units:     int(math.Round(units)),
			MonthName: monthNames[month],
		})
	}

	return &domain.EnrichedProduct{
		SKU:         agg.SKU,
		MSKU:        agg.MSKU,
		ProductName: NormalizeTitle(agg.Title),
		Title:       agg.Title,
		Brand:       agg.Brand,
		Category:    agg.Category,
		Subcategory: agg.Subcategory,

		Theme:            theme,
		Seasonality:      seasonality,
		SeasonalityBadge: s.seasonality.Badge(seasonality),

		FirstSale:     agg.FirstSale,
		LastSale:      agg.LastSale,
		PeakMonth:     monthNames[peakMonthIndex],
		AvgDailySales: utils.RoundWithTwoDecimalPlace(agg.HistoricalUnits / daysSinceFirst),

		HistoricalUnits:        int(math.Round(agg.HistoricalUnits)),
		HistoricalRevenue:      utils.RoundWithTwoDecimalPlace(agg.HistoricalRevenue),
		HistoricalTransactions: agg.HistoricalTransactions,

		MonthlySales:   monthlySales,
		PeakMonthIndex: peakMonthIndex,
		PeakMonthUnits: int(math.Round(peakMonthUnits)),

		DailySales: agg.DailySales,
	}
}

func (s *Service) writeArtifact(records []*domain.MergedRecord) error {
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.cfg.EnrichmentSync.OutputPath, payload, 0o644)
}
