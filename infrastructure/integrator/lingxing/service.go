package lingxing

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"
	lingxingdomain "github.com/vfg2006/seller-insights-api/infrastructure/integrator/lingxing/domain"
	"github.com/vfg2006/seller-insights-api/infrastructure/integrator/lingxing/lingxingclient"
	"github.com/vfg2006/seller-insights-api/internal/config"
	"github.com/vfg2006/seller-insights-api/internal/domain"
	"github.com/vfg2006/seller-insights-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Store associa um identificador de loja (sid) da plataforma a uma marca do
// portfólio
type Store struct {
	SID   int
	Name  string
	Brand string
}

// DefaultStores retorna a tabela padrão de lojas do portfólio
func DefaultStores() []Store {
	return []Store{
		{SID: 4795, Name: "Fomin-US", Brand: "Fomin"},
		{SID: 4799, Name: "Fomin-CA", Brand: "Fomin"},
		{SID: 4800, Name: "Fomin-MX", Brand: "Fomin"},
		{SID: 4442, Name: "HOP-US", Brand: "House of Party"},
		{SID: 4443, Name: "HOP-CA", Brand: "House of Party"},
		{SID: 4444, Name: "HOP-MX", Brand: "House of Party"},
		{SID: 4817, Name: "Function-labs-US", Brand: "Functions Labs"},
		{SID: 4951, Name: "Soulmama-US", Brand: "Soulmama"},
		{SID: 6346, Name: "ROOFUS-US", Brand: "Roofus Pet"},
		{SID: 184, Name: "andro-US", Brand: "Custom Products"},
	}
}

// LingxingIntegrator busca agregados financeiros por SKU da API do marketplace
type LingxingIntegrator interface {
	FetchFinancialAggregates(startDate, endDate string) ([]*domain.FinancialAggregate, error)
}

type LingxingService struct {
	cfg    *config.Config
	Client lingxingclient.Client
	stores map[int]Store
}

// New cria o integrador com a tabela de lojas informada. A tabela é injetada
// para permitir fixtures de teste.
func New(cfg *config.Config, client lingxingclient.Client, stores []Store) LingxingIntegrator {
	bySID := make(map[int]Store, len(stores))
	for _, store := range stores {
		bySID[store.SID] = store
	}

	return &LingxingService{
		cfg:    cfg,
		Client: client,
		stores: bySID,
	}
}

// FetchFinancialAggregates busca o relatório de lucro e perda do período e o
// agrega por marca+SKU em registros FinancialAggregate com as taxas derivadas
// (margem, ACoS, taxa de devolução) já calculadas.
func (s *LingxingService) FetchFinancialAggregates(startDate, endDate string) ([]*domain.FinancialAggregate, error) {
	token, err := s.Client.GetAccessToken()
	if err != nil {
		return nil, err
	}

	pageSize := s.cfg.Lingxing.PageSize
	if pageSize <= 0 {
		pageSize = 5000
	}

	var records []lingxingdomain.ProfitReportRecord
	offset := 0

	for {
		page, err := s.Client.GetProfitReport(token, lingxingdomain.ProfitReportParams{
			StartDate: startDate,
			EndDate:   endDate,
			Offset:    offset,
			Length:    pageSize,
		})
		if err != nil {
			return nil, err
		}

		records = append(records, page.Data.Records...)

		offset += len(page.Data.Records)
		if len(page.Data.Records) < pageSize || offset >= page.Data.Total {
			break
		}
	}

	logrus.WithFields(logrus.Fields{
		"start_date": startDate,
		"end_date":   endDate,
		"records":    len(records),
	}).Info("Relatório de lucro e perda carregado da API do marketplace")

	return s.aggregate(records), nil
}

func (s *LingxingService) aggregate(records []lingxingdomain.ProfitReportRecord) []*domain.FinancialAggregate {
	type accumulator struct {
		agg         *domain.FinancialAggregate
		units       float64
		grossProfit float64
	}

	order := make([]string, 0)
	byKey := make(map[string]*accumulator)

	for _, record := range records {
		store := s.stores[record.SID]

		sku := record.LocalSKU
		if sku == "" {
			sku = record.SKU
		}
		if sku == "" {
			sku = "UNKNOWN"
		}

		brand := store.Brand
		if brand == "" {
			brand = "Unknown"
		}

		// Uma mesma SKU pode aparecer em lojas de marcas distintas
		key := brand + "-" + sku

		acc, ok := byKey[key]
		if !ok {
			name := record.ProductName
			if name == "" {
				name = record.Title
			}
			if len(name) > 80 {
				name = name[:80]
			}

			acc = &accumulator{agg: &domain.FinancialAggregate{
				SKU:         sku,
				Product:     name,
				Brand:       brand,
				Marketplace: store.Name,
			}}
			byKey[key] = acc
			order = append(order, key)
		}

		acc.units += record.TotalSalesQuantity
		acc.agg.Revenue += record.TotalSalesAmount
		acc.agg.COGS += math.Abs(record.CGPriceTotal)
		acc.agg.Refunds += math.Abs(record.TotalSalesRefunds)
		acc.agg.FBAFee += math.Abs(record.TotalFBADeliveryFee)
		acc.agg.AdSpend += math.Abs(record.TotalAdsCost)
		acc.agg.AdSales += record.TotalAdsOrdersSalesAmount
		acc.agg.Storage += math.Abs(record.TotalStorageFee)
		acc.grossProfit += record.GrossProfit
	}

	aggregates := make([]*domain.FinancialAggregate, 0, len(order))
	for _, key := range order {
		acc := byKey[key]
		agg := acc.agg

		agg.Units = int(math.Round(acc.units))
		agg.GrossProfit = utils.RoundWithTwoDecimalPlace(acc.grossProfit)
		agg.Revenue = utils.RoundWithTwoDecimalPlace(agg.Revenue)
		agg.COGS = utils.RoundWithTwoDecimalPlace(agg.COGS)
		agg.Refunds = utils.RoundWithTwoDecimalPlace(agg.Refunds)
		agg.FBAFee = utils.RoundWithTwoDecimalPlace(agg.FBAFee)
		agg.AdSpend = utils.RoundWithTwoDecimalPlace(agg.AdSpend)
		agg.AdSales = utils.RoundWithTwoDecimalPlace(agg.AdSales)
		agg.Storage = utils.RoundWithTwoDecimalPlace(agg.Storage)

		// Taxas derivadas, sempre protegidas contra divisão por zero
		if agg.Revenue > 0 {
			agg.Margin = roundOneDecimal(acc.grossProfit / agg.Revenue * 100)
			agg.RefundRate = roundOneDecimal(agg.Refunds / agg.Revenue * 100)
		}
		if agg.AdSales > 0 {
			agg.ACoS = roundOneDecimal(agg.AdSpend / agg.AdSales * 100)
		}

		aggregates = append(aggregates, agg)
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		return aggregates[i].Revenue > aggregates[j].Revenue
	})

	return aggregates
}

func roundOneDecimal(f float64) float64 {
	return math.Round(f*10) / 10
}
