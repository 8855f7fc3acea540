package lingxing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-insights-api/infrastructure/integrator/lingxing"
	lingxingdomain "github.com/vfg2006/seller-insights-api/infrastructure/integrator/lingxing/domain"
	"github.com/vfg2006/seller-insights-api/infrastructure/integrator/lingxing/lingxingclient/mocks"
	"github.com/vfg2006/seller-insights-api/internal/config"
	"go.uber.org/mock/gomock"
)

func lingxingConfig(pageSize int) *config.Config {
	return &config.Config{
		Lingxing: config.Lingxing{PageSize: pageSize},
	}
}

func profitPage(total int, records ...lingxingdomain.ProfitReportRecord) *lingxingdomain.ProfitReportResponse {
	resp := &lingxingdomain.ProfitReportResponse{}
	resp.Data.Total = total
	resp.Data.Records = records
	return resp
}

func TestFetchFinancialAggregates_Paging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().GetAccessToken().Return("tok", nil)

	mockClient.EXPECT().
		GetProfitReport("tok", lingxingdomain.ProfitReportParams{
			StartDate: "2024-01-01", EndDate: "2024-03-31", Offset: 0, Length: 2,
		}).
		Return(profitPage(3,
			lingxingdomain.ProfitReportRecord{SID: 4442, LocalSKU: "A", TotalSalesAmount: 10},
			lingxingdomain.ProfitReportRecord{SID: 4442, LocalSKU: "B", TotalSalesAmount: 20},
		), nil)

	// Última página menor que o tamanho encerra o loop
	mockClient.EXPECT().
		GetProfitReport("tok", lingxingdomain.ProfitReportParams{
			StartDate: "2024-01-01", EndDate: "2024-03-31", Offset: 2, Length: 2,
		}).
		Return(profitPage(3,
			lingxingdomain.ProfitReportRecord{SID: 4442, LocalSKU: "C", TotalSalesAmount: 30},
		), nil)

	service := lingxing.New(lingxingConfig(2), mockClient, lingxing.DefaultStores())

	aggregates, err := service.FetchFinancialAggregates("2024-01-01", "2024-03-31")
	require.NoError(t, err)
	require.Len(t, aggregates, 3)

	// Ordenados por receita decrescente
	assert.Equal(t, "C", aggregates[0].SKU)
	assert.Equal(t, "B", aggregates[1].SKU)
	assert.Equal(t, "A", aggregates[2].SKU)
}

func TestFetchFinancialAggregates_Aggregation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().GetAccessToken().Return("tok", nil)

	longName := strings.Repeat("x", 100)

	mockClient.EXPECT().
		GetProfitReport("tok", gomock.Any()).
		Return(profitPage(4,
			// Duas linhas da mesma SKU na mesma marca somam num único agregado
			lingxingdomain.ProfitReportRecord{
				SID: 4442, LocalSKU: "ABC-1", ProductName: "Birthday Plates",
				TotalSalesQuantity: 5, TotalSalesAmount: 100,
				CGPriceTotal: -20, TotalSalesRefunds: -5,
				TotalAdsCost: -10, TotalAdsOrdersSalesAmount: 40,
				GrossProfit: 30,
			},
			lingxingdomain.ProfitReportRecord{
				SID: 4443, LocalSKU: "ABC-1",
				TotalSalesQuantity: 2, TotalSalesAmount: 50,
				CGPriceTotal: -10, TotalAdsCost: -5,
				TotalAdsOrdersSalesAmount: 10, GrossProfit: 20,
			},
			// Marca distinta com a mesma SKU vira outro agregado
			lingxingdomain.ProfitReportRecord{
				SID: 4795, LocalSKU: "ABC-1", ProductName: longName,
				TotalSalesQuantity: 1, TotalSalesAmount: 200, GrossProfit: 100,
			},
			// SID desconhecido e SKU ausente caem nos valores padrão
			lingxingdomain.ProfitReportRecord{
				SID: 9999, Title: "Produto sem loja", TotalSalesAmount: 10,
			},
		), nil)

	service := lingxing.New(lingxingConfig(100), mockClient, lingxing.DefaultStores())

	aggregates, err := service.FetchFinancialAggregates("2024-01-01", "2024-03-31")
	require.NoError(t, err)
	require.Len(t, aggregates, 3)

	fomin := aggregates[0]
	assert.Equal(t, "Fomin", fomin.Brand)
	assert.Equal(t, 200.0, fomin.Revenue)
	assert.Len(t, fomin.Product, 80)

	hop := aggregates[1]
	assert.Equal(t, "House of Party", hop.Brand)
	assert.Equal(t, "Birthday Plates", hop.Product)
	assert.Equal(t, 7, hop.Units)
	assert.Equal(t, 150.0, hop.Revenue)
	assert.Equal(t, 30.0, hop.COGS)
	assert.Equal(t, 5.0, hop.Refunds)
	assert.Equal(t, 15.0, hop.AdSpend)
	assert.Equal(t, 50.0, hop.AdSales)
	assert.Equal(t, 50.0, hop.GrossProfit)
	assert.Equal(t, 33.3, hop.Margin)
	assert.Equal(t, 3.3, hop.RefundRate)
	assert.Equal(t, 30.0, hop.ACoS)

	unknown := aggregates[2]
	assert.Equal(t, "UNKNOWN", unknown.SKU)
	assert.Equal(t, "Unknown", unknown.Brand)
	assert.Equal(t, "Produto sem loja", unknown.Product)

	// Sem receita ou vendas de anúncio, as taxas derivadas ficam zeradas
	assert.Zero(t, unknown.ACoS)
}

func TestFetchFinancialAggregates_TokenError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().GetAccessToken().Return("", assert.AnError)

	service := lingxing.New(lingxingConfig(100), mockClient, lingxing.DefaultStores())

	aggregates, err := service.FetchFinancialAggregates("2024-01-01", "2024-03-31")
	assert.Error(t, err)
	assert.Nil(t, aggregates)
}
