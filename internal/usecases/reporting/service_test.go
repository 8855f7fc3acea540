package reporting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seller-insights-api/internal/domain"
	"github.com/vfg2006/seller-insights-api/internal/usecases/reporting"
	"go.uber.org/mock/gomock"
)

func TestService_ListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMergedRecordRepository(ctrl)
	service := reporting.NewService(mockRepo)

	filters := &domain.ReportFilters{Theme: "BIRTHDAY", Limit: 10}
	expected := []*domain.MergedRecord{{SKU: "ABC-1", Theme: "BIRTHDAY"}}

	mockRepo.EXPECT().ListRecords(filters).Return(expected, nil)

	records, err := service.ListProducts(filters)
	require.NoError(t, err)
	assert.Equal(t, expected, records)
}

func TestService_GetProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMergedRecordRepository(ctrl)
	service := reporting.NewService(mockRepo)

	mockRepo.EXPECT().GetBySKU("ABC-1").Return(&domain.MergedRecord{SKU: "ABC-1"}, nil)
	mockRepo.EXPECT().GetBySKU("NOPE").Return(nil, nil)

	record, err := service.GetProduct("ABC-1")
	require.NoError(t, err)
	assert.Equal(t, "ABC-1", record.SKU)

	record, err = service.GetProduct("NOPE")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMergedRecordRepository(ctrl)
	service := reporting.NewService(mockRepo)

	records := []*domain.MergedRecord{
		{
			SKU: "A", Brand: "Fomin", Theme: "BIRTHDAY", Seasonality: domain.SeasonalityYearRound, Revenue: 100,
			OrganicPaidMetrics: domain.OrganicPaidMetrics{OrganicToPaidRatioFormatted: "Organic Only"},
		},
		{
			SKU: "B", Brand: "Fomin", Theme: "BIRTHDAY", Seasonality: domain.SeasonalityQ4, Revenue: 200.55,
			OrganicPaidMetrics: domain.OrganicPaidMetrics{OrganicToPaidRatioFormatted: "2.0:1"},
		},
		{
			SKU: "C", Brand: "House of Party", Theme: "GENERAL", Seasonality: domain.SeasonalityYearRound, Revenue: 50,
			OrganicPaidMetrics: domain.OrganicPaidMetrics{OrganicToPaidRatioFormatted: "N/A"},
		},
	}

	mockRepo.EXPECT().ListRecords(nil).Return(records, nil)

	summary, err := service.Summary()
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalSKUs)
	assert.Equal(t, 350.55, summary.TotalRevenue)
	assert.Equal(t, 2, summary.ByTheme["BIRTHDAY"])
	assert.Equal(t, 1, summary.ByTheme["GENERAL"])
	assert.Equal(t, 2, summary.BySeason[domain.SeasonalityYearRound])
	assert.Equal(t, 2, summary.ByBrand["Fomin"])
	assert.Equal(t, 1, summary.OrganicOnly)
	assert.Equal(t, 1, summary.NoRatioData)
}
