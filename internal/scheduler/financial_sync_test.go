package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lingxingmocks "github.com/vfg2006/seller-insights-api/infrastructure/integrator/lingxing/mocks"
	repositorymocks "github.com/vfg2006/seller-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seller-insights-api/internal/config"
	"github.com/vfg2006/seller-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func financialConfig(enabled bool) *config.Config {
	return &config.Config{
		FinancialSync: config.FinancialSync{
			CronSchedule: "0 4 * * *",
			LookbackDays: 90,
			Enabled:      enabled,
		},
	}
}

func TestFinancialSync_SyncFinancialAggregates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := lingxingmocks.NewMockLingxingIntegrator(ctrl)
	mockRepo := repositorymocks.NewMockFinancialAggregateRepository(ctrl)

	aggregates := []*domain.FinancialAggregate{
		{SKU: "ABC-1", Revenue: 100},
		{SKU: "XYZ-9", Revenue: 50},
	}

	mockIntegrator.EXPECT().
		FetchFinancialAggregates(gomock.Any(), gomock.Any()).
		DoAndReturn(func(startDate, endDate string) ([]*domain.FinancialAggregate, error) {
			// Janela encerrando ontem, com a extensão configurada
			end, err := time.Parse(time.DateOnly, endDate)
			require.NoError(t, err)
			start, err := time.Parse(time.DateOnly, startDate)
			require.NoError(t, err)

			assert.Equal(t, time.Now().AddDate(0, 0, -1).Format(time.DateOnly), endDate)
			assert.Equal(t, end.AddDate(0, 0, -90), start)

			return aggregates, nil
		})

	mockRepo.EXPECT().SaveOrUpdate(aggregates[0]).Return(nil)
	// Erro em uma SKU não interrompe as demais
	mockRepo.EXPECT().SaveOrUpdate(aggregates[1]).Return(assert.AnError)

	service := NewFinancialSyncService(mockIntegrator, mockRepo, financialConfig(true))
	service.syncFinancialAggregates()

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, 90, status["sync_lookback_days"])
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestFinancialSync_FetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := lingxingmocks.NewMockLingxingIntegrator(ctrl)
	mockRepo := repositorymocks.NewMockFinancialAggregateRepository(ctrl)

	mockIntegrator.EXPECT().
		FetchFinancialAggregates(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	service := NewFinancialSyncService(mockIntegrator, mockRepo, financialConfig(true))
	service.syncFinancialAggregates()

	assert.True(t, service.lastSyncCompletedAt.IsZero())
}

func TestFinancialSync_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := lingxingmocks.NewMockLingxingIntegrator(ctrl)
	mockRepo := repositorymocks.NewMockFinancialAggregateRepository(ctrl)

	service := NewFinancialSyncService(mockIntegrator, mockRepo, financialConfig(false))
	require.NoError(t, service.Start(context.Background()))

	assert.Zero(t, service.scheduler.Len())
}
