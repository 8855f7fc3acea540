package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-insights-api/internal/domain"
	"github.com/vfg2006/seller-insights-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().
		ListProducts(&domain.ReportFilters{Theme: "BIRTHDAY", Limit: 5}).
		Return([]*domain.MergedRecord{{SKU: "ABC-1", Theme: "BIRTHDAY"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/products?theme=BIRTHDAY&limit=5", nil)
	recorder := httptest.NewRecorder()

	ListProducts(mockReporter)(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "ABC-1", records[0]["sku"])
}

func TestListProducts_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/products?limit=abc", nil)
	recorder := httptest.NewRecorder()

	ListProducts(mockReporter)(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_003")
}

func TestGetProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().GetProduct("ABC-1").Return(&domain.MergedRecord{SKU: "ABC-1"}, nil)

	req := requestWithSKU(http.MethodGet, "/v1/products/ABC-1", "ABC-1")
	recorder := httptest.NewRecorder()

	GetProduct(mockReporter)(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"sku":"ABC-1"`)
}

func TestGetProduct_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().GetProduct("NOPE").Return(nil, nil)

	req := requestWithSKU(http.MethodGet, "/v1/products/NOPE", "NOPE")
	recorder := httptest.NewRecorder()

	GetProduct(mockReporter)(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_004")
}

func TestGetReportSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().Summary().Return(&domain.PortfolioSummary{
		TotalSKUs:    3,
		TotalRevenue: 350.55,
		ByTheme:      map[string]int{"BIRTHDAY": 2, "GENERAL": 1},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/summary", nil)
	recorder := httptest.NewRecorder()

	GetReportSummary(mockReporter)(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var summary map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &summary))
	assert.Equal(t, float64(3), summary["totalSkus"])
	assert.Equal(t, 350.55, summary["totalRevenue"])
}

func requestWithSKU(method, target, sku string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	params := httprouter.Params{{Key: "sku", Value: sku}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}
