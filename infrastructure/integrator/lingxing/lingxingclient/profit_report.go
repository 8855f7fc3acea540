package lingxingclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	lingxingdomain "github.com/vfg2006/seller-insights-api/infrastructure/integrator/lingxing/domain"
)

const profitReportPath = "/bd/profit/report/open/report/seller/list"

// GetProfitReport busca uma página do relatório de lucro e perda por SKU.
// Os parâmetros de autenticação vão na querystring, assinados; os parâmetros
// de consulta vão no corpo JSON.
func (c *LingxingClient) GetProfitReport(token string, params lingxingdomain.ProfitReportParams) (*lingxingdomain.ProfitReportResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	body := map[string]any{
		"startDate": params.StartDate,
		"endDate":   params.EndDate,
		"offset":    params.Offset,
		"length":    params.Length,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar os parâmetros do relatório: %w", err)
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	// A assinatura cobre os parâmetros de autenticação e de consulta
	signParams := map[string]string{
		"access_token": token,
		"app_key":      c.config.Lingxing.AppID,
		"timestamp":    timestamp,
		"startDate":    params.StartDate,
		"endDate":      params.EndDate,
		"offset":       strconv.Itoa(params.Offset),
		"length":       strconv.Itoa(params.Length),
	}

	sign, err := apiSign(c.config.Lingxing.AppID, signParams)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("access_token", token)
	query.Set("app_key", c.config.Lingxing.AppID)
	query.Set("timestamp", timestamp)
	query.Set("sign", sign)

	endpoint := c.config.Lingxing.BaseURL + profitReportPath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição do relatório: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição do relatório: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição do relatório falhou com status: %s", resp.Status)
	}

	var report lingxingdomain.ProfitReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("erro ao decodificar o relatório: %w", err)
	}

	return &report, nil
}
