package lingxingclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	lingxingdomain "github.com/vfg2006/seller-insights-api/infrastructure/integrator/lingxing/domain"
)

// GetAccessToken obtém um token de acesso da API do marketplace
func (c *LingxingClient) GetAccessToken() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	timestamp := time.Now().Unix()

	form := url.Values{}
	form.Set("appId", c.config.Lingxing.AppID)
	form.Set("appSecret", c.config.Lingxing.AppSecret)
	form.Set("timestamp", strconv.FormatInt(timestamp, 10))
	form.Set("sign", tokenSign(c.config.Lingxing.AppID, c.config.Lingxing.AppSecret, timestamp))

	endpoint := c.config.Lingxing.BaseURL + "/api/auth-server/oauth/access-token"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição de token: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao executar a requisição de token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("requisição de token falhou com status: %s", resp.Status)
	}

	var tokenResp lingxingdomain.AccessTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("erro ao decodificar a resposta de token: %w", err)
	}

	if tokenResp.Data.AccessToken == "" {
		return "", fmt.Errorf("resposta de token sem access_token (code=%d msg=%s)", tokenResp.Code, tokenResp.Msg)
	}

	return tokenResp.Data.AccessToken, nil
}
