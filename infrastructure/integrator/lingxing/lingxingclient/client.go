package lingxingclient

import (
	"net/http"
	"time"

	lingxingdomain "github.com/vfg2006/seller-insights-api/infrastructure/integrator/lingxing/domain"
	"github.com/vfg2006/seller-insights-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

type Client interface {
	GetAccessToken() (string, error)
	GetProfitReport(token string, params lingxingdomain.ProfitReportParams) (*lingxingdomain.ProfitReportResponse, error)
}

type LingxingClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &LingxingClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
