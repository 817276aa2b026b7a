package metaclient

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator"
	metadomain "github.com/vfg2006/ad-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-insights-api/internal/config"
)

const (
	// LevelCampaign agrega os insights por campanha
	LevelCampaign = "campaign"
	// LevelAd agrega os insights por anúncio
	LevelAd = "ad"
)

type Client interface {
	GetInsights(ctx context.Context, accessToken, advertiserID, level string, since, until time.Time) ([]metadomain.InsightRow, error)
	ExchangeCode(ctx context.Context, code string) (*metadomain.TokenResponse, error)
	ExtendToken(ctx context.Context, shortLivedToken string) (*metadomain.TokenResponse, error)
	GetAdAccounts(ctx context.Context, accessToken string) ([]metadomain.AdAccount, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// doGet executa uma requisição GET na Graph API e devolve o corpo da
// resposta. Status não-2xx vira RequestError com o corpo preservado
func (c *MetaClient) doGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("meta: erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("meta: erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &integrator.RequestError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}
