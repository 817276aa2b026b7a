package tiktokclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator"
	tiktokdomain "github.com/vfg2006/ad-insights-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ad-insights-api/internal/config"
)

const (
	// DataLevelCampaign agrega o relatório por campanha de leilão
	DataLevelCampaign = "AUCTION_CAMPAIGN"
	// DataLevelAd agrega o relatório por anúncio de leilão
	DataLevelAd = "AUCTION_AD"
)

type Client interface {
	GetReport(ctx context.Context, accessToken, advertiserID, dataLevel string, since, until time.Time) ([]tiktokdomain.ReportRow, error)
	ExchangeCode(ctx context.Context, code string) (*tiktokdomain.TokenData, error)
	RefreshToken(ctx context.Context, refreshToken string) (*tiktokdomain.TokenData, error)
}

type TikTokClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &TikTokClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// envelope é o formato padrão de resposta da Business API: erros de negócio
// vêm com HTTP 200 e code diferente de zero
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type reportData struct {
	List []tiktokdomain.ReportRow `json:"list"`
}

// GetReport busca o relatório integrado no nível informado com breakdown
// diário via dimensão stat_time_day
func (c *TikTokClient) GetReport(ctx context.Context, accessToken, advertiserID, dataLevel string, since, until time.Time) ([]tiktokdomain.ReportRow, error) {
	dimensions := []string{"campaign_id", "stat_time_day"}
	metrics := []string{
		"campaign_name", "impressions", "clicks", "spend", "conversions",
		"conversion_rate", "ctr", "cpc", "cpm", "total_cost_per_complete_payment",
	}
	if dataLevel == DataLevelAd {
		dimensions = []string{"campaign_id", "ad_id", "stat_time_day"}
		metrics = append(metrics, "ad_name")
	}

	dimensionsJSON, err := json.Marshal(dimensions)
	if err != nil {
		return nil, err
	}
	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		return nil, err
	}

	params := &url.Values{}
	params.Add("advertiser_id", advertiserID)
	params.Add("report_type", "BASIC")
	params.Add("data_level", dataLevel)
	params.Add("dimensions", string(dimensionsJSON))
	params.Add("metrics", string(metricsJSON))
	params.Add("start_date", since.Format(time.DateOnly))
	params.Add("end_date", until.Format(time.DateOnly))
	params.Add("page", "1")
	params.Add("page_size", "1000")

	requestURL := fmt.Sprintf("%s/report/integrated/get/?%s", c.Cfg.TikTok.URL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("tiktok: erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Access-Token", accessToken)
	req.Header.Set("Content-Type", "application/json")

	data, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var report reportData
	if err := json.Unmarshal(data, &report); err != nil {
		logrus.WithError(err).Error("tiktok: erro ao decodificar JSON do relatório")
		return nil, err
	}

	return report.List, nil
}

// ExchangeCode troca o código de autorização por um token de acesso e a
// lista de anunciantes autorizados
func (c *TikTokClient) ExchangeCode(ctx context.Context, code string) (*tiktokdomain.TokenData, error) {
	payload := map[string]string{
		"app_id":     c.Cfg.TikTok.AppID,
		"secret":     c.Cfg.TikTok.AppSecret,
		"auth_code":  code,
		"grant_type": "authorization_code",
	}

	return c.postToken(ctx, "/oauth2/access_token/", payload)
}

// RefreshToken troca o refresh token por um novo par de tokens
func (c *TikTokClient) RefreshToken(ctx context.Context, refreshToken string) (*tiktokdomain.TokenData, error) {
	payload := map[string]string{
		"app_id":        c.Cfg.TikTok.AppID,
		"secret":        c.Cfg.TikTok.AppSecret,
		"refresh_token": refreshToken,
		"grant_type":    "refresh_token",
	}

	return c.postToken(ctx, "/oauth2/refresh_token/", payload)
}

func (c *TikTokClient) postToken(ctx context.Context, path string, payload map[string]string) (*tiktokdomain.TokenData, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Cfg.TikTok.URL+path, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("tiktok: erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	data, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var token tiktokdomain.TokenData
	if err := json.Unmarshal(data, &token); err != nil {
		logrus.WithError(err).Error("tiktok: erro ao decodificar JSON do token")
		return nil, err
	}

	return &token, nil
}

// do executa a requisição e desembrulha o envelope padrão da Business API,
// devolvendo apenas o bloco data
func (c *TikTokClient) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("tiktok: erro ao fazer a requisição")
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

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		logrus.WithError(err).Error("tiktok: erro ao decodificar envelope da resposta")
		return nil, err
	}

	if env.Code != 0 {
		return nil, fmt.Errorf("%w: código %d: %s", integrator.ErrProviderRequest, env.Code, env.Message)
	}

	return env.Data, nil
}
