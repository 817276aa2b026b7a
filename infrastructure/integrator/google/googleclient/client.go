package googleclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator"
	googledomain "github.com/vfg2006/ad-insights-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/ad-insights-api/internal/config"
)

type Client interface {
	Search(ctx context.Context, accessToken, customerID, query string) ([]googledomain.SearchResult, error)
	ExchangeCode(ctx context.Context, code string) (*googledomain.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*googledomain.TokenResponse, error)
	GetUserInfo(ctx context.Context, accessToken string) (*googledomain.UserInfo, error)
}

type GoogleClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &GoogleClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Results []googledomain.SearchResult `json:"results"`
}

// Search executa uma consulta GAQL via googleAds:search. O customer ID é
// normalizado sem hífens, tanto no caminho quanto no header login-customer-id
func (c *GoogleClient) Search(ctx context.Context, accessToken, customerID, query string) ([]googledomain.SearchResult, error) {
	normalizedID := strings.ReplaceAll(customerID, "-", "")

	payload, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, err
	}

	requestURL := fmt.Sprintf("%s/customers/%s/googleAds:search", c.Cfg.Google.AdsURL, normalizedID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("google: erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("developer-token", c.Cfg.Google.DeveloperToken)
	req.Header.Set("login-customer-id", normalizedID)
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("google: erro ao decodificar JSON da busca")
		return nil, err
	}

	return response.Results, nil
}

// ExchangeCode troca o código de autorização por tokens de acesso e refresh
func (c *GoogleClient) ExchangeCode(ctx context.Context, code string) (*googledomain.TokenResponse, error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", c.Cfg.Google.ClientID)
	form.Set("client_secret", c.Cfg.Google.ClientSecret)
	form.Set("redirect_uri", c.Cfg.Google.RedirectURI)
	form.Set("grant_type", "authorization_code")

	return c.postTokenForm(ctx, form)
}

// RefreshToken troca o refresh token por um novo token de acesso
func (c *GoogleClient) RefreshToken(ctx context.Context, refreshToken string) (*googledomain.TokenResponse, error) {
	form := url.Values{}
	form.Set("client_id", c.Cfg.Google.ClientID)
	form.Set("client_secret", c.Cfg.Google.ClientSecret)
	form.Set("refresh_token", refreshToken)
	form.Set("grant_type", "refresh_token")

	return c.postTokenForm(ctx, form)
}

// GetUserInfo busca o e-mail do usuário autorizado para identificar a conta
func (c *GoogleClient) GetUserInfo(ctx context.Context, accessToken string) (*googledomain.UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Cfg.Google.UserInfoURL, nil)
	if err != nil {
		logrus.WithError(err).Error("google: erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var userInfo googledomain.UserInfo
	if err := json.Unmarshal(body, &userInfo); err != nil {
		logrus.WithError(err).Error("google: erro ao decodificar JSON do userinfo")
		return nil, err
	}

	return &userInfo, nil
}

func (c *GoogleClient) postTokenForm(ctx context.Context, form url.Values) (*googledomain.TokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Cfg.Google.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		logrus.WithError(err).Error("google: erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var token googledomain.TokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		logrus.WithError(err).Error("google: erro ao decodificar JSON do token")
		return nil, err
	}

	return &token, nil
}

func (c *GoogleClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("google: erro ao fazer a requisição")
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
