package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-insights-api/infrastructure/integrator/meta/domain"
)

// ExchangeCode troca o código de autorização por um token de curta duração
func (c *MetaClient) ExchangeCode(ctx context.Context, code string) (*metadomain.TokenResponse, error) {
	params := &url.Values{}
	params.Add("client_id", c.Cfg.Meta.AppID)
	params.Add("client_secret", c.Cfg.Meta.AppSecret)
	params.Add("redirect_uri", c.Cfg.Meta.RedirectURI)
	params.Add("code", code)

	requestURL := fmt.Sprintf("%s/oauth/access_token?%s", c.Cfg.Meta.URL, params.Encode())

	body, err := c.doGet(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var token metadomain.TokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		logrus.WithError(err).Error("meta: erro ao decodificar JSON do token")
		return nil, err
	}

	return &token, nil
}

// ExtendToken troca um token de curta duração por um de longa duração,
// tipicamente válido por cerca de 60 dias
func (c *MetaClient) ExtendToken(ctx context.Context, shortLivedToken string) (*metadomain.TokenResponse, error) {
	params := &url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", c.Cfg.Meta.AppID)
	params.Add("client_secret", c.Cfg.Meta.AppSecret)
	params.Add("fb_exchange_token", shortLivedToken)

	requestURL := fmt.Sprintf("%s/oauth/access_token?%s", c.Cfg.Meta.URL, params.Encode())

	body, err := c.doGet(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var token metadomain.TokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		logrus.WithError(err).Error("meta: erro ao decodificar JSON do token estendido")
		return nil, err
	}

	return &token, nil
}

type responseAdAccounts struct {
	Data []metadomain.AdAccount `json:"data"`
}

// GetAdAccounts lista as contas de anúncios acessíveis pelo token
func (c *MetaClient) GetAdAccounts(ctx context.Context, accessToken string) ([]metadomain.AdAccount, error) {
	params := &url.Values{}
	params.Add("fields", "id,account_id,name")
	params.Add("limit", "100")
	params.Add("access_token", accessToken)

	requestURL := fmt.Sprintf("%s/me/adaccounts?%s", c.Cfg.Meta.URL, params.Encode())

	body, err := c.doGet(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var response responseAdAccounts
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("meta: erro ao decodificar JSON de contas de anúncios")
		return nil, err
	}

	return response.Data, nil
}
