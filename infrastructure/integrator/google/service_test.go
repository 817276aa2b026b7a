package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/ad-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-insights-api/internal/config"
	"github.com/vfg2006/ad-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const campaignSearchBody = `{
	"results": [
		{
			"campaign": {"resourceName": "customers/123/campaigns/777", "id": "777", "name": "Pesquisa Brasil"},
			"metrics": {
				"impressions": "2000",
				"clicks": "40",
				"costMicros": "15000000",
				"conversions": 4.0,
				"conversionsValue": 120.0,
				"ctr": 0.02,
				"averageCpc": 375000,
				"averageCpm": 7500000
			},
			"segments": {"date": "2024-06-15"}
		}
	]
}`

const adSearchBody = `{
	"results": [
		{
			"campaign": {"resourceName": "customers/123/campaigns/777", "id": "777", "name": "Pesquisa Brasil"},
			"adGroupAd": {"ad": {"resourceName": "customers/123/ads/999", "id": "999", "name": "Anúncio Responsivo"}},
			"metrics": {
				"impressions": "800",
				"clicks": "16",
				"costMicros": "6000000",
				"conversions": 1.0,
				"conversionsValue": 30.0
			},
			"segments": {"date": "2024-06-15"}
		}
	]
}`

func newIntegrator(t *testing.T, serverURL string, requestLogRepo *mocks.MockApiRequestLogRepository) *GoogleIntegrator {
	t.Helper()

	cfg := &config.Config{
		Google: config.Google{
			AdsURL:         serverURL,
			TokenURL:       serverURL + "/token",
			UserInfoURL:    serverURL + "/userinfo",
			ClientID:       "client-id",
			ClientSecret:   "client-secret",
			DeveloperToken: "dev-token",
		},
		Sync: config.Sync{LookbackDays: 30},
	}

	return New(cfg, googleclient.NewClient(cfg), integrator.NewAuditor(requestLogRepo))
}

func TestGoogleIntegrator_FetchInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// o customer ID entra sem hífens no caminho e no header
		assert.Equal(t, "/customers/1234567890/googleAds:search", r.URL.Path)
		assert.Equal(t, "Bearer token-google", r.Header.Get("Authorization"))
		assert.Equal(t, "dev-token", r.Header.Get("developer-token"))
		assert.Equal(t, "1234567890", r.Header.Get("login-customer-id"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var request struct {
			Query string `json:"query"`
		}
		assert.NoError(t, json.Unmarshal(body, &request))

		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(request.Query, "FROM ad_group_ad") {
			w.Write([]byte(adSearchBody))
			return
		}
		w.Write([]byte(campaignSearchBody))
	}))
	defer server.Close()

	requestLogRepo := mocks.NewMockApiRequestLogRepository(ctrl)
	requestLogRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(entry *domain.ApiRequestLog) error {
			assert.Equal(t, domain.ProviderGoogle, entry.Provider)
			assert.Equal(t, "/googleAds:search", entry.Endpoint)
			assert.Equal(t, "POST", entry.Method)
			assert.Equal(t, 200, entry.StatusCode)
			return nil
		}).
		Times(1)

	externalID := "123-456-7890"
	account := &domain.LinkedAccount{
		ID:                   "ACC001",
		Provider:             domain.ProviderGoogle,
		ExternalAdvertiserID: &externalID,
		AccessToken:          "token-google",
	}

	service := newIntegrator(t, server.URL, requestLogRepo)

	insights, err := service.FetchInsights(context.Background(), account)

	assert.NoError(t, err)
	assert.Len(t, insights, 2)

	campaign := insights[0]
	assert.Equal(t, domain.InsightLevelCampaign, campaign.Level)
	assert.Equal(t, "777", campaign.CampaignID)
	assert.Equal(t, "Pesquisa Brasil", campaign.CampaignName)
	assert.Equal(t, int64(2000), campaign.Impressions)
	assert.Equal(t, int64(40), campaign.Clicks)
	// custo em micros convertido para a moeda da conta
	assert.Equal(t, 15.0, campaign.Spend)
	assert.Equal(t, int64(4), campaign.Conversions)
	assert.Equal(t, 120.0, campaign.Revenue)
	assert.Equal(t, 0.375, campaign.CPC)
	assert.Equal(t, 7.5, campaign.CPM)
	assert.Equal(t, "2024-06-15", campaign.Date.Format("2006-01-02"))

	ad := insights[1]
	assert.Equal(t, domain.InsightLevelAd, ad.Level)
	assert.Equal(t, "999", ad.AdID)
	assert.Equal(t, "Anúncio Responsivo", ad.AdName)
	assert.Equal(t, 6.0, ad.Spend)
}

func TestGoogleIntegrator_FetchInsights_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"The developer token is not approved"}}`))
	}))
	defer server.Close()

	requestLogRepo := mocks.NewMockApiRequestLogRepository(ctrl)
	requestLogRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(entry *domain.ApiRequestLog) error {
			assert.Equal(t, 403, entry.StatusCode)
			return nil
		}).
		Times(1)

	externalID := "1234567890"
	account := &domain.LinkedAccount{
		ID:                   "ACC001",
		Provider:             domain.ProviderGoogle,
		ExternalAdvertiserID: &externalID,
		AccessToken:          "token-google",
	}

	service := newIntegrator(t, server.URL, requestLogRepo)

	insights, err := service.FetchInsights(context.Background(), account)

	assert.Nil(t, insights)
	assert.ErrorIs(t, err, integrator.ErrProviderRequest)
}

func TestGoogleIntegrator_ExchangeCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/token":
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			assert.Equal(t, "auth-code", r.PostForm.Get("code"))
			w.Write([]byte(`{"access_token":"token-acesso","refresh_token":"token-refresh","expires_in":3600,"token_type":"Bearer"}`))
		case "/userinfo":
			assert.Equal(t, "Bearer token-acesso", r.Header.Get("Authorization"))
			w.Write([]byte(`{"id":"g-user-1","email":"anunciante@example.com"}`))
		default:
			t.Errorf("rota inesperada: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	service := newIntegrator(t, server.URL, mocks.NewMockApiRequestLogRepository(ctrl))

	grant, identities, err := service.ExchangeCode(context.Background(), "auth-code")

	assert.NoError(t, err)
	assert.Equal(t, "token-acesso", grant.AccessToken)
	assert.NotNil(t, grant.RefreshToken)
	assert.Equal(t, "token-refresh", *grant.RefreshToken)
	assert.NotNil(t, grant.ExpiresAt)

	assert.Len(t, identities, 1)
	assert.Equal(t, "anunciante@example.com", identities[0].ExternalID)
}

func TestGoogleIntegrator_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/token", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "token-refresh", r.PostForm.Get("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"token-novo","expires_in":3600,"token_type":"Bearer"}`))
	}))
	defer server.Close()

	service := newIntegrator(t, server.URL, mocks.NewMockApiRequestLogRepository(ctrl))

	grant, err := service.RefreshToken(context.Background(), "token-refresh")

	assert.NoError(t, err)
	assert.Equal(t, "token-novo", grant.AccessToken)
	// o refresh token do Google segue válido e não é rotacionado
	assert.Nil(t, grant.RefreshToken)
	assert.NotNil(t, grant.ExpiresAt)
}

func TestGoogleIntegrator_RefreshToken_Revoked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	service := newIntegrator(t, server.URL, mocks.NewMockApiRequestLogRepository(ctrl))

	grant, err := service.RefreshToken(context.Background(), "token-revogado")

	assert.Nil(t, grant)
	assert.ErrorIs(t, err, integrator.ErrAuthorization)
}
