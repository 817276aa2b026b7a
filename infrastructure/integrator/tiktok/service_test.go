package tiktok

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/ad-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-insights-api/internal/config"
	"github.com/vfg2006/ad-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const campaignReportBody = `{
	"code": 0,
	"message": "OK",
	"data": {
		"list": [
			{
				"dimensions": {"campaign_id": "CAMP-TK-1", "stat_time_day": "2024-06-15 00:00:00"},
				"metrics": {
					"campaign_name": "Campanha Vídeo",
					"impressions": "5000",
					"clicks": "100",
					"spend": "25.00",
					"conversions": "5",
					"ctr": "2.0",
					"cpc": "0.25",
					"cpm": "5.0",
					"total_cost_per_complete_payment": "8.00"
				}
			}
		]
	}
}`

const adReportBody = `{
	"code": 0,
	"message": "OK",
	"data": {
		"list": [
			{
				"dimensions": {"campaign_id": "CAMP-TK-1", "ad_id": "AD-TK-1", "stat_time_day": "2024-06-15 00:00:00"},
				"metrics": {
					"campaign_name": "Campanha Vídeo",
					"ad_name": "Vídeo Curto A",
					"impressions": "2000",
					"clicks": "40",
					"spend": "10.00",
					"conversions": "2",
					"total_cost_per_complete_payment": "8.00"
				}
			}
		]
	}
}`

func newIntegrator(t *testing.T, serverURL string, requestLogRepo *mocks.MockApiRequestLogRepository) *TikTokIntegrator {
	t.Helper()

	cfg := &config.Config{
		TikTok: config.TikTok{
			URL:       serverURL,
			AppID:     "app-id",
			AppSecret: "app-secret",
		},
		Sync: config.Sync{LookbackDays: 30},
	}

	return New(cfg, tiktokclient.NewClient(cfg), integrator.NewAuditor(requestLogRepo))
}

func TestTikTokIntegrator_FetchInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/report/integrated/get/", r.URL.Path)
		assert.Equal(t, "token-tiktok", r.Header.Get("Access-Token"))
		assert.Equal(t, "9876543210", r.URL.Query().Get("advertiser_id"))
		assert.Contains(t, r.URL.Query().Get("dimensions"), "stat_time_day")

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("data_level") {
		case tiktokclient.DataLevelCampaign:
			w.Write([]byte(campaignReportBody))
		case tiktokclient.DataLevelAd:
			w.Write([]byte(adReportBody))
		default:
			t.Errorf("data_level inesperado: %s", r.URL.Query().Get("data_level"))
		}
	}))
	defer server.Close()

	requestLogRepo := mocks.NewMockApiRequestLogRepository(ctrl)
	requestLogRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(entry *domain.ApiRequestLog) error {
			assert.Equal(t, domain.ProviderTikTok, entry.Provider)
			assert.Equal(t, "/report/integrated/get/", entry.Endpoint)
			assert.Equal(t, 200, entry.StatusCode)
			assert.JSONEq(t, `{"campaigns_count":1,"ads_count":1}`, string(entry.ResponseSummary))
			return nil
		}).
		Times(1)

	externalID := "9876543210"
	account := &domain.LinkedAccount{
		ID:                   "ACC001",
		Provider:             domain.ProviderTikTok,
		ExternalAdvertiserID: &externalID,
		AccessToken:          "token-tiktok",
	}

	service := newIntegrator(t, server.URL, requestLogRepo)

	insights, err := service.FetchInsights(context.Background(), account)

	assert.NoError(t, err)
	assert.Len(t, insights, 2)

	campaign := insights[0]
	assert.Equal(t, domain.InsightLevelCampaign, campaign.Level)
	assert.Equal(t, "CAMP-TK-1", campaign.CampaignID)
	assert.Equal(t, "Campanha Vídeo", campaign.CampaignName)
	assert.Equal(t, int64(5000), campaign.Impressions)
	assert.Equal(t, int64(100), campaign.Clicks)
	assert.Equal(t, 25.0, campaign.Spend)
	assert.Equal(t, int64(5), campaign.Conversions)
	// receita aproximada: conversões x custo por pagamento completo
	assert.Equal(t, 40.0, campaign.Revenue)
	assert.Equal(t, "2024-06-15", campaign.Date.Format("2006-01-02"))

	ad := insights[1]
	assert.Equal(t, domain.InsightLevelAd, ad.Level)
	assert.Equal(t, "AD-TK-1", ad.AdID)
	assert.Equal(t, "Vídeo Curto A", ad.AdName)
	assert.Equal(t, 16.0, ad.Revenue)
}

func TestTikTokIntegrator_FetchInsights_BusinessError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// a Business API sinaliza erro de negócio com HTTP 200 e code != 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":40105,"message":"Access token is incorrect or has been revoked","data":{}}`))
	}))
	defer server.Close()

	requestLogRepo := mocks.NewMockApiRequestLogRepository(ctrl)
	requestLogRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(entry *domain.ApiRequestLog) error {
			assert.Contains(t, string(entry.ResponseSummary), "40105")
			return nil
		}).
		Times(1)

	externalID := "9876543210"
	account := &domain.LinkedAccount{
		ID:                   "ACC001",
		Provider:             domain.ProviderTikTok,
		ExternalAdvertiserID: &externalID,
		AccessToken:          "token-revogado",
	}

	service := newIntegrator(t, server.URL, requestLogRepo)

	insights, err := service.FetchInsights(context.Background(), account)

	assert.Nil(t, insights)
	assert.ErrorIs(t, err, integrator.ErrProviderRequest)
}

func TestTikTokIntegrator_ExchangeCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth2/access_token/", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": 0,
			"message": "OK",
			"data": {
				"access_token": "token-acesso",
				"refresh_token": "token-refresh",
				"expires_in": 86400,
				"advertiser_ids": [9876543210, 1111111111]
			}
		}`))
	}))
	defer server.Close()

	service := newIntegrator(t, server.URL, mocks.NewMockApiRequestLogRepository(ctrl))

	grant, identities, err := service.ExchangeCode(context.Background(), "auth-code")

	assert.NoError(t, err)
	assert.Equal(t, "token-acesso", grant.AccessToken)
	assert.NotNil(t, grant.RefreshToken)
	assert.Equal(t, "token-refresh", *grant.RefreshToken)

	// cada anunciante autorizado vira uma identidade própria
	assert.Len(t, identities, 2)
	assert.Equal(t, "9876543210", identities[0].ExternalID)
	assert.Equal(t, "1111111111", identities[1].ExternalID)
}

func TestTikTokIntegrator_ExchangeCode_NoAdvertisers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": 0,
			"message": "OK",
			"data": {"access_token": "token-acesso", "refresh_token": "token-refresh", "expires_in": 86400}
		}`))
	}))
	defer server.Close()

	service := newIntegrator(t, server.URL, mocks.NewMockApiRequestLogRepository(ctrl))

	grant, identities, err := service.ExchangeCode(context.Background(), "auth-code")

	// sem anunciante resolvido a vinculação segue com identidade vazia
	assert.NoError(t, err)
	assert.Equal(t, "token-acesso", grant.AccessToken)
	assert.Empty(t, identities)
}

func TestTikTokIntegrator_ExchangeCode_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": 0, "message": "OK", "data": {}}`))
	}))
	defer server.Close()

	service := newIntegrator(t, server.URL, mocks.NewMockApiRequestLogRepository(ctrl))

	grant, identities, err := service.ExchangeCode(context.Background(), "auth-code")

	assert.Nil(t, grant)
	assert.Nil(t, identities)
	assert.ErrorIs(t, err, integrator.ErrAuthorization)
}

func TestTikTokIntegrator_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth2/refresh_token/", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": 0,
			"message": "OK",
			"data": {"access_token": "token-novo", "refresh_token": "refresh-novo", "expires_in": 86400}
		}`))
	}))
	defer server.Close()

	service := newIntegrator(t, server.URL, mocks.NewMockApiRequestLogRepository(ctrl))

	grant, err := service.RefreshToken(context.Background(), "refresh-antigo")

	assert.NoError(t, err)
	assert.Equal(t, "token-novo", grant.AccessToken)
	// o refresh token é rotacionado a cada renovação
	assert.NotNil(t, grant.RefreshToken)
	assert.Equal(t, "refresh-novo", *grant.RefreshToken)
}
