package google

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator"
	googledomain "github.com/vfg2006/ad-insights-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/ad-insights-api/internal/config"
	"github.com/vfg2006/ad-insights-api/internal/domain"
	"github.com/vfg2006/ad-insights-api/pkg/utils"
)

const searchEndpoint = "/googleAds:search"

const campaignQueryTemplate = `
	SELECT
		campaign.id,
		campaign.name,
		segments.date,
		metrics.impressions,
		metrics.clicks,
		metrics.cost_micros,
		metrics.conversions,
		metrics.conversions_value,
		metrics.ctr,
		metrics.average_cpc,
		metrics.average_cpm
	FROM campaign
	WHERE segments.date BETWEEN '%s' AND '%s'`

const adQueryTemplate = `
	SELECT
		campaign.id,
		campaign.name,
		ad_group_ad.ad.id,
		ad_group_ad.ad.name,
		segments.date,
		metrics.impressions,
		metrics.clicks,
		metrics.cost_micros,
		metrics.conversions,
		metrics.conversions_value,
		metrics.ctr,
		metrics.average_cpc,
		metrics.average_cpm
	FROM ad_group_ad
	WHERE segments.date BETWEEN '%s' AND '%s'
		AND ad_group_ad.status = 'ENABLED'`

// GoogleIntegrator implementa a busca de insights via GAQL e o fluxo OAuth
// do Google Ads. A identidade do anunciante é o e-mail autorizado e o
// refresh de token é suportado
type GoogleIntegrator struct {
	cfg     *config.Config
	Client  googleclient.Client
	auditor *integrator.Auditor
}

func New(cfg *config.Config, client googleclient.Client, auditor *integrator.Auditor) *GoogleIntegrator {
	return &GoogleIntegrator{
		cfg:     cfg,
		Client:  client,
		auditor: auditor,
	}
}

func (s *GoogleIntegrator) Provider() domain.Provider {
	return domain.ProviderGoogle
}

// FetchInsights consulta campanhas e anúncios com breakdown diário dentro da
// janela de lookback. Valores monetários chegam em micros e são convertidos
// para a moeda da conta. Cada chamada gera exatamente uma linha de auditoria
func (s *GoogleIntegrator) FetchInsights(ctx context.Context, account *domain.LinkedAccount) ([]*domain.ProviderInsight, error) {
	startedAt := time.Now()
	until := time.Now()
	since := until.AddDate(0, 0, -s.cfg.Sync.LookbackDays)

	campaignQuery := fmt.Sprintf(campaignQueryTemplate, since.Format(time.DateOnly), until.Format(time.DateOnly))
	campaignResults, err := s.Client.Search(ctx, account.AccessToken, account.AdvertiserID(), campaignQuery)
	if err != nil {
		s.auditor.RecordFailure(domain.ProviderGoogle, account.ID, searchEndpoint, "POST", startedAt, err)
		return nil, err
	}

	adQuery := fmt.Sprintf(adQueryTemplate, since.Format(time.DateOnly), until.Format(time.DateOnly))
	adResults, err := s.Client.Search(ctx, account.AccessToken, account.AdvertiserID(), adQuery)
	if err != nil {
		s.auditor.RecordFailure(domain.ProviderGoogle, account.ID, searchEndpoint, "POST", startedAt, err)
		return nil, err
	}

	insights := make([]*domain.ProviderInsight, 0, len(campaignResults)+len(adResults))
	for i := range campaignResults {
		insight, err := buildInsight(&campaignResults[i], domain.InsightLevelCampaign)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"error":      err.Error(),
			}).Warn("google: descartando resultado de campanha inválido")
			continue
		}
		insights = append(insights, insight)
	}

	for i := range adResults {
		insight, err := buildInsight(&adResults[i], domain.InsightLevelAd)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"error":      err.Error(),
			}).Warn("google: descartando resultado de anúncio inválido")
			continue
		}
		insights = append(insights, insight)
	}

	s.auditor.RecordSuccess(domain.ProviderGoogle, account.ID, searchEndpoint, "POST", startedAt, map[string]int{
		"campaigns_count": len(campaignResults),
		"ads_count":       len(adResults),
	})

	return insights, nil
}

// ExchangeCode troca o código de autorização por tokens e identifica o
// anunciante pelo e-mail do usuário autorizado
func (s *GoogleIntegrator) ExchangeCode(ctx context.Context, code string) (*integrator.TokenGrant, []integrator.AdvertiserIdentity, error) {
	token, err := s.Client.ExchangeCode(ctx, code)
	if err != nil {
		logrus.WithError(err).Error("google: erro ao trocar código de autorização")
		return nil, nil, fmt.Errorf("%w: %v", integrator.ErrAuthorization, err)
	}

	userInfo, err := s.Client.GetUserInfo(ctx, token.AccessToken)
	if err != nil {
		logrus.WithError(err).Error("google: erro ao buscar userinfo")
		return nil, nil, err
	}

	grant := &integrator.TokenGrant{
		AccessToken: token.AccessToken,
		ExpiresAt:   integrator.ExpiryFromSeconds(token.ExpiresIn),
	}
	if token.RefreshToken != "" {
		grant.RefreshToken = &token.RefreshToken
	}

	identities := []integrator.AdvertiserIdentity{
		{
			ExternalID: userInfo.Email,
			Name:       userInfo.Email,
		},
	}

	return grant, identities, nil
}

// RefreshToken renova o token de acesso; o refresh token original permanece
// válido e não é substituído
func (s *GoogleIntegrator) RefreshToken(ctx context.Context, refreshToken string) (*integrator.TokenGrant, error) {
	token, err := s.Client.RefreshToken(ctx, refreshToken)
	if err != nil {
		logrus.WithError(err).Error("google: erro ao renovar token")
		return nil, fmt.Errorf("%w: %v", integrator.ErrAuthorization, err)
	}

	return &integrator.TokenGrant{
		AccessToken: token.AccessToken,
		ExpiresAt:   integrator.ExpiryFromSeconds(token.ExpiresIn),
	}, nil
}

const microsPerUnit = 1_000_000

func buildInsight(result *googledomain.SearchResult, level domain.InsightLevel) (*domain.ProviderInsight, error) {
	if result.Metrics == nil || result.Campaign == nil {
		return nil, fmt.Errorf("resultado sem métricas ou campanha")
	}

	var dateStr string
	if result.Segments != nil {
		dateStr = result.Segments.Date
	}

	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q: %w", dateStr, err)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	metrics := result.Metrics

	insight := &domain.ProviderInsight{
		Level:        level,
		CampaignID:   result.Campaign.ID,
		CampaignName: result.Campaign.Name,
		Date:         *date,
		Impressions:  utils.ParseInt(metrics.Impressions),
		Clicks:       utils.ParseInt(metrics.Clicks),
		Spend:        utils.ParseFloat(metrics.CostMicros) / microsPerUnit,
		Revenue:      metrics.ConversionsValue,
		Conversions:  int64(metrics.Conversions),
		CTR:          metrics.CTR,
		CPC:          metrics.AverageCPC / microsPerUnit,
		CPM:          metrics.AverageCPM / microsPerUnit,
		Raw:          raw,
	}

	if level == domain.InsightLevelAd {
		if result.AdGroupAd == nil {
			return nil, fmt.Errorf("resultado de anúncio sem ad_group_ad")
		}
		insight.AdID = result.AdGroupAd.Ad.ID
		insight.AdName = result.AdGroupAd.Ad.Name
	}

	return insight, nil
}
