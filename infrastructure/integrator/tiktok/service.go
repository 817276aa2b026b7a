package tiktok

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator"
	tiktokdomain "github.com/vfg2006/ad-insights-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/ad-insights-api/internal/config"
	"github.com/vfg2006/ad-insights-api/internal/domain"
	"github.com/vfg2006/ad-insights-api/pkg/utils"
)

const reportEndpoint = "/report/integrated/get/"

// TikTokIntegrator implementa a busca de insights via relatório integrado e
// o fluxo OAuth da Business API. A receita é aproximada a partir do custo
// por pagamento completo, já que a API não a reporta diretamente
type TikTokIntegrator struct {
	cfg     *config.Config
	Client  tiktokclient.Client
	auditor *integrator.Auditor
}

func New(cfg *config.Config, client tiktokclient.Client, auditor *integrator.Auditor) *TikTokIntegrator {
	return &TikTokIntegrator{
		cfg:     cfg,
		Client:  client,
		auditor: auditor,
	}
}

func (s *TikTokIntegrator) Provider() domain.Provider {
	return domain.ProviderTikTok
}

// FetchInsights busca o relatório de campanhas e de anúncios com breakdown
// diário dentro da janela de lookback. Cada chamada gera exatamente uma
// linha de auditoria, com sucesso ou falha
func (s *TikTokIntegrator) FetchInsights(ctx context.Context, account *domain.LinkedAccount) ([]*domain.ProviderInsight, error) {
	startedAt := time.Now()
	until := time.Now()
	since := until.AddDate(0, 0, -s.cfg.Sync.LookbackDays)

	campaignRows, err := s.Client.GetReport(ctx, account.AccessToken, account.AdvertiserID(), tiktokclient.DataLevelCampaign, since, until)
	if err != nil {
		s.auditor.RecordFailure(domain.ProviderTikTok, account.ID, reportEndpoint, "GET", startedAt, err)
		return nil, err
	}

	adRows, err := s.Client.GetReport(ctx, account.AccessToken, account.AdvertiserID(), tiktokclient.DataLevelAd, since, until)
	if err != nil {
		s.auditor.RecordFailure(domain.ProviderTikTok, account.ID, reportEndpoint, "GET", startedAt, err)
		return nil, err
	}

	insights := make([]*domain.ProviderInsight, 0, len(campaignRows)+len(adRows))
	for i := range campaignRows {
		insight, err := buildInsight(&campaignRows[i], domain.InsightLevelCampaign)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"campaign_id": campaignRows[i].Dimensions.CampaignID,
				"error":       err.Error(),
			}).Warn("tiktok: descartando linha de campanha inválida")
			continue
		}
		insights = append(insights, insight)
	}

	for i := range adRows {
		insight, err := buildInsight(&adRows[i], domain.InsightLevelAd)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"ad_id":      adRows[i].Dimensions.AdID,
				"error":      err.Error(),
			}).Warn("tiktok: descartando linha de anúncio inválida")
			continue
		}
		insights = append(insights, insight)
	}

	s.auditor.RecordSuccess(domain.ProviderTikTok, account.ID, reportEndpoint, "GET", startedAt, map[string]int{
		"campaigns_count": len(campaignRows),
		"ads_count":       len(adRows),
	})

	return insights, nil
}

// ExchangeCode troca o código de autorização por tokens; uma única
// autorização pode liberar vários anunciantes, um por identidade
func (s *TikTokIntegrator) ExchangeCode(ctx context.Context, code string) (*integrator.TokenGrant, []integrator.AdvertiserIdentity, error) {
	token, err := s.Client.ExchangeCode(ctx, code)
	if err != nil {
		logrus.WithError(err).Error("tiktok: erro ao trocar código de autorização")
		return nil, nil, fmt.Errorf("%w: %v", integrator.ErrAuthorization, err)
	}

	if token.AccessToken == "" {
		return nil, nil, fmt.Errorf("%w: resposta sem access_token", integrator.ErrAuthorization)
	}

	grant := &integrator.TokenGrant{
		AccessToken: token.AccessToken,
		ExpiresAt:   integrator.ExpiryFromSeconds(token.ExpiresIn),
	}
	if token.RefreshToken != "" {
		grant.RefreshToken = &token.RefreshToken
	}

	identities := make([]integrator.AdvertiserIdentity, 0, len(token.AdvertiserIDs))
	for _, advertiserID := range token.AdvertiserIDs {
		identities = append(identities, integrator.AdvertiserIdentity{
			ExternalID: advertiserID.String(),
			Name:       advertiserID.String(),
		})
	}

	if len(identities) == 0 && token.AdvertiserID.String() != "" {
		identities = append(identities, integrator.AdvertiserIdentity{
			ExternalID: token.AdvertiserID.String(),
			Name:       token.AdvertiserID.String(),
		})
	}

	return grant, identities, nil
}

// RefreshToken renova o par de tokens; a API devolve também um novo refresh
// token, que substitui o anterior
func (s *TikTokIntegrator) RefreshToken(ctx context.Context, refreshToken string) (*integrator.TokenGrant, error) {
	token, err := s.Client.RefreshToken(ctx, refreshToken)
	if err != nil {
		logrus.WithError(err).Error("tiktok: erro ao renovar token")
		return nil, fmt.Errorf("%w: %v", integrator.ErrAuthorization, err)
	}

	grant := &integrator.TokenGrant{
		AccessToken: token.AccessToken,
		ExpiresAt:   integrator.ExpiryFromSeconds(token.ExpiresIn),
	}
	if token.RefreshToken != "" {
		grant.RefreshToken = &token.RefreshToken
	}

	return grant, nil
}

// buildInsight converte uma linha do relatório integrado para o formato
// normalizado. A dimensão stat_time_day vem como "YYYY-MM-DD HH:MM:SS"
func buildInsight(row *tiktokdomain.ReportRow, level domain.InsightLevel) (*domain.ProviderInsight, error) {
	dateStr := row.Dimensions.StatTimeDay
	if idx := strings.IndexByte(dateStr, ' '); idx > 0 {
		dateStr = dateStr[:idx]
	}

	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q: %w", row.Dimensions.StatTimeDay, err)
	}

	raw, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}

	conversions := utils.ParseInt(row.Metrics.Conversions)
	costPerPayment := utils.ParseFloat(row.Metrics.TotalCostPerCompletePayment)

	return &domain.ProviderInsight{
		Level:        level,
		CampaignID:   row.Dimensions.CampaignID,
		CampaignName: row.Metrics.CampaignName,
		AdID:         row.Dimensions.AdID,
		AdName:       row.Metrics.AdName,
		Date:         *date,
		Impressions:  utils.ParseInt(row.Metrics.Impressions),
		Clicks:       utils.ParseInt(row.Metrics.Clicks),
		Spend:        utils.ParseFloat(row.Metrics.Spend),
		Revenue:      float64(conversions) * costPerPayment,
		Conversions:  conversions,
		CTR:          utils.ParseFloat(row.Metrics.CTR),
		CPC:          utils.ParseFloat(row.Metrics.CPC),
		CPM:          utils.ParseFloat(row.Metrics.CPM),
		Raw:          raw,
	}, nil
}
