package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator"
	metadomain "github.com/vfg2006/ad-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-insights-api/internal/config"
	"github.com/vfg2006/ad-insights-api/internal/domain"
	"github.com/vfg2006/ad-insights-api/pkg/utils"
)

const insightsEndpoint = "/insights"

// MetaIntegrator implementa a busca de insights e o fluxo OAuth da Graph API.
// Tokens de longa duração do Meta não têm refresh; expirado, a conta exige
// nova autorização
type MetaIntegrator struct {
	cfg     *config.Config
	Client  metaclient.Client
	auditor *integrator.Auditor
}

func New(cfg *config.Config, client metaclient.Client, auditor *integrator.Auditor) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:     cfg,
		Client:  client,
		auditor: auditor,
	}
}

func (s *MetaIntegrator) Provider() domain.Provider {
	return domain.ProviderMeta
}

// FetchInsights busca os insights de campanha e de anúncio da conta com
// breakdown diário, dentro da janela de lookback configurada. Cada chamada
// gera exatamente uma linha de auditoria, com sucesso ou falha
func (s *MetaIntegrator) FetchInsights(ctx context.Context, account *domain.LinkedAccount) ([]*domain.ProviderInsight, error) {
	startedAt := time.Now()
	until := time.Now()
	since := until.AddDate(0, 0, -s.cfg.Sync.LookbackDays)

	campaignRows, err := s.Client.GetInsights(ctx, account.AccessToken, account.AdvertiserID(), metaclient.LevelCampaign, since, until)
	if err != nil {
		s.auditor.RecordFailure(domain.ProviderMeta, account.ID, insightsEndpoint, "GET", startedAt, err)
		return nil, err
	}

	adRows, err := s.Client.GetInsights(ctx, account.AccessToken, account.AdvertiserID(), metaclient.LevelAd, since, until)
	if err != nil {
		s.auditor.RecordFailure(domain.ProviderMeta, account.ID, insightsEndpoint, "GET", startedAt, err)
		return nil, err
	}

	insights := make([]*domain.ProviderInsight, 0, len(campaignRows)+len(adRows))
	for i := range campaignRows {
		insight, err := buildInsight(&campaignRows[i], domain.InsightLevelCampaign)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"campaign_id": campaignRows[i].CampaignID,
				"error":       err.Error(),
			}).Warn("meta: descartando linha de insight de campanha inválida")
			continue
		}
		insights = append(insights, insight)
	}

	for i := range adRows {
		insight, err := buildInsight(&adRows[i], domain.InsightLevelAd)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"ad_id":      adRows[i].AdID,
				"error":      err.Error(),
			}).Warn("meta: descartando linha de insight de anúncio inválida")
			continue
		}
		insights = append(insights, insight)
	}

	s.auditor.RecordSuccess(domain.ProviderMeta, account.ID, insightsEndpoint, "GET", startedAt, map[string]int{
		"campaigns_count": len(campaignRows),
		"ads_count":       len(adRows),
	})

	return insights, nil
}

// ExchangeCode completa o fluxo OAuth: troca o código por um token de curta
// duração, estende para longa duração e lista as contas de anúncios
// acessíveis como identidades de anunciante
func (s *MetaIntegrator) ExchangeCode(ctx context.Context, code string) (*integrator.TokenGrant, []integrator.AdvertiserIdentity, error) {
	shortToken, err := s.Client.ExchangeCode(ctx, code)
	if err != nil {
		logrus.WithError(err).Error("meta: erro ao trocar código de autorização")
		return nil, nil, fmt.Errorf("%w: %v", integrator.ErrAuthorization, err)
	}

	longToken, err := s.Client.ExtendToken(ctx, shortToken.AccessToken)
	if err != nil {
		logrus.WithError(err).Error("meta: erro ao estender token")
		return nil, nil, fmt.Errorf("%w: %v", integrator.ErrAuthorization, err)
	}

	adAccounts, err := s.Client.GetAdAccounts(ctx, longToken.AccessToken)
	if err != nil {
		logrus.WithError(err).Error("meta: erro ao listar contas de anúncios")
		return nil, nil, err
	}

	identities := make([]integrator.AdvertiserIdentity, 0, len(adAccounts))
	for _, adAccount := range adAccounts {
		identities = append(identities, integrator.AdvertiserIdentity{
			ExternalID: adAccount.AccountID,
			Name:       adAccount.Name,
		})
	}

	grant := &integrator.TokenGrant{
		AccessToken: longToken.AccessToken,
		ExpiresAt:   integrator.ExpiryFromSeconds(longToken.ExpiresIn),
	}

	return grant, identities, nil
}

// RefreshToken não é suportado pela Graph API para tokens de longa duração
func (s *MetaIntegrator) RefreshToken(_ context.Context, _ string) (*integrator.TokenGrant, error) {
	return nil, integrator.ErrTokenRefreshUnsupported
}

// buildInsight converte uma linha da Graph API, com métricas reportadas como
// string, para o formato normalizado. Conversões somam as ações da taxonomia
// conhecida e a receita vem dos valores monetários de compra
func buildInsight(row *metadomain.InsightRow, level domain.InsightLevel) (*domain.ProviderInsight, error) {
	date, err := utils.ParseDate(row.DateStart)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q: %w", row.DateStart, err)
	}

	var conversions int64
	for _, action := range row.Actions {
		if metadomain.IsConversionAction(action.ActionType) {
			conversions += utils.ParseInt(action.Value)
		}
	}

	var revenue float64
	for _, action := range row.ActionValues {
		if metadomain.IsRevenueAction(action.ActionType) {
			revenue += utils.ParseFloat(action.Value)
		}
	}

	raw, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}

	return &domain.ProviderInsight{
		Level:        level,
		CampaignID:   row.CampaignID,
		CampaignName: row.CampaignName,
		AdID:         row.AdID,
		AdName:       row.AdName,
		Date:         *date,
		Impressions:  utils.ParseInt(row.Impressions),
		Clicks:       utils.ParseInt(row.Clicks),
		Spend:        utils.ParseFloat(row.Spend),
		Revenue:      revenue,
		Conversions:  conversions,
		CTR:          utils.ParseFloat(row.CTR),
		CPC:          utils.ParseFloat(row.CPC),
		CPM:          utils.ParseFloat(row.CPM),
		Raw:          raw,
	}, nil
}
