package syncing

import (
	"github.com/vfg2006/ad-insights-api/internal/domain"
	"github.com/vfg2006/ad-insights-api/pkg/utils"
)

// BuildCampaignInsight monta a linha canônica de campanha a partir de um
// registro normalizado de provider
func BuildCampaignInsight(account *domain.LinkedAccount, insight *domain.ProviderInsight) *domain.CampaignInsight {
	return &domain.CampaignInsight{
		AccountID:    account.ID,
		Provider:     account.Provider,
		CampaignID:   insight.CampaignID,
		CampaignName: insight.CampaignName,
		Date:         utils.Midnight(insight.Date),
		Metrics:      computeMetrics(insight),
		RawData:      insight.Raw,
	}
}

// BuildAdInsight monta a linha canônica de anúncio a partir de um registro
// normalizado de provider
func BuildAdInsight(account *domain.LinkedAccount, insight *domain.ProviderInsight) *domain.AdInsight {
	return &domain.AdInsight{
		AccountID:  account.ID,
		Provider:   account.Provider,
		CampaignID: insight.CampaignID,
		AdID:       insight.AdID,
		AdName:     insight.AdName,
		Date:       utils.Midnight(insight.Date),
		Metrics:    computeMetrics(insight),
		RawData:    insight.Raw,
	}
}

// computeMetrics deriva as métricas das medidas brutas. Divisores zerados
// resultam em métrica zero, nunca em NaN ou infinito; medidas negativas são
// saturadas em zero. Métricas reportadas pelo próprio provider têm
// precedência sobre as derivadas
func computeMetrics(insight *domain.ProviderInsight) domain.InsightMetrics {
	impressions := clampInt(insight.Impressions)
	clicks := clampInt(insight.Clicks)
	spend := clampFloat(insight.Spend)
	conversions := clampInt(insight.Conversions)
	revenue := clampFloat(insight.Revenue)

	metrics := domain.InsightMetrics{
		Impressions: impressions,
		Clicks:      clicks,
		Spend:       spend,
		Conversions: conversions,
		Revenue:     revenue,
		CTR:         clampFloat(insight.CTR),
		CPC:         clampFloat(insight.CPC),
		CPM:         clampFloat(insight.CPM),
	}

	if metrics.CTR == 0 && impressions > 0 {
		metrics.CTR = utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100)
	}

	if metrics.CPC == 0 && clicks > 0 {
		metrics.CPC = utils.RoundWithTwoDecimalPlace(spend / float64(clicks))
	}

	if metrics.CPM == 0 && impressions > 0 {
		metrics.CPM = utils.RoundWithTwoDecimalPlace(spend / float64(impressions) * 1000)
	}

	if conversions > 0 {
		metrics.CPA = utils.RoundWithTwoDecimalPlace(spend / float64(conversions))
	}

	if spend > 0 {
		metrics.ROAS = utils.RoundWithTwoDecimalPlace(revenue / spend)
	}

	return metrics
}

func clampInt(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func clampFloat(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
