package syncing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-insights-api/internal/domain"
)

func TestComputeMetrics(t *testing.T) {
	tests := []struct {
		name     string
		insight  *domain.ProviderInsight
		expected domain.InsightMetrics
	}{
		{
			name: "Métricas derivadas das medidas brutas",
			insight: &domain.ProviderInsight{
				Impressions: 1000,
				Clicks:      20,
				Spend:       10.0,
				Conversions: 2,
				Revenue:     50.0,
			},
			expected: domain.InsightMetrics{
				Impressions: 1000,
				Clicks:      20,
				Spend:       10.0,
				Conversions: 2,
				Revenue:     50.0,
				CTR:         2.0,  // 20 / 1000 * 100
				CPC:         0.5,  // 10 / 20
				CPM:         10.0, // 10 / 1000 * 1000
				CPA:         5.0,  // 10 / 2
				ROAS:        5.0,  // 50 / 10
			},
		},
		{
			name: "Sem conversões o CPA é zero, nunca infinito",
			insight: &domain.ProviderInsight{
				Impressions: 500,
				Clicks:      10,
				Spend:       100.0,
				Conversions: 0,
			},
			expected: domain.InsightMetrics{
				Impressions: 500,
				Clicks:      10,
				Spend:       100.0,
				CTR:         2.0,
				CPC:         10.0,
				CPM:         200.0,
				CPA:         0,
				ROAS:        0,
			},
		},
		{
			name: "CPA com conversões",
			insight: &domain.ProviderInsight{
				Spend:       100.0,
				Conversions: 5,
			},
			expected: domain.InsightMetrics{
				Spend:       100.0,
				Conversions: 5,
				CPA:         20.0,
			},
		},
		{
			name: "Sem gasto o ROAS é zero mesmo com receita",
			insight: &domain.ProviderInsight{
				Spend:   0,
				Revenue: 50.0,
			},
			expected: domain.InsightMetrics{
				Revenue: 50.0,
				ROAS:    0,
			},
		},
		{
			name: "ROAS com gasto e receita",
			insight: &domain.ProviderInsight{
				Spend:   50.0,
				Revenue: 150.0,
			},
			expected: domain.InsightMetrics{
				Spend:   50.0,
				Revenue: 150.0,
				ROAS:    3.0,
			},
		},
		{
			name: "Medidas negativas são saturadas em zero",
			insight: &domain.ProviderInsight{
				Impressions: -100,
				Clicks:      -5,
				Spend:       -10.0,
				Conversions: -1,
				Revenue:     -20.0,
			},
			expected: domain.InsightMetrics{},
		},
		{
			name: "Métricas reportadas pelo provider têm precedência sobre as derivadas",
			insight: &domain.ProviderInsight{
				Impressions: 1000,
				Clicks:      20,
				Spend:       10.0,
				CTR:         1.85,
				CPC:         0.47,
				CPM:         9.3,
			},
			expected: domain.InsightMetrics{
				Impressions: 1000,
				Clicks:      20,
				Spend:       10.0,
				CTR:         1.85,
				CPC:         0.47,
				CPM:         9.3,
			},
		},
		{
			name: "Derivadas arredondadas em duas casas decimais",
			insight: &domain.ProviderInsight{
				Impressions: 3000,
				Clicks:      7,
				Spend:       10.0,
				Conversions: 3,
			},
			expected: domain.InsightMetrics{
				Impressions: 3000,
				Clicks:      7,
				Spend:       10.0,
				Conversions: 3,
				CTR:         0.23, // 7 / 3000 * 100 = 0.2333...
				CPC:         1.43, // 10 / 7 = 1.4285...
				CPM:         3.33, // 10 / 3000 * 1000 = 3.3333...
				CPA:         3.33, // 10 / 3
			},
		},
		{
			name:     "Medidas zeradas não derivam nada",
			insight:  &domain.ProviderInsight{},
			expected: domain.InsightMetrics{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, computeMetrics(tt.insight))
		})
	}
}

func TestBuildCampaignInsight(t *testing.T) {
	account := &domain.LinkedAccount{
		ID:       "ACC001",
		Provider: domain.ProviderMeta,
	}

	insight := &domain.ProviderInsight{
		Level:        domain.InsightLevelCampaign,
		CampaignID:   "CAMP001",
		CampaignName: "Campanha de Verão",
		Date:         time.Date(2024, 6, 15, 18, 45, 12, 0, time.UTC),
		Impressions:  1000,
		Clicks:       20,
		Spend:        10.0,
		Raw:          []byte(`{"campaign_id":"CAMP001"}`),
	}

	row := BuildCampaignInsight(account, insight)

	assert.Equal(t, "ACC001", row.AccountID)
	assert.Equal(t, domain.ProviderMeta, row.Provider)
	assert.Equal(t, "CAMP001", row.CampaignID)
	assert.Equal(t, "Campanha de Verão", row.CampaignName)
	// a linha é datada pela meia-noite UTC do dia do breakdown
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), row.Date)
	assert.Equal(t, int64(1000), row.Metrics.Impressions)
	assert.JSONEq(t, `{"campaign_id":"CAMP001"}`, string(row.RawData))
}

// A mesma entrada produz sempre a mesma linha, inclusive a chave natural;
// é o que garante que passadas repetidas sobrescrevem em vez de duplicar
func TestBuildCampaignInsight_Deterministico(t *testing.T) {
	account := &domain.LinkedAccount{
		ID:       "ACC001",
		Provider: domain.ProviderGoogle,
	}

	insight := &domain.ProviderInsight{
		Level:        domain.InsightLevelCampaign,
		CampaignID:   "CAMP001",
		CampaignName: "Campanha de Inverno",
		Date:         time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC),
		Impressions:  2000,
		Clicks:       40,
		Spend:        15.0,
		Conversions:  4,
		Revenue:      120.0,
	}

	first := BuildCampaignInsight(account, insight)
	second := BuildCampaignInsight(account, insight)

	assert.Equal(t, first, second)
	assert.Equal(t, first.AccountID, second.AccountID)
	assert.Equal(t, first.CampaignID, second.CampaignID)
	assert.Equal(t, first.Date, second.Date)
}

func TestBuildAdInsight(t *testing.T) {
	account := &domain.LinkedAccount{
		ID:       "ACC001",
		Provider: domain.ProviderTikTok,
	}

	insight := &domain.ProviderInsight{
		Level:      domain.InsightLevelAd,
		CampaignID: "CAMP001",
		AdID:       "AD001",
		AdName:     "Criativo A",
		Date:       time.Date(2024, 6, 15, 3, 0, 0, 0, time.UTC),
		Clicks:     5,
	}

	row := BuildAdInsight(account, insight)

	assert.Equal(t, "ACC001", row.AccountID)
	assert.Equal(t, domain.ProviderTikTok, row.Provider)
	assert.Equal(t, "CAMP001", row.CampaignID)
	assert.Equal(t, "AD001", row.AdID)
	assert.Equal(t, "Criativo A", row.AdName)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), row.Date)
	assert.Equal(t, int64(5), row.Metrics.Clicks)
}
