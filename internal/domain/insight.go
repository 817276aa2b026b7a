package domain

import (
	"encoding/json"
	"time"
)

// InsightLevel indica o nível de agregação de um registro de insights
type InsightLevel string

const (
	InsightLevelCampaign InsightLevel = "campaign"
	InsightLevelAd       InsightLevel = "ad"
)

// ProviderInsight é o registro normalizado que cada adapter entrega ao
// pipeline de sincronização: medidas brutas já convertidas para moeda base e
// taxonomia de conversões resolvida, datadas pelo breakdown diário do provider
type ProviderInsight struct {
	Level        InsightLevel
	CampaignID   string
	CampaignName string
	AdID         string
	AdName       string
	Date         time.Time
	Impressions  int64
	Clicks       int64
	Spend        float64
	Conversions  int64
	Revenue      float64

	// Métricas reportadas pelo próprio provider quando disponíveis;
	// zero quando ausentes (o normalizador deriva das medidas)
	CTR float64
	CPC float64
	CPM float64

	// Payload bruto do provider, para auditoria
	Raw json.RawMessage
}

// InsightMetrics agrupa as medidas e métricas derivadas persistidas em cada
// linha de insight
type InsightMetrics struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Spend       float64 `json:"spend"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPM         float64 `json:"cpm"`
	CPA         float64 `json:"cpa"`
	ROAS        float64 `json:"roas"`
}

// CampaignInsight é uma linha de insights por (conta, provider, campanha, dia)
type CampaignInsight struct {
	ID           int64           `json:"id"`
	AccountID    string          `json:"account_id"`
	Provider     Provider        `json:"provider"`
	CampaignID   string          `json:"campaign_id"`
	CampaignName string          `json:"campaign_name"`
	Date         time.Time       `json:"date"`
	Metrics      InsightMetrics  `json:"metrics"`
	RawData      json.RawMessage `json:"raw_data,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// AdInsight é uma linha de insights por (conta, provider, anúncio, dia)
type AdInsight struct {
	ID         int64           `json:"id"`
	AccountID  string          `json:"account_id"`
	Provider   Provider        `json:"provider"`
	CampaignID string          `json:"campaign_id"`
	AdID       string          `json:"ad_id"`
	AdName     string          `json:"ad_name"`
	Date       time.Time       `json:"date"`
	Metrics    InsightMetrics  `json:"metrics"`
	RawData    json.RawMessage `json:"raw_data,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
