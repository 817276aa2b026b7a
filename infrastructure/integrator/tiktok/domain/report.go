package domain

// ReportDimensions identifica a entidade e o dia de uma linha do relatório
type ReportDimensions struct {
	CampaignID  string `json:"campaign_id"`
	AdID        string `json:"ad_id"`
	StatTimeDay string `json:"stat_time_day"`
}

// ReportMetrics são as métricas do relatório integrado; a API reporta
// todos os valores como string
type ReportMetrics struct {
	CampaignName                string `json:"campaign_name"`
	AdName                      string `json:"ad_name"`
	Impressions                 string `json:"impressions"`
	Clicks                      string `json:"clicks"`
	Spend                       string `json:"spend"`
	Conversions                 string `json:"conversions"`
	ConversionRate              string `json:"conversion_rate"`
	CTR                         string `json:"ctr"`
	CPC                         string `json:"cpc"`
	CPM                         string `json:"cpm"`
	TotalCostPerCompletePayment string `json:"total_cost_per_complete_payment"`
}

// ReportRow é um item da lista retornada por report/integrated/get
type ReportRow struct {
	Dimensions ReportDimensions `json:"dimensions"`
	Metrics    ReportMetrics    `json:"metrics"`
}
