package domain

// Campaign identifica a campanha em um resultado de busca GAQL
type Campaign struct {
	ResourceName string `json:"resourceName"`
	ID           string `json:"id"`
	Name         string `json:"name"`
}

// Ad identifica o anúncio dentro de um ad group
type Ad struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AdGroupAd é o vínculo anúncio/ad group retornado no nível de anúncio
type AdGroupAd struct {
	Ad Ad `json:"ad"`
}

// Metrics são as métricas GAQL. Campos int64 chegam como string na API REST;
// valores monetários chegam em micros e precisam ser divididos por 1e6
type Metrics struct {
	Impressions      string  `json:"impressions"`
	Clicks           string  `json:"clicks"`
	CostMicros       string  `json:"costMicros"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversionsValue"`
	CTR              float64 `json:"ctr"`
	AverageCPC       float64 `json:"averageCpc"`
	AverageCPM       float64 `json:"averageCpm"`
}

// Segments carrega o breakdown diário solicitado via segments.date
type Segments struct {
	Date string `json:"date"`
}

// SearchResult é uma linha retornada por googleAds:search
type SearchResult struct {
	Campaign  *Campaign  `json:"campaign"`
	AdGroupAd *AdGroupAd `json:"adGroupAd"`
	Metrics   *Metrics   `json:"metrics"`
	Segments  *Segments  `json:"segments"`
}
