package domain

// Action é uma entrada das listas actions/action_values da Graph API.
// O valor vem sempre como string, mesmo quando numérico
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// InsightRow é uma linha de insight da Graph API com breakdown diário.
// Campos de anúncio só vêm preenchidos quando level=ad
type InsightRow struct {
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	AdID         string   `json:"ad_id"`
	AdName       string   `json:"ad_name"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Spend        string   `json:"spend"`
	CTR          string   `json:"ctr"`
	CPC          string   `json:"cpc"`
	CPM          string   `json:"cpm"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
}

// conversionActionTypes são os tipos de ação contabilizados como conversão
var conversionActionTypes = map[string]bool{
	"purchase": true,
	"lead":     true,
	"offsite_conversion.fb_pixel_purchase": true,
}

// revenueActionTypes são os tipos de ação cujo valor monetário conta como receita
var revenueActionTypes = map[string]bool{
	"purchase": true,
	"offsite_conversion.fb_pixel_purchase": true,
}

// IsConversionAction indica se o tipo de ação entra na contagem de conversões
func IsConversionAction(actionType string) bool {
	return conversionActionTypes[actionType]
}

// IsRevenueAction indica se o valor da ação entra na receita
func IsRevenueAction(actionType string) bool {
	return revenueActionTypes[actionType]
}
