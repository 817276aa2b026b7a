package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-insights-api/infrastructure/integrator/meta/domain"
)

type responseInsights struct {
	Data []metadomain.InsightRow `json:"data"`
}

// GetInsights busca os insights de uma conta de anúncios com breakdown
// diário no nível informado (campaign ou ad)
func (c *MetaClient) GetInsights(ctx context.Context, accessToken, advertiserID, level string, since, until time.Time) ([]metadomain.InsightRow, error) {
	fields := "campaign_id,campaign_name,impressions,clicks,spend,actions,action_values,ctr,cpc,cpm"
	if level == LevelAd {
		fields += ",ad_id,ad_name"
	}

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", since.Format(time.DateOnly), until.Format(time.DateOnly))

	params := &url.Values{}
	params.Add("fields", fields)
	params.Add("level", level)
	params.Add("time_range", timeRange)
	params.Add("time_increment", "1")
	params.Add("limit", "500")
	params.Add("access_token", accessToken)

	requestURL := fmt.Sprintf("%s/act_%s/insights?%s", c.Cfg.Meta.URL, advertiserID, params.Encode())

	body, err := c.doGet(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var response responseInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("meta: erro ao decodificar JSON de insights")
		return nil, err
	}

	return response.Data, nil
}
