package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-insights-api/internal/domain"
)

const (
	campaignInsightsTable = "campaign_insights ci"

	insightDateLayout = "2006-01-02"
)

type CampaignInsightRepository interface {
	SaveOrUpdate(insight *domain.CampaignInsight) error
	GetByNaturalKey(accountID string, provider domain.Provider, campaignID string, date time.Time) (*domain.CampaignInsight, error)
	GetByDateRange(accountID string, startDate, endDate time.Time) ([]*domain.CampaignInsight, error)
}

type campaignInsightRepository struct {
	conn *postgres.Connection
}

func NewCampaignInsightRepository(conn *postgres.Connection) CampaignInsightRepository {
	return &campaignInsightRepository{
		conn: conn,
	}
}

// SaveOrUpdate faz upsert pela chave natural (account_id, provider,
// campaign_id, date): uma segunda sincronização do mesmo dia sobrescreve a
// linha em vez de duplicá-la
func (r *campaignInsightRepository) SaveOrUpdate(insight *domain.CampaignInsight) error {
	query := squirrel.StatementBuilder.
		Insert("campaign_insights").
		Columns(
			"account_id", "provider", "campaign_id", "campaign_name", "date",
			"impressions", "clicks", "spend", "conversions", "revenue",
			"ctr", "cpc", "cpm", "cpa", "roas", "raw_data",
		).
		Values(
			insight.AccountID,
			insight.Provider,
			insight.CampaignID,
			insight.CampaignName,
			insight.Date.Format(insightDateLayout),
			insight.Metrics.Impressions,
			insight.Metrics.Clicks,
			insight.Metrics.Spend,
			insight.Metrics.Conversions,
			insight.Metrics.Revenue,
			insight.Metrics.CTR,
			insight.Metrics.CPC,
			insight.Metrics.CPM,
			insight.Metrics.CPA,
			insight.Metrics.ROAS,
			[]byte(insight.RawData),
		).
		Suffix(`
			ON CONFLICT (account_id, provider, campaign_id, date) DO UPDATE SET
				campaign_name = EXCLUDED.campaign_name,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				spend = EXCLUDED.spend,
				conversions = EXCLUDED.conversions,
				revenue = EXCLUDED.revenue,
				ctr = EXCLUDED.ctr,
				cpc = EXCLUDED.cpc,
				cpm = EXCLUDED.cpm,
				cpa = EXCLUDED.cpa,
				roas = EXCLUDED.roas,
				raw_data = EXCLUDED.raw_data,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *campaignInsightRepository) GetByNaturalKey(accountID string, provider domain.Provider, campaignID string, date time.Time) (*domain.CampaignInsight, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{
			"ci.account_id":  accountID,
			"ci.provider":    provider,
			"ci.campaign_id": campaignID,
			"ci.date":        date.Format(insightDateLayout),
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	insight, err := scanCampaignInsight(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear insight: %w", err)
	}

	return insight, nil
}

func (r *campaignInsightRepository) GetByDateRange(accountID string, startDate, endDate time.Time) ([]*domain.CampaignInsight, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"ci.account_id": accountID}).
		Where(squirrel.GtOrEq{"ci.date": startDate.Format(insightDateLayout)}).
		Where(squirrel.LtOrEq{"ci.date": endDate.Format(insightDateLayout)}).
		OrderBy("ci.date ASC", "ci.campaign_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	insights := make([]*domain.CampaignInsight, 0)
	for rows.Next() {
		insight, err := scanCampaignInsightRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear insights: %w", err)
		}
		insights = append(insights, insight)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return insights, nil
}

func (r *campaignInsightRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"ci.id, ci.account_id, ci.provider, ci.campaign_id, ci.campaign_name, ci.date",
			"ci.impressions, ci.clicks, ci.spend, ci.conversions, ci.revenue",
			"ci.ctr, ci.cpc, ci.cpm, ci.cpa, ci.roas, ci.raw_data, ci.created_at, ci.updated_at",
		).
		From(campaignInsightsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func scanCampaignInsight(row *sql.Row) (*domain.CampaignInsight, error) {
	insight := &domain.CampaignInsight{}
	var rawData []byte

	err := row.Scan(
		&insight.ID,
		&insight.AccountID,
		&insight.Provider,
		&insight.CampaignID,
		&insight.CampaignName,
		&insight.Date,
		&insight.Metrics.Impressions,
		&insight.Metrics.Clicks,
		&insight.Metrics.Spend,
		&insight.Metrics.Conversions,
		&insight.Metrics.Revenue,
		&insight.Metrics.CTR,
		&insight.Metrics.CPC,
		&insight.Metrics.CPM,
		&insight.Metrics.CPA,
		&insight.Metrics.ROAS,
		&rawData,
		&insight.CreatedAt,
		&insight.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	insight.RawData = rawData

	return insight, nil
}

func scanCampaignInsightRows(rows *sql.Rows) (*domain.CampaignInsight, error) {
	insight := &domain.CampaignInsight{}
	var rawData []byte

	err := rows.Scan(
		&insight.ID,
		&insight.AccountID,
		&insight.Provider,
		&insight.CampaignID,
		&insight.CampaignName,
		&insight.Date,
		&insight.Metrics.Impressions,
		&insight.Metrics.Clicks,
		&insight.Metrics.Spend,
		&insight.Metrics.Conversions,
		&insight.Metrics.Revenue,
		&insight.Metrics.CTR,
		&insight.Metrics.CPC,
		&insight.Metrics.CPM,
		&insight.Metrics.CPA,
		&insight.Metrics.ROAS,
		&rawData,
		&insight.CreatedAt,
		&insight.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	insight.RawData = rawData

	return insight, nil
}
