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
	adInsightsTable = "ad_insights ai"
)

type AdInsightRepository interface {
	SaveOrUpdate(insight *domain.AdInsight) error
	GetByNaturalKey(accountID string, provider domain.Provider, adID string, date time.Time) (*domain.AdInsight, error)
	GetByDateRange(accountID string, startDate, endDate time.Time) ([]*domain.AdInsight, error)
}

type adInsightRepository struct {
	conn *postgres.Connection
}

func NewAdInsightRepository(conn *postgres.Connection) AdInsightRepository {
	return &adInsightRepository{
		conn: conn,
	}
}

// SaveOrUpdate faz upsert pela chave natural (account_id, provider, ad_id,
// date)
func (r *adInsightRepository) SaveOrUpdate(insight *domain.AdInsight) error {
	query := squirrel.StatementBuilder.
		Insert("ad_insights").
		Columns(
			"account_id", "provider", "campaign_id", "ad_id", "ad_name", "date",
			"impressions", "clicks", "spend", "conversions", "revenue",
			"ctr", "cpc", "cpm", "cpa", "roas", "raw_data",
		).
		Values(
			insight.AccountID,
			insight.Provider,
			insight.CampaignID,
			insight.AdID,
			insight.AdName,
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
			ON CONFLICT (account_id, provider, ad_id, date) DO UPDATE SET
				campaign_id = EXCLUDED.campaign_id,
				ad_name = EXCLUDED.ad_name,
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

func (r *adInsightRepository) GetByNaturalKey(accountID string, provider domain.Provider, adID string, date time.Time) (*domain.AdInsight, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{
			"ai.account_id": accountID,
			"ai.provider":   provider,
			"ai.ad_id":      adID,
			"ai.date":       date.Format(insightDateLayout),
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	insight := &domain.AdInsight{}
	var rawData []byte

	err = row.Scan(
		&insight.ID,
		&insight.AccountID,
		&insight.Provider,
		&insight.CampaignID,
		&insight.AdID,
		&insight.AdName,
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
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear insight: %w", err)
	}

	insight.RawData = rawData

	return insight, nil
}

func (r *adInsightRepository) GetByDateRange(accountID string, startDate, endDate time.Time) ([]*domain.AdInsight, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"ai.account_id": accountID}).
		Where(squirrel.GtOrEq{"ai.date": startDate.Format(insightDateLayout)}).
		Where(squirrel.LtOrEq{"ai.date": endDate.Format(insightDateLayout)}).
		OrderBy("ai.date ASC", "ai.ad_id ASC").
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

	insights := make([]*domain.AdInsight, 0)
	for rows.Next() {
		insight := &domain.AdInsight{}
		var rawData []byte

		err := rows.Scan(
			&insight.ID,
			&insight.AccountID,
			&insight.Provider,
			&insight.CampaignID,
			&insight.AdID,
			&insight.AdName,
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
			return nil, fmt.Errorf("erro ao escanear insights: %w", err)
		}

		insight.RawData = rawData
		insights = append(insights, insight)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return insights, nil
}

func (r *adInsightRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"ai.id, ai.account_id, ai.provider, ai.campaign_id, ai.ad_id, ai.ad_name, ai.date",
			"ai.impressions, ai.clicks, ai.spend, ai.conversions, ai.revenue",
			"ai.ctr, ai.cpc, ai.cpm, ai.cpa, ai.roas, ai.raw_data, ai.created_at, ai.updated_at",
		).
		From(adInsightsTable).
		PlaceholderFormat(squirrel.Dollar)
}
