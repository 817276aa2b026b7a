package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-insights-api/internal/domain"
)

const (
	apiRequestLogsTable = "api_request_logs arl"
)

// ApiRequestLogRepository persiste o audit log de chamadas externas.
// Append-only: não há update nem delete
type ApiRequestLogRepository interface {
	Save(entry *domain.ApiRequestLog) error
	ListRecent(limit uint64) ([]*domain.ApiRequestLog, error)
	ListByAccount(accountID string, limit uint64) ([]*domain.ApiRequestLog, error)
}

type apiRequestLogRepository struct {
	conn *postgres.Connection
}

func NewApiRequestLogRepository(conn *postgres.Connection) ApiRequestLogRepository {
	return &apiRequestLogRepository{
		conn: conn,
	}
}

func (r *apiRequestLogRepository) Save(entry *domain.ApiRequestLog) error {
	query := squirrel.StatementBuilder.
		Insert("api_request_logs").
		Columns("provider", "account_id", "endpoint", "method", "status_code", "duration_ms", "response_summary").
		Values(
			entry.Provider,
			entry.AccountID,
			entry.Endpoint,
			entry.Method,
			entry.StatusCode,
			entry.DurationMs,
			[]byte(entry.ResponseSummary),
		).
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

func (r *apiRequestLogRepository) ListRecent(limit uint64) ([]*domain.ApiRequestLog, error) {
	return r.list(nil, limit)
}

func (r *apiRequestLogRepository) ListByAccount(accountID string, limit uint64) ([]*domain.ApiRequestLog, error) {
	return r.list(squirrel.Eq{"arl.account_id": accountID}, limit)
}

func (r *apiRequestLogRepository) list(whereClause any, limit uint64) ([]*domain.ApiRequestLog, error) {
	queryBuilder := squirrel.
		Select("arl.id, arl.provider, arl.account_id, arl.endpoint, arl.method, arl.status_code, arl.duration_ms, arl.response_summary, arl.created_at").
		From(apiRequestLogsTable).
		OrderBy("arl.created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	if whereClause != nil {
		queryBuilder = queryBuilder.Where(whereClause)
	}

	query, args, err := queryBuilder.ToSql()
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

	entries := make([]*domain.ApiRequestLog, 0)
	for rows.Next() {
		entry := &domain.ApiRequestLog{}
		var summary []byte

		if err := rows.Scan(
			&entry.ID,
			&entry.Provider,
			&entry.AccountID,
			&entry.Endpoint,
			&entry.Method,
			&entry.StatusCode,
			&entry.DurationMs,
			&summary,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear log: %w", err)
		}

		entry.ResponseSummary = summary
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
