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
	linkedAccountsTable = "linked_accounts la"
)

// conflito da chave natural (user_id, provider, external_advertiser_id);
// COALESCE porque o ID externo pode ser nulo até o provider resolvê-lo
const linkedAccountConflictClause = `
	ON CONFLICT (user_id, provider, COALESCE(external_advertiser_id, '')) DO UPDATE SET
		access_token = EXCLUDED.access_token,
		refresh_token = EXCLUDED.refresh_token,
		expires_at = EXCLUDED.expires_at,
		updated_at = NOW()
`

type LinkedAccountRepository interface {
	GetByID(accountID string) (*domain.LinkedAccount, error)
	ListAccounts() ([]*domain.LinkedAccount, error)
	ListByUser(userID string) ([]*domain.LinkedAccount, error)
	SaveOrUpdate(accounts []*domain.LinkedAccount) error
	UpdateToken(accountID string, accessToken string, refreshToken *string, expiresAt *time.Time) error
	Delete(accountID string) error
}

type linkedAccountRepository struct {
	conn *postgres.Connection
}

func NewLinkedAccountRepository(conn *postgres.Connection) LinkedAccountRepository {
	return &linkedAccountRepository{
		conn: conn,
	}
}

func (r *linkedAccountRepository) GetByID(accountID string) (*domain.LinkedAccount, error) {
	query, args, err := squirrel.
		Select("la.id, la.user_id, la.provider, la.external_advertiser_id, la.access_token, la.refresh_token, la.expires_at, la.created_at, la.updated_at").
		From(linkedAccountsTable).
		Where(squirrel.Eq{"la.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	account, err := r.deserializeAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return account, nil
}

func (r *linkedAccountRepository) ListAccounts() ([]*domain.LinkedAccount, error) {
	return r.listAccounts(nil)
}

func (r *linkedAccountRepository) ListByUser(userID string) ([]*domain.LinkedAccount, error) {
	return r.listAccounts(squirrel.Eq{"la.user_id": userID})
}

func (r *linkedAccountRepository) listAccounts(whereClause any) ([]*domain.LinkedAccount, error) {
	queryBuilder := squirrel.
		Select("la.id, la.user_id, la.provider, la.external_advertiser_id, la.access_token, la.refresh_token, la.expires_at, la.created_at, la.updated_at").
		From(linkedAccountsTable).
		OrderBy("la.created_at ASC").
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

	accounts := make([]*domain.LinkedAccount, 0)

	for rows.Next() {
		account := &domain.LinkedAccount{}
		if err := rows.Scan(
			&account.ID,
			&account.UserID,
			&account.Provider,
			&account.ExternalAdvertiserID,
			&account.AccessToken,
			&account.RefreshToken,
			&account.ExpiresAt,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a conta: %w", err)
		}

		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accounts, nil
}

// SaveOrUpdate insere as contas, atualizando tokens quando a mesma identidade
// externa já está vinculada (reconexão não duplica)
func (r *linkedAccountRepository) SaveOrUpdate(accounts []*domain.LinkedAccount) error {
	if len(accounts) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("linked_accounts").
		Columns("id", "user_id", "provider", "external_advertiser_id", "access_token", "refresh_token", "expires_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, account := range accounts {
		query = query.Values(
			account.ID,
			account.UserID,
			account.Provider,
			account.ExternalAdvertiserID,
			account.AccessToken,
			account.RefreshToken,
			account.ExpiresAt,
		)
	}

	query = query.Suffix(linkedAccountConflictClause)

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

// UpdateToken atualiza o token da conta em vigor, nunca cria linha nova.
// O refresh token só é substituído quando o provider devolve um novo
func (r *linkedAccountRepository) UpdateToken(accountID string, accessToken string, refreshToken *string, expiresAt *time.Time) error {
	builder := squirrel.
		Update("linked_accounts").
		Set("access_token", accessToken).
		Set("expires_at", expiresAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar)

	if refreshToken != nil {
		builder = builder.Set("refresh_token", refreshToken)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("conta não encontrada: %s", accountID)
	}

	return nil
}

// Delete remove a conta; as linhas de insights e logs caem em cascata pelas
// foreign keys
func (r *linkedAccountRepository) Delete(accountID string) error {
	query, args, err := squirrel.
		Delete("linked_accounts").
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("conta não encontrada: %s", accountID)
	}

	return nil
}

func (r *linkedAccountRepository) deserializeAccount(row *sql.Row) (*domain.LinkedAccount, error) {
	account := &domain.LinkedAccount{}

	if err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.Provider,
		&account.ExternalAdvertiserID,
		&account.AccessToken,
		&account.RefreshToken,
		&account.ExpiresAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return account, nil
}
