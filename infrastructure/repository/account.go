package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
)

const (
	accountsTable = "ad_accounts a"
)

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.AdAccount, error)
	GetAccountByCustomerID(customerID string) (*domain.AdAccount, error)
	ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	SaveOrUpdate(accounts []*domain.AdAccount) error
	UpdateAccount(account *domain.UpdateAdAccountRequest) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByID(accountID string) (*domain.AdAccount, error) {
	return a.getAccount(squirrel.Eq{"a.id": accountID})
}

func (a *accountRepository) GetAccountByCustomerID(customerID string) (*domain.AdAccount, error) {
	return a.getAccount(squirrel.Eq{"a.customer_id": customerID})
}

func (a *accountRepository) getAccount(whereClause map[string]interface{}) (*domain.AdAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("a.id, a.customer_id, a.name, a.nickname, a.currency_code, a.timezone, a.user_id, a.status").
		From(accountsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := a.conn.QueryRow(accountsSQL, accountsArgs...)

	acc, err := a.deserializeAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

func (a *accountRepository) ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	builder := squirrel.
		Select("a.id, a.customer_id, a.name, a.nickname, a.currency_code, a.timezone, a.user_id, a.status").
		From(accountsTable).
		OrderBy("a.name ASC")

	if len(availableStatus) > 0 {
		builder = builder.Where(squirrel.Eq{"a.status": availableStatus})
	}

	accountsSQL, accountsArgs, err := builder.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		acc := &domain.AdAccount{}
		if err := rows.Scan(
			&acc.ID,
			&acc.CustomerID,
			&acc.Name,
			&acc.Nickname,
			&acc.CurrencyCode,
			&acc.Timezone,
			&acc.UserID,
			&acc.Status,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (a *accountRepository) SaveOrUpdate(accounts []*domain.AdAccount) error {
	for _, account := range accounts {
		query := squirrel.StatementBuilder.
			Insert("ad_accounts").
			Columns("id", "customer_id", "name", "nickname", "currency_code", "timezone", "user_id", "status").
			Values(
				account.ID,
				account.CustomerID,
				account.Name,
				account.Nickname,
				account.CurrencyCode,
				account.Timezone,
				account.UserID,
				account.Status,
			).
			Suffix(`
				ON CONFLICT (customer_id) DO UPDATE SET
					name = EXCLUDED.name,
					currency_code = EXCLUDED.currency_code,
					timezone = EXCLUDED.timezone,
					updated_at = NOW()
			`).
			PlaceholderFormat(squirrel.Dollar)

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := a.conn.Exec(sqlQuery, args...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				logrus.WithFields(logrus.Fields{
					"customer_id": account.CustomerID,
					"code":        pqErr.Code,
				}).Error("Erro ao salvar conta no banco de dados")
			}
			return fmt.Errorf("erro ao executar a query: %w", err)
		}
	}

	return nil
}

func (a *accountRepository) UpdateAccount(account *domain.UpdateAdAccountRequest) error {
	builder := squirrel.StatementBuilder.
		Update("ad_accounts").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": account.ID})

	if account.Nickname != nil {
		builder = builder.Set("nickname", *account.Nickname)
	}

	if account.Status != nil {
		builder = builder.Set("status", *account.Status)
	}

	query, args, err := builder.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = a.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (a *accountRepository) deserializeAccount(row *sql.Row) (*domain.AdAccount, error) {
	acc := &domain.AdAccount{}

	if err := row.Scan(
		&acc.ID,
		&acc.CustomerID,
		&acc.Name,
		&acc.Nickname,
		&acc.CurrencyCode,
		&acc.Timezone,
		&acc.UserID,
		&acc.Status,
	); err != nil {
		return nil, err
	}

	return acc, nil
}
