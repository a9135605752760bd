package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
)

const (
	usersTable = "users u"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(userID int) (*domain.User, error)
	UpdateUser(user *domain.User) error
	GetUserLinkedAccounts(userID int) ([]string, error)
	LinkUserAccount(userID int, accountID string) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("users").
		Columns("name", "lastname", "email", "password_hash", "active", "role_id").
		Values(
			user.Name,
			user.Lastname,
			user.Email,
			user.PasswordHash,
			user.Active,
			user.RoleID,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, err
	}

	return user, nil
}

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	return r.getUser(squirrel.Eq{"u.email": email})
}

func (r *userRepository) GetUserByID(userID int) (*domain.User, error) {
	return r.getUser(squirrel.Eq{"u.id": userID})
}

func (r *userRepository) getUser(whereClause map[string]interface{}) (*domain.User, error) {
	query, args, err := squirrel.
		Select("u.id, u.name, u.lastname, u.email, u.password_hash, u.active, u.role_id, u.deleted, u.deleted_at, u.created_at, u.updated_at").
		From(usersTable).
		Where(whereClause).
		Where(squirrel.Eq{"u.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user := &domain.User{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.Deleted,
		&user.DeletedAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) UpdateUser(user *domain.User) error {
	query, args, err := squirrel.StatementBuilder.
		Update("users").
		Set("name", user.Name).
		Set("lastname", user.Lastname).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Set("active", user.Active).
		Set("role_id", user.RoleID).
		Set("deleted", user.Deleted).
		Set("deleted_at", user.DeletedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": user.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserLinkedAccounts(userID int) ([]string, error) {
	query, args, err := squirrel.
		Select("ua.account_id").
		From("user_accounts ua").
		Where(squirrel.Eq{"ua.user_id": userID}).
		OrderBy("ua.account_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accountIDs := make([]string, 0)
	for rows.Next() {
		var accountID string
		if err := rows.Scan(&accountID); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta vinculada: %w", err)
		}
		accountIDs = append(accountIDs, accountID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accountIDs, nil
}

func (r *userRepository) LinkUserAccount(userID int, accountID string) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("user_accounts").
		Columns("user_id", "account_id").
		Values(userID, accountID).
		Suffix("ON CONFLICT (user_id, account_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
