package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
)

const (
	campaignsTable = "campaigns c"
)

type CampaignRepository interface {
	GetByID(campaignID string) (*domain.Campaign, error)
	ListByAccount(accountID string) ([]*domain.Campaign, error)
	ListDemoEnabledBefore(cutoff time.Time) ([]*domain.Campaign, error)
	SaveOrUpdate(campaign *domain.Campaign) error
	UpdateStatus(campaignID string, status domain.CampaignStatus) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) GetByID(campaignID string) (*domain.Campaign, error) {
	query, args, err := r.selectCampaign().
		Where(squirrel.Eq{"c.id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	campaign, err := r.scanCampaign(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) ListByAccount(accountID string) ([]*domain.Campaign, error) {
	query, args, err := r.selectCampaign().
		Where(squirrel.Eq{"c.account_id": accountID}).
		OrderBy("c.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryCampaigns(query, args)
}

// ListDemoEnabledBefore lista campanhas demo ainda ativas criadas antes do
// instante de corte. É a consulta usada pelo job de pausa automática.
func (r *campaignRepository) ListDemoEnabledBefore(cutoff time.Time) ([]*domain.Campaign, error) {
	query, args, err := r.selectCampaign().
		Where(squirrel.Eq{"c.demo": true, "c.status": domain.CampaignStatusEnabled}).
		Where(squirrel.Lt{"c.created_at": cutoff}).
		OrderBy("c.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryCampaigns(query, args)
}

func (r *campaignRepository) SaveOrUpdate(campaign *domain.Campaign) error {
	query := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns("id", "account_id", "external_id", "name", "status", "objective",
			"daily_budget_micros", "demo").
		Values(
			campaign.ID,
			campaign.AccountID,
			campaign.ExternalID,
			campaign.Name,
			campaign.Status,
			campaign.Objective,
			campaign.DailyBudgetMicros,
			campaign.Demo,
		).
		Suffix(`
			ON CONFLICT (external_id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				daily_budget_micros = EXCLUDED.daily_budget_micros,
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

func (r *campaignRepository) UpdateStatus(campaignID string, status domain.CampaignStatus) error {
	query, args, err := squirrel.StatementBuilder.
		Update("campaigns").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": campaignID}).
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

func (r *campaignRepository) queryCampaigns(query string, args []interface{}) ([]*domain.Campaign, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := r.scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanhas: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) selectCampaign() squirrel.SelectBuilder {
	return squirrel.
		Select("c.id, c.account_id, c.external_id, c.name, c.status, c.objective, c.daily_budget_micros, c.demo, c.created_at, c.updated_at").
		From(campaignsTable)
}

func (r *campaignRepository) scanCampaign(row rowScanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	err := row.Scan(
		&campaign.ID,
		&campaign.AccountID,
		&campaign.ExternalID,
		&campaign.Name,
		&campaign.Status,
		&campaign.Objective,
		&campaign.DailyBudgetMicros,
		&campaign.Demo,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return campaign, nil
}
