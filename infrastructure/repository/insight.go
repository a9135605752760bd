package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
)

const (
	insightsTable = "insights i"
)

type InsightRepository interface {
	Insert(insight *domain.Insight) error
	GetByID(insightID string) (*domain.Insight, error)
	GetLatestActiveByKey(accountID, campaignID string, insightType domain.InsightType) (*domain.Insight, error)
	ListActiveByUser(userID int, limit uint64) ([]*domain.Insight, error)
	Dismiss(insightID string, userID int) (bool, error)
}

type insightRepository struct {
	conn *postgres.Connection
}

func NewInsightRepository(conn *postgres.Connection) InsightRepository {
	return &insightRepository{
		conn: conn,
	}
}

func (r *insightRepository) Insert(insight *domain.Insight) error {
	actionsJSON, err := json.Marshal(insight.SuggestedActions)
	if err != nil {
		return fmt.Errorf("erro ao serializar suggested_actions para JSON: %w", err)
	}

	campaignID := ""
	if insight.CampaignID != nil {
		campaignID = *insight.CampaignID
	}

	createdAt := insight.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("insights").
		Columns("id", "user_id", "account_id", "campaign_id", "type", "priority",
			"title", "message", "suggested_actions", "dismissed", "created_at", "created_date").
		Values(
			insight.ID,
			insight.UserID,
			insight.AccountID,
			campaignID,
			insight.Type,
			insight.Priority,
			insight.Title,
			insight.Message,
			actionsJSON,
			insight.Dismissed,
			createdAt,
			createdAt.Format("2006-01-02"),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code != uniqueViolationCode {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return err
	}

	return nil
}

func (r *insightRepository) GetByID(insightID string) (*domain.Insight, error) {
	query, args, err := r.selectInsight().
		Where(squirrel.Eq{"i.id": insightID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	insight, err := r.scanInsight(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear insight: %w", err)
	}

	return insight, nil
}

// GetLatestActiveByKey busca o insight ativo mais recente para a chave de
// deduplicação (conta, campanha, tipo). Insights de conta usam campaignID vazio.
func (r *insightRepository) GetLatestActiveByKey(accountID, campaignID string, insightType domain.InsightType) (*domain.Insight, error) {
	query, args, err := r.selectInsight().
		Where(squirrel.Eq{
			"i.account_id":  accountID,
			"i.campaign_id": campaignID,
			"i.type":        insightType,
			"i.dismissed":   false,
		}).
		OrderBy("i.created_at DESC", "i.seq DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	insight, err := r.scanInsight(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear insight: %w", err)
	}

	return insight, nil
}

// ListActiveByUser lista os insights não descartados de um usuário, do mais
// recente para o mais antigo. A coluna seq desempata criações no mesmo instante.
func (r *insightRepository) ListActiveByUser(userID int, limit uint64) ([]*domain.Insight, error) {
	builder := r.selectInsight().
		Where(squirrel.Eq{"i.user_id": userID, "i.dismissed": false}).
		OrderBy("i.created_at DESC", "i.seq DESC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.
		PlaceholderFormat(squirrel.Dollar).
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

	insights := make([]*domain.Insight, 0)
	for rows.Next() {
		insight, err := r.scanInsightRows(rows)
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

// Dismiss marca um insight como descartado. A operação é unidirecional e
// idempotente: um insight já descartado não é alterado de novo.
func (r *insightRepository) Dismiss(insightID string, userID int) (bool, error) {
	query, args, err := squirrel.StatementBuilder.
		Update("insights").
		Set("dismissed", true).
		Set("dismissed_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": insightID, "user_id": userID, "dismissed": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *insightRepository) selectInsight() squirrel.SelectBuilder {
	return squirrel.
		Select("i.id, i.user_id, i.account_id, i.campaign_id, i.type, i.priority, i.title, i.message, i.suggested_actions, i.dismissed, i.created_at").
		From(insightsTable)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *insightRepository) scanInsight(row rowScanner) (*domain.Insight, error) {
	insight := &domain.Insight{}
	var campaignID string
	var actionsJSON []byte

	err := row.Scan(
		&insight.ID,
		&insight.UserID,
		&insight.AccountID,
		&campaignID,
		&insight.Type,
		&insight.Priority,
		&insight.Title,
		&insight.Message,
		&actionsJSON,
		&insight.Dismissed,
		&insight.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if campaignID != "" {
		insight.CampaignID = &campaignID
	}

	if actionsJSON != nil {
		if err := json.Unmarshal(actionsJSON, &insight.SuggestedActions); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de suggested_actions: %w", err)
		}
	}

	return insight, nil
}

func (r *insightRepository) scanInsightRows(rows *sql.Rows) (*domain.Insight, error) {
	return r.scanInsight(rows)
}
