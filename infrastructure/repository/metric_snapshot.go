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
	metricSnapshotsTable = "metric_snapshots ms"
)

type MetricSnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.MetricSnapshot) error
	GetLatestByCampaign(accountID, campaignID string) (*domain.MetricSnapshot, error)
	GetHistory(accountID, campaignID string, days int) ([]*domain.MetricSnapshot, error)
	DeleteOlderThan(days int) (int64, error)
}

type metricSnapshotRepository struct {
	conn *postgres.Connection
}

func NewMetricSnapshotRepository(conn *postgres.Connection) MetricSnapshotRepository {
	return &metricSnapshotRepository{
		conn: conn,
	}
}

// SaveOrUpdate grava o snapshot do dia para a campanha. Uma nova coleta no
// mesmo dia substitui a anterior; dias diferentes geram registros distintos.
func (r *metricSnapshotRepository) SaveOrUpdate(snapshot *domain.MetricSnapshot) error {
	query := squirrel.StatementBuilder.
		Insert("metric_snapshots").
		Columns("account_id", "campaign_id", "date", "cost_micros", "daily_budget_micros",
			"impressions", "clicks", "conversions", "ctr", "cpa_micros", "roas", "captured_at").
		Values(
			snapshot.AccountID,
			snapshot.CampaignID,
			snapshot.CapturedAt.Format("2006-01-02"),
			snapshot.CostMicros,
			snapshot.DailyBudgetMicros,
			snapshot.Impressions,
			snapshot.Clicks,
			snapshot.Conversions,
			snapshot.CTR,
			snapshot.CPAMicros,
			snapshot.ROAS,
			snapshot.CapturedAt,
		).
		Suffix(`
			ON CONFLICT (campaign_id, date) DO UPDATE SET
				cost_micros = EXCLUDED.cost_micros,
				daily_budget_micros = EXCLUDED.daily_budget_micros,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				conversions = EXCLUDED.conversions,
				ctr = EXCLUDED.ctr,
				cpa_micros = EXCLUDED.cpa_micros,
				roas = EXCLUDED.roas,
				captured_at = EXCLUDED.captured_at
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

func (r *metricSnapshotRepository) GetLatestByCampaign(accountID, campaignID string) (*domain.MetricSnapshot, error) {
	query, args, err := r.selectSnapshot().
		Where(squirrel.Eq{"ms.account_id": accountID, "ms.campaign_id": campaignID}).
		OrderBy("ms.captured_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

// GetHistory retorna a janela histórica da campanha: snapshots dos últimos N
// dias anteriores a hoje, do mais recente para o mais antigo.
func (r *metricSnapshotRepository) GetHistory(accountID, campaignID string, days int) ([]*domain.MetricSnapshot, error) {
	today := time.Now().Format("2006-01-02")
	startDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := r.selectSnapshot().
		Where(squirrel.Eq{"ms.account_id": accountID, "ms.campaign_id": campaignID}).
		Where(squirrel.GtOrEq{"ms.date": startDate}).
		Where(squirrel.Lt{"ms.date": today}).
		OrderBy("ms.date DESC").
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

	snapshots := make([]*domain.MetricSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *metricSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("metric_snapshots").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *metricSnapshotRepository) selectSnapshot() squirrel.SelectBuilder {
	return squirrel.
		Select("ms.id, ms.account_id, ms.campaign_id, ms.cost_micros, ms.daily_budget_micros, ms.impressions, ms.clicks, ms.conversions, ms.ctr, ms.cpa_micros, ms.roas, ms.captured_at, ms.created_at").
		From(metricSnapshotsTable)
}

func (r *metricSnapshotRepository) scanSnapshot(row rowScanner) (*domain.MetricSnapshot, error) {
	snapshot := &domain.MetricSnapshot{}

	err := row.Scan(
		&snapshot.ID,
		&snapshot.AccountID,
		&snapshot.CampaignID,
		&snapshot.CostMicros,
		&snapshot.DailyBudgetMicros,
		&snapshot.Impressions,
		&snapshot.Clicks,
		&snapshot.Conversions,
		&snapshot.CTR,
		&snapshot.CPAMicros,
		&snapshot.ROAS,
		&snapshot.CapturedAt,
		&snapshot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}
