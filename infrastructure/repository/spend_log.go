package repository

//go:generate mockgen -source=spend_log.go -destination=mocks/spend_log_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/campaign-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-control-api/internal/domain"
)

const spendLogsTable = "spend_logs"

// SpendLogRepository só lê o ledger. Novos lançamentos entram por CampaignRepository.RecordSpend.
type SpendLogRepository interface {
	ListByCampaign(ctx context.Context, campaignID string, limit uint64) ([]*domain.SpendLog, error)
	SumByCampaignSince(ctx context.Context, campaignID string, since time.Time) (decimal.Decimal, error)
}

type spendLogRepository struct {
	conn *postgres.Connection
}

func NewSpendLogRepository(conn *postgres.Connection) SpendLogRepository {
	return &spendLogRepository{
		conn: conn,
	}
}

func (r *spendLogRepository) ListByCampaign(ctx context.Context, campaignID string, limit uint64) ([]*domain.SpendLog, error) {
	builder := squirrel.
		Select("id", "campaign_id", "amount", "timestamp", "description").
		From(spendLogsTable).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		OrderBy("timestamp DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	logs := make([]*domain.SpendLog, 0)
	for rows.Next() {
		entry := &domain.SpendLog{}
		if err := rows.Scan(
			&entry.ID,
			&entry.CampaignID,
			&entry.Amount,
			&entry.Timestamp,
			&entry.Description,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
		}
		logs = append(logs, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return logs, nil
}

func (r *spendLogRepository) SumByCampaignSince(ctx context.Context, campaignID string, since time.Time) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(amount), 0)").
		From(spendLogsTable).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		Where(squirrel.GtOrEq{"timestamp": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total decimal.Decimal
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("erro ao somar lançamentos: %w", err)
	}

	return total, nil
}

func insertSpendLog(ctx context.Context, q postgres.Queryer, entry *domain.SpendLog) error {
	query, args, err := squirrel.
		Insert(spendLogsTable).
		Columns("id", "campaign_id", "amount", "description").
		Values(entry.ID, entry.CampaignID, entry.Amount, entry.Description).
		Suffix("RETURNING timestamp").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := q.QueryRowContext(ctx, query, args...).Scan(&entry.Timestamp); err != nil {
		return classifyError(err, domain.ErrCampaignNotFound)
	}

	return nil
}
