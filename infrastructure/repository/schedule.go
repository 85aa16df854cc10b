package repository

//go:generate mockgen -source=schedule.go -destination=mocks/schedule_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-control-api/internal/domain"
)

const (
	schedulesTable   = "dayparting_schedules"
	schedulesColumns = "s.id, s.campaign_id, s.day_of_week, s.start_time, s.end_time, s.is_active"
)

type ScheduleRepository interface {
	ListByCampaign(ctx context.Context, campaignID string) (domain.ScheduleSet, error)
	ReplaceForCampaign(ctx context.Context, campaignID string, schedules domain.ScheduleSet) (domain.ScheduleSet, error)
}

type scheduleRepository struct {
	conn *postgres.Connection
}

func NewScheduleRepository(conn *postgres.Connection) ScheduleRepository {
	return &scheduleRepository{
		conn: conn,
	}
}

func (r *scheduleRepository) ListByCampaign(ctx context.Context, campaignID string) (domain.ScheduleSet, error) {
	schedules, err := listSchedules(ctx, r.conn, []string{campaignID}, false)
	if err != nil {
		return nil, err
	}

	if set, ok := schedules[campaignID]; ok {
		return set, nil
	}
	return domain.ScheduleSet{}, nil
}

// ReplaceForCampaign grava uma janela por dia (upsert) e remove os dias que não vieram na lista
func (r *scheduleRepository) ReplaceForCampaign(ctx context.Context, campaignID string, schedules domain.ScheduleSet) (domain.ScheduleSet, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		days := make([]int, 0, len(schedules))

		for _, schedule := range schedules {
			query, args, err := squirrel.
				Insert(schedulesTable).
				Columns("id", "campaign_id", "day_of_week", "start_time", "end_time", "is_active").
				Values(schedule.ID, campaignID, int(schedule.DayOfWeek), schedule.StartTime, schedule.EndTime, schedule.IsActive).
				Suffix("ON CONFLICT (campaign_id, day_of_week) DO UPDATE SET " +
					"start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time, is_active = EXCLUDED.is_active").
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return classifyError(err, domain.ErrCampaignNotFound)
			}

			days = append(days, int(schedule.DayOfWeek))
		}

		deleteBuilder := squirrel.
			Delete(schedulesTable).
			Where(squirrel.Eq{"campaign_id": campaignID}).
			PlaceholderFormat(squirrel.Dollar)
		if len(days) > 0 {
			deleteBuilder = deleteBuilder.Where(squirrel.NotEq{"day_of_week": days})
		}

		query, args, err := deleteBuilder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao remover janelas antigas: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.ListByCampaign(ctx, campaignID)
}

// listSchedules agrupa as janelas por campanha, opcionalmente só as ativas
func listSchedules(ctx context.Context, q postgres.Queryer, campaignIDs []string, onlyActive bool) (map[string]domain.ScheduleSet, error) {
	builder := squirrel.
		Select(schedulesColumns).
		From(schedulesTable + " s").
		Where(squirrel.Eq{"s.campaign_id": campaignIDs}).
		OrderBy("s.day_of_week ASC", "s.start_time ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"s.is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar janelas de veiculação: %w", err)
	}
	defer rows.Close()

	schedules := make(map[string]domain.ScheduleSet, len(campaignIDs))
	for rows.Next() {
		var schedule domain.DaypartingSchedule
		if err := rows.Scan(
			&schedule.ID,
			&schedule.CampaignID,
			&schedule.DayOfWeek,
			&schedule.StartTime,
			&schedule.EndTime,
			&schedule.IsActive,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear janela de veiculação: %w", err)
		}
		schedules[schedule.CampaignID] = append(schedules[schedule.CampaignID], schedule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return schedules, nil
}
