package repository

//go:generate mockgen -source=campaign.go -destination=mocks/campaign_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-control-api/internal/domain"
)

const (
	campaignsTable   = "campaigns"
	campaignsColumns = "c.id, c.brand_id, c.name, c.status, c.daily_budget, c.monthly_budget, " +
		"c.daily_spend, c.monthly_spend, c.start_date, c.end_date, c.created_at, c.updated_at"
)

type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) error
	GetByID(ctx context.Context, campaignID string) (*domain.Campaign, error)
	ListByStatus(ctx context.Context, statuses []domain.CampaignStatus) ([]*domain.Campaign, error)
	ListByBrand(ctx context.Context, brandID string) ([]*domain.Campaign, error)
	ListWithActiveSchedules(ctx context.Context) ([]*domain.Campaign, error)
	SpendByBrand(ctx context.Context, brandID *string) ([]*domain.BrandSpend, error)
	Mutate(ctx context.Context, campaignID string, fn domain.CampaignMutation) (*domain.Campaign, bool, error)
	RecordSpend(ctx context.Context, entry *domain.SpendLog, fn domain.CampaignMutation) (*domain.Campaign, error)
	ResetSpend(ctx context.Context, period domain.SpendPeriod, fn domain.CampaignMutation) (int, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	query, args, err := squirrel.
		Insert(campaignsTable).
		Columns("id", "brand_id", "name", "status", "daily_budget", "monthly_budget",
			"daily_spend", "monthly_spend", "start_date", "end_date").
		Values(campaign.ID, campaign.BrandID, campaign.Name, campaign.Status, campaign.DailyBudget,
			campaign.MonthlyBudget, campaign.DailySpend, campaign.MonthlySpend, campaign.StartDate, campaign.EndDate).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&campaign.CreatedAt, &campaign.UpdatedAt)
	if err != nil {
		return classifyError(err, domain.ErrBrandNotFound)
	}

	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	query, args, err := selectCampaigns().
		Where(squirrel.Eq{"c.id": campaignID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar campanha %s: %w", campaignID, err)
	}

	schedules, err := listSchedules(ctx, r.conn, []string{campaign.ID}, false)
	if err != nil {
		return nil, err
	}
	campaign.Schedules = schedules[campaign.ID]

	return campaign, nil
}

func (r *campaignRepository) ListByStatus(ctx context.Context, statuses []domain.CampaignStatus) ([]*domain.Campaign, error) {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, string(status))
	}

	return r.list(ctx, selectCampaigns().Where(squirrel.Eq{"c.status": values}))
}

func (r *campaignRepository) ListByBrand(ctx context.Context, brandID string) ([]*domain.Campaign, error) {
	return r.list(ctx, selectCampaigns().Where(squirrel.Eq{"c.brand_id": brandID}))
}

// ListWithActiveSchedules devolve as campanhas com pelo menos uma janela ativa, já com as janelas ativas anexadas
func (r *campaignRepository) ListWithActiveSchedules(ctx context.Context) ([]*domain.Campaign, error) {
	campaigns, err := r.list(ctx, selectCampaigns().
		Where("EXISTS (SELECT 1 FROM " + schedulesTable + " s WHERE s.campaign_id = c.id AND s.is_active)"))
	if err != nil {
		return nil, err
	}

	if len(campaigns) == 0 {
		return campaigns, nil
	}

	ids := make([]string, 0, len(campaigns))
	for _, campaign := range campaigns {
		ids = append(ids, campaign.ID)
	}

	schedules, err := listSchedules(ctx, r.conn, ids, true)
	if err != nil {
		return nil, err
	}

	for _, campaign := range campaigns {
		campaign.Schedules = schedules[campaign.ID]
	}

	return campaigns, nil
}

func (r *campaignRepository) SpendByBrand(ctx context.Context, brandID *string) ([]*domain.BrandSpend, error) {
	builder := squirrel.
		Select("b.id", "b.name",
			"COALESCE(SUM(c.daily_spend), 0)",
			"COALESCE(SUM(c.monthly_spend), 0)").
		From(brandsTable + " b").
		LeftJoin(campaignsTable + " c ON c.brand_id = b.id").
		GroupBy("b.id", "b.name").
		OrderBy("b.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if brandID != nil {
		builder = builder.Where(squirrel.Eq{"b.id": *brandID})
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

	totals := make([]*domain.BrandSpend, 0)
	for rows.Next() {
		total := &domain.BrandSpend{}
		if err := rows.Scan(&total.BrandID, &total.BrandName, &total.TotalDailySpend, &total.TotalMonthlySpend); err != nil {
			return nil, fmt.Errorf("erro ao escanear gasto da marca: %w", err)
		}
		totals = append(totals, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

// Mutate trava a campanha, deixa fn decidir a transição e grava somente se houve mudança.
// Tudo acontece na mesma transação.
func (r *campaignRepository) Mutate(ctx context.Context, campaignID string, fn domain.CampaignMutation) (*domain.Campaign, bool, error) {
	var (
		campaign *domain.Campaign
		changed  bool
	)

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		campaign, changed, err = mutateLocked(ctx, tx, campaignID, fn)
		return err
	})
	if err != nil {
		return nil, false, err
	}

	return campaign, changed, nil
}

// RecordSpend acumula o gasto e registra o lançamento no ledger como uma única unidade
func (r *campaignRepository) RecordSpend(ctx context.Context, entry *domain.SpendLog, fn domain.CampaignMutation) (*domain.Campaign, error) {
	var campaign *domain.Campaign

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		campaign, _, err = mutateLocked(ctx, tx, entry.CampaignID, fn)
		if err != nil {
			return err
		}

		return insertSpendLog(ctx, tx, entry)
	})
	if err != nil {
		return nil, err
	}

	return campaign, nil
}

// ResetSpend zera o período em todas as campanhas e, na mesma transação, aplica fn a cada campanha pausada
func (r *campaignRepository) ResetSpend(ctx context.Context, period domain.SpendPeriod, fn domain.CampaignMutation) (int, error) {
	column, err := spendColumn(period)
	if err != nil {
		return 0, err
	}

	var resetCount int

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Update(campaignsTable).
			Set(column, 0).
			Set("updated_at", squirrel.Expr("NOW()")).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return classifyError(err, domain.ErrCampaignNotFound)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		resetCount = int(affected)

		query, args, err = selectCampaigns().
			Where(squirrel.Eq{"c.status": string(domain.CampaignStatusPaused)}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		paused, err := queryCampaigns(ctx, tx, query, args)
		if err != nil {
			return err
		}

		for _, campaign := range paused {
			changed, err := fn(campaign)
			if err != nil {
				return err
			}
			if !changed {
				continue
			}
			if err := updateCampaign(ctx, tx, campaign); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return resetCount, nil
}

func (r *campaignRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.Campaign, error) {
	query, args, err := builder.OrderBy("c.created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return queryCampaigns(ctx, r.conn, query, args)
}

func selectCampaigns() squirrel.SelectBuilder {
	return squirrel.
		Select(campaignsColumns).
		From(campaignsTable + " c").
		PlaceholderFormat(squirrel.Dollar)
}

func queryCampaigns(ctx context.Context, q postgres.Queryer, query string, args []any) ([]*domain.Campaign, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func mutateLocked(ctx context.Context, tx *sql.Tx, campaignID string, fn domain.CampaignMutation) (*domain.Campaign, bool, error) {
	query, args, err := selectCampaigns().
		Where(squirrel.Eq{"c.id": campaignID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := scanCampaign(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, domain.ErrCampaignNotFound
		}
		return nil, false, fmt.Errorf("erro ao travar campanha %s: %w", campaignID, err)
	}

	if err := campaign.Validate(); err != nil {
		return nil, false, err
	}

	changed, err := fn(campaign)
	if err != nil {
		return nil, false, err
	}

	if changed {
		if err := updateCampaign(ctx, tx, campaign); err != nil {
			return nil, false, err
		}
	}

	return campaign, changed, nil
}

func updateCampaign(ctx context.Context, tx *sql.Tx, campaign *domain.Campaign) error {
	if err := campaign.Validate(); err != nil {
		return err
	}

	query, args, err := squirrel.
		Update(campaignsTable).
		Set("status", string(campaign.Status)).
		Set("daily_spend", campaign.DailySpend).
		Set("monthly_spend", campaign.MonthlySpend).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": campaign.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := tx.QueryRowContext(ctx, query, args...).Scan(&campaign.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCampaignNotFound
		}
		return classifyError(err, domain.ErrCampaignNotFound)
	}

	return nil
}

func spendColumn(period domain.SpendPeriod) (string, error) {
	switch period {
	case domain.SpendPeriodDaily:
		return "daily_spend", nil
	case domain.SpendPeriodMonthly:
		return "monthly_spend", nil
	default:
		return "", fmt.Errorf("período de gasto desconhecido: %q", period)
	}
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}
	if err := row.Scan(
		&campaign.ID,
		&campaign.BrandID,
		&campaign.Name,
		&campaign.Status,
		&campaign.DailyBudget,
		&campaign.MonthlyBudget,
		&campaign.DailySpend,
		&campaign.MonthlySpend,
		&campaign.StartDate,
		&campaign.EndDate,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return campaign, nil
}
