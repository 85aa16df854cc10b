package repository

//go:generate mockgen -source=brand.go -destination=mocks/brand_mock.go -package=mocks

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
	brandsTable   = "brands"
	brandsColumns = "b.id, b.name, b.description, b.is_active, b.created_at, b.updated_at"
)

type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	GetByID(ctx context.Context, brandID string) (*domain.Brand, error)
	List(ctx context.Context) ([]*domain.Brand, error)
	Update(ctx context.Context, brand *domain.Brand) error
	Delete(ctx context.Context, brandID string) error
}

type brandRepository struct {
	conn *postgres.Connection
}

func NewBrandRepository(conn *postgres.Connection) BrandRepository {
	return &brandRepository{
		conn: conn,
	}
}

func (r *brandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	query, args, err := squirrel.
		Insert(brandsTable).
		Columns("id", "name", "description", "is_active").
		Values(brand.ID, brand.Name, brand.Description, brand.IsActive).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&brand.CreatedAt, &brand.UpdatedAt)
	if err != nil {
		return classifyError(err, domain.ErrBrandNotFound)
	}

	return nil
}

func (r *brandRepository) GetByID(ctx context.Context, brandID string) (*domain.Brand, error) {
	query, args, err := squirrel.
		Select(brandsColumns).
		From(brandsTable + " b").
		Where(squirrel.Eq{"b.id": brandID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	brand, err := scanBrand(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return brand, nil
}

func (r *brandRepository) List(ctx context.Context) ([]*domain.Brand, error) {
	query, args, err := squirrel.
		Select(brandsColumns).
		From(brandsTable + " b").
		OrderBy("b.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	brands := make([]*domain.Brand, 0)
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear marca: %w", err)
		}
		brands = append(brands, brand)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return brands, nil
}

func (r *brandRepository) Update(ctx context.Context, brand *domain.Brand) error {
	query, args, err := squirrel.
		Update(brandsTable).
		Set("name", brand.Name).
		Set("description", brand.Description).
		Set("is_active", brand.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": brand.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&brand.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBrandNotFound
		}
		return classifyError(err, domain.ErrBrandNotFound)
	}

	return nil
}

// Delete remove a marca; campanhas, janelas e lançamentos caem em cascata
func (r *brandRepository) Delete(ctx context.Context, brandID string) error {
	query, args, err := squirrel.
		Delete(brandsTable).
		Where(squirrel.Eq{"id": brandID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return classifyError(err, domain.ErrBrandNotFound)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrBrandNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBrand(row rowScanner) (*domain.Brand, error) {
	brand := &domain.Brand{}
	if err := row.Scan(
		&brand.ID,
		&brand.Name,
		&brand.Description,
		&brand.IsActive,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return brand, nil
}
