package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Brand struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateBrandRequest mantém is_active opcional; ausente significa marca ativa
type CreateBrandRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

func (r CreateBrandRequest) Brand() *Brand {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	return &Brand{
		Name:        r.Name,
		Description: r.Description,
		IsActive:    active,
	}
}

type UpdateBrandRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// BrandSpend soma os gastos de todas as campanhas de uma marca
type BrandSpend struct {
	BrandID           string          `json:"brand_id"`
	BrandName         string          `json:"brand_name"`
	TotalDailySpend   decimal.Decimal `json:"total_daily_spend"`
	TotalMonthlySpend decimal.Decimal `json:"total_monthly_spend"`
}
