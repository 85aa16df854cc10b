package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount      = errors.New("invalid amount: spend must be positive with at most two decimal places")
	ErrNotFound           = errors.New("not found")
	ErrCampaignNotFound   = fmt.Errorf("campaign %w", ErrNotFound)
	ErrBrandNotFound      = fmt.Errorf("brand %w", ErrNotFound)
	ErrInvariantViolation = errors.New("invariant violation")

	ErrInvalidBudget    = errors.New("budgets must be greater than zero")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrInvalidSchedule  = errors.New("invalid dayparting schedule")
	ErrInvalidStatus    = errors.New("invalid campaign status")
	ErrAlreadyExists    = errors.New("already exists")
)

// invariantError descreve qual verificação interna falhou, preservando ErrInvariantViolation
func invariantError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}
