package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/vfg2006/campaign-control-api/internal/domain"
)

// Códigos SQLSTATE usados na classificação de erros
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

// classifyError traduz erros do Postgres para os erros de domínio; os demais seguem como falha de storage
func classifyError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pqUniqueViolation:
		return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, pqErr.Constraint)
	case pqForeignKeyViolation:
		return fmt.Errorf("%w: %s", notFound, pqErr.Detail)
	case pqCheckViolation:
		return fmt.Errorf("%w: constraint %s", domain.ErrInvariantViolation, pqErr.Constraint)
	default:
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}
}
