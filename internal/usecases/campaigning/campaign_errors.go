package campaigning

import (
	"errors"
	"fmt"

	"github.com/vfg2006/campaign-control-api/internal/domain"
	"github.com/vfg2006/campaign-control-api/pkg/apiErrors"
)

// Erros específicos para o contexto de campanhas
var (
	ErrMissingRequiredData = errors.New("missing required data")
	ErrInvalidFormat       = errors.New("invalid data format")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrDatabaseOperation   = errors.New("database operation error")
	ErrGenerateID          = errors.New("error generating ID")
)

// CampaignError é um erro com contexto adicional para campanhas e marcas
type CampaignError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID string // ID da campanha envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CampaignError) Unwrap() error {
	return e.Err
}

// NewCampaignError cria um novo CampaignError
func NewCampaignError(err error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewCampaignErrorWithID cria um novo CampaignError com ID da campanha
func NewCampaignErrorWithID(err error, code string, campaignID string, details string) *CampaignError {
	return &CampaignError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}

// CodeFor escolhe o código da API a partir do erro de domínio mais específico encontrado na cadeia
func CodeFor(err error) string {
	var campaignErr *CampaignError
	if errors.As(err, &campaignErr) {
		return campaignErr.Code
	}

	switch {
	case errors.Is(err, domain.ErrCampaignNotFound):
		return apiErrors.ErrCampaignNotFound
	case errors.Is(err, domain.ErrBrandNotFound):
		return apiErrors.ErrBrandNotFound
	case errors.Is(err, domain.ErrInvalidAmount):
		return apiErrors.ErrInvalidAmount
	case errors.Is(err, domain.ErrInvalidBudget):
		return apiErrors.ErrInvalidBudget
	case errors.Is(err, domain.ErrInvalidDateRange):
		return apiErrors.ErrInvalidDateRange
	case errors.Is(err, domain.ErrInvalidSchedule):
		return apiErrors.ErrInvalidSchedule
	case errors.Is(err, domain.ErrAlreadyExists):
		return apiErrors.ErrAlreadyExists
	case errors.Is(err, domain.ErrInvariantViolation):
		return apiErrors.ErrInvariantViolation
	case errors.Is(err, ErrInvalidTransition):
		return apiErrors.ErrInvalidTransition
	case errors.Is(err, ErrMissingRequiredData):
		return apiErrors.ErrMissingRequiredData
	case errors.Is(err, ErrInvalidFormat):
		return apiErrors.ErrInvalidFormat
	default:
		return apiErrors.ErrDatabaseOperation
	}
}

// WrapError converte erros do repositório e do domínio em CampaignError
func WrapError(err error, campaignID string, details string) *CampaignError {
	var campaignErr *CampaignError
	if errors.As(err, &campaignErr) {
		return campaignErr
	}

	code := CodeFor(err)
	if code == apiErrors.ErrDatabaseOperation {
		return NewCampaignErrorWithID(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), code, campaignID, details)
	}

	return NewCampaignErrorWithID(err, code, campaignID, details)
}
