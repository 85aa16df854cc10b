package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrUserLocked            = "AUTH_004" // Usuário bloqueado temporariamente
	ErrPasswordExpired       = "AUTH_005" // Senha expirada
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_009" // Usuário já existe

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidAmount       = "VAL_004" // Valor de gasto inválido
	ErrInvalidBudget       = "VAL_005" // Budget inválido
	ErrInvalidDateRange    = "VAL_006" // Período da campanha inválido
	ErrInvalidSchedule     = "VAL_007" // Janela de veiculação inválida

	// Erros de campanhas e marcas (3000-3999)
	ErrCampaignNotFound    = "CMP_001" // Campanha não encontrada
	ErrBrandNotFound       = "CMP_002" // Marca não encontrada
	ErrInvalidTransition   = "CMP_003" // Transição de status não permitida
	ErrAlreadyExists       = "CMP_004" // Registro duplicado
	ErrInvariantViolation  = "CMP_005" // Estado inconsistente da campanha
	ErrUnknownJob          = "JOB_001" // Job de reconciliação desconhecido
	ErrJobAlreadyRunning   = "JOB_002" // Job já em execução
	ErrJobExecutionFailure = "JOB_003" // Falha na execução do job

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrRouteNotFound     = "SRV_003" // Rota inexistente
	ErrMethodNotAllowed  = "SRV_004" // Método não suportado pela rota
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrUserLocked:            http.StatusForbidden,
	ErrPasswordExpired:       http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidAmount:         http.StatusBadRequest,
	ErrInvalidBudget:         http.StatusBadRequest,
	ErrInvalidDateRange:      http.StatusBadRequest,
	ErrInvalidSchedule:       http.StatusBadRequest,
	ErrCampaignNotFound:      http.StatusNotFound,
	ErrBrandNotFound:         http.StatusNotFound,
	ErrInvalidTransition:     http.StatusConflict,
	ErrAlreadyExists:         http.StatusConflict,
	ErrInvariantViolation:    http.StatusUnprocessableEntity,
	ErrUnknownJob:            http.StatusNotFound,
	ErrJobAlreadyRunning:     http.StatusConflict,
	ErrJobExecutionFailure:   http.StatusInternalServerError,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP de um código; códigos desconhecidos viram 500
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
