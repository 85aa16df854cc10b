package handler

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-control-api/internal/domain"
	"github.com/vfg2006/campaign-control-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-control-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-control-api/pkg/middleware"
)

// GetUser retorna informações do usuário por ID
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := pathParam(r, "id")
		if idStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		// Operadores comuns só enxergam o próprio perfil
		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok || (userClaims.UserID != id && userClaims.UserRoleID != domain.RoleAdmin) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para ver este usuário", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), id)
		if err != nil {
			logrus.Error(err)
			writeAuthError(w, err, "Erro ao buscar usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// CreateUser cria um novo operador
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateUser")

		var user *domain.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil || user == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateUser(r.Context(), user)
		if err != nil {
			logrus.Error(err)
			writeAuthError(w, err, "Erro ao criar usuário")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// ListUsers lista todos os operadores
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser(r.Context())
		if err != nil {
			logrus.Error(err)
			writeAuthError(w, err, "Erro ao buscar usuários")
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}
