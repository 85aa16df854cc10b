package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-control-api/internal/domain"
	"github.com/vfg2006/campaign-control-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-control-api/pkg/log"
)

func TestRoleMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		claims     *domain.Claims
		middleware func(http.Handler) http.Handler
		wantStatus int
	}{
		{name: "Sem usuário no contexto", middleware: AllRoles(), wantStatus: http.StatusUnauthorized},
		{name: "Viewer lendo", claims: &domain.Claims{UserRoleID: domain.RoleViewer}, middleware: AllRoles(), wantStatus: http.StatusNoContent},
		{name: "Viewer alterando campanha", claims: &domain.Claims{UserRoleID: domain.RoleViewer}, middleware: AdminOrSupervisor(), wantStatus: http.StatusForbidden},
		{name: "Supervisor alterando campanha", claims: &domain.Claims{UserRoleID: domain.RoleSupervisor}, middleware: AdminOrSupervisor(), wantStatus: http.StatusNoContent},
		{name: "Supervisor criando operador", claims: &domain.Claims{UserRoleID: domain.RoleSupervisor}, middleware: AdminOnly(), wantStatus: http.StatusForbidden},
		{name: "Admin criando operador", claims: &domain.Claims{UserRoleID: domain.RoleAdmin}, middleware: AdminOnly(), wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}

			rec := httptest.NewRecorder()
			tt.middleware(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})
	handler := LogPanicMiddleware()(LoggingMiddleware()(panicking))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apiErrors.ErrInternalServer, body.Code)
	assert.NotEmpty(t, body.Details["correlation_id"])
	assert.Equal(t, rec.Header().Get(log.CorrelationIDHeader), body.Details["correlation_id"])
}

func TestLoggingMiddleware_ReusesCorrelationID(t *testing.T) {
	const incoming = "3f2b8f8e-5a6d-4c61-9a1e-0c9f1f0b2a11"

	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(log.CorrelationIDHeader, incoming)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, incoming, seen)
	assert.Equal(t, incoming, rec.Header().Get(log.CorrelationIDHeader))
	assert.Equal(t, "ok", rec.Body.String())
}
