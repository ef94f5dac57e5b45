package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-replica-sync/config"
	"hospital-replica-sync/internal/delivery/dto"
	"hospital-replica-sync/internal/delivery/http/handler"
	"hospital-replica-sync/internal/delivery/http/middleware"
	"hospital-replica-sync/internal/metrics"
	"hospital-replica-sync/pkg/jwt"
	"hospital-replica-sync/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(secret string) *mux.Router {
	log, _ := test.NewNullLogger()
	jwtService := jwt.NewJWTService(config.AuthConfig{Secret: secret, TokenExpiry: time.Hour})

	return NewRouter(
		handler.NewSyncHandler(nil, nil, validator.NewValidator()),
		handler.NewReplicaHandler(nil),
		handler.NewInfoHandler(dto.ServiceInfo{Service: "replica-sync"}),
		metrics.Handler(prometheus.NewRegistry()),
		middleware.NewAuthMiddleware(jwtService),
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
	).Setup()
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter("")

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/metrics"},
		{http.MethodGet, "/api/v1/health"},
		{http.MethodGet, "/api/v1/departments"},
		{http.MethodGet, "/api/v1/physicians"},
		{http.MethodGet, "/api/v1/consultations"},
		{http.MethodPost, "/api/v1/sync"},
		{http.MethodGet, "/api/v1/sync/status"},
		{http.MethodGet, "/api/v1/sync/runs"},
		{http.MethodGet, "/api/v1/sync/runs/12"},
		{http.MethodPost, "/sync"},
		{http.MethodGet, "/departments"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			var match mux.RouteMatch
			assert.True(t, router.Match(httptest.NewRequest(rt.method, rt.path, nil), &match))
			assert.NoError(t, match.MatchErr)
		})
	}

	var match mux.RouteMatch
	router.Match(httptest.NewRequest(http.MethodGet, "/api/v1/sync", nil), &match)
	assert.ErrorIs(t, match.MatchErr, mux.ErrMethodMismatch)
}

func TestRouter_SyncRequiresTokenWhenConfigured(t *testing.T) {
	router := newTestRouter("s3cret")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sync?table=departments&cutoff=2025-01-01", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/sync", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter("").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
