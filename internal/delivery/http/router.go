package http

import (
	"net/http"

	"hospital-replica-sync/internal/delivery/http/handler"
	"hospital-replica-sync/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	syncHandler       *handler.SyncHandler
	replicaHandler    *handler.ReplicaHandler
	infoHandler       *handler.InfoHandler
	metricsHandler    http.Handler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	syncHandler *handler.SyncHandler,
	replicaHandler *handler.ReplicaHandler,
	infoHandler *handler.InfoHandler,
	metricsHandler http.Handler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		syncHandler:       syncHandler,
		replicaHandler:    replicaHandler,
		infoHandler:       infoHandler,
		metricsHandler:    metricsHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.HandleFunc("/", r.infoHandler.Root).Methods(http.MethodGet)
	r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", r.infoHandler.Health).Methods(http.MethodGet)
	r.registerReplicaRoutes(api)

	// Unversioned paths kept for existing callers
	r.registerReplicaRoutes(r.router)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) registerReplicaRoutes(base *mux.Router) {
	// Read routes (public)
	base.HandleFunc("/departments", r.replicaHandler.GetDepartments).Methods(http.MethodGet)
	base.HandleFunc("/physicians", r.replicaHandler.GetPhysicians).Methods(http.MethodGet)
	base.HandleFunc("/consultations", r.replicaHandler.GetConsultations).Methods(http.MethodGet)

	// Sync history (public)
	base.HandleFunc("/sync/status", r.syncHandler.GetStatus).Methods(http.MethodGet)
	base.HandleFunc("/sync/runs", r.syncHandler.GetAllRuns).Methods(http.MethodGet)
	base.HandleFunc("/sync/runs/{id:[0-9]+}", r.syncHandler.GetRun).Methods(http.MethodGet)

	// Sync trigger (token guarded when a secret is configured)
	base.Handle("/sync", r.authMiddleware.RequireSyncToken(http.HandlerFunc(r.syncHandler.Sync))).
		Methods(http.MethodPost, http.MethodOptions)
}
