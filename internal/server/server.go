//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/forwardpoint/backend/internal/consolidation"
	"github.com/forwardpoint/backend/internal/pricing"
	"github.com/forwardpoint/backend/internal/repository"
)

// Service is the consolidation application surface the HTTP layer exposes.
type Service interface {
	DeclarePackage(ctx context.Context, params consolidation.DeclarePackageParams) (*repository.Package, error)
	ConfirmPackageArrival(ctx context.Context, packageID string, confirmedWeightGrams int) (*repository.Package, error)
	GetPackage(ctx context.Context, packageID string) (*repository.Package, error)
	ListPackages(ctx context.Context, ownerID, status string, limit int) ([]*repository.Package, error)

	CreateGroup(ctx context.Context, params consolidation.CreateGroupParams) (*repository.ConsolidationGroup, error)
	GetGroup(ctx context.Context, ownerID string, isAdmin bool, groupID string) (*repository.ConsolidationGroup, error)
	ListGroups(ctx context.Context, ownerID string, limit int) ([]*repository.ConsolidationGroup, error)
	GetGroupHistory(ctx context.Context, groupID string) ([]*repository.GroupHistoryEntry, error)

	AddPackage(ctx context.Context, ownerID, groupID, packageID string) error
	RemovePackage(ctx context.Context, ownerID, groupID, packageID string) error
	QuoteGroup(ctx context.Context, ownerID string, isAdmin bool, groupID string, params consolidation.QuoteParams) (*consolidation.Quote, error)
	RequestConsolidation(ctx context.Context, ownerID, groupID string, params consolidation.ConsolidateParams) error

	StartProcessing(ctx context.Context, groupID string) error
	MarkReady(ctx context.Context, groupID string, measuredWeightGrams int) error
	SetTracking(ctx context.Context, groupID, trackingCode, carrierID string) error
	ConfirmPayment(ctx context.Context, groupID string, amountCents int64) error
	Conclude(ctx context.Context, groupID string) error
	MarkDelivered(ctx context.Context, groupID string) error
	Cancel(ctx context.Context, ownerID string, isAdmin bool, groupID string) error
}

type UserRepo interface {
	Authenticate(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	service      Service
	userRepo     UserRepo
	server       *http.Server
	AuditManager *AuditManager
}

func New(service Service, userRepo UserRepo) *Server {
	auditManager := NewAuditManager(2, 5, 500*time.Millisecond)
	return &Server{
		service:      service,
		userRepo:     userRepo,
		AuditManager: auditManager,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			zap.L().Error("server shutdown failed", zap.Error(err))
		}
	}()

	zap.L().Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	zap.L().Info("shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}

	s.AuditManager.Shutdown(ctx)
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/").Subrouter()
	api.Use(s.auditLogMiddleware)
	api.Use(s.basicAuthMiddleware)

	api.HandleFunc("/packages", s.handleDeclarePackage).Methods(http.MethodPost)
	api.HandleFunc("/packages", s.handleListPackages).Methods(http.MethodGet)
	api.HandleFunc("/packages/{id}", s.handleGetPackage).Methods(http.MethodGet)
	api.HandleFunc("/packages/{id}/confirm", s.requireAdmin(s.handleConfirmArrival)).Methods(http.MethodPost)

	api.HandleFunc("/groups", s.handleCreateGroup).Methods(http.MethodPost)
	api.HandleFunc("/groups", s.handleListGroups).Methods(http.MethodGet)
	api.HandleFunc("/groups/{id}", s.handleGetGroup).Methods(http.MethodGet)
	api.HandleFunc("/groups/{id}/history", s.handleGroupHistory).Methods(http.MethodGet)

	api.HandleFunc("/groups/{id}/packages", s.handleAddPackage).Methods(http.MethodPost)
	api.HandleFunc("/groups/{id}/packages/{packageID}", s.handleRemovePackage).Methods(http.MethodDelete)

	api.HandleFunc("/groups/{id}/quote", s.handleQuote).Methods(http.MethodPost)
	api.HandleFunc("/groups/{id}/request", s.handleRequestConsolidation).Methods(http.MethodPost)
	api.HandleFunc("/groups/{id}/cancel", s.handleCancel).Methods(http.MethodPost)

	api.HandleFunc("/groups/{id}/advance", s.requireAdmin(s.handleAdvance)).Methods(http.MethodPost)
	api.HandleFunc("/groups/{id}/tracking", s.requireAdmin(s.handleSetTracking)).Methods(http.MethodPut)

	api.HandleFunc("/payments/confirmation", s.handlePaymentConfirmation).Methods(http.MethodPost)

	return router
}

type contextKey string

const identityKey contextKey = "identity"

type identity struct {
	Username string
	IsAdmin  bool
}

func identityFrom(ctx context.Context) identity {
	id, _ := ctx.Value(identityKey).(identity)
	return id
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		isAdmin, err := s.userRepo.Authenticate(r.Context(), username, password)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity{Username: username, IsAdmin: isAdmin})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !identityFrom(r.Context()).IsAdmin {
			respondError(w, http.StatusForbidden, "operator access required")
			return
		}
		next(w, r)
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError translates domain errors into status codes. Ownership
// failures are reported as not found so the API does not leak which group IDs
// exist.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrObjectNotFound),
		errors.Is(err, consolidation.ErrNotOwner):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, consolidation.ErrStatusConflict),
		errors.Is(err, consolidation.ErrIllegalTransition),
		errors.Is(err, consolidation.ErrGroupFull):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, consolidation.ErrGroupNotOpen),
		errors.Is(err, consolidation.ErrPackageNotReceived),
		errors.Is(err, consolidation.ErrPackageAlreadyGrouped),
		errors.Is(err, consolidation.ErrPackageNotInGroup),
		errors.Is(err, consolidation.ErrPackageNotPending),
		errors.Is(err, consolidation.ErrBoxSizeRequired),
		errors.Is(err, consolidation.ErrTrackingRequired),
		errors.Is(err, consolidation.ErrFinalWeightRequired),
		errors.Is(err, consolidation.ErrPaymentMismatch),
		errors.Is(err, pricing.ErrUnknownCarrier):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, pricing.ErrFreightUnavailable):
		respondError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, pricing.ErrInvalidRateConfig):
		zap.L().Error("rate configuration rejected", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "pricing configuration error")
	default:
		zap.L().Error("request failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
