package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-query-cache/internal/cache/query"
	"go-query-cache/internal/drafts"
	"go-query-cache/internal/interfaces"
	"go-query-cache/internal/listview"
	"go-query-cache/internal/metrics"
	"go-query-cache/internal/mockapi"
)

// maxBodyBytes bounds JSON request bodies
const maxBodyBytes = 1 << 20

// ListView groups the list helpers served under /api/list and /api/board
type ListView struct {
	Virtualizer listview.Virtualizer
	Rows        listview.RowSource
	Board       *listview.Board
}

// Server represents the HTTP API server
type Server struct {
	items   interfaces.ItemsService
	backend interfaces.Backend
	drafts  interfaces.DraftStore
	list    ListView
	logger  *zap.Logger
	server  *http.Server
}

// NewServer creates a new HTTP API server
func NewServer(items interfaces.ItemsService, backend interfaces.Backend, drafts interfaces.DraftStore, list ListView, logger *zap.Logger) *Server {
	s := &Server{
		items:   items,
		backend: backend,
		drafts:  drafts,
		list:    list,
		logger:  logger,
	}
	s.server = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start listens on addr and serves until Stop is called
func (s *Server) Start(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(listener)
}

// Serve serves the API on an existing listener
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info("Starting HTTP API server", zap.String("addr", listener.Addr().String()))
	if err := s.server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP API server")
	return s.server.Shutdown(ctx)
}

// Handler returns the routed API handler
func (s *Server) Handler() http.Handler {
	return s.createRouter()
}

// createRouter creates and configures the HTTP router
func (s *Server) createRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.metricsMiddleware)

	api := router.PathPrefix("/api").Subrouter()

	// Cached item queries
	api.HandleFunc("/items", s.handleItems).Methods("GET")
	api.HandleFunc("/items", s.handleCreateItem).Methods("POST")
	api.HandleFunc("/items/refetch", s.handleRefetchItems).Methods("POST")
	api.HandleFunc("/items/events", s.handleItemsEvents).Methods("GET")
	api.HandleFunc("/items/category/{category}", s.handleItemsByCategory).Methods("GET")

	// Uncached mock backend
	api.HandleFunc("/mock/{scenario}", s.handleMockFetch).Methods("GET")
	api.HandleFunc("/users", s.handleListUsers).Methods("GET")
	api.HandleFunc("/users", s.handleCreateUser).Methods("POST")
	api.HandleFunc("/users/{id}", s.handleGetUser).Methods("GET")
	api.HandleFunc("/users/{id}", s.handleDeleteUser).Methods("DELETE")
	api.HandleFunc("/error", s.handleSimulateError).Methods("GET")

	// Drafts
	api.HandleFunc("/drafts/{id}", s.handleGetDraft).Methods("GET")
	api.HandleFunc("/drafts/{id}", s.handleSetDraftContent).Methods("PUT")
	api.HandleFunc("/drafts/{id}", s.handleClearDraft).Methods("DELETE")
	api.HandleFunc("/drafts/{id}/form", s.handleUpdateDraftForm).Methods("PATCH")
	api.HandleFunc("/drafts/{id}/save", s.handleSaveDraft).Methods("POST")
	api.HandleFunc("/drafts/{id}/stats", s.handleDraftStats).Methods("GET")

	// List view
	api.HandleFunc("/list/range", s.handleListRange).Methods("GET")
	api.HandleFunc("/board", s.handleBoard).Methods("GET")
	api.HandleFunc("/board/reorder", s.handleBoardReorder).Methods("POST")

	// Health check
	router.HandleFunc("/health", s.handleHealth).Methods("GET")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return router
}

// metricsMiddleware records request counts and latency per route template
func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		metrics.RecordHTTPRequest(route, r.Method, rec.status, time.Since(started))
	})
}

// statusRecorder captures the response status for metrics
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Unwrap lets http.ResponseController reach the underlying writer
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, map[string]interface{}{
		"status": "healthy",
		"time":   time.Now().UTC(),
	})
}

// parseRequest parses JSON request body
func (s *Server) parseRequest(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// writeResponse writes JSON response
func (s *Server) writeResponse(w http.ResponseWriter, v interface{}) {
	s.writeStatusResponse(w, http.StatusOK, v)
}

// writeStatusResponse writes JSON response with an explicit status
func (s *Server) writeStatusResponse(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", zap.Error(err))
	}
}

// writeErrorResponse writes error response
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	s.writeStatusResponse(w, statusCode, &ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// writeError maps err to a status code and writes it. APIErrors keep their code and details.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	statusCode := statusFor(err)
	resp := &ErrorResponse{Success: false, Error: err.Error()}

	var apiErr *mockapi.APIError
	if errors.As(err, &apiErr) {
		resp.Error = apiErr.Message
		resp.Code = apiErr.StatusCode()
		resp.Details = apiErr.Details
	}

	if statusCode >= http.StatusInternalServerError {
		s.logger.Warn("Request failed", zap.Int("status", statusCode), zap.Error(err))
	}
	s.writeStatusResponse(w, statusCode, resp)
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	var apiErr *mockapi.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.StatusCode()
	case errors.Is(err, mockapi.ErrUserNotFound),
		errors.Is(err, listview.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, mockapi.ErrInvalidInput),
		errors.Is(err, mockapi.ErrUnknownScenario),
		errors.Is(err, drafts.ErrInvalidID),
		errors.Is(err, listview.ErrIndexOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, query.ErrClosed),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
