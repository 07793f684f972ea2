package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Kavirubc/shopcopy/internal/catalog"
	"github.com/Kavirubc/shopcopy/internal/llm"
	"github.com/Kavirubc/shopcopy/internal/pipeline"
	"github.com/Kavirubc/shopcopy/pkg/models"
)

const (
	serviceName     = "shopcopy"
	maxBodyBytes    = 10 << 20
	shutdownTimeout = 10 * time.Second
)

// Processor runs product batches through the pipeline
type Processor interface {
	ProcessBatch(ctx context.Context, products []models.Product) ([]models.ProcessingResult, error)
	ProcessBatchWithFilter(ctx context.Context, products []models.Product, minPriority string) ([]models.ProcessingResult, error)
	Capability() llm.Capability
}

// Server exposes the pipeline over HTTP
type Server struct {
	proc    Processor
	source  catalog.Source
	version string
	mux     *http.ServeMux
}

// New creates a server that processes products from source
func New(proc Processor, source catalog.Source, version string) *Server {
	s := &Server{
		proc:    proc,
		source:  source,
		version: version,
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/process", s.handleProcess)
	s.mux.HandleFunc("POST /api/process", s.handleProcess)
	s.mux.HandleFunc("OPTIONS /api/process", s.handlePreflight)
	s.mux.HandleFunc("GET /api/export", s.handleExport)
	return s
}

// Handler returns the routed handler wrapped with request logging
func (s *Server) Handler() http.Handler {
	return logRequests(s.mux)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type healthResponse struct {
	Status  string         `json:"status"`
	Service string         `json:"service"`
	Version string         `json:"version"`
	Writer  llm.Capability `json:"writer"`
}

type processResponse struct {
	Status     string                    `json:"status"`
	Results    []models.ProcessingResult `json:"results"`
	Statistics models.Statistics         `json:"statistics"`
}

type exportResponse struct {
	Status   string                 `json:"status"`
	Payloads []models.UpdatePayload `json:"payloads"`
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "healthy",
		Service: serviceName,
		Version: s.version,
		Writer:  s.proc.Capability(),
	})
}

func (s *Server) handlePreflight(w http.ResponseWriter, r *http.Request) {
	allowCORS(w)
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(http.StatusNoContent)
}

// handleProcess audits and optimizes the catalog, or the products posted in
// the request body. min_priority narrows the returned results.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	allowCORS(w)

	products, err := s.products(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	var results []models.ProcessingResult
	if minPriority := r.URL.Query().Get("min_priority"); minPriority != "" {
		results, err = s.proc.ProcessBatchWithFilter(r.Context(), products, minPriority)
	} else {
		results, err = s.proc.ProcessBatch(r.Context(), products)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, processResponse{
		Status:     "success",
		Results:    results,
		Statistics: pipeline.Statistics(results),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	products, err := s.source.Products(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	results, err := s.proc.ProcessBatch(r.Context(), products)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, exportResponse{
		Status:   "success",
		Payloads: pipeline.ExportAll(results),
	})
}

// products reads a posted catalog, falling back to the configured source
func (s *Server) products(w http.ResponseWriter, r *http.Request) ([]models.Product, error) {
	if r.Method != http.MethodPost || r.Body == nil {
		return s.source.Products(r.Context())
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %v", models.ErrInvalidArgument, err)
	}
	if len(body) == 0 {
		return s.source.Products(r.Context())
	}

	products, err := catalog.ParseProducts(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidArgument, err)
	}
	return products, nil
}

func allowCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeError maps caller mistakes to 400 and everything else to 500
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, models.ErrInvalidArgument) || errors.Is(err, models.ErrInvalidProduct) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorResponse{Status: "error", Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
