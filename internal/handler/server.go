// Package handler implements the HTTP handlers for the Voyage Log API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (server.go, voyage.go, reference.go) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tbruun/voyage-log/backend/internal/domain"
	"github.com/tbruun/voyage-log/backend/internal/draft"
	"github.com/tbruun/voyage-log/backend/spec"
)

// VoyageServicer defines the business operations the voyage handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type VoyageServicer interface {
	Create(ctx context.Context, d draft.Draft) (domain.Voyage, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Voyage, error)
	List(ctx context.Context) ([]domain.Voyage, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Voyage, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReferenceServicer defines the reference-data reads the handlers depend on.
type ReferenceServicer interface {
	Vessels(ctx context.Context) ([]domain.Vessel, error)
	UnitTypes(ctx context.Context) ([]domain.UnitType, error)
}

// Server holds the dependencies shared by all API endpoints.
type Server struct {
	voyages VoyageServicer
	refs    ReferenceServicer
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(voyages VoyageServicer, refs ReferenceServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{voyages: voyages, refs: refs, log: log}
}

// Routes returns the API route tree.
//
// The create endpoint lives on its own subrouter so that non-POST requests
// to /api/voyage/create get a 405 with an accurate Allow header instead of
// falling through to the voyage wildcard routes.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Route("/voyage", func(r chi.Router) {
			r.Get("/", s.ListVoyages)
			r.Get("/{id}", s.GetVoyage)
			r.Delete("/{id}", s.DeleteVoyage)
			r.Route("/create", func(r chi.Router) {
				r.Post("/", s.CreateVoyage)
				r.MethodNotAllowed(methodNotAllowed(http.MethodPost))
			})
		})
		r.Get("/vessel", s.ListVessels)
		r.Get("/unittype", s.ListUnitTypes)
	})

	return r
}

// GetHealth handles GET /health.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetOpenAPI serves the embedded OpenAPI document.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
