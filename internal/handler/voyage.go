package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tbruun/voyage-log/backend/internal/domain"
	"github.com/tbruun/voyage-log/backend/internal/draft"
)

// createVoyageRequest is the JSON body of POST /api/voyage/create.
// Departure and arrival are ISO-8601 timestamp strings; vessel and unitTypes
// carry identifiers as strings, already validated client-side but re-checked
// here by the server-side validation mirror.
type createVoyageRequest struct {
	Departure       string   `json:"departure"`
	Arrival         string   `json:"arrival"`
	PortOfLoading   string   `json:"portOfLoading"`
	PortOfDischarge string   `json:"portOfDischarge"`
	Vessel          string   `json:"vessel"`
	UnitTypes       []string `json:"unitTypes"`
}

// CreateVoyage handles POST /api/voyage/create.
// Responds 201 with the created voyage, 400 with a field-keyed error map when
// validation fails, or 500 with an opaque message on persistence failure —
// the cause is logged server-side only, never echoed to the client.
func (s *Server) CreateVoyage(w http.ResponseWriter, r *http.Request) {
	var req createVoyageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	d := draft.Draft{
		Departure:       req.Departure,
		Arrival:         req.Arrival,
		PortOfLoading:   req.PortOfLoading,
		PortOfDischarge: req.PortOfDischarge,
		VesselID:        req.Vessel,
		UnitTypeIDs:     req.UnitTypes,
	}

	created, err := s.voyages.Create(r.Context(), d)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeFieldErrors(w, verr.Fields)
			return
		}
		s.log.ErrorContext(r.Context(), "create voyage failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// voyageListResponse wraps one page of voyages for GET /api/voyage.
type voyageListResponse struct {
	Data       []domain.Voyage `json:"data"`
	Pagination pagination      `json:"pagination"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ListVoyages handles GET /api/voyage.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListVoyages(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	voyages, total, err := s.voyages.ListPaged(r.Context(), params)
	if err != nil {
		s.log.ErrorContext(r.Context(), "list voyages failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, voyageListResponse{
		Data: voyages,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetVoyage handles GET /api/voyage/{id}.
func (s *Server) GetVoyage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid voyage id")
		return
	}

	voyage, err := s.voyages.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Voyage not found")
			return
		}
		s.log.ErrorContext(r.Context(), "get voyage failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, voyage)
}

// DeleteVoyage handles DELETE /api/voyage/{id}.
func (s *Server) DeleteVoyage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid voyage id")
		return
	}

	if err := s.voyages.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Voyage not found")
			return
		}
		s.log.ErrorContext(r.Context(), "delete voyage failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// queryInt parses an optional integer query parameter, returning nil when the
// parameter is absent or not a number.
func queryInt(r *http.Request, key string) *int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
