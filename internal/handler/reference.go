package handler

import "net/http"

// ListVessels handles GET /api/vessel.
// Returns the vessel reference list as a JSON array of {id, name}.
func (s *Server) ListVessels(w http.ResponseWriter, r *http.Request) {
	vessels, err := s.refs.Vessels(r.Context())
	if err != nil {
		s.log.ErrorContext(r.Context(), "list vessels failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, vessels)
}

// ListUnitTypes handles GET /api/unittype.
// Returns the unit-type reference list as a JSON array of
// {id, name, defaultLength}.
func (s *Server) ListUnitTypes(w http.ResponseWriter, r *http.Request) {
	unitTypes, err := s.refs.UnitTypes(r.Context())
	if err != nil {
		s.log.ErrorContext(r.Context(), "list unit types failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, unitTypes)
}
