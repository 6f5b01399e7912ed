// Package service contains the business logic for the Voyage Log API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tbruun/voyage-log/backend/internal/domain"
	"github.com/tbruun/voyage-log/backend/internal/draft"
	"github.com/tbruun/voyage-log/backend/internal/metrics"
	"github.com/tbruun/voyage-log/backend/internal/repo"
)

// VoyageService implements business logic for Voyage operations.
type VoyageService struct {
	voyages repo.VoyageRepo
}

// NewVoyageService constructs a VoyageService backed by the provided VoyageRepo.
func NewVoyageService(r repo.VoyageRepo) *VoyageService {
	return &VoyageService{voyages: r}
}

// Create validates and persists a new voyage. The rule set is the same one
// the creation form runs client-side, mirrored here so the invariants hold
// regardless of client trust. Returns a *domain.ValidationError carrying the
// field-keyed error map on violation.
func (s *VoyageService) Create(ctx context.Context, d draft.Draft) (domain.Voyage, error) {
	if fe := draft.Validate(d); len(fe) > 0 {
		return domain.Voyage{}, domain.NewValidationError(fe)
	}

	// Validation guarantees both timestamps parse and arrival follows departure.
	departure, err := draft.ParseInputTime(d.Departure)
	if err != nil {
		return domain.Voyage{}, fmt.Errorf("service.VoyageService.Create: departure: %w", err)
	}
	arrival, err := draft.ParseInputTime(d.Arrival)
	if err != nil {
		return domain.Voyage{}, fmt.Errorf("service.VoyageService.Create: arrival: %w", err)
	}

	vesselID, err := uuid.Parse(d.VesselID)
	if err != nil {
		return domain.Voyage{}, domain.NewValidationError(domain.FieldErrors{
			draft.FieldVessel: "Vessel must be a valid identifier",
		})
	}

	unitTypeIDs := make([]uuid.UUID, len(d.UnitTypeIDs))
	for i, raw := range d.UnitTypeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domain.Voyage{}, domain.NewValidationError(domain.FieldErrors{
				draft.FieldUnitTypes: "Unit types must be valid identifiers",
			})
		}
		unitTypeIDs[i] = id
	}

	voyage := domain.Voyage{
		ScheduledDeparture: departure,
		ScheduledArrival:   arrival,
		PortOfLoading:      d.PortOfLoading,
		PortOfDischarge:    d.PortOfDischarge,
		VesselID:           vesselID,
	}

	created, err := s.voyages.Create(ctx, voyage, unitTypeIDs)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_voyage").Inc()
		return domain.Voyage{}, fmt.Errorf("service.VoyageService.Create: %w", err)
	}

	metrics.VoyagesCreatedTotal.Inc()
	return created, nil
}

// GetByID returns a single voyage by ID.
func (s *VoyageService) GetByID(ctx context.Context, id uuid.UUID) (domain.Voyage, error) {
	voyage, err := s.voyages.GetByID(ctx, id)
	if err != nil {
		return domain.Voyage{}, fmt.Errorf("service.VoyageService.GetByID: %w", err)
	}
	return voyage, nil
}

// List returns all voyages, most recently departing first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *VoyageService) List(ctx context.Context) ([]domain.Voyage, error) {
	voyages, err := s.voyages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.VoyageService.List: %w", err)
	}
	if voyages == nil {
		return []domain.Voyage{}, nil
	}
	return voyages, nil
}

// ListPaged returns one page of voyages and the total count.
func (s *VoyageService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Voyage, int64, error) {
	voyages, total, err := s.voyages.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.VoyageService.ListPaged: %w", err)
	}
	if voyages == nil {
		voyages = []domain.Voyage{}
	}
	return voyages, total, nil
}

// Delete removes a voyage by ID.
func (s *VoyageService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.voyages.Delete(ctx, id); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("delete_voyage").Inc()
		return fmt.Errorf("service.VoyageService.Delete: %w", err)
	}
	metrics.VoyagesDeletedTotal.Inc()
	return nil
}
