package service

import (
	"context"
	"fmt"

	"github.com/tbruun/voyage-log/backend/internal/domain"
	"github.com/tbruun/voyage-log/backend/internal/repo"
)

// ReferenceService exposes the read-only reference lists consumed by the
// creation form's selection widgets.
type ReferenceService struct {
	vessels   repo.VesselRepo
	unitTypes repo.UnitTypeRepo
}

// NewReferenceService constructs a ReferenceService backed by the provided repos.
func NewReferenceService(vessels repo.VesselRepo, unitTypes repo.UnitTypeRepo) *ReferenceService {
	return &ReferenceService{vessels: vessels, unitTypes: unitTypes}
}

// Vessels returns all vessels ordered by name.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ReferenceService) Vessels(ctx context.Context) ([]domain.Vessel, error) {
	vessels, err := s.vessels.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ReferenceService.Vessels: %w", err)
	}
	if vessels == nil {
		return []domain.Vessel{}, nil
	}
	return vessels, nil
}

// UnitTypes returns all unit types ordered by name.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ReferenceService) UnitTypes(ctx context.Context) ([]domain.UnitType, error) {
	unitTypes, err := s.unitTypes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ReferenceService.UnitTypes: %w", err)
	}
	if unitTypes == nil {
		return []domain.UnitType{}, nil
	}
	return unitTypes, nil
}
