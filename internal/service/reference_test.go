package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbruun/voyage-log/backend/internal/domain"
	"github.com/tbruun/voyage-log/backend/internal/repo"
	"github.com/tbruun/voyage-log/backend/internal/service"
)

// mockVesselRepo is a hand-written test double for repo.VesselRepo.
type mockVesselRepo struct {
	list func(ctx context.Context) ([]domain.Vessel, error)
}

func (m *mockVesselRepo) List(ctx context.Context) ([]domain.Vessel, error) {
	return m.list(ctx)
}

var _ repo.VesselRepo = (*mockVesselRepo)(nil)

// mockUnitTypeRepo is a hand-written test double for repo.UnitTypeRepo.
type mockUnitTypeRepo struct {
	list      func(ctx context.Context) ([]domain.UnitType, error)
	listByIDs func(ctx context.Context, ids []uuid.UUID) ([]domain.UnitType, error)
}

func (m *mockUnitTypeRepo) List(ctx context.Context) ([]domain.UnitType, error) {
	return m.list(ctx)
}
func (m *mockUnitTypeRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.UnitType, error) {
	return m.listByIDs(ctx, ids)
}

var _ repo.UnitTypeRepo = (*mockUnitTypeRepo)(nil)

func TestReferenceService_Vessels(t *testing.T) {
	want := []domain.Vessel{{ID: uuid.New(), Name: "Pearl Seaways"}}
	svc := service.NewReferenceService(
		&mockVesselRepo{list: func(context.Context) ([]domain.Vessel, error) { return want, nil }},
		&mockUnitTypeRepo{},
	)

	got, err := svc.Vessels(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReferenceService_Vessels_NilBecomesEmpty(t *testing.T) {
	svc := service.NewReferenceService(
		&mockVesselRepo{list: func(context.Context) ([]domain.Vessel, error) { return nil, nil }},
		&mockUnitTypeRepo{},
	)

	got, err := svc.Vessels(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReferenceService_UnitTypes(t *testing.T) {
	want := []domain.UnitType{{ID: uuid.New(), Name: "Trailer", DefaultLength: 13.6}}
	svc := service.NewReferenceService(
		&mockVesselRepo{},
		&mockUnitTypeRepo{list: func(context.Context) ([]domain.UnitType, error) { return want, nil }},
	)

	got, err := svc.UnitTypes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
