package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbruun/voyage-log/backend/internal/domain"
	"github.com/tbruun/voyage-log/backend/internal/draft"
	"github.com/tbruun/voyage-log/backend/internal/repo"
	"github.com/tbruun/voyage-log/backend/internal/service"
)

// ---- mock repo -------------------------------------------------------------

// mockVoyageRepo is a hand-written test double for repo.VoyageRepo.
type mockVoyageRepo struct {
	create    func(ctx context.Context, voyage domain.Voyage, unitTypeIDs []uuid.UUID) (domain.Voyage, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Voyage, error)
	list      func(ctx context.Context) ([]domain.Voyage, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Voyage, int64, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockVoyageRepo) Create(ctx context.Context, voyage domain.Voyage, unitTypeIDs []uuid.UUID) (domain.Voyage, error) {
	return m.create(ctx, voyage, unitTypeIDs)
}
func (m *mockVoyageRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Voyage, error) {
	return m.getByID(ctx, id)
}
func (m *mockVoyageRepo) List(ctx context.Context) ([]domain.Voyage, error) {
	return m.list(ctx)
}
func (m *mockVoyageRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Voyage, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockVoyageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockVoyageRepo must satisfy repo.VoyageRepo.
var _ repo.VoyageRepo = (*mockVoyageRepo)(nil)

// ---- helpers ---------------------------------------------------------------

var (
	vesselID   = uuid.New()
	unitTypeID = uuid.New()
)

func validServerDraft() draft.Draft {
	return draft.Draft{
		Departure:       "2025-01-01T10:00:00Z",
		Arrival:         "2025-01-02T10:00:00Z",
		PortOfLoading:   "Copenhagen",
		PortOfDischarge: "Oslo",
		VesselID:        vesselID.String(),
		UnitTypeIDs:     []string{unitTypeID.String()},
	}
}

// ---- Create ----------------------------------------------------------------

func TestVoyageService_Create_OK(t *testing.T) {
	stored := domain.Voyage{ID: uuid.New()}

	var gotVoyage domain.Voyage
	var gotUnitTypeIDs []uuid.UUID
	svc := service.NewVoyageService(&mockVoyageRepo{
		create: func(_ context.Context, v domain.Voyage, ids []uuid.UUID) (domain.Voyage, error) {
			gotVoyage = v
			gotUnitTypeIDs = ids
			return stored, nil
		},
	})

	got, err := svc.Create(context.Background(), validServerDraft())

	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), gotVoyage.ScheduledDeparture)
	assert.Equal(t, time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC), gotVoyage.ScheduledArrival)
	assert.Equal(t, "Copenhagen", gotVoyage.PortOfLoading)
	assert.Equal(t, "Oslo", gotVoyage.PortOfDischarge)
	assert.Equal(t, vesselID, gotVoyage.VesselID)
	assert.Equal(t, []uuid.UUID{unitTypeID}, gotUnitTypeIDs)
}

func TestVoyageService_Create_ArrivalBeforeDeparture(t *testing.T) {
	svc := service.NewVoyageService(&mockVoyageRepo{})

	d := validServerDraft()
	d.Departure = "2025-01-02T10:00:00Z"
	d.Arrival = "2025-01-01T10:00:00Z"

	_, err := svc.Create(context.Background(), d)

	require.ErrorIs(t, err, domain.ErrValidation)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, draft.MsgArrivalAfterDeparture, verr.Fields[draft.FieldArrival])
}

func TestVoyageService_Create_MissingFields(t *testing.T) {
	svc := service.NewVoyageService(&mockVoyageRepo{})

	_, err := svc.Create(context.Background(), draft.Draft{})

	require.ErrorIs(t, err, domain.ErrValidation)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 6, "the server mirrors the full client rule set")
}

func TestVoyageService_Create_BadVesselID(t *testing.T) {
	svc := service.NewVoyageService(&mockVoyageRepo{})

	d := validServerDraft()
	d.VesselID = "not-a-uuid"

	_, err := svc.Create(context.Background(), d)

	require.ErrorIs(t, err, domain.ErrValidation)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, draft.FieldVessel)
}

func TestVoyageService_Create_BadUnitTypeID(t *testing.T) {
	svc := service.NewVoyageService(&mockVoyageRepo{})

	d := validServerDraft()
	d.UnitTypeIDs = []string{"not-a-uuid"}

	_, err := svc.Create(context.Background(), d)

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestVoyageService_Create_RepoError(t *testing.T) {
	boom := errors.New("connection reset")
	svc := service.NewVoyageService(&mockVoyageRepo{
		create: func(context.Context, domain.Voyage, []uuid.UUID) (domain.Voyage, error) {
			return domain.Voyage{}, boom
		},
	})

	_, err := svc.Create(context.Background(), validServerDraft())

	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

// ---- List / Delete ---------------------------------------------------------

func TestVoyageService_List_NilBecomesEmpty(t *testing.T) {
	svc := service.NewVoyageService(&mockVoyageRepo{
		list: func(context.Context) ([]domain.Voyage, error) { return nil, nil },
	})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestVoyageService_ListPaged(t *testing.T) {
	svc := service.NewVoyageService(&mockVoyageRepo{
		listPaged: func(_ context.Context, p domain.PaginationParams) ([]domain.Voyage, int64, error) {
			assert.Equal(t, 2, p.Page)
			return []domain.Voyage{{ID: uuid.New()}}, 21, nil
		},
	})

	got, total, err := svc.ListPaged(context.Background(), domain.PaginationParams{Page: 2, Limit: 20})

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.EqualValues(t, 21, total)
}

func TestVoyageService_Delete_NotFound(t *testing.T) {
	svc := service.NewVoyageService(&mockVoyageRepo{
		delete: func(context.Context, uuid.UUID) error { return domain.ErrNotFound },
	})

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
