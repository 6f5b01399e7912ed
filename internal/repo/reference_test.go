package repo_test

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbruun/voyage-log/backend/internal/repo"
)

func TestVesselRepo_List(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewVesselRepo(tx)

	got, err := r.List(context.Background())

	require.NoError(t, err)
	require.GreaterOrEqual(t, len(got), 2, "seed migration should provide vessels")

	names := make([]string, len(got))
	for i, v := range got {
		assert.NotEqual(t, uuid.Nil, v.ID)
		assert.NotEmpty(t, v.Name)
		names[i] = v.Name
	}
	assert.True(t, sort.StringsAreSorted(names), "vessels should be ordered by name")
	assert.Contains(t, names, "Crown Seaways")
	assert.Contains(t, names, "Pearl Seaways")
}

func TestUnitTypeRepo_List(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewUnitTypeRepo(tx)

	got, err := r.List(context.Background())

	require.NoError(t, err)
	require.GreaterOrEqual(t, len(got), 2, "seed migration should provide unit types")

	names := make([]string, len(got))
	for i, ut := range got {
		assert.NotEqual(t, uuid.Nil, ut.ID)
		assert.NotEmpty(t, ut.Name)
		assert.Greater(t, ut.DefaultLength, 0.0, "seeded unit types carry a default length")
		names[i] = ut.Name
	}
	assert.True(t, sort.StringsAreSorted(names), "unit types should be ordered by name")
	assert.Contains(t, names, "Trailer")
}

func TestUnitTypeRepo_ListByIDs(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewUnitTypeRepo(tx)
	ctx := context.Background()

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), 2)

	got, err := r.ListByIDs(ctx, []uuid.UUID{all[0].ID, all[1].ID})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, all[0].ID, got[0].ID)
	assert.Equal(t, all[1].ID, got[1].ID)
}

func TestUnitTypeRepo_ListByIDs_UnknownIDsAbsent(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewUnitTypeRepo(tx)
	ctx := context.Background()

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, all)

	got, err := r.ListByIDs(ctx, []uuid.UUID{all[0].ID, uuid.New()})

	require.NoError(t, err)
	require.Len(t, got, 1, "unknown ids are silently dropped")
	assert.Equal(t, all[0].ID, got[0].ID)
}

func TestUnitTypeRepo_ListByIDs_Empty(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewUnitTypeRepo(tx)

	got, err := r.ListByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.NotNil(t, got, "should be empty slice, not nil")
	assert.Empty(t, got)
}
