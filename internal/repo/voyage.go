// Package repo contains all database access logic for the Voyage Log API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tbruun/voyage-log/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup. Begin is included because
// creating a voyage spans multiple statements; on a pgx.Tx it opens a savepoint.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// VoyageRepo defines the persistence operations for Voyages.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type VoyageRepo interface {
	// Create inserts a new voyage and links it to the unit types identified by
	// unitTypeIDs, all within one transaction. It links existing unit-type rows
	// by identifier and never creates new ones; an unknown id fails the foreign
	// key constraint. Returns the persisted record with unit types loaded.
	Create(ctx context.Context, voyage domain.Voyage, unitTypeIDs []uuid.UUID) (domain.Voyage, error)

	// GetByID retrieves a single voyage (with vessel name and unit types) by
	// its UUID primary key. Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Voyage, error)

	// List returns all voyages ordered by scheduled_departure descending, each
	// carrying its vessel name and unit types.
	List(ctx context.Context) ([]domain.Voyage, error)

	// ListPaged returns one page of voyages in the same order as List, plus the
	// total voyage count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Voyage, int64, error)

	// Delete removes a voyage by ID; its unit-type links go with it via
	// ON DELETE CASCADE. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgVoyageRepo is the Postgres implementation of VoyageRepo.
type pgVoyageRepo struct {
	db db
}

// NewVoyageRepo constructs a VoyageRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewVoyageRepo(db db) VoyageRepo {
	return &pgVoyageRepo{db: db}
}

const voyageColumns = `v.id, v.scheduled_departure, v.scheduled_arrival,
	       v.port_of_loading, v.port_of_discharge, v.vessel_id, ve.name, v.created_at`

// Create inserts the voyage row and its unit-type links in one transaction.
func (r *pgVoyageRepo) Create(ctx context.Context, voyage domain.Voyage, unitTypeIDs []uuid.UUID) (domain.Voyage, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Voyage{}, fmt.Errorf("repo.VoyageRepo.Create: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	// The '' placeholder keeps the returned column list aligned with
	// scanVoyage; the real vessel name is read after the links are inserted.
	const insertVoyage = `
		INSERT INTO voyages (scheduled_departure, scheduled_arrival, port_of_loading, port_of_discharge, vessel_id)
		VALUES (@scheduled_departure, @scheduled_arrival, @port_of_loading, @port_of_discharge, @vessel_id)
		RETURNING id, scheduled_departure, scheduled_arrival, port_of_loading, port_of_discharge, vessel_id, '', created_at`

	args := pgx.NamedArgs{
		"scheduled_departure": voyage.ScheduledDeparture,
		"scheduled_arrival":   voyage.ScheduledArrival,
		"port_of_loading":     voyage.PortOfLoading,
		"port_of_discharge":   voyage.PortOfDischarge,
		"vessel_id":           voyage.VesselID,
	}

	created, err := scanVoyage(tx.QueryRow(ctx, insertVoyage, args))
	if err != nil {
		return domain.Voyage{}, fmt.Errorf("repo.VoyageRepo.Create: %w", err)
	}

	const linkUnitTypes = `
		INSERT INTO voyage_unit_types (voyage_id, unit_type_id)
		SELECT @voyage_id, unnest(@unit_type_ids::uuid[])
		ON CONFLICT (voyage_id, unit_type_id) DO NOTHING`

	if len(unitTypeIDs) > 0 {
		_, err = tx.Exec(ctx, linkUnitTypes, pgx.NamedArgs{
			"voyage_id":     created.ID,
			"unit_type_ids": unitTypeIDs,
		})
		if err != nil {
			return domain.Voyage{}, fmt.Errorf("repo.VoyageRepo.Create: link unit types: %w", err)
		}
	}

	created.UnitTypes, err = voyageUnitTypes(ctx, tx, created.ID)
	if err != nil {
		return domain.Voyage{}, fmt.Errorf("repo.VoyageRepo.Create: %w", err)
	}

	const vesselName = `SELECT name FROM vessels WHERE id = @id`
	if err := tx.QueryRow(ctx, vesselName, pgx.NamedArgs{"id": created.VesselID}).Scan(&created.VesselName); err != nil {
		return domain.Voyage{}, fmt.Errorf("repo.VoyageRepo.Create: vessel name: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Voyage{}, fmt.Errorf("repo.VoyageRepo.Create: commit: %w", err)
	}
	return created, nil
}

// GetByID retrieves a voyage with its vessel name and unit types.
func (r *pgVoyageRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Voyage, error) {
	q := `
		SELECT ` + voyageColumns + `
		FROM voyages v
		JOIN vessels ve ON ve.id = v.vessel_id
		WHERE v.id = @id`

	voyage, err := scanVoyage(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Voyage{}, fmt.Errorf("repo.VoyageRepo.GetByID: %w", err)
	}

	voyage.UnitTypes, err = voyageUnitTypes(ctx, r.db, voyage.ID)
	if err != nil {
		return domain.Voyage{}, fmt.Errorf("repo.VoyageRepo.GetByID: %w", err)
	}
	return voyage, nil
}

// List returns all voyages ordered by scheduled_departure descending.
func (r *pgVoyageRepo) List(ctx context.Context) ([]domain.Voyage, error) {
	q := `
		SELECT ` + voyageColumns + `
		FROM voyages v
		JOIN vessels ve ON ve.id = v.vessel_id
		ORDER BY v.scheduled_departure DESC`

	voyages, err := r.queryVoyages(ctx, q, nil)
	if err != nil {
		return nil, fmt.Errorf("repo.VoyageRepo.List: %w", err)
	}
	return voyages, nil
}

// ListPaged returns one page of voyages plus the total count.
func (r *pgVoyageRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Voyage, int64, error) {
	q := `
		SELECT ` + voyageColumns + `
		FROM voyages v
		JOIN vessels ve ON ve.id = v.vessel_id
		ORDER BY v.scheduled_departure DESC
		LIMIT @limit OFFSET @offset`

	voyages, err := r.queryVoyages(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.VoyageRepo.ListPaged: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM voyages`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.VoyageRepo.ListPaged: count: %w", err)
	}
	return voyages, total, nil
}

// Delete removes a voyage by primary key.
func (r *pgVoyageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM voyages WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.VoyageRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.VoyageRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// queryVoyages runs a multi-row voyage query and attaches unit types to each result.
func (r *pgVoyageRepo) queryVoyages(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Voyage, error) {
	var rows pgx.Rows
	var err error
	if args == nil {
		rows, err = r.db.Query(ctx, q)
	} else {
		rows, err = r.db.Query(ctx, q, args)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var voyages []domain.Voyage
	for rows.Next() {
		v, err := scanVoyage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		voyages = append(voyages, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	for i := range voyages {
		voyages[i].UnitTypes, err = voyageUnitTypes(ctx, r.db, voyages[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return voyages, nil
}

// voyageUnitTypes loads the unit types linked to a voyage, ordered by name.
func voyageUnitTypes(ctx context.Context, q interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}, voyageID uuid.UUID) ([]domain.UnitType, error) {
	const sql = `
		SELECT ut.id, ut.name, ut.default_length
		FROM unit_types ut
		JOIN voyage_unit_types vut ON vut.unit_type_id = ut.id
		WHERE vut.voyage_id = @voyage_id
		ORDER BY ut.name`

	rows, err := q.Query(ctx, sql, pgx.NamedArgs{"voyage_id": voyageID})
	if err != nil {
		return nil, fmt.Errorf("unit types: %w", err)
	}
	defer rows.Close()

	unitTypes := []domain.UnitType{}
	for rows.Next() {
		ut, err := scanUnitType(rows)
		if err != nil {
			return nil, fmt.Errorf("unit types: scan: %w", err)
		}
		unitTypes = append(unitTypes, ut)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unit types: rows: %w", err)
	}
	return unitTypes, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanVoyage maps a single database row into a domain.Voyage.
// The row must carry the voyageColumns order: id, departure, arrival, ports,
// vessel id, vessel name, created_at.
func scanVoyage(s scanner) (domain.Voyage, error) {
	var (
		v        domain.Voyage
		id       pgtype.UUID
		vesselID pgtype.UUID
	)

	err := s.Scan(&id, &v.ScheduledDeparture, &v.ScheduledArrival,
		&v.PortOfLoading, &v.PortOfDischarge, &vesselID, &v.VesselName, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Voyage{}, domain.ErrNotFound
		}
		return domain.Voyage{}, err
	}

	v.ID = uuid.UUID(id.Bytes)
	v.VesselID = uuid.UUID(vesselID.Bytes)
	return v, nil
}
