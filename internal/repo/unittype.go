package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tbruun/voyage-log/backend/internal/domain"
)

// UnitTypeRepo defines read access to the unit-type reference table.
// Unit types are seeded by migration; this service never writes them.
type UnitTypeRepo interface {
	// List returns all unit types ordered by name.
	List(ctx context.Context) ([]domain.UnitType, error)

	// ListByIDs returns the unit types whose ids appear in ids, ordered by
	// name. Unknown ids are simply absent from the result.
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.UnitType, error)
}

// pgUnitTypeRepo is the Postgres implementation of UnitTypeRepo.
type pgUnitTypeRepo struct {
	db db
}

// NewUnitTypeRepo constructs a UnitTypeRepo backed by the provided db connection.
func NewUnitTypeRepo(db db) UnitTypeRepo {
	return &pgUnitTypeRepo{db: db}
}

// List returns all unit types ordered by name.
func (r *pgUnitTypeRepo) List(ctx context.Context) ([]domain.UnitType, error) {
	const q = `SELECT id, name, default_length FROM unit_types ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.UnitTypeRepo.List: %w", err)
	}
	defer rows.Close()

	unitTypes, err := collectUnitTypes(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.UnitTypeRepo.List: %w", err)
	}
	return unitTypes, nil
}

// ListByIDs returns the unit types matching ids, ordered by name.
func (r *pgUnitTypeRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.UnitType, error) {
	const q = `
		SELECT id, name, default_length
		FROM unit_types
		WHERE id = ANY(@ids)
		ORDER BY name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("repo.UnitTypeRepo.ListByIDs: %w", err)
	}
	defer rows.Close()

	unitTypes, err := collectUnitTypes(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.UnitTypeRepo.ListByIDs: %w", err)
	}
	return unitTypes, nil
}

// collectUnitTypes drains rows into a non-nil slice.
func collectUnitTypes(rows pgx.Rows) ([]domain.UnitType, error) {
	unitTypes := []domain.UnitType{}
	for rows.Next() {
		ut, err := scanUnitType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		unitTypes = append(unitTypes, ut)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return unitTypes, nil
}

// scanUnitType maps a single database row into a domain.UnitType.
func scanUnitType(s scanner) (domain.UnitType, error) {
	var (
		ut domain.UnitType
		id pgtype.UUID
	)
	err := s.Scan(&id, &ut.Name, &ut.DefaultLength)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UnitType{}, domain.ErrNotFound
		}
		return domain.UnitType{}, err
	}
	ut.ID = uuid.UUID(id.Bytes)
	return ut, nil
}
