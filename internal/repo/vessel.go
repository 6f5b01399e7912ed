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

// VesselRepo defines read access to the vessel reference table.
// Vessels are seeded by migration; this service never writes them.
type VesselRepo interface {
	// List returns all vessels ordered by name.
	List(ctx context.Context) ([]domain.Vessel, error)
}

// pgVesselRepo is the Postgres implementation of VesselRepo.
type pgVesselRepo struct {
	db db
}

// NewVesselRepo constructs a VesselRepo backed by the provided db connection.
func NewVesselRepo(db db) VesselRepo {
	return &pgVesselRepo{db: db}
}

// List returns all vessels ordered by name.
func (r *pgVesselRepo) List(ctx context.Context) ([]domain.Vessel, error) {
	const q = `SELECT id, name FROM vessels ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VesselRepo.List: %w", err)
	}
	defer rows.Close()

	vessels := []domain.Vessel{}
	for rows.Next() {
		v, err := scanVessel(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VesselRepo.List: scan: %w", err)
		}
		vessels = append(vessels, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VesselRepo.List: rows: %w", err)
	}
	return vessels, nil
}

// scanVessel maps a single database row into a domain.Vessel.
func scanVessel(s scanner) (domain.Vessel, error) {
	var (
		v  domain.Vessel
		id pgtype.UUID
	)
	err := s.Scan(&id, &v.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Vessel{}, domain.ErrNotFound
		}
		return domain.Vessel{}, err
	}
	v.ID = uuid.UUID(id.Bytes)
	return v, nil
}
