package domain

import "github.com/google/uuid"

// UnitType is a category of cargo unit (e.g. a trailer class) with a default
// length in meters. Many-to-many with Voyage via the voyage_unit_types table.
type UnitType struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	DefaultLength float64   `json:"defaultLength"`
}
