package domain

import "github.com/google/uuid"

// Vessel is a ship referenced by voyages. Read-only reference data for this
// service — vessels are seeded by migration and never mutated through the API.
type Vessel struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
