// Package domain contains the core data types for the Voyage Log application.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (draft, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Voyage represents a scheduled sailing between two ports on a given vessel,
// carrying one or more unit types. Voyages are created once and never updated;
// the only other lifecycle operation is deletion.
type Voyage struct {
	ID                 uuid.UUID  `json:"id"`
	ScheduledDeparture time.Time  `json:"scheduledDeparture"`
	ScheduledArrival   time.Time  `json:"scheduledArrival"` // always after ScheduledDeparture, enforced at validation time
	PortOfLoading      string     `json:"portOfLoading"`
	PortOfDischarge    string     `json:"portOfDischarge"`
	VesselID           uuid.UUID  `json:"vesselId"`
	VesselName         string     `json:"vesselName,omitempty"` // denormalized for the list view
	UnitTypes          []UnitType `json:"unitTypes"`
	CreatedAt          time.Time  `json:"createdAt"`
}
