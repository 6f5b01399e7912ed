// Package draft implements the client core of the voyage creation form: the
// in-progress draft record, its validation schema, the port-pairing rule,
// the selection state for non-text widgets, and the submission state machine
// that talks to the create endpoint.
package draft

import (
	"time"

	"github.com/tbruun/voyage-log/backend/internal/domain"
)

// Field names used as keys in domain.FieldErrors. They match the JSON field
// names of the create request so errors can be rendered next to their inputs.
const (
	FieldDeparture       = "departure"
	FieldArrival         = "arrival"
	FieldPortOfLoading   = "portOfLoading"
	FieldPortOfDischarge = "portOfDischarge"
	FieldVessel          = "vessel"
	FieldUnitTypes       = "unitTypes"
)

// Validation messages, one per rule.
const (
	MsgDepartureRequired       = "Departure is required"
	MsgArrivalRequired         = "Arrival is required"
	MsgPortOfLoadingRequired   = "Port of loading is required"
	MsgPortOfDischargeRequired = "Port of discharge is required"
	MsgVesselRequired          = "Vessel is required"
	MsgUnitTypeRequired        = "At least one unit type is required"
	MsgArrivalAfterDeparture   = "Arrival date must be after departure date"
)

// inputTimeLayout is the representation produced by a datetime-local input.
const inputTimeLayout = "2006-01-02T15:04"

// Draft is the ephemeral client-side voyage record. Departure and Arrival
// hold the raw input representation; they are normalized to absolute RFC 3339
// timestamps only when the draft is submitted. UnitTypeIDs is order-preserving
// and duplicate-free (maintained by Selection).
type Draft struct {
	Departure       string
	Arrival         string
	PortOfLoading   string
	PortOfDischarge string
	VesselID        string
	UnitTypeIDs     []string
}

// Validate applies the full rule set to d and returns a field-keyed error map.
// An empty map means the draft is valid; the caller must not submit on any
// error. Rules are evaluated independently per field, so multiple violations
// each surface their own message.
func Validate(d Draft) domain.FieldErrors {
	fe := domain.FieldErrors{}

	if d.Departure == "" {
		fe[FieldDeparture] = MsgDepartureRequired
	}
	if d.Arrival == "" {
		fe[FieldArrival] = MsgArrivalRequired
	}
	if d.PortOfLoading == "" {
		fe[FieldPortOfLoading] = MsgPortOfLoadingRequired
	}
	if d.PortOfDischarge == "" {
		fe[FieldPortOfDischarge] = MsgPortOfDischargeRequired
	}
	if d.VesselID == "" {
		fe[FieldVessel] = MsgVesselRequired
	}
	if len(d.UnitTypeIDs) == 0 {
		fe[FieldUnitTypes] = MsgUnitTypeRequired
	}

	// Cross-field ordering check. The error is attached to the arrival field
	// even though it depends on both, so it renders next to the arrival input.
	// An unparsable timestamp fails the comparison and reports the same way.
	if d.Departure != "" && d.Arrival != "" {
		dep, depErr := ParseInputTime(d.Departure)
		arr, arrErr := ParseInputTime(d.Arrival)
		if depErr != nil || arrErr != nil || !arr.After(dep) {
			fe[FieldArrival] = MsgArrivalAfterDeparture
		}
	}

	return fe
}

// ParseInputTime parses a timestamp in either the datetime-local input layout
// or RFC 3339. Input-layout values carry no zone and are taken as UTC.
func ParseInputTime(s string) (time.Time, error) {
	if t, err := time.Parse(inputTimeLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
