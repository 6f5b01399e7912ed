package draft

// UnitTypeOption is a selectable unit type: identifier plus display name.
// The name is kept alongside the id so the form can render selected chips
// without re-resolving against the reference list.
type UnitTypeOption struct {
	ID   string
	Name string
}

// Selection holds the form state for fields that are not plain text inputs:
// the chosen vessel, the ordered unit-type multi-selection, and the port
// pair. It is the source of truth for those fields; Apply mirrors it into
// the draft (one-directional — the draft never writes back).
type Selection struct {
	vesselID        string
	portOfLoading   string
	portOfDischarge string
	unitTypes       []UnitTypeOption
}

// SetVessel records the chosen vessel id.
func (s *Selection) SetVessel(id string) {
	s.vesselID = id
}

// VesselID returns the currently chosen vessel id, or "".
func (s *Selection) VesselID() string {
	return s.vesselID
}

// SetPortOfLoading records the chosen port of loading and force-selects the
// paired port of discharge. An unrecognized port clears the discharge.
func (s *Selection) SetPortOfLoading(port string) {
	s.portOfLoading = port
	s.portOfDischarge = PairedDischargePort(port)
}

// PortOfLoading returns the currently chosen port of loading, or "".
func (s *Selection) PortOfLoading() string {
	return s.portOfLoading
}

// PortOfDischarge returns the derived port of discharge, or "".
func (s *Selection) PortOfDischarge() string {
	return s.portOfDischarge
}

// AddUnitType appends opt to the selection, preserving insertion order.
// Adding an already-selected id is a no-op.
func (s *Selection) AddUnitType(opt UnitTypeOption) {
	for _, ut := range s.unitTypes {
		if ut.ID == opt.ID {
			return
		}
	}
	s.unitTypes = append(s.unitTypes, opt)
}

// RemoveUnitType filters out the unit type with the given id.
func (s *Selection) RemoveUnitType(id string) {
	kept := s.unitTypes[:0]
	for _, ut := range s.unitTypes {
		if ut.ID != id {
			kept = append(kept, ut)
		}
	}
	s.unitTypes = kept
}

// PopUnitType removes and returns the most recently selected unit type.
// The form calls this on a delete keypress while the search box is empty.
func (s *Selection) PopUnitType() (UnitTypeOption, bool) {
	if len(s.unitTypes) == 0 {
		return UnitTypeOption{}, false
	}
	last := s.unitTypes[len(s.unitTypes)-1]
	s.unitTypes = s.unitTypes[:len(s.unitTypes)-1]
	return last, true
}

// UnitTypes returns a copy of the selected unit types in selection order.
func (s *Selection) UnitTypes() []UnitTypeOption {
	out := make([]UnitTypeOption, len(s.unitTypes))
	copy(out, s.unitTypes)
	return out
}

// UnitTypeIDs returns the selected ids in selection order.
func (s *Selection) UnitTypeIDs() []string {
	ids := make([]string, len(s.unitTypes))
	for i, ut := range s.unitTypes {
		ids[i] = ut.ID
	}
	return ids
}

// Apply mirrors the selection into d. Called on every selection change and
// again defensively before submission, so validation always sees the latest
// vessel, unit types, and port pair.
func (s *Selection) Apply(d *Draft) {
	d.VesselID = s.vesselID
	d.PortOfLoading = s.portOfLoading
	d.PortOfDischarge = s.portOfDischarge
	d.UnitTypeIDs = s.UnitTypeIDs()
}
