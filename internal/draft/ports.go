package draft

// The route network is a closed two-port world: every voyage sails between
// Copenhagen and Oslo, so choosing a port of loading fully determines the
// port of discharge.
const (
	PortCopenhagen = "Copenhagen"
	PortOslo       = "Oslo"
)

// PairedDischargePort returns the port of discharge implied by the chosen
// port of loading, or "" when the loading port is unknown or unset. The
// discharge field is always derived from this rule, never edited directly;
// a cleared discharge still fails required-field validation on submit.
func PairedDischargePort(loading string) string {
	switch loading {
	case PortCopenhagen:
		return PortOslo
	case PortOslo:
		return PortCopenhagen
	default:
		return ""
	}
}
