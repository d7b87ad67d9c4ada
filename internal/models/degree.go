package models

// DegreeTrack identifies one of the two supported academic programs. It
// partitions stage templates and is fixed on a student at enrollment.
type DegreeTrack string

const (
	DegreeMaster DegreeTrack = "MASTER"
	DegreePhD    DegreeTrack = "PHD"
)

// Valid reports whether the track is one of the supported programs.
func (d DegreeTrack) Valid() bool {
	return d == DegreeMaster || d == DegreePhD
}

// DisplayName returns the Vietnamese label used across administrative documents.
func (d DegreeTrack) DisplayName() string {
	switch d {
	case DegreeMaster:
		return "Thạc sĩ"
	case DegreePhD:
		return "Tiến sĩ"
	default:
		return string(d)
	}
}

// Tracks lists all supported degree tracks.
func Tracks() []DegreeTrack {
	return []DegreeTrack{DegreeMaster, DegreePhD}
}
