package interval

import "fmt"

// Simple is a minimal concrete Locatable: a contig name and a 1-based closed
// [start, end] span.  Use NewSimple, or the zero value for an unmapped
// interval.
type Simple struct {
	contig     string
	start, end PosType
}

// NewSimple returns an interval on the given contig.  contig == "" yields an
// unmapped interval; start/end are stored as given, without validation.
func NewSimple(contig string, start, end PosType) Simple {
	return Simple{contig: contig, start: start, end: end}
}

// Contig implements Locatable.
func (s Simple) Contig() string { return s.contig }

// Start implements Locatable.
func (s Simple) Start() PosType { return s.start }

// End implements Locatable.
func (s Simple) End() PosType { return s.end }

// Size returns the number of bases covered by s.
func (s Simple) Size() PosType { return Size(s) }

// Overlaps returns true iff s shares at least one base with other.
func (s Simple) Overlaps(other Locatable) bool { return Overlaps(s, other) }

// OverlapsWithMargin returns true iff s comes within margin bases of
// overlapping other.
func (s Simple) OverlapsWithMargin(other Locatable, margin PosType) bool {
	return OverlapsWithMargin(s, other, margin)
}

// Contains returns true iff s covers every base spanned by other.
func (s Simple) Contains(other Locatable) bool { return Contains(s, other) }

func (s Simple) String() string {
	if s.contig == "" {
		return "*:unmapped"
	}
	return fmt.Sprintf("%s:%d-%d", s.contig, s.start, s.end)
}
