package interval

// PosType is the type used to represent interval coordinates.  It is 64-bit
// so the zero-based GA4GH view needs no separate type, even though BAM caps
// positions at int32.
type PosType = int64

// Locatable is implemented by any object with a single logical mapping onto
// the genome.  Positions are 1-based and closed at both ends.
type Locatable interface {
	// Contig returns the name of the reference sequence this object is
	// mapped to, or "" if there is no unique mapping.
	Contig() string
	// Start returns the 1-based start position, undefined if Contig() == "".
	Start() PosType
	// End returns the 1-based closed end position, undefined if
	// Contig() == "".
	End() PosType
}

// Size returns the number of bases covered by loc.  The result is only
// meaningful when End() >= Start(); this is not validated here.
func Size(loc Locatable) PosType {
	return loc.End() - loc.Start() + 1
}

// Overlaps returns true iff a and b share at least one base.
func Overlaps(a, b Locatable) bool {
	return OverlapsWithMargin(a, b, 0)
}

// OverlapsWithMargin returns true iff a comes within margin bases of
// overlapping b.  margin == 0 is plain overlap; a negative margin shrinks the
// effective test.  Unmapped intervals (empty contig) never overlap anything,
// including each other.  Overflow of End()+margin is the caller's
// responsibility.
func OverlapsWithMargin(a, b Locatable, margin PosType) bool {
	if b == nil || b.Contig() == "" || a.Contig() == "" {
		return false
	}
	return a.Contig() == b.Contig() &&
		a.Start() <= b.End()+margin &&
		b.Start()-margin <= a.End()
}

// Contains returns true iff a covers every base spanned by b.  It is not
// symmetric.  Unmapped intervals neither contain nor are contained.
func Contains(a, b Locatable) bool {
	if b == nil || b.Contig() == "" || a.Contig() == "" {
		return false
	}
	return a.Contig() == b.Contig() &&
		a.Start() <= b.Start() &&
		a.End() >= b.End()
}

// GA4GHStart returns the 0-based start position, per the GA4GH spec.
func GA4GHStart(loc Locatable) PosType {
	return loc.Start() - 1
}

// GA4GHEnd returns the end of the [zero-start, end) span, per the GA4GH
// spec.  Equal to the 1-based closed end.
func GA4GHEnd(loc Locatable) PosType {
	return loc.End()
}
