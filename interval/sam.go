package interval

import (
	"github.com/grailbio/hts/sam"
)

// Record adapts a SAM/BAM alignment to the Locatable contract.  sam.Record
// positions are 0-based half-open; the adapter shifts the start to the
// 1-based closed convention used throughout this package.  Unmapped records
// report an empty contig and therefore never overlap or contain anything.
type Record struct {
	R *sam.Record
}

// Contig implements Locatable.
func (r Record) Contig() string {
	if r.R == nil || r.R.Ref == nil || r.R.Flags&sam.Unmapped != 0 {
		return ""
	}
	return r.R.Ref.Name()
}

// Start implements Locatable.
func (r Record) Start() PosType {
	return PosType(r.R.Pos) + 1
}

// End implements Locatable.  sam.Record.End is 0-based exclusive, which
// equals the 1-based inclusive end.
func (r Record) End() PosType {
	return PosType(r.R.End())
}
