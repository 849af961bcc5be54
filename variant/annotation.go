package variant

import (
	"fmt"
	"math"

	"github.com/grailbio/base/errors"
)

const (
	// NoLog10PError marks a record with no error estimate.  Any other
	// positive log10PError is illegal.
	NoLog10PError = 1.0

	// MissingValue is the VCF v4 missing-value token.  AttributeAsInt treats
	// an attribute holding this token as absent.  The encoding layer shares
	// this constant; its value is a format convention, not computed here.
	MissingValue = "."
)

// noAttributes is shared by every record that has never been annotated.  It
// must never be written; mutation promotes a record to a private map first.
var noAttributes = map[string]interface{}{}

// Annotation carries the call-level metadata common to variant and genotype
// records: a name, a log10-scaled error probability, the filters the call
// failed, and arbitrary key/value attributes.
type Annotation struct {
	name        string
	log10PError float64
	filters     map[string]struct{} // nil means filters were never applied
	attrs       map[string]interface{}
	ownsAttrs   bool // false while attrs aliases the shared empty map
}

// New returns an annotation record.  A nil filters slice means "filters not
// evaluated"; a non-nil (even empty) slice means "evaluated".  A nil or empty
// attributes map keeps the record on the shared empty storage; otherwise the
// map is adopted as-is, without copying, until a guarded mutation reallocates
// it.  Fails if log10PError is positive and not NoLog10PError, NaN, or
// infinite.
func New(name string, log10PError float64, filters []string, attributes map[string]interface{}) (*Annotation, error) {
	a := &Annotation{
		name:        name,
		log10PError: NoLog10PError,
		attrs:       noAttributes,
	}
	if err := a.SetLog10PError(log10PError); err != nil {
		return nil, err
	}
	if filters != nil {
		a.filters = make(map[string]struct{}, len(filters))
		for _, f := range filters {
			a.filters[f] = struct{}{}
		}
	}
	if len(attributes) > 0 {
		a.attrs = attributes
		a.ownsAttrs = true
	}
	return a, nil
}

// Name returns the record name, "" if never set.
func (a *Annotation) Name() string { return a.name }

// SetName renames the record.  An empty name is rejected; once named, a
// record cannot become nameless.
func (a *Annotation) SetName(name string) error {
	if name == "" {
		return errors.E(errors.Invalid, fmt.Sprintf("name cannot be empty: %v", a))
	}
	a.name = name
	return nil
}

// HasLog10PError returns true iff the record carries an error estimate.
func (a *Annotation) HasLog10PError() bool {
	return a.log10PError != NoLog10PError
}

// Log10PError returns the log10-based error estimate, NoLog10PError if none.
func (a *Annotation) Log10PError() float64 { return a.log10PError }

// PhredScaledQual returns -10 * log10PError.  Adding the constant 0.0
// ensures the result is never -0.0, since (-0.0) + 0.0 = 0.0; a qual of 0
// must serialize as 0, not -0.
func (a *Annotation) PhredScaledQual() float64 {
	return a.log10PError*-10 + 0.0
}

// SetLog10PError replaces the error estimate.  The value must be
// NoLog10PError or <= 0, and finite.
func (a *Annotation) SetLog10PError(log10PError float64) error {
	if log10PError > 0 && log10PError != NoLog10PError {
		return errors.E(errors.Invalid, fmt.Sprintf("log10PError cannot be > 0: %v", log10PError))
	}
	if math.IsInf(log10PError, 0) {
		return errors.E(errors.Invalid, "log10PError cannot be infinite")
	}
	if math.IsNaN(log10PError) {
		return errors.E(errors.Invalid, "log10PError cannot be NaN")
	}
	a.log10PError = log10PError
	return nil
}

// String returns a compact diagnostic rendering.
func (a *Annotation) String() string {
	return fmt.Sprintf("Annotation(name=%q qual=%v filters=%v attrs=%d)",
		a.name, a.PhredScaledQual(), a.FiltersOrNil(), len(a.attrs))
}
