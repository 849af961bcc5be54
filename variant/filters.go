package variant

import (
	"fmt"
	"sort"

	"github.com/grailbio/base/errors"
)

// Filters returns a sorted copy of the applied filter names.  It is empty
// both when filters were never applied and when they were applied and all
// passed; use FiltersWereApplied or FiltersOrNil to tell those apart.
func (a *Annotation) Filters() []string {
	out := make([]string, 0, len(a.filters))
	for f := range a.filters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// FiltersOrNil exposes the raw tri-state: nil when filters were never
// applied, otherwise a sorted copy (possibly empty) of the failed filters.
func (a *Annotation) FiltersOrNil() []string {
	if a.filters == nil {
		return nil
	}
	return a.Filters()
}

// FiltersWereApplied returns true iff the record has been through filtering,
// whether or not any filter failed.
func (a *Annotation) FiltersWereApplied() bool {
	return a.filters != nil
}

// IsFiltered returns true iff the record failed at least one filter.
func (a *Annotation) IsFiltered() bool {
	return len(a.filters) > 0
}

// IsNotFiltered is the negation of IsFiltered.
func (a *Annotation) IsNotFiltered() bool {
	return !a.IsFiltered()
}

// AddFilter records that the call failed the named filter, marking filters
// as applied if they were not already.  An empty name or a duplicate add is
// an error, not a no-op.
func (a *Annotation) AddFilter(filter string) error {
	if filter == "" {
		return errors.E(errors.Invalid, fmt.Sprintf("attempting to add empty filter: %v", a))
	}
	if _, ok := a.filters[filter]; ok {
		return errors.E(errors.Invalid, fmt.Sprintf("attempting to add duplicate filter %q: %v", filter, a))
	}
	if a.filters == nil {
		a.filters = make(map[string]struct{})
	}
	a.filters[filter] = struct{}{}
	return nil
}

// AddFilters adds each name via AddFilter.  A nil slice is an error.  On the
// first failing element the batch aborts with earlier elements already
// applied; callers needing atomicity must pre-validate.
func (a *Annotation) AddFilters(filters []string) error {
	if filters == nil {
		return errors.E(errors.Invalid, fmt.Sprintf("attempting to add nil filters: %v", a))
	}
	for _, f := range filters {
		if err := a.AddFilter(f); err != nil {
			return err
		}
	}
	return nil
}
