package variant_test

import (
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/strandbio/varcore/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterTriState(t *testing.T) {
	// nil filters: filtering never ran.
	a, err := variant.New("rs1", variant.NoLog10PError, nil, nil)
	require.NoError(t, err)
	assert.False(t, a.FiltersWereApplied())
	assert.False(t, a.IsFiltered())
	assert.True(t, a.IsNotFiltered())
	assert.Nil(t, a.FiltersOrNil())
	assert.Empty(t, a.Filters())

	// Empty non-nil filters: filtering ran and everything passed.
	b, err := variant.New("rs2", variant.NoLog10PError, []string{}, nil)
	require.NoError(t, err)
	assert.True(t, b.FiltersWereApplied())
	assert.False(t, b.IsFiltered())
	assert.NotNil(t, b.FiltersOrNil())
	assert.Empty(t, b.FiltersOrNil())

	// Non-empty filters: the call failed the named filters.
	c, err := variant.New("rs3", variant.NoLog10PError, []string{"q10", "LowDP"}, nil)
	require.NoError(t, err)
	assert.True(t, c.FiltersWereApplied())
	assert.True(t, c.IsFiltered())
	assert.Equal(t, []string{"LowDP", "q10"}, c.Filters())
}

func TestAddFilter(t *testing.T) {
	a, err := variant.New("rs1", variant.NoLog10PError, nil, nil)
	require.NoError(t, err)

	require.NoError(t, a.AddFilter("q10"))
	assert.True(t, a.FiltersWereApplied())
	assert.True(t, a.IsFiltered())

	// Duplicate add is an error, not a no-op.
	err = a.AddFilter("q10")
	require.Error(t, err)
	assert.True(t, errors.Is(errors.Invalid, err))

	err = a.AddFilter("")
	require.Error(t, err)
	assert.Equal(t, []string{"q10"}, a.Filters())
}

func TestAddFiltersPartialApplication(t *testing.T) {
	a, err := variant.New("rs1", variant.NoLog10PError, nil, nil)
	require.NoError(t, err)

	err = a.AddFilters(nil)
	require.Error(t, err)
	assert.False(t, a.FiltersWereApplied())

	require.NoError(t, a.AddFilters([]string{"q10", "LowDP"}))

	// The batch aborts at the duplicate, leaving "s50" already applied.
	err = a.AddFilters([]string{"s50", "q10", "never"})
	require.Error(t, err)
	assert.Equal(t, []string{"LowDP", "q10", "s50"}, a.Filters())
}

func TestFiltersReturnsCopy(t *testing.T) {
	a, err := variant.New("rs1", variant.NoLog10PError, []string{"q10"}, nil)
	require.NoError(t, err)

	got := a.Filters()
	got[0] = "mutated"
	assert.Equal(t, []string{"q10"}, a.Filters())
}
