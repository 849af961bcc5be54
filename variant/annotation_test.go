package variant_test

import (
	"math"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/strandbio/varcore/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesScore(t *testing.T) {
	tests := []struct {
		log10PError float64
		ok          bool
	}{
		{variant.NoLog10PError, true},
		{0.0, true},
		{-0.0, true},
		{-12.5, true},
		{-1e9, true},
		{0.5, false},
		{2.0, false},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
	}
	for _, test := range tests {
		a, err := variant.New("rs1", test.log10PError, nil, nil)
		if test.ok {
			require.NoError(t, err)
			assert.Equal(t, test.log10PError, a.Log10PError())
		} else {
			require.Error(t, err)
			assert.Nil(t, a)
			assert.True(t, errors.Is(errors.Invalid, err))
		}
	}
}

func TestSetLog10PError(t *testing.T) {
	a, err := variant.New("rs1", variant.NoLog10PError, nil, nil)
	require.NoError(t, err)
	assert.False(t, a.HasLog10PError())

	require.NoError(t, a.SetLog10PError(-3.0))
	assert.True(t, a.HasLog10PError())
	assert.Equal(t, -3.0, a.Log10PError())

	assert.Error(t, a.SetLog10PError(0.25))
	assert.Error(t, a.SetLog10PError(math.NaN()))
	// A failed set leaves the previous value in place.
	assert.Equal(t, -3.0, a.Log10PError())
}

func TestPhredScaledQual(t *testing.T) {
	a, err := variant.New("rs1", -2.5, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 25.0, a.PhredScaledQual())

	// log10PError of exactly 0 must yield +0, never -0: downstream
	// serialization distinguishes the sign bit.
	require.NoError(t, a.SetLog10PError(0.0))
	qual := a.PhredScaledQual()
	assert.Equal(t, 0.0, qual)
	assert.False(t, math.Signbit(qual))
}

func TestName(t *testing.T) {
	a, err := variant.New("", variant.NoLog10PError, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "", a.Name())

	require.NoError(t, a.SetName("rs42"))
	assert.Equal(t, "rs42", a.Name())

	err = a.SetName("")
	require.Error(t, err)
	assert.True(t, errors.Is(errors.Invalid, err))
	assert.Equal(t, "rs42", a.Name())
}
