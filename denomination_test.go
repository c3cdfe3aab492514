package jcm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenominationFromValueCanonical(t *testing.T) {
	cases := []struct {
		value    uint64
		integer  uint8
		exponent uint8
	}{
		{1, 1, 0},
		{20, 20, 0},
		{100, 100, 0},
		{2000, 200, 1},
		{5000, 50, 2},
		{10000, 100, 2},
		{20000, 200, 2},
		{50000, 50, 3},
	}
	for _, tc := range cases {
		d := DenominationFromValue(tc.value)
		assert.Equal(t, tc.integer, d.Integer(), "value %d", tc.value)
		assert.Equal(t, tc.exponent, d.Exponent(), "value %d", tc.value)
		assert.Equal(t, tc.value, d.Value(), "value %d", tc.value)
		assert.True(t, d.IsValid(), "value %d", tc.value)
	}
}

func TestDenominationFromValueRejectsNonCanonical(t *testing.T) {
	// 300 has no representable integer*10^exponent decomposition among the
	// designated denomination integers.
	d := DenominationFromValue(300)
	assert.False(t, d.IsValid())
}

func TestCheckedDenominationFromValue(t *testing.T) {
	_, err := CheckedDenominationFromValue(2000)
	require.NoError(t, err)

	_, err = CheckedDenominationFromValue(300)
	require.Error(t, err)
}

func TestDenominationRoundTripBytes(t *testing.T) {
	d := DenominationFromValue(2000)
	encoded := d.Bytes()
	decoded, err := CheckedDenominationFromBytes(encoded)
	require.NoError(t, err)
	assert.Equal(t, d, decoded)
}
