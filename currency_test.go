package jcm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencyIsEmpty(t *testing.T) {
	usd := Currency{Code: [3]byte{'U', 'S', 'D'}, Denomination: DenominationFromValue(100)}
	assert.False(t, usd.IsEmpty())

	none := Currency{Code: [3]byte{'X', 'X', 'X'}, Denomination: DenominationFromValue(100)}
	assert.True(t, none.IsEmpty())

	zeroDenom := Currency{Code: [3]byte{'U', 'S', 'D'}}
	assert.True(t, zeroDenom.IsEmpty())
}

func TestDenominationIsEmpty(t *testing.T) {
	assert.True(t, Denomination{}.IsEmpty())
	assert.False(t, DenominationFromValue(1).IsEmpty())
}
