package jcm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFuncIdFromU8Total sweeps every byte value, checking the total mapping
// never returns an error and the checked variant agrees for every
// recognized value.
func TestFuncIdFromU8Total(t *testing.T) {
	for v := 0; v <= 0xFF; v++ {
		got := FuncIdFromU8(uint8(v))
		checked, err := CheckedFuncIdFromU8(uint8(v))
		switch got {
		case FuncIdCommon, FuncIdAcceptor, FuncIdRecycler, FuncIdEscrow:
			assert.NoError(t, err, "value %#x", v)
			assert.Equal(t, got, checked)
		default:
			assert.Equal(t, FuncIdReserved, got, "value %#x", v)
			assert.Error(t, err, "value %#x", v)
		}
	}
}

func TestConfIdFromU8Total(t *testing.T) {
	for v := 0; v <= 0xFF; v++ {
		got := ConfIdFromU8(uint8(v))
		checked, err := CheckedConfIdFromU8(uint8(v))
		if got == ConfIdReserved {
			assert.Error(t, err, "value %#x", v)
			continue
		}
		assert.NoError(t, err, "value %#x", v)
		assert.Equal(t, got, checked)
	}
}

func TestRequestCodeFromU16Total(t *testing.T) {
	for v := 0; v <= 0xFFFF; v++ {
		got := RequestCodeFromU16(uint16(v))
		checked, err := CheckedRequestCodeFromU16(uint16(v))
		if got == RequestReserved {
			assert.Error(t, err, "value %#x", v)
			continue
		}
		assert.NoError(t, err, "value %#x", v)
		assert.Equal(t, got, checked)
	}
}

func TestEventCodeFromU16Total(t *testing.T) {
	for v := 0; v <= 0xFFFF; v++ {
		got := EventCodeFromU16(uint16(v))
		checked, err := CheckedEventCodeFromU16(uint16(v))
		if got == EventReserved {
			assert.Error(t, err, "value %#x", v)
			continue
		}
		assert.NoError(t, err, "value %#x", v)
		assert.Equal(t, got, checked)
	}
}

func TestMessageCodeFromU16Dispatch(t *testing.T) {
	code, err := MessageCodeFromU16(RequestTypeOperation, uint16(RequestReset))
	assert := assert.New(t)
	assert.NoError(err)
	assert.False(code.IsEvent())
	assert.Equal(RequestReset, code.Request)

	eventCode, err := MessageCodeFromU16(EventType(4), uint16(EventIdle))
	assert.NoError(err)
	assert.True(eventCode.IsEvent())
	assert.Equal(EventIdle, eventCode.Event)
}
