package jcm

import "strconv"

// EventResendInterval configures how often the device resends an
// unacknowledged event, in 100ms increments (1 = 100ms .. 15 = 1500ms).
type EventResendInterval uint8

const (
	EventResendMs100  EventResendInterval = 1
	EventResendMs200  EventResendInterval = 2
	EventResendMs300  EventResendInterval = 3
	EventResendMs400  EventResendInterval = 4
	EventResendMs500  EventResendInterval = 5
	EventResendMs600  EventResendInterval = 6
	EventResendMs700  EventResendInterval = 7
	EventResendMs800  EventResendInterval = 8
	EventResendMs900  EventResendInterval = 9
	EventResendMs1000 EventResendInterval = 10
	EventResendMs1100 EventResendInterval = 11
	EventResendMs1200 EventResendInterval = 12
	EventResendMs1300 EventResendInterval = 13
	EventResendMs1400 EventResendInterval = 14
	EventResendMs1500 EventResendInterval = 15
	EventResendReserved EventResendInterval = 0xFF
)

// EventResendIntervalFromU8 is the total mapping for EventResendInterval.
func EventResendIntervalFromU8(val uint8) EventResendInterval {
	if val >= 1 && val <= 15 {
		return EventResendInterval(val)
	}
	return EventResendReserved
}

// CheckedEventResendIntervalFromU8 rejects bytes outside 1..=15.
func CheckedEventResendIntervalFromU8(val uint8) (EventResendInterval, error) {
	e := EventResendIntervalFromU8(val)
	if e == EventResendReserved {
		return e, &EnumError{Enum: "event_resend_interval", Value: uint32(val)}
	}
	return e, nil
}

func (EventResendInterval) Len() int { return 1 }

// Milliseconds returns the interval in milliseconds.
func (e EventResendInterval) Milliseconds() int { return int(e) * 100 }

func (e EventResendInterval) String() string {
	if e == EventResendReserved {
		return "reserved"
	}
	return strconv.Itoa(e.Milliseconds()) + "ms"
}
