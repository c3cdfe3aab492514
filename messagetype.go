package jcm

import "fmt"

// MessageType tags a MessageData record as a request (one of three
// sub-kinds) or as an event carrying a 4-bit rolling sequence number.
//
// Request sub-kinds occupy 0x00/0x10/0x20; events occupy 0x80..=0x8F, with
// the low nibble holding the sequence number. Every other value is reserved.
type MessageType uint8

const (
	RequestTypeOperation  MessageType = 0x00
	RequestTypeStatus     MessageType = 0x10
	RequestTypeSetFeature MessageType = 0x20

	eventTypeBase MessageType = 0x80
	eventTypeMask MessageType = 0x0F

	MessageTypeReserved MessageType = 0xFF
)

// IsRequest reports whether m is one of the three request sub-kinds.
func (m MessageType) IsRequest() bool {
	switch m {
	case RequestTypeOperation, RequestTypeStatus, RequestTypeSetFeature:
		return true
	default:
		return false
	}
}

// IsEvent reports whether m encodes an event sequence number.
func (m MessageType) IsEvent() bool {
	return m&0xF0 == eventTypeBase
}

// EventSequence extracts the 4-bit rolling sequence number from an event
// MessageType. It is only meaningful when IsEvent() is true.
func (m MessageType) EventSequence() uint8 {
	return uint8(m & eventTypeMask)
}

// EventType builds the MessageType for a given rolling sequence number
// (0..=15).
func EventType(seq uint8) MessageType {
	return eventTypeBase | MessageType(seq&0x0F)
}

// MessageTypeFromU8 is the total mapping for MessageType.
func MessageTypeFromU8(val uint8) MessageType {
	m := MessageType(val)
	if m.IsRequest() || m.IsEvent() {
		return m
	}
	return MessageTypeReserved
}

// CheckedMessageTypeFromU8 rejects reserved byte values.
func CheckedMessageTypeFromU8(val uint8) (MessageType, error) {
	m := MessageTypeFromU8(val)
	if m == MessageTypeReserved {
		return m, &EnumError{Enum: "message_type", Value: uint32(val)}
	}
	return m, nil
}

func (MessageType) Len() int { return 1 }

func (m MessageType) String() string {
	switch {
	case m == RequestTypeOperation:
		return "request(operation)"
	case m == RequestTypeStatus:
		return "request(status)"
	case m == RequestTypeSetFeature:
		return "request(set-feature)"
	case m.IsEvent():
		return fmt.Sprintf("event(sequence%d)", m.EventSequence())
	default:
		return "reserved"
	}
}
