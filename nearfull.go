package jcm

// NearFullData configures the recycler's near-full warning: whether it is
// enabled, and the note-count threshold that triggers it.
type NearFullData struct {
	Enabled bool
	Number  uint16
}

func (NearFullData) Len() int { return 3 }

// NearFullDataFromBytes decodes a 3-byte {status, number_le} record.
func NearFullDataFromBytes(buf []byte) (NearFullData, error) {
	if len(buf) < 3 {
		return NearFullData{}, &LengthError{Field: "near_full_data", Observed: len(buf), Required: 3}
	}
	var enabled bool
	switch buf[0] {
	case 0:
		enabled = false
	case 1:
		enabled = true
	default:
		return NearFullData{}, &EnumError{Enum: "near_full_data.status", Value: uint32(buf[0])}
	}
	number := uint16(buf[1]) | uint16(buf[2])<<8
	return NearFullData{Enabled: enabled, Number: number}, nil
}

func (n NearFullData) Bytes() []byte {
	status := uint8(0)
	if n.Enabled {
		status = 1
	}
	return []byte{status, uint8(n.Number), uint8(n.Number >> 8)}
}
