package jcm

// ConfId is the device's reported hardware configuration: which optional
// functions (recycler, escrow) are physically present alongside the
// acceptor.
type ConfId uint8

const (
	ConfIdAcceptor               ConfId = 0x10
	ConfIdAcceptorRecycler       ConfId = 0x11
	ConfIdAcceptorEscrow         ConfId = 0x12
	ConfIdAcceptorRecyclerEscrow ConfId = 0x18
	ConfIdReserved               ConfId = 0xFF
)

// ConfIdFromU8 is the total mapping for ConfId.
func ConfIdFromU8(val uint8) ConfId {
	switch ConfId(val) {
	case ConfIdAcceptor, ConfIdAcceptorRecycler, ConfIdAcceptorEscrow, ConfIdAcceptorRecyclerEscrow:
		return ConfId(val)
	default:
		return ConfIdReserved
	}
}

// CheckedConfIdFromU8 rejects any value outside the designated set.
func CheckedConfIdFromU8(val uint8) (ConfId, error) {
	c := ConfIdFromU8(val)
	if c == ConfIdReserved {
		return c, &EnumError{Enum: "conf_id", Value: uint32(val)}
	}
	return c, nil
}

func (ConfId) Len() int { return 1 }

func (c ConfId) IsReserved() bool { return c == ConfIdReserved }

func (c ConfId) String() string {
	switch c {
	case ConfIdAcceptor:
		return "acceptor"
	case ConfIdAcceptorRecycler:
		return "acceptor+recycler"
	case ConfIdAcceptorEscrow:
		return "acceptor+escrow"
	case ConfIdAcceptorRecyclerEscrow:
		return "acceptor+recycler+escrow"
	default:
		return "reserved"
	}
}
