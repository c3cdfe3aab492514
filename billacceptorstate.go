package jcm

// BillAcceptorState is the device's coarse operating state, a supplement to
// DeviceStatus that the session engine derives from its latest
// StatusResponse and exposes read-only; the engine does not consult it
// before issuing a request (the original distillation omitted it; original_source
// tracks it as a distinct top-level enum alongside DeviceStatus).
type BillAcceptorState uint8

const (
	BillAcceptorInitializing BillAcceptorState = 1
	BillAcceptorInhibited    BillAcceptorState = 2
	BillAcceptorIdle         BillAcceptorState = 3
	BillAcceptorEscrowed     BillAcceptorState = 4
	BillAcceptorVendValid    BillAcceptorState = 5
	BillAcceptorReserved     BillAcceptorState = 0xFF
)

// BillAcceptorStateFromU8 is the total mapping for BillAcceptorState.
func BillAcceptorStateFromU8(val uint8) BillAcceptorState {
	switch BillAcceptorState(val) {
	case BillAcceptorInitializing, BillAcceptorInhibited, BillAcceptorIdle, BillAcceptorEscrowed, BillAcceptorVendValid:
		return BillAcceptorState(val)
	default:
		return BillAcceptorReserved
	}
}

// CheckedBillAcceptorStateFromU8 rejects reserved byte values.
func CheckedBillAcceptorStateFromU8(val uint8) (BillAcceptorState, error) {
	s := BillAcceptorStateFromU8(val)
	if s == BillAcceptorReserved {
		return s, &EnumError{Enum: "bill_acceptor_state", Value: uint32(val)}
	}
	return s, nil
}

func (BillAcceptorState) Len() int { return 1 }

func (s BillAcceptorState) String() string {
	switch s {
	case BillAcceptorInitializing:
		return "initializing"
	case BillAcceptorInhibited:
		return "inhibited"
	case BillAcceptorIdle:
		return "idle"
	case BillAcceptorEscrowed:
		return "escrowed"
	case BillAcceptorVendValid:
		return "vend valid"
	default:
		return "reserved"
	}
}

// DeriveBillAcceptorState computes a BillAcceptorState from the most recent
// DeviceStatus and unit status list a StatusResponse reported. InhibitRequest
// operates on the device as a whole, and the wire protocol reflects that back
// as UnitUnavailable on the acceptor's own UnitStatus entry rather than a
// distinct status value of its own, so that is the inhibited signal.
func DeriveBillAcceptorState(status DeviceStatus, units []UnitStatus) BillAcceptorState {
	switch {
	case status.Status.IsPowerUp():
		return BillAcceptorInitializing
	case status.Status.IsEscrow():
		return BillAcceptorEscrowed
	case status.Status.IsVendValid():
		return BillAcceptorVendValid
	}
	for _, u := range units {
		if u.UnitNumber.FuncId() == FuncIdAcceptor && u.FunctionStatus.UnitAvailability() == UnitUnavailable {
			return BillAcceptorInhibited
		}
	}
	if status.Status.IsIdle() {
		return BillAcceptorIdle
	}
	return BillAcceptorReserved
}
