package jcm

// FuncId identifies which device sub-function a message addresses. It is
// carried in the high nibble of a MessageCode and, as FunctionMode, in the
// high nibble of a DeviceStatus.
type FuncId uint8

const (
	FuncIdCommon   FuncId = 0x0
	FuncIdAcceptor FuncId = 0x1
	FuncIdRecycler FuncId = 0x2
	FuncIdEscrow   FuncId = 0x3
	// FuncIdReserved is never produced by an encoder; it only results from
	// decoding an unrecognized value.
	FuncIdReserved FuncId = 0xFF

	funcIdStatusShift = 12
)

// FuncIdFromU8 is the total mapping: every byte decodes to a variant, folding
// unrecognized values into FuncIdReserved.
func FuncIdFromU8(val uint8) FuncId {
	switch val {
	case uint8(FuncIdCommon), uint8(FuncIdAcceptor), uint8(FuncIdRecycler), uint8(FuncIdEscrow):
		return FuncId(val)
	default:
		return FuncIdReserved
	}
}

// FuncIdFromU16 extracts the FuncId from the high nibble of a 16-bit
// MessageCode or DeviceStatus value.
func FuncIdFromU16(val uint16) FuncId {
	return FuncIdFromU8(uint8(val >> funcIdStatusShift))
}

// CheckedFuncIdFromU8 returns EnumError for any value not in the designated set.
func CheckedFuncIdFromU8(val uint8) (FuncId, error) {
	f := FuncIdFromU8(val)
	if f == FuncIdReserved {
		return f, &EnumError{Enum: "func_id", Value: uint32(val)}
	}
	return f, nil
}

// CheckedFuncIdFromU16 is the checked counterpart of FuncIdFromU16.
func CheckedFuncIdFromU16(val uint16) (FuncId, error) {
	return CheckedFuncIdFromU8(uint8(val >> funcIdStatusShift))
}

// Len is the wire length of a FuncId: always one byte.
func (FuncId) Len() int { return 1 }

// IsReserved reports whether f is the undecodable sentinel variant.
func (f FuncId) IsReserved() bool { return f == FuncIdReserved }

// AsStatusBits shifts f into the high-nibble position used by MessageCode and
// DeviceStatus encodings.
func (f FuncId) AsStatusBits() uint16 { return uint16(f) << funcIdStatusShift }

func (f FuncId) String() string {
	switch f {
	case FuncIdCommon:
		return "common"
	case FuncIdAcceptor:
		return "acceptor"
	case FuncIdRecycler:
		return "recycler"
	case FuncIdEscrow:
		return "escrow"
	default:
		return "reserved"
	}
}
