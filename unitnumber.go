package jcm

import "strconv"

// UnitNumber packs a FuncId into the high nibble and a 1-based unit index
// into the low nibble, identifying one physical unit (e.g. recycler box 2)
// among possibly several sharing the same function.
type UnitNumber uint8

const unitNumberIndexMask = 0x0F

// NewUnitNumber packs fn and index (1..=15) into a UnitNumber. It does not
// validate; use CheckedUnitNumberFromU8 on the packed byte to validate.
func NewUnitNumber(fn FuncId, index uint8) UnitNumber {
	return UnitNumber(uint8(fn)<<4 | index&unitNumberIndexMask)
}

// UnitNumberFromU8 is the total mapping for UnitNumber; it does not reject
// invalid packings, only unpacks the nibbles as-is.
func UnitNumberFromU8(val uint8) UnitNumber { return UnitNumber(val) }

// CheckedUnitNumberFromU8 rejects a UnitNumber whose FuncId nibble is
// reserved or whose unit index is 0.
func CheckedUnitNumberFromU8(val uint8) (UnitNumber, error) {
	u := UnitNumber(val)
	if u.FuncId().IsReserved() || u.Index() == 0 {
		return u, &EnumError{Enum: "unit_number", Value: uint32(val)}
	}
	return u, nil
}

func (UnitNumber) Len() int { return 1 }

// FuncId returns the high-nibble function identifier.
func (u UnitNumber) FuncId() FuncId {
	return FuncIdFromU8(uint8(u) >> 4)
}

// Index returns the low-nibble 1-based unit index; 0 is invalid.
func (u UnitNumber) Index() uint8 {
	return uint8(u) & unitNumberIndexMask
}

func (u UnitNumber) String() string {
	return u.FuncId().String() + "#" + strconv.Itoa(int(u.Index()))
}

// UnitStatus pairs a UnitNumber with the FunctionStatus of that unit, as
// carried in Status response/event payloads.
type UnitStatus struct {
	UnitNumber     UnitNumber
	FunctionStatus FunctionStatus
}

func (UnitStatus) Len() int { return 2 }

// UnitStatusFromBytes decodes a single 2-byte UnitStatus entry.
func UnitStatusFromBytes(buf []byte) (UnitStatus, error) {
	if len(buf) < 2 {
		return UnitStatus{}, &LengthError{Field: "unit_status", Observed: len(buf), Required: 2}
	}
	unitNumber, err := CheckedUnitNumberFromU8(buf[0])
	if err != nil {
		return UnitStatus{}, err
	}
	fs, err := CheckedFunctionStatusFromU8(buf[1])
	if err != nil {
		return UnitStatus{}, err
	}
	return UnitStatus{UnitNumber: unitNumber, FunctionStatus: fs}, nil
}

func (u UnitStatus) Bytes() []byte {
	return []byte{uint8(u.UnitNumber), uint8(u.FunctionStatus)}
}

// UnitStatusListFromBytes decodes a sequence of back-to-back UnitStatus
// entries; buf's length must be a multiple of 2.
func UnitStatusListFromBytes(buf []byte) ([]UnitStatus, error) {
	if len(buf)%2 != 0 {
		return nil, &LengthError{Field: "unit_status_list", Observed: len(buf), Required: len(buf) + (len(buf) % 2)}
	}
	out := make([]UnitStatus, 0, len(buf)/2)
	for i := 0; i < len(buf); i += 2 {
		us, err := UnitStatusFromBytes(buf[i : i+2])
		if err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	return out, nil
}

func UnitStatusListBytes(list []UnitStatus) []byte {
	out := make([]byte, 0, len(list)*2)
	for _, us := range list {
		out = append(out, us.Bytes()...)
	}
	return out
}
