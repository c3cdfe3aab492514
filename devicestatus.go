package jcm

// FunctionMode is FuncId as carried in the high nibble of a DeviceStatus
// value; it is the same closed set (Common/Acceptor/Recycler/Escrow).
type FunctionMode = FuncId

const (
	FunctionModeCommon   = FuncIdCommon
	FunctionModeAcceptor = FuncIdAcceptor
	FunctionModeRecycler = FuncIdRecycler
	FunctionModeEscrow   = FuncIdEscrow
)

// MajorMinorStatus is the low 12 bits of a DeviceStatus: a major status
// nibble (PowerUp/Normal/Abnormal/Warning) plus an 8-bit minor status, with
// Abnormal's minor byte reinterpreted as a FailureCode when it does not
// match one of the named Abnormal variants.
type MajorMinorStatus struct {
	raw     uint16
	failure FailureCode
	isAbnormalFailure bool
}

const (
	majorMinorMajorMask  = 0x0F00
	majorMinorMinorMask  = 0x00FF
	majorMinorMask       = majorMinorMajorMask | majorMinorMinorMask
	majorAbnormal        = 0x0200
)

const (
	mmPowerUp                  = 0x0000
	mmPowerUpAcceptor          = 0x0001
	mmPowerUpStacker           = 0x0002
	mmPowerUpAcceptorAccepting = 0x0011
	mmPowerUpStackerAccepting  = 0x0012
	mmNormal                   = 0x0100
	mmNormalIdle               = 0x0101
	mmNormalActive             = 0x0102
	mmNormalEscrow             = 0x0103
	mmNormalVendValid          = 0x0104
	mmNormalRejected           = 0x0105
	mmNormalReturned           = 0x0106
	mmNormalCollected          = 0x0108
	mmNormalInsert             = 0x010A
	mmNormalConditionalVend    = 0x010B
	mmNormalPause              = 0x010C
	mmNormalResume             = 0x010D
	mmAbnormal                 = 0x0200
	mmAbnormalOperationError   = 0x0201
	mmWarning                  = 0x0300
	mmWarningNoteStay          = 0x0301
	mmWarningFunctionAbeyance  = 0x0302
	mmReserved                 = 0xFFFF
)

var namedMajorMinorStatus = map[uint16]string{
	mmPowerUp:                  "power up",
	mmPowerUpAcceptor:          "power up (acceptor note)",
	mmPowerUpStacker:           "power up (stacker note)",
	mmPowerUpAcceptorAccepting: "power up accepting (acceptor note)",
	mmPowerUpStackerAccepting:  "power up accepting (stacker note)",
	mmNormal:                   "normal",
	mmNormalIdle:               "normal idle",
	mmNormalActive:             "normal active",
	mmNormalEscrow:             "normal escrow",
	mmNormalVendValid:          "normal vend valid",
	mmNormalRejected:           "normal rejected",
	mmNormalReturned:           "normal returned",
	mmNormalCollected:          "normal collected",
	mmNormalInsert:             "normal insert",
	mmNormalConditionalVend:    "normal conditional vend",
	mmNormalPause:              "normal pause",
	mmNormalResume:             "normal resume",
	mmAbnormal:                 "abnormal",
	mmAbnormalOperationError:   "abnormal operation error",
	mmWarning:                  "warning",
	mmWarningNoteStay:          "warning note stay",
	mmWarningFunctionAbeyance:  "warning function abeyance",
}

// MajorMinorStatusFromU16 is the total mapping for MajorMinorStatus. A minor
// byte under the Abnormal major status that doesn't match a named Abnormal
// variant is reinterpreted as a FailureCode; an unrecognized FailureCode
// folds to the Reserved sentinel.
func MajorMinorStatusFromU16(val uint16) MajorMinorStatus {
	masked := val & majorMinorMask
	if _, ok := namedMajorMinorStatus[masked]; ok {
		return MajorMinorStatus{raw: masked}
	}
	if masked&majorMinorMajorMask == majorAbnormal {
		fc := FailureCodeFromU8(uint8(masked & majorMinorMinorMask))
		if fc != FailureReserved {
			return MajorMinorStatus{raw: masked, failure: fc, isAbnormalFailure: true}
		}
	}
	return MajorMinorStatus{raw: mmReserved}
}

// CheckedMajorMinorStatusFromU16 rejects the reserved sentinel.
func CheckedMajorMinorStatusFromU16(val uint16) (MajorMinorStatus, error) {
	m := MajorMinorStatusFromU16(val)
	if m.IsReserved() {
		return m, &EnumError{Enum: "major_minor_status", Value: uint32(val)}
	}
	return m, nil
}

func (MajorMinorStatus) Len() int { return 2 }

func (m MajorMinorStatus) IsReserved() bool { return m.raw == mmReserved }

// IsAbnormalFailure reports whether m carries a nested FailureCode.
func (m MajorMinorStatus) IsAbnormalFailure() bool { return m.isAbnormalFailure }

// IsPowerUp reports whether m is one of the power-up major/minor statuses.
func (m MajorMinorStatus) IsPowerUp() bool {
	switch m.raw {
	case mmPowerUp, mmPowerUpAcceptor, mmPowerUpStacker, mmPowerUpAcceptorAccepting, mmPowerUpStackerAccepting:
		return true
	default:
		return false
	}
}

// IsIdle reports whether m is the acceptor's normal-idle status.
func (m MajorMinorStatus) IsIdle() bool { return m.raw == mmNormalIdle }

// IsEscrow reports whether m is the normal-escrow status.
func (m MajorMinorStatus) IsEscrow() bool { return m.raw == mmNormalEscrow }

// IsVendValid reports whether m is the normal-vend-valid status.
func (m MajorMinorStatus) IsVendValid() bool { return m.raw == mmNormalVendValid }

// FailureCode returns the nested failure code; only meaningful when
// IsAbnormalFailure() is true.
func (m MajorMinorStatus) FailureCode() FailureCode { return m.failure }

// U16 returns the packed wire value: for AbnormalFailure, 0x0200 | failure code.
func (m MajorMinorStatus) U16() uint16 {
	if m.isAbnormalFailure {
		return majorAbnormal | uint16(m.failure)
	}
	return m.raw
}

func (m MajorMinorStatus) String() string {
	if m.isAbnormalFailure {
		return "abnormal failure: " + m.failure.String()
	}
	if name, ok := namedMajorMinorStatus[m.raw]; ok {
		return name
	}
	return "reserved"
}

// deviceStatusAllowed lists which MajorMinorStatus values are valid under
// each FunctionMode, per the device status validity table. Recycler and
// Escrow never validate: every DeviceStatus observed on the wire carries
// either Common or Acceptor as its function mode.
var deviceStatusAllowedCommon = map[uint16]bool{
	mmPowerUp: true, mmPowerUpAcceptor: true, mmPowerUpStacker: true,
	mmNormal: true, mmNormalActive: true, mmNormalRejected: true, mmNormalCollected: true,
	mmAbnormal: true, mmAbnormalOperationError: true,
	mmWarningNoteStay: true,
}

var deviceStatusAllowedAcceptor = map[uint16]bool{
	mmPowerUpAcceptorAccepting: true, mmPowerUpStackerAccepting: true,
	mmNormal: true, mmNormalIdle: true, mmNormalActive: true, mmNormalEscrow: true,
	mmNormalVendValid: true, mmNormalRejected: true, mmNormalReturned: true,
	mmNormalCollected: true, mmNormalInsert: true, mmNormalConditionalVend: true,
	mmNormalPause: true, mmNormalResume: true,
	mmAbnormal: true, mmAbnormalOperationError: true,
	mmWarningNoteStay: true, mmWarningFunctionAbeyance: true,
}

// DeviceStatus is function_mode (high nibble) packed with a MajorMinorStatus
// (low 12 bits), as reported by StatusResponse and status-bearing events.
type DeviceStatus struct {
	FunctionMode FunctionMode
	Status       MajorMinorStatus
}

func (DeviceStatus) Len() int { return 2 }

// IsValid reports whether the (FunctionMode, MajorMinorStatus) pairing is
// one of the device status validity table's allowed combinations.
func (d DeviceStatus) IsValid() bool {
	if d.Status.IsAbnormalFailure() {
		return d.FunctionMode == FunctionModeCommon || d.FunctionMode == FunctionModeAcceptor
	}
	switch d.FunctionMode {
	case FunctionModeCommon:
		return deviceStatusAllowedCommon[d.Status.raw]
	case FunctionModeAcceptor:
		return deviceStatusAllowedAcceptor[d.Status.raw]
	default:
		return false
	}
}

// DeviceStatusFromU16 decodes the packed little-endian wire value, without
// validating against the table; use CheckedDeviceStatusFromU16 for that.
func DeviceStatusFromU16(val uint16) DeviceStatus {
	return DeviceStatus{
		FunctionMode: FuncIdFromU16(val),
		Status:       MajorMinorStatusFromU16(val),
	}
}

// CheckedDeviceStatusFromU16 decodes and validates in one step.
func CheckedDeviceStatusFromU16(val uint16) (DeviceStatus, error) {
	d := DeviceStatusFromU16(val)
	if d.FunctionMode.IsReserved() || d.Status.IsReserved() || !d.IsValid() {
		return d, &EnumError{Enum: "device_status", Value: uint32(val)}
	}
	return d, nil
}

// U16 packs d back into its little-endian wire value.
func (d DeviceStatus) U16() uint16 {
	return d.FunctionMode.AsStatusBits() | d.Status.U16()
}

func (d DeviceStatus) Bytes() []byte {
	v := d.U16()
	return []byte{uint8(v), uint8(v >> 8)}
}

func DeviceStatusFromBytes(buf []byte) (DeviceStatus, error) {
	if len(buf) < 2 {
		return DeviceStatus{}, &LengthError{Field: "device_status", Observed: len(buf), Required: 2}
	}
	return CheckedDeviceStatusFromU16(uint16(buf[0]) | uint16(buf[1])<<8)
}

func (d DeviceStatus) String() string {
	return d.FunctionMode.String() + "/" + d.Status.String()
}
