package jcm

// FailureCode is carried in the low byte of a DeviceStatus whose major
// status is Abnormal, identifying the specific hardware failure.
type FailureCode uint8

const (
	FailureTransportMotor          FailureCode = 0x11
	FailureStackMotor              FailureCode = 0x12
	FailureAntiStringingMechanism  FailureCode = 0x13
	FailureSensor                  FailureCode = 0x14
	FailureAcceptorHardware        FailureCode = 0x1F
	FailureRecyclerMotor           FailureCode = 0x22
	FailureRecyclerSensor          FailureCode = 0x24
	FailureRecyclerHardware        FailureCode = 0x2F
	FailureRom                     FailureCode = 0xB1
	FailureRam                     FailureCode = 0xB2
	FailureCommunication           FailureCode = 0xB5
	FailureAbnormal                FailureCode = 0xB6
	FailureReserved                FailureCode = 0xFF
)

// FailureCodeFromU8 is the total mapping for FailureCode.
func FailureCodeFromU8(val uint8) FailureCode {
	switch FailureCode(val) {
	case FailureTransportMotor, FailureStackMotor, FailureAntiStringingMechanism, FailureSensor,
		FailureAcceptorHardware, FailureRecyclerMotor, FailureRecyclerSensor, FailureRecyclerHardware,
		FailureRom, FailureRam, FailureCommunication, FailureAbnormal:
		return FailureCode(val)
	default:
		return FailureReserved
	}
}

// CheckedFailureCodeFromU8 rejects reserved byte values.
func CheckedFailureCodeFromU8(val uint8) (FailureCode, error) {
	f := FailureCodeFromU8(val)
	if f == FailureReserved {
		return f, &EnumError{Enum: "failure_code", Value: uint32(val)}
	}
	return f, nil
}

func (FailureCode) Len() int { return 1 }

func (f FailureCode) String() string {
	switch f {
	case FailureTransportMotor:
		return "transport motor related error"
	case FailureStackMotor:
		return "stack motor related error"
	case FailureAntiStringingMechanism:
		return "anti-stringing mechanism error"
	case FailureSensor:
		return "sensor adjustment related error"
	case FailureAcceptorHardware:
		return "acceptor hardware related error"
	case FailureRecyclerMotor:
		return "recycler motor related error"
	case FailureRecyclerSensor:
		return "recycler sensor adjustment related error"
	case FailureRecyclerHardware:
		return "recycler hardware related error"
	case FailureRom:
		return "ROM error"
	case FailureRam:
		return "RAM error"
	case FailureCommunication:
		return "communication failure (no response to message)"
	case FailureAbnormal:
		return "abnormal operation sequence"
	default:
		return "reserved"
	}
}
