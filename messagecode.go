package jcm

// RequestCode is the closed set of opcodes carried in the 16-bit MessageCode
// field of a request-kind MessageData. The high nibble of the value always
// matches the FuncId the operation belongs to.
type RequestCode uint16

const (
	RequestUid                 RequestCode = 0x0001
	RequestProgramSignature    RequestCode = 0x0002
	RequestVersion             RequestCode = 0x0003
	RequestSerialNumber        RequestCode = 0x0004
	RequestModelName           RequestCode = 0x0005
	RequestStatus              RequestCode = 0x0010
	RequestReset               RequestCode = 0x0011
	RequestInhibit             RequestCode = 0x0012
	RequestCollect             RequestCode = 0x0017
	RequestKey                 RequestCode = 0x0019
	RequestEventResendInterval RequestCode = 0x002C
	RequestIdle                RequestCode = 0x1013
	RequestStack               RequestCode = 0x1014
	RequestReject              RequestCode = 0x1015
	RequestHold                RequestCode = 0x1016
	RequestAcceptorCollect     RequestCode = 0x1017
	RequestDenominationDisable RequestCode = 0x1021
	RequestDirectionDisable    RequestCode = 0x1022
	RequestCurrencyAssign      RequestCode = 0x1023
	RequestCashBoxSize         RequestCode = 0x1024
	RequestNearFull            RequestCode = 0x1025
	RequestBarCode             RequestCode = 0x1026
	RequestInsert              RequestCode = 0x1028
	RequestConditionalVend     RequestCode = 0x1029
	RequestPause               RequestCode = 0x102A
	RequestNoteDataInfo        RequestCode = 0x102F
	RequestRecyclerCollect     RequestCode = 0x2017
	RequestReserved            RequestCode = 0xFFFF
)

var requestCodeNames = map[RequestCode]string{
	RequestUid:                 "uid",
	RequestProgramSignature:    "program signature",
	RequestVersion:             "version",
	RequestSerialNumber:        "serial number",
	RequestModelName:           "model name",
	RequestStatus:              "status",
	RequestReset:               "reset",
	RequestInhibit:             "inhibit",
	RequestCollect:             "collect",
	RequestKey:                 "key",
	RequestEventResendInterval: "event resend interval",
	RequestIdle:                "idle",
	RequestStack:               "stack",
	RequestReject:              "reject",
	RequestHold:                "hold",
	RequestAcceptorCollect:     "acceptor collect",
	RequestDenominationDisable: "denomination disable",
	RequestDirectionDisable:    "direction disable",
	RequestCurrencyAssign:      "currency assign",
	RequestCashBoxSize:         "cash box size",
	RequestNearFull:            "near full",
	RequestBarCode:             "bar code",
	RequestInsert:              "insert",
	RequestConditionalVend:     "conditional vend",
	RequestPause:               "pause",
	RequestNoteDataInfo:        "note data info",
	RequestRecyclerCollect:     "recycler collect",
}

// RequestCodeFromU16 is the total mapping for RequestCode.
func RequestCodeFromU16(val uint16) RequestCode {
	if _, ok := requestCodeNames[RequestCode(val)]; ok {
		return RequestCode(val)
	}
	return RequestReserved
}

// CheckedRequestCodeFromU16 rejects reserved 16-bit values.
func CheckedRequestCodeFromU16(val uint16) (RequestCode, error) {
	r := RequestCodeFromU16(val)
	if r == RequestReserved {
		return r, &EnumError{Enum: "request_code", Value: uint32(val)}
	}
	return r, nil
}

func (RequestCode) Len() int { return 2 }

// FuncId extracts the function identifier from the code's high nibble.
func (r RequestCode) FuncId() FuncId { return FuncIdFromU16(uint16(r)) }

func (r RequestCode) String() string {
	if name, ok := requestCodeNames[r]; ok {
		return name
	}
	return "reserved"
}

// EventCode is the closed set of opcodes carried in the 16-bit MessageCode
// field of an event-kind MessageData.
type EventCode uint16

const (
	EventPowerUp                  EventCode = 0x0000
	EventPowerUpAcceptor          EventCode = 0x0001
	EventPowerUpStacker           EventCode = 0x0002
	EventInhibit                  EventCode = 0x0100
	EventProgramSignature         EventCode = 0x0102
	EventRejected                 EventCode = 0x0104
	EventCollected                EventCode = 0x0108
	EventClear                    EventCode = 0x0200
	EventOperationError           EventCode = 0x0201
	EventFailure                  EventCode = 0x0202
	EventNoteStay                 EventCode = 0x0301
	EventPowerUpAcceptorAccepting EventCode = 0x1011
	EventPowerUpStackerAccepting  EventCode = 0x1012
	EventIdle                     EventCode = 0x1101
	EventEscrow                   EventCode = 0x1102
	EventVendValid                EventCode = 0x1103
	EventAcceptorRejected         EventCode = 0x1104
	EventReturned                 EventCode = 0x1105
	EventAcceptorCollected        EventCode = 0x1108
	EventInsert                   EventCode = 0x110A
	EventConditionalVend          EventCode = 0x110B
	EventPause                    EventCode = 0x110C
	EventResume                   EventCode = 0x110D
	EventAcceptorClear            EventCode = 0x1200
	EventAcceptorOperationError   EventCode = 0x1201
	EventAcceptorFailure          EventCode = 0x1202
	EventAcceptorNoteStay         EventCode = 0x1301
	EventFunctionAbeyance         EventCode = 0x1302
	EventReserved                 EventCode = 0xFFFF
)

var eventCodeNames = map[EventCode]string{
	EventPowerUp:                  "power up",
	EventPowerUpAcceptor:          "power up (returnable note detected)",
	EventPowerUpStacker:           "power up (non-returnable note detected)",
	EventInhibit:                  "inhibit",
	EventProgramSignature:         "program signature",
	EventRejected:                 "rejected",
	EventCollected:                "collected",
	EventClear:                    "clear",
	EventOperationError:           "operation error",
	EventFailure:                  "failure",
	EventNoteStay:                 "note stay",
	EventPowerUpAcceptorAccepting: "power up accepting (returnable)",
	EventPowerUpStackerAccepting:  "power up accepting (non-returnable)",
	EventIdle:                     "idle",
	EventEscrow:                   "escrow",
	EventVendValid:                "vend valid",
	EventAcceptorRejected:         "acceptor rejected",
	EventReturned:                 "returned",
	EventAcceptorCollected:        "acceptor collected",
	EventInsert:                   "insert",
	EventConditionalVend:          "conditional vend",
	EventPause:                    "pause",
	EventResume:                   "resume",
	EventAcceptorClear:            "acceptor clear",
	EventAcceptorOperationError:   "acceptor operation error",
	EventAcceptorFailure:          "acceptor failure",
	EventAcceptorNoteStay:         "acceptor note stay",
	EventFunctionAbeyance:         "function abeyance",
}

// EventCodeFromU16 is the total mapping for EventCode.
func EventCodeFromU16(val uint16) EventCode {
	if _, ok := eventCodeNames[EventCode(val)]; ok {
		return EventCode(val)
	}
	return EventReserved
}

// CheckedEventCodeFromU16 rejects reserved 16-bit values.
func CheckedEventCodeFromU16(val uint16) (EventCode, error) {
	e := EventCodeFromU16(val)
	if e == EventReserved {
		return e, &EnumError{Enum: "event_code", Value: uint32(val)}
	}
	return e, nil
}

func (EventCode) Len() int { return 2 }

func (e EventCode) FuncId() FuncId { return FuncIdFromU16(uint16(e)) }

func (e EventCode) String() string {
	if name, ok := eventCodeNames[e]; ok {
		return name
	}
	return "reserved"
}

// MessageCode is the decoded interpretation of a MessageData's 16-bit code
// field: a RequestCode when the frame is a request, an EventCode when it is
// an event. Exactly one of the two fields is meaningful, selected by the
// enclosing MessageType.
type MessageCode struct {
	Request RequestCode
	Event   EventCode
	isEvent bool
}

// NewRequestMessageCode wraps a RequestCode.
func NewRequestMessageCode(r RequestCode) MessageCode { return MessageCode{Request: r} }

// NewEventMessageCode wraps an EventCode.
func NewEventMessageCode(e EventCode) MessageCode { return MessageCode{Event: e, isEvent: true} }

func (c MessageCode) IsEvent() bool { return c.isEvent }

// U16 returns the wire value of whichever code is active.
func (c MessageCode) U16() uint16 {
	if c.isEvent {
		return uint16(c.Event)
	}
	return uint16(c.Request)
}

func (c MessageCode) FuncId() FuncId {
	if c.isEvent {
		return c.Event.FuncId()
	}
	return c.Request.FuncId()
}

func (c MessageCode) String() string {
	if c.isEvent {
		return c.Event.String()
	}
	return c.Request.String()
}

// MessageCodeFromU16 decodes val as a RequestCode or EventCode according to
// messageType, rejecting a code that is reserved in its selected partition.
func MessageCodeFromU16(messageType MessageType, val uint16) (MessageCode, error) {
	switch {
	case messageType.IsRequest():
		r, err := CheckedRequestCodeFromU16(val)
		if err != nil {
			return MessageCode{}, err
		}
		return NewRequestMessageCode(r), nil
	case messageType.IsEvent():
		e, err := CheckedEventCodeFromU16(val)
		if err != nil {
			return MessageCode{}, err
		}
		return NewEventMessageCode(e), nil
	default:
		return MessageCode{}, &EnumError{Enum: "message_type", Value: uint32(messageType)}
	}
}
