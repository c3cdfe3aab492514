package jcm

// buildPowerUp is shared by all five PowerUp variants: they carry no
// payload and differ only in their EventCode.
func buildPowerUp(confId ConfId, uid uint8, seq uint8, code EventCode) MessageData {
	return buildEventData(confId, uid, seq, code, nil)
}

// PowerUpEvent reports a cold start with an empty transport path.
type PowerUpEvent struct{}

func (PowerUpEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildPowerUp(confId, uid, seq, EventPowerUp)
}

func PowerUpEventFromMessageData(d MessageData) (PowerUpEvent, error) {
	return PowerUpEvent{}, expectEvent(d, EventPowerUp)
}

// PowerUpAcceptorEvent reports a cold start with a returnable note left in
// the acceptor path.
type PowerUpAcceptorEvent struct{}

func (PowerUpAcceptorEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildPowerUp(confId, uid, seq, EventPowerUpAcceptor)
}

func PowerUpAcceptorEventFromMessageData(d MessageData) (PowerUpAcceptorEvent, error) {
	return PowerUpAcceptorEvent{}, expectEvent(d, EventPowerUpAcceptor)
}

// PowerUpStackerEvent reports a cold start with a non-returnable note left
// in the stacker path.
type PowerUpStackerEvent struct{}

func (PowerUpStackerEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildPowerUp(confId, uid, seq, EventPowerUpStacker)
}

func PowerUpStackerEventFromMessageData(d MessageData) (PowerUpStackerEvent, error) {
	return PowerUpStackerEvent{}, expectEvent(d, EventPowerUpStacker)
}

// PowerUpAcceptorAcceptingEvent reports that the device resumed normal
// operation after a PowerUpAcceptorEvent and is now accepting notes again.
type PowerUpAcceptorAcceptingEvent struct{}

func (PowerUpAcceptorAcceptingEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildPowerUp(confId, uid, seq, EventPowerUpAcceptorAccepting)
}

func PowerUpAcceptorAcceptingEventFromMessageData(d MessageData) (PowerUpAcceptorAcceptingEvent, error) {
	return PowerUpAcceptorAcceptingEvent{}, expectEvent(d, EventPowerUpAcceptorAccepting)
}

// PowerUpStackerAcceptingEvent reports the stacker-path counterpart of
// PowerUpAcceptorAcceptingEvent.
type PowerUpStackerAcceptingEvent struct{}

func (PowerUpStackerAcceptingEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildPowerUp(confId, uid, seq, EventPowerUpStackerAccepting)
}

func PowerUpStackerAcceptingEventFromMessageData(d MessageData) (PowerUpStackerAcceptingEvent, error) {
	return PowerUpStackerAcceptingEvent{}, expectEvent(d, EventPowerUpStackerAccepting)
}

// InhibitEvent reports that the device's inhibited state changed, mirroring
// an InhibitRequest the host or another agent issued.
type InhibitEvent struct {
	Inhibited bool
}

func (e InhibitEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	payload := byte(0)
	if e.Inhibited {
		payload = 1
	}
	return buildEventData(confId, uid, seq, EventInhibit, []byte{payload})
}

func InhibitEventFromMessageData(d MessageData) (InhibitEvent, error) {
	if err := expectEvent(d, EventInhibit); err != nil {
		return InhibitEvent{}, err
	}
	if len(d.Additional) < 1 {
		return InhibitEvent{}, &LengthError{Field: "inhibit_event", Observed: len(d.Additional), Required: 1}
	}
	return InhibitEvent{Inhibited: d.Additional[0] != 0}, nil
}

// ProgramSignatureEvent reports the result of a firmware signature check
// that was triggered outside of a direct request/response exchange.
type ProgramSignatureEvent struct {
	Matched bool
}

func (e ProgramSignatureEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	payload := byte(0)
	if e.Matched {
		payload = 1
	}
	return buildEventData(confId, uid, seq, EventProgramSignature, []byte{payload})
}

func ProgramSignatureEventFromMessageData(d MessageData) (ProgramSignatureEvent, error) {
	if err := expectEvent(d, EventProgramSignature); err != nil {
		return ProgramSignatureEvent{}, err
	}
	if len(d.Additional) < 1 {
		return ProgramSignatureEvent{}, &LengthError{Field: "program_signature_event", Observed: len(d.Additional), Required: 1}
	}
	return ProgramSignatureEvent{Matched: d.Additional[0] != 0}, nil
}

// RejectedEvent reports that a note was refused, carrying the reason.
type RejectedEvent struct {
	Reason RejectCode
}

func (e RejectedEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventRejected, []byte{uint8(e.Reason)})
}

func RejectedEventFromMessageData(d MessageData) (RejectedEvent, error) {
	if err := expectEvent(d, EventRejected); err != nil {
		return RejectedEvent{}, err
	}
	if len(d.Additional) < 1 {
		return RejectedEvent{}, &LengthError{Field: "rejected_event", Observed: len(d.Additional), Required: 1}
	}
	reason, err := CheckedRejectCodeFromU8(d.Additional[0])
	if err != nil {
		return RejectedEvent{}, err
	}
	return RejectedEvent{Reason: reason}, nil
}

// CollectedEvent reports that a note was stacked into the cash box.
type CollectedEvent struct{}

func (CollectedEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventCollected, nil)
}

func CollectedEventFromMessageData(d MessageData) (CollectedEvent, error) {
	return CollectedEvent{}, expectEvent(d, EventCollected)
}

// ClearEvent reports that a prior abnormal condition cleared.
type ClearEvent struct{}

func (ClearEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventClear, nil)
}

func ClearEventFromMessageData(d MessageData) (ClearEvent, error) {
	return ClearEvent{}, expectEvent(d, EventClear)
}

// OperationErrorEvent reports an abnormal operation-sequence error.
type OperationErrorEvent struct{}

func (OperationErrorEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventOperationError, nil)
}

func OperationErrorEventFromMessageData(d MessageData) (OperationErrorEvent, error) {
	return OperationErrorEvent{}, expectEvent(d, EventOperationError)
}

// FailureEvent reports a hardware failure, carrying the specific code.
type FailureEvent struct {
	Code FailureCode
}

func (e FailureEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventFailure, []byte{uint8(e.Code)})
}

func FailureEventFromMessageData(d MessageData) (FailureEvent, error) {
	if err := expectEvent(d, EventFailure); err != nil {
		return FailureEvent{}, err
	}
	if len(d.Additional) < 1 {
		return FailureEvent{}, &LengthError{Field: "failure_event", Observed: len(d.Additional), Required: 1}
	}
	code, err := CheckedFailureCodeFromU8(d.Additional[0])
	if err != nil {
		return FailureEvent{}, err
	}
	return FailureEvent{Code: code}, nil
}

// NoteStayEvent warns that a note is stuck in the transport path.
type NoteStayEvent struct{}

func (NoteStayEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventNoteStay, nil)
}

func NoteStayEventFromMessageData(d MessageData) (NoteStayEvent, error) {
	return NoteStayEvent{}, expectEvent(d, EventNoteStay)
}

// IdleEvent reports the acceptor returning to stand-by.
type IdleEvent struct{}

func (IdleEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventIdle, nil)
}

func IdleEventFromMessageData(d MessageData) (IdleEvent, error) {
	return IdleEvent{}, expectEvent(d, EventIdle)
}

// EscrowEvent reports a note or ticket held in escrow awaiting a host
// decision (Stack/Reject/Hold). Exactly one of Currency or Ticket is
// populated; the device distinguishes the two by leading the payload with
// two zero bytes for a Ticket.
type EscrowEvent struct {
	Currency *Currency
	Ticket   *Ticket
}

func (e EscrowEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	var payload []byte
	if e.Ticket != nil {
		payload = e.Ticket.Bytes()
	} else if e.Currency != nil {
		payload = e.Currency.Bytes()
	}
	return buildEventData(confId, uid, seq, EventEscrow, payload)
}

func EscrowEventFromMessageData(d MessageData) (EscrowEvent, error) {
	if err := expectEvent(d, EventEscrow); err != nil {
		return EscrowEvent{}, err
	}
	if len(d.Additional) >= 2 && d.Additional[0] == 0 && d.Additional[1] == 0 {
		t, err := TicketFromBytes(d.Additional)
		if err != nil {
			return EscrowEvent{}, err
		}
		return EscrowEvent{Ticket: &t}, nil
	}
	c, err := CurrencyFromBytes(d.Additional)
	if err != nil {
		return EscrowEvent{}, err
	}
	return EscrowEvent{Currency: &c}, nil
}

// VendValidEvent reports that the escrowed note was accepted for vend.
type VendValidEvent struct{}

func (VendValidEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventVendValid, nil)
}

func VendValidEventFromMessageData(d MessageData) (VendValidEvent, error) {
	return VendValidEvent{}, expectEvent(d, EventVendValid)
}

// AcceptorRejectedEvent is the acceptor-path counterpart of RejectedEvent.
type AcceptorRejectedEvent struct {
	Reason RejectCode
}

func (e AcceptorRejectedEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventAcceptorRejected, []byte{uint8(e.Reason)})
}

func AcceptorRejectedEventFromMessageData(d MessageData) (AcceptorRejectedEvent, error) {
	if err := expectEvent(d, EventAcceptorRejected); err != nil {
		return AcceptorRejectedEvent{}, err
	}
	if len(d.Additional) < 1 {
		return AcceptorRejectedEvent{}, &LengthError{Field: "acceptor_rejected_event", Observed: len(d.Additional), Required: 1}
	}
	reason, err := CheckedRejectCodeFromU8(d.Additional[0])
	if err != nil {
		return AcceptorRejectedEvent{}, err
	}
	return AcceptorRejectedEvent{Reason: reason}, nil
}

// ReturnedEvent reports that an escrowed note was returned to the bearer.
type ReturnedEvent struct{}

func (ReturnedEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventReturned, nil)
}

func ReturnedEventFromMessageData(d MessageData) (ReturnedEvent, error) {
	return ReturnedEvent{}, expectEvent(d, EventReturned)
}

// AcceptorCollectedEvent is the acceptor-path counterpart of CollectedEvent.
type AcceptorCollectedEvent struct{}

func (AcceptorCollectedEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventAcceptorCollected, nil)
}

func AcceptorCollectedEventFromMessageData(d MessageData) (AcceptorCollectedEvent, error) {
	return AcceptorCollectedEvent{}, expectEvent(d, EventAcceptorCollected)
}

// InsertEvent reports a note being inserted into the acceptor path.
type InsertEvent struct{}

func (InsertEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventInsert, nil)
}

func InsertEventFromMessageData(d MessageData) (InsertEvent, error) {
	return InsertEvent{}, expectEvent(d, EventInsert)
}

// ConditionalVendEvent reports that the device is awaiting a host decision
// on whether to vend against a note that hasn't finished validating.
type ConditionalVendEvent struct{}

func (ConditionalVendEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventConditionalVend, nil)
}

func ConditionalVendEventFromMessageData(d MessageData) (ConditionalVendEvent, error) {
	return ConditionalVendEvent{}, expectEvent(d, EventConditionalVend)
}

// PauseEvent reports the device pausing an in-progress operation.
type PauseEvent struct{}

func (PauseEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventPause, nil)
}

func PauseEventFromMessageData(d MessageData) (PauseEvent, error) {
	return PauseEvent{}, expectEvent(d, EventPause)
}

// ResumeEvent reports the device resuming after a PauseEvent.
type ResumeEvent struct{}

func (ResumeEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventResume, nil)
}

func ResumeEventFromMessageData(d MessageData) (ResumeEvent, error) {
	return ResumeEvent{}, expectEvent(d, EventResume)
}

// AcceptorClearEvent is the acceptor-path counterpart of ClearEvent.
type AcceptorClearEvent struct{}

func (AcceptorClearEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventAcceptorClear, nil)
}

func AcceptorClearEventFromMessageData(d MessageData) (AcceptorClearEvent, error) {
	return AcceptorClearEvent{}, expectEvent(d, EventAcceptorClear)
}

// AcceptorOperationErrorEvent is the acceptor-path counterpart of
// OperationErrorEvent.
type AcceptorOperationErrorEvent struct{}

func (AcceptorOperationErrorEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventAcceptorOperationError, nil)
}

func AcceptorOperationErrorEventFromMessageData(d MessageData) (AcceptorOperationErrorEvent, error) {
	return AcceptorOperationErrorEvent{}, expectEvent(d, EventAcceptorOperationError)
}

// AcceptorFailureEvent is the acceptor-path counterpart of FailureEvent.
type AcceptorFailureEvent struct {
	Code FailureCode
}

func (e AcceptorFailureEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventAcceptorFailure, []byte{uint8(e.Code)})
}

func AcceptorFailureEventFromMessageData(d MessageData) (AcceptorFailureEvent, error) {
	if err := expectEvent(d, EventAcceptorFailure); err != nil {
		return AcceptorFailureEvent{}, err
	}
	if len(d.Additional) < 1 {
		return AcceptorFailureEvent{}, &LengthError{Field: "acceptor_failure_event", Observed: len(d.Additional), Required: 1}
	}
	code, err := CheckedFailureCodeFromU8(d.Additional[0])
	if err != nil {
		return AcceptorFailureEvent{}, err
	}
	return AcceptorFailureEvent{Code: code}, nil
}

// AcceptorNoteStayEvent is the acceptor-path counterpart of NoteStayEvent.
type AcceptorNoteStayEvent struct{}

func (AcceptorNoteStayEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventAcceptorNoteStay, nil)
}

func AcceptorNoteStayEventFromMessageData(d MessageData) (AcceptorNoteStayEvent, error) {
	return AcceptorNoteStayEvent{}, expectEvent(d, EventAcceptorNoteStay)
}

// FunctionAbeyanceEvent warns that a function has been suspended pending
// host intervention (e.g. a full cash box).
type FunctionAbeyanceEvent struct{}

func (FunctionAbeyanceEvent) ToMessageData(confId ConfId, uid uint8, seq uint8) MessageData {
	return buildEventData(confId, uid, seq, EventFunctionAbeyance, nil)
}

func FunctionAbeyanceEventFromMessageData(d MessageData) (FunctionAbeyanceEvent, error) {
	return FunctionAbeyanceEvent{}, expectEvent(d, EventFunctionAbeyance)
}
