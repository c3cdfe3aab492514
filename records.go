package jcm

// RequestMode selects whether a typed request record reads device state
// (Get, carried as a Status-type message) or writes it (Set, carried as a
// SetFeature-type message).
type RequestMode uint8

const (
	RequestModeGet RequestMode = 0
	RequestModeSet RequestMode = 1
)

func (m RequestMode) messageType(setType, getType MessageType) MessageType {
	if m == RequestModeSet {
		return setType
	}
	return getType
}

// buildRequestData assembles a request MessageData from its fixed
// addressing fields, a MessageType/RequestCode pair, and a payload.
func buildRequestData(confId ConfId, uid uint8, msgType MessageType, code RequestCode, payload []byte) MessageData {
	return MessageData{
		ConfId:      confId,
		Uid:         uid,
		MessageType: msgType,
		Code:        NewRequestMessageCode(code),
		Additional:  payload,
	}
}

// expectRequest validates that d carries exactly the given MessageType and
// RequestCode, returning a MismatchError carrying both observed and expected
// otherwise.
func expectRequest(d MessageData, wantType MessageType, wantCode RequestCode) error {
	if d.MessageType != wantType || d.Code.IsEvent() || d.Code.Request != wantCode {
		return &MismatchError{
			ObservedType: d.MessageType, ExpectedType: wantType,
			ObservedCode: d.Code, ExpectedCode: NewRequestMessageCode(wantCode),
		}
	}
	return nil
}

// expectEvent validates that d carries exactly the given EventCode (the
// MessageType only needs to be an event; the rolling sequence number is not
// part of the identity check).
func expectEvent(d MessageData, wantCode EventCode) error {
	if !d.MessageType.IsEvent() || !d.Code.IsEvent() || d.Code.Event != wantCode {
		return &MismatchError{
			ObservedType: d.MessageType, ExpectedType: EventType(d.MessageType.EventSequence()),
			ObservedCode: d.Code, ExpectedCode: NewEventMessageCode(wantCode),
		}
	}
	return nil
}

// buildResponseData assembles a response-carrying MessageData: the same
// MessageType/RequestCode pair as the originating request, with the
// Response encoded as the payload.
func buildResponseData(confId ConfId, uid uint8, msgType MessageType, code RequestCode, resp Response) MessageData {
	return buildRequestData(confId, uid, msgType, code, resp.Bytes())
}

// buildEventData assembles an event MessageData with the given rolling
// sequence number.
func buildEventData(confId ConfId, uid uint8, seq uint8, code EventCode, payload []byte) MessageData {
	return MessageData{
		ConfId:      confId,
		Uid:         uid,
		MessageType: EventType(seq),
		Code:        NewEventMessageCode(code),
		Additional:  payload,
	}
}
