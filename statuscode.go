package jcm

// StatusCode is carried by StatusEvent/acknowledgement records, reporting
// which stage of banknote handling the device just completed.
type StatusCode uint8

const (
	StatusCompletedResetReq           StatusCode = 1
	StatusReceivedResetReq            StatusCode = 2
	StatusReceivedIdleReq             StatusCode = 3
	StatusReceivedInhibitReq          StatusCode = 4
	StatusInsertedBanknote            StatusCode = 5
	StatusCompletedValidation         StatusCode = 6
	StatusReceivedStackReturnHold     StatusCode = 7
	StatusCompletedPaperTransport     StatusCode = 8
	StatusReceivedVendValidEventAck   StatusCode = 9
	StatusBanknoteStacked             StatusCode = 10
	StatusCompletedScanCollectStack   StatusCode = 11
	StatusReturnedCollectEventAck     StatusCode = 12
	StatusTransportRejectPaper        StatusCode = 13
	StatusTransportReturnPaper        StatusCode = 14
	StatusRemovedRejectedPaper        StatusCode = 15
	StatusRemovedReturnedPaper        StatusCode = 16
	StatusCompletedStackReq           StatusCode = 17
	StatusRemovedPaper                StatusCode = 18
	StatusRejected10s                 StatusCode = 19
	StatusReturned10s                 StatusCode = 20
	StatusError                       StatusCode = 21
	StatusErrorConditional            StatusCode = 22
	StatusReceivedResetReqAlt         StatusCode = 23
	StatusReserved                    StatusCode = 0xFF
)

var statusCodeNames = map[StatusCode]string{
	StatusCompletedResetReq:         "completed handling reset request successfully",
	StatusReceivedResetReq:          "received reset request",
	StatusReceivedIdleReq:           "received idle request",
	StatusReceivedInhibitReq:        "received inhibit request",
	StatusInsertedBanknote:          "inserted a banknote",
	StatusCompletedValidation:       "completed validation",
	StatusReceivedStackReturnHold:   "received stack or return request, or neither during a hold",
	StatusCompletedPaperTransport:   "completed paper transport",
	StatusReceivedVendValidEventAck: "received vend valid event ack",
	StatusBanknoteStacked:           "banknote stacked",
	StatusCompletedScanCollectStack: "completed scan collect paper stack",
	StatusReturnedCollectEventAck:   "returned collect event ack",
	StatusTransportRejectPaper:      "transport reject paper",
	StatusTransportReturnPaper:      "transport return paper",
	StatusRemovedRejectedPaper:      "removed rejected paper",
	StatusRemovedReturnedPaper:      "removed returned paper",
	StatusCompletedStackReq:         "completed stack request",
	StatusRemovedPaper:              "removed paper",
	StatusRejected10s:               "stayed in rejected status for 10s",
	StatusReturned10s:               "stayed in returned status for 10s",
	StatusError:                     "error occurred",
	StatusErrorConditional:          "error occurred, potentially in conditional vend mode",
	StatusReceivedResetReqAlt:       "received reset request (depending on model)",
}

// StatusCodeFromU8 is the total mapping for StatusCode.
func StatusCodeFromU8(val uint8) StatusCode {
	if _, ok := statusCodeNames[StatusCode(val)]; ok {
		return StatusCode(val)
	}
	return StatusReserved
}

// CheckedStatusCodeFromU8 rejects reserved byte values.
func CheckedStatusCodeFromU8(val uint8) (StatusCode, error) {
	s := StatusCodeFromU8(val)
	if s == StatusReserved {
		return s, &EnumError{Enum: "status_code", Value: uint32(val)}
	}
	return s, nil
}

func (StatusCode) Len() int { return 1 }

func (s StatusCode) String() string {
	if name, ok := statusCodeNames[s]; ok {
		return name
	}
	return "reserved"
}
