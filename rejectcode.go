package jcm

// RejectCode identifies why the device rejected an inserted note; it is
// carried as the payload of a RejectedEvent.
type RejectCode uint8

const (
	RejectAbnormalInsertion   RejectCode = 0x71
	RejectAbnormalSensor      RejectCode = 0x72
	RejectReturnedRemaining   RejectCode = 0x73
	RejectAbnormalMagnification RejectCode = 0x74
	RejectTransportation      RejectCode = 0x75
	RejectInhibited           RejectCode = 0x76
	RejectPhotoPattern1       RejectCode = 0x77
	RejectPhotoLevel          RejectCode = 0x78
	RejectInhibitBeforeEscrow RejectCode = 0x79
	RejectReturn              RejectCode = 0x7A
	RejectTransportStacker    RejectCode = 0x7B
	RejectTransportFraud      RejectCode = 0x7C
	RejectNoteLength          RejectCode = 0x7D
	RejectPhotoPattern2       RejectCode = 0x7E
	RejectTrueBillFeature     RejectCode = 0x7F
	RejectValidateBarcode     RejectCode = 0x82
	RejectBarcodeDigits       RejectCode = 0x83
	RejectBarcodeStartBit     RejectCode = 0x84
	RejectBarcodeStopBit      RejectCode = 0x85
	RejectDoubleTicket        RejectCode = 0x88
	RejectTicketWrongSideUp   RejectCode = 0x8B
	RejectTicketLength        RejectCode = 0x8D
	RejectReserved            RejectCode = 0xFF
)

var rejectCodeNames = map[RejectCode]string{
	RejectAbnormalInsertion:      "abnormal insertion",
	RejectAbnormalSensor:         "abnormal sensor",
	RejectReturnedRemaining:      "returned remaining note",
	RejectAbnormalMagnification:  "abnormal magnification",
	RejectTransportation:         "transportation error",
	RejectInhibited:              "inhibited denomination",
	RejectPhotoPattern1:          "photo pattern 1 mismatch",
	RejectPhotoLevel:             "photo level mismatch",
	RejectInhibitBeforeEscrow:    "inhibited before escrow",
	RejectReturn:                 "returned by host",
	RejectTransportStacker:       "transport error at stacker",
	RejectTransportFraud:         "transport fraud detected",
	RejectNoteLength:             "note length mismatch",
	RejectPhotoPattern2:          "photo pattern 2 mismatch",
	RejectTrueBillFeature:        "true bill feature mismatch",
	RejectValidateBarcode:        "barcode validation failed",
	RejectBarcodeDigits:          "barcode digit count mismatch",
	RejectBarcodeStartBit:        "barcode start bit error",
	RejectBarcodeStopBit:         "barcode stop bit error",
	RejectDoubleTicket:           "double ticket detected",
	RejectTicketWrongSideUp:      "ticket wrong side up",
	RejectTicketLength:           "ticket length mismatch",
}

// RejectCodeFromU8 is the total mapping for RejectCode.
func RejectCodeFromU8(val uint8) RejectCode {
	if _, ok := rejectCodeNames[RejectCode(val)]; ok {
		return RejectCode(val)
	}
	return RejectReserved
}

// CheckedRejectCodeFromU8 rejects reserved byte values.
func CheckedRejectCodeFromU8(val uint8) (RejectCode, error) {
	r := RejectCodeFromU8(val)
	if r == RejectReserved {
		return r, &EnumError{Enum: "reject_code", Value: uint32(val)}
	}
	return r, nil
}

func (RejectCode) Len() int { return 1 }

func (r RejectCode) String() string {
	if name, ok := rejectCodeNames[r]; ok {
		return name
	}
	return "reserved"
}
