package jcm

// ResponseCode is the one-byte status leading every Response payload.
type ResponseCode uint8

const (
	ResponseAck         ResponseCode = 0x06
	ResponseNak         ResponseCode = 0x15
	ResponseBusy        ResponseCode = 0xE1
	ResponseUnsupported ResponseCode = 0xE2
	ResponseUnavailable ResponseCode = 0xE3
	ResponseCollision   ResponseCode = 0xE4
	ResponseReserved    ResponseCode = 0xFF
)

// ResponseCodeFromU8 is the total mapping for ResponseCode.
func ResponseCodeFromU8(val uint8) ResponseCode {
	switch ResponseCode(val) {
	case ResponseAck, ResponseNak, ResponseBusy, ResponseUnsupported, ResponseUnavailable, ResponseCollision:
		return ResponseCode(val)
	default:
		return ResponseReserved
	}
}

// CheckedResponseCodeFromU8 rejects reserved byte values.
func CheckedResponseCodeFromU8(val uint8) (ResponseCode, error) {
	r := ResponseCodeFromU8(val)
	if r == ResponseReserved {
		return r, &EnumError{Enum: "response_code", Value: uint32(val)}
	}
	return r, nil
}

func (ResponseCode) Len() int { return 1 }

// IsOk reports whether the response code is Ack — the only code that
// signals the underlying operation actually happened. Busy/Nak/Unsupported/
// Unavailable/Collision are still successful protocol exchanges; it is up
// to the caller whether they count as a functional failure.
func (r ResponseCode) IsOk() bool { return r == ResponseAck }

func (r ResponseCode) String() string {
	switch r {
	case ResponseAck:
		return "ack"
	case ResponseNak:
		return "nak"
	case ResponseBusy:
		return "busy"
	case ResponseUnsupported:
		return "unsupported"
	case ResponseUnavailable:
		return "unavailable"
	case ResponseCollision:
		return "collision"
	default:
		return "reserved"
	}
}

// Response is the ResponseCode plus whatever operation-specific payload
// trails it, as carried inside a MessageData's Additional field for a
// request-kind MessageType.
type Response struct {
	Code       ResponseCode
	Additional []byte
}

// ResponseFromBytes decodes the leading ResponseCode byte and keeps the
// remainder as Additional, without interpreting it — callers that know the
// expected payload shape parse Additional themselves.
func ResponseFromBytes(buf []byte) (Response, error) {
	if len(buf) < 1 {
		return Response{}, &LengthError{Field: "response", Observed: len(buf), Required: 1}
	}
	code, err := CheckedResponseCodeFromU8(buf[0])
	if err != nil {
		return Response{}, err
	}
	additional := append([]byte(nil), buf[1:]...)
	return Response{Code: code, Additional: additional}, nil
}

// Bytes serializes the Response back to wire form.
func (r Response) Bytes() []byte {
	out := make([]byte, 0, 1+len(r.Additional))
	out = append(out, uint8(r.Code))
	out = append(out, r.Additional...)
	return out
}
