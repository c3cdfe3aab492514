package jcm

// envelopeHeaderLen is the id byte plus the 2-byte little-endian length.
const envelopeHeaderLen = 3

// messageHeaderByte is the fixed first byte of every envelope on the wire.
const messageHeaderByte = 0x12

// minEnvelopeLen is the header plus the minimum MessageData metadata.
const minEnvelopeLen = envelopeHeaderLen + messageDataMetaLen

// maxEnvelopeLen is the largest value a u16 length field can express.
const maxEnvelopeLen = 0xFFFF

// Message is the outermost wire frame: a fixed header byte, a little-endian
// total-length field, and a MessageData body.
type Message struct {
	Data MessageData
}

// Len is the total wire length of m, including the 3-byte header.
func (m Message) Len() int { return envelopeHeaderLen + m.Data.Len() }

// MessageFromBytes decodes a single envelope from buf. buf may be longer
// than the envelope; only the declared length is consumed.
func MessageFromBytes(buf []byte) (Message, error) {
	if len(buf) < minEnvelopeLen {
		return Message{}, &LengthError{Field: "message", Observed: len(buf), Required: minEnvelopeLen}
	}
	if buf[0] != messageHeaderByte {
		return Message{}, &EnumError{Enum: "message.header", Value: uint32(buf[0])}
	}
	declaredLen := int(uint16(buf[1]) | uint16(buf[2])<<8)
	if declaredLen > len(buf) || declaredLen < minEnvelopeLen {
		return Message{}, &LengthError{Field: "message", Observed: len(buf), Required: declaredLen}
	}
	data, err := MessageDataFromBytes(buf[envelopeHeaderLen:declaredLen])
	if err != nil {
		return Message{}, err
	}
	return Message{Data: data}, nil
}

// Bytes serializes m to wire form: header byte, little-endian total length,
// then the MessageData body.
func (m Message) Bytes() []byte {
	total := m.Len()
	out := make([]byte, 0, total)
	out = append(out, messageHeaderByte, uint8(total), uint8(total>>8))
	out = append(out, m.Data.Bytes()...)
	return out
}
