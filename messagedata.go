package jcm

// messageDataMetaLen is conf_id + uid + message_type + message_code(2): the
// fixed-size prefix of every MessageData, before the variable payload.
const messageDataMetaLen = 5

// MessageData is the decoded body of an envelope: addressing (ConfId, Uid),
// the MessageType/MessageCode pair, and whatever payload trails them.
type MessageData struct {
	ConfId      ConfId
	Uid         uint8
	MessageType MessageType
	Code        MessageCode
	Additional  []byte
}

// Len is the wire length of d: the fixed metadata plus the payload.
func (d MessageData) Len() int { return messageDataMetaLen + len(d.Additional) }

// MessageDataFromBytes decodes a MessageData from the portion of an envelope
// following the 3-byte header.
func MessageDataFromBytes(buf []byte) (MessageData, error) {
	if len(buf) < messageDataMetaLen {
		return MessageData{}, &LengthError{Field: "message_data", Observed: len(buf), Required: messageDataMetaLen}
	}
	confId, err := CheckedConfIdFromU8(buf[0])
	if err != nil {
		return MessageData{}, err
	}
	uid := buf[1]
	msgType, err := CheckedMessageTypeFromU8(buf[2])
	if err != nil {
		return MessageData{}, err
	}
	codeVal := uint16(buf[3]) | uint16(buf[4])<<8
	code, err := MessageCodeFromU16(msgType, codeVal)
	if err != nil {
		return MessageData{}, err
	}
	additional := append([]byte(nil), buf[messageDataMetaLen:]...)
	return MessageData{
		ConfId:      confId,
		Uid:         uid,
		MessageType: msgType,
		Code:        code,
		Additional:  additional,
	}, nil
}

// Bytes serializes d back to wire form.
func (d MessageData) Bytes() []byte {
	out := make([]byte, 0, d.Len())
	code := d.Code.U16()
	out = append(out, uint8(d.ConfId), d.Uid, uint8(d.MessageType), uint8(code), uint8(code>>8))
	out = append(out, d.Additional...)
	return out
}
