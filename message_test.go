package jcm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageFromBytesSeedScenario(t *testing.T) {
	buf := []byte{0x12, 0x08, 0x00, 0x10, 0x00, 0x00, 0x01, 0x00}

	msg, err := MessageFromBytes(buf)
	require.NoError(t, err)

	assert.Equal(t, ConfIdAcceptor, msg.Data.ConfId)
	assert.Equal(t, uint8(0), msg.Data.Uid)
	assert.Equal(t, RequestTypeOperation, msg.Data.MessageType)
	assert.False(t, msg.Data.Code.IsEvent())
	assert.Equal(t, RequestUid, msg.Data.Code.Request)
	assert.Empty(t, msg.Data.Additional)
	assert.Equal(t, len(buf), msg.Len())
}

func TestMessageRoundTrip(t *testing.T) {
	original := Message{Data: MessageData{
		ConfId:      ConfIdAcceptorRecycler,
		Uid:         3,
		MessageType: RequestTypeStatus,
		Code:        NewRequestMessageCode(RequestStatus),
		Additional:  []byte{0xAA, 0xBB, 0xCC},
	}}

	encoded := original.Bytes()
	assert.Equal(t, original.Len(), len(encoded))

	decoded, err := MessageFromBytes(encoded)
	require.NoError(t, err)
	assert.Equal(t, original.Data, decoded.Data)
}

func TestMessageFromBytesRejectsBadHeader(t *testing.T) {
	buf := []byte{0x00, 0x08, 0x00, 0x10, 0x00, 0x00, 0x01, 0x00}
	_, err := MessageFromBytes(buf)
	require.Error(t, err)
	var enumErr *EnumError
	require.ErrorAs(t, err, &enumErr)
}

func TestMessageFromBytesRejectsShortBuffer(t *testing.T) {
	_, err := MessageFromBytes([]byte{0x12, 0x08})
	require.Error(t, err)
	var lenErr *LengthError
	require.ErrorAs(t, err, &lenErr)
}

func TestMessageFromBytesIgnoresTrailingBytes(t *testing.T) {
	buf := []byte{0x12, 0x08, 0x00, 0x10, 0x00, 0x00, 0x01, 0x00, 0xFF, 0xFF}
	msg, err := MessageFromBytes(buf)
	require.NoError(t, err)
	assert.Equal(t, 8, msg.Len())
}
