package jcm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestRoundTrip(t *testing.T) {
	const confId = ConfIdAcceptorRecycler
	const uid = 2

	cases := []struct {
		name    string
		data    MessageData
		decode  func(MessageData) (any, error)
	}{
		{"uid get", UidRequest{Mode: RequestModeGet}.ToMessageData(confId, uid), func(d MessageData) (any, error) { return UidRequestFromMessageData(d) }},
		{"uid set", UidRequest{Mode: RequestModeSet, Uid: 7}.ToMessageData(confId, uid), func(d MessageData) (any, error) { return UidRequestFromMessageData(d) }},
		{"status", StatusRequest{}.ToMessageData(confId, uid), func(d MessageData) (any, error) { return StatusRequestFromMessageData(d) }},
		{"reset", ResetRequest{}.ToMessageData(confId, uid), func(d MessageData) (any, error) { return ResetRequestFromMessageData(d) }},
		{"inhibit true", InhibitRequest{Inhibited: true}.ToMessageData(confId, uid), func(d MessageData) (any, error) { return InhibitRequestFromMessageData(d) }},
		{"inhibit false", InhibitRequest{Inhibited: false}.ToMessageData(confId, uid), func(d MessageData) (any, error) { return InhibitRequestFromMessageData(d) }},
		{"idle", IdleRequest{}.ToMessageData(confId, uid), func(d MessageData) (any, error) { return IdleRequestFromMessageData(d) }},
		{"reject", RejectRequest{}.ToMessageData(confId, uid), func(d MessageData) (any, error) { return RejectRequestFromMessageData(d) }},
		{"hold", HoldRequest{TimeoutSeconds: 300}.ToMessageData(confId, uid), func(d MessageData) (any, error) { return HoldRequestFromMessageData(d) }},
		{"collect generic", CollectRequest{Mode: CollectGeneric}.ToMessageData(confId, uid), func(d MessageData) (any, error) { return CollectRequestFromMessageData(d) }},
		{"collect acceptor", CollectRequest{Mode: CollectAcceptor}.ToMessageData(confId, uid), func(d MessageData) (any, error) { return CollectRequestFromMessageData(d) }},
		{"collect recycler", CollectRequest{Mode: CollectRecycler}.ToMessageData(confId, uid), func(d MessageData) (any, error) { return CollectRequestFromMessageData(d) }},
		{"near full get", NearFullRequest{Mode: RequestModeGet}.ToMessageData(confId, uid), func(d MessageData) (any, error) { return NearFullRequestFromMessageData(d) }},
		{"near full set", NearFullRequest{Mode: RequestModeSet, Data: NearFullData{Enabled: true, Number: 42}}.ToMessageData(confId, uid), func(d MessageData) (any, error) { return NearFullRequestFromMessageData(d) }},
		{"version", VersionRequest{}.ToMessageData(confId, uid), func(d MessageData) (any, error) { return VersionRequestFromMessageData(d) }},
		{"model name", ModelNameRequest{}.ToMessageData(confId, uid), func(d MessageData) (any, error) { return ModelNameRequestFromMessageData(d) }},
		{"serial number", SerialNumberRequest{}.ToMessageData(confId, uid), func(d MessageData) (any, error) { return SerialNumberRequestFromMessageData(d) }},
		{"note image", NoteImageRequest{Block: ImageBlockNumber(3)}.ToMessageData(confId, uid), func(d MessageData) (any, error) { return NoteImageRequestFromMessageData(d) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := tc.data.Bytes()
			decoded, err := MessageDataFromBytes(encoded)
			require.NoError(t, err)
			assert.Equal(t, tc.data, decoded)

			out, err := tc.decode(decoded)
			require.NoError(t, err)
			assert.NotNil(t, out)
		})
	}
}

func TestHoldRequestEncodesBigEndian(t *testing.T) {
	req := HoldRequest{TimeoutSeconds: 0x0102}
	data := req.ToMessageData(ConfIdAcceptor, 0)
	require.Len(t, data.Additional, 2)
	assert.Equal(t, byte(0x01), data.Additional[0])
	assert.Equal(t, byte(0x02), data.Additional[1])

	decoded, err := HoldRequestFromMessageData(data)
	require.NoError(t, err)
	assert.Equal(t, req, decoded)
}

func TestInhibitRequestRejectsShortPayload(t *testing.T) {
	data := MessageData{
		ConfId:      ConfIdAcceptor,
		MessageType: RequestTypeOperation,
		Code:        NewRequestMessageCode(RequestInhibit),
	}
	_, err := InhibitRequestFromMessageData(data)
	require.Error(t, err)
	var lenErr *LengthError
	require.ErrorAs(t, err, &lenErr)
}
