package stun

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelNumber_RejectsOutOfRange(t *testing.T) {
	m := New()
	m.Type = ChannelBindRequest
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))

	err := ChannelNumber{Number: 0x3FFF}.AddTo(m)
	require.Error(t, err)

	err = ChannelNumber{Number: 0x8000}.AddTo(m)
	require.Error(t, err)

	require.NoError(t, ChannelNumber{Number: 0x4000}.AddTo(m))
}

func TestLifetime_RoundTrip(t *testing.T) {
	m := New()
	m.Type = AllocateRequest
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))
	require.NoError(t, Lifetime{Duration: 600 * time.Second}.AddTo(m))
	require.NoError(t, m.Encode(DefaultCodecConfig()))

	decoded := &Message{Raw: append([]byte(nil), m.Raw...)}
	require.NoError(t, decoded.Decode())
	var got Lifetime
	require.NoError(t, got.GetFrom(decoded))
	assert.Equal(t, 600*time.Second, got.Duration)
}

func TestRequestedTransportAndEvenPort_RoundTrip(t *testing.T) {
	m := New()
	m.Type = AllocateRequest
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))
	require.NoError(t, RequestedTransport{Protocol: ProtocolUDP}.AddTo(m))
	require.NoError(t, EvenPort{ReserveAdditional: true}.AddTo(m))
	require.NoError(t, m.Encode(DefaultCodecConfig()))

	decoded := &Message{Raw: append([]byte(nil), m.Raw...)}
	require.NoError(t, decoded.Decode())

	var rt RequestedTransport
	require.NoError(t, rt.GetFrom(decoded))
	assert.Equal(t, ProtocolUDP, rt.Protocol)

	var ep EvenPort
	require.NoError(t, ep.GetFrom(decoded))
	assert.True(t, ep.ReserveAdditional)
}

func TestReservationToken_RoundTrip(t *testing.T) {
	m := New()
	m.Type = AllocateRequest
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))
	token := ReservationToken{1, 2, 3, 4, 5, 6, 7, 8}
	require.NoError(t, token.AddTo(m))
	require.NoError(t, m.Encode(DefaultCodecConfig()))

	decoded := &Message{Raw: append([]byte(nil), m.Raw...)}
	require.NoError(t, decoded.Decode())
	var got ReservationToken
	require.NoError(t, got.GetFrom(decoded))
	assert.Equal(t, token, got)
}

func TestData_RoundTrip(t *testing.T) {
	m := New()
	m.Type = DataIndication
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))
	peer := XORPeerAddress{IP: []byte{203, 0, 113, 9}, Port: 1000}
	require.NoError(t, peer.AddTo(m))
	require.NoError(t, Data([]byte("hello turn")).AddTo(m))
	require.NoError(t, m.Encode(DefaultCodecConfig()))

	decoded := &Message{Raw: append([]byte(nil), m.Raw...)}
	require.NoError(t, decoded.Decode())
	var got Data
	require.NoError(t, got.GetFrom(decoded))
	assert.Equal(t, Data("hello turn"), got)
}

func TestChannelData_EncodeDecodeRoundTrip(t *testing.T) {
	cd := &ChannelData{Number: 0x4001, Data: []byte("abc")}
	encoded := cd.Encode()

	// Length field must reflect the unpadded payload length even though
	// the frame itself is padded to a 4-byte boundary.
	assert.Len(t, encoded, channelDataHeaderSize+4)

	var decoded ChannelData
	require.NoError(t, decoded.Decode(encoded))
	assert.Equal(t, cd.Number, decoded.Number)
	assert.Equal(t, cd.Data, decoded.Data)
}

func TestChannelData_RejectsChannelNumberOutOfRange(t *testing.T) {
	buf := make([]byte, 4)
	bin.PutUint16(buf[0:2], 0x1234)
	var decoded ChannelData
	assert.Error(t, decoded.Decode(buf))
}

func TestIsChannelData_DistinguishesFromSTUN(t *testing.T) {
	stunHeader := make([]byte, 20)
	bin.PutUint16(stunHeader[0:2], BindingRequest.Value())
	assert.False(t, IsChannelData(stunHeader))

	cd := (&ChannelData{Number: 0x4001, Data: []byte("x")}).Encode()
	assert.True(t, IsChannelData(cd))
}

func TestErrorCodeAttribute_RoundTrip(t *testing.T) {
	m := New()
	m.Type = BindingErrorResponse
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))
	require.NoError(t, Err400BadRequest.AddTo(m))
	require.NoError(t, m.Encode(DefaultCodecConfig()))

	decoded := &Message{Raw: append([]byte(nil), m.Raw...)}
	require.NoError(t, decoded.Decode())
	var got ErrorCodeAttribute
	require.NoError(t, got.GetFrom(decoded))
	assert.Equal(t, 400, got.Code())
}

func TestUnknownAttributes_RoundTrip(t *testing.T) {
	m := New()
	m.Type = BindingErrorResponse
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))
	require.NoError(t, Err420UnknownAttribute.AddTo(m))
	unk := UnknownAttributes{AttrPriority, AttrUseCandidate}
	require.NoError(t, unk.AddTo(m))
	require.NoError(t, m.Encode(DefaultCodecConfig()))

	decoded := &Message{Raw: append([]byte(nil), m.Raw...)}
	require.NoError(t, decoded.Decode())
	var got UnknownAttributes
	require.NoError(t, got.GetFrom(decoded))
	assert.Equal(t, unk, got)
}
