package stun

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXORMappedAddress_IPv6RoundTrip(t *testing.T) {
	m := New()
	m.Type = BindingResponse
	require.NoError(t, m.SetTransactionID([]byte("txid-1234567")))

	addr := XORMappedAddress{IP: net.ParseIP("2001:db8::1"), Port: 4242}
	require.NoError(t, addr.AddTo(m))
	require.NoError(t, m.Encode(DefaultCodecConfig()))

	decoded := &Message{Raw: append([]byte(nil), m.Raw...)}
	require.NoError(t, decoded.Decode())

	var got XORMappedAddress
	require.NoError(t, got.GetFrom(decoded))
	assert.Equal(t, addr.Port, got.Port)
	assert.True(t, addr.IP.Equal(got.IP))
}

func TestXORPeerAddress_RoundTripOnChannelBind(t *testing.T) {
	m := New()
	m.Type = ChannelBindRequest
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))

	peer := XORPeerAddress{IP: net.ParseIP("203.0.113.5"), Port: 5000}
	require.NoError(t, peer.AddTo(m))
	require.NoError(t, ChannelNumber{Number: 0x4001}.AddTo(m))
	require.NoError(t, m.Encode(DefaultCodecConfig()))

	decoded := &Message{Raw: append([]byte(nil), m.Raw...)}
	require.NoError(t, decoded.Decode())

	var got XORPeerAddress
	require.NoError(t, got.GetFrom(decoded))
	assert.Equal(t, peer.Port, got.Port)
	assert.True(t, peer.IP.Equal(got.IP))
}

func TestXORRelayedAddress_RoundTripOnAllocateResponse(t *testing.T) {
	m := New()
	m.Type = AllocateResponse
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))

	relayed := XORRelayedAddress{IP: net.ParseIP("198.51.100.9"), Port: 3478}
	require.NoError(t, relayed.AddTo(m))
	require.NoError(t, m.Encode(DefaultCodecConfig()))

	decoded := &Message{Raw: append([]byte(nil), m.Raw...)}
	require.NoError(t, decoded.Decode())

	var got XORRelayedAddress
	require.NoError(t, got.GetFrom(decoded))
	assert.Equal(t, relayed.Port, got.Port)
	assert.True(t, relayed.IP.Equal(got.IP))
}

func TestMappedAddress_RoundTrip(t *testing.T) {
	m := New()
	m.Type = BindingResponse
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))

	addr := MappedAddress{IP: net.ParseIP("192.0.2.2"), Port: 1234}
	require.NoError(t, addr.AddTo(m))
	require.NoError(t, m.Encode(DefaultCodecConfig()))

	decoded := &Message{Raw: append([]byte(nil), m.Raw...)}
	require.NoError(t, decoded.Decode())

	var got MappedAddress
	require.NoError(t, got.GetFrom(decoded))
	assert.Equal(t, addr.Port, got.Port)
	assert.True(t, addr.IP.Equal(got.IP))
}
