package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIceAttributes_RoundTripOnBindingRequest(t *testing.T) {
	m := New()
	m.Type = BindingRequest
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))

	require.NoError(t, Priority{Priority: 12345}.AddTo(m))
	require.NoError(t, IceControlling{TieBreaker: 0xDEADBEEFCAFE}.AddTo(m))
	require.NoError(t, UseCandidate{}.AddTo(m))
	require.NoError(t, m.Encode(DefaultCodecConfig()))

	decoded := &Message{Raw: append([]byte(nil), m.Raw...)}
	require.NoError(t, decoded.Decode())

	var p Priority
	require.NoError(t, p.GetFrom(decoded))
	assert.Equal(t, uint32(12345), p.Priority)

	var c IceControlling
	require.NoError(t, c.GetFrom(decoded))
	assert.Equal(t, uint64(0xDEADBEEFCAFE), c.TieBreaker)

	assert.NoError(t, UseCandidate{}.GetFrom(decoded))
}

func TestIceControlled_RoundTrip(t *testing.T) {
	m := New()
	m.Type = BindingRequest
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))
	require.NoError(t, IceControlled{TieBreaker: 42}.AddTo(m))
	require.NoError(t, m.Encode(DefaultCodecConfig()))

	decoded := &Message{Raw: append([]byte(nil), m.Raw...)}
	require.NoError(t, decoded.Decode())
	var c IceControlled
	require.NoError(t, c.GetFrom(decoded))
	assert.Equal(t, uint64(42), c.TieBreaker)
}

func TestUseCandidate_AbsentByDefault(t *testing.T) {
	m := New()
	m.Type = BindingRequest
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))
	require.NoError(t, m.Encode(DefaultCodecConfig()))

	decoded := &Message{Raw: append([]byte(nil), m.Raw...)}
	require.NoError(t, decoded.Decode())
	assert.Error(t, UseCandidate{}.GetFrom(decoded))
}
