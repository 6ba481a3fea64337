package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_Check(t *testing.T) {
	m := New()
	m.Type = BindingRequest
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))
	require.NoError(t, m.Encode(DefaultCodecConfig()))
	require.NoError(t, Fingerprint.AddTo(m))

	assert.NoError(t, Fingerprint.Check(m))
}

func TestFingerprint_CheckMismatch(t *testing.T) {
	m := New()
	m.Type = BindingRequest
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))
	require.NoError(t, m.Encode(DefaultCodecConfig()))
	require.NoError(t, Fingerprint.AddTo(m))

	m.Raw[len(m.Raw)-1] ^= 0xFF
	err := Fingerprint.Check(m)
	require.Error(t, err)
	var mismatch *CRCMismatch
	require.ErrorAs(t, err, &mismatch)
}

func TestFingerprintValue_KnownXOR(t *testing.T) {
	// An empty buffer's CRC32-IEEE is 0; FingerprintValue must XOR it with
	// the fixed constant unconditionally.
	assert.Equal(t, uint32(fingerprintXORValue), FingerprintValue(nil))
}
