package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentityFor_NAIsRejectedByAddAttribute(t *testing.T) {
	assert.Equal(t, presentityNA, presentityFor(AttrXORMappedAddress, BindingRequest))
	assert.Equal(t, presentityMandatory, presentityFor(AttrXORMappedAddress, BindingResponse))

	m := &Message{Type: BindingRequest}
	var illegal *IllegalAttribute
	assert.ErrorAs(t, m.AddAttribute(AttrXORMappedAddress, make([]byte, 8)), &illegal)
}

func TestPresentityFor_UnknownMessageTypeIsPermissive(t *testing.T) {
	unknown := MessageType{Class: ClassRequest, Method: MethodCreatePermission}
	assert.Equal(t, presentityOptional, presentityFor(AttrUsername, unknown))
}

func TestPresentityFor_ReflectedFromAlwaysNA(t *testing.T) {
	for col := column(0); col < columnCount; col++ {
		assert.Equal(t, presentityNA, presentityTable[AttrReflectedFrom][col])
	}
}

func TestValidateForEncode_MandatoryOnlyEnforcedInCompat3489(t *testing.T) {
	m := New()
	m.Type = BindingResponse
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))

	require.NoError(t, validateForEncode(m, DefaultCodecConfig()))

	cfg := DefaultCodecConfig()
	cfg.Compat3489 = true
	err := validateForEncode(m, cfg)
	require.Error(t, err)
	var invalid *InvalidState
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, AttrXORMappedAddress, invalid.Attr)
}

func TestPrepareForEncode_SynthesizesSoftwareWhenConfigured(t *testing.T) {
	m := New()
	m.Type = BindingRequest
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))

	cfg := DefaultCodecConfig()
	cfg.AlwaysSoftware = true
	cfg.Software = "stunice/1.0"
	require.NoError(t, prepareForEncode(m, cfg))

	assert.True(t, m.Attributes.Contains(AttrSoftware))
}

func TestPrepareForEncode_DoesNotDuplicateExistingSoftware(t *testing.T) {
	m := New()
	m.Type = BindingRequest
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))
	require.NoError(t, NewSoftware("custom/1.0").AddTo(m))

	cfg := DefaultCodecConfig()
	cfg.AlwaysSoftware = true
	cfg.Software = "stunice/1.0"
	require.NoError(t, prepareForEncode(m, cfg))

	assert.Len(t, m.Attributes, 1)
	v, err := m.Get(AttrSoftware)
	require.NoError(t, err)
	assert.Equal(t, []byte("custom/1.0"), v)
}

func TestEncode_SoftwareAddedBeforeIntegrityAndFingerprint(t *testing.T) {
	m := New()
	m.Type = BindingRequest
	require.NoError(t, m.SetTransactionID(make([]byte, TransactionIDSize)))

	cfg := DefaultCodecConfig()
	cfg.AlwaysSoftware = true
	cfg.Software = "stunice/1.0"
	cfg.Integrity = NewShortTermIntegrity("secret")
	cfg.AlwaysFingerprint = true
	require.NoError(t, m.Encode(cfg))

	require.Len(t, m.Attributes, 3)
	assert.Equal(t, AttrSoftware, m.Attributes[0].Type)
	assert.Equal(t, AttrMessageIntegrity, m.Attributes[1].Type)
	assert.Equal(t, AttrFingerprint, m.Attributes[2].Type)

	// Both content-dependent attributes must still verify against the
	// final bytes, since Encode recomputes them fresh after SOFTWARE.
	assert.NoError(t, cfg.Integrity.Check(m))
	assert.NoError(t, Fingerprint.Check(m))
}
