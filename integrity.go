package stun

import (
	"crypto/md5" //nolint:gosec // required by RFC 5389's long-term key derivation
	"crypto/sha1"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/arcturuslabs/stunice/internal/hmac"
)

const credentialsSep = ":"

// NewLongTermIntegrity returns a MessageIntegrity key for long-term
// credentials. Username, realm and password must already be SASL-prepared.
func NewLongTermIntegrity(username, realm, password string) MessageIntegrity {
	k := strings.Join([]string{username, realm, password}, credentialsSep)
	h := md5.New() //nolint:gosec
	fmt.Fprint(h, k)
	return MessageIntegrity(h.Sum(nil))
}

// NewShortTermIntegrity returns a MessageIntegrity key for short-term
// credentials. password must already be SASL-prepared.
func NewShortTermIntegrity(password string) MessageIntegrity {
	return MessageIntegrity(password)
}

// MessageIntegrity represents the MESSAGE-INTEGRITY attribute (RFC 5389
// §15.4): an HMAC-SHA1 over the message under a shared key. Computation
// uses a pooled HMAC (internal/hmac) to avoid a per-message allocation.
type MessageIntegrity []byte

func (MessageIntegrity) contentDependent() {}

func newHMAC(key, message, buf []byte) []byte {
	mac := hmac.AcquireSHA1(key)
	if _, err := mac.Write(message); err != nil {
		panic(err) // hash.Hash.Write never returns an error
	}
	defer hmac.PutSHA1(mac)
	return mac.Sum(buf)
}

func (i MessageIntegrity) String() string {
	return fmt.Sprintf("KEY: 0x%x", []byte(i))
}

const messageIntegritySize = 20

// AddTo adds MESSAGE-INTEGRITY to msg, computed over the header plus every
// attribute already present (spec.md §4.1: "the same range, with a
// specific length-field adjustment"). Returns ErrFingerprintBeforeIntegrity
// if FINGERPRINT is already in msg, since FINGERPRINT must always be last.
func (i MessageIntegrity) AddTo(msg *Message) error {
	for _, a := range msg.Attributes {
		if a.Type == AttrFingerprint {
			return ErrFingerprintBeforeIntegrity
		}
	}
	length := msg.Length
	msg.Length += messageIntegritySize + attributeHeaderSize
	msg.WriteLength()
	v := newHMAC(i, msg.Raw, nil)
	msg.Length = length

	vBuf := make([]byte, sha1.Size)
	copy(vBuf, v)
	msg.Add(AttrMessageIntegrity, vBuf)
	return nil
}

// Check verifies MESSAGE-INTEGRITY in msg against a freshly computed HMAC
// over the bytes preceding it (any attributes added after MESSAGE-INTEGRITY,
// such as FINGERPRINT, are excluded from the computation).
func (i MessageIntegrity) Check(msg *Message) error {
	val, err := msg.Get(AttrMessageIntegrity)
	if err != nil {
		return err
	}

	var (
		length         = msg.Length
		afterIntegrity bool
		sizeReduced    int
	)
	for _, a := range msg.Attributes {
		if afterIntegrity {
			sizeReduced += nearestPaddedValueLength(int(a.Length)) + attributeHeaderSize
		}
		if a.Type == AttrMessageIntegrity {
			afterIntegrity = true
		}
	}
	msg.Length -= uint32(sizeReduced)
	msg.WriteLength()
	startOfHMAC := messageHeaderSize + int(msg.Length) - (attributeHeaderSize + messageIntegritySize)
	b := msg.Raw[:startOfHMAC]
	expected := newHMAC(i, b, nil)
	msg.Length = length
	msg.WriteLength()

	return checkHMAC(val, expected)
}

// hmacEqual is a constant-time comparison, used by checkHMAC in
// checks.go/checks_debug.go.
func hmacEqual(a, b []byte) bool {
	return len(a) == len(b) && subtle.ConstantTimeCompare(a, b) == 1
}
