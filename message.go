package stun

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

const (
	// magicCookie distinguishes RFC 5389 STUN from the legacy RFC 3489
	// format when multiplexed with other protocols on the same port. It is
	// always exactly 0x2112A442 and is never validated against, only
	// preserved, on decode (spec.md §4.2 step 4).
	magicCookie = 0x2112A442

	attributeHeaderSize = 4
	messageHeaderSize   = 20

	// TransactionIDSize is the fixed length of a STUN transaction ID.
	// RFC 3489 allowed 16 bytes; this package never accepts that (spec.md §9).
	TransactionIDSize = 12
)

// NewTransactionID returns a new random transaction ID using crypto/rand.
func NewTransactionID() (b [TransactionIDSize]byte) {
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return b
}

// IsMessage reports whether b looks like a STUN message (long enough to
// hold a header, and carrying the magic cookie at the expected offset).
// Useful for demultiplexing; does not guarantee that Decode will succeed.
func IsMessage(b []byte) bool {
	return len(b) >= messageHeaderSize && bin.Uint32(b[4:8]) == magicCookie
}

// New returns a *Message with a pre-allocated Raw buffer.
func New() *Message {
	const defaultRawCapacity = 120
	return &Message{Raw: make([]byte, messageHeaderSize, defaultRawCapacity)}
}

// Message represents a single STUN message: a 16-bit type (class+method),
// a magic cookie, a 12-byte transaction ID, and an ordered list of
// attributes. Raw holds the encoded wire image once Encode has run, or the
// bytes to be parsed before Decode runs.
type Message struct {
	Type          MessageType
	Length        uint32 // bytes of attribute section, not including header
	TransactionID [TransactionIDSize]byte
	Attributes    Attributes
	Raw           []byte
}

// NewTransactionID assigns m.TransactionID a fresh random value.
func (m *Message) NewTransactionID() error {
	_, err := rand.Read(m.TransactionID[:])
	return err
}

// SetTransactionID sets m.TransactionID from b. b must be exactly
// TransactionIDSize bytes; RFC 3489's 16-byte IDs are never accepted.
func (m *Message) SetTransactionID(b []byte) error {
	if len(b) != TransactionIDSize {
		return &InvalidArgument{Message: string(ErrTransactionIDInvalidLength)}
	}
	copy(m.TransactionID[:], b)
	return nil
}

func (m Message) String() string {
	return fmt.Sprintf("%s l=%d attrs=%d id=%s",
		m.Type, m.Length, len(m.Attributes),
		base64.StdEncoding.EncodeToString(m.TransactionID[:]),
	)
}

// Reset clears Message, its attributes, and the underlying buffer length
// (capacity is retained for reuse).
func (m *Message) Reset() {
	m.Raw = m.Raw[:0]
	m.Length = 0
	m.Attributes = m.Attributes[:0]
}

func (m *Message) grow(n int) {
	for cap(m.Raw) < n {
		m.Raw = append(m.Raw, 0)
	}
	m.Raw = m.Raw[:n]
}

// Add appends a raw attribute to the message's wire buffer and attribute
// list, replacing any existing attribute of the same type (spec.md §3:
// "adding an attribute whose type code already exists replaces the
// existing one"). It performs no presentity validation; callers that need
// that check call AddAttribute instead. Not goroutine-safe.
func (m *Message) Add(t AttrType, v []byte) {
	if idx := m.Attributes.indexOf(t); idx >= 0 {
		m.removeAttributeAt(idx)
	}
	m.appendRaw(t, v)
}

// appendRaw does the actual TLV append with padding, assuming no existing
// attribute of type t is present.
func (m *Message) appendRaw(t AttrType, v []byte) {
	allocSize := attributeHeaderSize + len(v)
	first := messageHeaderSize + int(m.Length)
	last := first + allocSize
	m.grow(last)
	m.Raw = m.Raw[:last]
	m.Length += uint32(allocSize)

	buf := m.Raw[first:last]
	value := buf[attributeHeaderSize:]
	attr := RawAttribute{Type: t, Length: uint16(len(v)), Value: value}

	bin.PutUint16(buf[0:2], attr.Type.Value())
	bin.PutUint16(buf[2:4], attr.Length)
	copy(value, v)

	if pad := nearestPaddedValueLength(len(v)) - len(v); pad != 0 {
		last += pad
		m.grow(last)
		zeroes := m.Raw[last-pad : last]
		for i := range zeroes {
			zeroes[i] = 0
		}
		m.Raw = m.Raw[:last]
		m.Length += uint32(pad)
	}
	m.Attributes = append(m.Attributes, attr)
}

// removeAttributeAt rebuilds Raw without the attribute at index idx. Only
// used by Add's replace-on-duplicate path and by the encode preparation
// pass (validation.go), both of which are rare relative to the append
// path, so an O(n) rebuild is an acceptable tradeoff for simplicity.
func (m *Message) removeAttributeAt(idx int) {
	removed := m.Attributes[idx]
	kept := make([]RawAttribute, 0, len(m.Attributes)-1)
	for i, a := range m.Attributes {
		if i != idx {
			kept = append(kept, RawAttribute{Type: a.Type, Length: a.Length, Value: append([]byte(nil), a.Value...)})
		}
	}
	_ = removed
	m.Attributes = m.Attributes[:0]
	m.Raw = m.Raw[:messageHeaderSize]
	m.Length = 0
	for _, a := range kept {
		m.appendRaw(a.Type, a.Value)
	}
}

// AddAttribute adds a raw attribute after checking the presentity table:
// an attribute that is N/A for m.Type is always rejected, matching spec.md
// §8's quantified invariant ("for any message type T and attribute A with
// presentity N/A in T: addAttribute rejects A").
func (m *Message) AddAttribute(t AttrType, v []byte) error {
	if presentityFor(t, m.Type) == presentityNA {
		return &IllegalAttribute{Attr: t, MessageType: m.Type}
	}
	m.Add(t, v)
	return nil
}

// Get returns the value of the first attribute of type t, or
// ErrAttributeNotFound.
func (m *Message) Get(t AttrType) ([]byte, error) {
	a, ok := m.Attributes.Get(t)
	if !ok {
		return nil, ErrAttributeNotFound
	}
	return a.Value, nil
}

// Equal reports whether b has the same type, transaction ID, length and
// attribute set as m. Ignores Raw.
func (m *Message) Equal(b *Message) bool {
	if m.Type != b.Type || m.TransactionID != b.TransactionID || m.Length != b.Length {
		return false
	}
	for _, a := range m.Attributes {
		bA, ok := b.Attributes.Get(a.Type)
		if !ok || !bA.Equal(a) {
			return false
		}
	}
	return len(m.Attributes) == len(b.Attributes)
}

// WriteLength writes m.Length into m.Raw's header. Valid only once
// len(m.Raw) > 4.
func (m *Message) WriteLength() {
	_ = m.Raw[4] //nolint:staticcheck // early bounds check
	bin.PutUint16(m.Raw[2:4], uint16(m.Length))
}

// WriteHeader writes the 20-byte STUN header to m.Raw. Not goroutine-safe.
func (m *Message) WriteHeader() {
	if len(m.Raw) < messageHeaderSize {
		m.grow(messageHeaderSize)
	}
	_ = m.Raw[:messageHeaderSize]
	bin.PutUint16(m.Raw[0:2], m.Type.Value())
	bin.PutUint16(m.Raw[2:4], uint16(m.Length))
	bin.PutUint32(m.Raw[4:8], magicCookie)
	copy(m.Raw[8:messageHeaderSize], m.TransactionID[:])
}

// writeAttributes re-emits every currently-stored attribute from its raw
// value, used after the encode preparation pass has reordered attributes.
func (m *Message) writeAttributes() {
	attrs := m.Attributes
	m.Attributes = m.Attributes[:0]
	m.Raw = m.Raw[:messageHeaderSize]
	m.Length = 0
	for _, a := range attrs {
		m.appendRaw(a.Type, a.Value)
	}
}

// Encode validates m against the presentity table for m.Type, drops any
// MESSAGE-INTEGRITY and FINGERPRINT already present, then writes the full
// wire image to m.Raw. MESSAGE-INTEGRITY is added back, computed fresh, only
// when cfg.Integrity is set; one added before Encode is not kept otherwise.
// FINGERPRINT is added back last, computed fresh, when cfg.AlwaysFingerprint
// is set or m carried one before Encode.
func (m *Message) Encode(cfg CodecConfig) error {
	hadFingerprint := m.Attributes.Contains(AttrFingerprint)
	if err := prepareForEncode(m, cfg); err != nil {
		return err
	}
	if err := validateForEncode(m, cfg); err != nil {
		return err
	}
	// Attributes first (fixes m.Length), then the header (needs the final
	// length); only then can the content-dependent attributes hash/CRC the
	// buffer as actually written, per spec.md §4.2 steps 3-4.
	m.writeAttributes()
	m.WriteHeader()
	if cfg.Integrity != nil {
		if err := cfg.Integrity.AddTo(m); err != nil {
			return err
		}
	}
	if cfg.AlwaysFingerprint || hadFingerprint {
		if err := Fingerprint.AddTo(m); err != nil {
			return err
		}
	}
	return nil
}

// Decode parses m.Raw into m's fields, validating the header, the declared
// length against the available buffer, and (if present) the FINGERPRINT
// attribute's CRC. A bad FINGERPRINT is reported as *Malformed; per
// spec.md §4.2 and §7, RFC 5389 itself says the caller should discard the
// datagram silently rather than reply with an error.
func (m *Message) Decode() error {
	buf := m.Raw
	if len(buf) < messageHeaderSize {
		return newMalformed("message", "header", "buffer shorter than 20-byte header")
	}
	var (
		t        = binary.BigEndian.Uint16(buf[0:2])
		size     = int(binary.BigEndian.Uint16(buf[2:4]))
		cookie   = binary.BigEndian.Uint32(buf[4:8])
		fullSize = messageHeaderSize + size
	)
	_ = cookie // preserved, not validated against a fixed value on decode
	if len(buf) < fullSize {
		return newMalformed("message", "length",
			fmt.Sprintf("buffer length %d is less than %d (declared message size)", len(buf), fullSize))
	}
	m.Type.ReadValue(t)
	m.Length = uint32(size)
	copy(m.TransactionID[:], buf[8:messageHeaderSize])
	m.Attributes = m.Attributes[:0]

	offset := 0
	b := buf[messageHeaderSize:fullSize]
	originalOffset := messageHeaderSize
	for offset < size {
		if len(b) < attributeHeaderSize {
			return newMalformed("attribute", "header",
				fmt.Sprintf("buffer length %d is less than %d (expected header size)", len(b), attributeHeaderSize))
		}
		a := RawAttribute{
			Type:   AttrType(bin.Uint16(b[0:2])),
			Length: bin.Uint16(b[2:4]),
		}
		aLen := int(a.Length)
		aBufLen := nearestPaddedValueLength(aLen)
		b = b[attributeHeaderSize:]
		offset += attributeHeaderSize
		currentOffset := originalOffset + offset

		if len(b) < aBufLen {
			return newMalformed("attribute", "value",
				fmt.Sprintf("buffer length %d is less than %d (expected value size)", len(b), aBufLen))
		}
		a.Value = b[:aLen]

		if a.Type == AttrFingerprint {
			expected := FingerprintValue(buf[:originalOffset+offset-attributeHeaderSize])
			if len(a.Value) != fingerprintSize {
				return newMalformed("attribute", "fingerprint", "unexpected FINGERPRINT length")
			}
			if got := bin.Uint32(a.Value); got != expected {
				return newMalformed("message", "fingerprint", "bad fingerprint")
			}
		}

		offset += aBufLen
		b = b[aBufLen:]
		m.Attributes = append(m.Attributes, a)
	}
	return nil
}

// MaxPacketSize is the largest UDP packet this package will attempt to
// process as a STUN message.
const MaxPacketSize = 2048
