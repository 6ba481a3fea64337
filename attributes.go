package stun

// RawAttribute is a decoded or about-to-be-encoded TLV attribute: its type,
// its payload length (exclusive of the 4-byte header and of any trailing
// padding), and the payload itself.
type RawAttribute struct {
	Type   AttrType
	Length uint16
	Value  []byte
}

// Equal reports whether a and b have the same type and value.
func (a RawAttribute) Equal(b RawAttribute) bool {
	if a.Type != b.Type || a.Length != b.Length {
		return false
	}
	if len(a.Value) != len(b.Value) {
		return false
	}
	for i := range a.Value {
		if a.Value[i] != b.Value[i] {
			return false
		}
	}
	return true
}

// Attributes is an insertion-ordered sequence of attributes with at most
// one entry per AttrType. It is intentionally a plain slice rather than a
// map: encode order is observable on the wire (spec.md's design note
// against "a plain unordered map"), and the typical message carries well
// under a dozen attributes, so linear Get/replace is cheap and simple.
type Attributes []RawAttribute

// Get returns the first attribute of type t, or a zero RawAttribute and
// false if none is present.
func (a Attributes) Get(t AttrType) (RawAttribute, bool) {
	for _, candidate := range a {
		if candidate.Type == t {
			return candidate, true
		}
	}
	return RawAttribute{}, false
}

// Contains reports whether an attribute of type t is present.
func (a Attributes) Contains(t AttrType) bool {
	_, ok := a.Get(t)
	return ok
}

// indexOf returns the index of the attribute of type t, or -1.
func (a Attributes) indexOf(t AttrType) int {
	for i := range a {
		if a[i].Type == t {
			return i
		}
	}
	return -1
}

// Setter is implemented by values that know how to add themselves to a
// Message, e.g. Username, Software, XORMappedAddress.
type Setter interface {
	AddTo(m *Message) error
}

// Getter is implemented by values that know how to read themselves back
// out of a decoded Message.
type Getter interface {
	GetFrom(m *Message) error
}

// ContentDependentAttribute is implemented by attributes whose encoded
// value depends on the bytes of the message written so far: FINGERPRINT
// (a CRC over the preceding bytes) and MESSAGE-INTEGRITY (an HMAC over the
// preceding bytes). Both are added via AddTo like any other Setter. Encode
// orders them by attribute type, not through this interface
// (MESSAGE-INTEGRITY penultimate, FINGERPRINT last).
type ContentDependentAttribute interface {
	Setter
	contentDependent()
}
