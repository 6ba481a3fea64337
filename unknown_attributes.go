package stun

// UnknownAttributes represents UNKNOWN-ATTRIBUTES (RFC 5389 §15.9): the
// list of comprehension-required attribute types a 420 error response
// could not parse.
type UnknownAttributes []AttrType

// AddTo adds UNKNOWN-ATTRIBUTES to m.
func (u UnknownAttributes) AddTo(m *Message) error {
	v := make([]byte, 2*len(u))
	for i, t := range u {
		bin.PutUint16(v[2*i:], t.Value())
	}
	return m.AddAttribute(AttrUnknownAttributes, v)
}

// GetFrom decodes UNKNOWN-ATTRIBUTES from m.
func (u *UnknownAttributes) GetFrom(m *Message) error {
	v, err := m.Get(AttrUnknownAttributes)
	if err != nil {
		return err
	}
	if len(v)%2 != 0 {
		return newMalformed("unknown-attributes", "length", "value not a multiple of 2 bytes")
	}
	out := make(UnknownAttributes, 0, len(v)/2)
	for i := 0; i+1 < len(v); i += 2 {
		out = append(out, AttrType(bin.Uint16(v[i:])))
	}
	*u = out
	return nil
}
