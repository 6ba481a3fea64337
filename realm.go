package stun

const realmMaxB = 763

// Realm is the REALM attribute (RFC 5389 §15.7): the server's
// administrative domain, used with long-term credentials.
type Realm struct {
	Raw []byte
}

// NewRealm returns a *Realm from a string.
func NewRealm(realm string) *Realm { return &Realm{Raw: []byte(realm)} }

func (r *Realm) String() string { return string(r.Raw) }

// AddTo adds REALM to m.
func (r *Realm) AddTo(m *Message) error {
	if len(r.Raw) > realmMaxB {
		return Error("REALM attribute bigger than 763 bytes or 128 characters")
	}
	return m.AddAttribute(AttrRealm, r.Raw)
}

// GetFrom decodes REALM from m.
func (r *Realm) GetFrom(m *Message) error {
	v, err := m.Get(AttrRealm)
	if err != nil {
		return err
	}
	r.Raw = v
	return nil
}
