package stun

// Username is the USERNAME attribute (RFC 5389 §15.3): an opaque
// identifier used with MESSAGE-INTEGRITY to identify the shared secret.
type Username struct {
	Raw []byte
}

// NewUsername returns a *Username from a string.
func NewUsername(username string) *Username {
	return &Username{Raw: []byte(username)}
}

func (u *Username) String() string { return string(u.Raw) }

// AddTo adds USERNAME to m.
func (u *Username) AddTo(m *Message) error {
	return m.AddAttribute(AttrUsername, u.Raw)
}

// GetFrom decodes USERNAME from m.
func (u *Username) GetFrom(m *Message) error {
	v, err := m.Get(AttrUsername)
	if err != nil {
		return err
	}
	u.Raw = v
	return nil
}
