package stun

const nonceMaxB = 763

// Nonce is the NONCE attribute (RFC 5389 §15.8), used to prevent replay
// attacks against long-term credential authentication.
type Nonce struct {
	Raw []byte
}

// NewNonce returns a *Nonce from a string.
func NewNonce(nonce string) *Nonce { return &Nonce{Raw: []byte(nonce)} }

func (n *Nonce) String() string { return string(n.Raw) }

// AddTo adds NONCE to m.
func (n *Nonce) AddTo(m *Message) error {
	if len(n.Raw) > nonceMaxB {
		return Error("NONCE attribute bigger than 763 bytes or 128 characters")
	}
	return m.AddAttribute(AttrNonce, n.Raw)
}

// GetFrom decodes NONCE from m.
func (n *Nonce) GetFrom(m *Message) error {
	v, err := m.Get(AttrNonce)
	if err != nil {
		return err
	}
	n.Raw = v
	return nil
}
