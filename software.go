package stun

const softwareRawMaxB = 763

// Software is the SOFTWARE attribute (RFC 5389 §15.10): a textual
// description of the software, for debugging.
type Software struct {
	Raw []byte
}

// NewSoftware returns a *Software from a string.
func NewSoftware(software string) *Software {
	return &Software{Raw: []byte(software)}
}

func (s *Software) String() string { return string(s.Raw) }

// AddTo adds SOFTWARE to m.
func (s *Software) AddTo(m *Message) error {
	if len(s.Raw) > softwareRawMaxB {
		return ErrSoftwareTooBig
	}
	return m.AddAttribute(AttrSoftware, s.Raw)
}

// GetFrom decodes SOFTWARE from m.
func (s *Software) GetFrom(m *Message) error {
	v, err := m.Get(AttrSoftware)
	if err != nil {
		return err
	}
	s.Raw = v
	return nil
}
