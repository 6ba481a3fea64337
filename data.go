package stun

// Data represents the DATA attribute (RFC 5766 §14.4, TURN): the
// application payload carried inside a Send or Data indication.
type Data []byte

// AddTo adds DATA to m.
func (d Data) AddTo(m *Message) error {
	return m.AddAttribute(AttrData, d)
}

// GetFrom decodes DATA from m.
func (d *Data) GetFrom(m *Message) error {
	v, err := m.Get(AttrData)
	if err != nil {
		return err
	}
	*d = append(Data(nil), v...)
	return nil
}
