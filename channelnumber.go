package stun

// ChannelNumber represents CHANNEL-NUMBER (RFC 5766 §14.1, TURN): the
// 16-bit channel number a client binds to a peer address via ChannelBind.
// Valid channel numbers fall in [0x4000, 0x7FFF].
type ChannelNumber struct {
	Number uint16
}

const (
	channelNumberMin = 0x4000
	channelNumberMax = 0x7FFF
	channelNumberLen = 4 // 2 bytes number + 2 reserved bytes
)

// AddTo adds CHANNEL-NUMBER to m.
func (c ChannelNumber) AddTo(m *Message) error {
	if c.Number < channelNumberMin || c.Number > channelNumberMax {
		return Error("channel number out of range [0x4000, 0x7FFF]")
	}
	v := make([]byte, channelNumberLen)
	bin.PutUint16(v[0:2], c.Number)
	return m.AddAttribute(AttrChannelNumber, v)
}

// GetFrom decodes CHANNEL-NUMBER from m.
func (c *ChannelNumber) GetFrom(m *Message) error {
	v, err := m.Get(AttrChannelNumber)
	if err != nil {
		return err
	}
	if err := CheckSize(AttrChannelNumber, len(v), channelNumberLen); err != nil {
		return err
	}
	c.Number = bin.Uint16(v[0:2])
	return nil
}
