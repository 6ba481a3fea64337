package stun

import "encoding/binary"

// ChannelData implements TURN ChannelData framing (RFC 5766 §11.4): a
// lightweight 4-byte header (channel number + length) prefixing relayed
// application data once a channel has been bound, avoiding full STUN
// attribute overhead on the data plane. ChannelData messages are not STUN
// messages (no magic cookie, no transaction ID) and are distinguished from
// them by their leading two bits: a STUN message's first two bits are
// always 0b00, while a valid channel number's top two bits are 0b01.
type ChannelData struct {
	Number uint16
	Data   []byte
}

const channelDataHeaderSize = 4

// IsChannelData reports whether b looks like a ChannelData message rather
// than a STUN message, by inspecting the channel-number range of the first
// two bytes.
func IsChannelData(b []byte) bool {
	if len(b) < channelDataHeaderSize {
		return false
	}
	n := binary.BigEndian.Uint16(b[0:2])
	return n >= channelNumberMin && n <= channelNumberMax
}

// Encode writes the channel data frame, padding Data to a 4-byte boundary
// per RFC 5766 §11.5 (the pad itself is not counted in the length field).
func (c *ChannelData) Encode() []byte {
	padded := nearestPaddedValueLength(len(c.Data))
	buf := make([]byte, channelDataHeaderSize+padded)
	bin.PutUint16(buf[0:2], c.Number)
	bin.PutUint16(buf[2:4], uint16(len(c.Data))) //nolint:gosec // bounded by UDP datagram size
	copy(buf[channelDataHeaderSize:], c.Data)
	return buf
}

// Decode parses a channel data frame from b.
func (c *ChannelData) Decode(b []byte) error {
	if len(b) < channelDataHeaderSize {
		return newMalformed("channel-data", "header", "buffer shorter than 4 bytes")
	}
	c.Number = bin.Uint16(b[0:2])
	if c.Number < channelNumberMin || c.Number > channelNumberMax {
		return newMalformed("channel-data", "header", "channel number out of range")
	}
	length := int(bin.Uint16(b[2:4]))
	if len(b) < channelDataHeaderSize+length {
		return newMalformed("channel-data", "header", "declared length exceeds buffer")
	}
	c.Data = append([]byte(nil), b[channelDataHeaderSize:channelDataHeaderSize+length]...)
	return nil
}
