package stun

import (
	"net"
	"strconv"

	"github.com/pion/transport/v3/utils/xor"
)

const (
	familyIPv4 uint16 = 0x01
	familyIPv6 uint16 = 0x02
)

// XORMappedAddress implements XOR-MAPPED-ADDRESS (RFC 5389 §15.2).
type XORMappedAddress struct {
	IP   net.IP
	Port int
}

func (a XORMappedAddress) String() string {
	return net.JoinHostPort(a.IP.String(), strconv.Itoa(a.Port))
}

func isIPv4(ip net.IP) bool {
	return isZeros(ip[0:10]) && ip[10] == 0xff && ip[11] == 0xff
}

func isZeros(p net.IP) bool {
	for _, b := range p {
		if b != 0 {
			return false
		}
	}
	return true
}

func xorMask(transactionID [TransactionIDSize]byte) []byte {
	mask := make([]byte, net.IPv6len)
	bin.PutUint32(mask[0:4], magicCookie)
	copy(mask[4:], transactionID[:])
	return mask
}

// AddToAs adds an XOR-MAPPED-ADDRESS-shaped value to msg as attribute t.
func (a XORMappedAddress) AddToAs(msg *Message, t AttrType) error {
	family := familyIPv4
	ip := a.IP
	if len(a.IP) == net.IPv6len {
		if isIPv4(ip) {
			ip = ip[12:16]
		} else {
			family = familyIPv6
		}
	} else if len(ip) != net.IPv4len {
		return ErrBadIPLength
	}
	value := make([]byte, 4+len(ip))
	bin.PutUint16(value[0:2], family)
	bin.PutUint16(value[2:4], uint16(a.Port^(magicCookie>>16))) //nolint:gosec
	xor.XorBytes(value[4:], ip, xorMask(msg.TransactionID))
	return msg.AddAttribute(t, value)
}

// AddTo adds XOR-MAPPED-ADDRESS to m.
func (a XORMappedAddress) AddTo(m *Message) error { return a.AddToAs(m, AttrXORMappedAddress) }

// GetFromAs decodes an XOR-MAPPED-ADDRESS-shaped value from msg as
// attribute t.
func (a *XORMappedAddress) GetFromAs(msg *Message, t AttrType) error {
	value, err := msg.Get(t)
	if err != nil {
		return err
	}
	if len(value) <= 4 {
		return newMalformed("xor-mapped address", "length", "value too short")
	}
	family := bin.Uint16(value[0:2])
	if family != familyIPv6 && family != familyIPv4 {
		return newMalformed("xor-mapped address", "family", "unrecognized address family")
	}
	ipLen := net.IPv4len
	if family == familyIPv6 {
		ipLen = net.IPv6len
	}
	if err := CheckSize(t, len(value[4:]), ipLen); err != nil {
		return err
	}
	ip := make(net.IP, ipLen)
	xor.XorBytes(ip, value[4:], xorMask(msg.TransactionID))
	a.IP = ip
	a.Port = int(bin.Uint16(value[2:4])) ^ (magicCookie >> 16)
	return nil
}

// GetFrom decodes XOR-MAPPED-ADDRESS from m.
func (a *XORMappedAddress) GetFrom(m *Message) error { return a.GetFromAs(m, AttrXORMappedAddress) }

// XORPeerAddress represents XOR-PEER-ADDRESS (RFC 5766 §14.3, TURN).
type XORPeerAddress struct {
	IP   net.IP
	Port int
}

// AddTo adds XOR-PEER-ADDRESS to m.
func (a XORPeerAddress) AddTo(m *Message) error {
	return XORMappedAddress(a).AddToAs(m, AttrXORPeerAddress)
}

// GetFrom decodes XOR-PEER-ADDRESS from m.
func (a *XORPeerAddress) GetFrom(m *Message) error {
	var x XORMappedAddress
	if err := x.GetFromAs(m, AttrXORPeerAddress); err != nil {
		return err
	}
	a.IP, a.Port = x.IP, x.Port
	return nil
}

// XORRelayedAddress represents XOR-RELAYED-ADDRESS (RFC 5766 §14.5, TURN).
type XORRelayedAddress struct {
	IP   net.IP
	Port int
}

// AddTo adds XOR-RELAYED-ADDRESS to m.
func (a XORRelayedAddress) AddTo(m *Message) error {
	return XORMappedAddress(a).AddToAs(m, AttrXORRelayedAddress)
}

// GetFrom decodes XOR-RELAYED-ADDRESS from m.
func (a *XORRelayedAddress) GetFrom(m *Message) error {
	var x XORMappedAddress
	if err := x.GetFromAs(m, AttrXORRelayedAddress); err != nil {
		return err
	}
	a.IP, a.Port = x.IP, x.Port
	return nil
}
