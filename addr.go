package stun

import (
	"net"
	"strconv"
)

// MappedAddress represents MAPPED-ADDRESS (RFC 5389 §15.1), used only by
// servers for backwards compatibility with RFC 3489 clients.
type MappedAddress struct {
	IP   net.IP
	Port int
}

// AlternateServer represents ALTERNATE-SERVER (RFC 5389 §15.11).
type AlternateServer struct {
	IP   net.IP
	Port int
}

func (a MappedAddress) String() string {
	return net.JoinHostPort(a.IP.String(), strconv.Itoa(a.Port))
}

// GetFromAs decodes a MAPPED-ADDRESS-shaped value from m as attribute t.
func (a *MappedAddress) GetFromAs(m *Message, t AttrType) error {
	value, err := m.Get(t)
	if err != nil {
		return err
	}
	if len(value) <= 4 {
		return newMalformed("mapped address", "length", "value too short")
	}
	family := bin.Uint16(value[0:2])
	if family != familyIPv6 && family != familyIPv4 {
		return newMalformed("mapped address", "family", "unrecognized address family")
	}
	ipLen := net.IPv4len
	if family == familyIPv6 {
		ipLen = net.IPv6len
	}
	if len(value[4:]) != ipLen {
		return CheckSize(t, len(value[4:]), ipLen)
	}
	a.IP = append(net.IP(nil), value[4:]...)
	a.Port = int(bin.Uint16(value[2:4]))
	return nil
}

// AddToAs adds a MAPPED-ADDRESS-shaped value to msg as attribute t.
func (a *MappedAddress) AddToAs(msg *Message, t AttrType) error {
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
	bin.PutUint16(value[2:4], uint16(a.Port)) //nolint:gosec // ports fit in uint16
	copy(value[4:], ip)
	return msg.AddAttribute(t, value)
}

// AddTo adds MAPPED-ADDRESS to m.
func (a *MappedAddress) AddTo(m *Message) error { return a.AddToAs(m, AttrMappedAddress) }

// GetFrom decodes MAPPED-ADDRESS from m.
func (a *MappedAddress) GetFrom(m *Message) error { return a.GetFromAs(m, AttrMappedAddress) }

// AddTo adds ALTERNATE-SERVER to m.
func (s *AlternateServer) AddTo(m *Message) error {
	return (*MappedAddress)(s).AddToAs(m, AttrAlternateServer)
}

// GetFrom decodes ALTERNATE-SERVER from m.
func (s *AlternateServer) GetFrom(m *Message) error {
	return (*MappedAddress)(s).GetFromAs(m, AttrAlternateServer)
}

func (s AlternateServer) String() string {
	return net.JoinHostPort(s.IP.String(), strconv.Itoa(s.Port))
}
