package stun

// ProtocolUDP is the only transport protocol codepoint RFC 5766 allows in
// REQUESTED-TRANSPORT (17 = UDP, from the IANA protocol-numbers registry).
const ProtocolUDP byte = 17

// RequestedTransport represents REQUESTED-TRANSPORT (RFC 5766 §14.7): the
// transport protocol an Allocate request asks the server to relay over.
type RequestedTransport struct {
	Protocol byte
}

const requestedTransportLen = 4

// AddTo adds REQUESTED-TRANSPORT to m.
func (r RequestedTransport) AddTo(m *Message) error {
	v := make([]byte, requestedTransportLen)
	v[0] = r.Protocol
	return m.AddAttribute(AttrRequestedTransport, v)
}

// GetFrom decodes REQUESTED-TRANSPORT from m.
func (r *RequestedTransport) GetFrom(m *Message) error {
	v, err := m.Get(AttrRequestedTransport)
	if err != nil {
		return err
	}
	if err := CheckSize(AttrRequestedTransport, len(v), requestedTransportLen); err != nil {
		return err
	}
	r.Protocol = v[0]
	return nil
}

// EvenPort represents EVEN-PORT (RFC 5766 §14.6): a request that the
// relayed port be even, optionally reserving the next-higher port too.
type EvenPort struct {
	ReserveAdditional bool
}

const evenPortReserveBit = 0x80

// AddTo adds EVEN-PORT to m.
func (e EvenPort) AddTo(m *Message) error {
	v := make([]byte, 1)
	if e.ReserveAdditional {
		v[0] = evenPortReserveBit
	}
	return m.AddAttribute(AttrEvenPort, v)
}

// GetFrom decodes EVEN-PORT from m.
func (e *EvenPort) GetFrom(m *Message) error {
	v, err := m.Get(AttrEvenPort)
	if err != nil {
		return err
	}
	if len(v) < 1 {
		return newMalformed("even-port", "length", "value is empty")
	}
	e.ReserveAdditional = v[0]&evenPortReserveBit != 0
	return nil
}

// ReservationToken represents RESERVATION-TOKEN (RFC 5766 §14.9): an
// opaque 8-byte value correlating an even-port reservation with a later
// Allocate request.
type ReservationToken [8]byte

// AddTo adds RESERVATION-TOKEN to m.
func (t ReservationToken) AddTo(m *Message) error {
	return m.AddAttribute(AttrReservationToken, t[:])
}

// GetFrom decodes RESERVATION-TOKEN from m.
func (t *ReservationToken) GetFrom(m *Message) error {
	v, err := m.Get(AttrReservationToken)
	if err != nil {
		return err
	}
	if err := CheckSize(AttrReservationToken, len(v), len(t)); err != nil {
		return err
	}
	copy(t[:], v)
	return nil
}

// DontFragment represents DONT-FRAGMENT (RFC 5766 §14.8): a flag asking
// the server to set the DF bit on UDP relays to the peer. It has no value.
type DontFragment struct{}

// AddTo adds DONT-FRAGMENT to m.
func (DontFragment) AddTo(m *Message) error {
	return m.AddAttribute(AttrDontFragment, nil)
}

// GetFrom checks whether DONT-FRAGMENT is present in m.
func (DontFragment) GetFrom(m *Message) error {
	_, err := m.Get(AttrDontFragment)
	return err
}
