package stun

// This file implements the ICE (RFC 8445) connectivity-check attributes:
// PRIORITY, ICE-CONTROLLING, ICE-CONTROLLED and USE-CANDIDATE. These are
// the one point spec.md §1 names where the message codec and the
// ice.Component candidate model couple: a connectivity-check Binding
// Request carries the sending candidate's Priority (computed by
// ice.Candidate) and, on the controlling agent, USE-CANDIDATE. The
// presentity table in validation.go is what actually enforces "presence
// only legal in certain message types".

// Priority represents the PRIORITY attribute (RFC 8445 §7.1.1): the
// sending candidate's priority, used by the recipient to seed its own
// peer-reflexive candidate should one be discovered from this check.
type Priority struct {
	Priority uint32
}

const priorityLen = 4

// AddTo adds PRIORITY to m.
func (p Priority) AddTo(m *Message) error {
	v := make([]byte, priorityLen)
	bin.PutUint32(v, p.Priority)
	return m.AddAttribute(AttrPriority, v)
}

// GetFrom decodes PRIORITY from m.
func (p *Priority) GetFrom(m *Message) error {
	v, err := m.Get(AttrPriority)
	if err != nil {
		return err
	}
	if err := CheckSize(AttrPriority, len(v), priorityLen); err != nil {
		return err
	}
	p.Priority = bin.Uint32(v)
	return nil
}

const tieBreakerLen = 8

// IceControlling represents ICE-CONTROLLING (RFC 8445 §7.1.2): carries the
// sending agent's tie-breaker, asserting it is the controlling agent.
type IceControlling struct {
	TieBreaker uint64
}

// AddTo adds ICE-CONTROLLING to m.
func (c IceControlling) AddTo(m *Message) error {
	v := make([]byte, tieBreakerLen)
	bin.PutUint64(v, c.TieBreaker)
	return m.AddAttribute(AttrIceControlling, v)
}

// GetFrom decodes ICE-CONTROLLING from m.
func (c *IceControlling) GetFrom(m *Message) error {
	v, err := m.Get(AttrIceControlling)
	if err != nil {
		return err
	}
	if err := CheckSize(AttrIceControlling, len(v), tieBreakerLen); err != nil {
		return err
	}
	c.TieBreaker = bin.Uint64(v)
	return nil
}

// IceControlled represents ICE-CONTROLLED (RFC 8445 §7.1.2): carries the
// sending agent's tie-breaker, asserting it is the controlled agent.
type IceControlled struct {
	TieBreaker uint64
}

// AddTo adds ICE-CONTROLLED to m.
func (c IceControlled) AddTo(m *Message) error {
	v := make([]byte, tieBreakerLen)
	bin.PutUint64(v, c.TieBreaker)
	return m.AddAttribute(AttrIceControlled, v)
}

// GetFrom decodes ICE-CONTROLLED from m.
func (c *IceControlled) GetFrom(m *Message) error {
	v, err := m.Get(AttrIceControlled)
	if err != nil {
		return err
	}
	if err := CheckSize(AttrIceControlled, len(v), tieBreakerLen); err != nil {
		return err
	}
	c.TieBreaker = bin.Uint64(v)
	return nil
}

// UseCandidate represents USE-CANDIDATE (RFC 8445 §7.1.3): a zero-length
// flag attribute the controlling agent sets to nominate a candidate pair.
type UseCandidate struct{}

// AddTo adds USE-CANDIDATE to m.
func (UseCandidate) AddTo(m *Message) error {
	return m.AddAttribute(AttrUseCandidate, nil)
}

// GetFrom checks whether USE-CANDIDATE is present in m.
func (UseCandidate) GetFrom(m *Message) error {
	_, err := m.Get(AttrUseCandidate)
	return err
}
