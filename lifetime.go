package stun

import "time"

// Lifetime represents LIFETIME (RFC 5766 §14.2, TURN): the duration, in
// seconds on the wire, for which an allocation remains valid.
type Lifetime struct {
	Duration time.Duration
}

const lifetimeLen = 4

// AddTo adds LIFETIME to m.
func (l Lifetime) AddTo(m *Message) error {
	v := make([]byte, lifetimeLen)
	bin.PutUint32(v, uint32(l.Duration.Seconds())) //nolint:gosec // seconds fit in uint32
	return m.AddAttribute(AttrLifetime, v)
}

// GetFrom decodes LIFETIME from m.
func (l *Lifetime) GetFrom(m *Message) error {
	v, err := m.Get(AttrLifetime)
	if err != nil {
		return err
	}
	if err := CheckSize(AttrLifetime, len(v), lifetimeLen); err != nil {
		return err
	}
	l.Duration = time.Duration(bin.Uint32(v)) * time.Second
	return nil
}
