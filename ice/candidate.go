package ice

import (
	"fmt"
	"net/netip"
)

// CandidateType is the ICE candidate type (RFC 8445 §5.1.1).
type CandidateType int

const (
	CandidateTypeHost CandidateType = iota
	CandidateTypeServerReflexive
	CandidateTypePeerReflexive
	CandidateTypeRelayed
)

func (t CandidateType) String() string {
	switch t {
	case CandidateTypeHost:
		return "host"
	case CandidateTypeServerReflexive:
		return "srflx"
	case CandidateTypePeerReflexive:
		return "prflx"
	case CandidateTypeRelayed:
		return "relay"
	default:
		return "unknown"
	}
}

// typePreference is the RFC 8445 §5.1.2.1 recommended type preference used
// in the default priority formula (0-126, host highest).
func (t CandidateType) typePreference() uint32 {
	switch t {
	case CandidateTypeHost:
		return 126
	case CandidateTypePeerReflexive:
		return 110
	case CandidateTypeServerReflexive:
		return 100
	case CandidateTypeRelayed:
		return 0
	default:
		return 0
	}
}

// Candidate is an opaque bundle of a transport address, its base, type, and
// the values needed to prioritize and deduplicate it within a Component.
// Candidate carries no behavior beyond priority computation and the
// (transportAddress, base) equivalence key; harvesting, STUN/TURN exchange,
// and socket ownership live with the harvester that constructed it.
type Candidate struct {
	TransportAddress netip.AddrPort
	Base             netip.AddrPort
	Type             CandidateType

	// Priority is computed by ComputePriority; zero until then.
	Priority uint32

	// LocalPreference feeds the default priority formula (RFC 8445
	// §5.1.2.1); it distinguishes candidates of equal type, e.g. when a
	// host has several interfaces. Caller-supplied, 0-65535.
	LocalPreference uint32

	// ComponentID duplicates the owning Component's ID (RFC 8445 requires
	// it in the priority formula) so Candidate can compute its own
	// priority without a back-reference to the Component.
	ComponentID int

	// DefaultPreference ranks candidates for selectDefaultCandidate;
	// higher wins. Typically set by the harvester per RFC 8445 §5.1.2.2
	// (e.g. relayed > server-reflexive > host for the default).
	DefaultPreference uint32

	// IsVirtual marks a candidate that does not correspond to a real
	// host interface (e.g. synthesized for testing); excluded from
	// countLocalHostCandidates even when Type is host.
	IsVirtual bool

	// closer, if set, is invoked by free to release the candidate's
	// underlying socket. Nil for candidates that own no resource (e.g.
	// remote candidates, which are descriptions only).
	closer func() error
}

// NewCandidate builds a Candidate with an optional resource closer invoked
// by Component.Free. Remote candidates and test fixtures typically pass a
// nil closer.
func NewCandidate(transportAddress, base netip.AddrPort, typ CandidateType, closer func() error) *Candidate {
	if closer == nil {
		closer = func() error { return nil }
	}
	return &Candidate{
		TransportAddress: transportAddress,
		Base:             base,
		Type:             typ,
		closer:           closer,
	}
}

// ComputePriority sets Priority per the RFC 8445 §5.1.2.1 formula:
// priority = (2^24)*type-preference + (2^8)*local-preference + (256 -
// component-id), with ties among equal type/local-preference broken by
// componentId (RTP outranks RTCP).
func (c *Candidate) ComputePriority() uint32 {
	componentTerm := uint32(256 - c.ComponentID) //nolint:gosec // componentId is bounds-checked to [1,256] by the owning Component
	c.Priority = (c.Type.typePreference() << 24) | (c.LocalPreference << 8) | componentTerm
	return c.Priority
}

// key is the (transportAddress, base) equivalence class used by
// eliminateRedundantCandidates.
func (c *Candidate) key() candidateKey {
	return candidateKey{addr: c.TransportAddress, base: c.Base}
}

type candidateKey struct {
	addr netip.AddrPort
	base netip.AddrPort
}

// Free releases the candidate's underlying resource, if any. Idempotent:
// safe to call more than once.
func (c *Candidate) Free() error {
	if c.closer == nil {
		return nil
	}
	closer := c.closer
	c.closer = nil
	return closer()
}

func (c *Candidate) String() string {
	return fmt.Sprintf("%s %s/%s prio=%d", c.Type, c.TransportAddress, c.Base, c.Priority)
}
