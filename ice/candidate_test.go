package ice

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidate_ComputePriority_TypePreferenceDominates(t *testing.T) {
	host := &Candidate{Type: CandidateTypeHost, ComponentID: 1}
	relayed := &Candidate{Type: CandidateTypeRelayed, ComponentID: 1}

	assert.Greater(t, host.ComputePriority(), relayed.ComputePriority())
}

func TestCandidate_ComputePriority_ComponentIDBreaksTies(t *testing.T) {
	rtp := &Candidate{Type: CandidateTypeHost, ComponentID: 1}
	rtcp := &Candidate{Type: CandidateTypeHost, ComponentID: 2}

	assert.Greater(t, rtp.ComputePriority(), rtcp.ComputePriority())
}

func TestCandidate_Key_SameAddressAndBaseAreEqual(t *testing.T) {
	addr := netip.MustParseAddrPort("192.0.2.1:5000")
	base := netip.MustParseAddrPort("10.0.0.1:5000")

	a := &Candidate{TransportAddress: addr, Base: base}
	b := &Candidate{TransportAddress: addr, Base: base}
	c := &Candidate{TransportAddress: addr, Base: netip.MustParseAddrPort("10.0.0.2:5000")}

	assert.Equal(t, a.key(), b.key())
	assert.NotEqual(t, a.key(), c.key())
}

func TestCandidate_Free_Idempotent(t *testing.T) {
	calls := 0
	cand := NewCandidate(
		netip.MustParseAddrPort("192.0.2.1:5000"),
		netip.MustParseAddrPort("192.0.2.1:5000"),
		CandidateTypeHost,
		func() error { calls++; return nil },
	)

	assert.NoError(t, cand.Free())
	assert.NoError(t, cand.Free())
	assert.Equal(t, 1, calls)
}
