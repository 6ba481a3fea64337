package ice

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pion/logging"

	stun "github.com/arcturuslabs/stunice"
)

// MinComponentID and MaxComponentID bound the valid componentId range (RFC
// 8445 §4: component 1 is RTP, component 2 is RTCP for streams that
// multiplex, values above that are used by some multi-component profiles).
const (
	MinComponentID = 1
	MaxComponentID = 256
)

// Component owns the local and remote candidate lists for one transport
// flow of a media stream (e.g. RTP or RTCP). It is populated by harvesters
// (out of scope here) running on arbitrary goroutines, and mutated by the
// owning agent's prioritize/eliminate/select-default/free calls; every
// operation is synchronous and non-blocking beyond mutex acquisition.
//
// Component never errors internally; it only refuses operations that would
// violate invariants, which for this type means rejecting an out-of-range
// componentId at construction.
type Component struct {
	id        int
	transport Transport

	// parentStream is a relation-only back-reference to the enclosing
	// media stream: an opaque handle, never an owned pointer, so
	// Component↔stream forms no ownership cycle. Nil if unset.
	parentStream any

	localMu    sync.Mutex
	local      []*Candidate
	defaultLoc *Candidate

	remoteMu     sync.Mutex
	remote       []*Candidate
	defaultRem   *Candidate
	hasDefaultRm bool

	log logging.LeveledLogger
}

// NewComponent constructs a Component for componentId id (must be in
// [MinComponentID, MaxComponentID]) over the given transport. loggerFactory
// may be nil, in which case pion/logging's default logger factory is used.
func NewComponent(id int, transport Transport, parentStream any, loggerFactory logging.LoggerFactory) (*Component, error) {
	if id < MinComponentID || id > MaxComponentID {
		return nil, &stun.InvalidArgument{Message: string(stun.ErrComponentIDOutOfRange)}
	}
	var log logging.LeveledLogger
	if loggerFactory != nil {
		log = loggerFactory.NewLogger("ice")
	} else {
		log = logging.NewDefaultLoggerFactory().NewLogger("ice")
	}
	return &Component{
		id:           id,
		transport:    transport,
		parentStream: parentStream,
		log:          log,
	}, nil
}

// GetComponentID returns the component's id.
func (c *Component) GetComponentID() int { return c.id }

// GetTransport returns the component's transport protocol.
func (c *Component) GetTransport() Transport { return c.transport }

// GetParentStream returns the relation-only back-reference to the owning
// media stream, or nil if unset. Component does not own it.
func (c *Component) GetParentStream() any { return c.parentStream }

// AddLocalCandidate appends one local candidate, preserving insertion order
// relative to other calls on the same goroutine. No ordering is guaranteed
// across goroutines until PrioritizeCandidates runs.
func (c *Component) AddLocalCandidate(cand *Candidate) {
	c.localMu.Lock()
	defer c.localMu.Unlock()
	cand.ComponentID = c.id
	c.local = append(c.local, cand)
	c.log.Tracef("added local candidate %s", cand)
}

// AddLocalCandidates appends a batch of local candidates atomically with
// respect to other local-list operations. An empty slice is a no-op.
func (c *Component) AddLocalCandidates(cands []*Candidate) {
	if len(cands) == 0 {
		return
	}
	c.localMu.Lock()
	defer c.localMu.Unlock()
	for _, cand := range cands {
		cand.ComponentID = c.id
		c.local = append(c.local, cand)
	}
}

// AddRemoteCandidate appends one remote candidate.
func (c *Component) AddRemoteCandidate(cand *Candidate) {
	c.remoteMu.Lock()
	defer c.remoteMu.Unlock()
	c.remote = append(c.remote, cand)
	c.log.Tracef("added remote candidate %s", cand)
}

// AddRemoteCandidates appends a batch of remote candidates. An empty slice
// is a no-op.
func (c *Component) AddRemoteCandidates(cands []*Candidate) {
	if len(cands) == 0 {
		return
	}
	c.remoteMu.Lock()
	defer c.remoteMu.Unlock()
	c.remote = append(c.remote, cands...)
}

// GetLocalCandidates returns an independent snapshot of the local candidate
// list, safe to range over without holding any lock.
func (c *Component) GetLocalCandidates() []*Candidate {
	c.localMu.Lock()
	defer c.localMu.Unlock()
	out := make([]*Candidate, len(c.local))
	copy(out, c.local)
	return out
}

// GetRemoteCandidates returns an independent snapshot of the remote
// candidate list.
func (c *Component) GetRemoteCandidates() []*Candidate {
	c.remoteMu.Lock()
	defer c.remoteMu.Unlock()
	out := make([]*Candidate, len(c.remote))
	copy(out, c.remote)
	return out
}

// CountLocalHostCandidates counts local candidates whose type is host and
// whose IsVirtual flag is false.
func (c *Component) CountLocalHostCandidates() int {
	c.localMu.Lock()
	defer c.localMu.Unlock()
	n := 0
	for _, cand := range c.local {
		if cand.Type == CandidateTypeHost && !cand.IsVirtual {
			n++
		}
	}
	return n
}

// PrioritizeCandidates computes each local candidate's priority, then sorts
// the local list into strictly descending priority order. The sort is
// stable: candidates of equal priority keep their relative insertion order.
func (c *Component) PrioritizeCandidates() {
	c.localMu.Lock()
	defer c.localMu.Unlock()
	for _, cand := range c.local {
		cand.ComputePriority()
	}
	sort.SliceStable(c.local, func(i, j int) bool {
		return c.local[i].Priority > c.local[j].Priority
	})
}

// EliminateRedundantCandidates drops local candidates that share both
// TransportAddress and Base with a higher-or-equal-priority candidate
// earlier in the list. It assumes the list is already in descending
// priority order (call PrioritizeCandidates first); the result is that only
// the highest-priority candidate of each (address, base) class survives.
func (c *Component) EliminateRedundantCandidates() {
	c.localMu.Lock()
	defer c.localMu.Unlock()
	seen := make(map[candidateKey]bool, len(c.local))
	kept := c.local[:0]
	for _, cand := range c.local {
		k := cand.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		kept = append(kept, cand)
	}
	c.local = kept
}

// SelectDefaultCandidate scans local candidates for the one with maximum
// DefaultPreference, ties broken by first-seen, and records it as the
// default. On an empty list the default stays unset.
func (c *Component) SelectDefaultCandidate() *Candidate {
	c.localMu.Lock()
	defer c.localMu.Unlock()
	var best *Candidate
	for _, cand := range c.local {
		if best == nil || cand.DefaultPreference > best.DefaultPreference {
			best = cand
		}
	}
	c.defaultLoc = best
	return best
}

// GetDefaultCandidate returns the local candidate selected by the most
// recent SelectDefaultCandidate call, or nil if none has run or the local
// list was empty.
func (c *Component) GetDefaultCandidate() *Candidate {
	c.localMu.Lock()
	defer c.localMu.Unlock()
	return c.defaultLoc
}

// SetDefaultRemoteCandidate records cand (supplied externally, typically
// from signaling) as the default remote candidate.
func (c *Component) SetDefaultRemoteCandidate(cand *Candidate) {
	c.remoteMu.Lock()
	defer c.remoteMu.Unlock()
	c.defaultRem = cand
	c.hasDefaultRm = true
}

// GetDefaultRemoteCandidate returns the default remote candidate and
// whether one has been set.
func (c *Component) GetDefaultRemoteCandidate() (*Candidate, bool) {
	c.remoteMu.Lock()
	defer c.remoteMu.Unlock()
	return c.defaultRem, c.hasDefaultRm
}

// Free releases every local candidate's underlying resource and clears the
// local list. Idempotent.
func (c *Component) Free() {
	c.localMu.Lock()
	defer c.localMu.Unlock()
	for _, cand := range c.local {
		if err := cand.Free(); err != nil {
			c.log.Warnf("error freeing candidate %s: %v", cand, err)
		}
	}
	c.local = nil
	c.defaultLoc = nil
}

// String takes the two guards one after the other, locals then remotes,
// never both at once, so the two counts may be read at different moments.
// It must never be called from code already holding either lock,
// and never calls back into candidate code that could re-enter the
// Component.
func (c *Component) String() string {
	c.localMu.Lock()
	nLocal := len(c.local)
	c.localMu.Unlock()

	c.remoteMu.Lock()
	nRemote := len(c.remote)
	c.remoteMu.Unlock()

	return fmt.Sprintf("Component{id=%d transport=%s local=%d remote=%d}", c.id, c.transport, nLocal, nRemote)
}
