// Package ice holds the candidate model for a single transport flow of a
// media stream: the Component that owns local and remote candidate lists,
// prioritizes and deduplicates them, and selects defaults. Candidate
// harvesting (host/server-reflexive/relayed discovery), the connectivity
// check state machine, and the media-stream aggregation above Component are
// external collaborators and stay out of this package; it interacts with
// the sibling stun package only indirectly, since candidates surface as
// PRIORITY/USE-CANDIDATE attribute values in connectivity-check messages
// built elsewhere.
package ice

// Transport identifies the transport protocol a Component's candidates run
// over.
type Transport int

const (
	TransportUDP Transport = iota
	TransportTCP
	TransportTLS
	TransportDTLS
)

func (t Transport) String() string {
	switch t {
	case TransportUDP:
		return "udp"
	case TransportTCP:
		return "tcp"
	case TransportTLS:
		return "tls"
	case TransportDTLS:
		return "dtls"
	default:
		return "unknown"
	}
}
