package stun

import "fmt"

// AttrType is a 16-bit STUN attribute type, as used in the TLV header of
// each attribute (RFC 5389 Section 15).
type AttrType uint16

// Value returns the wire value of the type.
func (t AttrType) Value() uint16 { return uint16(t) }

// Comprehension-required attributes (RFC 5389/5766/8445), 0x0000-0x7FFF.
const (
	AttrMappedAddress     AttrType = 0x0001
	AttrUsername          AttrType = 0x0006
	AttrMessageIntegrity  AttrType = 0x0008
	AttrErrorCode         AttrType = 0x0009
	AttrUnknownAttributes AttrType = 0x000A
	AttrReflectedFrom     AttrType = 0x000B // RFC 3489, kept only so the
	// presentity table can iterate every index; see spec's note on
	// validateAttributePresentity's truncated loop.
	AttrChannelNumber     AttrType = 0x000C // TURN
	AttrLifetime          AttrType = 0x000D // TURN
	AttrXORPeerAddress    AttrType = 0x0012 // TURN
	AttrData              AttrType = 0x0013 // TURN
	AttrRealm             AttrType = 0x0014
	AttrNonce             AttrType = 0x0015
	AttrXORRelayedAddress AttrType = 0x0016 // TURN
	AttrEvenPort          AttrType = 0x0018 // TURN
	AttrRequestedTransport AttrType = 0x0019 // TURN
	AttrDontFragment      AttrType = 0x001A // TURN
	AttrXORMappedAddress  AttrType = 0x0020
	AttrReservationToken  AttrType = 0x0022 // TURN
	AttrPriority          AttrType = 0x0024 // ICE
	AttrUseCandidate      AttrType = 0x0025 // ICE
)

// Comprehension-optional attributes, 0x8000-0xFFFF.
const (
	AttrSoftware        AttrType = 0x8022
	AttrAlternateServer AttrType = 0x8023
	AttrFingerprint     AttrType = 0x8028
	AttrIceControlled   AttrType = 0x8029 // ICE
	AttrIceControlling  AttrType = 0x802A // ICE
)

var attrNames = map[AttrType]string{
	AttrMappedAddress:      "MAPPED-ADDRESS",
	AttrUsername:           "USERNAME",
	AttrMessageIntegrity:   "MESSAGE-INTEGRITY",
	AttrErrorCode:          "ERROR-CODE",
	AttrUnknownAttributes:  "UNKNOWN-ATTRIBUTES",
	AttrReflectedFrom:      "REFLECTED-FROM",
	AttrChannelNumber:      "CHANNEL-NUMBER",
	AttrLifetime:           "LIFETIME",
	AttrXORPeerAddress:     "XOR-PEER-ADDRESS",
	AttrData:               "DATA",
	AttrRealm:              "REALM",
	AttrNonce:              "NONCE",
	AttrXORRelayedAddress:  "XOR-RELAYED-ADDRESS",
	AttrEvenPort:           "EVEN-PORT",
	AttrRequestedTransport: "REQUESTED-TRANSPORT",
	AttrDontFragment:       "DONT-FRAGMENT",
	AttrXORMappedAddress:   "XOR-MAPPED-ADDRESS",
	AttrReservationToken:   "RESERVATION-TOKEN",
	AttrPriority:           "PRIORITY",
	AttrUseCandidate:       "USE-CANDIDATE",
	AttrSoftware:           "SOFTWARE",
	AttrAlternateServer:    "ALTERNATE-SERVER",
	AttrFingerprint:        "FINGERPRINT",
	AttrIceControlled:      "ICE-CONTROLLED",
	AttrIceControlling:     "ICE-CONTROLLING",
}

func (t AttrType) String() string {
	if name, ok := attrNames[t]; ok {
		return name
	}
	return fmt.Sprintf("0x%04x", uint16(t))
}

// RequiresComprehension reports whether an unrecognized attribute of this
// type must cause the message to be rejected (comprehension-required,
// type code < 0x8000) as opposed to silently ignored.
func (t AttrType) RequiresComprehension() bool {
	return uint16(t) < 0x8000
}
