// Package stun implements Session Traversal Utilities for NAT (STUN,
// RFC 5389) and the TURN (RFC 5766) and ICE (RFC 8445) attributes that are
// carried inside STUN messages.
//
// Definitions
//
// STUN Agent: an entity that implements the STUN protocol, either a client
// or a server.
//
// Transport Address: the combination of an IP address and port number
// (such as a UDP or TCP port number).
//
// This package only implements the wire codec: building, encoding and
// decoding messages. Sending and receiving datagrams, retransmission
// timers, and the ICE connectivity-check state machine are left to callers;
// see the sibling package "ice" for the in-memory candidate model that
// those callers build on top of this codec.
package stun

import "encoding/binary"

// bin is shorthand for binary.BigEndian; all STUN integers are big-endian.
var bin = binary.BigEndian

// DefaultPort is the IANA-assigned port for the "stun" protocol.
const DefaultPort = 3478

// DefaultTLSPort is the IANA-assigned port for "stuns" (STUN over TLS/DTLS).
const DefaultTLSPort = 5349
