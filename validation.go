package stun

// Presentity is the per-(attribute, message-type) validity status from the
// table in spec.md §6.
type Presentity int

const (
	presentityNA Presentity = iota
	presentityOptional
	presentityConditional
	presentityMandatory
)

// column indexes the 14 message-type columns spec.md §6 names.
type column int

const (
	colBindingReq column = iota
	colBindingResp
	colBindingErr
	colSharedSecretReq
	colSharedSecretResp
	colSharedSecretErr
	colAllocateReq
	colAllocateResp
	colRefreshReq
	colRefreshResp
	colChannelBindReq
	colChannelBindResp
	colSendInd
	colDataInd
	columnCount
)

// colUnknown marks a MessageType with no column in the table (e.g. a
// CreatePermission message). Attributes default to Optional for it: the
// table governs only the 14 named combinations, and spec.md is silent on
// method/class combinations outside that table.
const colUnknown column = -1

func messageColumn(t MessageType) column {
	switch t {
	case BindingRequest:
		return colBindingReq
	case BindingResponse:
		return colBindingResp
	case BindingErrorResponse:
		return colBindingErr
	case SharedSecretRequest:
		return colSharedSecretReq
	case SharedSecretResponse:
		return colSharedSecretResp
	case SharedSecretErrorResp:
		return colSharedSecretErr
	case AllocateRequest:
		return colAllocateReq
	case AllocateResponse:
		return colAllocateResp
	case RefreshRequest:
		return colRefreshReq
	case RefreshResponse:
		return colRefreshResp
	case ChannelBindRequest:
		return colChannelBindReq
	case ChannelBindResponse:
		return colChannelBindResp
	case SendIndication:
		return colSendInd
	case DataIndication:
		return colDataInd
	default:
		return colUnknown
	}
}

// presentityTable reproduces spec.md §6's full attribute x message-type
// matrix for every attribute this package implements (MAPPED-ADDRESS
// through USE-CANDIDATE, plus the TURN/ICE attributes supplementing the
// distilled spec per SPEC_FULL.md §7). A row omitted for a given column
// defaults to N/A, which covers the UNKNOWN_OPTIONAL-shaped short rows
// spec.md §9 calls out.
var presentityTable = map[AttrType][columnCount]Presentity{
	AttrMappedAddress: {
		colBindingResp: presentityOptional, colSharedSecretReq: presentityOptional, colSharedSecretResp: presentityOptional,
	},
	AttrUsername: {
		colBindingReq: presentityOptional, colSharedSecretResp: presentityMandatory,
		colAllocateReq: presentityMandatory, colRefreshReq: presentityOptional, colChannelBindReq: presentityOptional,
	},
	AttrMessageIntegrity: {
		colBindingReq: presentityOptional, colBindingResp: presentityOptional, colBindingErr: presentityOptional,
		colAllocateReq: presentityOptional, colAllocateResp: presentityOptional,
		colRefreshReq: presentityOptional, colRefreshResp: presentityOptional,
		colChannelBindReq: presentityOptional, colChannelBindResp: presentityOptional,
	},
	AttrErrorCode: {
		colBindingErr: presentityMandatory, colSharedSecretErr: presentityMandatory,
		colAllocateResp: presentityConditional, colRefreshResp: presentityConditional, colChannelBindResp: presentityConditional,
	},
	AttrUnknownAttributes: {
		colBindingErr: presentityConditional, colSharedSecretErr: presentityConditional,
		colAllocateResp: presentityConditional, colRefreshResp: presentityConditional, colChannelBindResp: presentityConditional,
	},
	// REFLECTED-FROM: RFC 3489-only, never legal in RFC 5389 mode; kept as
	// an all-N/A row purely so validateForEncode iterates over
	// it (spec.md §9's note on the source's truncated loop).
	AttrReflectedFrom: {},
	AttrChannelNumber: {
		colChannelBindReq: presentityMandatory,
	},
	AttrLifetime: {
		colAllocateReq: presentityOptional, colAllocateResp: presentityOptional,
		colRefreshReq: presentityMandatory, colRefreshResp: presentityOptional,
	},
	AttrXORPeerAddress: {
		colChannelBindReq: presentityMandatory, colSendInd: presentityMandatory, colDataInd: presentityMandatory,
	},
	AttrData: {
		colSendInd: presentityOptional, colDataInd: presentityMandatory,
	},
	AttrRealm: {
		colAllocateReq: presentityOptional, colAllocateResp: presentityOptional,
		colRefreshReq: presentityOptional, colRefreshResp: presentityOptional,
		colChannelBindReq: presentityOptional, colChannelBindResp: presentityOptional,
	},
	AttrNonce: {
		colAllocateReq: presentityOptional, colAllocateResp: presentityOptional,
		colRefreshReq: presentityOptional, colRefreshResp: presentityOptional,
		colChannelBindReq: presentityOptional, colChannelBindResp: presentityOptional,
	},
	AttrXORRelayedAddress: {
		colAllocateResp: presentityMandatory,
	},
	AttrEvenPort: {
		colAllocateReq: presentityOptional,
	},
	AttrRequestedTransport: {
		colAllocateReq: presentityMandatory,
	},
	AttrDontFragment: {
		colAllocateReq: presentityOptional, colSendInd: presentityOptional,
	},
	AttrXORMappedAddress: {
		colBindingResp: presentityMandatory,
	},
	AttrReservationToken: {
		colAllocateReq: presentityOptional, colAllocateResp: presentityOptional,
	},
	AttrPriority: {
		colBindingReq: presentityMandatory,
	},
	AttrUseCandidate: {
		colBindingReq: presentityOptional,
	},
	AttrSoftware: {
		colBindingReq: presentityOptional, colBindingResp: presentityOptional, colBindingErr: presentityOptional,
		colAllocateReq: presentityOptional, colAllocateResp: presentityOptional,
		colRefreshReq: presentityOptional, colRefreshResp: presentityOptional,
		colChannelBindReq: presentityOptional, colChannelBindResp: presentityOptional,
		colSendInd: presentityOptional, colDataInd: presentityOptional,
	},
	AttrAlternateServer: {
		colBindingErr: presentityOptional,
	},
	AttrFingerprint: {
		colBindingReq: presentityOptional, colBindingResp: presentityOptional, colBindingErr: presentityOptional,
		colAllocateReq: presentityOptional, colAllocateResp: presentityOptional,
		colRefreshReq: presentityOptional, colRefreshResp: presentityOptional,
		colChannelBindReq: presentityOptional, colChannelBindResp: presentityOptional,
		colSendInd: presentityOptional, colDataInd: presentityOptional,
	},
	AttrIceControlled: {
		colBindingReq: presentityOptional,
	},
	AttrIceControlling: {
		colBindingReq: presentityOptional,
	},
}

// presentityFor looks up the presentity of attr for message type mt. An
// attribute or message type this package doesn't recognize is treated as
// Optional (permissive): only the explicit table entries above can reject
// or require an attribute.
func presentityFor(attr AttrType, mt MessageType) Presentity {
	col := messageColumn(mt)
	if col == colUnknown {
		return presentityOptional
	}
	row, ok := presentityTable[attr]
	if !ok {
		return presentityOptional
	}
	return row[col]
}

// allAttributeTypes lists every attribute index the presentity table
// knows about, used so validateForEncode (in strict mode) iterates over
// every index rather than stopping at REFLECTED-FROM, per spec.md §9's
// note that the source's truncated loop "looks like a bug".
var allAttributeTypes = []AttrType{
	AttrMappedAddress, AttrUsername, AttrMessageIntegrity, AttrErrorCode,
	AttrUnknownAttributes, AttrReflectedFrom, AttrChannelNumber, AttrLifetime,
	AttrXORPeerAddress, AttrData, AttrRealm, AttrNonce, AttrXORRelayedAddress,
	AttrEvenPort, AttrRequestedTransport, AttrDontFragment, AttrXORMappedAddress,
	AttrReservationToken, AttrPriority, AttrUseCandidate, AttrSoftware,
	AttrAlternateServer, AttrFingerprint, AttrIceControlled, AttrIceControlling,
}

// removeIfPresent deletes the attribute of type t from m, if any, rebuilding
// Raw without it. No-op if absent.
func (m *Message) removeIfPresent(t AttrType) {
	if idx := m.Attributes.indexOf(t); idx >= 0 {
		m.removeAttributeAt(idx)
	}
}

// prepareForEncode is Encode's preparation pass: any MESSAGE-INTEGRITY and
// FINGERPRINT already present are dropped (Encode decides which of them to
// add back, computed fresh, at the end of the attribute list), and SOFTWARE
// is synthesized if cfg asks for one and none is set yet.
func prepareForEncode(m *Message, cfg CodecConfig) error {
	m.removeIfPresent(AttrMessageIntegrity)
	m.removeIfPresent(AttrFingerprint)
	if cfg.AlwaysSoftware && !m.Attributes.Contains(AttrSoftware) {
		if err := NewSoftware(cfg.Software).AddTo(m); err != nil {
			return err
		}
	}
	return nil
}

// validateForEncode implements spec.md §4.2 step 2. In RFC 5389 mode (the
// default) it only rejects attributes the table marks N/A for m.Type,
// which AddAttribute already does at insertion time, so this is a
// best-effort re-check for attributes added via the lower-level Add.
// Mandatory-attribute enforcement (InvalidState) only runs when
// cfg.Compat3489 is set, per spec.md §6: "mandatory enforcement runs only
// in RFC 3489 compatibility mode."
func validateForEncode(m *Message, cfg CodecConfig) error {
	for _, a := range m.Attributes {
		if presentityFor(a.Type, m.Type) == presentityNA {
			return &IllegalAttribute{Attr: a.Type, MessageType: m.Type}
		}
	}
	if !cfg.Compat3489 {
		return nil
	}
	for _, attr := range allAttributeTypes {
		if presentityFor(attr, m.Type) == presentityMandatory && !m.Attributes.Contains(attr) {
			return &InvalidState{Attr: attr, MessageType: m.Type}
		}
	}
	return nil
}
