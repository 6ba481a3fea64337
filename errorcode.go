package stun

import "fmt"

const (
	errorCodeHeaderLength    = 4
	errorCodeMaxReasonLength = 763
	errorCodeReasonStart     = 4
)

// ErrorCodeAttribute represents ERROR-CODE (RFC 5389 §15.6): a numeric
// class/number pair in [300,699] plus a UTF-8 reason phrase, used in error
// response messages.
type ErrorCodeAttribute struct {
	Class  byte // 3-6
	Number byte // 0-99
	Reason []byte
}

// Well-known ERROR-CODE values (RFC 5389 §15.6, RFC 5766 §14.8).
var (
	Err400BadRequest       = ErrorCodeAttribute{4, 0, []byte("Bad Request")}
	Err401Unauthorized     = ErrorCodeAttribute{4, 1, []byte("Unauthorized")}
	Err420UnknownAttribute = ErrorCodeAttribute{4, 20, []byte("Unknown Attribute")}
	Err437AllocMismatch    = ErrorCodeAttribute{4, 37, []byte("Allocation Mismatch")}
	Err438StaleNonce       = ErrorCodeAttribute{4, 38, []byte("Stale Nonce")}
	Err442UnsupportedXport = ErrorCodeAttribute{4, 42, []byte("Unsupported Transport Protocol")}
	Err500ServerError      = ErrorCodeAttribute{5, 0, []byte("Server Error")}
	Err508InsufficientCap  = ErrorCodeAttribute{5, 8, []byte("Insufficient Capacity")}
)

// Code returns the conventional three-digit error code (class*100+number).
func (e ErrorCodeAttribute) Code() int { return int(e.Class)*100 + int(e.Number) }

func (e ErrorCodeAttribute) String() string {
	return fmt.Sprintf("%d: %s", e.Code(), e.Reason)
}

// AddTo adds ERROR-CODE to m.
func (e ErrorCodeAttribute) AddTo(m *Message) error {
	if len(e.Reason) > errorCodeMaxReasonLength {
		return Error("ERROR-CODE reason phrase too long")
	}
	if e.Class < 3 || e.Class > 6 {
		return Error("ERROR-CODE class out of range [3, 6]")
	}
	v := make([]byte, errorCodeHeaderLength+len(e.Reason))
	v[2] = e.Class
	v[3] = e.Number
	copy(v[errorCodeReasonStart:], e.Reason)
	return m.AddAttribute(AttrErrorCode, v)
}

// GetFrom decodes ERROR-CODE from m.
func (e *ErrorCodeAttribute) GetFrom(m *Message) error {
	v, err := m.Get(AttrErrorCode)
	if err != nil {
		return err
	}
	if len(v) < errorCodeHeaderLength {
		return newMalformed("error-code", "length", "value shorter than 4-byte header")
	}
	e.Class = v[2]
	e.Number = v[3]
	e.Reason = append([]byte(nil), v[errorCodeReasonStart:]...)
	return nil
}
