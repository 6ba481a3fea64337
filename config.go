package stun

// CodecConfig is the small immutable value threaded into Message.Encode in
// place of the package-level mutable configuration the source reads from
// process-wide state (spec.md §9, "Global mutable configuration").
type CodecConfig struct {
	// Software, if AlwaysSoftware is set, is added as the SOFTWARE
	// attribute when encoding, unless the message already carries one.
	Software string
	// AlwaysSoftware mirrors the "stack.software" configuration option.
	AlwaysSoftware bool
	// AlwaysFingerprint mirrors the "stack.always_sign" configuration
	// option: every encoded message gets a FINGERPRINT, synthesized fresh
	// over the final bytes even if one was already present.
	AlwaysFingerprint bool
	// Integrity, if non-nil, signs every encoded message with
	// MESSAGE-INTEGRITY under this key, recomputed fresh each Encode call
	// (so it is always correct relative to whatever SOFTWARE/other
	// attributes were added during the same pass).
	Integrity MessageIntegrity
	// Compat3489 enables RFC 3489 compatibility mode: mandatory-attribute
	// enforcement from the presentity table runs at Encode time. Default
	// off, matching spec.md §1's "treat as external collaborators"/
	// "disabled flag" note; RFC 3489 compatibility is otherwise a Non-goal.
	Compat3489 bool
}

// DefaultCodecConfig returns the RFC 5389-mode default: no SOFTWARE or
// FINGERPRINT synthesis, no MESSAGE-INTEGRITY, mandatory-attribute
// enforcement off.
func DefaultCodecConfig() CodecConfig {
	return CodecConfig{}
}
