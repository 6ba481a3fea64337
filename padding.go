package stun

// STUN aligns attributes on 32-bit boundaries: attributes whose content is
// not a multiple of 4 bytes are padded with 1-3 zero bytes so the next
// attribute starts on a 4-byte boundary. Padding bits are ignored on
// parse and are not counted in an attribute's own declared Length, but
// they are counted in the message's Length (spec.md §3).
const padding = 4

func nearestPaddedValueLength(l int) int {
	n := padding * (l / padding)
	if n < l {
		n += padding
	}
	return n
}
