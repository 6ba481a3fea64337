package hmac

import (
	"crypto/sha1" //nolint:gosec
	"crypto/sha256"
	"hash"
)

// hmacTest is one known-answer HMAC test vector.
type hmacTest struct {
	hash      func() hash.Hash
	key       []byte
	in        []byte
	out       string
	size      int
	blocksize int
}

// hmacTests returns known-answer HMAC-SHA1 and HMAC-SHA256 vectors (key
// "key" over the quick-brown-fox sentence), used by
// TestHMACReset and the pool acquire/release tests to confirm the pooled
// implementation matches crypto/hmac's output bit for bit.
func hmacTests() []hmacTest {
	return []hmacTest{
		{
			hash:      sha1.New,
			key:       []byte("key"),
			in:        []byte("The quick brown fox jumps over the lazy dog"),
			out:       "de7c9b85b8b78aa6bc8a7a36f70a90701c9db4d9",
			size:      sha1.Size,
			blocksize: sha1.BlockSize,
		},
		{
			hash:      sha256.New,
			key:       []byte("key"),
			in:        []byte("The quick brown fox jumps over the lazy dog"),
			out:       "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8",
			size:      sha256.Size,
			blocksize: sha256.BlockSize,
		},
	}
}

// assertHMACSize panics if h's size/blocksize don't match the expected
// values; used by tests to confirm the wrong pool was not handed back a
// mismatched hash instance.
func assertHMACSize(h *hmac, size, blocksize int) {
	if h.Size() != size || h.BlockSize() != blocksize {
		panic("hmac: size/blocksize mismatch")
	}
}
