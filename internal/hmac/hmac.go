// Package hmac implements a zero-allocation-friendly HMAC, pooled by
// pool.go's AcquireSHA1/AcquireSHA256, for use by the stun package's
// MESSAGE-INTEGRITY computation (RFC 5389 §15.4). The construction is the
// standard FIPS 198 HMAC, the same one crypto/hmac.New implements; it is
// reimplemented here only so resetTo (pool.go) can reuse the inner/outer
// hash state across Sum calls instead of allocating a new hmac.Hash each
// time a message is signed or checked.
package hmac

import "hash"

type hmac struct {
	size      int
	blocksize int
	opad      []byte
	ipad      []byte
	outer     hash.Hash
	inner     hash.Hash
}

// New returns a new HMAC hash using the given hash.Hash constructor and
// key. It is the pool's building block; callers elsewhere should use
// AcquireSHA1/AcquireSHA256 instead of calling New directly.
func New(h func() hash.Hash, key []byte) hash.Hash {
	hm := &hmac{outer: h(), inner: h()}
	hm.size = hm.inner.Size()
	hm.blocksize = hm.inner.BlockSize()
	hm.ipad = make([]byte, hm.blocksize)
	hm.opad = make([]byte, hm.blocksize)
	hm.resetTo(key)
	return hm
}

func (h *hmac) Write(p []byte) (n int, err error) {
	return h.inner.Write(p)
}

func (h *hmac) Sum(in []byte) []byte {
	origLen := len(in)
	in = h.inner.Sum(in)
	h.outer.Reset()
	h.outer.Write(h.opad) //nolint:errcheck,gosec
	h.outer.Write(in[origLen:]) //nolint:errcheck,gosec
	return h.outer.Sum(in[:origLen])
}

func (h *hmac) Reset() {
	h.inner.Reset()
	h.inner.Write(h.ipad) //nolint:errcheck,gosec
}

func (h *hmac) Size() int { return h.size }

func (h *hmac) BlockSize() int { return h.blocksize }
