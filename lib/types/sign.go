package types

// Signer produces DSA signatures over pre-hashed digests. Hashing the
// original message is the caller's job; SignHash treats the digest as an
// opaque byte string.
type Signer interface {
	// SignHash signs the digest h and returns the DER-encoded signature.
	// The encoded length varies; callers must use len(sig), never a fixed
	// buffer size.
	SignHash(h []byte) (sig []byte, err error)
}

// Verifier checks DSA signatures over pre-hashed digests.
type Verifier interface {
	// VerifyHash reports whether sig is a valid signature of the digest h.
	// A definite mismatch is (false, nil); a malformed signature encoding
	// or an arithmetic fault is (false, ErrVerify). The two are not the
	// same condition and are never folded together.
	VerifyHash(h, sig []byte) (valid bool, err error)
}
