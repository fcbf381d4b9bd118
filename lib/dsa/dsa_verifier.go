package dsa

import (
	"math/big"

	"github.com/go-i2p/dsapkey/lib/codec"
	"github.com/go-i2p/dsapkey/lib/types"
	"github.com/go-i2p/logger"
)

// DSAVerifier checks signatures against pre-computed digests using public
// key material only; the private component is never consulted.
type DSAVerifier struct {
	p, q, g *big.Int
	y       *big.Int
}

// NewVerifier creates a verifier for this key. Complete domain parameters
// and the public component are required; private material is not.
func (k *DSAKey) NewVerifier() (types.Verifier, error) {
	log.Debug("Creating new DSA verifier")
	if !k.HasParameters() || k.y == nil {
		log.Error("Verification requires parameters and pub_key")
		return nil, types.ErrIncompleteKey
	}
	return &DSAVerifier{p: k.p, q: k.q, g: k.g, y: k.y}, nil
}

// Verify reports whether sig is a valid DER-encoded signature of digest.
// A cryptographically invalid signature is (false, nil); a malformed
// encoding or an arithmetic fault is reported as ErrVerify so callers can
// tell "invalid" apart from "could not verify".
func (k *DSAKey) Verify(digest, sig []byte) (bool, error) {
	v, err := k.NewVerifier()
	if err != nil {
		return false, err
	}
	return v.VerifyHash(digest, sig)
}

// VerifyHash checks the SEQUENCE(r, s) signature sig against the digest h.
func (dv *DSAVerifier) VerifyHash(h, sig []byte) (bool, error) {
	log.WithFields(logger.Fields{
		"hash_length": len(h),
		"sig_length":  len(sig),
	}).Debug("Verifying DSA signature")

	r, s, err := codec.ParseSignature(sig)
	if err != nil {
		log.WithError(err).Warn("Malformed DSA signature encoding")
		return false, types.ErrVerify
	}

	if dv.q.Sign() <= 0 || dv.p.Sign() <= 0 {
		log.Error("Degenerate DSA parameters")
		return false, types.ErrVerify
	}

	// Out-of-range r or s is a definite mismatch, not a fault.
	if r.Sign() <= 0 || r.Cmp(dv.q) >= 0 || s.Sign() <= 0 || s.Cmp(dv.q) >= 0 {
		log.Debug("DSA signature values out of range")
		return false, nil
	}

	w := new(big.Int).ModInverse(s, dv.q)
	if w == nil {
		log.Error("DSA signature s value not invertible")
		return false, types.ErrVerify
	}

	z := digestToInt(h, dv.q)
	u1 := new(big.Int).Mul(z, w)
	u1.Mod(u1, dv.q)
	u2 := new(big.Int).Mul(r, w)
	u2.Mod(u2, dv.q)

	v := new(big.Int).Exp(dv.g, u1, dv.p)
	y2 := new(big.Int).Exp(dv.y, u2, dv.p)
	v.Mul(v, y2)
	v.Mod(v, dv.p)
	v.Mod(v, dv.q)

	if v.Cmp(r) == 0 {
		log.Debug("DSA signature verified successfully")
		return true, nil
	}
	log.Debug("Invalid DSA signature")
	return false, nil
}
