package dsa

import (
	"crypto/rand"
	"math/big"

	"github.com/go-i2p/dsapkey/lib/codec"
	"github.com/go-i2p/dsapkey/lib/types"
)

// Retry budget for degenerate r or s values before giving up. Anything
// beyond a couple of iterations indicates broken parameters, not bad luck.
const maxSignAttempts = 10

// DSASigner signs pre-computed digests with a private key.
type DSASigner struct {
	p, q, g *big.Int
	x       *big.Int
}

// NewSigner creates a signer for this key. The key must carry complete
// domain parameters and private material.
func (k *DSAKey) NewSigner() (types.Signer, error) {
	log.Debug("Creating new DSA signer")
	if !k.HasParameters() {
		log.Error("Cannot sign with incomplete DSA parameters")
		return nil, types.ErrIncompleteKey
	}
	if !k.IsPrivate() {
		log.Error("Signing requires a private DSA key")
		return nil, types.ErrNotPrivate
	}
	return &DSASigner{p: k.p, q: k.q, g: k.g, x: k.x}, nil
}

// Sign computes the DER-encoded DSA signature of digest. The digest is
// treated as opaque bytes; no hashing happens here. The encoded signature
// length is bounded by MaxSignatureLen but is usually shorter.
func (k *DSAKey) Sign(digest []byte) ([]byte, error) {
	s, err := k.NewSigner()
	if err != nil {
		return nil, err
	}
	return s.SignHash(digest)
}

// SignHash signs the digest h and returns the SEQUENCE(r, s) DER encoding.
func (ds *DSASigner) SignHash(h []byte) ([]byte, error) {
	log.WithField("hash_length", len(h)).Debug("Signing hash with DSA")

	// q must describe a usable subgroup before k can be drawn from it.
	if ds.q.Cmp(big.NewInt(2)) < 0 || ds.p.Sign() <= 0 {
		log.Error("Degenerate DSA parameters")
		return nil, types.ErrSign
	}

	z := digestToInt(h, ds.q)
	qMinusOne := new(big.Int).Sub(ds.q, big.NewInt(1))

	for attempt := 0; attempt < maxSignAttempts; attempt++ {
		n, err := rand.Int(rand.Reader, qMinusOne)
		if err != nil {
			log.WithError(err).Error("Failed to draw signature nonce")
			return nil, types.ErrSign
		}
		nonce := n.Add(n, big.NewInt(1)) // uniform in [1, q-1]

		kInv := new(big.Int).ModInverse(nonce, ds.q)
		if kInv == nil {
			continue
		}

		r := new(big.Int).Exp(ds.g, nonce, ds.p)
		r.Mod(r, ds.q)
		if r.Sign() == 0 {
			continue
		}

		s := new(big.Int).Mul(ds.x, r)
		s.Add(s, z)
		s.Mod(s, ds.q)
		s.Mul(s, kInv)
		s.Mod(s, ds.q)
		if s.Sign() == 0 {
			continue
		}

		sig, err := codec.MarshalSignature(r, s)
		if err != nil {
			return nil, err
		}
		log.WithField("sig_length", len(sig)).Debug("DSA signature created successfully")
		return sig, nil
	}

	log.Error("No valid DSA signature after retry budget")
	return nil, types.ErrSign
}

// MaxSignatureLen returns an upper bound on the DER-encoded signature
// length for this key's parameters. Actual signatures may be shorter;
// callers must use the returned slice length.
func (k *DSAKey) MaxSignatureLen() (int, error) {
	if k.q == nil {
		return 0, types.ErrIncompleteKey
	}
	sig, err := codec.MarshalSignature(k.q, k.q)
	if err != nil {
		return 0, err
	}
	return len(sig), nil
}

// digestToInt converts a digest to an integer per FIPS 186: the digest is
// left-truncated to the bit length of q.
func digestToInt(h []byte, q *big.Int) *big.Int {
	qBits := q.BitLen()
	qLen := (qBits + 7) / 8
	if len(h) > qLen {
		h = h[:qLen]
	}
	z := new(big.Int).SetBytes(h)
	if excess := len(h)*8 - qBits; excess > 0 {
		z.Rsh(z, uint(excess))
	}
	return z
}
