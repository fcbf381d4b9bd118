// Package dsa implements the DSA key entity: domain parameters (p, q, g),
// key material (public y, optional private x), and signing/verification
// over pre-computed digests. Parsing and serialization live in lib/keyio;
// this package owns the key's state machine and arithmetic.
package dsa

import (
	"math/big"

	"github.com/go-i2p/dsapkey/lib/types"
	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// DSAKey holds DSA domain parameters and key material. All five components
// are optional; absent components are nil, never zero. A DSAKey is mutable
// state exclusively owned by one caller; it performs no locking of its own.
// No secure-wipe of key material is performed on reclamation.
type DSAKey struct {
	p, q, g *big.Int
	y       *big.Int
	x       *big.Int
}

// New creates an empty key with no parameters and no key material. It is
// populated through SetPQG and SetKey.
func New() *DSAKey {
	return &DSAKey{}
}

// SetPQG replaces the domain parameter triple atomically. All three values
// are required; on failure the key is left untouched.
func (k *DSAKey) SetPQG(p, q, g *big.Int) error {
	if p == nil || q == nil || g == nil {
		log.Error("SetPQG requires all of p, q and g")
		return types.ErrIncompleteKey
	}
	k.p, k.q, k.g = p, q, g
	return nil
}

// SetKey replaces the key material pair atomically. The public component is
// required unless it can be derived: when only private material is given
// and the domain parameters are complete, y is computed as g^x mod p. On
// failure the key is left untouched.
func (k *DSAKey) SetKey(pub, priv *big.Int) error {
	if pub == nil && priv != nil {
		if !k.HasParameters() {
			log.Error("Cannot derive pub_key without domain parameters")
			return types.ErrIncompleteKey
		}
		pub = new(big.Int).Exp(k.g, priv, k.p)
		log.Debug("Derived DSA public key from private component")
	}
	if pub == nil {
		log.Error("SetKey requires a public component")
		return types.ErrIncompleteKey
	}
	k.y, k.x = pub, priv
	return nil
}

// PQG returns the domain parameters. Absent parameters are nil.
func (k *DSAKey) PQG() (p, q, g *big.Int) {
	return k.p, k.q, k.g
}

// Key returns the key material. Absent components are nil.
func (k *DSAKey) Key() (pub, priv *big.Int) {
	return k.y, k.x
}

// P returns the prime modulus, or nil.
func (k *DSAKey) P() *big.Int { return k.p }

// Q returns the subgroup order, or nil.
func (k *DSAKey) Q() *big.Int { return k.q }

// G returns the generator, or nil.
func (k *DSAKey) G() *big.Int { return k.g }

// PubKey returns the public key value y, or nil.
func (k *DSAKey) PubKey() *big.Int { return k.y }

// PrivKey returns the private key value x, or nil.
func (k *DSAKey) PrivKey() *big.Int { return k.x }

// HasParameters reports whether the full p, q, g triple is present.
func (k *DSAKey) HasParameters() bool {
	return k.p != nil && k.q != nil && k.g != nil
}

// IsPublic reports whether the public key component is present.
func (k *DSAKey) IsPublic() bool {
	return k.y != nil
}

// IsPrivate reports whether the private key component is present.
func (k *DSAKey) IsPrivate() bool {
	return k.x != nil
}

// IsPrivateAsserted is IsPrivate with an explicit context override: some
// construction paths know a key is private before its components are
// individually confirmed, and assert that knowledge here.
func (k *DSAKey) IsPrivateAsserted(assertPrivate bool) bool {
	return assertPrivate || k.x != nil
}

// Copy returns a deep duplicate of the key; the two keys share no big.Int
// values afterwards.
func (k *DSAKey) Copy() *DSAKey {
	dup := func(n *big.Int) *big.Int {
		if n == nil {
			return nil
		}
		return new(big.Int).Set(n)
	}
	return &DSAKey{
		p: dup(k.p),
		q: dup(k.q),
		g: dup(k.g),
		y: dup(k.y),
		x: dup(k.x),
	}
}

// Params returns all five key components keyed by their conventional names.
// Absent components map to nil; no name is ever omitted.
//
// INSECURE: the map exposes priv_key. It exists for trusted debugging and
// inspection contexts only.
func (k *DSAKey) Params() map[string]*big.Int {
	log.Warn("Exporting DSA key components including private material")
	return map[string]*big.Int{
		"p":        k.p,
		"q":        k.q,
		"g":        k.g,
		"pub_key":  k.y,
		"priv_key": k.x,
	}
}
