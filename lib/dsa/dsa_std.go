package dsa

import (
	stddsa "crypto/dsa"

	"github.com/go-i2p/dsapkey/lib/types"
)

// StdPublicKey converts the key's public half to the standard library
// representation so it can feed APIs built around crypto/dsa types.
func (k *DSAKey) StdPublicKey() (*stddsa.PublicKey, error) {
	if !k.HasParameters() || k.y == nil {
		return nil, types.ErrIncompleteKey
	}
	return &stddsa.PublicKey{
		Parameters: stddsa.Parameters{P: k.p, Q: k.q, G: k.g},
		Y:          k.y,
	}, nil
}

// StdPrivateKey converts a private key to the standard library
// representation.
func (k *DSAKey) StdPrivateKey() (*stddsa.PrivateKey, error) {
	if !k.IsPrivate() {
		return nil, types.ErrNotPrivate
	}
	pub, err := k.StdPublicKey()
	if err != nil {
		return nil, err
	}
	return &stddsa.PrivateKey{PublicKey: *pub, X: k.x}, nil
}

// FromStdPrivateKey builds a DSAKey from a standard library private key.
func FromStdPrivateKey(priv *stddsa.PrivateKey) (*DSAKey, error) {
	k := New()
	if err := k.SetPQG(priv.P, priv.Q, priv.G); err != nil {
		return nil, err
	}
	if err := k.SetKey(priv.Y, priv.X); err != nil {
		return nil, err
	}
	return k, nil
}

// FromStdPublicKey builds a DSAKey from a standard library public key.
func FromStdPublicKey(pub *stddsa.PublicKey) (*DSAKey, error) {
	k := New()
	if err := k.SetPQG(pub.P, pub.Q, pub.G); err != nil {
		return nil, err
	}
	if err := k.SetKey(pub.Y, nil); err != nil {
		return nil, err
	}
	return k, nil
}
