// Package keyio loads and exports DSA keys in the two container encodings,
// PEM text and DER binary, covering the traditional private key form, the
// SubjectPublicKeyInfo and PKCS#8 forms, bare parameters and the legacy
// algorithm-specific public key form.
package keyio

import (
	"crypto/x509"
	"errors"

	"github.com/go-i2p/dsapkey/lib/codec"
	"github.com/go-i2p/dsapkey/lib/dsa"
	"github.com/go-i2p/dsapkey/lib/types"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

// Load parses data as any recognized PEM or DER encoding of a DSA key and
// returns the hydrated key. An encrypted private key PEM block is decrypted
// with passphrase; an absent passphrase never prompts, the attempt simply
// fails. Zero input bytes are the explicit "new empty key" path and return
// an empty key without touching any parser.
//
// A structure that parses but belongs to a different key algorithm is
// reported as ErrWrongKeyType. When nothing matches, the result is
// ErrNoKeyFound with no residual parser state attached.
func Load(data, passphrase []byte) (*dsa.DSAKey, error) {
	if len(data) == 0 {
		log.Debug("No input bytes, constructing empty DSA key")
		return dsa.New(), nil
	}

	if codec.LooksLikeDER(data) {
		return loadDER(data)
	}

	label, der, err := codec.DecodePEM(data, passphrase)
	if err != nil {
		if codec.LooksLikePEM(data) {
			// A genuine PEM block that would not decode, typically an
			// encrypted block without the right passphrase. Surfacing
			// the decode failure is more truthful than NoKeyFound.
			return nil, oops.Wrapf(err, "PEM block would not decode")
		}
		// Not PEM after all; fall back to the DER attempt sequence.
		return loadDER(data)
	}
	return loadPEMBlock(label, der)
}

// loadDER runs the ordered DER attempt sequence: the generic forms first
// (traditional private, PKCS#8, SubjectPublicKeyInfo, bare parameters),
// then the narrower legacy public key form as a last resort.
func loadDER(der []byte) (*dsa.DSAKey, error) {
	attempts := []func([]byte) (*codec.KeyComponents, error){
		codec.ParsePrivateKey,
		codec.ParsePKCS8PrivateKey,
		codec.ParseSubjectPublicKeyInfo,
		codec.ParseParameters,
		codec.ParseLegacyPublicKey,
	}
	for _, parse := range attempts {
		comp, err := parse(der)
		if err == nil {
			return keyFromComponents(comp)
		}
		if errors.Is(err, types.ErrWrongKeyType) {
			// A recognized structure of another algorithm family is a
			// definite failure, not a reason to keep probing.
			return nil, err
		}
	}
	if isForeignKeyDER(der) {
		log.Warn("DER structure belongs to a different key algorithm")
		return nil, oops.Wrap(types.ErrWrongKeyType)
	}
	log.Debug("No recognized DER key structure in input")
	return nil, oops.Wrap(types.ErrNoKeyFound)
}

// isForeignKeyDER recognizes the traditional key structures of other
// algorithm families (PKCS#1 RSA, SEC1 EC). Those carry no algorithm OID,
// so shape recognition is the only way to report them as a wrong key type
// instead of as no key at all.
func isForeignKeyDER(der []byte) bool {
	if _, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return true
	}
	if _, err := x509.ParsePKCS1PublicKey(der); err == nil {
		return true
	}
	if _, err := x509.ParseECPrivateKey(der); err == nil {
		return true
	}
	return false
}

// foreignKeyLabels are PEM labels of other key algorithm families. They
// parse fine elsewhere, but are never coerced into a DSA key.
var foreignKeyLabels = map[string]bool{
	"RSA PRIVATE KEY":     true,
	"RSA PUBLIC KEY":      true,
	"EC PRIVATE KEY":      true,
	"EC PUBLIC KEY":       true,
	"OPENSSH PRIVATE KEY": true,
}

func loadPEMBlock(label string, der []byte) (*dsa.DSAKey, error) {
	log.WithField("label", label).Debug("Loading PEM block")

	if foreignKeyLabels[label] {
		log.WithField("label", label).Warn("PEM block belongs to a different key algorithm")
		return nil, oops.With("label", label).Wrap(types.ErrWrongKeyType)
	}

	var comp *codec.KeyComponents
	var err error
	switch label {
	case codec.PEMTypePrivateKey:
		comp, err = codec.ParsePrivateKey(der)
	case codec.PEMTypePKCS8PrivateKey:
		comp, err = codec.ParsePKCS8PrivateKey(der)
	case codec.PEMTypeSubjectPublicKey:
		comp, err = codec.ParseSubjectPublicKeyInfo(der)
	case codec.PEMTypeParameters:
		comp, err = codec.ParseParameters(der)
	case codec.PEMTypeLegacyPublicKey:
		comp, err = codec.ParseLegacyPublicKey(der)
	default:
		err = types.ErrNoKeyFound
	}
	if err == nil {
		return keyFromComponents(comp)
	}
	if errors.Is(err, types.ErrWrongKeyType) {
		return nil, err
	}

	// Final fallback: the payload may still be the legacy public key
	// structure under an unexpected label.
	if comp, ferr := codec.ParseLegacyPublicKey(der); ferr == nil {
		return keyFromComponents(comp)
	}
	log.Debug("No recognized key structure in PEM payload")
	return nil, oops.With("label", label).Wrap(types.ErrNoKeyFound)
}

// keyFromComponents hydrates a DSAKey through its atomic setters. A PKCS#8
// key carries only the private component; SetKey derives pub_key there.
func keyFromComponents(c *codec.KeyComponents) (*dsa.DSAKey, error) {
	k := dsa.New()
	if c.P != nil || c.Q != nil || c.G != nil {
		if err := k.SetPQG(c.P, c.Q, c.G); err != nil {
			return nil, types.ErrMalformedEncoding
		}
	}
	if c.Y != nil || c.X != nil {
		if err := k.SetKey(c.Y, c.X); err != nil {
			return nil, types.ErrMalformedEncoding
		}
	}
	return k, nil
}
