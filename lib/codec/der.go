package codec

import (
	"encoding/asn1"
	"math/big"

	"github.com/go-i2p/dsapkey/lib/types"
)

// KeyComponents is the neutral result of parsing any of the recognized DER
// key structures. Absent components are nil, never zero.
type KeyComponents struct {
	P, Q, G *big.Int
	Y       *big.Int
	X       *big.Int
}

// DSAPrivateKey ::= SEQUENCE { version, p, q, g, pub_key, priv_key }
// This is the traditional OpenSSL private key structure.
type dsaPrivateKey struct {
	Version int
	P       *big.Int
	Q       *big.Int
	G       *big.Int
	Pub     *big.Int
	Priv    *big.Int
}

// DSAPublicKey ::= SEQUENCE { p, q, g, pub_key }
// Algorithm-specific legacy form, distinct from SubjectPublicKeyInfo.
type dsaLegacyPublicKey struct {
	P   *big.Int
	Q   *big.Int
	G   *big.Int
	Pub *big.Int
}

// DSAParameters ::= SEQUENCE { p, q, g }
type dsaParameters struct {
	P *big.Int
	Q *big.Int
	G *big.Int
}

type algorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.RawValue `asn1:"optional"`
}

type subjectPublicKeyInfo struct {
	Algorithm algorithmIdentifier
	PublicKey asn1.BitString
}

type pkcs8PrivateKey struct {
	Version    int
	Algo       algorithmIdentifier
	PrivateKey []byte
}

type dsaSignature struct {
	R *big.Int
	S *big.Int
}

// unmarshalExact decodes der into val and rejects trailing bytes.
func unmarshalExact(der []byte, val interface{}) error {
	rest, err := asn1.Unmarshal(der, val)
	if err != nil {
		return types.ErrMalformedEncoding
	}
	if len(rest) != 0 {
		log.WithField("trailing_bytes", len(rest)).Debug("Rejecting DER with trailing data")
		return types.ErrMalformedEncoding
	}
	return nil
}

// sequenceElems counts the elements inside the outer DER SEQUENCE of der.
// Trailing bytes after the sequence are rejected here as well.
func sequenceElems(der []byte) (int, error) {
	var seq asn1.RawValue
	rest, err := asn1.Unmarshal(der, &seq)
	if err != nil || len(rest) != 0 ||
		seq.Class != asn1.ClassUniversal || seq.Tag != asn1.TagSequence || !seq.IsCompound {
		return 0, types.ErrMalformedEncoding
	}
	n := 0
	for inner := seq.Bytes; len(inner) > 0; n++ {
		var el asn1.RawValue
		inner, err = asn1.Unmarshal(inner, &el)
		if err != nil {
			return 0, types.ErrMalformedEncoding
		}
	}
	return n, nil
}

// unmarshalSequenceExact decodes a DER SEQUENCE into val and additionally
// requires the sequence to hold exactly want elements. encoding/asn1
// silently ignores surplus elements at the end of a SEQUENCE, which would
// let a longer foreign structure pass as a shorter DSA one.
func unmarshalSequenceExact(der []byte, val interface{}, want int) error {
	n, err := sequenceElems(der)
	if err != nil {
		return err
	}
	if n != want {
		log.WithField("elements", n).Debug("Rejecting DER sequence with unexpected element count")
		return types.ErrMalformedEncoding
	}
	return unmarshalExact(der, val)
}

// MarshalPrivateKey encodes the traditional DSA private key SEQUENCE.
func MarshalPrivateKey(p, q, g, y, x *big.Int) ([]byte, error) {
	der, err := asn1.Marshal(dsaPrivateKey{Version: 0, P: p, Q: q, G: g, Pub: y, Priv: x})
	if err != nil {
		log.WithError(err).Error("Failed to marshal DSA private key")
		return nil, types.ErrExport
	}
	return der, nil
}

// ParsePrivateKey decodes the traditional DSA private key SEQUENCE.
func ParsePrivateKey(der []byte) (*KeyComponents, error) {
	var k dsaPrivateKey
	if err := unmarshalSequenceExact(der, &k, 6); err != nil {
		return nil, err
	}
	return &KeyComponents{P: k.P, Q: k.Q, G: k.G, Y: k.Pub, X: k.Priv}, nil
}

// MarshalLegacyPublicKey encodes the algorithm-specific public key SEQUENCE.
func MarshalLegacyPublicKey(p, q, g, y *big.Int) ([]byte, error) {
	der, err := asn1.Marshal(dsaLegacyPublicKey{P: p, Q: q, G: g, Pub: y})
	if err != nil {
		log.WithError(err).Error("Failed to marshal legacy DSA public key")
		return nil, types.ErrExport
	}
	return der, nil
}

// ParseLegacyPublicKey decodes the algorithm-specific public key SEQUENCE.
func ParseLegacyPublicKey(der []byte) (*KeyComponents, error) {
	var k dsaLegacyPublicKey
	if err := unmarshalSequenceExact(der, &k, 4); err != nil {
		return nil, err
	}
	return &KeyComponents{P: k.P, Q: k.Q, G: k.G, Y: k.Pub}, nil
}

// MarshalParameters encodes bare domain parameters.
func MarshalParameters(p, q, g *big.Int) ([]byte, error) {
	der, err := asn1.Marshal(dsaParameters{P: p, Q: q, G: g})
	if err != nil {
		log.WithError(err).Error("Failed to marshal DSA parameters")
		return nil, types.ErrExport
	}
	return der, nil
}

// ParseParameters decodes bare domain parameters.
func ParseParameters(der []byte) (*KeyComponents, error) {
	var k dsaParameters
	if err := unmarshalSequenceExact(der, &k, 3); err != nil {
		return nil, err
	}
	return &KeyComponents{P: k.P, Q: k.Q, G: k.G}, nil
}

// MarshalSubjectPublicKeyInfo encodes a DSA public key in the standard
// SubjectPublicKeyInfo container: AlgorithmIdentifier(DSA, SEQUENCE p,q,g)
// plus the public key integer wrapped in a BIT STRING.
func MarshalSubjectPublicKeyInfo(p, q, g, y *big.Int) ([]byte, error) {
	paramDER, err := asn1.Marshal(dsaParameters{P: p, Q: q, G: g})
	if err != nil {
		log.WithError(err).Error("Failed to marshal SPKI algorithm parameters")
		return nil, types.ErrExport
	}
	pubDER, err := asn1.Marshal(y)
	if err != nil {
		log.WithError(err).Error("Failed to marshal SPKI public key integer")
		return nil, types.ErrExport
	}
	spki := subjectPublicKeyInfo{
		Algorithm: algorithmIdentifier{
			Algorithm:  oidPublicKeyDSA,
			Parameters: asn1.RawValue{FullBytes: paramDER},
		},
		PublicKey: asn1.BitString{Bytes: pubDER, BitLength: len(pubDER) * 8},
	}
	der, err := asn1.Marshal(spki)
	if err != nil {
		log.WithError(err).Error("Failed to marshal SubjectPublicKeyInfo")
		return nil, types.ErrExport
	}
	return der, nil
}

// ParseSubjectPublicKeyInfo decodes a SubjectPublicKeyInfo container. A
// structure carrying a non-DSA algorithm identifier is reported as
// ErrWrongKeyType, never coerced.
func ParseSubjectPublicKeyInfo(der []byte) (*KeyComponents, error) {
	var spki subjectPublicKeyInfo
	if err := unmarshalExact(der, &spki); err != nil {
		return nil, err
	}
	if !spki.Algorithm.Algorithm.Equal(oidPublicKeyDSA) {
		log.WithField("oid", spki.Algorithm.Algorithm.String()).Warn("SubjectPublicKeyInfo is not a DSA key")
		return nil, types.ErrWrongKeyType
	}
	var params dsaParameters
	if err := unmarshalSequenceExact(spki.Algorithm.Parameters.FullBytes, &params, 3); err != nil {
		return nil, err
	}
	y := new(big.Int)
	if err := unmarshalExact(spki.PublicKey.RightAlign(), &y); err != nil {
		return nil, err
	}
	return &KeyComponents{P: params.P, Q: params.Q, G: params.G, Y: y}, nil
}

// ParsePKCS8PrivateKey decodes an unencrypted PKCS#8 PrivateKeyInfo holding
// a DSA key: the domain parameters ride in the AlgorithmIdentifier and the
// private exponent is a DER INTEGER inside the OCTET STRING.
func ParsePKCS8PrivateKey(der []byte) (*KeyComponents, error) {
	var p8 pkcs8PrivateKey
	if err := unmarshalExact(der, &p8); err != nil {
		return nil, err
	}
	if !p8.Algo.Algorithm.Equal(oidPublicKeyDSA) {
		log.WithField("oid", p8.Algo.Algorithm.String()).Warn("PKCS#8 key is not a DSA key")
		return nil, types.ErrWrongKeyType
	}
	var params dsaParameters
	if err := unmarshalSequenceExact(p8.Algo.Parameters.FullBytes, &params, 3); err != nil {
		return nil, err
	}
	x := new(big.Int)
	if err := unmarshalExact(p8.PrivateKey, &x); err != nil {
		return nil, err
	}
	return &KeyComponents{P: params.P, Q: params.Q, G: params.G, X: x}, nil
}

// MarshalSignature encodes a signature as SEQUENCE(r INTEGER, s INTEGER).
func MarshalSignature(r, s *big.Int) ([]byte, error) {
	der, err := asn1.Marshal(dsaSignature{R: r, S: s})
	if err != nil {
		log.WithError(err).Error("Failed to marshal DSA signature")
		return nil, types.ErrSign
	}
	return der, nil
}

// ParseSignature decodes a SEQUENCE(r, s) signature. Trailing bytes and
// surplus sequence elements are rejected.
func ParseSignature(der []byte) (r, s *big.Int, err error) {
	var sig dsaSignature
	if err := unmarshalSequenceExact(der, &sig, 2); err != nil {
		return nil, nil, err
	}
	return sig.R, sig.S, nil
}
