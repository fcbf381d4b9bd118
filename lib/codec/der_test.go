package codec

import (
	"encoding/asn1"
	"errors"
	"math/big"
	"testing"

	"github.com/go-i2p/dsapkey/lib/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureRoundTrip(t *testing.T) {
	r := big.NewInt(9)
	s := big.NewInt(5)

	der, err := MarshalSignature(r, s)
	require.NoError(t, err)

	r2, s2, err := ParseSignature(der)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Cmp(r2))
	assert.Equal(t, 0, s.Cmp(s2))
}

func TestParseSignatureRejectsTrailingData(t *testing.T) {
	der, err := MarshalSignature(big.NewInt(9), big.NewInt(5))
	require.NoError(t, err)

	_, _, err = ParseSignature(append(der, 0x00))
	assert.True(t, errors.Is(err, types.ErrMalformedEncoding))

	_, _, err = ParseSignature(der[:len(der)-1])
	assert.True(t, errors.Is(err, types.ErrMalformedEncoding))
}

func TestPrivateKeyRoundTrip(t *testing.T) {
	der, err := MarshalPrivateKey(
		big.NewInt(23), big.NewInt(11), big.NewInt(4), big.NewInt(8), big.NewInt(7))
	require.NoError(t, err)

	comp, err := ParsePrivateKey(der)
	require.NoError(t, err)
	assert.Equal(t, int64(23), comp.P.Int64())
	assert.Equal(t, int64(11), comp.Q.Int64())
	assert.Equal(t, int64(4), comp.G.Int64())
	assert.Equal(t, int64(8), comp.Y.Int64())
	assert.Equal(t, int64(7), comp.X.Int64())
}

func TestLegacyPublicKeyRoundTrip(t *testing.T) {
	der, err := MarshalLegacyPublicKey(
		big.NewInt(23), big.NewInt(11), big.NewInt(4), big.NewInt(8))
	require.NoError(t, err)

	comp, err := ParseLegacyPublicKey(der)
	require.NoError(t, err)
	assert.Equal(t, int64(8), comp.Y.Int64())
	assert.Nil(t, comp.X)
}

func TestParametersRoundTrip(t *testing.T) {
	der, err := MarshalParameters(big.NewInt(23), big.NewInt(11), big.NewInt(4))
	require.NoError(t, err)

	comp, err := ParseParameters(der)
	require.NoError(t, err)
	assert.Equal(t, int64(23), comp.P.Int64())
	assert.Nil(t, comp.Y)
	assert.Nil(t, comp.X)
}

func TestSubjectPublicKeyInfoRoundTrip(t *testing.T) {
	der, err := MarshalSubjectPublicKeyInfo(
		big.NewInt(23), big.NewInt(11), big.NewInt(4), big.NewInt(8))
	require.NoError(t, err)

	comp, err := ParseSubjectPublicKeyInfo(der)
	require.NoError(t, err)
	assert.Equal(t, int64(23), comp.P.Int64())
	assert.Equal(t, int64(8), comp.Y.Int64())
	assert.Nil(t, comp.X)
}

func TestSubjectPublicKeyInfoWrongAlgorithm(t *testing.T) {
	// An RSA SubjectPublicKeyInfo must be reported as the wrong key type,
	// not coerced or treated as garbage.
	pubDER, err := asn1.Marshal(big.NewInt(0x10001))
	require.NoError(t, err)
	spki := subjectPublicKeyInfo{
		Algorithm: algorithmIdentifier{Algorithm: oidPublicKeyRSA},
		PublicKey: asn1.BitString{Bytes: pubDER, BitLength: len(pubDER) * 8},
	}
	der, err := asn1.Marshal(spki)
	require.NoError(t, err)

	_, err = ParseSubjectPublicKeyInfo(der)
	assert.True(t, errors.Is(err, types.ErrWrongKeyType))
}

func TestParsePKCS8PrivateKey(t *testing.T) {
	paramDER, err := asn1.Marshal(dsaParameters{
		P: big.NewInt(23), Q: big.NewInt(11), G: big.NewInt(4)})
	require.NoError(t, err)
	xDER, err := asn1.Marshal(big.NewInt(7))
	require.NoError(t, err)
	der, err := asn1.Marshal(pkcs8PrivateKey{
		Version: 0,
		Algo: algorithmIdentifier{
			Algorithm:  oidPublicKeyDSA,
			Parameters: asn1.RawValue{FullBytes: paramDER},
		},
		PrivateKey: xDER,
	})
	require.NoError(t, err)

	comp, err := ParsePKCS8PrivateKey(der)
	require.NoError(t, err)
	assert.Equal(t, int64(7), comp.X.Int64())
	assert.Nil(t, comp.Y, "PKCS#8 carries no public component")
}

func TestParsePKCS8WrongAlgorithm(t *testing.T) {
	der, err := asn1.Marshal(pkcs8PrivateKey{
		Version:    0,
		Algo:       algorithmIdentifier{Algorithm: oidPublicKeyECDSA},
		PrivateKey: []byte{0x02, 0x01, 0x07},
	})
	require.NoError(t, err)

	_, err = ParsePKCS8PrivateKey(der)
	assert.True(t, errors.Is(err, types.ErrWrongKeyType))
}

func TestParseRejectsSurplusSequenceElements(t *testing.T) {
	// encoding/asn1 drops surplus elements at the end of a SEQUENCE, so a
	// PKCS#1 RSA private key, nine integers, would otherwise pass as the
	// six-integer DSA private key form with garbage components.
	type nineIntegers struct {
		Version                   int
		N, E, D, P, Q, Dp, Dq, Qi *big.Int
	}
	rsaDER, err := asn1.Marshal(nineIntegers{
		Version: 0,
		N:       big.NewInt(3233), E: big.NewInt(17), D: big.NewInt(2753),
		P: big.NewInt(61), Q: big.NewInt(53),
		Dp: big.NewInt(53), Dq: big.NewInt(49), Qi: big.NewInt(38),
	})
	require.NoError(t, err)

	_, err = ParsePrivateKey(rsaDER)
	assert.True(t, errors.Is(err, types.ErrMalformedEncoding))
	_, err = ParseLegacyPublicKey(rsaDER)
	assert.True(t, errors.Is(err, types.ErrMalformedEncoding))
	_, err = ParseParameters(rsaDER)
	assert.True(t, errors.Is(err, types.ErrMalformedEncoding))
}

func TestParseParametersRejectsLegacyPublicKey(t *testing.T) {
	// The four-integer legacy public key form must not pass as bare
	// parameters with its pub_key silently dropped.
	der, err := MarshalLegacyPublicKey(
		big.NewInt(23), big.NewInt(11), big.NewInt(4), big.NewInt(8))
	require.NoError(t, err)

	_, err = ParseParameters(der)
	assert.True(t, errors.Is(err, types.ErrMalformedEncoding))

	// And the three-integer parameters form is not a legacy public key.
	der, err = MarshalParameters(big.NewInt(23), big.NewInt(11), big.NewInt(4))
	require.NoError(t, err)
	_, err = ParseLegacyPublicKey(der)
	assert.True(t, errors.Is(err, types.ErrMalformedEncoding))
}

func TestParseSignatureRejectsSurplusElements(t *testing.T) {
	der, err := asn1.Marshal(struct{ R, S, Extra *big.Int }{
		big.NewInt(9), big.NewInt(5), big.NewInt(1)})
	require.NoError(t, err)

	_, _, err = ParseSignature(der)
	assert.True(t, errors.Is(err, types.ErrMalformedEncoding))
}

func TestParseMalformedStructures(t *testing.T) {
	for _, parse := range []func([]byte) (*KeyComponents, error){
		ParsePrivateKey,
		ParseLegacyPublicKey,
		ParseParameters,
		ParseSubjectPublicKeyInfo,
		ParsePKCS8PrivateKey,
	} {
		_, err := parse([]byte{0x30, 0x03, 0x02, 0x01})
		assert.True(t, errors.Is(err, types.ErrMalformedEncoding))
	}
}
