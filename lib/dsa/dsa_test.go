package dsa

import (
	"errors"
	"math/big"
	"testing"

	"github.com/go-i2p/dsapkey/lib/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Small textbook group used across the package tests: g=4 has order 11 in
// the multiplicative group mod 23, and 4^7 mod 23 = 8.
func testGroup() (p, q, g *big.Int) {
	return big.NewInt(23), big.NewInt(11), big.NewInt(4)
}

func testPrivateKey(t *testing.T) *DSAKey {
	t.Helper()
	p, q, g := testGroup()
	k := New()
	require.NoError(t, k.SetPQG(p, q, g))
	require.NoError(t, k.SetKey(nil, big.NewInt(7)))
	return k
}

func TestNewKeyIsEmpty(t *testing.T) {
	k := New()
	assert.False(t, k.IsPublic())
	assert.False(t, k.IsPrivate())
	assert.False(t, k.HasParameters())
	p, q, g := k.PQG()
	assert.Nil(t, p)
	assert.Nil(t, q)
	assert.Nil(t, g)
}

func TestSetPQGRequiresAllThree(t *testing.T) {
	k := New()
	err := k.SetPQG(big.NewInt(23), nil, big.NewInt(4))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrIncompleteKey))

	// A failed set must leave the key untouched.
	assert.False(t, k.HasParameters())
	assert.Nil(t, k.P())
}

func TestSetKeyDerivesPublicFromPrivate(t *testing.T) {
	k := testPrivateKey(t)
	assert.True(t, k.IsPrivate())
	assert.True(t, k.IsPublic())

	pub, priv := k.Key()
	assert.Equal(t, int64(8), pub.Int64(), "pub_key must be g^x mod p")
	assert.Equal(t, int64(7), priv.Int64())
}

func TestSetKeyPrivateWithoutParameters(t *testing.T) {
	k := New()
	err := k.SetKey(nil, big.NewInt(7))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrIncompleteKey))
	assert.False(t, k.IsPrivate())
	assert.False(t, k.IsPublic())
}

func TestSetKeyRequiresPublicComponent(t *testing.T) {
	k := New()
	err := k.SetKey(nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrIncompleteKey))
}

func TestSetKeyKeepsExplicitPublic(t *testing.T) {
	p, q, g := testGroup()
	k := New()
	require.NoError(t, k.SetPQG(p, q, g))
	// An explicitly supplied pub_key is not re-derived.
	require.NoError(t, k.SetKey(big.NewInt(9), big.NewInt(7)))
	pub, _ := k.Key()
	assert.Equal(t, int64(9), pub.Int64())
}

func TestIsPrivateAsserted(t *testing.T) {
	k := New()
	assert.False(t, k.IsPrivateAsserted(false))
	assert.True(t, k.IsPrivateAsserted(true), "context assertion overrides detection")

	k = testPrivateKey(t)
	assert.True(t, k.IsPrivateAsserted(false))
}

func TestParamsMapHasAllFiveNames(t *testing.T) {
	k := New()
	m := k.Params()
	require.Len(t, m, 5)
	for _, name := range []string{"p", "q", "g", "pub_key", "priv_key"} {
		val, ok := m[name]
		assert.True(t, ok, "name %q must be present even when absent", name)
		assert.Nil(t, val)
	}

	k = testPrivateKey(t)
	m = k.Params()
	assert.Equal(t, int64(23), m["p"].Int64())
	assert.Equal(t, int64(11), m["q"].Int64())
	assert.Equal(t, int64(4), m["g"].Int64())
	assert.Equal(t, int64(8), m["pub_key"].Int64())
	assert.Equal(t, int64(7), m["priv_key"].Int64())
}

func TestCopyIsDeep(t *testing.T) {
	k := testPrivateKey(t)
	dup := k.Copy()

	require.Equal(t, 0, k.P().Cmp(dup.P()))
	require.Equal(t, 0, k.PrivKey().Cmp(dup.PrivKey()))

	// Mutating the copy's values must not reach the original.
	dup.P().Add(dup.P(), big.NewInt(2))
	assert.Equal(t, int64(23), k.P().Int64())
}

func TestCopyOfEmptyKey(t *testing.T) {
	dup := New().Copy()
	assert.False(t, dup.HasParameters())
	assert.False(t, dup.IsPublic())
	assert.False(t, dup.IsPrivate())
}

func TestStdKeyBridge(t *testing.T) {
	k := testPrivateKey(t)

	pub, err := k.StdPublicKey()
	require.NoError(t, err)
	assert.Equal(t, int64(8), pub.Y.Int64())

	priv, err := k.StdPrivateKey()
	require.NoError(t, err)
	assert.Equal(t, int64(7), priv.X.Int64())

	back, err := FromStdPrivateKey(priv)
	require.NoError(t, err)
	assert.Equal(t, 0, back.PubKey().Cmp(k.PubKey()))

	empty := New()
	_, err = empty.StdPublicKey()
	assert.True(t, errors.Is(err, types.ErrIncompleteKey))
	_, err = empty.StdPrivateKey()
	assert.True(t, errors.Is(err, types.ErrNotPrivate))
}
