package types

import "errors"

// Error taxonomy for DSA key handling. All operations report failure by
// returning one of these sentinels, either bare or wrapped with oops for
// context; callers discriminate with errors.Is. The sentinels are plain
// identity-comparable errors on purpose: an oops error matches any other
// oops error under errors.Is, so the match targets must not be oops
// values themselves. Nothing here is retried or recovered internally.
var (
	// ErrIncompleteKey means a required parameter (p, q, g) or key
	// component is missing for the requested operation.
	ErrIncompleteKey = errors.New("incomplete DSA key")

	// ErrNotPrivate means signing was attempted without private material.
	ErrNotPrivate = errors.New("private DSA key needed")

	// ErrWrongKeyType means the parsed structure belongs to a different
	// key algorithm. It is never silently coerced into a DSA key.
	ErrWrongKeyType = errors.New("incorrect pkey type")

	// ErrNoKeyFound means no recognized key structure was found in the
	// input bytes.
	ErrNoKeyFound = errors.New("neither PUB key nor PRIV key")

	// ErrMalformedEncoding means structurally invalid DER or PEM.
	ErrMalformedEncoding = errors.New("malformed DER or PEM encoding")

	// ErrSign means the signature computation failed in the underlying
	// arithmetic or encoding. No partial output is produced.
	ErrSign = errors.New("DSA signature computation failed")

	// ErrVerify means verification could not be performed, as opposed to
	// a definite "signature is invalid" result.
	ErrVerify = errors.New("DSA verification fault")

	// ErrExport means the key could not be serialized with the requested
	// options.
	ErrExport = errors.New("DSA key export failed")
)
