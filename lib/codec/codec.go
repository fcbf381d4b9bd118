// Package codec implements the DER structures and PEM envelopes used to
// serialize DSA keys: the traditional OpenSSL private key SEQUENCE, the
// algorithm-specific legacy public key SEQUENCE, bare domain parameters,
// SubjectPublicKeyInfo, PKCS#8, and the SEQUENCE(r, s) signature form.
package codec

import (
	"encoding/asn1"

	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

var (
	oidPublicKeyRSA   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	oidPublicKeyDSA   = asn1.ObjectIdentifier{1, 2, 840, 10040, 4, 1}
	oidPublicKeyECDSA = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
)

// PEM block labels understood by this package.
const (
	PEMTypePrivateKey       = "DSA PRIVATE KEY"
	PEMTypeLegacyPublicKey  = "DSA PUBLIC KEY"
	PEMTypeParameters       = "DSA PARAMETERS"
	PEMTypeSubjectPublicKey = "PUBLIC KEY"
	PEMTypePKCS8PrivateKey  = "PRIVATE KEY"
)
