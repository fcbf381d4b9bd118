package codec

import (
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"strings"

	"github.com/go-i2p/dsapkey/lib/types"
	"github.com/go-i2p/logger"
)

// pemCiphers maps DEK-Info cipher names to the ciphers usable for
// passphrase protection of traditional private key PEM blocks.
var pemCiphers = map[string]x509.PEMCipher{
	"DES-CBC":      x509.PEMCipherDES,
	"DES-EDE3-CBC": x509.PEMCipher3DES,
	"AES-128-CBC":  x509.PEMCipherAES128,
	"AES-192-CBC":  x509.PEMCipherAES192,
	"AES-256-CBC":  x509.PEMCipherAES256,
}

// CipherByName resolves a DEK-Info style cipher name, case-insensitively.
func CipherByName(name string) (x509.PEMCipher, error) {
	c, ok := pemCiphers[strings.ToUpper(name)]
	if !ok {
		log.WithField("cipher", name).Error("Unknown PEM cipher")
		return 0, types.ErrExport
	}
	return c, nil
}

// EncodePEM wraps der in a PEM block with the given label. When cipherName
// and passphrase are both given the block payload is encrypted and a
// DEK-Info header naming the cipher and IV is added.
func EncodePEM(label string, der []byte, cipherName string, passphrase []byte) ([]byte, error) {
	log.WithFields(logger.Fields{
		"label":     label,
		"encrypted": cipherName != "",
	}).Debug("Encoding PEM block")

	if cipherName == "" {
		return pem.EncodeToMemory(&pem.Block{Type: label, Bytes: der}), nil
	}
	cipher, err := CipherByName(cipherName)
	if err != nil {
		return nil, err
	}
	if len(passphrase) == 0 {
		log.Error("PEM cipher given without a passphrase")
		return nil, types.ErrExport
	}
	blk, err := x509.EncryptPEMBlock(rand.Reader, label, der, passphrase, cipher)
	if err != nil {
		log.WithError(err).Error("Failed to encrypt PEM block")
		return nil, types.ErrExport
	}
	return pem.EncodeToMemory(blk), nil
}

// DecodePEM extracts the first PEM block from data and returns its label
// and DER payload. Blocks carrying a DEK-Info header are decrypted with
// passphrase; an absent passphrase never triggers a prompt, the decode
// simply fails.
func DecodePEM(data, passphrase []byte) (label string, der []byte, err error) {
	blk, _ := pem.Decode(data)
	if blk == nil {
		return "", nil, types.ErrMalformedEncoding
	}
	if x509.IsEncryptedPEMBlock(blk) {
		log.WithField("label", blk.Type).Debug("Decrypting PEM block")
		if len(passphrase) == 0 {
			log.Warn("Encrypted PEM block but no passphrase supplied")
			return "", nil, types.ErrMalformedEncoding
		}
		der, err = x509.DecryptPEMBlock(blk, passphrase)
		if err != nil {
			log.WithError(err).Warn("PEM decryption failed")
			return "", nil, types.ErrMalformedEncoding
		}
		return blk.Type, der, nil
	}
	return blk.Type, blk.Bytes, nil
}

// LooksLikeDER reports whether data plausibly starts with a DER SEQUENCE,
// in which case PEM unwrapping can be skipped.
func LooksLikeDER(data []byte) bool {
	return len(data) > 0 && data[0] == 0x30
}

// LooksLikePEM reports whether data contains a PEM block at all, without
// attempting any decryption of its payload.
func LooksLikePEM(data []byte) bool {
	blk, _ := pem.Decode(data)
	return blk != nil
}
