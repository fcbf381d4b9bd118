package keyio

import (
	"bytes"

	"github.com/go-i2p/dsapkey/lib/codec"
	"github.com/go-i2p/dsapkey/lib/dsa"
	"github.com/go-i2p/dsapkey/lib/types"
	"golang.org/x/crypto/ssh"
)

// ExportDER serializes the key to its DER encoding. A private key uses the
// traditional private key structure, a public-only key the
// SubjectPublicKeyInfo structure. A key without complete parameters and a
// public component cannot be serialized.
func ExportDER(k *dsa.DSAKey) ([]byte, error) {
	if !k.HasParameters() || !k.IsPublic() {
		log.Error("Cannot export incomplete DSA key")
		return nil, types.ErrIncompleteKey
	}
	p, q, g := k.PQG()
	y, x := k.Key()
	if k.IsPrivate() {
		log.Debug("Exporting DSA private key as DER")
		return codec.MarshalPrivateKey(p, q, g, y, x)
	}
	log.Debug("Exporting DSA public key as SubjectPublicKeyInfo DER")
	return codec.MarshalSubjectPublicKeyInfo(p, q, g, y)
}

// ExportPEM serializes the key to PEM. The structure selection matches
// ExportDER. For a private key a cipher name and passphrase may be given to
// produce a DEK-Info encrypted block; for a public-only key there is no
// encryption envelope and both arguments are ignored.
func ExportPEM(k *dsa.DSAKey, cipherName string, passphrase []byte) ([]byte, error) {
	if !k.HasParameters() || !k.IsPublic() {
		log.Error("Cannot export incomplete DSA key")
		return nil, types.ErrIncompleteKey
	}
	p, q, g := k.PQG()
	y, x := k.Key()
	if k.IsPrivate() {
		der, err := codec.MarshalPrivateKey(p, q, g, y, x)
		if err != nil {
			return nil, err
		}
		return codec.EncodePEM(codec.PEMTypePrivateKey, der, cipherName, passphrase)
	}
	der, err := codec.MarshalSubjectPublicKeyInfo(p, q, g, y)
	if err != nil {
		return nil, err
	}
	return codec.EncodePEM(codec.PEMTypeSubjectPublicKey, der, "", nil)
}

// ExportOpenSSH renders the public half of the key as an OpenSSH
// authorized_keys line (ssh-dss), with an optional trailing comment.
func ExportOpenSSH(k *dsa.DSAKey, comment string) ([]byte, error) {
	pub, err := k.StdPublicKey()
	if err != nil {
		return nil, err
	}
	sshPub, err := ssh.NewPublicKey(pub)
	if err != nil {
		log.WithError(err).Error("Failed to build OpenSSH public key")
		return nil, types.ErrExport
	}
	line := ssh.MarshalAuthorizedKey(sshPub)
	if comment != "" {
		line = bytes.TrimRight(line, "\n")
		line = append(line, ' ')
		line = append(line, comment...)
		line = append(line, '\n')
	}
	return line, nil
}
