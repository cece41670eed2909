package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"genwallet/internal/domain"
)

// Generate returns a new signing key pair under the requested scheme.
// Only Ed25519 generation is wired; other schemes are rejected rather
// than faked.
func Generate(scheme domain.SchemeType) (priv domain.SecretKey, pub domain.PublicKey, err error) {
	if scheme != domain.SchemeEd25519 {
		return priv, pub, fmt.Errorf("unsupported signature scheme %q", scheme)
	}
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return priv, pub, err
	}
	copy(priv[:], sk)
	copy(pub[:], pk)
	return priv, pub, nil
}

// Sign signs msg with priv and returns the signature.
func Sign(priv domain.SecretKey, msg []byte) []byte {
	return ed25519.Sign(ed25519.PrivateKey(priv[:]), msg)
}

// Verify verifies sig over msg with pub.
func Verify(pub domain.PublicKey, msg, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig)
}
