package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"

	"genwallet/internal/domain"
)

const (
	// hashLen is the number of leading SHA-256 bytes kept as the public
	// key hash.
	hashLen = 20

	// addressPrefix marks addresses derived by this wallet.
	addressPrefix = "gw1"

	schemeTag = "ed25519"
)

// HashPublicKey returns the content-derived identifier of a public key:
// base58 of the first 20 bytes of its SHA-256 digest.
func HashPublicKey(pub domain.PublicKey) domain.PublicKeyHash {
	sum := sha256.Sum256(pub.Slice())
	return domain.PublicKeyHash(base58.Encode(sum[:hashLen]))
}

// DeriveAddress derives the account address for a public key.
func DeriveAddress(pub domain.PublicKey) domain.Address {
	return domain.Address(addressPrefix + string(HashPublicKey(pub)))
}

// EncodePublicKey renders a public key as "ed25519:<base58>".
func EncodePublicKey(pub domain.PublicKey) string {
	return schemeTag + ":" + base58.Encode(pub.Slice())
}

// ParsePublicKey parses the "ed25519:<base58>" form.
func ParsePublicKey(s string) (domain.PublicKey, error) {
	var pub domain.PublicKey
	alg, enc, ok := strings.Cut(s, ":")
	if !ok {
		return pub, errors.New("invalid public key encoding")
	}
	if alg != schemeTag {
		return pub, fmt.Errorf("unsupported public key scheme %q", alg)
	}
	raw, err := base58.Decode(enc)
	if err != nil {
		return pub, fmt.Errorf("invalid public key base58: %w", err)
	}
	if len(raw) != len(pub) {
		return pub, fmt.Errorf("public key: want %d bytes, got %d", len(pub), len(raw))
	}
	copy(pub[:], raw)
	return pub, nil
}

// EncodeSignature renders a signature as "ed25519:<base64>".
func EncodeSignature(sig []byte) string {
	return schemeTag + ":" + base64.StdEncoding.EncodeToString(sig)
}

// ParseSignature parses the "ed25519:<base64>" form.
func ParseSignature(s string) ([]byte, error) {
	alg, enc, ok := strings.Cut(s, ":")
	if !ok {
		return nil, errors.New("invalid signature encoding")
	}
	if alg != schemeTag {
		return nil, fmt.Errorf("unsupported signature scheme %q", alg)
	}
	raw, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return nil, fmt.Errorf("invalid signature base64: %w", err)
	}
	return raw, nil
}
