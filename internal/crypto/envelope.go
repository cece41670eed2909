package crypto

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"genwallet/internal/domain"
	"genwallet/internal/util/memzero"
)

const (
	KeyBytes   = 32
	SaltBytes  = 16
	NonceBytes = chacha20poly1305.NonceSize
)

// ErrDecryptionFailed is returned when the password is wrong or the
// ciphertext has been modified. It is distinct from "key not found": a
// failed decryption of an existing entry must never be reported as an
// absent key.
var ErrDecryptionFailed = errors.New("wrong password or corrupted key material")

// Argon2id parameters: 64 MiB, 3 passes, 4 lanes.
const (
	kdfTime    = 3
	kdfMemory  = 64 * 1024
	kdfThreads = 4
)

// deriveKEK derives a key-encryption key from a password and salt using
// Argon2id.
func deriveKEK(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, kdfTime, kdfMemory, kdfThreads, KeyBytes)
}

// SealSecret encrypts a secret key under a password-derived KEK.
func SealSecret(password string, secret domain.SecretKey) (domain.EncryptedSecret, error) {
	salt := make([]byte, SaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return domain.EncryptedSecret{}, err
	}
	kek := deriveKEK(password, salt)
	defer memzero.Zero(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return domain.EncryptedSecret{}, err
	}
	nonce := make([]byte, NonceBytes)
	if _, err := rand.Read(nonce); err != nil {
		return domain.EncryptedSecret{}, err
	}
	ct := aead.Seal(nil, nonce, secret.Slice(), nil)
	return domain.EncryptedSecret{Salt: salt, Nonce: nonce, Cipher: ct}, nil
}

// OpenSecret decrypts a sealed secret key. A wrong password yields
// ErrDecryptionFailed.
func OpenSecret(password string, enc domain.EncryptedSecret) (domain.SecretKey, error) {
	var secret domain.SecretKey
	if len(enc.Salt) != SaltBytes {
		return secret, errors.New("invalid salt size")
	}
	kek := deriveKEK(password, enc.Salt)
	defer memzero.Zero(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return secret, err
	}
	raw, err := aead.Open(nil, enc.Nonce, enc.Cipher, nil)
	if err != nil {
		return secret, ErrDecryptionFailed
	}
	if len(raw) != len(secret) {
		return secret, ErrDecryptionFailed
	}
	copy(secret[:], raw)
	memzero.Zero(raw)
	return secret, nil
}
