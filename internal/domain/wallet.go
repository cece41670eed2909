package domain

import "strings"

// Alias is an operator-chosen name for a key or address entry. Keys and
// addresses share one alias namespace per store.
type Alias string

// NormalizeAlias lowercases and trims an operator-supplied alias.
func NormalizeAlias(s string) Alias {
	return Alias(strings.ToLower(strings.TrimSpace(s)))
}

// Address is the account address derived from a public key.
type Address string

// PublicKeyHash is the content-derived identifier of a public key, used to
// index aliases by key material.
type PublicKeyHash string

// EncryptedSecret is a passphrase-sealed secret key: argon2id parameters
// plus the AEAD ciphertext.
type EncryptedSecret struct {
	Salt   []byte
	Nonce  []byte
	Cipher []byte
}

// StoredKeypair is an aliased keypair entry. Exactly one of Secret and
// Encrypted is set: Secret for plain entries, Encrypted for entries sealed
// with a password.
type StoredKeypair struct {
	Public    PublicKey
	Secret    *SecretKey
	Encrypted *EncryptedSecret
}

// IsEncrypted reports whether the secret half is passphrase-sealed.
func (k StoredKeypair) IsEncrypted() bool { return k.Encrypted != nil }

// ValidatorKeys is the role-specific key bundle of a validator identity:
// a protocol keypair, an Ethereum-bridge keypair, and the session keypair
// used for distributed-key-generation participation.
type ValidatorKeys struct {
	Protocol  StoredKeypair
	EthBridge StoredKeypair

	DKGSessionPriv X25519Private
	DKGSessionPub  X25519Public

	Scheme SchemeType
}

// ValidatorData ties a validator address to its key bundle. A wallet holds
// at most one.
type ValidatorData struct {
	Address Address
	Keys    ValidatorKeys
}

// ------------- Conflict resolution -------------

// ConfirmationChoice is the operator's decision for an alias collision.
type ConfirmationChoice int

const (
	// ConfirmSkip aborts the insert and keeps the existing entry.
	ConfirmSkip ConfirmationChoice = iota
	// ConfirmReplace overwrites the existing entry.
	ConfirmReplace
	// ConfirmReselect aborts this insert; the caller must retry under
	// NewAlias, which may itself collide.
	ConfirmReselect
)

// ConfirmationResponse is the outcome of one alias-collision prompt. It is
// consumed exactly once by the insert that triggered the collision.
type ConfirmationResponse struct {
	Choice   ConfirmationChoice
	NewAlias Alias
}
