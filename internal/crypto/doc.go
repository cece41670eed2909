// Package crypto wraps the key algebra used by the wallet: Ed25519 key
// generation and signing, X25519 session pairs for DKG participation,
// public key hashing and address derivation, text encodings for keys and
// signatures, and the passphrase-sealed envelope protecting secret keys
// at rest.
package crypto
