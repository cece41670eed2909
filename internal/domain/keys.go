package domain

import "fmt"

// ------------- Ed25519 -------------

type SecretKey [64]byte
type PublicKey [32]byte

func (k SecretKey) Slice() []byte { return k[:] }
func (k PublicKey) Slice() []byte { return k[:] }

// Public returns the public half embedded in an Ed25519 private key.
func (k SecretKey) Public() PublicKey {
	var out PublicKey
	copy(out[:], k[32:])
	return out
}

func MustSecretKey(b []byte) SecretKey {
	if len(b) != 64 {
		panic(fmt.Errorf("secret key: want 64 bytes, got %d", len(b)))
	}
	var out SecretKey
	copy(out[:], b)
	return out
}

func MustPublicKey(b []byte) PublicKey {
	if len(b) != 32 {
		panic(fmt.Errorf("public key: want 32 bytes, got %d", len(b)))
	}
	var out PublicKey
	copy(out[:], b)
	return out
}

// ------------- X25519 (DKG session) -------------

type X25519Private [32]byte
type X25519Public [32]byte

func (k X25519Private) Slice() []byte { return k[:] }
func (k X25519Public) Slice() []byte  { return k[:] }

// ------------- Scheme -------------

// SchemeType selects the signature scheme used when generating keys.
type SchemeType string

const (
	SchemeEd25519   SchemeType = "ed25519"
	SchemeSecp256k1 SchemeType = "secp256k1"
)
