package wallet

import (
	"errors"

	"genwallet/internal/crypto"
	"genwallet/internal/domain"
)

// ErrKeyNotFound is returned when no resolution path produced a usable
// secret key for the requested public key. It is an ordinary result value:
// callers decide whether to skip or abort.
var ErrKeyNotFound = errors.New("no matching key found")

// ExtractKeyFn picks one keypair out of a validator key bundle, e.g. the
// protocol or the eth-bridge keypair.
type ExtractKeyFn func(domain.ValidatorData) domain.StoredKeypair

// ExtractProtocolKey selects the protocol keypair.
func ExtractProtocolKey(d domain.ValidatorData) domain.StoredKeypair {
	return d.Keys.Protocol
}

// ExtractEthBridgeKey selects the Ethereum-bridge keypair.
func ExtractEthBridgeKey(d domain.ValidatorData) domain.StoredKeypair {
	return d.Keys.EthBridge
}

// Wallet is the aggregate over one store: it owns the alias maps and the
// optional validator data, and resolves secret keys, decrypting sealed
// entries through the password policy. It is loaded from (or created
// empty for) a store directory, mutated in memory, and persisted only on
// an explicit save.
type Wallet struct {
	dir      string
	store    *Store
	prompter domain.Prompter
	pass     domain.PassphraseReader
}

// New wraps a store loaded from dir.
func New(dir string, store *Store, prompter domain.Prompter, pass domain.PassphraseReader) *Wallet {
	return &Wallet{dir: dir, store: store, prompter: prompter, pass: pass}
}

// Dir returns the store directory this wallet was loaded from.
func (w *Wallet) Dir() string { return w.dir }

// Store exposes the serializable state for persistence.
func (w *Wallet) Store() *Store { return w.store }

// Prompter returns the interactive front-end the wallet was built with.
func (w *Wallet) Prompter() domain.Prompter { return w.prompter }

// ValidatorData returns the validator key bundle, if any.
func (w *Wallet) ValidatorData() *domain.ValidatorData { return w.store.Validator }

// SetValidatorData installs the validator key bundle. A wallet holds at
// most one; any previous bundle is replaced.
func (w *Wallet) SetValidatorData(d domain.ValidatorData) {
	w.store.Validator = &d
}

// PublicKey returns the public key aliased directly in the store.
func (w *Wallet) PublicKey(alias domain.Alias) (domain.PublicKey, bool) {
	kp, ok := w.store.Keys[alias]
	if !ok {
		return domain.PublicKey{}, false
	}
	return kp.Public, true
}

// Address returns the address bound to alias.
func (w *Wallet) Address(alias domain.Alias) (domain.Address, bool) {
	addr, ok := w.store.Addresses[alias]
	return addr, ok
}

// FindKeyByHash returns the secret key whose public key hashes to pkh.
// Sealed entries are decrypted with a password from the policy; a failed
// decryption is reported as such, never as an absent key.
func (w *Wallet) FindKeyByHash(pkh domain.PublicKeyHash) (domain.SecretKey, error) {
	alias, ok := w.store.Hashes[pkh]
	if !ok {
		return domain.SecretKey{}, ErrKeyNotFound
	}
	return w.FindKey(alias)
}

// FindKey returns the secret key aliased in the store, decrypting it if
// sealed.
func (w *Wallet) FindKey(alias domain.Alias) (domain.SecretKey, error) {
	kp, ok := w.store.Keys[alias]
	if !ok {
		return domain.SecretKey{}, ErrKeyNotFound
	}
	return w.unseal(kp)
}

// ResolveSecret finds a usable secret key for an optionally requested
// public key. With no key requested it resolves to nothing. A direct store
// hit (by public key hash) wins; on a miss the validator key bundle, if
// present, is consulted through extract.
//
// Known limitation, preserved for compatibility with observed behavior:
// the validator-data fallback does not verify that the extracted key's
// public key equals the requested one. A caller holding validator data but
// asking for an unrelated key receives the extracted key without error.
func (w *Wallet) ResolveSecret(maybePK *domain.PublicKey, extract ExtractKeyFn) (*domain.SecretKey, error) {
	if maybePK == nil {
		return nil, nil
	}
	sk, err := w.FindKeyByHash(crypto.HashPublicKey(*maybePK))
	if err == nil {
		return &sk, nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return nil, err
	}
	if w.store.Validator == nil {
		return nil, ErrKeyNotFound
	}
	sk, err = w.unseal(extract(*w.store.Validator))
	if err != nil {
		return nil, err
	}
	return &sk, nil
}

// unseal returns the plain secret of a stored keypair, reading a password
// through the policy when the entry is encrypted.
func (w *Wallet) unseal(kp domain.StoredKeypair) (domain.SecretKey, error) {
	if !kp.IsEncrypted() {
		if kp.Secret == nil {
			return domain.SecretKey{}, ErrKeyNotFound
		}
		return *kp.Secret, nil
	}
	pwd, err := w.pass.Read("Enter your decryption password: ")
	if err != nil {
		return domain.SecretKey{}, err
	}
	return crypto.OpenSecret(pwd, *kp.Encrypted)
}
