package wallet

import (
	"genwallet/internal/crypto"
	"genwallet/internal/domain"
)

// Store is the serializable wallet state: alias-indexed keypairs and
// addresses, a public-key-hash index over the keypairs, and at most one
// validator key bundle. Keys and addresses share the alias namespace, so a
// single alias never refers to two live entries.
type Store struct {
	Keys      map[domain.Alias]domain.StoredKeypair
	Addresses map[domain.Alias]domain.Address
	Hashes    map[domain.PublicKeyHash]domain.Alias
	Validator *domain.ValidatorData
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		Keys:      make(map[domain.Alias]domain.StoredKeypair),
		Addresses: make(map[domain.Alias]domain.Address),
		Hashes:    make(map[domain.PublicKeyHash]domain.Alias),
	}
}

// AliasInUse reports whether alias is bound to a key or an address.
func (s *Store) AliasInUse(alias domain.Alias) bool {
	if _, ok := s.Keys[alias]; ok {
		return true
	}
	_, ok := s.Addresses[alias]
	return ok
}

// InsertKeypair binds kp (and its derived address and hash index) to alias.
// With force set, or when the alias is unused, it writes unconditionally.
// Otherwise the collision is adjudicated through prompter: Skip keeps the
// existing entry and reports stored=false, Replace overwrites it, and
// Reselect re-runs the whole insert path under the new alias. A reselected
// alias is not guaranteed to be free, so the loop may prompt again; it is
// iterative and unbounded by design. An empty alias is elicited from the
// prompter before anything else.
func (s *Store) InsertKeypair(
	prompter domain.Prompter,
	alias domain.Alias,
	kp domain.StoredKeypair,
	force bool,
) (domain.Alias, bool, error) {
	for {
		if alias == "" {
			raw, err := prompter.ReadAlias("the new key")
			if err != nil {
				return "", false, err
			}
			alias = domain.NormalizeAlias(raw)
			continue
		}
		if !force && s.AliasInUse(alias) {
			resp, err := prompter.ConfirmOverwrite(alias, "a key")
			if err != nil {
				return "", false, err
			}
			switch resp.Choice {
			case domain.ConfirmSkip:
				return "", false, nil
			case domain.ConfirmReselect:
				alias = resp.NewAlias
				continue
			case domain.ConfirmReplace:
			}
		}
		s.removeAlias(alias)
		s.Keys[alias] = kp
		s.Addresses[alias] = crypto.DeriveAddress(kp.Public)
		s.Hashes[crypto.HashPublicKey(kp.Public)] = alias
		return alias, true, nil
	}
}

// InsertAddress binds an address-only entry to alias, with the same
// conflict protocol as InsertKeypair.
func (s *Store) InsertAddress(
	prompter domain.Prompter,
	alias domain.Alias,
	addr domain.Address,
	force bool,
) (domain.Alias, bool, error) {
	for {
		if alias == "" {
			raw, err := prompter.ReadAlias("the new address")
			if err != nil {
				return "", false, err
			}
			alias = domain.NormalizeAlias(raw)
			continue
		}
		if !force && s.AliasInUse(alias) {
			resp, err := prompter.ConfirmOverwrite(alias, "an address")
			if err != nil {
				return "", false, err
			}
			switch resp.Choice {
			case domain.ConfirmSkip:
				return "", false, nil
			case domain.ConfirmReselect:
				alias = resp.NewAlias
				continue
			case domain.ConfirmReplace:
			}
		}
		s.removeAlias(alias)
		s.Addresses[alias] = addr
		return alias, true, nil
	}
}

// removeAlias drops any entry currently bound to alias, including its hash
// index, so a replace never leaves a stale index behind.
func (s *Store) removeAlias(alias domain.Alias) {
	if old, ok := s.Keys[alias]; ok {
		delete(s.Hashes, crypto.HashPublicKey(old.Public))
		delete(s.Keys, alias)
	}
	delete(s.Addresses, alias)
}
