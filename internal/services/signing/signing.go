// Package signing implements the genesis co-signer: given a bundle of
// unsigned genesis transactions, it signs each record with every key the
// invoking party holds, across the primary wallet, an optional validator
// pre-genesis wallet, and an optional hardware device. Records a party
// holds no key for are left unsigned without error, so independent
// signers can each run over the same bundle and merge results later.
package signing

import (
	"errors"
	"sync"

	"genwallet/internal/crypto"
	"genwallet/internal/domain"
	"genwallet/internal/genesis"
	"genwallet/internal/wallet"
)

// Signer co-signs transaction bundles. The primary wallet sits behind a
// readers-writer guard: resolving a key may decrypt interactively, which
// is a write-side operation from the wallet's point of view, while plain
// public key lookups take the read side.
type Signer struct {
	mu        sync.RWMutex
	primary   *wallet.Wallet
	validator *wallet.Wallet
	device    domain.DeviceSigner
}

// New builds a co-signer. validator and device may be nil.
func New(primary, validator *wallet.Wallet, device domain.DeviceSigner) *Signer {
	return &Signer{primary: primary, validator: validator, device: device}
}

// SignTxs signs every record of the bundle with every key this party can
// produce, in bundle order, and returns the augmented bundle. Signatures
// already present are kept; a key that resolves nowhere skips that record
// silently. Decryption failures and device failures abort the run.
func (s *Signer) SignTxs(list domain.BondList) (domain.BondList, error) {
	var devicePK *domain.PublicKey
	if s.device != nil {
		pk, err := s.device.PublicKey()
		if err != nil {
			return domain.BondList{}, err
		}
		devicePK = &pk
	}

	for i := range list.Bond {
		bond := &list.Bond[i]
		data, err := genesis.SignableBytes(*bond)
		if err != nil {
			return domain.BondList{}, err
		}
		for _, pk := range s.signatoryKeys(bond, devicePK) {
			sig, err := s.signWith(pk, data)
			if err != nil {
				return domain.BondList{}, err
			}
			if sig == nil {
				continue
			}
			genesis.AddSignature(bond, crypto.EncodePublicKey(pk), crypto.EncodeSignature(sig))
		}
	}
	return list, nil
}

// signatoryKeys derives the record's signature-worthy public keys: the
// keys the consulted wallets hold under the record's source alias, plus
// the device key when a device is attached.
func (s *Signer) signatoryKeys(bond *domain.Bond, devicePK *domain.PublicKey) []domain.PublicKey {
	alias := domain.NormalizeAlias(bond.Source)
	var out []domain.PublicKey
	seen := make(map[domain.PublicKey]bool)
	add := func(pk domain.PublicKey) {
		if !seen[pk] {
			seen[pk] = true
			out = append(out, pk)
		}
	}

	s.mu.RLock()
	if pk, ok := s.primary.PublicKey(alias); ok {
		add(pk)
	}
	s.mu.RUnlock()

	if s.validator != nil {
		if pk, ok := s.validator.PublicKey(alias); ok {
			add(pk)
		}
	}
	if devicePK != nil {
		add(*devicePK)
	}
	return out
}

// signWith produces a signature over data with the first source that
// yields a usable secret key for pk: primary wallet, then the validator
// wallet, then the device. A nil signature with nil error means no source
// holds the key.
func (s *Signer) signWith(pk domain.PublicKey, data []byte) ([]byte, error) {
	pkh := crypto.HashPublicKey(pk)

	s.mu.Lock()
	sk, err := s.primary.FindKeyByHash(pkh)
	s.mu.Unlock()
	if err == nil {
		return crypto.Sign(sk, data), nil
	}
	if !errors.Is(err, wallet.ErrKeyNotFound) {
		return nil, err
	}

	if s.validator != nil {
		sk, err = s.validator.FindKeyByHash(pkh)
		if err == nil {
			return crypto.Sign(sk, data), nil
		}
		if !errors.Is(err, wallet.ErrKeyNotFound) {
			return nil, err
		}
	}

	if s.device != nil {
		devicePK, err := s.device.PublicKey()
		if err != nil {
			return nil, err
		}
		if devicePK == pk {
			return s.device.Sign(data)
		}
	}
	return nil, nil
}
