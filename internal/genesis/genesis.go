// Package genesis models the unsigned/signed genesis transaction bundle
// and its TOML interchange codec. Bundles are ordered; signing appends
// signatures and never drops or overwrites one already present.
package genesis

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"genwallet/internal/domain"
)

// ParseUnsigned decodes a transaction bundle from its TOML interchange
// form. A bundle that fails to parse is fatal for the whole operation.
func ParseUnsigned(data []byte) (domain.BondList, error) {
	var list domain.BondList
	if err := toml.Unmarshal(data, &list); err != nil {
		return domain.BondList{}, fmt.Errorf("parse transactions: %w", err)
	}
	return list, nil
}

// Serialize encodes a bundle back to TOML, preserving record order.
func Serialize(list domain.BondList) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(list); err != nil {
		return nil, fmt.Errorf("serialize transactions: %w", err)
	}
	return buf.Bytes(), nil
}

// signableBond is the portion of a record covered by signatures. The
// accumulated signatures themselves are excluded so that every co-signer
// signs the same bytes regardless of who signed first.
type signableBond struct {
	Source    string `toml:"source"`
	Validator string `toml:"validator"`
	Amount    string `toml:"amount"`
}

// SignableBytes returns the canonical bytes of a record that signatures
// cover.
func SignableBytes(b domain.Bond) ([]byte, error) {
	var buf bytes.Buffer
	sb := signableBond{Source: b.Source, Validator: b.Validator, Amount: b.Amount}
	if err := toml.NewEncoder(&buf).Encode(sb); err != nil {
		return nil, fmt.Errorf("serialize transaction for signing: %w", err)
	}
	return buf.Bytes(), nil
}

// AddSignature records sig under the signing key. An existing signature
// from the same key is kept untouched, so repeated runs with the same
// wallet do not duplicate and merges are a plain union.
func AddSignature(b *domain.Bond, pubKey, sig string) {
	if b.Signatures == nil {
		b.Signatures = make(map[string]string)
	}
	if _, ok := b.Signatures[pubKey]; ok {
		return
	}
	b.Signatures[pubKey] = sig
}
