// Package provision builds complete validator key bundles, reusing keys
// the wallet already holds and generating the rest. Nothing is persisted
// here: the caller saves the wallet so freshly generated keys are not
// lost.
package provision

import (
	"genwallet/internal/crypto"
	"genwallet/internal/domain"
	"genwallet/internal/wallet"
)

// GenValidatorKeys produces the validator key bundle for the requested
// scheme. When a public key is supplied for the protocol or eth-bridge
// role, the wallet is asked to resolve it first (directly aliased keys
// win, then the current validator bundle via the role's extraction rule);
// a supplied key that resolves nowhere propagates wallet.ErrKeyNotFound.
// Roles with no supplied key are freshly generated. The DKG session pair
// is always fresh.
func GenValidatorKeys(
	w *wallet.Wallet,
	ethBridgePK *domain.PublicKey,
	protocolPK *domain.PublicKey,
	scheme domain.SchemeType,
) (domain.ValidatorKeys, error) {
	protocol, err := resolveOrGenerate(w, protocolPK, wallet.ExtractProtocolKey, scheme)
	if err != nil {
		return domain.ValidatorKeys{}, err
	}
	ethBridge, err := resolveOrGenerate(w, ethBridgePK, wallet.ExtractEthBridgeKey, scheme)
	if err != nil {
		return domain.ValidatorKeys{}, err
	}
	dkgPriv, dkgPub, err := crypto.GenerateX25519()
	if err != nil {
		return domain.ValidatorKeys{}, err
	}
	return domain.ValidatorKeys{
		Protocol:       protocol,
		EthBridge:      ethBridge,
		DKGSessionPriv: dkgPriv,
		DKGSessionPub:  dkgPub,
		Scheme:         scheme,
	}, nil
}

func resolveOrGenerate(
	w *wallet.Wallet,
	maybePK *domain.PublicKey,
	extract wallet.ExtractKeyFn,
	scheme domain.SchemeType,
) (domain.StoredKeypair, error) {
	sk, err := w.ResolveSecret(maybePK, extract)
	if err != nil {
		return domain.StoredKeypair{}, err
	}
	if sk != nil {
		return domain.StoredKeypair{Public: sk.Public(), Secret: sk}, nil
	}
	priv, pub, err := crypto.Generate(scheme)
	if err != nil {
		return domain.StoredKeypair{}, err
	}
	return domain.StoredKeypair{Public: pub, Secret: &priv}, nil
}
