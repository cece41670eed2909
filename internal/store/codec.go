package store

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"

	"genwallet/internal/crypto"
	"genwallet/internal/domain"
	"genwallet/internal/wallet"
)

// walletFile is the on-disk shape of a wallet store. The public-key-hash
// index is not persisted; it is rebuilt from the keys on load.
type walletFile struct {
	Keys      map[string]keyFile `toml:"keys,omitempty"`
	Addresses map[string]string  `toml:"addresses,omitempty"`
	Validator *validatorFile     `toml:"validator,omitempty"`
}

// keyFile holds one stored keypair. Plain entries carry secret_key as
// "unencrypted:<base58>"; sealed entries carry the AEAD envelope fields.
type keyFile struct {
	PublicKey string `toml:"public_key"`
	SecretKey string `toml:"secret_key,omitempty"`
	Cipher    string `toml:"cipher,omitempty"`
	Salt      string `toml:"salt,omitempty"`
	Nonce     string `toml:"nonce,omitempty"`
}

type validatorFile struct {
	Address        string  `toml:"address"`
	Scheme         string  `toml:"scheme"`
	Protocol       keyFile `toml:"protocol"`
	EthBridge      keyFile `toml:"eth_bridge"`
	DKGSessionPriv string  `toml:"dkg_session_priv"`
	DKGSessionPub  string  `toml:"dkg_session_pub"`
}

const plainSecretTag = "unencrypted"

func encodeKeypair(kp domain.StoredKeypair) keyFile {
	out := keyFile{PublicKey: crypto.EncodePublicKey(kp.Public)}
	if kp.IsEncrypted() {
		out.Cipher = base64.StdEncoding.EncodeToString(kp.Encrypted.Cipher)
		out.Salt = base64.StdEncoding.EncodeToString(kp.Encrypted.Salt)
		out.Nonce = base64.StdEncoding.EncodeToString(kp.Encrypted.Nonce)
		return out
	}
	out.SecretKey = plainSecretTag + ":" + base58.Encode(kp.Secret.Slice())
	return out
}

func decodeKeypair(f keyFile) (domain.StoredKeypair, error) {
	var kp domain.StoredKeypair
	pub, err := crypto.ParsePublicKey(f.PublicKey)
	if err != nil {
		return kp, err
	}
	kp.Public = pub

	if f.Cipher != "" {
		cipher, err := base64.StdEncoding.DecodeString(f.Cipher)
		if err != nil {
			return kp, fmt.Errorf("invalid cipher base64: %w", err)
		}
		salt, err := base64.StdEncoding.DecodeString(f.Salt)
		if err != nil {
			return kp, fmt.Errorf("invalid salt base64: %w", err)
		}
		nonce, err := base64.StdEncoding.DecodeString(f.Nonce)
		if err != nil {
			return kp, fmt.Errorf("invalid nonce base64: %w", err)
		}
		kp.Encrypted = &domain.EncryptedSecret{Salt: salt, Nonce: nonce, Cipher: cipher}
		return kp, nil
	}

	tag, enc, ok := strings.Cut(f.SecretKey, ":")
	if !ok || tag != plainSecretTag {
		return kp, fmt.Errorf("invalid secret key encoding %q", f.SecretKey)
	}
	raw, err := base58.Decode(enc)
	if err != nil {
		return kp, fmt.Errorf("invalid secret key base58: %w", err)
	}
	if len(raw) != 64 {
		return kp, fmt.Errorf("secret key: want 64 bytes, got %d", len(raw))
	}
	sk := domain.MustSecretKey(raw)
	kp.Secret = &sk
	return kp, nil
}

func encodeStore(st *wallet.Store) walletFile {
	out := walletFile{
		Keys:      make(map[string]keyFile, len(st.Keys)),
		Addresses: make(map[string]string, len(st.Addresses)),
	}
	for alias, kp := range st.Keys {
		out.Keys[string(alias)] = encodeKeypair(kp)
	}
	for alias, addr := range st.Addresses {
		out.Addresses[string(alias)] = string(addr)
	}
	if st.Validator != nil {
		v := st.Validator
		out.Validator = &validatorFile{
			Address:        string(v.Address),
			Scheme:         string(v.Keys.Scheme),
			Protocol:       encodeKeypair(v.Keys.Protocol),
			EthBridge:      encodeKeypair(v.Keys.EthBridge),
			DKGSessionPriv: base64.StdEncoding.EncodeToString(v.Keys.DKGSessionPriv.Slice()),
			DKGSessionPub:  base64.StdEncoding.EncodeToString(v.Keys.DKGSessionPub.Slice()),
		}
	}
	return out
}

func decodeStore(file walletFile) (*wallet.Store, error) {
	st := wallet.NewStore()
	for alias, f := range file.Keys {
		kp, err := decodeKeypair(f)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", alias, err)
		}
		a := domain.Alias(alias)
		st.Keys[a] = kp
		st.Hashes[crypto.HashPublicKey(kp.Public)] = a
	}
	for alias, addr := range file.Addresses {
		st.Addresses[domain.Alias(alias)] = domain.Address(addr)
	}
	if file.Validator != nil {
		v := file.Validator
		protocol, err := decodeKeypair(v.Protocol)
		if err != nil {
			return nil, fmt.Errorf("validator protocol key: %w", err)
		}
		ethBridge, err := decodeKeypair(v.EthBridge)
		if err != nil {
			return nil, fmt.Errorf("validator eth-bridge key: %w", err)
		}
		dkgPriv, err := base64.StdEncoding.DecodeString(v.DKGSessionPriv)
		if err != nil {
			return nil, fmt.Errorf("invalid dkg session key base64: %w", err)
		}
		dkgPub, err := base64.StdEncoding.DecodeString(v.DKGSessionPub)
		if err != nil {
			return nil, fmt.Errorf("invalid dkg session key base64: %w", err)
		}
		if len(dkgPriv) != 32 || len(dkgPub) != 32 {
			return nil, fmt.Errorf("dkg session keys: want 32 bytes")
		}
		keys := domain.ValidatorKeys{
			Protocol:  protocol,
			EthBridge: ethBridge,
			Scheme:    domain.SchemeType(v.Scheme),
		}
		copy(keys.DKGSessionPriv[:], dkgPriv)
		copy(keys.DKGSessionPub[:], dkgPub)
		st.Validator = &domain.ValidatorData{
			Address: domain.Address(v.Address),
			Keys:    keys,
		}
	}
	return st, nil
}
