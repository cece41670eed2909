package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"genwallet/internal/crypto"
	"genwallet/internal/domain"
	"genwallet/internal/prompt"
	"genwallet/internal/store"
	"genwallet/internal/wallet"
)

func newKeypair(t *testing.T) domain.StoredKeypair {
	t.Helper()
	priv, pub, err := crypto.Generate(domain.SchemeEd25519)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return domain.StoredKeypair{Public: pub, Secret: &priv}
}

func TestLoad_Missing(t *testing.T) {
	fs := store.NewFileStore(t.TempDir())
	if _, err := fs.Load(); !errors.Is(err, store.ErrStoreNotFound) {
		t.Fatalf("want ErrStoreNotFound, got %v", err)
	}
}

func TestLoadOrNew_MissingStartsEmpty(t *testing.T) {
	fs := store.NewFileStore(t.TempDir())
	st, err := fs.LoadOrNew()
	if err != nil {
		t.Fatalf("load or new: %v", err)
	}
	if len(st.Keys) != 0 || len(st.Addresses) != 0 || st.Validator != nil {
		t.Fatal("fresh store is not empty")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs := store.NewFileStore(dir)
	st := wallet.NewStore()

	plain := newKeypair(t)
	if _, _, err := st.InsertKeypair(&prompt.Script{}, "plain", plain, false); err != nil {
		t.Fatalf("insert plain: %v", err)
	}
	sealedPriv, sealedPub, err := crypto.Generate(domain.SchemeEd25519)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	enc, err := crypto.SealSecret("pw", sealedPriv)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	sealed := domain.StoredKeypair{Public: sealedPub, Encrypted: &enc}
	if _, _, err := st.InsertKeypair(&prompt.Script{}, "sealed", sealed, false); err != nil {
		t.Fatalf("insert sealed: %v", err)
	}
	st.Addresses["treasury"] = "gw1treasury"
	dkgPriv, dkgPub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("generate dkg pair: %v", err)
	}
	st.Validator = &domain.ValidatorData{
		Address: crypto.DeriveAddress(plain.Public),
		Keys: domain.ValidatorKeys{
			Protocol:       plain,
			EthBridge:      sealed,
			DKGSessionPriv: dkgPriv,
			DKGSessionPub:  dkgPub,
			Scheme:         domain.SchemeEd25519,
		},
	}

	if err := fs.Save(st); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := fs.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	gotPlain, ok := got.Keys["plain"]
	if !ok || gotPlain.Public != plain.Public || gotPlain.Secret == nil || *gotPlain.Secret != *plain.Secret {
		t.Fatal("plain keypair did not survive the round trip")
	}
	gotSealed, ok := got.Keys["sealed"]
	if !ok || !gotSealed.IsEncrypted() {
		t.Fatal("sealed keypair did not survive the round trip")
	}
	if opened, err := crypto.OpenSecret("pw", *gotSealed.Encrypted); err != nil || opened != sealedPriv {
		t.Fatalf("sealed keypair unusable after round trip: %v", err)
	}
	if got.Addresses["treasury"] != "gw1treasury" {
		t.Fatal("address did not survive the round trip")
	}
	if got.Hashes[crypto.HashPublicKey(plain.Public)] != "plain" {
		t.Fatal("hash index was not rebuilt on load")
	}
	v := got.Validator
	if v == nil || v.Keys.Scheme != domain.SchemeEd25519 ||
		v.Keys.Protocol.Public != plain.Public ||
		v.Keys.DKGSessionPriv != dkgPriv || v.Keys.DKGSessionPub != dkgPub {
		t.Fatal("validator data did not survive the round trip")
	}
}

func TestLoad_CorruptStoreIsAnError(t *testing.T) {
	dir := t.TempDir()
	fs := store.NewFileStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "wallet.toml"), []byte("not = [valid"), 0o600); err != nil {
		t.Fatalf("write corrupt store: %v", err)
	}
	_, err := fs.Load()
	if err == nil {
		t.Fatal("expected error for corrupt store")
	}
	if errors.Is(err, store.ErrStoreNotFound) {
		t.Fatal("corrupt store must not read as not-found")
	}
	// The same file must also fail the load-or-new path: only a missing
	// store starts empty.
	if _, err := fs.LoadOrNew(); err == nil {
		t.Fatal("load-or-new silently accepted a corrupt store")
	}
}
