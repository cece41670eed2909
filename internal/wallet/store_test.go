package wallet_test

import (
	"testing"

	"genwallet/internal/crypto"
	"genwallet/internal/domain"
	"genwallet/internal/prompt"
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

func TestInsertKeypair_FreshAlias(t *testing.T) {
	st := wallet.NewStore()
	kp := newKeypair(t)

	alias, ok, err := st.InsertKeypair(&prompt.Script{}, "validator1", kp, false)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !ok || alias != "validator1" {
		t.Fatalf("want stored under validator1, got %q ok=%v", alias, ok)
	}
	if st.Keys["validator1"].Public != kp.Public {
		t.Fatal("stored keypair mismatch")
	}
	if st.Addresses["validator1"] != crypto.DeriveAddress(kp.Public) {
		t.Fatal("derived address not recorded")
	}
	if st.Hashes[crypto.HashPublicKey(kp.Public)] != "validator1" {
		t.Fatal("hash index not recorded")
	}
}

func TestInsertKeypair_Replace(t *testing.T) {
	st := wallet.NewStore()
	first := newKeypair(t)
	second := newKeypair(t)

	if _, _, err := st.InsertKeypair(&prompt.Script{}, "a", first, false); err != nil {
		t.Fatalf("insert first: %v", err)
	}
	p := &prompt.Script{Confirmations: []domain.ConfirmationResponse{
		{Choice: domain.ConfirmReplace},
	}}
	alias, ok, err := st.InsertKeypair(p, "a", second, false)
	if err != nil {
		t.Fatalf("insert second: %v", err)
	}
	if !ok || alias != "a" {
		t.Fatalf("want replaced under a, got %q ok=%v", alias, ok)
	}
	if st.Keys["a"].Public != second.Public {
		t.Fatal("store does not hold exactly the replacing entry")
	}
	if _, stale := st.Hashes[crypto.HashPublicKey(first.Public)]; stale {
		t.Fatal("stale hash index left behind after replace")
	}
}

func TestInsertKeypair_SkipKeepsExisting(t *testing.T) {
	st := wallet.NewStore()
	first := newKeypair(t)
	second := newKeypair(t)

	if _, _, err := st.InsertKeypair(&prompt.Script{}, "a", first, false); err != nil {
		t.Fatalf("insert first: %v", err)
	}
	p := &prompt.Script{Confirmations: []domain.ConfirmationResponse{
		{Choice: domain.ConfirmSkip},
	}}
	_, ok, err := st.InsertKeypair(p, "a", second, false)
	if err != nil {
		t.Fatalf("insert second: %v", err)
	}
	if ok {
		t.Fatal("skip must not store the new entry")
	}
	if st.Keys["a"].Public != first.Public {
		t.Fatal("existing entry was disturbed by skip")
	}
	if _, anywhere := st.Hashes[crypto.HashPublicKey(second.Public)]; anywhere {
		t.Fatal("skipped entry leaked into the hash index")
	}
}

func TestInsertKeypair_ReselectRetriesUnderNewAlias(t *testing.T) {
	st := wallet.NewStore()
	first := newKeypair(t)
	second := newKeypair(t)

	if _, _, err := st.InsertKeypair(&prompt.Script{}, "a", first, false); err != nil {
		t.Fatalf("insert first: %v", err)
	}
	p := &prompt.Script{Confirmations: []domain.ConfirmationResponse{
		{Choice: domain.ConfirmReselect, NewAlias: "b"},
	}}
	alias, ok, err := st.InsertKeypair(p, "a", second, false)
	if err != nil {
		t.Fatalf("insert second: %v", err)
	}
	if !ok || alias != "b" {
		t.Fatalf("want stored under b, got %q ok=%v", alias, ok)
	}
	if st.Keys["a"].Public != first.Public {
		t.Fatal("reselect mutated the original alias")
	}
	if st.Keys["b"].Public != second.Public {
		t.Fatal("reselected insert missing")
	}
}

func TestInsertKeypair_ReselectMayCollideAgain(t *testing.T) {
	st := wallet.NewStore()
	a := newKeypair(t)
	b := newKeypair(t)
	c := newKeypair(t)

	if _, _, err := st.InsertKeypair(&prompt.Script{}, "a", a, false); err != nil {
		t.Fatalf("insert a: %v", err)
	}
	if _, _, err := st.InsertKeypair(&prompt.Script{}, "b", b, false); err != nil {
		t.Fatalf("insert b: %v", err)
	}
	// Reselect onto another occupied alias: the insert path re-runs and
	// prompts again.
	p := &prompt.Script{Confirmations: []domain.ConfirmationResponse{
		{Choice: domain.ConfirmReselect, NewAlias: "b"},
		{Choice: domain.ConfirmReselect, NewAlias: "c"},
	}}
	alias, ok, err := st.InsertKeypair(p, "a", c, false)
	if err != nil {
		t.Fatalf("insert c: %v", err)
	}
	if !ok || alias != "c" {
		t.Fatalf("want stored under c, got %q ok=%v", alias, ok)
	}
	if len(p.Confirmations) != 0 {
		t.Fatal("second collision was not adjudicated")
	}
}

func TestInsertKeypair_ForceSkipsConfirmation(t *testing.T) {
	st := wallet.NewStore()
	first := newKeypair(t)
	second := newKeypair(t)

	if _, _, err := st.InsertKeypair(&prompt.Script{}, "a", first, false); err != nil {
		t.Fatalf("insert first: %v", err)
	}
	// Empty script: any prompt would fail.
	alias, ok, err := st.InsertKeypair(&prompt.Script{}, "a", second, true)
	if err != nil {
		t.Fatalf("forced insert: %v", err)
	}
	if !ok || alias != "a" || st.Keys["a"].Public != second.Public {
		t.Fatal("force did not overwrite unconditionally")
	}
}

func TestInsertKeypair_EmptyAliasIsElicited(t *testing.T) {
	st := wallet.NewStore()
	kp := newKeypair(t)

	p := &prompt.Script{Aliases: []string{"My-Key "}}
	alias, ok, err := st.InsertKeypair(p, "", kp, false)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !ok || alias != "my-key" {
		t.Fatalf("want normalized elicited alias, got %q ok=%v", alias, ok)
	}
}

func TestInsertAddress_SharesAliasNamespaceWithKeys(t *testing.T) {
	st := wallet.NewStore()
	kp := newKeypair(t)

	if _, _, err := st.InsertKeypair(&prompt.Script{}, "a", kp, false); err != nil {
		t.Fatalf("insert keypair: %v", err)
	}
	p := &prompt.Script{Confirmations: []domain.ConfirmationResponse{
		{Choice: domain.ConfirmReplace},
	}}
	_, ok, err := st.InsertAddress(p, "a", "gw1somewhere", false)
	if err != nil {
		t.Fatalf("insert address: %v", err)
	}
	if !ok {
		t.Fatal("replace did not store the address")
	}
	if _, still := st.Keys["a"]; still {
		t.Fatal("alias still bound to a key after address replace")
	}
	if st.Addresses["a"] != "gw1somewhere" {
		t.Fatal("address not stored")
	}
}
