package genesis_test

import (
	"strings"
	"testing"

	"genwallet/internal/domain"
	"genwallet/internal/genesis"
)

func TestParseSerialize_RoundTrip(t *testing.T) {
	in := []byte("[[bond]]\nsource = \"validator1\"\nvalidator = \"validator1\"\namount = \"1000\"\n")
	list, err := genesis.ParseUnsigned(in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(list.Bond) != 1 {
		t.Fatalf("want 1 record, got %d", len(list.Bond))
	}
	b := list.Bond[0]
	if b.Source != "validator1" || b.Validator != "validator1" || b.Amount != "1000" {
		t.Fatalf("unexpected record %+v", b)
	}

	out, err := genesis.Serialize(list)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	again, err := genesis.ParseUnsigned(out)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if len(again.Bond) != 1 {
		t.Fatalf("want 1 record after round trip, got %d", len(again.Bond))
	}
	got := again.Bond[0]
	if got.Source != b.Source || got.Validator != b.Validator || got.Amount != b.Amount {
		t.Fatalf("round trip changed the record: %+v", got)
	}
	if len(got.Signatures) != 0 {
		t.Fatal("unsigned record grew signatures in transit")
	}
}

func TestParseUnsigned_Malformed(t *testing.T) {
	if _, err := genesis.ParseUnsigned([]byte("[[bond]\nsource=")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSignableBytes_ExcludeSignatures(t *testing.T) {
	unsigned := domain.Bond{Source: "a", Validator: "v", Amount: "1"}
	signed := unsigned
	signed.Signatures = map[string]string{"ed25519:pk": "ed25519:sig"}

	b1, err := genesis.SignableBytes(unsigned)
	if err != nil {
		t.Fatalf("signable: %v", err)
	}
	b2, err := genesis.SignableBytes(signed)
	if err != nil {
		t.Fatalf("signable: %v", err)
	}
	if string(b1) != string(b2) {
		t.Fatal("signable bytes must not depend on accumulated signatures")
	}
	if strings.Contains(string(b1), "signatures") {
		t.Fatal("signable bytes leak the signature map")
	}
}

func TestAddSignature_NeverOverwrites(t *testing.T) {
	b := domain.Bond{Source: "a", Validator: "v", Amount: "1"}
	genesis.AddSignature(&b, "ed25519:pk", "first")
	genesis.AddSignature(&b, "ed25519:pk", "second")
	if b.Signatures["ed25519:pk"] != "first" {
		t.Fatal("existing signature was overwritten")
	}
	genesis.AddSignature(&b, "ed25519:pk2", "other")
	if len(b.Signatures) != 2 {
		t.Fatalf("want 2 signatures, got %d", len(b.Signatures))
	}
}
