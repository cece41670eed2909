package crypto_test

import (
	"errors"
	"testing"

	"genwallet/internal/crypto"
	"genwallet/internal/domain"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	priv, _, err := crypto.Generate(domain.SchemeEd25519)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	enc, err := crypto.SealSecret("hunter22", priv)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	got, err := crypto.OpenSecret("hunter22", enc)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got != priv {
		t.Fatal("secret mismatch after open")
	}
}

func TestOpen_WrongPassword_IsDecryptionFailure(t *testing.T) {
	priv, _, err := crypto.Generate(domain.SchemeEd25519)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	enc, err := crypto.SealSecret("correct", priv)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	_, err = crypto.OpenSecret("wrong", enc)
	if !errors.Is(err, crypto.ErrDecryptionFailed) {
		t.Fatalf("want ErrDecryptionFailed, got %v", err)
	}
}

func TestGenerate_UnsupportedScheme(t *testing.T) {
	if _, _, err := crypto.Generate(domain.SchemeSecp256k1); err == nil {
		t.Fatal("expected error for unsupported scheme")
	}
}

func TestSignVerify(t *testing.T) {
	priv, pub, err := crypto.Generate(domain.SchemeEd25519)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	msg := []byte("bond 1000 to validator1")
	sig := crypto.Sign(priv, msg)
	if !crypto.Verify(pub, msg, sig) {
		t.Fatal("signature did not verify")
	}
	if crypto.Verify(pub, []byte("other"), sig) {
		t.Fatal("signature verified over wrong message")
	}
}

func TestEncodeParsePublicKey(t *testing.T) {
	_, pub, err := crypto.Generate(domain.SchemeEd25519)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	got, err := crypto.ParsePublicKey(crypto.EncodePublicKey(pub))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != pub {
		t.Fatal("public key mismatch after round trip")
	}
	if _, err := crypto.ParsePublicKey("secp256k1:abc"); err == nil {
		t.Fatal("expected error for unsupported scheme tag")
	}
	if _, err := crypto.ParsePublicKey("no-separator"); err == nil {
		t.Fatal("expected error for missing separator")
	}
}

func TestHashAndAddress_Deterministic(t *testing.T) {
	_, pub, err := crypto.Generate(domain.SchemeEd25519)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if crypto.HashPublicKey(pub) != crypto.HashPublicKey(pub) {
		t.Fatal("hash not deterministic")
	}
	addr := crypto.DeriveAddress(pub)
	if addr == "" || addr[:3] != "gw1" {
		t.Fatalf("unexpected address %q", addr)
	}
}
