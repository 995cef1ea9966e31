package crypto

import (
	"bytes"
	"testing"
)

func TestDeriveKey_DeterministicForSameSecret(t *testing.T) {
	k1 := DeriveKey("machine-secret")
	k2 := DeriveKey("machine-secret")

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected identical keys for identical secrets")
	}

	k3 := DeriveKey("other-secret")
	if bytes.Equal(k1, k3) {
		t.Fatalf("expected different keys for different secrets")
	}
}

func TestNewSealer_RejectsShortKey(t *testing.T) {
	if _, err := NewSealer([]byte("too short")); err == nil {
		t.Fatalf("expected error for short key")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	s, err := NewSealer(DeriveKey("machine-secret"))
	if err != nil {
		t.Fatalf("NewSealer error: %v", err)
	}

	plaintext := []byte(`{"latitude":52.52}`)
	blob, err := s.Seal(plaintext)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if bytes.Contains(blob, plaintext) {
		t.Fatalf("sealed blob contains plaintext")
	}

	opened, err := s.Open(blob)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Fatalf("round trip mismatch: got %q want %q", opened, plaintext)
	}
}

func TestSeal_NonDeterministicNonce(t *testing.T) {
	s, err := NewSealer(DeriveKey("machine-secret"))
	if err != nil {
		t.Fatalf("NewSealer error: %v", err)
	}

	b1, err := s.Seal([]byte("payload"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b2, err := s.Seal([]byte("payload"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if bytes.Equal(b1, b2) {
		t.Fatalf("expected distinct blobs for identical plaintexts")
	}
}

func TestOpen_WrongKeyFails(t *testing.T) {
	s1, err := NewSealer(DeriveKey("machine-secret"))
	if err != nil {
		t.Fatalf("NewSealer error: %v", err)
	}
	s2, err := NewSealer(DeriveKey("other-secret"))
	if err != nil {
		t.Fatalf("NewSealer error: %v", err)
	}

	blob, err := s1.Seal([]byte("payload"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if _, err := s2.Open(blob); err == nil {
		t.Fatalf("expected error opening with wrong key")
	}
}

func TestOpen_TamperedBlobFails(t *testing.T) {
	s, err := NewSealer(DeriveKey("machine-secret"))
	if err != nil {
		t.Fatalf("NewSealer error: %v", err)
	}

	blob, err := s.Seal([]byte("payload"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	blob[len(blob)-1] ^= 0xFF

	if _, err := s.Open(blob); err == nil {
		t.Fatalf("expected error for tampered blob")
	}
}

func TestOpen_TooShortBlobFails(t *testing.T) {
	s, err := NewSealer(DeriveKey("machine-secret"))
	if err != nil {
		t.Fatalf("NewSealer error: %v", err)
	}

	if _, err := s.Open([]byte("tiny")); err == nil {
		t.Fatalf("expected error for truncated blob")
	}
}

func TestNopSealer_PassThrough(t *testing.T) {
	s := NewNopSealer()

	blob, err := s.Seal([]byte("visible"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if !bytes.Equal(blob, []byte("visible")) {
		t.Fatalf("nop sealer must not transform data")
	}

	opened, err := s.Open(blob)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(opened, []byte("visible")) {
		t.Fatalf("nop sealer must not transform data")
	}
}
