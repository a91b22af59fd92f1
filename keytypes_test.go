package notecrypt

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewKey(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"exact", KeySize, false},
		{"empty", 0, true},
		{"too short", 16, true},
		{"too long", 64, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := NewKey(make([]byte, tt.size))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidKeySize) {
					t.Errorf("expected ErrInvalidKeySize, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewKey() error = %v", err)
			}
			if key == nil {
				t.Fatal("NewKey() returned nil key")
			}
		})
	}
}

func TestNewNonce(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"exact", NonceSize, false},
		{"empty", 0, true},
		{"gcm sized", 12, true},
		{"too long", 32, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nonce, err := NewNonce(make([]byte, tt.size))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidNonceSize) {
					t.Errorf("expected ErrInvalidNonceSize, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewNonce() error = %v", err)
			}
			if nonce == nil {
				t.Fatal("NewNonce() returned nil nonce")
			}
		})
	}
}

func TestNewKey_CopiesInput(t *testing.T) {
	raw := bytes.Repeat([]byte{0xaa}, KeySize)
	key, err := NewKey(raw)
	if err != nil {
		t.Fatal(err)
	}

	raw[0] = 0x00
	if key[0] != 0xaa {
		t.Error("NewKey aliases caller memory instead of copying")
	}
}

func TestGenerateKey_Distinct(t *testing.T) {
	a, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a[:], b[:]) {
		t.Error("two generated keys are equal")
	}
}

func TestGenerateNonce_Distinct(t *testing.T) {
	a, err := GenerateNonce()
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateNonce()
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a[:], b[:]) {
		t.Error("two generated nonces are equal")
	}
}

func TestKeyWipe(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}

	key.Wipe()
	for i, b := range key {
		if b != 0 {
			t.Fatalf("byte %d not zeroed after Wipe", i)
		}
	}
}

func TestWipe(t *testing.T) {
	secret := []byte("super secret bytes")
	Wipe(secret)
	for i, b := range secret {
		if b != 0 {
			t.Fatalf("byte %d not zeroed after Wipe", i)
		}
	}
}

func TestKeyBytes_Copy(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}

	orig := key[0]
	out := key.Bytes()
	out[0] ^= 0xff
	if key[0] != orig {
		t.Error("Bytes() returned a view of the key instead of a copy")
	}
}
