package notecrypt

import (
	"errors"
	"testing"
)

func sealTestMessage(t *testing.T, message, aad string) *EncryptedMessage {
	t.Helper()
	enc, err := EncryptMessage(message, aad, nil, nil)
	if err != nil {
		t.Fatalf("EncryptMessage() error = %v", err)
	}
	return enc
}

func TestDecryptMessage_WrongKey(t *testing.T) {
	enc := sealTestMessage(t, "secret", "aad")

	wrongKey, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}

	_, err = DecryptMessage(enc.Ciphertext, "aad", wrongKey, enc.Nonce)
	if !errors.Is(err, ErrTagMismatch) {
		t.Errorf("expected ErrTagMismatch, got %v", err)
	}
}

func TestDecryptMessage_WrongNonce(t *testing.T) {
	enc := sealTestMessage(t, "secret", "aad")

	wrongNonce, err := GenerateNonce()
	if err != nil {
		t.Fatal(err)
	}

	_, err = DecryptMessage(enc.Ciphertext, "aad", enc.Key, wrongNonce)
	if !errors.Is(err, ErrTagMismatch) {
		t.Errorf("expected ErrTagMismatch, got %v", err)
	}
}

func TestDecryptMessage_WrongAAD(t *testing.T) {
	enc := sealTestMessage(t, "secret", "aad")

	_, err := DecryptMessage(enc.Ciphertext, "different aad", enc.Key, enc.Nonce)
	if !errors.Is(err, ErrTagMismatch) {
		t.Errorf("expected ErrTagMismatch, got %v", err)
	}
}

func TestDecryptMessage_TagBitFlips(t *testing.T) {
	enc := sealTestMessage(t, "bit flip target", "aad")

	// Any single-bit change in the 32-byte tag must fail as a tag
	// mismatch, never as a decryption failure, and never succeed.
	for i := 0; i < RobustnessTagSize; i++ {
		tampered := append([]byte(nil), enc.Ciphertext...)
		tampered[i] ^= 0x01

		_, err := DecryptMessage(tampered, "aad", enc.Key, enc.Nonce)
		if !errors.Is(err, ErrTagMismatch) {
			t.Fatalf("byte %d: expected ErrTagMismatch, got %v", i, err)
		}
	}
}

func TestDecryptMessage_CiphertextTamper(t *testing.T) {
	enc := sealTestMessage(t, "body tamper target", "aad")

	// The robustness tag covers the ciphertext, so body tampering is also
	// caught at the tag check, before the cipher runs.
	tampered := append([]byte(nil), enc.Ciphertext...)
	tampered[len(tampered)-1] ^= 0x80

	_, err := DecryptMessage(tampered, "aad", enc.Key, enc.Nonce)
	if !errors.Is(err, ErrTagMismatch) {
		t.Errorf("expected ErrTagMismatch, got %v", err)
	}
}

func TestDecryptMessage_ForgedTagReachesCipher(t *testing.T) {
	enc := sealTestMessage(t, "two layer check", "aad")

	// Corrupt the ciphertext, then recompute a valid robustness tag over
	// the corrupted bytes with the real key. The tag check passes and the
	// failure must come from the cipher's own Poly1305 tag.
	body := append([]byte(nil), enc.Ciphertext[RobustnessTagSize:]...)
	body[0] ^= 0xff

	forgedTag, err := ComputeRobustnessTag(enc.Key, enc.Nonce, body, "aad")
	if err != nil {
		t.Fatal(err)
	}

	forged := append(forgedTag, body...)
	_, err = DecryptMessage(forged, "aad", enc.Key, enc.Nonce)
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestDecryptMessage_TooShort(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	nonce, err := GenerateNonce()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		sealed []byte
	}{
		{"empty", []byte{}},
		{"one byte", []byte{0x01}},
		{"tag minus one", make([]byte, RobustnessTagSize-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecryptMessage(tt.sealed, "aad", key, nonce)
			if !errors.Is(err, ErrInvalidSealedMessage) {
				t.Errorf("expected ErrInvalidSealedMessage, got %v", err)
			}
		})
	}
}

func TestDecryptMessage_MissingKeyOrNonce(t *testing.T) {
	enc := sealTestMessage(t, "secret", "aad")

	if _, err := DecryptMessage(enc.Ciphertext, "aad", nil, enc.Nonce); !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("nil key: expected ErrInvalidKeySize, got %v", err)
	}
	if _, err := DecryptMessage(enc.Ciphertext, "aad", enc.Key, nil); !errors.Is(err, ErrInvalidNonceSize) {
		t.Errorf("nil nonce: expected ErrInvalidNonceSize, got %v", err)
	}
}

func TestEncryptDecrypt_EndToEnd(t *testing.T) {
	enc, err := EncryptMessage("Hello, World!", "test-data", nil, nil)
	if err != nil {
		t.Fatalf("EncryptMessage() error = %v", err)
	}

	plaintext, err := DecryptMessage(enc.Ciphertext, "test-data", enc.Key, enc.Nonce)
	if err != nil {
		t.Fatalf("DecryptMessage() error = %v", err)
	}
	if plaintext != "Hello, World!" {
		t.Errorf("decrypted = %q, want %q", plaintext, "Hello, World!")
	}

	_, err = DecryptMessage(enc.Ciphertext, "wrong-data", enc.Key, enc.Nonce)
	if !errors.Is(err, ErrTagMismatch) {
		t.Errorf("wrong AAD: expected ErrTagMismatch, got %v", err)
	}
}
