package notecrypt

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// DecryptMessage opens a sealed message produced by [EncryptMessage] and
// returns the plaintext. The same aad supplied at encryption must be
// supplied here or the call fails.
//
// The robustness tag is recomputed and compared in constant time before any
// AEAD work: on mismatch the call fails with [ErrTagMismatch] and the cipher
// never runs over the unverified input. Only after the tag checks out is the
// ciphertext opened; a native Poly1305 failure surfaces as
// [ErrDecryptionFailed]. No failure path returns partial plaintext.
func DecryptMessage(sealed []byte, aad string, key *Key, nonce *Nonce) (string, error) {
	if key == nil {
		return "", fmt.Errorf("%w: missing key", ErrInvalidKeySize)
	}
	if nonce == nil {
		return "", fmt.Errorf("%w: missing nonce", ErrInvalidNonceSize)
	}
	if len(sealed) < RobustnessTagSize {
		return "", fmt.Errorf("%w: got %d bytes, want at least %d",
			ErrInvalidSealedMessage, len(sealed), RobustnessTagSize)
	}

	receivedTag := sealed[:RobustnessTagSize]
	aeadCiphertext := sealed[RobustnessTagSize:]

	expectedTag, err := ComputeRobustnessTag(key, nonce, aeadCiphertext, aad)
	if err != nil {
		return "", err
	}
	if subtle.ConstantTimeCompare(receivedTag, expectedTag) != 1 {
		return "", ErrTagMismatch
	}

	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	plaintext, err := aead.Open(nil, nonce[:], aeadCiphertext, []byte(aad))
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}
