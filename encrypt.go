package notecrypt

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// EncryptedMessage is the result of EncryptMessage. Key and Nonce are the
// values actually used, returned so a caller that omitted them can persist
// them for later decryption.
type EncryptedMessage struct {
	// Ciphertext is the sealed wire format:
	// robustnessTag (32 bytes) || XChaCha20-Poly1305 ciphertext.
	Ciphertext []byte
	// Key is the encryption key that was used.
	Key *Key
	// Nonce is the nonce that was used.
	Nonce *Nonce
}

// EncryptMessage seals message with XChaCha20-Poly1305, binding aad as
// associated data, and prepends an independently computed robustness tag.
//
// A nil key or nonce is generated fresh from the OS random source; supplied
// values are used as-is (construct them with [NewKey] and [NewNonce], which
// reject wrong lengths). The sealed format is:
//
//	robustnessTag (32 bytes) || aeadCiphertext (message length + 16 bytes)
//
// The robustness tag is a keyed BLAKE2b-256 MAC over the encoded nonce,
// encoded ciphertext and raw AAD, domain-separated by RobustnessTagContext.
// It gives every sealed message a second integrity check from a different
// primitive family than the cipher's native Poly1305 tag, so a break in
// either algorithm alone does not void integrity.
func EncryptMessage(message, aad string, key *Key, nonce *Nonce) (*EncryptedMessage, error) {
	var err error
	if key == nil {
		if key, err = GenerateKey(); err != nil {
			return nil, err
		}
	}
	if nonce == nil {
		if nonce, err = GenerateNonce(); err != nil {
			return nil, err
		}
	}

	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aeadCiphertext := aead.Seal(nil, nonce[:], []byte(message), []byte(aad))

	tag, err := ComputeRobustnessTag(key, nonce, aeadCiphertext, aad)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(tag)+len(aeadCiphertext))
	sealed = append(sealed, tag...)
	sealed = append(sealed, aeadCiphertext...)

	return &EncryptedMessage{
		Ciphertext: sealed,
		Key:        key,
		Nonce:      nonce,
	}, nil
}
