package notecrypt

import (
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey derives length bytes of key material from secret using
// HKDF-SHA-512. An empty salt is replaced with a zero-filled block; info
// should carry a versioned context string for domain separation. Use this
// to turn a shared secret from an external key-agreement step into
// per-purpose subkeys.
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: key length %d", ErrInvalidSize, length)
	}
	if len(salt) == 0 {
		salt = make([]byte, sha512.Size)
	}

	reader := hkdf.New(sha512.New, secret, salt, info)
	key := make([]byte, length)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return key, nil
}

// DeriveMessageKey derives an encryption [Key] for EncryptMessage from a
// shared secret and a context string. The intermediate raw bytes are wiped
// before returning.
func DeriveMessageKey(secret []byte, context string) (*Key, error) {
	raw, err := DeriveKey(secret, nil, []byte(context), KeySize)
	if err != nil {
		return nil, err
	}
	defer Wipe(raw)
	return NewKey(raw)
}
