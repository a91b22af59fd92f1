package notecrypt

import (
	"fmt"
	"io"
)

// Key is a 32-byte XChaCha20-Poly1305 key. The fixed-size array type keeps
// keys and nonces from being swapped at call sites. Keys must never be
// logged or reused across unrelated semantic contexts.
type Key [KeySize]byte

// Nonce is a 24-byte XChaCha20-Poly1305 nonce. Uniqueness per key is the
// caller's invariant when nonces are supplied explicitly; this package
// cannot detect reuse.
type Nonce [NonceSize]byte

// NewKey copies b into a Key. b must be exactly KeySize bytes.
func NewKey(b []byte) (*Key, error) {
	if len(b) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(b), KeySize)
	}
	var k Key
	copy(k[:], b)
	return &k, nil
}

// NewNonce copies b into a Nonce. b must be exactly NonceSize bytes.
func NewNonce(b []byte) (*Nonce, error) {
	if len(b) != NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(b), NonceSize)
	}
	var n Nonce
	copy(n[:], b)
	return &n, nil
}

// GenerateKey returns a fresh random Key.
func GenerateKey() (*Key, error) {
	var k Key
	if _, err := io.ReadFull(randomSource(), k[:]); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return &k, nil
}

// GenerateNonce returns a fresh random Nonce.
func GenerateNonce() (*Nonce, error) {
	var n Nonce
	if _, err := io.ReadFull(randomSource(), n[:]); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return &n, nil
}

// Bytes returns a copy of the key material.
func (k *Key) Bytes() []byte {
	out := make([]byte, KeySize)
	copy(out, k[:])
	return out
}

// Wipe zeroes the key material in place.
func (k *Key) Wipe() {
	for i := range k {
		k[i] = 0
	}
}

// Bytes returns a copy of the nonce bytes.
func (n *Nonce) Bytes() []byte {
	out := make([]byte, NonceSize)
	copy(out, n[:])
	return out
}

// Wipe zeroes the nonce bytes in place.
func (n *Nonce) Wipe() {
	for i := range n {
		n[i] = 0
	}
}
