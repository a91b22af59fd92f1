package notecrypt

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/crypto/blake2b"
)

// Hash returns the DefaultHashSize-byte digest of message.
func Hash(message []byte) ([]byte, error) {
	return HashWithSize(message, DefaultHashSize)
}

// HashWithSize returns a size-byte digest of message using the BLAKE2Xb
// extendable-output function. The digest is deterministic: identical
// (message, size) inputs always produce byte-identical output, and there is
// no internal salt or randomness. size == 0 returns an empty slice.
func HashWithSize(message []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative hash size %d", ErrInvalidSize, size)
	}
	if size == 0 {
		return []byte{}, nil
	}
	// BLAKE2Xb caps the output length at 2^32-2 bytes.
	if uint64(size) > math.MaxUint32-1 {
		return nil, fmt.Errorf("%w: hash size %d too large", ErrInvalidSize, size)
	}

	xof, err := blake2b.NewXOF(uint32(size), nil)
	if err != nil {
		return nil, fmt.Errorf("create hash: %w", err)
	}
	xof.Write(message)

	digest := make([]byte, size)
	if _, err := io.ReadFull(xof, digest); err != nil {
		return nil, fmt.Errorf("read digest: %w", err)
	}
	return digest, nil
}
