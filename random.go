package notecrypt

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the random source used for key, nonce and identifier
// generation. It defaults to nil (which uses crypto/rand) but can be
// overridden for testing.
var randReader io.Reader

func randomSource() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// RandomBytes returns n bytes from the operating system's cryptographically
// secure generator. n == 0 returns an empty slice. A failing random source
// surfaces immediately; there is no retry.
func RandomBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidSize, n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(randomSource(), b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// GenerateID returns a fresh opaque identifier: DefaultIDSize random bytes
// encoded as unpadded URL-safe base64, 32 characters long. The default
// carries 192 bits of entropy, strictly more than a random UUID's 122.
func GenerateID() (string, error) {
	return GenerateIDWithSize(DefaultIDSize)
}

// GenerateIDWithSize returns an identifier built from n random bytes.
// n == 0 yields the empty string.
func GenerateIDWithSize(n int) (string, error) {
	b, err := RandomBytes(n)
	if err != nil {
		return "", err
	}
	return ToBase64URL(b), nil
}
