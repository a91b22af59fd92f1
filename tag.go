package notecrypt

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// ComputeRobustnessTag computes the secondary integrity tag carried in
// front of every sealed message: a keyed BLAKE2b-256 MAC over
//
//	RobustnessTagContext || base64url(nonce) || base64url(aeadCiphertext) || aad
//
// x/crypto/blake2b does not expose the BLAKE2 personalization parameter, so
// the context string is bound by prefixing it to the MAC input instead.
//
// The concatenation carries no delimiters or length prefixes between the
// encoded components. That framing is part of the wire contract for
// existing sealed data and must not change.
func ComputeRobustnessTag(key *Key, nonce *Nonce, aeadCiphertext []byte, aad string) ([]byte, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: missing key", ErrInvalidKeySize)
	}
	if nonce == nil {
		return nil, fmt.Errorf("%w: missing nonce", ErrInvalidNonceSize)
	}

	mac, err := blake2b.New256(key[:])
	if err != nil {
		return nil, fmt.Errorf("create robustness tag MAC: %w", err)
	}
	mac.Write([]byte(RobustnessTagContext))
	mac.Write([]byte(ToBase64URL(nonce[:])))
	mac.Write([]byte(ToBase64URL(aeadCiphertext)))
	mac.Write([]byte(aad))
	return mac.Sum(nil), nil
}
