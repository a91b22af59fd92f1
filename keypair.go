package notecrypt

import (
	"bytes"
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
)

// SigningKeypair is an ML-DSA-65 keypair for content signing. SecretKey
// belongs exclusively to the signer and must be persisted securely by the
// caller; PublicKey is freely shareable.
type SigningKeypair struct {
	// PublicKey is the raw ML-DSA-65 public key bytes.
	PublicKey []byte
	// SecretKey is the raw ML-DSA-65 secret key bytes.
	SecretKey []byte
	// PublicKeyB64 is the public key encoded as URL-safe base64.
	PublicKeyB64 string
}

// GenerateSigningKeypair creates a fresh ML-DSA-65 keypair.
func GenerateSigningKeypair() (*SigningKeypair, error) {
	pub, priv, err := mldsa65.GenerateKey(randReader)
	if err != nil {
		return nil, err
	}

	// MarshalBinary never fails for keys produced by GenerateKey.
	pubBytes, _ := pub.MarshalBinary()
	privBytes, _ := priv.MarshalBinary()

	return &SigningKeypair{
		PublicKey:    pubBytes,
		SecretKey:    privBytes,
		PublicKeyB64: ToBase64URL(pubBytes),
	}, nil
}

// SigningKeypairFromSecretKey reconstructs a keypair from the secret key
// alone; an ML-DSA-65 secret key determines its public key.
func SigningKeypairFromSecretKey(secretKey []byte) (*SigningKeypair, error) {
	if len(secretKey) != MLDSASecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secretKey), MLDSASecretKeySize)
	}

	var priv mldsa65.PrivateKey
	if err := priv.UnmarshalBinary(secretKey); err != nil {
		return nil, fmt.Errorf("unmarshal secret key: %w", err)
	}

	pub, ok := priv.Public().(*mldsa65.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: secret key has no public key", ErrInvalidSecretKeySize)
	}
	pubBytes, _ := pub.MarshalBinary()

	return &SigningKeypair{
		PublicKey:    pubBytes,
		SecretKey:    append([]byte(nil), secretKey...),
		PublicKeyB64: ToBase64URL(pubBytes),
	}, nil
}

// SigningKeypairFromBytes builds a keypair from raw secret and public key
// bytes, validating sizes and that the secret key parses.
func SigningKeypairFromBytes(secretKey, publicKey []byte) (*SigningKeypair, error) {
	if len(secretKey) != MLDSASecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secretKey), MLDSASecretKeySize)
	}
	if len(publicKey) != MLDSAPublicKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(publicKey), MLDSAPublicKeySize)
	}

	var priv mldsa65.PrivateKey
	if err := priv.UnmarshalBinary(secretKey); err != nil {
		return nil, fmt.Errorf("unmarshal secret key: %w", err)
	}

	return &SigningKeypair{
		PublicKey:    append([]byte(nil), publicKey...),
		SecretKey:    append([]byte(nil), secretKey...),
		PublicKeyB64: ToBase64URL(publicKey),
	}, nil
}

// ValidateSigningKeypair reports whether a keypair has the correct
// structure, sizes, and a consistent public key encoding.
func ValidateSigningKeypair(kp *SigningKeypair) bool {
	if kp == nil || kp.PublicKey == nil || kp.SecretKey == nil || kp.PublicKeyB64 == "" {
		return false
	}
	if len(kp.PublicKey) != MLDSAPublicKeySize || len(kp.SecretKey) != MLDSASecretKeySize {
		return false
	}

	decoded, err := FromBase64URL(kp.PublicKeyB64)
	if err != nil {
		return false
	}
	return bytes.Equal(decoded, kp.PublicKey)
}
