package notecrypt

import (
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
)

// Sign canonicalizes content, prefixes the domain-separation context, and
// signs the resulting UTF-8 bytes with ML-DSA-65.
//
// The context is concatenated directly before the canonical content with no
// separator. Choose fixed-format versioned contexts (for example
// "NoteLock:v1") so the boundary cannot be made ambiguous by content.
// A signature produced under one context never verifies under another.
func Sign(content Content, context string, secretKey []byte) ([]byte, error) {
	if len(secretKey) != MLDSASecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secretKey), MLDSASecretKeySize)
	}

	canonical, err := Canonicalize(content)
	if err != nil {
		return nil, err
	}

	var priv mldsa65.PrivateKey
	if err := priv.UnmarshalBinary(secretKey); err != nil {
		return nil, fmt.Errorf("unmarshal secret key: %w", err)
	}

	message := append([]byte(context), canonical...)
	sig := make([]byte, MLDSASignatureSize)
	mldsa65.SignTo(&priv, message, nil, false, sig)
	return sig, nil
}

// VerifySignature reports whether signature is a valid ML-DSA-65 signature
// by publicKey over content under context. It never returns an error: every
// failure mode, including content that cannot be canonicalized, collapses
// to false.
func VerifySignature(content Content, context string, signature, publicKey []byte) bool {
	canonical, err := Canonicalize(content)
	if err != nil {
		return false
	}
	if len(signature) != MLDSASignatureSize || len(publicKey) != MLDSAPublicKeySize {
		return false
	}

	var pub mldsa65.PublicKey
	if err := pub.UnmarshalBinary(publicKey); err != nil {
		return false
	}

	message := append([]byte(context), canonical...)
	return mldsa65.Verify(&pub, message, nil, signature)
}
