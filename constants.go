package notecrypt

import (
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// KeySize is the size of an XChaCha20-Poly1305 key in bytes.
	KeySize = chacha20poly1305.KeySize
	// NonceSize is the size of an XChaCha20-Poly1305 nonce in bytes.
	NonceSize = chacha20poly1305.NonceSizeX
	// AEADTagSize is the size of the cipher's native Poly1305 tag in bytes.
	// The tag is appended to the ciphertext by the cipher itself and is
	// opaque to this package.
	AEADTagSize = chacha20poly1305.Overhead

	// RobustnessTagSize is the size of the robustness tag in bytes.
	RobustnessTagSize = 32
	// RobustnessTagContext is the domain-separation string bound into every
	// robustness tag, pinning the MAC output to this use of the key.
	RobustnessTagContext = "RobustnessTag-v1"

	// MLDSAPublicKeySize is the size of an ML-DSA-65 public key in bytes.
	MLDSAPublicKeySize = mldsa65.PublicKeySize
	// MLDSASecretKeySize is the size of an ML-DSA-65 secret key in bytes.
	MLDSASecretKeySize = mldsa65.PrivateKeySize
	// MLDSASignatureSize is the size of an ML-DSA-65 signature in bytes.
	MLDSASignatureSize = mldsa65.SignatureSize

	// DefaultIDSize is the number of random bytes behind GenerateID.
	// 24 bytes encode to exactly 32 base64url characters.
	DefaultIDSize = 24
	// DefaultHashSize is the digest length of Hash in bytes.
	DefaultHashSize = 64
)

// AlgsCiphersuite is the canonical string representation of the algorithm suite.
var AlgsCiphersuite = "XChaCha20-Poly1305:BLAKE2b:ML-DSA-65:HKDF-SHA-512"
