package notecrypt

import "errors"

var (
	// ErrInvalidKeySize is returned when a supplied key is not exactly
	// KeySize bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when a supplied nonce is not exactly
	// NonceSize bytes.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidSealedMessage is returned when a sealed message is too short
	// to contain a robustness tag.
	ErrInvalidSealedMessage = errors.New("invalid sealed message")

	// ErrTagMismatch is returned when the robustness tag does not match the
	// sealed message. Decryption never runs after a mismatch.
	ErrTagMismatch = errors.New("robustness tag mismatch")

	// ErrDecryptionFailed is returned when the cipher's native authentication
	// check fails during decryption.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidContent is returned when signable content cannot be
	// canonicalized.
	ErrInvalidContent = errors.New("invalid signable content")

	// ErrInvalidSecretKeySize is returned when the signing secret key size
	// is invalid.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidPublicKeySize is returned when the signing public key size
	// is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidSize is returned when a requested length is out of range.
	ErrInvalidSize = errors.New("invalid size")
)
