package notecrypt

import "encoding/base64"

// ToBase64URL encodes bytes to URL-safe base64 without padding (RFC 4648 §5).
// All string-valued protocol outputs (identifiers, encoded nonces and
// ciphertexts inside tag computation) use this encoding.
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// FromBase64URL decodes URL-safe base64, with or without padding. It is the
// exact left inverse of [ToBase64URL] for every byte sequence.
func FromBase64URL(s string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}
	return base64.URLEncoding.DecodeString(s)
}
