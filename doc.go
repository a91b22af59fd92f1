// Package notecrypt provides the cryptographic primitives for the NoteLock
// protocol: authenticated encryption with an independent robustness tag,
// content hashing, secure identifier generation, and post-quantum signatures
// over canonicalized structured content.
//
// The package exposes opinionated, misuse-resistant operations rather than
// raw primitive bindings. Application code never touches cipher internals;
// it calls [EncryptMessage], [DecryptMessage], [Sign], [VerifySignature],
// [Hash] and [GenerateID].
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - XChaCha20-Poly1305: Authenticated encryption with associated data
//     (AEAD) with a 24-byte nonce, safe for randomly generated nonces.
//
//   - BLAKE2b: Keyed BLAKE2b-256 computes the robustness tag; the BLAKE2Xb
//     extendable-output function provides variable-length content hashing.
//
//   - ML-DSA-65 (NIST FIPS 204): Post-quantum digital signature algorithm
//     for signing canonicalized content. Provides 192-bit security.
//
//   - HKDF-SHA-512 (RFC 5869): Key derivation for turning externally
//     agreed shared secrets into encryption subkeys with domain separation.
//
// # Security Model
//
// Every sealed message carries two independent integrity checks: the
// cipher's native Poly1305 tag and a 32-byte keyed BLAKE2b-256 robustness
// tag prepended to the ciphertext. The tags come from different primitive
// families, so a catastrophic break in one does not silently void the
// other. The robustness tag is always verified first, in constant time;
// the AEAD never runs over input that failed that check, and no failure
// path ever returns partial plaintext.
//
// Signatures are domain separated: the signing context string is bound
// into the signed bytes, so a signature produced under one context can
// never verify under another. Content is canonicalized before signing, so
// structurally equal content signs and verifies identically regardless of
// construction order.
//
// # Critical Security Notes
//
// Nonces MUST be unique for each encryption with the same key. Reusing a
// (key, nonce) pair completely breaks XChaCha20-Poly1305 confidentiality.
// Letting [EncryptMessage] generate both values satisfies this; callers
// supplying their own nonces carry the uniqueness invariant themselves.
//
// Keys and secret keys must never be logged or compared with non-constant
// time equality. The [Key.Wipe], [Nonce.Wipe] and [Wipe] helpers clear
// secret material once it is no longer needed.
//
// The sealed wire format (robustness tag || ciphertext) carries no version
// byte and no length prefix. Callers needing forward compatibility must
// version it at a higher layer.
package notecrypt
