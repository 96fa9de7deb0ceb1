// Package crypto implements the hybrid envelope cipher.
//
// Every encryption generates a fresh 32-byte session key and 12-byte
// nonce, wraps the session key for the recipient, seals the payload with
// AES-256-GCM, and hands the resulting components to the wire layout for
// framing. Decryption is the exact mirror. Neither the session key nor
// the nonce survives the call that created them.
//
// # Session key wrapping
//
// Two Wrapper implementations are provided:
//
//   - OAEPWrapper: RSA-OAEP under the recipient's RSA key. The OAEP hash
//     is configurable; the default is SHA-1 with MGF1-SHA-1 for
//     interoperability with legacy peers, not as a security
//     recommendation. Prefer a stronger hash for new deployments.
//
//   - KEMWrapper: ML-KEM-768 encapsulation, HKDF-SHA-512 derivation of a
//     key-encryption key, and an AES-256-GCM seal of the session key.
//
// # Authentication
//
// The envelope's tag component is verified by AES-GCM's own constant-time
// tag comparison before any plaintext is released; a tag of the wrong
// length short-circuits to failure without per-byte work. A mismatch
// yields ErrAuthenticationFailed and no plaintext whatsoever.
package crypto
