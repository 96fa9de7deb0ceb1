// Package shufflebox provides hybrid envelope encryption with a
// negotiable wire layout.
//
// An RSA key pair protects a per-message symmetric session key, which in
// turn encrypts and authenticates the payload with AES-256-GCM. The
// resulting components (wrapped session key, nonce, ciphertext, tag)
// are framed into an envelope whose component order and padding are
// described by a Format. The envelope carries no format identifier: the
// Format is a negotiated parameter both parties hold, so observers
// cannot frame messages without it.
//
// Basic usage:
//
//	sealer := shufflebox.New()
//
//	publicKey, privateKey, err := sealer.GenerateKeyPair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	format, err := shufflebox.GenerateFormat()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	envelope, err := sealer.Encrypt([]byte("hello"), publicKey, format)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	payload, err := sealer.Decrypt(envelope, privateKey, format)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Exchange the format with the other party as bytes via Format.Serialize
// and ParseFormat. Keys travel as URL-safe base64 text.
//
// # Security model
//
// Confidentiality and integrity come from RSA-OAEP plus AES-256-GCM; the
// negotiable layout only removes framing predictability and is not an
// encryption layer. A session key and nonce are generated fresh per
// Encrypt call and never reused or retained. Decrypt releases plaintext
// only after the authentication tag verifies; tampering with the
// ciphertext or tag yields an AuthenticationError. Padding bytes carry
// no information and are not authenticated.
//
// The default OAEP hash is SHA-1 with MGF1-SHA-1 for interoperability
// with legacy peers. This is a compatibility default, not a security
// recommendation; prefer WithOAEPHash(crypto.SHA256) or stronger for new
// deployments.
//
// # Concurrency
//
// Encrypt and Decrypt are pure functions of their inputs and safe for
// concurrent use. The Sealer's lazily-created default format is guarded
// by a mutex, but callers doing concurrent work should pass an explicit
// format per call rather than mutate the shared default.
package shufflebox
