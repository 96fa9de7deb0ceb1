package crypto

import "github.com/shufflebox/shufflebox-go/internal/wire"

const (
	// SessionKeySize is the size of the per-message AES-256 session key
	// in bytes.
	SessionKeySize = 32

	// NonceSize is the AES-GCM nonce size in bytes.
	NonceSize = wire.NonceSize

	// TagSize is the AES-GCM authentication tag size in bytes.
	TagSize = wire.TagSize

	// hkdfContext is the domain-separation string for the KEM wrapper's
	// key derivation.
	hkdfContext = "shufflebox:session-key:v1"
)
