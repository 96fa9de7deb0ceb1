package shufflebox

import (
	stdcrypto "crypto"

	"github.com/shufflebox/shufflebox-go/internal/crypto"
	"github.com/shufflebox/shufflebox-go/internal/keys"
)

// KeyWrapAlgorithm selects how session keys are wrapped for recipients.
type KeyWrapAlgorithm string

const (
	// KeyWrapRSAOAEP wraps session keys with RSA-OAEP. This is the
	// default; keys travel as DER-structure base64url text.
	KeyWrapRSAOAEP KeyWrapAlgorithm = "rsa-oaep"
	// KeyWrapMLKEM wraps session keys with ML-KEM-768 encapsulation and
	// an AES-256-GCM key seal. Keys travel as raw base64url text.
	KeyWrapMLKEM KeyWrapAlgorithm = "ml-kem-768"
)

// sealerConfig holds configuration for a Sealer.
type sealerConfig struct {
	defaultFormat *Format
	oaepHash      stdcrypto.Hash
	modulusBits   int
	keyWrap       KeyWrapAlgorithm
}

// Option configures a Sealer.
type Option func(*sealerConfig)

// WithDefaultFormat sets the format used when Encrypt or Decrypt is
// called without one, instead of lazily generating a random format on
// first use.
func WithDefaultFormat(f *Format) Option {
	return func(c *sealerConfig) {
		c.defaultFormat = f
	}
}

// WithOAEPHash sets the OAEP hash for RSA session key wrapping. The
// default is SHA-1 for legacy interoperability; prefer crypto.SHA256 or
// stronger for new deployments. Both parties must use the same hash.
func WithOAEPHash(h stdcrypto.Hash) Option {
	return func(c *sealerConfig) {
		c.oaepHash = h
	}
}

// WithModulusBits sets the RSA modulus size used by GenerateKeyPair.
// Default: 4096. Values below 2048 are rejected at generation time.
func WithModulusBits(bits int) Option {
	return func(c *sealerConfig) {
		c.modulusBits = bits
	}
}

// WithKeyWrap selects the session key wrap algorithm.
func WithKeyWrap(alg KeyWrapAlgorithm) Option {
	return func(c *sealerConfig) {
		c.keyWrap = alg
	}
}

func defaultConfig() sealerConfig {
	return sealerConfig{
		oaepHash:    crypto.DefaultOAEPHash,
		modulusBits: keys.DefaultModulusBits,
		keyWrap:     KeyWrapRSAOAEP,
	}
}
