package shufflebox

import (
	"fmt"
	"sync"

	"github.com/shufflebox/shufflebox-go/internal/crypto"
	"github.com/shufflebox/shufflebox-go/internal/keys"
	"github.com/shufflebox/shufflebox-go/internal/wire"
)

// Sealer is the package facade: it generates key pairs, holds an
// optional default format, and encrypts and decrypts envelopes. Every
// cryptographic operation is a one-shot pipeline over its inputs; the
// only state a Sealer carries is its configuration and the cached
// default format.
type Sealer struct {
	cfg sealerConfig

	mu            sync.Mutex
	defaultFormat *Format
}

// New creates a Sealer.
func New(opts ...Option) *Sealer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Sealer{cfg: cfg, defaultFormat: cfg.defaultFormat}
}

// GenerateKeyPair creates a key pair for the configured wrap algorithm
// and returns its text forms. RSA generation is CPU-bound and can take
// seconds at the default 4096-bit modulus.
func (s *Sealer) GenerateKeyPair() (publicKeyText, privateKeyText string, err error) {
	if s.cfg.keyWrap == KeyWrapMLKEM {
		publicKeyText, privateKeyText, err = crypto.GenerateKEMKeyPair()
		if err != nil {
			return "", "", &KeyGenerationError{Err: err}
		}
		return publicKeyText, privateKeyText, nil
	}

	pair, err := keys.Generate(s.cfg.modulusBits)
	if err != nil {
		return "", "", &KeyGenerationError{Bits: s.cfg.modulusBits, Err: err}
	}

	publicKeyText, err = keys.EncodePublicText(pair.Public)
	if err != nil {
		return "", "", &KeyGenerationError{Bits: s.cfg.modulusBits, Err: err}
	}
	privateKeyText, err = keys.EncodePrivateText(pair.Private)
	if err != nil {
		return "", "", &KeyGenerationError{Bits: s.cfg.modulusBits, Err: err}
	}
	return publicKeyText, privateKeyText, nil
}

// DefaultFormat returns the Sealer's default format, generating and
// caching a random one on first use.
func (s *Sealer) DefaultFormat() (*Format, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.defaultFormat == nil {
		f, err := wire.Generate()
		if err != nil {
			return nil, &FormatError{Err: fmt.Errorf("generate default format: %w", err)}
		}
		s.defaultFormat = f
	}
	return s.defaultFormat, nil
}

// SetDefaultFormat replaces the Sealer's default format.
func (s *Sealer) SetDefaultFormat(f *Format) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaultFormat = f
}

// Encrypt seals payload for the holder of the given public key. A nil
// format uses the Sealer's default, creating one if necessary. The
// envelope's layout is governed entirely by the format; the recipient
// must decrypt with the same format and matching wrap parameters.
func (s *Sealer) Encrypt(payload []byte, publicKeyText string, format *Format) ([]byte, error) {
	f, err := s.resolveFormat(format)
	if err != nil {
		return nil, err
	}

	wrapper, err := s.encryptWrapper(publicKeyText)
	if err != nil {
		return nil, err
	}

	envelope, err := crypto.Encrypt(payload, wrapper, f)
	if err != nil {
		return nil, wrapEncryptError(err)
	}
	return envelope, nil
}

// Decrypt opens an envelope with the given private key. A nil format
// uses the Sealer's default. Plaintext is returned only after the
// envelope's tag authenticates; any mismatch yields AuthenticationError
// and no plaintext.
func (s *Sealer) Decrypt(envelope []byte, privateKeyText string, format *Format) ([]byte, error) {
	f, err := s.resolveFormat(format)
	if err != nil {
		return nil, err
	}

	wrapper, err := s.decryptWrapper(privateKeyText)
	if err != nil {
		return nil, err
	}

	payload, err := crypto.Decrypt(envelope, wrapper, f)
	if err != nil {
		return nil, wrapDecryptError(err)
	}
	return payload, nil
}

func (s *Sealer) resolveFormat(format *Format) (*Format, error) {
	if format != nil {
		return format, nil
	}
	return s.DefaultFormat()
}

// encryptWrapper builds the session key wrapper for a recipient public
// key.
func (s *Sealer) encryptWrapper(publicKeyText string) (crypto.Wrapper, error) {
	if s.cfg.keyWrap == KeyWrapMLKEM {
		w, err := crypto.NewKEMWrapperFromPublicText(publicKeyText)
		if err != nil {
			return nil, &KeyDecodeError{Err: err}
		}
		return w, nil
	}

	pub, err := keys.ParsePublicText(publicKeyText)
	if err != nil {
		return nil, &KeyDecodeError{Err: err}
	}
	return &crypto.OAEPWrapper{Public: pub, Hash: s.cfg.oaepHash}, nil
}

// decryptWrapper builds the session key wrapper for a recipient private
// key.
func (s *Sealer) decryptWrapper(privateKeyText string) (crypto.Wrapper, error) {
	if s.cfg.keyWrap == KeyWrapMLKEM {
		w, err := crypto.NewKEMWrapperFromPrivateText(privateKeyText)
		if err != nil {
			return nil, &KeyDecodeError{Err: err}
		}
		return w, nil
	}

	priv, err := keys.ParsePrivateText(privateKeyText)
	if err != nil {
		return nil, &KeyDecodeError{Err: err}
	}
	return &crypto.OAEPWrapper{Private: priv, Hash: s.cfg.oaepHash}, nil
}

// ValidatePublicKeyText reports whether text decodes to a well-formed
// RSA public key structure.
func ValidatePublicKeyText(text string) error {
	if _, err := keys.ParsePublicText(text); err != nil {
		return &KeyDecodeError{Err: err}
	}
	return nil
}

// ValidatePrivateKeyText reports whether text decodes to a well-formed,
// internally consistent RSA private key structure.
func ValidatePrivateKeyText(text string) error {
	if _, err := keys.ParsePrivateText(text); err != nil {
		return &KeyDecodeError{Err: err}
	}
	return nil
}
