package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"golang.org/x/crypto/hkdf"
)

// kemScheme is the KEM used by KEMWrapper.
var kemScheme kem.Scheme = mlkem768.Scheme()

// GenerateKEMKeyPair creates an ML-KEM-768 key pair. KEM keys move as
// raw base64url of their packed bytes, not as DER structures.
func GenerateKEMKeyPair() (publicText, privateText string, err error) {
	pub, priv, err := kemScheme.GenerateKeyPair()
	if err != nil {
		return "", "", fmt.Errorf("generate KEM key pair: %w", err)
	}

	pubBytes, err := pub.MarshalBinary()
	if err != nil {
		return "", "", fmt.Errorf("marshal KEM public key: %w", err)
	}
	privBytes, err := priv.MarshalBinary()
	if err != nil {
		return "", "", fmt.Errorf("marshal KEM private key: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(pubBytes),
		base64.RawURLEncoding.EncodeToString(privBytes), nil
}

// KEMWrapper wraps session keys with ML-KEM-768 encapsulation: the
// encapsulated shared secret is run through HKDF-SHA-512 to derive a
// key-encryption key, which seals the session key with AES-256-GCM.
// Blocks are kemCiphertext || nonce || sealedKey || tag.
type KEMWrapper struct {
	public  kem.PublicKey
	private kem.PrivateKey
}

// NewKEMWrapperFromPublicText builds an encrypt-side wrapper from KEM
// public key text.
func NewKEMWrapperFromPublicText(text string) (*KEMWrapper, error) {
	raw, err := base64.RawURLEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKEMKeyText, err)
	}
	if len(raw) != kemScheme.PublicKeySize() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKEMKeySize, len(raw), kemScheme.PublicKeySize())
	}

	pub, err := kemScheme.UnmarshalBinaryPublicKey(raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal KEM public key: %w", err)
	}
	return &KEMWrapper{public: pub}, nil
}

// NewKEMWrapperFromPrivateText builds a decrypt-side wrapper from KEM
// private key text.
func NewKEMWrapperFromPrivateText(text string) (*KEMWrapper, error) {
	raw, err := base64.RawURLEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKEMKeyText, err)
	}
	if len(raw) != kemScheme.PrivateKeySize() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKEMKeySize, len(raw), kemScheme.PrivateKeySize())
	}

	priv, err := kemScheme.UnmarshalBinaryPrivateKey(raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal KEM private key: %w", err)
	}
	return &KEMWrapper{private: priv}, nil
}

// BlockSize returns the fixed wrapped-block length.
func (w *KEMWrapper) BlockSize() int {
	return kemScheme.CiphertextSize() + NonceSize + SessionKeySize + TagSize
}

// Wrap encapsulates to the recipient and seals the session key under the
// derived key-encryption key.
func (w *KEMWrapper) Wrap(sessionKey []byte) ([]byte, error) {
	if w.public == nil {
		return nil, ErrMissingPublicKey
	}
	if len(sessionKey) != SessionKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSessionKeySize, len(sessionKey), SessionKeySize)
	}

	kemCT, sharedSecret, err := kemScheme.Encapsulate(w.public)
	if err != nil {
		return nil, fmt.Errorf("KEM encapsulation: %w", err)
	}

	kek, err := deriveKeyEncryptionKey(sharedSecret, kemCT)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate wrap nonce: %w", err)
	}

	sealed, tag, err := sealAESGCM(kek, nonce, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("seal session key: %w", err)
	}

	block := make([]byte, 0, w.BlockSize())
	block = append(block, kemCT...)
	block = append(block, nonce...)
	block = append(block, sealed...)
	block = append(block, tag...)
	return block, nil
}

// Unwrap decapsulates the shared secret and opens the sealed session key.
func (w *KEMWrapper) Unwrap(block []byte) ([]byte, error) {
	if w.private == nil {
		return nil, ErrMissingPrivateKey
	}
	if len(block) != w.BlockSize() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidBlockSize, len(block), w.BlockSize())
	}

	ctSize := kemScheme.CiphertextSize()
	kemCT := block[:ctSize]
	nonce := block[ctSize : ctSize+NonceSize]
	sealed := block[ctSize+NonceSize : ctSize+NonceSize+SessionKeySize]
	tag := block[ctSize+NonceSize+SessionKeySize:]

	sharedSecret, err := kemScheme.Decapsulate(w.private, kemCT)
	if err != nil {
		return nil, fmt.Errorf("%w: decapsulation: %v", ErrUnwrapFailed, err)
	}

	kek, err := deriveKeyEncryptionKey(sharedSecret, kemCT)
	if err != nil {
		return nil, err
	}

	sessionKey, err := openAESGCM(kek, nonce, sealed, tag)
	if err != nil {
		return nil, fmt.Errorf("%w: open session key", ErrUnwrapFailed)
	}
	return sessionKey, nil
}

// deriveKeyEncryptionKey runs HKDF-SHA-512 over the KEM shared secret.
// The salt is the SHA-256 hash of the KEM ciphertext so the derived key
// is bound to this encapsulation.
func deriveKeyEncryptionKey(sharedSecret, kemCT []byte) ([]byte, error) {
	salt := sha256.Sum256(kemCT)

	reader := hkdf.New(sha512.New, sharedSecret, salt[:], []byte(hkdfContext))
	key := make([]byte, SessionKeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive key-encryption key: %w", err)
	}
	return key, nil
}
