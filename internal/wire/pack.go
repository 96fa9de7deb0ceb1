package wire

import (
	"crypto/rand"
	"fmt"
)

// Components holds the four envelope components by kind. All slices are
// owned by the holder; Unpack returns fresh copies, never sub-slices of
// the envelope.
type Components struct {
	SessionKeyBlock []byte
	Nonce           []byte
	Ciphertext      []byte
	Tag             []byte
}

func (c *Components) bytesFor(k Kind) []byte {
	switch k {
	case KindSessionKeyBlock:
		return c.SessionKeyBlock
	case KindNonce:
		return c.Nonce
	case KindCiphertext:
		return c.Ciphertext
	case KindTag:
		return c.Tag
	}
	return nil
}

func (c *Components) setBytes(k Kind, b []byte) {
	switch k {
	case KindSessionKeyBlock:
		c.SessionKeyBlock = b
	case KindNonce:
		c.Nonce = b
	case KindCiphertext:
		c.Ciphertext = b
	case KindTag:
		c.Tag = b
	}
}

// fixedSize returns the required length for fixed-size kinds, or -1 for
// the variable-length ciphertext.
func fixedSize(k Kind, keyBlockSize int) int {
	switch k {
	case KindSessionKeyBlock:
		return keyBlockSize
	case KindNonce:
		return NonceSize
	case KindTag:
		return TagSize
	}
	return -1
}

// Pack concatenates the components per the format's order, following each
// component (including the last) with its declared number of fresh random
// padding bytes. keyBlockSize is the required session key block length for
// the recipient key in use.
func (f *Format) Pack(c *Components, keyBlockSize int) ([]byte, error) {
	if keyBlockSize <= 0 {
		return nil, fmt.Errorf("%w: key block size %d", ErrComponentSize, keyBlockSize)
	}
	for _, k := range requiredKinds {
		want := fixedSize(k, keyBlockSize)
		if want < 0 {
			continue
		}
		if got := len(c.bytesFor(k)); got != want {
			return nil, fmt.Errorf("%w: %s is %d bytes, want %d", ErrComponentSize, k, got, want)
		}
	}

	total := keyBlockSize + NonceSize + TagSize + len(c.Ciphertext) + f.paddingTotal()
	out := make([]byte, 0, total)
	for _, k := range f.order {
		out = append(out, c.bytesFor(k)...)

		pad := make([]byte, f.padding[k])
		if _, err := rand.Read(pad); err != nil {
			return nil, fmt.Errorf("generate padding: %w", err)
		}
		out = append(out, pad...)
	}
	return out, nil
}

// Unpack splits an envelope back into components. The ciphertext length is
// derived by subtracting the fixed-size and padding contributions from the
// envelope length; a negative result, an out-of-bounds slice, or a cursor
// that does not land exactly on the envelope's end all signal a
// format/layout mismatch.
func (f *Format) Unpack(envelope []byte, keyBlockSize int) (*Components, error) {
	if keyBlockSize <= 0 {
		return nil, fmt.Errorf("%w: key block size %d", ErrComponentSize, keyBlockSize)
	}

	fixedTotal := keyBlockSize + NonceSize + TagSize
	ciphertextLen := len(envelope) - fixedTotal - f.paddingTotal()
	if ciphertextLen < 0 {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrEnvelopeSize, len(envelope), fixedTotal+f.paddingTotal())
	}

	c := &Components{}
	cursor := 0
	for _, k := range f.order {
		size := fixedSize(k, keyBlockSize)
		if size < 0 {
			size = ciphertextLen
		}
		if cursor+size+f.padding[k] > len(envelope) {
			return nil, fmt.Errorf("%w: %s exceeds envelope bounds", ErrLayoutMismatch, k)
		}
		c.setBytes(k, append([]byte(nil), envelope[cursor:cursor+size]...))
		cursor += size + f.padding[k]
	}
	if cursor != len(envelope) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrLayoutMismatch, len(envelope)-cursor)
	}
	return c, nil
}
