package wire

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Kind identifies one envelope component. The numeric values are the
// descriptor's kind-index ordinal table and are part of the wire contract:
// they must never be renumbered. Ordinals 0 and 5 are reserved marker
// values (version and padding) and never appear in a component order.
type Kind uint8

const (
	// KindSessionKeyBlock is the wrapped session key.
	KindSessionKeyBlock Kind = 1
	// KindNonce is the AEAD nonce.
	KindNonce Kind = 2
	// KindCiphertext is the sealed payload. It is the single
	// variable-length component of every format.
	KindCiphertext Kind = 3
	// KindTag is the AEAD authentication tag.
	KindTag Kind = 4
)

// String returns the kind's descriptor name.
func (k Kind) String() string {
	switch k {
	case KindSessionKeyBlock:
		return "sessionKeyBlock"
	case KindNonce:
		return "nonce"
	case KindCiphertext:
		return "ciphertext"
	case KindTag:
		return "tag"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Version is the current descriptor version.
const Version = 1

// Fixed component sizes. The session key block's size depends on the
// recipient key and is supplied by the caller at pack/unpack time.
const (
	// NonceSize is the AEAD nonce length in bytes.
	NonceSize = 12
	// TagSize is the AEAD authentication tag length in bytes.
	TagSize = 16
)

// Padding bounds. Generate draws per-component padding from
// [MinRandomPadding, MaxRandomPadding]; hand-built formats may use any
// length up to MaxPadding.
const (
	MinRandomPadding = 8
	MaxRandomPadding = 32
	MaxPadding       = 255
)

// requiredKinds lists every component a format must place, in ordinal
// order. This is also the canonical order used when iterating kinds.
var requiredKinds = [...]Kind{KindSessionKeyBlock, KindNonce, KindCiphertext, KindTag}

// Format is an immutable component-ordering and padding layout. The zero
// value is not usable; construct formats with New, Generate, or
// Deserialize.
type Format struct {
	version int
	order   [len(requiredKinds)]Kind
	padding [len(requiredKinds) + 1]int // indexed by Kind
}

// New builds a Format from an explicit component order and padding map.
// The order must contain each of the four required kinds exactly once.
// Kinds absent from the padding map get zero padding.
func New(order []Kind, padding map[Kind]int) (*Format, error) {
	f := &Format{version: Version}

	if len(order) != len(requiredKinds) {
		return nil, fmt.Errorf("%w: got %d components, want %d", ErrComponentCount, len(order), len(requiredKinds))
	}

	var seen [len(requiredKinds) + 1]bool
	for i, k := range order {
		if !validKind(k) {
			return nil, fmt.Errorf("%w: index %d", ErrUnknownKind, uint8(k))
		}
		if seen[k] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKind, k)
		}
		seen[k] = true
		f.order[i] = k
	}
	for _, k := range requiredKinds {
		if !seen[k] {
			return nil, fmt.Errorf("%w: %s", ErrMissingKind, k)
		}
	}

	for k, n := range padding {
		if !validKind(k) {
			return nil, fmt.Errorf("%w: index %d", ErrUnknownKind, uint8(k))
		}
		if n < 0 || n > MaxPadding {
			return nil, fmt.Errorf("%w: %s has %d", ErrPaddingRange, k, n)
		}
		f.padding[k] = n
	}

	return f, nil
}

// Generate creates a random Format: a CSPRNG-driven permutation of the
// four required kinds, each with an independent random padding length in
// [MinRandomPadding, MaxRandomPadding].
func Generate() (*Format, error) {
	f := &Format{version: Version}

	order := requiredKinds
	for i := len(order) - 1; i > 0; i-- {
		j, err := randIndex(i + 1)
		if err != nil {
			return nil, fmt.Errorf("shuffle component order: %w", err)
		}
		order[i], order[j] = order[j], order[i]
	}
	f.order = order

	for _, k := range requiredKinds {
		n, err := randIndex(MaxRandomPadding - MinRandomPadding + 1)
		if err != nil {
			return nil, fmt.Errorf("draw padding length: %w", err)
		}
		f.padding[k] = MinRandomPadding + n
	}

	return f, nil
}

// Deserialize parses a descriptor produced by Serialize.
func Deserialize(data []byte) (*Format, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: %d bytes", ErrDescriptorTooShort, len(data))
	}
	version := int(data[0])
	if version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	count := int(data[1])
	if count < len(requiredKinds) {
		return nil, fmt.Errorf("%w: got %d, want at least %d", ErrComponentCount, count, len(requiredKinds))
	}
	if len(data) != 2+2*count {
		return nil, fmt.Errorf("%w: %d bytes for %d components", ErrDescriptorLength, len(data), count)
	}

	order := make([]Kind, count)
	padding := make(map[Kind]int, count)
	for i := 0; i < count; i++ {
		k := Kind(data[2+i])
		if !validKind(k) {
			return nil, fmt.Errorf("%w: index %d", ErrUnknownKind, data[2+i])
		}
		order[i] = k
		padding[k] = int(data[2+count+i])
	}

	return New(order, padding)
}

// Serialize encodes the format as a descriptor suitable for exchange with
// the other party.
func (f *Format) Serialize() []byte {
	buf := make([]byte, 0, 2+2*len(f.order))
	buf = append(buf, byte(f.version), byte(len(f.order)))
	for _, k := range f.order {
		buf = append(buf, byte(k))
	}
	for _, k := range f.order {
		buf = append(buf, byte(f.padding[k]))
	}
	return buf
}

// Version returns the descriptor version.
func (f *Format) Version() int { return f.version }

// Order returns a copy of the component order.
func (f *Format) Order() []Kind {
	order := make([]Kind, len(f.order))
	copy(order, f.order[:])
	return order
}

// Padding returns the padding length declared for a kind.
func (f *Format) Padding(k Kind) int {
	if !validKind(k) {
		return 0
	}
	return f.padding[k]
}

// Equal reports whether two formats describe the same layout.
func (f *Format) Equal(other *Format) bool {
	if other == nil {
		return false
	}
	return f.version == other.version && f.order == other.order && f.padding == other.padding
}

// String renders the layout for diagnostics. Descriptors are negotiation
// parameters, not key material, so nothing is redacted.
func (f *Format) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "wire.Format{v%d", f.version)
	for _, k := range f.order {
		fmt.Fprintf(&b, " %s+%d", k, f.padding[k])
	}
	b.WriteString("}")
	return b.String()
}

// paddingTotal is the summed padding contribution over all components.
func (f *Format) paddingTotal() int {
	total := 0
	for _, k := range f.order {
		total += f.padding[k]
	}
	return total
}

func validKind(k Kind) bool {
	return k >= KindSessionKeyBlock && k <= KindTag
}

// randIndex returns a uniform random int in [0, n) from crypto/rand.
func randIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
