package shufflebox

import "github.com/shufflebox/shufflebox-go/internal/wire"

// Format describes an envelope's component ordering and per-component
// padding. Formats are immutable once constructed and are exchanged with
// the other party as serialized descriptors, never inside envelopes.
type Format = wire.Format

// ComponentKind identifies one envelope component.
type ComponentKind = wire.Kind

// Envelope component kinds. The numeric ordinals are part of the wire
// contract and never change.
const (
	ComponentSessionKeyBlock = wire.KindSessionKeyBlock
	ComponentNonce           = wire.KindNonce
	ComponentCiphertext      = wire.KindCiphertext
	ComponentTag             = wire.KindTag
)

// FormatVersion is the current descriptor version.
const FormatVersion = wire.Version

// NewFormat builds a Format from an explicit component order and padding
// map. The order must contain each of the four component kinds exactly
// once; padding lengths are byte counts in 0..255, defaulting to zero for
// kinds absent from the map.
func NewFormat(order []ComponentKind, padding map[ComponentKind]int) (*Format, error) {
	f, err := wire.New(order, padding)
	if err != nil {
		return nil, &FormatError{Err: err}
	}
	return f, nil
}

// GenerateFormat creates a random Format: a CSPRNG-driven permutation of
// the component kinds with random padding lengths.
func GenerateFormat() (*Format, error) {
	f, err := wire.Generate()
	if err != nil {
		return nil, &FormatError{Err: err}
	}
	return f, nil
}

// ParseFormat parses a descriptor produced by Format.Serialize.
func ParseFormat(descriptor []byte) (*Format, error) {
	f, err := wire.Deserialize(descriptor)
	if err != nil {
		return nil, &FormatError{Err: err}
	}
	return f, nil
}
