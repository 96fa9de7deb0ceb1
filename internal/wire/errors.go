package wire

import "errors"

var (
	// ErrDescriptorTooShort is returned when a serialized descriptor is
	// shorter than its two-byte header.
	ErrDescriptorTooShort = errors.New("descriptor too short")

	// ErrUnsupportedVersion is returned when a descriptor carries an
	// unknown version.
	ErrUnsupportedVersion = errors.New("unsupported descriptor version")

	// ErrComponentCount is returned when a descriptor declares fewer
	// components than the format requires.
	ErrComponentCount = errors.New("invalid component count")

	// ErrDescriptorLength is returned when a descriptor's length does not
	// match its declared component count.
	ErrDescriptorLength = errors.New("descriptor length mismatch")

	// ErrUnknownKind is returned when a descriptor or component order
	// contains a kind index outside the ordinal table.
	ErrUnknownKind = errors.New("unknown component kind")

	// ErrDuplicateKind is returned when a component order lists the same
	// kind more than once.
	ErrDuplicateKind = errors.New("duplicate component kind")

	// ErrMissingKind is returned when a component order does not contain
	// every required kind.
	ErrMissingKind = errors.New("missing component kind")

	// ErrPaddingRange is returned when a padding length is outside 0..255.
	ErrPaddingRange = errors.New("padding length out of range")

	// ErrComponentSize is returned by Pack when a fixed-size component
	// does not have its required length.
	ErrComponentSize = errors.New("invalid component size")

	// ErrEnvelopeSize is returned by Unpack when the envelope is too small
	// to hold the format's fixed-size components and padding.
	ErrEnvelopeSize = errors.New("envelope too small for format")

	// ErrLayoutMismatch is returned by Unpack when walking the component
	// order does not consume the envelope exactly.
	ErrLayoutMismatch = errors.New("envelope does not match format layout")
)
