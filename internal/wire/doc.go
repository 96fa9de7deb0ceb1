// Package wire implements the negotiable envelope byte layout.
//
// A Format describes the order in which the four envelope components
// (session key block, nonce, ciphertext, tag) appear on the wire, and how
// many random padding bytes follow each of them. The envelope itself
// carries no format identifier: both parties must hold the same Format,
// exchanged out of band as a serialized descriptor.
//
// # Descriptor layout
//
// A serialized descriptor is:
//
//	[version:1][count:1][count x kindIndex:1][count x padLen:1]
//
// Kind indices come from a fixed ordinal table that is part of the wire
// contract; see Kind. Padding lengths are raw byte counts in 0..255.
//
// # Envelope layout
//
// Pack writes, per the format's component order, each component's bytes
// followed immediately by that component's padding bytes. Padding follows
// every component, including the last, so extraction never depends on
// which component happens to be positionally final. Exactly one component
// (the ciphertext) is variable-length; Unpack derives its size by
// subtracting the fixed-size and padding contributions from the envelope
// length.
package wire
