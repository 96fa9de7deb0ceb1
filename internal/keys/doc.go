// Package keys generates RSA key pairs and moves them as text.
//
// Keys cross the library boundary in exactly two DER-style structures: a
// PKCS#8-shaped private key (outer version, rsaEncryption algorithm
// identifier, octet-string-wrapped RSAPrivateKey) and an SPKI-shaped
// public key (algorithm identifier, bit-string-wrapped RSAPublicKey).
// Encoding and decoding are hand-built on cryptobyte for these two
// structures only; this is deliberately not a general ASN.1 surface.
//
// Decoding is strict: version fields must be zero, the algorithm OID must
// be rsaEncryption, every integer component must be present and positive,
// and no trailing bytes are tolerated.
//
// Text forms are URL-safe base64 without padding.
package keys
