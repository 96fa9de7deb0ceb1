package keys

import (
	"crypto/rsa"
	encasn1 "encoding/asn1"
	"encoding/base64"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// oidRSAEncryption is the rsaEncryption OID (1.2.840.113549.1.1.1).
var oidRSAEncryption = encasn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}

// MarshalPrivate encodes a private key as the PKCS#8-shaped structure:
// SEQUENCE { version 0, rsaEncryption, OCTET STRING { RSAPrivateKey } }.
func MarshalPrivate(key *rsa.PrivateKey) ([]byte, error) {
	if len(key.Primes) != 2 {
		return nil, fmt.Errorf("%w: %d primes", ErrUnsupportedKey, len(key.Primes))
	}

	p, q := key.Primes[0], key.Primes[1]
	one := big.NewInt(1)
	dp := new(big.Int).Mod(key.D, new(big.Int).Sub(p, one))
	dq := new(big.Int).Mod(key.D, new(big.Int).Sub(q, one))
	qInv := new(big.Int).ModInverse(q, p)
	if qInv == nil {
		return nil, fmt.Errorf("%w: primes are not coprime", ErrUnsupportedKey)
	}

	var inner cryptobyte.Builder
	inner.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(0)
		b.AddASN1BigInt(key.N)
		b.AddASN1Int64(int64(key.E))
		b.AddASN1BigInt(key.D)
		b.AddASN1BigInt(p)
		b.AddASN1BigInt(q)
		b.AddASN1BigInt(dp)
		b.AddASN1BigInt(dq)
		b.AddASN1BigInt(qInv)
	})
	innerDER, err := inner.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encode RSAPrivateKey: %w", err)
	}

	var outer cryptobyte.Builder
	outer.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(0)
		addRSAAlgorithmIdentifier(b)
		b.AddASN1OctetString(innerDER)
	})
	der, err := outer.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encode private key: %w", err)
	}
	return der, nil
}

// MarshalPublic encodes a public key as the SPKI-shaped structure:
// SEQUENCE { rsaEncryption, BIT STRING { SEQUENCE { n, e } } }.
func MarshalPublic(key *rsa.PublicKey) ([]byte, error) {
	var inner cryptobyte.Builder
	inner.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(key.N)
		b.AddASN1Int64(int64(key.E))
	})
	innerDER, err := inner.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encode RSAPublicKey: %w", err)
	}

	var outer cryptobyte.Builder
	outer.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		addRSAAlgorithmIdentifier(b)
		b.AddASN1BitString(innerDER)
	})
	der, err := outer.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encode public key: %w", err)
	}
	return der, nil
}

// ParsePrivate decodes a private key structure produced by MarshalPrivate.
func ParsePrivate(der []byte) (*rsa.PrivateKey, error) {
	input := cryptobyte.String(der)
	var outer cryptobyte.String
	if !input.ReadASN1(&outer, asn1.SEQUENCE) || !input.Empty() {
		return nil, fmt.Errorf("%w: not a private key sequence", ErrMalformedKey)
	}

	var version int
	if !outer.ReadASN1Integer(&version) {
		return nil, fmt.Errorf("%w: missing outer version", ErrMalformedKey)
	}
	if version != 0 {
		return nil, fmt.Errorf("%w: outer version %d", ErrUnsupportedKeyVersion, version)
	}
	if err := readRSAAlgorithmIdentifier(&outer); err != nil {
		return nil, err
	}

	var keyOctets cryptobyte.String
	if !outer.ReadASN1(&keyOctets, asn1.OCTET_STRING) || !outer.Empty() {
		return nil, fmt.Errorf("%w: missing key octets", ErrMalformedKey)
	}

	var seq cryptobyte.String
	if !keyOctets.ReadASN1(&seq, asn1.SEQUENCE) || !keyOctets.Empty() {
		return nil, fmt.Errorf("%w: not an RSAPrivateKey sequence", ErrMalformedKey)
	}
	if !seq.ReadASN1Integer(&version) {
		return nil, fmt.Errorf("%w: missing inner version", ErrMalformedKey)
	}
	if version != 0 {
		return nil, fmt.Errorf("%w: inner version %d", ErrUnsupportedKeyVersion, version)
	}

	fields := []string{"n", "e", "d", "p", "q", "d mod (p-1)", "d mod (q-1)", "qInv"}
	values := make([]*big.Int, len(fields))
	for i, name := range fields {
		v := new(big.Int)
		if !seq.ReadASN1Integer(v) {
			return nil, fmt.Errorf("%w: missing %s", ErrMalformedKey, name)
		}
		if v.Sign() <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrZeroComponent, name)
		}
		values[i] = v
	}
	if !seq.Empty() {
		return nil, fmt.Errorf("%w: trailing key material", ErrMalformedKey)
	}

	e, err := exponentToInt(values[1])
	if err != nil {
		return nil, err
	}

	key := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{N: values[0], E: e},
		D:         values[2],
		Primes:    []*big.Int{values[3], values[4]},
	}
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	key.Precompute()
	return key, nil
}

// ParsePublic decodes a public key structure produced by MarshalPublic.
func ParsePublic(der []byte) (*rsa.PublicKey, error) {
	input := cryptobyte.String(der)
	var outer cryptobyte.String
	if !input.ReadASN1(&outer, asn1.SEQUENCE) || !input.Empty() {
		return nil, fmt.Errorf("%w: not a public key sequence", ErrMalformedKey)
	}
	if err := readRSAAlgorithmIdentifier(&outer); err != nil {
		return nil, err
	}

	var bs encasn1.BitString
	if !outer.ReadASN1BitString(&bs) || !outer.Empty() {
		return nil, fmt.Errorf("%w: missing key bit string", ErrMalformedKey)
	}
	if bs.BitLength%8 != 0 {
		return nil, fmt.Errorf("%w: key bit string not byte-aligned", ErrMalformedKey)
	}

	keyBytes := cryptobyte.String(bs.Bytes)
	var seq cryptobyte.String
	if !keyBytes.ReadASN1(&seq, asn1.SEQUENCE) || !keyBytes.Empty() {
		return nil, fmt.Errorf("%w: not an RSAPublicKey sequence", ErrMalformedKey)
	}

	n := new(big.Int)
	eBig := new(big.Int)
	if !seq.ReadASN1Integer(n) {
		return nil, fmt.Errorf("%w: missing n", ErrMalformedKey)
	}
	if !seq.ReadASN1Integer(eBig) {
		return nil, fmt.Errorf("%w: missing e", ErrMalformedKey)
	}
	if !seq.Empty() {
		return nil, fmt.Errorf("%w: trailing key material", ErrMalformedKey)
	}
	if n.Sign() <= 0 {
		return nil, fmt.Errorf("%w: n", ErrZeroComponent)
	}
	if eBig.Sign() <= 0 {
		return nil, fmt.Errorf("%w: e", ErrZeroComponent)
	}

	e, err := exponentToInt(eBig)
	if err != nil {
		return nil, err
	}
	return &rsa.PublicKey{N: n, E: e}, nil
}

// EncodePrivateText encodes a private key as base64url text.
func EncodePrivateText(key *rsa.PrivateKey) (string, error) {
	der, err := MarshalPrivate(key)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(der), nil
}

// EncodePublicText encodes a public key as base64url text.
func EncodePublicText(key *rsa.PublicKey) (string, error) {
	der, err := MarshalPublic(key)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(der), nil
}

// ParsePrivateText decodes base64url private key text.
func ParsePrivateText(text string) (*rsa.PrivateKey, error) {
	der, err := base64.RawURLEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyText, err)
	}
	return ParsePrivate(der)
}

// ParsePublicText decodes base64url public key text.
func ParsePublicText(text string) (*rsa.PublicKey, error) {
	der, err := base64.RawURLEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyText, err)
	}
	return ParsePublic(der)
}

func addRSAAlgorithmIdentifier(b *cryptobyte.Builder) {
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(oidRSAEncryption)
		b.AddASN1NULL()
	})
}

func readRSAAlgorithmIdentifier(s *cryptobyte.String) error {
	var algID cryptobyte.String
	if !s.ReadASN1(&algID, asn1.SEQUENCE) {
		return fmt.Errorf("%w: missing algorithm identifier", ErrMalformedKey)
	}
	var oid encasn1.ObjectIdentifier
	if !algID.ReadASN1ObjectIdentifier(&oid) {
		return fmt.Errorf("%w: missing algorithm OID", ErrMalformedKey)
	}
	if !oid.Equal(oidRSAEncryption) {
		return fmt.Errorf("%w: %v", ErrUnexpectedAlgorithm, oid)
	}
	// The rsaEncryption parameters field is an explicit NULL.
	if !algID.Empty() && !algID.SkipASN1(asn1.NULL) {
		return fmt.Errorf("%w: unexpected algorithm parameters", ErrMalformedKey)
	}
	if !algID.Empty() {
		return fmt.Errorf("%w: trailing algorithm parameters", ErrMalformedKey)
	}
	return nil
}

// exponentToInt narrows a public exponent to int, rejecting values that
// do not fit.
func exponentToInt(e *big.Int) (int, error) {
	if !e.IsInt64() || e.Int64() > int64(int(^uint(0)>>1)) {
		return 0, fmt.Errorf("%w: public exponent too large", ErrMalformedKey)
	}
	return int(e.Int64()), nil
}
