package ledger

import (
	"encoding/hex"
	"fmt"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// AddressSize is the length of the canonical encoding of an Ed25519 point.
const AddressSize = 32

// Address is the canonical byte encoding of a public key. Two addresses name
// the same account exactly when their bytes are equal. The zero value is
// reserved for protocol-issued reward transactions and never belongs to a
// user.
type Address [AddressSize]byte

// AddressOf derives the address of a public key point.
func AddressOf(public kyber.Point) (Address, error) {
	var addr Address
	b, err := public.MarshalBinary()
	if err != nil {
		return Address{}, fmt.Errorf("marshal public key: %w", err)
	}
	if len(b) != AddressSize {
		return Address{}, fmt.Errorf("unexpected public key length %d", len(b))
	}
	copy(addr[:], b)
	return addr, nil
}

// PublicKey decodes the address back into the group point it encodes.
func (a Address) PublicKey() (kyber.Point, error) {
	p := suite.Point()
	if err := p.UnmarshalBinary(a[:]); err != nil {
		return nil, fmt.Errorf("decode address: %w", err)
	}
	return p, nil
}

// IsZero reports whether a is the reserved zero address.
func (a Address) IsZero() bool {
	return a == Address{}
}

// MarshalText encodes the address as lowercase hex. This is also how
// addresses appear in JSON, and therefore in every hashed serialization.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(a[:])), nil
}

// UnmarshalText decodes the hex form produced by MarshalText.
func (a *Address) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return err
	}
	if len(b) != AddressSize {
		return fmt.Errorf("address must be %d bytes, got %d", AddressSize, len(b))
	}
	copy(a[:], b)
	return nil
}

// String returns an abbreviated hex form for logs.
func (a Address) String() string {
	return hex.EncodeToString(a[:6])
}
