// Package wallet manages the key pairs behind ledger addresses: generation,
// address derivation and on-disk storage.
package wallet

import (
	"encoding/pem"
	"fmt"
	"os"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/suites"

	"tokenchain/ledger"
)

var suite suites.Suite = suites.MustFind("Ed25519")

const pemType = "TOKENCHAIN PRIVATE KEY"

// KeyPair holds a private scalar and its public point on the Ed25519 suite.
// The private scalar signs transactions; the public point, in its canonical
// encoding, is the ledger address.
type KeyPair struct {
	Private kyber.Scalar
	Public  kyber.Point
}

// NewKeyPair generates a fresh random key pair.
func NewKeyPair() KeyPair {
	private := suite.Scalar().Pick(suite.RandomStream())
	return KeyPair{
		Private: private,
		Public:  suite.Point().Mul(private, nil),
	}
}

// Address returns the ledger address of the public key.
func (k KeyPair) Address() (ledger.Address, error) {
	return ledger.AddressOf(k.Public)
}

// Save writes the private scalar to path as a PEM block, readable only by
// the owner. The public point is not stored; Load rederives it.
func (k KeyPair) Save(path string) error {
	b, err := k.Private.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal private key: %w", err)
	}
	data := pem.EncodeToMemory(&pem.Block{Type: pemType, Bytes: b})
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return nil
}

// Load reads a key pair previously written by Save.
func Load(path string) (KeyPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KeyPair{}, fmt.Errorf("read key file: %w", err)
	}
	block, _ := pem.Decode(data)
	if block == nil || block.Type != pemType {
		return KeyPair{}, fmt.Errorf("no %s block found in %s", pemType, path)
	}
	private := suite.Scalar()
	if err := private.UnmarshalBinary(block.Bytes); err != nil {
		return KeyPair{}, fmt.Errorf("decode private key: %w", err)
	}
	return KeyPair{
		Private: private,
		Public:  suite.Point().Mul(private, nil),
	}, nil
}
