package ledger

import (
	"encoding/json"
	"fmt"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/sign/schnorr"
)

// Transaction is an atomic transfer of tokens between two addresses. A
// transaction is created unsigned, signed once by its sender, submitted to a
// Node and finally consumed into exactly one block; it is never modified
// after that.
//
// Reward transactions are a separate variant built with NewReward: they have
// no sender, carry no signature and are issued only by the protocol itself.
type Transaction struct {
	Sender    Address `json:"sender"`
	Recipient Address `json:"recipient"`
	Amount    float64 `json:"amount"`
	Reward    bool    `json:"reward,omitempty"`
	Signature []byte  `json:"signature,omitempty"`
}

// NewTransfer builds an unsigned transfer of amount tokens from sender to
// recipient. The sender must call Sign before the transfer can be submitted.
func NewTransfer(sender, recipient Address, amount float64) Transaction {
	return Transaction{Sender: sender, Recipient: recipient, Amount: amount}
}

// NewReward builds a protocol-issued transaction crediting the miner of a
// block. Rewards are the only way new tokens enter the chain.
func NewReward(recipient Address, amount float64) Transaction {
	return Transaction{Recipient: recipient, Amount: amount, Reward: true}
}

// IsReward reports whether t was issued by the protocol rather than a user.
func (t Transaction) IsReward() bool {
	return t.Reward
}

// CoreData returns the deterministic serialization of everything the sender
// vouches for: the transaction with its signature cleared. Both signing and
// verification run over these bytes, so the signature never covers itself.
func (t Transaction) CoreData() ([]byte, error) {
	tmp := t
	tmp.Signature = nil
	return json.Marshal(tmp)
}

// Sign signs the transaction's core data with the sender's private key and
// stores the signature; signing again overwrites it. The fresh signature is
// verified before returning, so a mismatched key pair fails here instead of
// at submission time.
func (t *Transaction) Sign(private kyber.Scalar) error {
	if t.Reward {
		return fmt.Errorf("reward transactions are issued unsigned")
	}
	msg, err := t.CoreData()
	if err != nil {
		return fmt.Errorf("serialize transaction: %w", err)
	}
	sig, err := schnorr.Sign(suite, private, msg)
	if err != nil {
		return fmt.Errorf("sign transaction: %w", err)
	}
	t.Signature = sig
	return t.Validate()
}

// Validate checks that the stored signature verifies against the sender
// address over the transaction's core data. It fails with ErrSignatureInvalid
// when the signature is missing, the sender address does not decode to a
// curve point, or the signature does not verify.
//
// Reward transactions always fail here since they carry no signature; callers
// must treat them as a separate variant instead of validating them.
func (t Transaction) Validate() error {
	if len(t.Signature) == 0 {
		return fmt.Errorf("%w: missing signature", ErrSignatureInvalid)
	}
	public, err := t.Sender.PublicKey()
	if err != nil {
		return fmt.Errorf("%w: malformed sender address: %v", ErrSignatureInvalid, err)
	}
	msg, err := t.CoreData()
	if err != nil {
		return fmt.Errorf("serialize transaction: %w", err)
	}
	if err := schnorr.Verify(suite, public, msg, t.Signature); err != nil {
		return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}
	return nil
}
