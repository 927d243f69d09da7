package ledger

import (
	"errors"
	"fmt"
)

// ErrSignatureInvalid reports a transaction whose signature is missing,
// malformed or does not verify against its sender address.
var ErrSignatureInvalid = errors.New("invalid transaction signature")

// InsufficientFundsError reports a transfer worth more than the sender's
// balance at submission time.
type InsufficientFundsError struct {
	Required  float64
	Available float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient tokens available (%g required, %g available)", e.Required, e.Available)
}

// ChainIntegrityError identifies the first block at which chain validation
// failed: either its previous-hash link does not match its predecessor or its
// recomputed hash no longer satisfies the proof-of-work predicate.
type ChainIntegrityError struct {
	Num    uint64
	Reason string
}

func (e *ChainIntegrityError) Error() string {
	return fmt.Sprintf("block %d: %s", e.Num, e.Reason)
}
