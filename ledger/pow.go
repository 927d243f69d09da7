package ledger

import "strings"

// Predicate decides whether a block hash satisfies the difficulty policy.
// It must stay cheap: chain validation applies it once per block.
type Predicate func(hash string) bool

// HexSuffix returns the predicate satisfied by hex digests ending in n zero
// characters. Each extra character multiplies the expected nonce search by
// sixteen while verification stays a single hash.
func HexSuffix(n int) Predicate {
	suffix := strings.Repeat("0", n)
	return func(hash string) bool {
		return strings.HasSuffix(hash, suffix)
	}
}

// FindNonce searches for the first nonce that makes the block's hash satisfy
// the predicate, returning that nonce and the matching digest. Nonces are
// tried in order from zero and the search only terminates on success: with an
// unsatisfiable predicate it never returns, a documented limitation of the
// design. The block itself is left untouched; the caller stores the result.
func FindNonce(b Block, pred Predicate) (uint64, string) {
	b.Nonce = 0
	for hash := b.ComputeHash(); !pred(hash); hash = b.ComputeHash() {
		b.Nonce++
	}
	return b.Nonce, b.Hash
}
