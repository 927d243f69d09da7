package ledger

import "testing"

// TestHexSuffix verifies the default difficulty policy: a digest satisfies
// HexSuffix(n) exactly when it ends in n zero characters.
func TestHexSuffix(t *testing.T) {
	cases := []struct {
		hash string
		n    int
		want bool
	}{
		{"abc000", 3, true},
		{"abc000", 4, false},
		{"000abc", 3, false},
		{"abc0", 1, true},
		{"abc", 0, true},
		{"", 1, false},
	}
	for _, c := range cases {
		if got := HexSuffix(c.n)(c.hash); got != c.want {
			t.Errorf("HexSuffix(%d)(%q) = %v, want %v", c.n, c.hash, got, c.want)
		}
	}
}

// TestFindNonceSatisfiesPredicate verifies that the nonce search returns a
// nonce whose block hash satisfies the predicate, and that recomputing the
// hash with that nonce reproduces the returned digest.
func TestFindNonceSatisfiesPredicate(t *testing.T) {
	pred := HexSuffix(2)
	b := testBlock(t)

	nonce, hash := FindNonce(b, pred)
	if !pred(hash) {
		t.Fatalf("returned hash %s does not satisfy the predicate", hash)
	}

	b.Nonce = nonce
	if recomputed := b.ComputeHash(); recomputed != hash {
		t.Fatalf("recomputed hash %s does not match returned hash %s", recomputed, hash)
	}
}

// TestFindNonceReturnsFirstSatisfying verifies the search is exhaustive from
// zero: every nonce below the returned one fails the predicate.
func TestFindNonceReturnsFirstSatisfying(t *testing.T) {
	pred := HexSuffix(2)
	b := testBlock(t)

	nonce, _ := FindNonce(b, pred)
	if nonce == 0 {
		t.Skip("first nonce already satisfies the predicate")
	}

	b.Nonce = nonce - 1
	if pred(b.ComputeHash()) {
		t.Fatal("nonce-1 should not satisfy the predicate")
	}
}

// TestFindNonceLeavesBlockUntouched verifies the search is pure with respect
// to the caller's block: nonce and cached hash stay as they were.
func TestFindNonceLeavesBlockUntouched(t *testing.T) {
	b := testBlock(t)
	b.Nonce = 42
	b.Hash = "stale"

	FindNonce(b, HexSuffix(1))
	if b.Nonce != 42 || b.Hash != "stale" {
		t.Fatal("FindNonce should not mutate the caller's block")
	}
}

// TestFindNonceTrivialPredicate verifies that an always-true predicate is
// satisfied by nonce zero, the degenerate case used throughout the node
// tests for deterministic mining.
func TestFindNonceTrivialPredicate(t *testing.T) {
	b := testBlock(t)
	nonce, hash := FindNonce(b, func(string) bool { return true })
	if nonce != 0 {
		t.Fatalf("expected nonce 0 under an always-true predicate, got %d", nonce)
	}
	b.Nonce = 0
	if b.ComputeHash() != hash {
		t.Fatal("returned hash should match the hash at nonce 0")
	}
}
