package ledger

import "testing"

// testBlock builds a block with two unsigned transfers between fresh
// addresses, enough structure to exercise hashing.
func testBlock(t *testing.T) Block {
	t.Helper()
	_, a := newTestKey(t)
	_, b := newTestKey(t)
	return Block{
		Num:       3,
		Timestamp: 1700000000,
		PrevHash:  "aabbcc",
		Transactions: []Transaction{
			NewTransfer(a, b, 1.5),
			NewTransfer(b, a, 0.25),
		},
	}
}

// TestComputeHashDeterministic verifies that identical header fields always
// produce an identical digest, and that the digest is cached on the block.
func TestComputeHashDeterministic(t *testing.T) {
	b := testBlock(t)
	first := b.ComputeHash()
	second := b.ComputeHash()
	if first != second {
		t.Fatalf("hash should be deterministic: %s != %s", first, second)
	}
	if b.Hash != first {
		t.Fatal("ComputeHash should cache the digest on the block")
	}
	if len(first) != 64 {
		t.Fatalf("expected a 64 character hex digest, got %d characters", len(first))
	}
}

// TestComputeHashCoversHeaderFields verifies that every header field,
// including the nonce and the transaction order, changes the digest.
func TestComputeHashCoversHeaderFields(t *testing.T) {
	base := testBlock(t)
	baseHash := base.ComputeHash()

	mutations := map[string]func(*Block){
		"num":       func(b *Block) { b.Num++ },
		"timestamp": func(b *Block) { b.Timestamp++ },
		"prev hash": func(b *Block) { b.PrevHash = "ddeeff" },
		"nonce":     func(b *Block) { b.Nonce++ },
		"amount":    func(b *Block) { b.Transactions[0].Amount += 1 },
		"tx order": func(b *Block) {
			b.Transactions[0], b.Transactions[1] = b.Transactions[1], b.Transactions[0]
		},
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			b := base
			b.Transactions = append([]Transaction(nil), base.Transactions...)
			mutate(&b)
			if b.ComputeHash() == baseHash {
				t.Fatalf("changing %s should change the block hash", name)
			}
		})
	}
}

// TestValidateAppliesPredicate verifies that Validate recomputes the hash and
// simply reports the predicate's verdict on it.
func TestValidateAppliesPredicate(t *testing.T) {
	b := testBlock(t)
	if !b.Validate(func(string) bool { return true }) {
		t.Fatal("block should validate under an always-true predicate")
	}
	if b.Validate(func(string) bool { return false }) {
		t.Fatal("block should not validate under an always-false predicate")
	}

	var seen string
	b.Validate(func(hash string) bool {
		seen = hash
		return true
	})
	if seen != b.ComputeHash() {
		t.Fatal("Validate should pass the recomputed hash to the predicate")
	}
}
