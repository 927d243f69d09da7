package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// GenesisPrevHash is the sentinel previous hash carried by the first block.
const GenesisPrevHash = "-"

// Block is an ordered batch of transactions plus the metadata linking it to
// the previous block. The transaction order is part of the hashed header, so
// it is significant. Once a block is appended to the chain it is immutable.
type Block struct {
	Num          uint64        `json:"num"`
	Timestamp    int64         `json:"timestamp"`
	PrevHash     string        `json:"prev_hash"`
	Transactions []Transaction `json:"transactions"`
	Hash         string        `json:"hash"`
	Nonce        uint64        `json:"nonce"`
}

// header serializes the fields that uniquely identify the block and link it
// to its predecessor: everything but the cached hash. The transaction list is
// JSON encoded so that its order stays part of the header; no field depends
// on map iteration, so identical headers always serialize identically.
func (b *Block) header() []byte {
	txs, _ := json.Marshal(b.Transactions)
	return []byte(fmt.Sprintf("%d%d%s%d%s", b.Num, b.Timestamp, b.PrevHash, b.Nonce, txs))
}

// ComputeHash hashes the block header with SHA-256, caches the hex digest on
// the block and returns it. Stored hashes are never trusted: validation
// always goes through here.
func (b *Block) ComputeHash() string {
	sum := sha256.Sum256(b.header())
	b.Hash = hex.EncodeToString(sum[:])
	return b.Hash
}

// Validate recomputes the block hash and reports whether it satisfies the
// proof-of-work predicate. This costs a single hash regardless of how
// expensive the original nonce search was.
func (b *Block) Validate(pred Predicate) bool {
	return pred(b.ComputeHash())
}
