package ledger

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultReward is the amount credited to the miner per mined block.
	DefaultReward = 2.0

	// DefaultDifficulty is the number of trailing zero characters the
	// default proof-of-work predicate requires of a block hash.
	DefaultDifficulty = 3
)

// Node owns an append-only chain of blocks and the pool of transactions
// waiting to be mined into the next one. All state is guarded by a single
// lock, so a submission arriving while a block is being mined is neither
// dropped nor included twice.
type Node struct {
	mu      sync.RWMutex
	miner   Address
	blocks  []Block
	pending []Transaction
	pow     Predicate
	reward  float64
	log     *slog.Logger
}

// New creates a node mining on behalf of miner and immediately mines the
// genesis block, so the chain is never empty.
func New(miner Address, opts ...Option) *Node {
	n := &Node{
		miner:  miner,
		pow:    HexSuffix(DefaultDifficulty),
		reward: DefaultReward,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.MineBlock()
	return n
}

// SubmitTransaction validates tx and queues it for the next block. It fails
// with ErrSignatureInvalid if the transaction is not properly signed by its
// sender, and with *InsufficientFundsError if the sender's balance cannot
// cover the transfer. A failed submission leaves the pending pool and the
// chain untouched.
func (n *Node) SubmitTransaction(tx Transaction) error {
	if tx.IsReward() {
		return fmt.Errorf("%w: reward transactions are protocol-issued", ErrSignatureInvalid)
	}
	if err := tx.Validate(); err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	available := n.balance(tx.Sender)
	if available < tx.Amount {
		return &InsufficientFundsError{Required: tx.Amount, Available: available}
	}
	n.pending = append(n.pending, tx)
	n.log.Debug("transaction accepted",
		"sender", tx.Sender, "recipient", tx.Recipient, "amount", tx.Amount)
	return nil
}

// MineBlock bundles the pending transactions plus one reward transaction for
// the miner into the next block, runs the nonce search until the block hash
// satisfies the proof-of-work predicate and appends the block to the chain.
// The pending pool is cleared in the same critical section. Mining cannot
// fail: reward issuance is unconditional, so an empty pool still produces a
// block. Returns the mined block.
func (n *Node) MineBlock() Block {
	n.mu.Lock()
	defer n.mu.Unlock()

	num := uint64(0)
	prevHash := GenesisPrevHash
	if len(n.blocks) > 0 {
		prev := n.blocks[len(n.blocks)-1]
		num = prev.Num + 1
		prevHash = prev.Hash
	}

	// The reward goes last so the miner's payout closes the block.
	txs := make([]Transaction, 0, len(n.pending)+1)
	txs = append(txs, n.pending...)
	txs = append(txs, NewReward(n.miner, n.reward))
	n.pending = nil

	block := Block{
		Num:          num,
		Timestamp:    time.Now().Unix(),
		PrevHash:     prevHash,
		Transactions: txs,
	}
	block.Nonce, block.Hash = FindNonce(block, n.pow)

	n.blocks = append(n.blocks, block)
	n.log.Info("mined block",
		"num", block.Num, "nonce", block.Nonce, "transactions", len(block.Transactions))
	return block
}

// ValidateChain walks the chain from the genesis block, checking that every
// block links to the recomputed hash of its predecessor and that every block
// hash satisfies the proof-of-work predicate. The first violation is reported
// as a *ChainIntegrityError naming the offending block. The chain itself is
// never modified.
func (n *Node) ValidateChain() error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	prevHash := GenesisPrevHash
	for _, b := range n.blocks {
		if b.PrevHash != prevHash {
			return &ChainIntegrityError{
				Num:    b.Num,
				Reason: fmt.Sprintf("previous hash %q does not match %q", b.PrevHash, prevHash),
			}
		}
		if !b.Validate(n.pow) {
			return &ChainIntegrityError{Num: b.Num, Reason: "hash does not satisfy proof of work"}
		}
		// b is a copy, so Validate recomputed the hash without touching
		// the stored block; linking against the recomputation is what
		// makes tampering with block contents break the chain here.
		prevHash = b.Hash
	}
	return nil
}

// Balance derives the balance of addr by walking every transaction in every
// block: transfers out of addr debit it, transfers (and rewards) into addr
// credit it. An address never seen on the chain has balance zero. Nothing is
// cached; repeated calls recompute from the chain and always agree with it.
func (n *Node) Balance(addr Address) float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.balance(addr)
}

// balance is the lock-free traversal shared by Balance and SubmitTransaction.
func (n *Node) balance(addr Address) float64 {
	total := 0.0
	for _, b := range n.blocks {
		for _, t := range b.Transactions {
			switch {
			case !t.IsReward() && t.Sender == addr:
				total -= t.Amount
			case t.Recipient == addr:
				total += t.Amount
			}
		}
	}
	return total
}

// Miner returns the address credited by this node's reward transactions.
func (n *Node) Miner() Address {
	return n.miner
}

// Height returns the number of blocks in the chain.
func (n *Node) Height() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.blocks)
}

// Latest returns the most recently mined block.
func (n *Node) Latest() Block {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.blocks[len(n.blocks)-1]
}

// BlockAt retrieves the block at index i. It fails if i is out of range.
func (n *Node) BlockAt(i int) (Block, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if i < 0 || i >= len(n.blocks) {
		return Block{}, fmt.Errorf("block index %d out of range", i)
	}
	return n.blocks[i], nil
}

// PendingCount returns the number of transactions waiting to be mined.
func (n *Node) PendingCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.pending)
}
