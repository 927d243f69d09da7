package ledger

import "log/slog"

// Option configures a Node before its genesis block is mined.
type Option func(*Node)

// WithProofOfWork replaces the difficulty predicate. Tests use trivial
// predicates to keep mining deterministic and fast; any replacement must
// remain cheap to evaluate.
func WithProofOfWork(pred Predicate) Option {
	return func(n *Node) {
		n.pow = pred
	}
}

// WithReward replaces the amount credited to the miner per mined block.
func WithReward(amount float64) Option {
	return func(n *Node) {
		n.reward = amount
	}
}

// WithLogger replaces the logger used for mining and submission events.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Node) {
		n.log = logger
	}
}
