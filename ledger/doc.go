// Package ledger implements a single-node proof-of-work ledger for signed
// token transfers.
//
// # Core Components
//
// Transaction: An atomic transfer of tokens between two addresses, signed by
// the sender with a Schnorr signature over its core data.
//
// Block: An ordered batch of transactions plus the linkage metadata (previous
// block hash, nonce) that chains it to its predecessor.
//
// Node: The chain owner. It queues submitted transactions, bundles them with
// a reward transaction into new blocks, runs the proof-of-work nonce search
// and answers balance queries by traversing the chain.
//
// # Security Properties
//
// The ledger provides:
//   - Authenticity: no transfer is accepted without a valid signature from
//     the sender's key
//   - Tamper detection: modifying any stored block breaks the hash chain,
//     which ValidateChain reports
//   - Costly history: every block hash satisfies a proof-of-work predicate
//     that is expensive to satisfy and cheap to check
//   - Auditability: balances are recomputed from the full chain on every
//     query, never cached
//
// # Usage
//
// Create a Node with a miner address; it mines its genesis block immediately.
// Sign transactions with the sender's private key, submit them, and call
// MineBlock to commit them to the chain. ValidateChain can be called at any
// time to check the whole chain.
package ledger
