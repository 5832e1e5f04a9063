// Package ledger persists the vault in a bbolt database.
//
// Plans and the registry meta are stored as CBOR records and written in one
// transaction per commit. The same database keeps the payout instructions
// produced by PayoutStore, which is the vault's outgoing value transfer.
package ledger
