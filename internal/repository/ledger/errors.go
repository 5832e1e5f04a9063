package ledger

import "errors"

var (
	// ErrCorruptRecord indicates a record could not be decoded.
	ErrCorruptRecord = errors.New("ledger: corrupt record")

	// ErrInvalidPayout indicates a payout with a zero recipient or amount.
	ErrInvalidPayout = errors.New("ledger: invalid payout")
)
