package ledger

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/bsv-blockchain/go-sdk/script"
	"github.com/bsv-blockchain/go-sdk/transaction/template/p2pkh"
	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/oshokin/inheritance-vault/internal/custody"
	"github.com/oshokin/inheritance-vault/internal/domain/plan"
)

// Payout is an instruction to pay Amount to Recipient.
type Payout struct {
	ID            uuid.UUID
	Recipient     plan.Address
	Amount        uint64
	LockingScript []byte
	CreatedAt     time.Time
}

// Address returns the recipient in mainnet P2PKH form.
func (p *Payout) Address() string {
	return p.Recipient.String()
}

// PayoutStore records outgoing transfers in the ledger.
// Each transfer becomes a payout instruction locked to the recipient's key hash.
type PayoutStore struct {
	db  *bbolt.DB
	now func() time.Time
}

var _ custody.Transferer = (*PayoutStore)(nil)

// Payouts returns the payout journal sharing the store's database.
func (s *BoltStore) Payouts() *PayoutStore {
	return &PayoutStore{
		db:  s.db,
		now: time.Now,
	}
}

// Transfer records a payout of amount to to.
func (s *PayoutStore) Transfer(ctx context.Context, to plan.Address, amount uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if to.IsZero() || amount == 0 {
		return ErrInvalidPayout
	}

	lockingScript, err := lockingScriptFor(to)
	if err != nil {
		return err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("generate payout id: %w", err)
	}

	data, err := encodePayout(&Payout{
		ID:            id,
		Recipient:     to,
		Amount:        amount,
		LockingScript: lockingScript,
		CreatedAt:     s.now(),
	})
	if err != nil {
		return fmt.Errorf("encode payout: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketPayouts)

		seq, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("next payout sequence: %w", err)
		}

		if err = b.Put(sequenceKey(seq), data); err != nil {
			return fmt.Errorf("put payout: %w", err)
		}

		return nil
	})
}

// List returns the payouts in the order they were made.
// A zero recipient lists every payout.
func (s *PayoutStore) List(ctx context.Context, recipient plan.Address) ([]*Payout, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var payouts []*Payout

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPayouts).ForEach(func(_, v []byte) error {
			p, err := decodePayout(v)
			if err != nil {
				return err
			}

			if recipient.IsZero() || p.Recipient == recipient {
				payouts = append(payouts, p)
			}

			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list payouts: %w", err)
	}

	return payouts, nil
}

// lockingScriptFor builds the P2PKH locking script paying to.
func lockingScriptFor(to plan.Address) ([]byte, error) {
	addr, err := script.NewAddressFromPublicKeyHash(to[:], true)
	if err != nil {
		return nil, fmt.Errorf("derive payout address: %w", err)
	}

	lock, err := p2pkh.Lock(addr)
	if err != nil {
		return nil, fmt.Errorf("build locking script: %w", err)
	}

	return *lock, nil
}

// sequenceKey encodes seq big-endian so keys sort in insertion order.
func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)

	return key
}
