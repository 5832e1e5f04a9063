package ledger

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/oshokin/inheritance-vault/internal/config"
	"github.com/oshokin/inheritance-vault/internal/custody"
	"github.com/oshokin/inheritance-vault/internal/domain/plan"
)

var (
	bucketPlans    = []byte("plans")
	bucketRegistry = []byte("registry")
	bucketPayouts  = []byte("payouts")

	keyMeta = []byte("meta")
)

// openTimeout bounds waiting for the file lock held by another process.
const openTimeout = time.Second

// Repository defines persistence operations for the vault state.
type Repository interface {
	custody.Store
	Load(ctx context.Context) (custody.Meta, []*plan.Plan, error)
}

// BoltStore keeps the vault state in a bbolt database.
type BoltStore struct {
	db *bbolt.DB
}

var _ Repository = (*BoltStore)(nil)

// Open opens or creates the ledger at path.
func Open(path string) (*BoltStore, error) {
	db, err := bbolt.Open(filepath.Clean(path), config.DefaultFilePermissions, &bbolt.Options{
		Timeout: openTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketPlans, bucketRegistry, bucketPayouts} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}

	return &BoltStore{db: db}, nil
}

// Close releases the database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Path returns the database file location.
func (s *BoltStore) Path() string {
	return s.db.Path()
}

// Load reads the registry meta and every stored plan.
// An empty ledger yields a zero Meta and no plans.
func (s *BoltStore) Load(ctx context.Context) (custody.Meta, []*plan.Plan, error) {
	if err := ctx.Err(); err != nil {
		return custody.Meta{}, nil, err
	}

	var (
		meta  custody.Meta
		plans []*plan.Plan
	)

	err := s.db.View(func(tx *bbolt.Tx) error {
		if data := tx.Bucket(bucketRegistry).Get(keyMeta); data != nil {
			decoded, err := decodeMeta(data)
			if err != nil {
				return err
			}

			meta = decoded
		}

		return tx.Bucket(bucketPlans).ForEach(func(_, v []byte) error {
			p, err := decodePlan(v)
			if err != nil {
				return err
			}

			plans = append(plans, p)

			return nil
		})
	})
	if err != nil {
		return custody.Meta{}, nil, fmt.Errorf("load ledger: %w", err)
	}

	return meta, plans, nil
}

// Commit writes meta and plans in a single transaction.
func (s *BoltStore) Commit(ctx context.Context, meta custody.Meta, plans ...*plan.Plan) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	metaData, err := encodeMeta(meta)
	if err != nil {
		return fmt.Errorf("encode meta: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketRegistry).Put(keyMeta, metaData); err != nil {
			return fmt.Errorf("put meta: %w", err)
		}

		b := tx.Bucket(bucketPlans)

		for _, p := range plans {
			data, err := encodePlan(p)
			if err != nil {
				return fmt.Errorf("encode plan %s: %w", p.Owner.Hex(), err)
			}

			if err = b.Put(p.Owner[:], data); err != nil {
				return fmt.Errorf("put plan %s: %w", p.Owner.Hex(), err)
			}
		}

		return nil
	})
}
