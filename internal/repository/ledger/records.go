package ledger

import (
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/oshokin/inheritance-vault/internal/custody"
	"github.com/oshokin/inheritance-vault/internal/domain/plan"
)

// metaRecord is the stored form of custody.Meta.
type metaRecord struct {
	Admin      plan.Address `cbor:"admin"`
	OwnerCount uint64       `cbor:"owner_count"`
}

// planRecord is the stored form of plan.Plan.
type planRecord struct {
	Owner          plan.Address   `cbor:"owner"`
	Active         bool           `cbor:"active"`
	Beneficiaries  []plan.Address `cbor:"beneficiaries"`
	Claimed        []plan.Address `cbor:"claimed"`
	LastResetNanos int64          `cbor:"last_reset"`
	TimeoutNanos   int64          `cbor:"timeout"`
	Balance        uint64         `cbor:"balance"`
	PerBeneficiary uint64         `cbor:"per_beneficiary_share"`
	ProtocolShare  uint64         `cbor:"protocol_share"`
	ShareLocked    bool           `cbor:"share_locked"`
}

// payoutRecord is the stored form of Payout.
type payoutRecord struct {
	ID             uuid.UUID    `cbor:"id"`
	Recipient      plan.Address `cbor:"recipient"`
	Amount         uint64       `cbor:"amount"`
	LockingScript  []byte       `cbor:"locking_script"`
	CreatedAtNanos int64        `cbor:"created_at"`
}

func encodeMeta(meta custody.Meta) ([]byte, error) {
	return cbor.Marshal(metaRecord{
		Admin:      meta.Admin,
		OwnerCount: meta.OwnerCount,
	})
}

func decodeMeta(data []byte) (custody.Meta, error) {
	var rec metaRecord
	if err := cbor.Unmarshal(data, &rec); err != nil {
		return custody.Meta{}, fmt.Errorf("%w: meta: %w", ErrCorruptRecord, err)
	}

	return custody.Meta{
		Admin:      rec.Admin,
		OwnerCount: rec.OwnerCount,
	}, nil
}

// encodePlan converts a domain plan into its CBOR record.
func encodePlan(p *plan.Plan) ([]byte, error) {
	rec := planRecord{
		Owner:          p.Owner,
		Active:         p.Active,
		Beneficiaries:  p.Beneficiaries.List(),
		LastResetNanos: p.LastReset.UnixNano(),
		TimeoutNanos:   int64(p.Timeout),
		Balance:        p.Balance,
		PerBeneficiary: p.Shares.PerBeneficiary,
		ProtocolShare:  p.Shares.Protocol,
		ShareLocked:    p.ShareLocked,
	}

	for addr, claimed := range p.Claimed {
		if claimed {
			rec.Claimed = append(rec.Claimed, addr)
		}
	}

	return cbor.Marshal(rec)
}

// decodePlan converts a CBOR record back into a domain plan.
func decodePlan(data []byte) (*plan.Plan, error) {
	var rec planRecord
	if err := cbor.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: plan: %w", ErrCorruptRecord, err)
	}

	p := &plan.Plan{
		Owner:         rec.Owner,
		Active:        rec.Active,
		Beneficiaries: plan.NewBeneficiaries(rec.Beneficiaries),
		LastReset:     time.Unix(0, rec.LastResetNanos),
		Timeout:       time.Duration(rec.TimeoutNanos),
		Balance:       rec.Balance,
		Shares: plan.Shares{
			PerBeneficiary: rec.PerBeneficiary,
			Protocol:       rec.ProtocolShare,
		},
		ShareLocked: rec.ShareLocked,
	}

	if p.Beneficiaries.Len() != len(rec.Beneficiaries) {
		return nil, fmt.Errorf("%w: plan %s: invalid beneficiary set", ErrCorruptRecord, rec.Owner.Hex())
	}

	if len(rec.Claimed) > 0 {
		p.Claimed = make(map[plan.Address]bool, len(rec.Claimed))
		for _, addr := range rec.Claimed {
			p.Claimed[addr] = true
		}
	}

	return p, nil
}

func encodePayout(p *Payout) ([]byte, error) {
	return cbor.Marshal(payoutRecord{
		ID:             p.ID,
		Recipient:      p.Recipient,
		Amount:         p.Amount,
		LockingScript:  p.LockingScript,
		CreatedAtNanos: p.CreatedAt.UnixNano(),
	})
}

func decodePayout(data []byte) (*Payout, error) {
	var rec payoutRecord
	if err := cbor.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: payout: %w", ErrCorruptRecord, err)
	}

	return &Payout{
		ID:            rec.ID,
		Recipient:     rec.Recipient,
		Amount:        rec.Amount,
		LockingScript: rec.LockingScript,
		CreatedAt:     time.Unix(0, rec.CreatedAtNanos),
	}, nil
}
