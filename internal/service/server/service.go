package server

import (
	"context"
	"fmt"

	api "github.com/oshokin/inheritance-vault/internal/api/grpc/inheritance"
	"github.com/oshokin/inheritance-vault/internal/custody"
	"github.com/oshokin/inheritance-vault/internal/domain/plan"
	"github.com/oshokin/inheritance-vault/internal/logger"
	"github.com/oshokin/inheritance-vault/internal/repository/ledger"
)

// Journal pays value out of the vault and remembers what it paid.
type Journal interface {
	custody.Transferer
	List(ctx context.Context, recipient plan.Address) ([]*ledger.Payout, error)
}

// service joins the custody engine with the payout journal.
// It is unexported to keep the transport decoupled from the implementation.
type service struct {
	*custody.Engine

	// journal records outgoing transfers.
	journal Journal
}

var _ api.Service = (*service)(nil)

// newService restores an engine from repository and pays out through journal.
func newService(ctx context.Context, repository ledger.Repository, journal Journal) (*service, error) {
	engine := custody.New(journal, custody.WithStore(repository))

	meta, plans, err := repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	if err = engine.Restore(meta, plans); err != nil {
		return nil, fmt.Errorf("restore vault: %w", err)
	}

	logger.InfoKV(ctx, "Vault restored",
		"owner_count", meta.OwnerCount,
		"plans", len(plans),
		"initialized", !meta.Admin.IsZero(),
	)

	return &service{
		Engine:  engine,
		journal: journal,
	}, nil
}

// Payouts lists the journaled transfers to recipient, or all of them for the zero address.
func (s *service) Payouts(ctx context.Context, recipient plan.Address) ([]*ledger.Payout, error) {
	payouts, err := s.journal.List(ctx, recipient)
	if err != nil {
		logger.ErrorKV(ctx, "Failed to list payouts", "error", err)

		return nil, fmt.Errorf("list payouts: %w", err)
	}

	return payouts, nil
}
