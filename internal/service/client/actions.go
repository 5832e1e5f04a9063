package client

import (
	"context"
	"fmt"
	"io"
	"time"

	api "github.com/oshokin/inheritance-vault/internal/api/grpc/inheritance"
	"github.com/oshokin/inheritance-vault/internal/service/common"
)

// Initialize makes the caller the admin.
func Initialize() Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		resp, err := client.Initialize(ctx)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(out, "Vault initialized, admin: %s\n", resp.Admin)

		return err
	}
}

// CreatePlan opens a plan owned by the caller.
func CreatePlan(beneficiaries []string, timeout time.Duration, deposit uint64) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		resp, err := client.CreatePlan(ctx, beneficiaries, timeout, deposit)
		if err != nil {
			return err
		}

		return writeDetails(out, resp)
	}
}

// AddFunds credits deposit to the caller's plan.
func AddFunds(deposit uint64) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		if err := client.AddFunds(ctx, deposit); err != nil {
			return err
		}

		_, err := fmt.Fprintf(out, "Added %d to the plan\n", deposit)

		return err
	}
}

// AddBeneficiary appends beneficiary to the caller's plan.
func AddBeneficiary(beneficiary string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		if err := client.AddBeneficiary(ctx, beneficiary); err != nil {
			return err
		}

		_, err := fmt.Fprintf(out, "Beneficiary %s added\n", beneficiary)

		return err
	}
}

// RemoveBeneficiary drops beneficiary from the caller's plan.
func RemoveBeneficiary(beneficiary string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		if err := client.RemoveBeneficiary(ctx, beneficiary); err != nil {
			return err
		}

		_, err := fmt.Fprintf(out, "Beneficiary %s removed\n", beneficiary)

		return err
	}
}

// ResetTimer restarts the countdown of the caller's plan.
func ResetTimer() Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		if err := client.ResetTimer(ctx); err != nil {
			return err
		}

		_, err := fmt.Fprintln(out, "Timer reset")

		return err
	}
}

// LockShare freezes the distribution of owner's expired plan.
func LockShare(owner string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		resp, err := client.LockShare(ctx, owner)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(out, "Share locked: %d per beneficiary, %d protocol\n", resp.PerBeneficiary, resp.Protocol)

		return err
	}
}

// Redeem claims the caller's share of owner's plan.
func Redeem(owner string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		resp, err := client.Redeem(ctx, owner)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(out, "Redeemed %d\n", resp.Amount)

		return err
	}
}

// WithdrawAll empties the caller's plan.
func WithdrawAll() Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		resp, err := client.WithdrawAll(ctx)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(out, "Withdrew %d, plan closed\n", resp.Amount)

		return err
	}
}

// WithdrawProtocolShare pays the protocol share of owner's plan to the admin caller.
func WithdrawProtocolShare(owner string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		resp, err := client.WithdrawProtocolShare(ctx, owner)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(out, "Withdrew protocol share %d\n", resp.Amount)

		return err
	}
}

// PlanDetails prints owner's live plan.
func PlanDetails(owner string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		resp, err := client.PlanDetails(ctx, owner)
		if err != nil {
			return err
		}

		return writeDetails(out, resp)
	}
}

// PlanStatus prints whether owner's plan is live and expired.
func PlanStatus(owner string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		resp, err := client.PlanStatus(ctx, owner)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(out, "active: %t, expired: %t\n", resp.Active, resp.Expired)

		return err
	}
}

// Beneficiaries prints the beneficiaries of owner's plan, one per line.
func Beneficiaries(owner string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		resp, err := client.Beneficiaries(ctx, owner)
		if err != nil {
			return err
		}

		for _, b := range resp.Beneficiaries {
			if _, err = fmt.Fprintln(out, b); err != nil {
				return err
			}
		}

		return nil
	}
}

// BeneficiaryDetails prints how beneficiary stands in owner's plan.
func BeneficiaryDetails(owner, beneficiary string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		resp, err := client.BeneficiaryDetails(ctx, owner, beneficiary)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(out, "beneficiary: %t, claimed: %t, potential share: %d\n",
			resp.IsBeneficiary, resp.HasClaimed, resp.PotentialShare)

		return err
	}
}

// Stats prints the registry totals.
func Stats() Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		resp, err := client.Stats(ctx)
		if err != nil {
			return err
		}

		admin := resp.Admin
		if admin == "" {
			admin = "<not initialized>"
		}

		_, err = fmt.Fprintf(out, "plans: %d, custodied: %d, admin: %s\n", resp.OwnerCount, resp.TotalBalance, admin)

		return err
	}
}

// ProtocolShare prints the protocol share of owner's plan.
func ProtocolShare(owner string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		resp, err := client.ProtocolShare(ctx, owner)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(out, "protocol share: %d, locked: %t\n", resp.Amount, resp.Locked)

		return err
	}
}

// Payouts prints the recorded payouts, optionally for one recipient.
func Payouts(recipient string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		resp, err := client.Payouts(ctx, recipient)
		if err != nil {
			return err
		}

		for _, p := range resp.Payouts {
			if _, err = fmt.Fprintln(out, formatPayout(p)); err != nil {
				return err
			}
		}

		return nil
	}
}

// writeDetails prints a plan projection as aligned key-value lines.
func writeDetails(out io.Writer, d *api.PlanDetailsResponse) error {
	_, err := fmt.Fprintf(out,
		"owner:          %s\n"+
			"balance:        %d\n"+
			"beneficiaries:  %d\n"+
			"last reset:     %s\n"+
			"timeout:        %s\n"+
			"expires at:     %s\n"+
			"time remaining: %s\n"+
			"expired:        %t\n"+
			"share locked:   %t\n"+
			"shares:         %d per beneficiary, %d protocol\n",
		d.Owner,
		d.Balance,
		d.BeneficiaryCount,
		formatUnix(d.LastReset),
		time.Duration(d.TimeoutSeconds)*time.Second,
		formatUnix(d.ExpiresAt),
		time.Duration(d.TimeRemainingSeconds)*time.Second,
		d.Expired,
		d.ShareLocked,
		d.PerBeneficiaryShare,
		d.ProtocolShare,
	)

	return err
}

// formatPayout renders one payout as a single line.
func formatPayout(p *api.Payout) string {
	if p == nil {
		return "<nil payout>"
	}

	return fmt.Sprintf("%s %s %d to %s (script %s)", formatUnix(p.CreatedAt), p.ID, p.Amount, p.Recipient, p.LockingScript)
}

// formatUnix renders Unix seconds as RFC3339 in UTC.
func formatUnix(seconds int64) string {
	return time.Unix(seconds, 0).UTC().Format(time.RFC3339)
}
