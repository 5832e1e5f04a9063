package plan

import "fmt"

// beneficiaryDivisor splits the balance between beneficiaries and the protocol.
const beneficiaryDivisor = 2

// Shares is the frozen distribution of a locked plan.
type Shares struct {
	// PerBeneficiary is paid to every beneficiary that redeems.
	PerBeneficiary uint64
	// Protocol is withheld for the admin. It absorbs the rounding remainder.
	Protocol uint64
}

// ComputeShares splits balance between count beneficiaries and the protocol.
// Half of the balance (rounded down) is divided evenly between the
// beneficiaries (rounded down) and everything else goes to the protocol, so
// PerBeneficiary*count + Protocol == balance.
func ComputeShares(balance, count uint64) (Shares, error) {
	if count == 0 {
		return Shares{}, ErrNoBeneficiaries
	}

	if balance == 0 {
		return Shares{}, ErrNoFunds
	}

	perBeneficiary := balance / beneficiaryDivisor / count

	return Shares{
		PerBeneficiary: perBeneficiary,
		Protocol:       balance - perBeneficiary*count,
	}, nil
}

// PreviewShare is the per-beneficiary amount a plan would lock right now.
func PreviewShare(balance uint64, count int) uint64 {
	if count <= 0 {
		return 0
	}

	return balance / beneficiaryDivisor / uint64(count)
}

// String implements fmt.Stringer.
func (s Shares) String() string {
	return fmt.Sprintf("per_beneficiary=%d protocol=%d", s.PerBeneficiary, s.Protocol)
}
