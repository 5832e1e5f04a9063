package plan

import "slices"

// MaxBeneficiaries caps the beneficiary set of a plan.
const MaxBeneficiaries = 5

// Beneficiaries is a bounded set of addresses that remembers insertion order.
// The zero value is an empty set.
type Beneficiaries struct {
	members []Address
}

// NewBeneficiaries keeps the first MaxBeneficiaries non-zero unique addresses of candidates.
func NewBeneficiaries(candidates []Address) Beneficiaries {
	var set Beneficiaries

	for _, candidate := range candidates {
		if set.Len() == MaxBeneficiaries {
			break
		}

		// Zero and duplicate entries are dropped silently.
		_ = set.Add(candidate)
	}

	return set
}

// Add inserts addr at the end of the set.
func (b *Beneficiaries) Add(addr Address) error {
	switch {
	case addr.IsZero():
		return ErrZeroAddress
	case b.Contains(addr):
		return ErrDuplicateBeneficiary
	case len(b.members) >= MaxBeneficiaries:
		return ErrTooManyBeneficiaries
	}

	b.members = append(b.members, addr)

	return nil
}

// Remove deletes addr from the set, keeping the order of the rest.
func (b *Beneficiaries) Remove(addr Address) error {
	idx := slices.Index(b.members, addr)
	if idx < 0 {
		return ErrNotBeneficiary
	}

	b.members = slices.Delete(b.members, idx, idx+1)

	return nil
}

// Contains reports whether addr is a member.
func (b *Beneficiaries) Contains(addr Address) bool {
	return slices.Contains(b.members, addr)
}

// Len returns the cardinality of the set.
func (b *Beneficiaries) Len() int {
	return len(b.members)
}

// List returns the members in insertion order. The slice is a copy.
func (b *Beneficiaries) List() []Address {
	return slices.Clone(b.members)
}
