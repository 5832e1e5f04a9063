package inheritance

// Addresses travel as strings: base58check P2PKH or 0x-prefixed hex.
// Times travel as Unix seconds and durations as whole seconds.

// SystemActor identifies the machine and user behind a request for the audit log.
type SystemActor struct {
	Hostname string `cbor:"hostname"`
	Username string `cbor:"username"`
	// Client is the name and version of the tool that sent the request.
	Client string `cbor:"client,omitempty"`
}

// InitializeRequest makes Caller the admin.
type InitializeRequest struct {
	Actor  *SystemActor `cbor:"actor"`
	Caller string       `cbor:"caller"`
}

// InitializeResponse reports the admin.
type InitializeResponse struct {
	Admin string `cbor:"admin"`
}

// CreatePlanRequest opens a plan owned by Caller.
type CreatePlanRequest struct {
	Actor          *SystemActor `cbor:"actor"`
	Caller         string       `cbor:"caller"`
	Beneficiaries  []string     `cbor:"beneficiaries"`
	TimeoutSeconds uint64       `cbor:"timeout_seconds"`
	Deposit        uint64       `cbor:"deposit"`
}

// AddFundsRequest credits Deposit to the plan of Caller.
type AddFundsRequest struct {
	Actor   *SystemActor `cbor:"actor"`
	Caller  string       `cbor:"caller"`
	Deposit uint64       `cbor:"deposit"`
}

// BeneficiaryRequest adds or removes Beneficiary from the plan of Caller.
type BeneficiaryRequest struct {
	Actor       *SystemActor `cbor:"actor"`
	Caller      string       `cbor:"caller"`
	Beneficiary string       `cbor:"beneficiary"`
}

// ResetTimerRequest restarts the countdown of the plan of Caller.
type ResetTimerRequest struct {
	Actor  *SystemActor `cbor:"actor"`
	Caller string       `cbor:"caller"`
}

// OwnerRequest addresses the plan of Owner on behalf of Caller.
type OwnerRequest struct {
	Actor  *SystemActor `cbor:"actor"`
	Caller string       `cbor:"caller"`
	Owner  string       `cbor:"owner"`
}

// WithdrawAllRequest empties the plan of Caller.
type WithdrawAllRequest struct {
	Actor  *SystemActor `cbor:"actor"`
	Caller string       `cbor:"caller"`
}

// BeneficiaryDetailsRequest asks how Beneficiary stands in the plan of Owner.
type BeneficiaryDetailsRequest struct {
	Actor       *SystemActor `cbor:"actor"`
	Caller      string       `cbor:"caller"`
	Owner       string       `cbor:"owner"`
	Beneficiary string       `cbor:"beneficiary"`
}

// StatsRequest asks for registry totals.
type StatsRequest struct {
	Actor  *SystemActor `cbor:"actor"`
	Caller string       `cbor:"caller"`
}

// ListPayoutsRequest lists payouts to Recipient, or all payouts when it is empty.
type ListPayoutsRequest struct {
	Actor     *SystemActor `cbor:"actor"`
	Caller    string       `cbor:"caller"`
	Recipient string       `cbor:"recipient"`
}

// Empty is returned by operations without a result.
type Empty struct{}

// SharesResponse carries a locked distribution.
type SharesResponse struct {
	PerBeneficiary uint64 `cbor:"per_beneficiary"`
	Protocol       uint64 `cbor:"protocol"`
}

// AmountResponse carries the value paid out.
type AmountResponse struct {
	Amount uint64 `cbor:"amount"`
}

// PlanDetailsResponse projects a live plan.
type PlanDetailsResponse struct {
	Owner                string `cbor:"owner"`
	Balance              uint64 `cbor:"balance"`
	BeneficiaryCount     uint64 `cbor:"beneficiary_count"`
	LastReset            int64  `cbor:"last_reset"`
	TimeoutSeconds       uint64 `cbor:"timeout_seconds"`
	PerBeneficiaryShare  uint64 `cbor:"per_beneficiary_share"`
	ProtocolShare        uint64 `cbor:"protocol_share"`
	ShareLocked          bool   `cbor:"share_locked"`
	Expired              bool   `cbor:"expired"`
	ExpiresAt            int64  `cbor:"expires_at"`
	TimeRemainingSeconds uint64 `cbor:"time_remaining_seconds"`
}

// PlanStatusResponse reports whether a plan is live and expired.
type PlanStatusResponse struct {
	Active  bool `cbor:"active"`
	Expired bool `cbor:"expired"`
}

// BeneficiariesResponse lists beneficiaries in insertion order.
type BeneficiariesResponse struct {
	Beneficiaries []string `cbor:"beneficiaries"`
}

// BeneficiaryDetailsResponse describes one address relative to a plan.
type BeneficiaryDetailsResponse struct {
	IsBeneficiary  bool   `cbor:"is_beneficiary"`
	HasClaimed     bool   `cbor:"has_claimed"`
	PotentialShare uint64 `cbor:"potential_share"`
}

// StatsResponse aggregates the registry.
type StatsResponse struct {
	OwnerCount   uint64 `cbor:"owner_count"`
	TotalBalance uint64 `cbor:"total_balance"`
	Admin        string `cbor:"admin"`
}

// ProtocolShareResponse reports the admin's cut of a plan.
type ProtocolShareResponse struct {
	Amount uint64 `cbor:"amount"`
	Locked bool   `cbor:"locked"`
}

// Payout is one recorded outgoing transfer.
type Payout struct {
	ID            string `cbor:"id"`
	Recipient     string `cbor:"recipient"`
	Amount        uint64 `cbor:"amount"`
	LockingScript string `cbor:"locking_script"`
	CreatedAt     int64  `cbor:"created_at"`
}

// ListPayoutsResponse lists payouts in the order they were made.
type ListPayoutsResponse struct {
	Payouts []*Payout `cbor:"payouts"`
}
