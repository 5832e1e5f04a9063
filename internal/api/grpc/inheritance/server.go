package inheritance

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/inheritance-vault/internal/custody"
	"github.com/oshokin/inheritance-vault/internal/domain/plan"
	"github.com/oshokin/inheritance-vault/internal/logger"
	"github.com/oshokin/inheritance-vault/internal/repository/ledger"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	Initialize(ctx context.Context, caller plan.Address) error
	CreatePlan(
		ctx context.Context,
		owner plan.Address,
		beneficiaries []plan.Address,
		timeout time.Duration,
		deposit uint64,
	) (*plan.Plan, error)
	AddFunds(ctx context.Context, owner plan.Address, deposit uint64) error
	AddBeneficiary(ctx context.Context, owner, beneficiary plan.Address) error
	RemoveBeneficiary(ctx context.Context, owner, beneficiary plan.Address) error
	ResetTimer(ctx context.Context, owner plan.Address) error
	LockShare(ctx context.Context, owner plan.Address) (plan.Shares, error)
	Redeem(ctx context.Context, caller, owner plan.Address) (uint64, error)
	WithdrawAll(ctx context.Context, owner plan.Address) (uint64, error)
	WithdrawProtocolShare(ctx context.Context, caller, owner plan.Address) (uint64, error)

	PlanDetails(owner plan.Address) (*custody.Details, error)
	PlanStatus(owner plan.Address) (active, expired bool)
	Beneficiaries(owner plan.Address) ([]plan.Address, error)
	BeneficiaryDetails(owner, beneficiary plan.Address) (*custody.BeneficiaryStatus, error)
	Stats() custody.Stats
	ProtocolShare(caller, owner plan.Address) (amount uint64, locked bool, err error)
	Payouts(ctx context.Context, recipient plan.Address) ([]*ledger.Payout, error)
}

// Server implements the InheritanceService gRPC API.
type Server struct {
	// service provides the business logic for vault operations.
	service Service
}

var _ InheritanceServiceServer = (*Server)(nil)

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// Initialize makes the caller the admin.
func (s *Server) Initialize(ctx context.Context, req *InitializeRequest) (*InitializeResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	caller, err := requireCaller(req.Actor, req.Caller)
	if err != nil {
		return nil, err
	}

	ctx = auditContext(ctx, MethodInitialize, req.Actor, caller)

	if err = s.service.Initialize(ctx, caller); err != nil {
		return nil, toStatus(err)
	}

	return &InitializeResponse{Admin: caller.String()}, nil
}

// CreatePlan opens a plan owned by the caller.
func (s *Server) CreatePlan(ctx context.Context, req *CreatePlanRequest) (*PlanDetailsResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	owner, err := requireCaller(req.Actor, req.Caller)
	if err != nil {
		return nil, err
	}

	beneficiaries := make([]plan.Address, 0, len(req.Beneficiaries))

	for _, raw := range req.Beneficiaries {
		b, err := parseAddress("beneficiary", raw)
		if err != nil {
			return nil, err
		}

		beneficiaries = append(beneficiaries, b)
	}

	timeout, err := plan.TimeoutFromSeconds(req.TimeoutSeconds)
	if err != nil {
		return nil, toStatus(err)
	}

	ctx = auditContext(ctx, MethodCreatePlan, req.Actor, owner)

	if _, err = s.service.CreatePlan(ctx, owner, beneficiaries, timeout, req.Deposit); err != nil {
		return nil, toStatus(err)
	}

	details, err := s.service.PlanDetails(owner)
	if err != nil {
		return nil, toStatus(err)
	}

	return toDetailsResponse(details), nil
}

// AddFunds credits the caller's plan.
func (s *Server) AddFunds(ctx context.Context, req *AddFundsRequest) (*Empty, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	owner, err := requireCaller(req.Actor, req.Caller)
	if err != nil {
		return nil, err
	}

	ctx = auditContext(ctx, MethodAddFunds, req.Actor, owner)

	if err = s.service.AddFunds(ctx, owner, req.Deposit); err != nil {
		return nil, toStatus(err)
	}

	return new(Empty), nil
}

// AddBeneficiary appends a beneficiary to the caller's plan.
func (s *Server) AddBeneficiary(ctx context.Context, req *BeneficiaryRequest) (*Empty, error) {
	return s.editBeneficiary(ctx, MethodAddBeneficiary, req, s.service.AddBeneficiary)
}

// RemoveBeneficiary drops a beneficiary from the caller's plan.
func (s *Server) RemoveBeneficiary(ctx context.Context, req *BeneficiaryRequest) (*Empty, error) {
	return s.editBeneficiary(ctx, MethodRemoveBeneficiary, req, s.service.RemoveBeneficiary)
}

func (s *Server) editBeneficiary(
	ctx context.Context,
	method string,
	req *BeneficiaryRequest,
	edit func(ctx context.Context, owner, beneficiary plan.Address) error,
) (*Empty, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	owner, err := requireCaller(req.Actor, req.Caller)
	if err != nil {
		return nil, err
	}

	beneficiary, err := parseAddress("beneficiary", req.Beneficiary)
	if err != nil {
		return nil, err
	}

	ctx = auditContext(ctx, method, req.Actor, owner)

	if err = edit(ctx, owner, beneficiary); err != nil {
		return nil, toStatus(err)
	}

	return new(Empty), nil
}

// ResetTimer restarts the countdown of the caller's plan.
func (s *Server) ResetTimer(ctx context.Context, req *ResetTimerRequest) (*Empty, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	owner, err := requireCaller(req.Actor, req.Caller)
	if err != nil {
		return nil, err
	}

	ctx = auditContext(ctx, MethodResetTimer, req.Actor, owner)

	if err = s.service.ResetTimer(ctx, owner); err != nil {
		return nil, toStatus(err)
	}

	return new(Empty), nil
}

// LockShare freezes the distribution of an expired plan.
func (s *Server) LockShare(ctx context.Context, req *OwnerRequest) (*SharesResponse, error) {
	caller, owner, err := parseOwnerRequest(req)
	if err != nil {
		return nil, err
	}

	ctx = auditContext(ctx, MethodLockShare, req.Actor, caller)

	shares, err := s.service.LockShare(ctx, owner)
	if err != nil {
		return nil, toStatus(err)
	}

	return &SharesResponse{
		PerBeneficiary: shares.PerBeneficiary,
		Protocol:       shares.Protocol,
	}, nil
}

// Redeem pays the caller's share of an expired plan.
func (s *Server) Redeem(ctx context.Context, req *OwnerRequest) (*AmountResponse, error) {
	caller, owner, err := parseOwnerRequest(req)
	if err != nil {
		return nil, err
	}

	ctx = auditContext(ctx, MethodRedeem, req.Actor, caller)

	amount, err := s.service.Redeem(ctx, caller, owner)
	if err != nil {
		return nil, toStatus(err)
	}

	return &AmountResponse{Amount: amount}, nil
}

// WithdrawAll empties the caller's plan.
func (s *Server) WithdrawAll(ctx context.Context, req *WithdrawAllRequest) (*AmountResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	owner, err := requireCaller(req.Actor, req.Caller)
	if err != nil {
		return nil, err
	}

	ctx = auditContext(ctx, MethodWithdrawAll, req.Actor, owner)

	amount, err := s.service.WithdrawAll(ctx, owner)
	if err != nil {
		return nil, toStatus(err)
	}

	return &AmountResponse{Amount: amount}, nil
}

// WithdrawProtocolShare pays the protocol share of a locked plan to the admin.
func (s *Server) WithdrawProtocolShare(ctx context.Context, req *OwnerRequest) (*AmountResponse, error) {
	caller, owner, err := parseOwnerRequest(req)
	if err != nil {
		return nil, err
	}

	ctx = auditContext(ctx, MethodWithdrawProtocolShare, req.Actor, caller)

	amount, err := s.service.WithdrawProtocolShare(ctx, caller, owner)
	if err != nil {
		return nil, toStatus(err)
	}

	return &AmountResponse{Amount: amount}, nil
}

// GetPlanDetails returns a projection of a live plan.
func (s *Server) GetPlanDetails(_ context.Context, req *OwnerRequest) (*PlanDetailsResponse, error) {
	owner, err := parseQueryOwner(req)
	if err != nil {
		return nil, err
	}

	details, err := s.service.PlanDetails(owner)
	if err != nil {
		return nil, toStatus(err)
	}

	return toDetailsResponse(details), nil
}

// GetPlanStatus reports whether a plan is live and expired.
func (s *Server) GetPlanStatus(_ context.Context, req *OwnerRequest) (*PlanStatusResponse, error) {
	owner, err := parseQueryOwner(req)
	if err != nil {
		return nil, err
	}

	active, expired := s.service.PlanStatus(owner)

	return &PlanStatusResponse{
		Active:  active,
		Expired: expired,
	}, nil
}

// ListBeneficiaries lists the beneficiaries of a live plan.
func (s *Server) ListBeneficiaries(_ context.Context, req *OwnerRequest) (*BeneficiariesResponse, error) {
	owner, err := parseQueryOwner(req)
	if err != nil {
		return nil, err
	}

	list, err := s.service.Beneficiaries(owner)
	if err != nil {
		return nil, toStatus(err)
	}

	response := &BeneficiariesResponse{
		Beneficiaries: make([]string, 0, len(list)),
	}

	for _, b := range list {
		response.Beneficiaries = append(response.Beneficiaries, b.String())
	}

	return response, nil
}

// GetBeneficiaryDetails describes one address relative to a plan.
func (s *Server) GetBeneficiaryDetails(
	_ context.Context,
	req *BeneficiaryDetailsRequest,
) (*BeneficiaryDetailsResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	owner, err := parseAddress("owner", req.Owner)
	if err != nil {
		return nil, err
	}

	beneficiary, err := parseAddress("beneficiary", req.Beneficiary)
	if err != nil {
		return nil, err
	}

	details, err := s.service.BeneficiaryDetails(owner, beneficiary)
	if err != nil {
		return nil, toStatus(err)
	}

	return &BeneficiaryDetailsResponse{
		IsBeneficiary:  details.IsBeneficiary,
		HasClaimed:     details.HasClaimed,
		PotentialShare: details.PotentialShare,
	}, nil
}

// GetStats aggregates the registry.
func (s *Server) GetStats(_ context.Context, req *StatsRequest) (*StatsResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	stats := s.service.Stats()

	response := &StatsResponse{
		OwnerCount:   stats.OwnerCount,
		TotalBalance: stats.TotalBalance,
	}

	if !stats.Admin.IsZero() {
		response.Admin = stats.Admin.String()
	}

	return response, nil
}

// GetProtocolShare reports the admin's cut of a plan. Only the admin may ask.
func (s *Server) GetProtocolShare(_ context.Context, req *OwnerRequest) (*ProtocolShareResponse, error) {
	caller, owner, err := parseOwnerRequest(req)
	if err != nil {
		return nil, err
	}

	amount, locked, err := s.service.ProtocolShare(caller, owner)
	if err != nil {
		return nil, toStatus(err)
	}

	return &ProtocolShareResponse{
		Amount: amount,
		Locked: locked,
	}, nil
}

// ListPayouts lists the recorded payouts, optionally for one recipient.
func (s *Server) ListPayouts(ctx context.Context, req *ListPayoutsRequest) (*ListPayoutsResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	var recipient plan.Address

	if req.Recipient != "" {
		parsed, err := parseAddress("recipient", req.Recipient)
		if err != nil {
			return nil, err
		}

		recipient = parsed
	}

	payouts, err := s.service.Payouts(ctx, recipient)
	if err != nil {
		return nil, toStatus(err)
	}

	response := &ListPayoutsResponse{
		Payouts: make([]*Payout, 0, len(payouts)),
	}

	for _, p := range payouts {
		response.Payouts = append(response.Payouts, &Payout{
			ID:            p.ID.String(),
			Recipient:     p.Address(),
			Amount:        p.Amount,
			LockingScript: hex.EncodeToString(p.LockingScript),
			CreatedAt:     p.CreatedAt.Unix(),
		})
	}

	return response, nil
}

//nolint:gochecknoglobals // Immutable status errors.
var (
	errRequestRequired = status.Error(codes.InvalidArgument, "request is required")
	errActorRequired   = status.Error(codes.InvalidArgument, "actor is required")
)

// requireCaller validates the audit actor and parses the caller address.
func requireCaller(actor *SystemActor, caller string) (plan.Address, error) {
	if actor == nil {
		return plan.ZeroAddress, errActorRequired
	}

	return parseAddress("caller", caller)
}

// parseOwnerRequest validates a request acting on another owner's plan.
func parseOwnerRequest(req *OwnerRequest) (caller, owner plan.Address, err error) {
	if req == nil {
		return caller, owner, errRequestRequired
	}

	if caller, err = requireCaller(req.Actor, req.Caller); err != nil {
		return caller, owner, err
	}

	owner, err = parseAddress("owner", req.Owner)

	return caller, owner, err
}

// parseQueryOwner parses the owner of a read-only request.
func parseQueryOwner(req *OwnerRequest) (plan.Address, error) {
	if req == nil {
		return plan.ZeroAddress, errRequestRequired
	}

	return parseAddress("owner", req.Owner)
}

// parseAddress converts a wire address into the domain form.
func parseAddress(field, raw string) (plan.Address, error) {
	addr, err := plan.ParseAddress(raw)
	if err != nil {
		return plan.ZeroAddress, status.Error(codes.InvalidArgument, fmt.Sprintf("%s: %v", field, err))
	}

	return addr, nil
}

// auditContext names the call and attaches the requesting actor to the logger.
func auditContext(ctx context.Context, method string, actor *SystemActor, caller plan.Address) context.Context {
	ctx = logger.WithName(ctx, method)

	return logger.WithKV(ctx,
		"caller", caller.String(),
		"hostname", actor.Hostname,
		"username", actor.Username,
		"client", actor.Client,
	)
}

// toDetailsResponse converts a plan projection to its wire form.
func toDetailsResponse(details *custody.Details) *PlanDetailsResponse {
	return &PlanDetailsResponse{
		Owner:                details.Owner.String(),
		Balance:              details.Balance,
		BeneficiaryCount:     details.BeneficiaryCount,
		LastReset:            details.LastReset.Unix(),
		TimeoutSeconds:       uint64(details.Timeout / time.Second),
		PerBeneficiaryShare:  details.Shares.PerBeneficiary,
		ProtocolShare:        details.Shares.Protocol,
		ShareLocked:          details.ShareLocked,
		Expired:              details.Expired,
		ExpiresAt:            details.ExpiresAt.Unix(),
		TimeRemainingSeconds: uint64(details.TimeRemaining / time.Second),
	}
}
