//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	api "github.com/oshokin/inheritance-vault/internal/api/grpc/inheritance"
	"github.com/oshokin/inheritance-vault/internal/config"
)

// Client wraps the gRPC InheritanceService client with convenience helpers.
// Every mutating call is made on behalf of the configured caller and actor.
type Client struct {
	// conn is the underlying gRPC connection to the vault server.
	conn *grpc.ClientConn
	// api is the InheritanceService client.
	api *api.InheritanceServiceClient

	// actor is attached to every request for the server audit log.
	actor *api.SystemActor
	// caller is the address the client acts as.
	caller string

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithIdentity sets the caller address and audit actor sent with each request.
func WithIdentity(caller string, actor *api.SystemActor) Option {
	return func(c *Client) {
		c.caller = caller
		c.actor = actor
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errActorRequired is returned when an actor is not provided but is required for the operation.
	errActorRequired = errors.New("actor must be provided")
	// errCallerRequired is returned when the operation needs a caller address.
	errCallerRequired = errors.New("caller address must be provided")
)

// Dial establishes a gRPC connection to the vault server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy until native TLS is added.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// The typed client forces the CBOR codec on every call.
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial vault server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         api.NewInheritanceServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// Initialize makes the caller the admin.
func (c *Client) Initialize(ctx context.Context) (*api.InitializeResponse, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}

	return call(ctx, c, "initialize", c.api.Initialize, &api.InitializeRequest{
		Actor:  c.actor,
		Caller: c.caller,
	})
}

// CreatePlan opens a plan owned by the caller.
func (c *Client) CreatePlan(
	ctx context.Context,
	beneficiaries []string,
	timeout time.Duration,
	deposit uint64,
) (*api.PlanDetailsResponse, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}

	return call(ctx, c, "create plan", c.api.CreatePlan, &api.CreatePlanRequest{
		Actor:          c.actor,
		Caller:         c.caller,
		Beneficiaries:  beneficiaries,
		TimeoutSeconds: uint64(timeout / time.Second),
		Deposit:        deposit,
	})
}

// AddFunds credits deposit to the caller's plan.
func (c *Client) AddFunds(ctx context.Context, deposit uint64) error {
	if err := c.requireIdentity(); err != nil {
		return err
	}

	_, err := call(ctx, c, "add funds", c.api.AddFunds, &api.AddFundsRequest{
		Actor:   c.actor,
		Caller:  c.caller,
		Deposit: deposit,
	})

	return err
}

// AddBeneficiary appends beneficiary to the caller's plan.
func (c *Client) AddBeneficiary(ctx context.Context, beneficiary string) error {
	if err := c.requireIdentity(); err != nil {
		return err
	}

	_, err := call(ctx, c, "add beneficiary", c.api.AddBeneficiary, &api.BeneficiaryRequest{
		Actor:       c.actor,
		Caller:      c.caller,
		Beneficiary: beneficiary,
	})

	return err
}

// RemoveBeneficiary drops beneficiary from the caller's plan.
func (c *Client) RemoveBeneficiary(ctx context.Context, beneficiary string) error {
	if err := c.requireIdentity(); err != nil {
		return err
	}

	_, err := call(ctx, c, "remove beneficiary", c.api.RemoveBeneficiary, &api.BeneficiaryRequest{
		Actor:       c.actor,
		Caller:      c.caller,
		Beneficiary: beneficiary,
	})

	return err
}

// ResetTimer restarts the countdown of the caller's plan.
func (c *Client) ResetTimer(ctx context.Context) error {
	if err := c.requireIdentity(); err != nil {
		return err
	}

	_, err := call(ctx, c, "reset timer", c.api.ResetTimer, &api.ResetTimerRequest{
		Actor:  c.actor,
		Caller: c.caller,
	})

	return err
}

// LockShare freezes the distribution of owner's expired plan.
func (c *Client) LockShare(ctx context.Context, owner string) (*api.SharesResponse, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}

	return call(ctx, c, "lock share", c.api.LockShare, c.ownerRequest(owner))
}

// Redeem claims the caller's share of owner's plan.
func (c *Client) Redeem(ctx context.Context, owner string) (*api.AmountResponse, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}

	return call(ctx, c, "redeem", c.api.Redeem, c.ownerRequest(owner))
}

// WithdrawAll empties the caller's plan.
func (c *Client) WithdrawAll(ctx context.Context) (*api.AmountResponse, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}

	return call(ctx, c, "withdraw all", c.api.WithdrawAll, &api.WithdrawAllRequest{
		Actor:  c.actor,
		Caller: c.caller,
	})
}

// WithdrawProtocolShare pays the protocol share of owner's plan to the admin caller.
func (c *Client) WithdrawProtocolShare(ctx context.Context, owner string) (*api.AmountResponse, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}

	return call(ctx, c, "withdraw protocol share", c.api.WithdrawProtocolShare, c.ownerRequest(owner))
}

// PlanDetails returns the details of owner's live plan.
func (c *Client) PlanDetails(ctx context.Context, owner string) (*api.PlanDetailsResponse, error) {
	return call(ctx, c, "get plan details", c.api.GetPlanDetails, c.ownerRequest(owner))
}

// PlanStatus reports whether owner's plan is live and expired.
func (c *Client) PlanStatus(ctx context.Context, owner string) (*api.PlanStatusResponse, error) {
	return call(ctx, c, "get plan status", c.api.GetPlanStatus, c.ownerRequest(owner))
}

// Beneficiaries lists the beneficiaries of owner's plan.
func (c *Client) Beneficiaries(ctx context.Context, owner string) (*api.BeneficiariesResponse, error) {
	return call(ctx, c, "list beneficiaries", c.api.ListBeneficiaries, c.ownerRequest(owner))
}

// BeneficiaryDetails describes beneficiary relative to owner's plan.
func (c *Client) BeneficiaryDetails(
	ctx context.Context,
	owner, beneficiary string,
) (*api.BeneficiaryDetailsResponse, error) {
	return call(ctx, c, "get beneficiary details", c.api.GetBeneficiaryDetails, &api.BeneficiaryDetailsRequest{
		Actor:       c.actor,
		Caller:      c.caller,
		Owner:       owner,
		Beneficiary: beneficiary,
	})
}

// Stats returns the registry totals.
func (c *Client) Stats(ctx context.Context) (*api.StatsResponse, error) {
	return call(ctx, c, "get stats", c.api.GetStats, &api.StatsRequest{
		Actor:  c.actor,
		Caller: c.caller,
	})
}

// ProtocolShare returns the protocol share of owner's plan. The caller must be the admin.
func (c *Client) ProtocolShare(ctx context.Context, owner string) (*api.ProtocolShareResponse, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}

	return call(ctx, c, "get protocol share", c.api.GetProtocolShare, c.ownerRequest(owner))
}

// Payouts lists the payouts to recipient, or all of them when recipient is empty.
func (c *Client) Payouts(ctx context.Context, recipient string) (*api.ListPayoutsResponse, error) {
	return call(ctx, c, "list payouts", c.api.ListPayouts, &api.ListPayoutsRequest{
		Actor:     c.actor,
		Caller:    c.caller,
		Recipient: recipient,
	})
}

// ownerRequest builds a request addressing owner's plan.
func (c *Client) ownerRequest(owner string) *api.OwnerRequest {
	return &api.OwnerRequest{
		Actor:  c.actor,
		Caller: c.caller,
		Owner:  owner,
	}
}

// requireIdentity checks the client can act on someone's behalf.
func (c *Client) requireIdentity() error {
	if c.actor == nil {
		return errActorRequired
	}

	if c.caller == "" {
		return errCallerRequired
	}

	return nil
}

// call runs one RPC under the client's call timeout and names failures after op.
func call[Req, Resp any](
	ctx context.Context,
	c *Client,
	op string,
	rpc func(context.Context, *Req, ...grpc.CallOption) (*Resp, error),
	req *Req,
) (*Resp, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := rpc(callCtx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
