package inheritance

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "inheritance.v1.InheritanceService"

// Method names of the inheritance service.
const (
	MethodInitialize            = "Initialize"
	MethodCreatePlan            = "CreatePlan"
	MethodAddFunds              = "AddFunds"
	MethodAddBeneficiary        = "AddBeneficiary"
	MethodRemoveBeneficiary     = "RemoveBeneficiary"
	MethodResetTimer            = "ResetTimer"
	MethodLockShare             = "LockShare"
	MethodRedeem                = "Redeem"
	MethodWithdrawAll           = "WithdrawAll"
	MethodWithdrawProtocolShare = "WithdrawProtocolShare"
	MethodGetPlanDetails        = "GetPlanDetails"
	MethodGetPlanStatus         = "GetPlanStatus"
	MethodListBeneficiaries     = "ListBeneficiaries"
	MethodGetBeneficiaryDetails = "GetBeneficiaryDetails"
	MethodGetStats              = "GetStats"
	MethodGetProtocolShare      = "GetProtocolShare"
	MethodListPayouts           = "ListPayouts"
)

// FullMethod returns the /service/method path of method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// InheritanceServiceServer is the server API of the inheritance service.
type InheritanceServiceServer interface {
	Initialize(ctx context.Context, req *InitializeRequest) (*InitializeResponse, error)
	CreatePlan(ctx context.Context, req *CreatePlanRequest) (*PlanDetailsResponse, error)
	AddFunds(ctx context.Context, req *AddFundsRequest) (*Empty, error)
	AddBeneficiary(ctx context.Context, req *BeneficiaryRequest) (*Empty, error)
	RemoveBeneficiary(ctx context.Context, req *BeneficiaryRequest) (*Empty, error)
	ResetTimer(ctx context.Context, req *ResetTimerRequest) (*Empty, error)
	LockShare(ctx context.Context, req *OwnerRequest) (*SharesResponse, error)
	Redeem(ctx context.Context, req *OwnerRequest) (*AmountResponse, error)
	WithdrawAll(ctx context.Context, req *WithdrawAllRequest) (*AmountResponse, error)
	WithdrawProtocolShare(ctx context.Context, req *OwnerRequest) (*AmountResponse, error)
	GetPlanDetails(ctx context.Context, req *OwnerRequest) (*PlanDetailsResponse, error)
	GetPlanStatus(ctx context.Context, req *OwnerRequest) (*PlanStatusResponse, error)
	ListBeneficiaries(ctx context.Context, req *OwnerRequest) (*BeneficiariesResponse, error)
	GetBeneficiaryDetails(ctx context.Context, req *BeneficiaryDetailsRequest) (*BeneficiaryDetailsResponse, error)
	GetStats(ctx context.Context, req *StatsRequest) (*StatsResponse, error)
	GetProtocolShare(ctx context.Context, req *OwnerRequest) (*ProtocolShareResponse, error)
	ListPayouts(ctx context.Context, req *ListPayoutsRequest) (*ListPayoutsResponse, error)
}

// ServiceDesc describes the inheritance service for grpc.Server.RegisterService.
//
//nolint:gochecknoglobals // Service descriptors are package-level by convention.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*InheritanceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodInitialize, InheritanceServiceServer.Initialize),
		unary(MethodCreatePlan, InheritanceServiceServer.CreatePlan),
		unary(MethodAddFunds, InheritanceServiceServer.AddFunds),
		unary(MethodAddBeneficiary, InheritanceServiceServer.AddBeneficiary),
		unary(MethodRemoveBeneficiary, InheritanceServiceServer.RemoveBeneficiary),
		unary(MethodResetTimer, InheritanceServiceServer.ResetTimer),
		unary(MethodLockShare, InheritanceServiceServer.LockShare),
		unary(MethodRedeem, InheritanceServiceServer.Redeem),
		unary(MethodWithdrawAll, InheritanceServiceServer.WithdrawAll),
		unary(MethodWithdrawProtocolShare, InheritanceServiceServer.WithdrawProtocolShare),
		unary(MethodGetPlanDetails, InheritanceServiceServer.GetPlanDetails),
		unary(MethodGetPlanStatus, InheritanceServiceServer.GetPlanStatus),
		unary(MethodListBeneficiaries, InheritanceServiceServer.ListBeneficiaries),
		unary(MethodGetBeneficiaryDetails, InheritanceServiceServer.GetBeneficiaryDetails),
		unary(MethodGetStats, InheritanceServiceServer.GetStats),
		unary(MethodGetProtocolShare, InheritanceServiceServer.GetProtocolShare),
		unary(MethodListPayouts, InheritanceServiceServer.ListPayouts),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "inheritance/v1/inheritance.proto",
}

// RegisterInheritanceServiceServer registers srv on registrar.
func RegisterInheritanceServiceServer(registrar grpc.ServiceRegistrar, srv InheritanceServiceServer) {
	registrar.RegisterService(&ServiceDesc, srv)
}

// unary builds the method descriptor dispatching method to call.
func unary[Req, Resp any](
	method string,
	call func(InheritanceServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(
			srv any,
			ctx context.Context,
			dec func(any) error,
			interceptor grpc.UnaryServerInterceptor,
		) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}

			server, _ := srv.(InheritanceServiceServer)

			if interceptor == nil {
				return call(server, ctx, in)
			}

			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}

			handler := func(ctx context.Context, req any) (any, error) {
				typed, _ := req.(*Req)

				return call(server, ctx, typed)
			}

			return interceptor(ctx, in, info, handler)
		},
	}
}

// InheritanceServiceClient calls the inheritance service over a connection
// whose codec is Codec.
type InheritanceServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewInheritanceServiceClient wraps cc.
func NewInheritanceServiceClient(cc grpc.ClientConnInterface) *InheritanceServiceClient {
	return &InheritanceServiceClient{cc: cc}
}

// invoke performs one unary call of method.
func invoke[Req, Resp any](
	ctx context.Context,
	c *InheritanceServiceClient,
	method string,
	in *Req,
	opts ...grpc.CallOption,
) (*Resp, error) {
	out := new(Resp)

	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// Initialize calls InheritanceService.Initialize.
func (c *InheritanceServiceClient) Initialize(
	ctx context.Context, in *InitializeRequest, opts ...grpc.CallOption,
) (*InitializeResponse, error) {
	return invoke[InitializeRequest, InitializeResponse](ctx, c, MethodInitialize, in, opts...)
}

// CreatePlan calls InheritanceService.CreatePlan.
func (c *InheritanceServiceClient) CreatePlan(
	ctx context.Context, in *CreatePlanRequest, opts ...grpc.CallOption,
) (*PlanDetailsResponse, error) {
	return invoke[CreatePlanRequest, PlanDetailsResponse](ctx, c, MethodCreatePlan, in, opts...)
}

// AddFunds calls InheritanceService.AddFunds.
func (c *InheritanceServiceClient) AddFunds(
	ctx context.Context, in *AddFundsRequest, opts ...grpc.CallOption,
) (*Empty, error) {
	return invoke[AddFundsRequest, Empty](ctx, c, MethodAddFunds, in, opts...)
}

// AddBeneficiary calls InheritanceService.AddBeneficiary.
func (c *InheritanceServiceClient) AddBeneficiary(
	ctx context.Context, in *BeneficiaryRequest, opts ...grpc.CallOption,
) (*Empty, error) {
	return invoke[BeneficiaryRequest, Empty](ctx, c, MethodAddBeneficiary, in, opts...)
}

// RemoveBeneficiary calls InheritanceService.RemoveBeneficiary.
func (c *InheritanceServiceClient) RemoveBeneficiary(
	ctx context.Context, in *BeneficiaryRequest, opts ...grpc.CallOption,
) (*Empty, error) {
	return invoke[BeneficiaryRequest, Empty](ctx, c, MethodRemoveBeneficiary, in, opts...)
}

// ResetTimer calls InheritanceService.ResetTimer.
func (c *InheritanceServiceClient) ResetTimer(
	ctx context.Context, in *ResetTimerRequest, opts ...grpc.CallOption,
) (*Empty, error) {
	return invoke[ResetTimerRequest, Empty](ctx, c, MethodResetTimer, in, opts...)
}

// LockShare calls InheritanceService.LockShare.
func (c *InheritanceServiceClient) LockShare(
	ctx context.Context, in *OwnerRequest, opts ...grpc.CallOption,
) (*SharesResponse, error) {
	return invoke[OwnerRequest, SharesResponse](ctx, c, MethodLockShare, in, opts...)
}

// Redeem calls InheritanceService.Redeem.
func (c *InheritanceServiceClient) Redeem(
	ctx context.Context, in *OwnerRequest, opts ...grpc.CallOption,
) (*AmountResponse, error) {
	return invoke[OwnerRequest, AmountResponse](ctx, c, MethodRedeem, in, opts...)
}

// WithdrawAll calls InheritanceService.WithdrawAll.
func (c *InheritanceServiceClient) WithdrawAll(
	ctx context.Context, in *WithdrawAllRequest, opts ...grpc.CallOption,
) (*AmountResponse, error) {
	return invoke[WithdrawAllRequest, AmountResponse](ctx, c, MethodWithdrawAll, in, opts...)
}

// WithdrawProtocolShare calls InheritanceService.WithdrawProtocolShare.
func (c *InheritanceServiceClient) WithdrawProtocolShare(
	ctx context.Context, in *OwnerRequest, opts ...grpc.CallOption,
) (*AmountResponse, error) {
	return invoke[OwnerRequest, AmountResponse](ctx, c, MethodWithdrawProtocolShare, in, opts...)
}

// GetPlanDetails calls InheritanceService.GetPlanDetails.
func (c *InheritanceServiceClient) GetPlanDetails(
	ctx context.Context, in *OwnerRequest, opts ...grpc.CallOption,
) (*PlanDetailsResponse, error) {
	return invoke[OwnerRequest, PlanDetailsResponse](ctx, c, MethodGetPlanDetails, in, opts...)
}

// GetPlanStatus calls InheritanceService.GetPlanStatus.
func (c *InheritanceServiceClient) GetPlanStatus(
	ctx context.Context, in *OwnerRequest, opts ...grpc.CallOption,
) (*PlanStatusResponse, error) {
	return invoke[OwnerRequest, PlanStatusResponse](ctx, c, MethodGetPlanStatus, in, opts...)
}

// ListBeneficiaries calls InheritanceService.ListBeneficiaries.
func (c *InheritanceServiceClient) ListBeneficiaries(
	ctx context.Context, in *OwnerRequest, opts ...grpc.CallOption,
) (*BeneficiariesResponse, error) {
	return invoke[OwnerRequest, BeneficiariesResponse](ctx, c, MethodListBeneficiaries, in, opts...)
}

// GetBeneficiaryDetails calls InheritanceService.GetBeneficiaryDetails.
func (c *InheritanceServiceClient) GetBeneficiaryDetails(
	ctx context.Context, in *BeneficiaryDetailsRequest, opts ...grpc.CallOption,
) (*BeneficiaryDetailsResponse, error) {
	return invoke[BeneficiaryDetailsRequest, BeneficiaryDetailsResponse](
		ctx, c, MethodGetBeneficiaryDetails, in, opts...)
}

// GetStats calls InheritanceService.GetStats.
func (c *InheritanceServiceClient) GetStats(
	ctx context.Context, in *StatsRequest, opts ...grpc.CallOption,
) (*StatsResponse, error) {
	return invoke[StatsRequest, StatsResponse](ctx, c, MethodGetStats, in, opts...)
}

// GetProtocolShare calls InheritanceService.GetProtocolShare.
func (c *InheritanceServiceClient) GetProtocolShare(
	ctx context.Context, in *OwnerRequest, opts ...grpc.CallOption,
) (*ProtocolShareResponse, error) {
	return invoke[OwnerRequest, ProtocolShareResponse](ctx, c, MethodGetProtocolShare, in, opts...)
}

// ListPayouts calls InheritanceService.ListPayouts.
func (c *InheritanceServiceClient) ListPayouts(
	ctx context.Context, in *ListPayoutsRequest, opts ...grpc.CallOption,
) (*ListPayoutsResponse, error) {
	return invoke[ListPayoutsRequest, ListPayoutsResponse](ctx, c, MethodListPayouts, in, opts...)
}
