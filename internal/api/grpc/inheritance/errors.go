package inheritance

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/inheritance-vault/internal/domain/plan"
)

// codeFor maps a vault error kind to its gRPC status code.
func codeFor(err error) codes.Code {
	switch plan.Kind(err) {
	case plan.ErrAlreadyInitialized, plan.ErrPlanAlreadyExists:
		return codes.AlreadyExists
	case plan.ErrUnauthorized:
		return codes.PermissionDenied
	case plan.ErrPlanNotFound:
		return codes.NotFound
	case plan.ErrInvalidParameter:
		return codes.InvalidArgument
	case plan.ErrInvalidState, plan.ErrInsufficientFunds:
		return codes.FailedPrecondition
	case plan.ErrReentrancyRejected:
		return codes.Aborted
	case plan.ErrTransferFailed:
		return codes.Unavailable
	}

	switch {
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

// toStatus converts a service error into a gRPC status error.
// Internal failures are not described to the client.
func toStatus(err error) error {
	if err == nil {
		return nil
	}

	code := codeFor(err)
	if code == codes.Internal {
		return status.Error(code, "internal error")
	}

	return status.Error(code, err.Error())
}
