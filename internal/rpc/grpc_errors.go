package rpc

import (
	"errors"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"github.com/signalsfoundry/terrain-propagation/core"
	"github.com/signalsfoundry/terrain-propagation/internal/native"
)

const errorDomain = "itm.signalsfoundry.dev"

// ToStatusError maps prediction errors onto gRPC status codes. Model range
// errors and request shape errors are InvalidArgument and carry a
// BadRequest field violation naming the offending request field.
func ToStatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var (
		se *core.StatusError
		ie *core.InputError
		pe *core.ParseError
	)
	switch {
	case errors.As(err, &se):
		return withDetails(status.New(codes.InvalidArgument, se.Error()),
			&errdetails.BadRequest{FieldViolations: []*errdetails.BadRequest_FieldViolation{{
				Field:       se.Code.Parameter(),
				Description: se.Code.Error(),
			}}},
			&errdetails.ErrorInfo{
				Reason:   se.Code.String(),
				Domain:   errorDomain,
				Metadata: map[string]string{"status_code": strconv.Itoa(int(se.Code))},
			},
		)

	case errors.As(err, &ie):
		return fieldViolation(ie.Field, err)

	case errors.As(err, &pe):
		return fieldViolation(pe.Field, err)

	case errors.Is(err, ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, core.ErrNilOracle),
		errors.Is(err, native.ErrUnavailable):
		return status.Error(codes.Unavailable, err.Error())

	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func fieldViolation(field string, err error) error {
	return withDetails(status.New(codes.InvalidArgument, err.Error()),
		&errdetails.BadRequest{FieldViolations: []*errdetails.BadRequest_FieldViolation{{
			Field:       field,
			Description: err.Error(),
		}}},
	)
}

func withDetails(st *status.Status, details ...protoadapt.MessageV1) error {
	withDetails, err := st.WithDetails(details...)
	if err != nil {
		return st.Err()
	}
	return withDetails.Err()
}
