package rpc

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/signalsfoundry/terrain-propagation/core"
	"github.com/signalsfoundry/terrain-propagation/internal/native"
)

func TestToStatusError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		code    codes.Code
		wantNil bool
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "status passthrough", err: status.Error(codes.PermissionDenied, "denied"), code: codes.PermissionDenied},
		{name: "model range error", err: &core.StatusError{Code: core.ErrFrequency}, code: codes.InvalidArgument},
		{name: "wrapped range error", err: fmt.Errorf("predict: %w", &core.StatusError{Code: core.ErrDeltaH}), code: codes.InvalidArgument},
		{name: "input error", err: &core.InputError{Field: "climate", Err: core.ErrInvalidEnum}, code: codes.InvalidArgument},
		{name: "parse error", err: &core.ParseError{Input: "x", Field: "latitude", Err: core.ErrMissingSeparator}, code: codes.InvalidArgument},
		{name: "request sentinel", err: fmt.Errorf("%w: junk", ErrInvalidRequest), code: codes.InvalidArgument},
		{name: "no oracle", err: core.ErrNilOracle, code: codes.Unavailable},
		{name: "native missing", err: native.ErrUnavailable, code: codes.Unavailable},
		{name: "fallback", err: errors.New("boom"), code: codes.Internal},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ToStatusError(tc.err)
			if tc.wantNil {
				if got != nil {
					t.Fatalf("ToStatusError(nil) = %v, want nil", got)
				}
				return
			}

			if got == nil {
				t.Fatalf("ToStatusError(%v) = nil, want error", tc.err)
			}
			if code := status.Code(got); code != tc.code {
				t.Fatalf("ToStatusError(%v) code = %v, want %v", tc.err, code, tc.code)
			}
		})
	}
}

func TestEveryStatusCodeNamesAField(t *testing.T) {
	for _, code := range core.ErrorCodes {
		if code.Parameter() == "" {
			t.Errorf("%v has no request field", code)
		}
	}
}
