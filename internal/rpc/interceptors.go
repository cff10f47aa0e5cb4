package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/signalsfoundry/terrain-propagation/internal/logging"
)

const requestIDMetadataKey = "x-request-id"

// RequestIDUnaryServerInterceptor tags each prediction call with a request ID,
// taken from the x-request-id metadata or generated, and echoes it in the
// response header. core.Predictor logs through the per-request logger this
// puts on the context, so its prediction log lines carry the same ID.
func RequestIDUnaryServerInterceptor(base logging.Logger) grpc.UnaryServerInterceptor {
	if base == nil {
		base = logging.Noop()
	}
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if incoming := firstHeader(md, requestIDMetadataKey); incoming != "" {
				ctx = logging.ContextWithRequestID(ctx, incoming)
			}
		}

		ctx, reqLog := logging.WithRequestLogger(ctx, base.With(logging.String("method", info.FullMethod)))
		ctx = logging.ContextWithLogger(ctx, reqLog)
		_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDMetadataKey, logging.RequestIDFromContext(ctx)))

		return handler(ctx, req)
	}
}

func firstHeader(md metadata.MD, key string) string {
	if md == nil {
		return ""
	}
	if vals := md.Get(key); len(vals) > 0 {
		return vals[0]
	}
	return ""
}
