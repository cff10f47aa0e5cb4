package rpc

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"

	"github.com/signalsfoundry/terrain-propagation/internal/logging"
	"github.com/signalsfoundry/terrain-propagation/internal/observability"
)

const tracerName = "github.com/signalsfoundry/terrain-propagation/internal/rpc"

// TracingUnaryServerInterceptor tags the PredictP2P server span with the RPC
// service, method and request ID, and starts one when no otelgrpc stats
// handler did, so the itm.p2p span always has a parent.
func TracingUnaryServerInterceptor() grpc.UnaryServerInterceptor {
	tracer := otel.Tracer(tracerName)

	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		service, method := observability.SplitMethod(info.FullMethod)
		spanName := fmt.Sprintf("ITM/%s/%s", service, method)

		span := trace.SpanFromContext(ctx)
		created := false
		if !span.SpanContext().IsValid() {
			ctx, span = tracer.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindServer))
			created = true
		} else {
			span.SetName(spanName)
		}

		attrs := []attribute.KeyValue{
			attribute.String("rpc.system", "grpc"),
			attribute.String("rpc.service", service),
			attribute.String("rpc.method", method),
			attribute.String("rpc.full_method", strings.TrimPrefix(info.FullMethod, "/")),
		}
		if reqID := logging.RequestIDFromContext(ctx); reqID != "" {
			attrs = append(attrs, attribute.String("request_id", reqID))
		}
		span.SetAttributes(attrs...)

		resp, err := handler(ctx, req)
		if err != nil {
			span.RecordError(err)
		}

		if created {
			span.End()
		}
		return resp, err
	}
}
