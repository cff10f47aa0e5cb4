package rpc

import (
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"github.com/signalsfoundry/terrain-propagation/core"
	"github.com/signalsfoundry/terrain-propagation/internal/logging"
	"github.com/signalsfoundry/terrain-propagation/internal/observability"
)

// NewServer builds a gRPC server exposing PropagationService with request
// IDs, tracing and, when collector is non-nil, RPC metrics.
func NewServer(predictor *core.Predictor, log logging.Logger, collector *observability.RPCCollector, opts ...grpc.ServerOption) *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{
		RequestIDUnaryServerInterceptor(log),
		TracingUnaryServerInterceptor(),
	}
	if collector != nil {
		interceptors = append(interceptors, collector.UnaryServerInterceptor())
	}

	serverOpts := append([]grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(interceptors...),
	}, opts...)

	server := grpc.NewServer(serverOpts...)
	RegisterPropagationServer(server, NewPropagationService(predictor, log))
	return server
}
