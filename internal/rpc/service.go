package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// The service carries google.protobuf.Struct messages so that no generated
// code is needed; field names are documented on decodeRequest.
const (
	ServiceName          = "itm.v1.PropagationService"
	PredictP2PMethod     = "PredictP2P"
	PredictP2PFullMethod = "/" + ServiceName + "/" + PredictP2PMethod
)

// PropagationServer is the server API for PropagationService.
type PropagationServer interface {
	PredictP2P(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// PropagationServiceDesc is the grpc.ServiceDesc for PropagationService.
var PropagationServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PropagationServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: PredictP2PMethod,
			Handler:    predictP2PHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "itm/v1/propagation.proto",
}

// RegisterPropagationServer attaches srv to s.
func RegisterPropagationServer(s grpc.ServiceRegistrar, srv PropagationServer) {
	s.RegisterService(&PropagationServiceDesc, srv)
}

func predictP2PHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PropagationServer).PredictP2P(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PredictP2PFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PropagationServer).PredictP2P(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// PropagationClient is a thin client for PropagationService.
type PropagationClient struct {
	cc grpc.ClientConnInterface
}

func NewPropagationClient(cc grpc.ClientConnInterface) *PropagationClient {
	return &PropagationClient{cc: cc}
}

func (c *PropagationClient) PredictP2P(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, PredictP2PFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
