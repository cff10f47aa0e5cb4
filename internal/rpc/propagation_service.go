package rpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/signalsfoundry/terrain-propagation/core"
	"github.com/signalsfoundry/terrain-propagation/internal/logging"
)

// PropagationService implements PropagationServer on top of a core.Predictor.
type PropagationService struct {
	predictor *core.Predictor
	log       logging.Logger
}

// NewPropagationService wires the service to a predictor and optional logger.
func NewPropagationService(predictor *core.Predictor, log logging.Logger) *PropagationService {
	if log == nil {
		log = logging.Noop()
	}
	return &PropagationService{predictor: predictor, log: log}
}

// PredictP2P decodes the request, runs one prediction and encodes the
// result. A *core.ContractViolation from the model is not recovered.
func (s *PropagationService) PredictP2P(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if s.predictor == nil {
		return nil, status.Error(codes.Unavailable, "propagation model not configured")
	}
	log := logging.LoggerFromContext(ctx)
	if log == nil {
		log = s.log
	}

	params, err := decodeRequest(in)
	if err != nil {
		log.Warn(ctx, "rejecting malformed prediction request", logging.Err(err))
		return nil, ToStatusError(err)
	}

	res, err := s.predictor.Predict(ctx, params)
	if err != nil {
		return nil, ToStatusError(err)
	}

	out, err := encodeResult(params, res)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode result: %v", err)
	}
	return out, nil
}
