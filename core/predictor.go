package core

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/terrain-propagation/internal/logging"
)

const tracerName = "github.com/signalsfoundry/terrain-propagation/core"

// Outcome labels used for metrics and logs, besides the ErrorCode names.
const (
	OutcomeSuccess      = "success"
	OutcomeWarning      = "warning"
	OutcomeInvalidInput = "invalid_input"
)

// MetricsRecorder receives one observation per prediction.
type MetricsRecorder interface {
	ObservePrediction(outcome string, samples int, attenuationDB float64, elapsed time.Duration)
}

// PredictorOption configures a Predictor.
type PredictorOption func(*Predictor)

// WithLogger sets the fallback logger used when the context carries none.
func WithLogger(l logging.Logger) PredictorOption {
	return func(p *Predictor) {
		if l != nil {
			p.log = l
		}
	}
}

// WithMetricsRecorder attaches an optional metrics recorder.
func WithMetricsRecorder(m MetricsRecorder) PredictorOption {
	return func(p *Predictor) {
		p.metrics = m
	}
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) PredictorOption {
	return func(p *Predictor) {
		if tp != nil {
			p.tracer = tp.Tracer(tracerName)
		}
	}
}

// Predictor wraps P2P with tracing, logging and metrics. It holds no
// per-call state and is safe for concurrent use when its oracle is.
type Predictor struct {
	oracle  PropagationOracle
	log     logging.Logger
	metrics MetricsRecorder
	tracer  trace.Tracer
}

// NewPredictor builds a Predictor around oracle.
func NewPredictor(oracle PropagationOracle, opts ...PredictorOption) *Predictor {
	p := &Predictor{
		oracle: oracle,
		log:    logging.Noop(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Predict runs a float64 prediction. See PredictWith for other precisions.
func (p *Predictor) Predict(ctx context.Context, params Params[float64]) (Result, error) {
	return PredictWith(ctx, p, params)
}

// PredictWith is the generic form of Predictor.Predict.
func PredictWith[T Real](ctx context.Context, p *Predictor, params Params[T]) (res Result, err error) {
	log := logging.LoggerFromContext(ctx)
	if log == nil {
		log = p.log
	}

	ctx, span := p.tracer.Start(ctx, "itm.p2p", trace.WithAttributes(
		attribute.Float64("itm.frequency_hz", float64(params.FrequencyHz)),
		attribute.Int("itm.samples", len(params.ElevationsM)),
		attribute.Float64("itm.spacing_m", float64(params.SpacingM)),
		attribute.String("itm.climate", params.Climate.String()),
		attribute.String("itm.polarization", params.Polarization.String()),
		attribute.String("itm.variability", params.Variability.String()),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			if cv, ok := r.(*ContractViolation); ok {
				log.Error(ctx, "native model returned an undocumented status code", logging.Int("code", cv.Code))
				span.SetStatus(codes.Error, cv.Error())
			}
			panic(r)
		}
	}()

	res, err = P2P(p.oracle, params)
	elapsed := time.Since(start)
	outcome := outcomeOf(res, err)

	if p.metrics != nil {
		p.metrics.ObservePrediction(outcome, len(params.ElevationsM), res.AttenuationDB, elapsed)
	}
	span.SetAttributes(attribute.String("itm.outcome", outcome))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if se, ok := AsStatusError(err); ok {
			span.SetAttributes(attribute.Int("itm.status_code", int(se.Code)))
		}
		log.Warn(ctx, "p2p prediction rejected",
			logging.String("outcome", outcome),
			logging.Err(err),
		)
		return res, err
	}

	span.SetAttributes(attribute.Float64("itm.attenuation_db", res.AttenuationDB))
	fields := []logging.Field{
		logging.String("outcome", outcome),
		logging.Float64("attenuation_db", res.AttenuationDB),
		logging.Int("samples", len(params.ElevationsM)),
		logging.Bool("warning", res.Warning()),
		logging.Any("elapsed", elapsed),
	}
	if res.Intermediate != nil {
		fields = append(fields, logging.String("mode", res.Intermediate.Mode.String()))
	}
	if res.UnknownModeCode != nil {
		span.SetAttributes(attribute.Int("itm.unknown_mode_code", *res.UnknownModeCode))
		log.Warn(ctx, "native model reported an undocumented propagation mode",
			logging.Int("mode_code", *res.UnknownModeCode),
			logging.Float64("attenuation_db", res.AttenuationDB),
		)
	}
	if res.Warning() {
		log.Info(ctx, "p2p prediction completed with warning", fields...)
	} else {
		log.Debug(ctx, "p2p prediction completed", fields...)
	}
	return res, nil
}

func outcomeOf(res Result, err error) string {
	if err == nil {
		if res.Warning() {
			return OutcomeWarning
		}
		return OutcomeSuccess
	}
	if se, ok := AsStatusError(err); ok {
		return se.Code.String()
	}
	return OutcomeInvalidInput
}
