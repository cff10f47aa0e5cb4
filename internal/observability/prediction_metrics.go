package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/signalsfoundry/terrain-propagation/core"
)

// PredictionCollector exposes point-to-point prediction metrics. It satisfies
// core.MetricsRecorder.
type PredictionCollector struct {
	gatherer prometheus.Gatherer

	Predictions   *prometheus.CounterVec
	Duration      prometheus.Histogram
	Attenuation   prometheus.Histogram
	ProfileLength prometheus.Histogram
}

// NewPredictionCollector registers prediction metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewPredictionCollector(reg prometheus.Registerer) (*PredictionCollector, error) {
	reg, gatherer := resolveRegistry(reg)

	predictions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "itm_predictions_total",
		Help: "Point-to-point predictions, labeled by success, warning, invalid_input or the model error name.",
	}, []string{"status"})
	predictions, err := registerCounterVec(reg, predictions, "itm_predictions_total")
	if err != nil {
		return nil, err
	}

	duration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "itm_prediction_duration_seconds",
		Help:    "Wall time of a single point-to-point prediction, including marshaling.",
		Buckets: []float64{0.00001, 0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
	}), "itm_prediction_duration_seconds")
	if err != nil {
		return nil, err
	}

	attenuation, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "itm_attenuation_db",
		Help:    "Basic transmission loss of successful predictions in dB.",
		Buckets: prometheus.LinearBuckets(60, 20, 10),
	}), "itm_attenuation_db")
	if err != nil {
		return nil, err
	}

	samples, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "itm_profile_samples",
		Help:    "Number of terrain samples per prediction.",
		Buckets: prometheus.ExponentialBuckets(2, 4, 8),
	}), "itm_profile_samples")
	if err != nil {
		return nil, err
	}

	return &PredictionCollector{
		gatherer:      gatherer,
		Predictions:   predictions,
		Duration:      duration,
		Attenuation:   attenuation,
		ProfileLength: samples,
	}, nil
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *PredictionCollector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// Handler exposes a /metrics handler over the collector's gatherer.
func (c *PredictionCollector) Handler() http.Handler {
	return handlerFor(c.Gatherer())
}

// ObservePrediction records one prediction. Attenuation is only observed for
// outcomes that produced a loss value.
func (c *PredictionCollector) ObservePrediction(outcome string, samples int, attenuationDB float64, elapsed time.Duration) {
	if c == nil {
		return
	}
	if c.Predictions != nil {
		c.Predictions.WithLabelValues(outcome).Inc()
	}
	if c.Duration != nil {
		c.Duration.Observe(elapsed.Seconds())
	}
	if c.ProfileLength != nil && samples >= 0 {
		c.ProfileLength.Observe(float64(samples))
	}
	if c.Attenuation != nil && (outcome == core.OutcomeSuccess || outcome == core.OutcomeWarning) {
		c.Attenuation.Observe(attenuationDB)
	}
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}
