package observability

import (
	"context"
	"testing"

	"github.com/signalsfoundry/terrain-propagation/internal/logging"
)

func TestTracingConfigDefaults(t *testing.T) {
	cfg := tracingConfig(func(string) string { return "" })
	if cfg.Enabled || cfg.Exporter != "stdout" || cfg.ServiceName != "itm-propagation" || cfg.SampleRatio != 1 {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestTracingConfigFromValues(t *testing.T) {
	env := map[string]string{
		"ITM_TRACING_ENABLED":      "TRUE",
		"ITM_TRACING_EXPORTER":     "OTLP",
		"ITM_TRACING_SERVICE_NAME": "edge",
		"ITM_TRACING_SAMPLE_RATIO": "0.25",
		"ITM_OTLP_ENDPOINT":        "collector:4317",
	}
	cfg := tracingConfig(func(k string) string { return env[k] })
	want := TracingConfig{Enabled: true, ServiceName: "edge", Exporter: "otlp", Endpoint: "collector:4317", SampleRatio: 0.25}
	if cfg != want {
		t.Fatalf("cfg = %+v, want %+v", cfg, want)
	}

	env["ITM_TRACING_SAMPLE_RATIO"] = "7"
	if got := tracingConfig(func(k string) string { return env[k] }).SampleRatio; got != 1 {
		t.Fatalf("out-of-range ratio should fall back to 1, got %v", got)
	}
}

func TestInitTracingDisabled(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), TracingConfig{}, logging.Noop())
	if err != nil {
		t.Fatalf("InitTracing: %v", err)
	}
	ShutdownWithTimeout(context.Background(), shutdown, nil)
}

func TestInitTracingRejectsUnknownExporter(t *testing.T) {
	if _, err := InitTracing(context.Background(), TracingConfig{Enabled: true, Exporter: "zipkin"}, nil); err == nil {
		t.Fatal("expected error for unsupported exporter")
	}
}
