package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/signalsfoundry/terrain-propagation/core"
	"github.com/signalsfoundry/terrain-propagation/internal/logging"
	"github.com/signalsfoundry/terrain-propagation/internal/native"
	"github.com/signalsfoundry/terrain-propagation/internal/observability"
	"github.com/signalsfoundry/terrain-propagation/internal/rpc"
)

func main() {
	grpcAddr := flag.String("grpc-addr", ":50051", "TCP address the gRPC server listens on")
	metricsAddr := flag.String("metrics-addr", ":9090", "HTTP address for Prometheus /metrics")
	envFile := flag.String("env-file", ".env", "optional dotenv file with LOG_* and ITM_* settings")
	flag.Parse()

	// Variables already set in the environment win over the file.
	_ = godotenv.Load(*envFile) // ignore missing file

	log := logging.NewFromEnv()
	ctx := context.Background()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.Err(err))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)

	oracle, err := native.New()
	if err != nil {
		log.Error(ctx, "propagation model unavailable", logging.Err(err))
		os.Exit(1)
	}

	rpcMetrics, predictionMetrics, err := newCollectors(prometheus.DefaultRegisterer)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.Err(err))
		os.Exit(1)
	}
	metricsSrv := serveMetrics(*metricsAddr, predictionMetrics, log)

	predictor := core.NewPredictor(oracle,
		core.WithLogger(log),
		core.WithMetricsRecorder(predictionMetrics),
	)
	server := rpc.NewServer(predictor, log, rpcMetrics)

	lis, err := net.Listen("tcp", *grpcAddr)
	if err != nil {
		log.Error(ctx, "failed to listen for gRPC", logging.String("addr", *grpcAddr), logging.Err(err))
		os.Exit(1)
	}

	log.Info(ctx, "starting propagation gRPC server", logging.String("addr", *grpcAddr))
	go func() {
		if err := server.Serve(lis); err != nil {
			log.Error(ctx, "gRPC server exited", logging.Err(err))
		}
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-stopCtx.Done()

	log.Info(ctx, "shutting down propagation server")
	server.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
}

func newCollectors(reg prometheus.Registerer) (*observability.RPCCollector, *observability.PredictionCollector, error) {
	rpcMetrics, err := observability.NewRPCCollector(reg)
	if err != nil {
		return nil, nil, err
	}
	predictionMetrics, err := observability.NewPredictionCollector(reg)
	if err != nil {
		return nil, nil, err
	}
	return rpcMetrics, predictionMetrics, nil
}

func serveMetrics(addr string, collector *observability.PredictionCollector, log logging.Logger) *http.Server {
	if collector == nil || addr == "" {
		return nil
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           metricsMux(collector),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn(context.Background(), "metrics server exited", logging.Err(err))
		}
	}()

	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}

func metricsMux(collector *observability.PredictionCollector) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux
}
