package service

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/topfreegames/payout/internal/config"
	"go.uber.org/zap"
)

const (
	metricsEnabledPath                 = "metrics.enabled"
	metricsPortPath                    = "metrics.port"
	metricsGracefulShutdownTimeoutPath = "metrics.gracefulShutdownTimeout"
)

// RunMetricsServer start a metrics server in other goroutine, and returns a
// shutdown function. Nothing is started when metrics are disabled.
func RunMetricsServer(ctx context.Context, configs config.Config) func() error {
	if !configs.GetBool(metricsEnabledPath) {
		return func() error { return nil }
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", configs.GetString(metricsPortPath)),
		Handler: newMetricsMux(),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		zap.L().Info(fmt.Sprintf("started HTTP Metrics at :%s", configs.GetString(metricsPortPath)))
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			zap.L().With(zap.Error(err)).Fatal("failed to start HTTP metrics server")
		}
	}()

	return func() error {
		shutdownCtx, cancelShutdownFn := context.WithTimeout(context.Background(), configs.GetDuration(metricsGracefulShutdownTimeoutPath))
		defer cancelShutdownFn()

		zap.L().Info("stopping HTTP metrics server")
		return httpServer.Shutdown(shutdownCtx)
	}
}

func newMetricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return mux
}
