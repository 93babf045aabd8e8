package tracing

import (
	"context"
	"fmt"

	"github.com/topfreegames/payout/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.18.0"
)

const (
	tracingDisabledPath        = "tracing.jaeger.disabled"
	tracingAgentHostPath       = "tracing.jaeger.agent_host"
	tracingAgentPortPath       = "tracing.jaeger.agent_port"
	tracingSamplerPath         = "tracing.jaeger.sampler"
	tracingShutdownTimeoutPath = "tracing.gracefulShutdownTimeout"
	serviceName                = "payout"
)

// ConfigureTracing registers the global tracer provider used by the
// operations and storage hooks. The returned function flushes pending spans.
func ConfigureTracing(component string, cfg config.Config) (func() error, error) {
	if IsTracingEnabled(cfg) {
		return configureJaeger(component, cfg)
	}

	return func() error { return nil }, nil
}

func IsTracingEnabled(cfg config.Config) bool {
	return !cfg.GetBool(tracingDisabledPath)
}

func configureJaeger(component string, configs config.Config) (func() error, error) {
	provider := trace.NewTracerProvider(
		trace.WithResource(buildResource(component)),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(configs.GetFloat64(tracingSamplerPath)))),
	)

	endpointOptions := jaeger.WithAgentEndpoint(
		jaeger.WithAgentHost(configs.GetString(tracingAgentHostPath)),
		jaeger.WithAgentPort(configs.GetString(tracingAgentPortPath)),
	)

	exp, err := jaeger.New(endpointOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create jaeger exporter: %w", err)
	}

	provider.RegisterSpanProcessor(trace.NewBatchSpanProcessor(exp))
	otel.SetTracerProvider(provider)

	return func() error {
		shutdownCtx, cancelShutdownFn := context.WithTimeout(context.Background(), configs.GetDuration(tracingShutdownTimeoutPath))
		defer cancelShutdownFn()

		return provider.Shutdown(shutdownCtx)
	}, nil
}

func buildResource(component string) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNamespaceKey.String(serviceName),
		semconv.ServiceNameKey.String(fmt.Sprintf("%s-%s", serviceName, component)),
	)
}
