package lockor

import (
	"github.com/viant/afs"
	"github.com/viant/lockor/policy"
	"github.com/viant/lockor/progress"
	"github.com/viant/lockor/resolver"
	"github.com/viant/lockor/service/dao"
	"github.com/viant/lockor/service/event"
	"github.com/viant/lockor/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises the engine Service.
type Option func(s *Service)

// WithConfig sets the engine configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) { s.config = config }
}

// WithPolicy overrides the built-in allocation policy.
func WithPolicy(pol *policy.Policy) Option {
	return func(s *Service) { s.policy = pol }
}

// WithFileSystem sets the abstract file system used for all reads and writes.
func WithFileSystem(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}

func WithEventService(service *event.Service) Option {
	return func(s *Service) { s.eventService = service }
}

// WithResultDAO sets the term-result storage.
func WithResultDAO(dao dao.Service[int, resolver.Result]) Option {
	return func(s *Service) { s.runtime.resultDAO = dao }
}

// WithRegistry seeds the ineligibility registry, e.g. with allocations from
// a previous run.
func WithRegistry(registry *resolver.Registry) Option {
	return func(s *Service) { s.runtime.registry = registry }
}

// WithProgressListener registers a callback invoked after every progress
// update during an allocation run.
func WithProgressListener(onChange func(progress.Progress)) Option {
	return func(s *Service) { s.onProgress = onChange }
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty the
// stdout exporter is used; otherwise traces are written to the supplied file path. The function is
// safe to call multiple times – the first successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter. This enables
// integrations with exporters other than the built-in stdout exporter, for example OTLP, Jaeger or
// Zipkin. The function is safe to call multiple times – the first successful initialisation wins.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
