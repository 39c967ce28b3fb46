package telemetry

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports"
	"go.trai.ch/zerr"
)

// InstrumentationName names the tracer used for builds.
const InstrumentationName = "go.trai.ch/buildserver"

// Provider owns the span pipeline of one build.
type Provider struct {
	tp   *sdktrace.TracerProvider
	file *os.File
}

// NewProvider creates a tracer provider that reports spans to logger and,
// when traceFile is set, exports them as JSON to that file.
func NewProvider(logger ports.Logger, traceFile string) (*Provider, error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	}

	p := &Provider{}
	if traceFile != "" {
		if err := os.MkdirAll(filepath.Dir(traceFile), domain.DirPerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to create trace directory"), "path", traceFile)
		}
		f, err := os.OpenFile(traceFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.FilePerm) //nolint:gosec // Path comes from settings
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to open trace file"), "path", traceFile)
		}
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(f))
		if err != nil {
			_ = f.Close()
			return nil, zerr.Wrap(err, "failed to create trace exporter")
		}
		opts = append(opts, sdktrace.WithSyncer(exporter))
		p.file = f
	}

	p.tp = sdktrace.NewTracerProvider(opts...)
	return p, nil
}

// Tracer returns a tracer backed by the provider.
func (p *Provider) Tracer() *OTelTracer {
	return NewOTelTracer(p.tp, InstrumentationName)
}

// Shutdown flushes pending spans and closes the trace file.
func (p *Provider) Shutdown(ctx context.Context) error {
	err := p.tp.Shutdown(ctx)
	if p.file != nil {
		err = errors.Join(err, p.file.Close())
	}
	return err
}
