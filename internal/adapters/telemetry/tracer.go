// Package telemetry provides OpenTelemetry backed tracing for builds.
package telemetry

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/buildserver/internal/core/ports"
)

// DefaultEventLimit is the number of buffered output bytes that triggers a span event.
const DefaultEventLimit = 4096

var (
	_ ports.Tracer = (*OTelTracer)(nil)
	_ ports.Span   = (*OTelSpan)(nil)
)

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	tracer trace.Tracer
}

// NewOTelTracer creates a tracer named name from tp.
func NewOTelTracer(tp trace.TracerProvider, name string) *OTelTracer {
	return &OTelTracer{tracer: tp.Tracer(name)}
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var startOpts []trace.SpanStartOption
	if cfg.Root {
		startOpts = append(startOpts, trace.WithNewRoot())
	}

	ctx, span := t.tracer.Start(ctx, name, startOpts...)
	return ctx, &OTelSpan{span: span, limit: DefaultEventLimit}
}

// EmitPlan records the planned task names as an event on the current span.
func (t *OTelTracer) EmitPlan(ctx context.Context, taskNames []string) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("plan_emitted", trace.WithAttributes(
			attribute.StringSlice("tasks", taskNames),
		))
	}
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
// Output written to it is recorded as "log" events of up to limit bytes,
// split on line boundaries where possible.
type OTelSpan struct {
	span  trace.Span
	limit int

	mu  sync.Mutex
	buf bytes.Buffer
}

// End flushes buffered output and completes the span.
func (s *OTelSpan) End() {
	s.mu.Lock()
	s.flushLocked(s.buf.Len())
	s.mu.Unlock()
	s.span.End()
}

// RecordError records an error for the span.
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	case fmt.Stringer:
		s.span.SetAttributes(attribute.String(key, v.String()))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}

// Write buffers tool output and emits it as span events once the limit is reached.
func (s *OTelSpan) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, _ := s.buf.Write(p)
	for s.buf.Len() >= s.limit {
		cut := bytes.LastIndexByte(s.buf.Bytes()[:s.limit], '\n') + 1
		if cut == 0 {
			cut = s.limit
		}
		s.flushLocked(cut)
	}
	return n, nil
}

// flushLocked emits the first n buffered bytes. It must be called with mu held.
func (s *OTelSpan) flushLocked(n int) {
	if n == 0 {
		return
	}
	msg := string(s.buf.Next(n))
	s.span.AddEvent("log", trace.WithAttributes(attribute.String("message", msg)))
}
