// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gripotel provides a Grip decorator which traces and counts
// every read and write with OpenTelemetry.
package gripotel

import (
	"context"

	"github.com/z5labs/grip"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// ScopeName is the instrumentation scope of the tracer and meter.
const ScopeName = "grip"

type options struct {
	tp  trace.TracerProvider
	mp  metric.MeterProvider
	ctx context.Context
}

// Option configures the Grip returned by [Trace].
type Option interface {
	applyOption(*options)
}

type optionFunc func(*options)

func (f optionFunc) applyOption(o *options) {
	f(o)
}

// TracerProvider overrides the globally registered trace.TracerProvider.
func TracerProvider(tp trace.TracerProvider) Option {
	return optionFunc(func(o *options) {
		o.tp = tp
	})
}

// MeterProvider overrides the globally registered metric.MeterProvider.
func MeterProvider(mp metric.MeterProvider) Option {
	return optionFunc(func(o *options) {
		o.mp = mp
	})
}

// Context sets the parent context of spans started by Value and Set.
// Operations issued with a context of their own, see [grip.ValueContext],
// use that context as the parent instead.
func Context(ctx context.Context) Option {
	return optionFunc(func(o *options) {
		o.ctx = ctx
	})
}

// Grip records a span and increments the "grip.operations" counter for
// every operation on the Grip it wraps. Spans of pending results end
// once the result resolves.
type Grip[T any] struct {
	subject grip.Grip[T]
	tracer  trace.Tracer
	ops     metric.Int64Counter
	ctx     context.Context
	name    attribute.KeyValue
}

// Trace wraps g. Spans and data points carry name as the "grip.name" attribute.
func Trace[T any](g grip.Grip[T], name string, opts ...Option) *Grip[T] {
	o := &options{
		tp:  otel.GetTracerProvider(),
		mp:  otel.GetMeterProvider(),
		ctx: context.Background(),
	}
	for _, opt := range opts {
		opt.applyOption(o)
	}

	ops, err := o.mp.Meter(ScopeName).Int64Counter(
		"grip.operations",
		metric.WithDescription("Number of grip reads and writes"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		otel.Handle(err)
		ops, _ = noop.NewMeterProvider().Meter(ScopeName).Int64Counter("grip.operations")
	}

	return &Grip[T]{
		subject: g,
		tracer:  o.tp.Tracer(ScopeName),
		ops:     ops,
		ctx:     o.ctx,
		name:    attribute.String("grip.name", name),
	}
}

// Value implements the [grip.Grip] interface. The span is a child
// of the context set with [Context].
func (g *Grip[T]) Value() grip.Result[T] {
	return g.ValueContext(g.ctx)
}

// Set implements the [grip.Grip] interface.
func (g *Grip[T]) Set(r grip.Result[T]) grip.Result[T] {
	return g.SetContext(g.ctx, r)
}

// ValueContext implements the [grip.ContextGrip] interface. The span
// is a child of ctx and the wrapped Grip is read on behalf of the span,
// so a wrapped griplog.Grip logs with its trace and span ids.
func (g *Grip[T]) ValueContext(ctx context.Context) grip.Result[T] {
	ctx, span := g.tracer.Start(ctx, "Grip.Value", trace.WithAttributes(g.name))
	return g.end(ctx, span, "value", grip.ValueContext(ctx, g.subject))
}

// SetContext implements the [grip.ContextGrip] interface.
func (g *Grip[T]) SetContext(ctx context.Context, r grip.Result[T]) grip.Result[T] {
	ctx, span := g.tracer.Start(ctx, "Grip.Set", trace.WithAttributes(g.name))
	return g.end(ctx, span, "set", grip.SetContext(ctx, g.subject, r))
}

// Unwrap implements the [grip.Unwrapper] interface.
func (g *Grip[T]) Unwrap() any {
	return g.subject
}

func (g *Grip[T]) end(ctx context.Context, span trace.Span, op string, r grip.Result[T]) grip.Result[T] {
	span.SetAttributes(attribute.Bool("grip.async", r.IsAsync()))
	if !r.IsAsync() {
		g.finish(ctx, span, op, r.IsEmpty(), r.Err())
		return r
	}

	fut := r.Future()
	return grip.Async(grip.Go(func() (T, error) {
		v, err := fut.Await(context.Background())
		g.finish(ctx, span, op, false, err)
		return v, err
	}))
}

func (g *Grip[T]) finish(ctx context.Context, span trace.Span, op string, empty bool, err error) {
	defer span.End()

	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	case empty:
		outcome = "empty"
		span.SetAttributes(attribute.Bool("grip.empty", true))
	}

	g.ops.Add(ctx, 1, metric.WithAttributes(
		g.name,
		attribute.String("grip.op", op),
		attribute.String("grip.outcome", outcome),
	))
}
