// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package griplog provides a Grip decorator which logs every read and write.
package griplog

import (
	"context"
	"log/slog"

	"github.com/z5labs/grip"
)

// MaskedValue replaces logged values when [MaskValues] is used.
const MaskedValue = "****"

type options struct {
	handler slog.Handler
	ctx     context.Context
	mask    bool
}

// Option configures the Grip returned by [Log].
type Option interface {
	applyOption(*options)
}

type optionFunc func(*options)

func (f optionFunc) applyOption(o *options) {
	f(o)
}

// LogHandler sets the handler logs are written to. The handler is
// wrapped with [NewHandler]. By default, nothing is logged.
func LogHandler(h slog.Handler) Option {
	return optionFunc(func(o *options) {
		o.handler = NewHandler(h)
	})
}

// Context sets the context records are logged with when the Grip is
// used through Value and Set. Operations issued with a context of their
// own, see [grip.ValueContext], are logged with that context instead.
func Context(ctx context.Context) Option {
	return optionFunc(func(o *options) {
		o.ctx = ctx
	})
}

// MaskValues hides the values read and written from the logs.
func MaskValues() Option {
	return optionFunc(func(o *options) {
		o.mask = true
	})
}

// Grip logs the outcome of every operation on the Grip it wraps.
// Successful operations are logged at debug level and failures
// at error level.
type Grip[T any] struct {
	subject grip.Grip[T]
	log     *slog.Logger
	ctx     context.Context
	mask    bool
}

// Log wraps g. Every record carries name under the "grip" key.
func Log[T any](g grip.Grip[T], name string, opts ...Option) *Grip[T] {
	o := &options{
		handler: discardHandler{},
		ctx:     context.Background(),
	}
	for _, opt := range opts {
		opt.applyOption(o)
	}
	return &Grip[T]{
		subject: g,
		log:     slog.New(o.handler).With(slog.String("grip", name)),
		ctx:     o.ctx,
		mask:    o.mask,
	}
}

// Value implements the [grip.Grip] interface.
func (g *Grip[T]) Value() grip.Result[T] {
	return g.ValueContext(g.ctx)
}

// Set implements the [grip.Grip] interface.
func (g *Grip[T]) Set(r grip.Result[T]) grip.Result[T] {
	return g.SetContext(g.ctx, r)
}

// ValueContext implements the [grip.ContextGrip] interface. ctx is
// passed on to the wrapped Grip and records are logged with it.
func (g *Grip[T]) ValueContext(ctx context.Context) grip.Result[T] {
	return g.record(ctx, "value", grip.ValueContext(ctx, g.subject))
}

// SetContext implements the [grip.ContextGrip] interface.
func (g *Grip[T]) SetContext(ctx context.Context, r grip.Result[T]) grip.Result[T] {
	return g.record(ctx, "set", grip.SetContext(ctx, g.subject, r))
}

// Unwrap implements the [grip.Unwrapper] interface.
func (g *Grip[T]) Unwrap() any {
	return g.subject
}

// record logs synchronous results right away. Pending results are
// replaced by one which resolves after the outcome has been logged.
func (g *Grip[T]) record(ctx context.Context, op string, r grip.Result[T]) grip.Result[T] {
	if !r.IsAsync() {
		v, err := r.Now()
		g.write(ctx, op, r.IsEmpty(), false, v, err)
		return r
	}

	fut := r.Future()
	return grip.Async(grip.Go(func() (T, error) {
		v, err := fut.Await(context.Background())
		g.write(ctx, op, false, true, v, err)
		return v, err
	}))
}

func (g *Grip[T]) write(ctx context.Context, op string, empty, async bool, v T, err error) {
	attrs := []slog.Attr{
		slog.String("op", op),
		slog.Bool("async", async),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
		g.log.LogAttrs(ctx, slog.LevelError, "grip operation failed", attrs...)
		return
	}

	switch {
	case empty:
		attrs = append(attrs, slog.Bool("empty", true))
	case g.mask:
		attrs = append(attrs, slog.String("value", MaskedValue))
	default:
		attrs = append(attrs, slog.Any("value", v))
	}
	g.log.LogAttrs(ctx, slog.LevelDebug, "grip operation succeeded", attrs...)
}
