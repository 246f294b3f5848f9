package editor

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"pondeditor/internal/logging"
)

const tracerName = "pondeditor/editor"

// Option configures an Editor.
type Option func(*hooks)

// WithLogger sets the logger for transitions.
func WithLogger(l *slog.Logger) Option {
	return func(h *hooks) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithTracer sets the tracer used for one span per entry point call.
func WithTracer(t trace.Tracer) Option {
	return func(h *hooks) {
		if t != nil {
			h.tracer = t
		}
	}
}

// WithObserver registers fn to receive every applied transition.
func WithObserver(fn func(Transition)) Option {
	return func(h *hooks) {
		h.observers = append(h.observers, fn)
	}
}

type hooks struct {
	logger    *slog.Logger
	tracer    trace.Tracer
	observers []func(Transition)
}

func newHooks(opts []Option) *hooks {
	h := &hooks{
		logger: logging.NewNop(),
		tracer: noop.NewTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *hooks) record(t Transition) {
	level := slog.LevelDebug
	if t.From.Linked() != t.To.Linked() {
		level = slog.LevelInfo
	}
	h.logger.Log(context.Background(), level, "editor transition",
		"event", t.Event,
		"from", t.From.String(),
		"to", t.To.String(),
		"effect", t.Effect,
	)
	for _, fn := range h.observers {
		fn(t)
	}
}

// span starts a span for op. The returned func ends it with the final state
// and outcome.
func (h *hooks) span(op string, from State) func(to State, outcome string) {
	_, span := h.tracer.Start(context.Background(), op,
		trace.WithAttributes(attribute.String("editor.state.from", from.String())))
	return func(to State, outcome string) {
		span.SetAttributes(
			attribute.String("editor.state.to", to.String()),
			attribute.String("editor.outcome", outcome),
		)
		span.End()
	}
}
