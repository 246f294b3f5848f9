package trace

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	p, err := NewProvider(context.Background(), Options{})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.Enabled() {
		t.Error("expected disabled provider without endpoint")
	}
	if p.Tracer() == nil {
		t.Fatal("expected a no-op tracer")
	}
	_, span := p.Tracer().Start(context.Background(), "noop")
	span.End()
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestNewProvider_WithEndpoint(t *testing.T) {
	// The HTTP exporter connects lazily, so construction succeeds offline.
	p, err := NewProvider(context.Background(), Options{Endpoint: "localhost:4318", Insecure: true})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if !p.Enabled() {
		t.Error("expected enabled provider with endpoint")
	}
}

func TestProvider_RecordsSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	p := newSDKProvider(sdktrace.WithSpanProcessor(sr))

	_, span := p.Tracer().Start(context.Background(), "editor.SelectView")
	span.End()
	if err := p.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	ended := sr.Ended()
	if len(ended) != 1 || ended[0].Name() != "editor.SelectView" {
		t.Fatalf("unexpected spans: %v", ended)
	}
	if got := ended[0].InstrumentationScope().Name; got != tracerName {
		t.Errorf("scope = %q, want %q", got, tracerName)
	}
}

func TestShutdown_NilProvider(t *testing.T) {
	var p *Provider
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("nil Shutdown: %v", err)
	}
}
