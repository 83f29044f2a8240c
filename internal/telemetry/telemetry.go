// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

// Package telemetry wraps the OpenTelemetry span instrumentation used by
// the multiplexer. Spans are recorded against the globally registered
// tracer provider; when none is set, everything here is a noop.
// This package is internal and should not be imported by external projects.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const scopeName = "github.com/shubhampachori12110095/pescador"

func tracer() trace.Tracer {
	return otel.Tracer(scopeName)
}

// StartActivation opens a span covering one multiplexer activation. The
// span lives until EndActivation is called with the returned context.
func StartActivation(ctx context.Context, variant, activationID string, slots int) context.Context {
	ctx, _ = tracer().Start(ctx, "mux.activation",
		trace.WithAttributes(
			attribute.String("pescador.variant", variant),
			attribute.String("pescador.activation_id", activationID),
			attribute.Int("pescador.slots", slots),
		),
	)
	return ctx
}

// StreamPruned records a prune event on the activation span.
func StreamPruned(ctx context.Context, poolIdx int) {
	trace.SpanFromContext(ctx).AddEvent("stream_pruned",
		trace.WithAttributes(attribute.Int("pescador.stream", poolIdx)),
	)
}

// EndActivation closes the activation span, recording the number of items
// emitted.
func EndActivation(ctx context.Context, items int64) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.Int64("pescador.items", items))
	span.End()
}
