package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SpanObserver records events on the span carried by the event context.
// Events arriving without a recording span are dropped.
type SpanObserver struct {
	minLevel Level
}

// NewSpanObserver creates a SpanObserver that records events at or above
// minLevel.
func NewSpanObserver(minLevel Level) *SpanObserver {
	return &SpanObserver{minLevel: minLevel}
}

func (o *SpanObserver) OnEvent(ctx context.Context, event Event) {
	if event.Level < o.minLevel {
		return
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := make([]attribute.KeyValue, 0, len(event.Data)+2)
	attrs = append(attrs,
		attribute.String("source", event.Source),
		attribute.String("severity", event.Level.String()),
	)
	for k, v := range event.Data {
		attrs = append(attrs, toAttribute(k, v))
	}

	opts := []trace.EventOption{trace.WithAttributes(attrs...)}
	if !event.Timestamp.IsZero() {
		opts = append(opts, trace.WithTimestamp(event.Timestamp))
	}

	span.AddEvent(string(event.Type), opts...)
}

func toAttribute(key string, v any) attribute.KeyValue {
	switch val := v.(type) {
	case string:
		return attribute.String(key, val)
	case bool:
		return attribute.Bool(key, val)
	case int:
		return attribute.Int(key, val)
	case int64:
		return attribute.Int64(key, val)
	case float64:
		return attribute.Float64(key, val)
	case []string:
		return attribute.StringSlice(key, val)
	case fmt.Stringer:
		return attribute.String(key, val.String())
	default:
		return attribute.String(key, fmt.Sprint(val))
	}
}
