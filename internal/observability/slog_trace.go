package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

type requestIDKey struct{}

// WithRequestID makes the request id available to every record logged with ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// TraceHandler stamps trace_id, span_id and request_id from the record's context.
type TraceHandler struct {
	next slog.Handler

	// set when a request_id was already bound through WithAttrs
	boundID bool
}

func NewTraceHandler(next slog.Handler) *TraceHandler {
	return &TraceHandler{next: next}
}

func (h *TraceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *TraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}

	if id := RequestIDFrom(ctx); id != "" && !h.boundID {
		hasID := false
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == "request_id" {
				hasID = true
				return false
			}
			return true
		})
		if !hasID {
			r.AddAttrs(slog.String("request_id", id))
		}
	}

	return h.next.Handle(ctx, r)
}

func (h *TraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	bound := h.boundID
	for _, a := range attrs {
		if a.Key == "request_id" {
			bound = true
		}
	}

	return &TraceHandler{next: h.next.WithAttrs(attrs), boundID: bound}
}

func (h *TraceHandler) WithGroup(name string) slog.Handler {
	return &TraceHandler{next: h.next.WithGroup(name), boundID: h.boundID}
}
