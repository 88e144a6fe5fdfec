package live

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/weft-ui/weft/pkg/protocol"
)

// Default tracer name for Weft sessions.
const defaultTracerName = "weft"

// OTelConfig configures event-dispatch tracing.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "weft").
	TracerName string

	// Filter determines which events to trace. Return true to trace the
	// event, false to skip. If nil, all events are traced.
	Filter func(f *protocol.EventFrame) bool

	// AttributeExtractor extracts custom attributes from the frame.
	// Called for each traced event.
	AttributeExtractor func(f *protocol.EventFrame) []attribute.KeyValue
}

// OTelOption configures event-dispatch tracing.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithEventFilter sets a filter function for events.
func WithEventFilter(filter func(f *protocol.EventFrame) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extract func(f *protocol.EventFrame) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extract
	}
}

// WithTracing enables OpenTelemetry spans around event dispatch. The
// tracer is resolved from the global provider; configure a provider in
// main() before starting the server.
func WithTracing(opts ...OTelOption) Option {
	return func(h *Handler) {
		config := OTelConfig{TracerName: defaultTracerName}
		for _, opt := range opts {
			opt(&config)
		}
		h.otel = &config
		h.tracer = otel.Tracer(config.TracerName)
	}
}

func (h *Handler) spanAttrs(f *protocol.EventFrame) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("weft.event_name", f.Name),
		attribute.Int64("weft.event_target", int64(f.Target)),
		attribute.Int64("weft.event_seq", int64(f.Seq)),
	}
	if h.otel.AttributeExtractor != nil {
		attrs = append(attrs, h.otel.AttributeExtractor(f)...)
	}
	return attrs
}
