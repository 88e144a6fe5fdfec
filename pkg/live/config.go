package live

import (
	"log/slog"
	"net/http"
	"time"
)

// Config holds the transport settings for a Handler.
type Config struct {
	// ReadTimeout is the per-message read deadline.
	ReadTimeout time.Duration

	// WriteTimeout is the per-message write deadline.
	WriteTimeout time.Duration

	// HeartbeatInterval is how often the session pings the client.
	HeartbeatInterval time.Duration

	// ReadBufferSize and WriteBufferSize size the WebSocket buffers.
	ReadBufferSize  int
	WriteBufferSize int

	// MaxMessageSize caps inbound message size in bytes.
	MaxMessageSize int64

	// CheckOrigin validates the WebSocket upgrade origin. The default
	// rejects cross-origin upgrades.
	CheckOrigin func(r *http.Request) bool

	// Logger receives session lifecycle and error logs. Defaults to
	// slog.Default.
	Logger *slog.Logger

	// PayloadDecoder turns a raw event payload into the typed value a
	// listener expects for that event name. When nil the raw bytes are
	// delivered as the event data.
	PayloadDecoder func(name string, payload []byte) (any, error)
}

// DefaultConfig returns the default transport settings.
func DefaultConfig() Config {
	return Config{
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		HeartbeatInterval: 30 * time.Second,
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		MaxMessageSize:    1 << 20,
	}
}

// Option configures a Handler.
type Option func(*Handler)

// WithConfig replaces the full transport configuration.
func WithConfig(cfg Config) Option {
	return func(h *Handler) {
		h.config = cfg
	}
}

// WithLogger sets the logger for sessions created by the handler.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.config.Logger = logger
	}
}

// WithCheckOrigin sets the upgrade origin check.
func WithCheckOrigin(check func(r *http.Request) bool) Option {
	return func(h *Handler) {
		h.config.CheckOrigin = check
	}
}

// WithHeartbeat sets the ping interval.
func WithHeartbeat(interval time.Duration) Option {
	return func(h *Handler) {
		h.config.HeartbeatInterval = interval
	}
}

// WithPayloadDecoder sets the event payload decoder.
func WithPayloadDecoder(decode func(name string, payload []byte) (any, error)) Option {
	return func(h *Handler) {
		h.config.PayloadDecoder = decode
	}
}
