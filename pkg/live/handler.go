package live

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/trace"
)

// Handler upgrades HTTP requests to WebSocket sessions.
type Handler struct {
	config    Config
	upgrader  websocket.Upgrader
	onSession func(*Session)

	otel   *OTelConfig
	tracer trace.Tracer
}

// NewHandler creates a handler. onSession runs once per accepted
// connection, before the read loop starts; use it to push the initial
// frame and install the session's view.
func NewHandler(onSession func(*Session), opts ...Option) *Handler {
	h := &Handler{
		config:    DefaultConfig(),
		onSession: onSession,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.config.Logger == nil {
		h.config.Logger = slog.Default().With("component", "live")
	}

	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  h.config.ReadBufferSize,
		WriteBufferSize: h.config.WriteBufferSize,
		CheckOrigin:     h.config.CheckOrigin,
	}
	return h
}

// ServeHTTP upgrades the request and runs the session until the
// connection closes.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.config.Logger.Error("websocket upgrade failed", "error", err)
		return
	}

	s := newSession(conn, h)
	recordSessionOpen()
	h.config.Logger.Debug("session opened", "remote", conn.RemoteAddr())

	if h.onSession != nil {
		h.onSession(s)
	}

	go s.writeLoop()
	s.readLoop()

	h.config.Logger.Debug("session closed", "remote", conn.RemoteAddr())
}

// Mount attaches the handler to a chi router at pattern.
func Mount(r chi.Router, pattern string, h *Handler) {
	r.Get(pattern, h.ServeHTTP)
}
