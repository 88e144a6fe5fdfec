package live

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	werr "github.com/weft-ui/weft/internal/errors"
	"github.com/weft-ui/weft/pkg/protocol"
	"github.com/weft-ui/weft/pkg/vdom"
)

// Session is one live connection. The application pushes mutation
// frames out through Push; inbound event frames are decoded on the read
// loop and dispatched to the listeners of the current view.
//
// Push and SetView may be called from any goroutine. Dispatch runs on
// the session's read loop, so listener callbacks see the single-threaded
// model the node layer assumes.
type Session struct {
	conn    *websocket.Conn
	handler *Handler

	// writeMu serializes writes to the connection.
	writeMu sync.Mutex

	// seq numbers outbound mutation frames.
	seq atomic.Uint64

	// viewMu guards the listener table, which SetView swaps wholesale.
	viewMu    sync.RWMutex
	listeners map[vdom.ElementID][]*vdom.Attribute

	closed atomic.Bool
	done   chan struct{}
}

func newSession(conn *websocket.Conn, h *Handler) *Session {
	return &Session{
		conn:      conn,
		handler:   h,
		listeners: make(map[vdom.ElementID][]*vdom.Attribute),
		done:      make(chan struct{}),
	}
}

// SetView rebuilds the session's listener table from a mounted VNode.
// Call it after each render pass so events route to the current
// generation of listeners.
func (s *Session) SetView(v *vdom.VNode) {
	table := vdom.CollectListeners(v)

	s.viewMu.Lock()
	s.listeners = table
	s.viewMu.Unlock()
}

// Push sends one sequenced mutation frame. An empty mutation list is a
// no-op.
func (s *Session) Push(mutations ...protocol.Mutation) error {
	if len(mutations) == 0 {
		return nil
	}
	frame := &protocol.MutationFrame{
		Seq:       s.seq.Add(1),
		Mutations: mutations,
	}
	payload := frame.Encode()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.closed.Load() {
		return websocket.ErrCloseSent
	}

	s.conn.SetWriteDeadline(time.Now().Add(s.handler.config.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
		return err
	}
	recordFrameSent(len(mutations), len(payload))
	return nil
}

// Close shuts the session down. Safe to call more than once.
func (s *Session) Close() {
	if s.closed.Swap(true) {
		return
	}
	close(s.done)
	s.conn.Close()
	recordSessionClose()
}

// Done is closed when the session shuts down.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// readLoop reads event frames until the connection closes.
func (s *Session) readLoop() {
	defer s.Close()

	logger := s.handler.config.Logger
	s.conn.SetReadLimit(s.handler.config.MaxMessageSize)

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.handler.config.ReadTimeout))

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				logger.Error("read error", "error", err)
			}
			return
		}

		frame, err := protocol.DecodeEventFrame(msg)
		if err != nil {
			logger.Error("event frame decode error",
				"error", werr.FromError(err, "W060"))
			recordEventDropped("decode_error")
			continue
		}

		s.dispatch(frame)
	}
}

// writeLoop sends periodic pings until the session closes.
func (s *Session) writeLoop() {
	ticker := time.NewTicker(s.handler.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.writeMu.Lock()
			s.conn.SetWriteDeadline(time.Now().Add(s.handler.config.WriteTimeout))
			err := s.conn.WriteMessage(websocket.PingMessage, nil)
			s.writeMu.Unlock()
			if err != nil {
				s.Close()
				return
			}

		case <-s.done:
			return
		}
	}
}

// dispatch routes one event frame to the listeners mounted on its
// target element. Events with no mounted target or no matching listener
// name are counted and dropped; a listener whose payload type does not
// match drops the event silently inside the callback.
func (s *Session) dispatch(f *protocol.EventFrame) {
	end := s.startSpan(f)

	s.viewMu.RLock()
	attrs := s.listeners[f.Target]
	s.viewMu.RUnlock()

	if len(attrs) == 0 {
		recordEventDropped("no_target")
		end(nil)
		return
	}

	data := any(f.Payload)
	if decode := s.handler.config.PayloadDecoder; decode != nil {
		decoded, err := decode(f.Name, f.Payload)
		if err != nil {
			s.handler.config.Logger.Error("event payload decode error",
				"event", f.Name, "error", err)
			recordEventDropped("payload_decode")
			end(err)
			return
		}
		data = decoded
	}

	ev := &vdom.Event{Name: f.Name, Bubbles: f.Bubbles, Data: data}

	delivered := false
	for _, attr := range attrs {
		if !eventNameMatches(attr.Name, f.Name) {
			continue
		}
		attr.Value.Listener.Call(ev)
		delivered = true
	}

	if delivered {
		recordEventDispatched(f.Name)
	} else {
		recordEventDropped("no_listener")
	}
	end(nil)
}

// startSpan opens a dispatch span when tracing is enabled. The returned
// func ends the span with the dispatch outcome.
func (s *Session) startSpan(f *protocol.EventFrame) func(error) {
	h := s.handler
	if h.tracer == nil {
		return func(error) {}
	}
	if h.otel.Filter != nil && !h.otel.Filter(f) {
		return func(error) {}
	}

	_, span := h.tracer.Start(
		context.Background(),
		"weft.event."+f.Name,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(h.spanAttrs(f)...),
	)
	return func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}

// eventNameMatches reports whether a listener attribute name handles an
// event name. Attribute names conventionally carry the "on" prefix
// ("onclick" handles "click"); a bare name matches itself.
func eventNameMatches(attrName, eventName string) bool {
	if attrName == eventName {
		return true
	}
	return strings.HasPrefix(attrName, "on") && attrName[2:] == eventName
}
