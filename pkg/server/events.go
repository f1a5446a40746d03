package server

import (
	"context"
	"encoding/json"
	"runtime/debug"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lumaui/luma/internal/errors"
	"github.com/lumaui/luma/pkg/ui"
)

// tracerName identifies the server's spans.
const tracerName = "luma"

// eventFrame is the inbound wire shape. Pointer fields distinguish a
// missing field from a zero value.
type eventFrame struct {
	ID   *int           `json:"id"`
	Type *string        `json:"type"`
	Args map[string]any `json:"args"`
}

// decodeEvent parses an inbound event frame. Malformed frames are E3002
// protocol errors.
func decodeEvent(data []byte) (ui.Event, error) {
	var frame eventFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		return ui.Event{}, errors.New("E3002").Wrap(err)
	}
	if frame.ID == nil || frame.Type == nil || *frame.Type == "" {
		return ui.Event{}, errors.New("E3002").
			WithDetail("event frames require integer \"id\" and string \"type\" fields")
	}
	return ui.Event{ElementID: *frame.ID, Type: *frame.Type, Args: frame.Args}, nil
}

// ReadLoop reads event frames until the connection closes. It owns all
// tree mutation for this session, so handlers never race each other.
// Blocks until the connection is closed or an error occurs.
func (s *Session) ReadLoop() {
	defer s.Close()

	s.conn.SetReadLimit(s.config.MaxMessageSize)
	s.conn.SetPongHandler(func(string) error {
		s.touch()
		return nil
	})

	tracer := otel.Tracer(tracerName)

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		s.touch()
		s.handleFrame(tracer, msg)
	}
}

// handleFrame decodes and dispatches one inbound frame. Handler panics
// are contained so a broken callback cannot take the session down.
func (s *Session) handleFrame(tracer trace.Tracer, msg []byte) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("handler panic",
				"panic", r,
				"stack", string(debug.Stack()))
			s.recordEvent("panic", 0)
		}
	}()

	event, err := decodeEvent(msg)
	if err != nil {
		s.logger.Warn("event decode failed", "error", err)
		s.recordEvent("malformed", 0)
		return
	}

	_, span := tracer.Start(context.Background(), "luma.event",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("luma.session_id", s.ID),
			attribute.String("luma.event_type", event.Type),
			attribute.Int("luma.element_id", event.ElementID),
		))
	defer span.End()

	start := time.Now()
	err = s.client.HandleEvent(event)
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn("event rejected",
			"element_id", event.ElementID,
			"type", event.Type,
			"error", err)
		s.recordEvent("unknown_element", elapsed)
		return
	}

	span.SetStatus(codes.Ok, "")
	s.recordEvent("success", elapsed)
}

func (s *Session) recordEvent(status string, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.eventsTotal.WithLabelValues(status).Inc()
	if elapsed > 0 {
		s.metrics.eventDuration.Observe(elapsed.Seconds())
	}
}
