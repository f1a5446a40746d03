package transport

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// DefaultOutboxSize is the queue capacity used when none is configured.
const DefaultOutboxSize = 256

// Outbox is a bounded fire-and-forget queue in front of a Sink. Emit
// never blocks: messages beyond the queue capacity are dropped and
// counted. A single goroutine drains the queue in submission order, so
// updates reach the sink in the order they were scheduled.
type Outbox struct {
	sink   Sink
	ch     chan Message
	done   chan struct{}
	closed atomic.Bool
	once   sync.Once
	wg     sync.WaitGroup

	logger  *slog.Logger
	dropped atomic.Uint64
	sent    atomic.Uint64

	// onDrop, when set, observes every dropped message (metrics hook).
	onDrop func(msg Message)
}

// NewOutbox creates an outbox draining into sink and starts its delivery
// goroutine. size <= 0 selects DefaultOutboxSize.
func NewOutbox(sink Sink, size int, logger *slog.Logger) *Outbox {
	if size <= 0 {
		size = DefaultOutboxSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	o := &Outbox{
		sink:   sink,
		ch:     make(chan Message, size),
		done:   make(chan struct{}),
		logger: logger.With("component", "outbox"),
	}
	o.wg.Add(1)
	go o.run()
	return o
}

// OnDrop registers a hook invoked for every dropped message. Must be set
// before the outbox sees traffic.
func (o *Outbox) OnDrop(fn func(msg Message)) {
	o.onDrop = fn
}

// Emit queues a message for delivery. It returns immediately; a full
// queue or a closed outbox drops the message.
func (o *Outbox) Emit(event string, payload any, room string) {
	msg := Message{Event: event, Payload: payload, Room: room}

	if o.closed.Load() {
		o.drop(msg, "closed")
		return
	}

	select {
	case o.ch <- msg:
	default:
		o.drop(msg, "queue full")
	}
}

// Close stops accepting messages, delivers what is already queued, and
// waits for the delivery goroutine to exit. Safe to call more than once
// and safe against concurrent Emit calls, which drop from then on.
func (o *Outbox) Close() {
	o.once.Do(func() {
		o.closed.Store(true)
		close(o.done)
	})
	o.wg.Wait()
}

// Dropped returns the number of messages dropped so far.
func (o *Outbox) Dropped() uint64 {
	return o.dropped.Load()
}

// Sent returns the number of messages handed to the sink so far.
func (o *Outbox) Sent() uint64 {
	return o.sent.Load()
}

func (o *Outbox) drop(msg Message, reason string) {
	o.dropped.Add(1)
	o.logger.Warn("message dropped", "event", msg.Event, "room", msg.Room, "reason", reason)
	if o.onDrop != nil {
		o.onDrop(msg)
	}
}

func (o *Outbox) run() {
	defer o.wg.Done()
	for {
		select {
		case msg := <-o.ch:
			o.deliver(msg)
		case <-o.done:
			// Drain whatever was queued before Close.
			for {
				select {
				case msg := <-o.ch:
					o.deliver(msg)
				default:
					return
				}
			}
		}
	}
}

func (o *Outbox) deliver(msg Message) {
	if err := o.sink.Send(msg); err != nil {
		// Transport failures never surface to the mutating caller.
		o.logger.Error("delivery failed", "event", msg.Event, "room", msg.Room, "error", err)
		return
	}
	o.sent.Add(1)
}
