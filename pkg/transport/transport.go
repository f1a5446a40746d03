package transport

// Message is one outbound emit: a named event with a payload, addressed
// to the room of a single client session.
type Message struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
	Room    string `json:"room,omitempty"`
}

// Sink delivers messages to a concrete connection. Send may block and may
// fail; the Outbox isolates the element tree from both.
type Sink interface {
	Send(msg Message) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(msg Message) error

// Send implements Sink.
func (f SinkFunc) Send(msg Message) error {
	return f(msg)
}
