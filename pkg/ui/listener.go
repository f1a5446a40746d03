package ui

// Event is an inbound message from the browser client, addressed to one
// element by id.
type Event struct {
	ElementID int            `json:"id"`
	Type      string         `json:"type"`
	Args      map[string]any `json:"args,omitempty"`
}

// Handler processes an inbound event on the session's event loop.
type Handler func(Event)

// EventListener binds a handler to one event type on one element. The
// argument names tell the browser which event fields to send back.
type EventListener struct {
	ElementID int
	Type      string
	Args      []string
	Handler   Handler
}

// On registers a listener for the given event type. A nil handler is
// silently skipped, so conditional wiring does not need a guard:
//
//	btn.On("click", onClick, "clientX", "clientY")
func (e *Element) On(eventType string, handler Handler, args ...string) *Element {
	if handler == nil {
		return e
	}
	e.listeners = append(e.listeners, &EventListener{
		ElementID: e.id,
		Type:      eventType,
		Args:      args,
		Handler:   handler,
	})
	return e
}

// HandleEvent invokes every listener whose type matches the event, in
// registration order.
func (e *Element) HandleEvent(ev Event) {
	for _, l := range e.listeners {
		if l.Type == ev.Type {
			l.Handler(ev)
		}
	}
}
