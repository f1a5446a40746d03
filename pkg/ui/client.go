package ui

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/lumaui/luma/internal/errors"
)

// Dispatcher delivers outbound messages for one client session.
// Implementations must not block: submission is fire-and-forget and
// delivery failures are never surfaced to the element tree.
type Dispatcher interface {
	Emit(event string, payload any, room string)
}

// Client owns the element tree of one connected session: the element-id
// counter, the id → element registry, and the active-slot stack used for
// nested construction.
//
// A Client is bound to one logical sequence of operations; it performs no
// internal locking. Run construction and mutation for a given client on a
// single goroutine (the session's event loop).
type Client struct {
	id            string
	nextElementID int
	elements      map[int]*Element
	slotStack     []*Slot
	dispatcher    Dispatcher
	logger        *slog.Logger
}

// NewClient creates a client with a fresh session id. A nil dispatcher is
// valid and turns all update propagation into a no-op, which is the mode
// used for offline construction and tests.
func NewClient(dispatcher Dispatcher, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		id:         uuid.NewString(),
		elements:   make(map[int]*Element),
		dispatcher: dispatcher,
	}
	c.logger = logger.With("client_id", c.id)
	return c
}

// ID returns the client's session id. Outbound updates are addressed to
// the room with this name.
func (c *Client) ID() string {
	return c.id
}

// Element returns the element with the given id, if registered.
func (c *Client) Element(id int) (*Element, bool) {
	el, ok := c.elements[id]
	return el, ok
}

// ElementCount returns the number of elements ever created for this
// client. Elements are never removed from the registry.
func (c *Client) ElementCount() int {
	return len(c.elements)
}

// ActiveSlot returns the top of the active-slot stack, or nil when no
// slot scope is entered (elements created then are roots).
func (c *Client) ActiveSlot() *Slot {
	if len(c.slotStack) == 0 {
		return nil
	}
	return c.slotStack[len(c.slotStack)-1]
}

// NewElement creates an element owned by this client and attaches it to
// the currently active slot, if any. The element gets the next id, an
// always-first "default" slot, empty attribute collections, and starts
// visible.
func (c *Client) NewElement(tag string) *Element {
	return c.newElement(tag, c.ActiveSlot())
}

// HandleEvent routes an inbound event to its target element. Events for
// ids not registered with this client are an E3001 protocol error.
func (c *Client) HandleEvent(ev Event) error {
	el, ok := c.elements[ev.ElementID]
	if !ok {
		return errors.New("E3001").
			WithDetail("element %d is not registered with client %s", ev.ElementID, c.id)
	}
	el.HandleEvent(ev)
	return nil
}

// newElement is the core constructor. parent is the slot to append to;
// nil creates a root element.
func (c *Client) newElement(tag string, parent *Slot) *Element {
	e := &Element{
		client:  c,
		id:      c.nextElementID,
		tag:     tag,
		style:   make(map[string]string),
		props:   make(map[string]any),
		slots:   make(map[string]*Slot),
		visible: true,
	}
	c.nextElementID++
	e.defaultSlot = e.addSlot(DefaultSlotName)

	c.elements[e.id] = e
	if parent != nil {
		parent.children = append(parent.children, e)
	}
	return e
}

func (c *Client) pushSlot(s *Slot) {
	c.slotStack = append(c.slotStack, s)
}

func (c *Client) popSlot() {
	c.slotStack = c.slotStack[:len(c.slotStack)-1]
}
