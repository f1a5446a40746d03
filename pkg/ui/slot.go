package ui

// DefaultSlotName is the slot every element is created with. It exists
// before any other slot and holds children attached via scoped nesting.
const DefaultSlotName = "default"

// Slot is a named, ordered child-container owned by exactly one parent
// element. Children are referenced here but owned by whichever slot first
// appended them; the tree discipline (one parent per element) is upheld by
// construction, not runtime checks.
type Slot struct {
	parent   *Element
	name     string
	children []*Element
}

// Name returns the slot's name, unique among its parent's slots.
func (s *Slot) Name() string {
	return s.name
}

// Parent returns the element owning this slot.
func (s *Slot) Parent() *Element {
	return s.parent
}

// Children returns the slot's children in insertion order.
func (s *Slot) Children() []*Element {
	out := make([]*Element, len(s.children))
	copy(out, s.children)
	return out
}

// NewElement creates a child element directly in this slot, bypassing the
// client's active-slot stack. This is the explicit form of tree building;
// Enter/With provide the scoped sugar on top.
func (s *Slot) NewElement(tag string) *Element {
	return s.parent.client.newElement(tag, s)
}

// Enter pushes this slot onto the client's active-slot stack and returns
// the function that pops it. Pair the two with defer so the stack is
// restored on every exit path:
//
//	defer row.DefaultSlot().Enter()()
func (s *Slot) Enter() func() {
	c := s.parent.client
	c.pushSlot(s)
	return func() { c.popSlot() }
}

// With runs fn while this slot is active. The slot is released even if fn
// panics, so children constructed before the panic are attached correctly
// and later construction sees a consistent stack.
func (s *Slot) With(fn func()) {
	defer s.Enter()()
	fn()
}
