package ui

// EventUpdate is the outbound message name carrying serialized elements.
const EventUpdate = "update"

// UpdatePayload is the body of an "update" message: every element of the
// mutated subtree, keyed by id.
type UpdatePayload struct {
	Elements map[int]*ElementData `json:"elements"`
}

// SubtreeIDs returns the ids of the element's owned subtree — the element
// itself and everything reachable through its slots, never siblings or
// ancestors. Children appear before the elements that own them.
func (e *Element) SubtreeIDs() []int {
	var ids []int
	var collect func(el *Element)
	collect = func(el *Element) {
		for _, name := range el.slotOrder {
			for _, child := range el.slots[name].children {
				collect(child)
			}
		}
		ids = append(ids, el.id)
	}
	collect(e)
	return ids
}

// Update serializes the element's owned subtree and dispatches the whole
// batch as one "update" message addressed to the client's session. The
// dispatch is fire-and-forget; three mutations produce three independent
// sends with no coalescing. Clients without a dispatcher (offline
// construction, tests) skip dispatch entirely.
func (e *Element) Update() {
	c := e.client
	if c.dispatcher == nil {
		return
	}

	ids := e.SubtreeIDs()
	elements := make(map[int]*ElementData, len(ids))
	for _, id := range ids {
		elements[id] = c.elements[id].Serialize()
	}
	c.dispatcher.Emit(EventUpdate, UpdatePayload{Elements: elements}, c.id)
}
