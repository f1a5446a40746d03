package ui

// ElementData is the wire representation of a single element. The field
// set and JSON names are the contract with the browser client:
//
//	{id, tag, class: [..], style: {..}, props: {..},
//	 events: {type: [args]}, text, slots: {name: [child ids]}}
//
// Prop values are strings or the boolean true for flags.
type ElementData struct {
	ID     int                 `json:"id"`
	Tag    string              `json:"tag"`
	Class  []string            `json:"class"`
	Style  map[string]string   `json:"style"`
	Props  map[string]any      `json:"props"`
	Events map[string][]string `json:"events"`
	Text   string              `json:"text"`
	Slots  map[string][]int    `json:"slots"`
}

// Serialize renders the element into its wire representation. Listeners
// sharing an event type merge into one entry whose argument list is the
// concatenation of the listeners' argument lists, in registration order.
func (e *Element) Serialize() *ElementData {
	class := make([]string, len(e.classes))
	copy(class, e.classes)

	style := make(map[string]string, len(e.style))
	for k, v := range e.style {
		style[k] = v
	}

	props := make(map[string]any, len(e.props))
	for k, v := range e.props {
		props[k] = v
	}

	events := make(map[string][]string)
	for _, l := range e.listeners {
		events[l.Type] = append(events[l.Type], l.Args...)
	}

	slots := make(map[string][]int, len(e.slots))
	for name, slot := range e.slots {
		ids := make([]int, len(slot.children))
		for i, child := range slot.children {
			ids[i] = child.id
		}
		slots[name] = ids
	}

	return &ElementData{
		ID:     e.id,
		Tag:    e.tag,
		Class:  class,
		Style:  style,
		Props:  props,
		Events: events,
		Text:   e.text,
		Slots:  slots,
	}
}
