package ui

import (
	"maps"
	"slices"
	"strings"

	"github.com/lumaui/luma/internal/errors"
	"github.com/lumaui/luma/pkg/attrs"
)

// HiddenClass is the reserved class token toggled by visibility changes.
const HiddenClass = "hidden"

// Element is one widget instance in a client's tree. Its id is unique
// within the owning client and immutable after creation; all other state
// is mutated in place through the merge methods below.
type Element struct {
	client    *Client
	id        int
	tag       string
	classes   []string
	style     map[string]string
	props     map[string]any
	listeners []*EventListener
	text      string

	slots       map[string]*Slot
	slotOrder   []string
	defaultSlot *Slot

	visible bool
}

// ID returns the element's client-scoped id.
func (e *Element) ID() int {
	return e.id
}

// Tag returns the widget type name.
func (e *Element) Tag() string {
	return e.tag
}

// Client returns the owning client.
func (e *Element) Client() *Client {
	return e.client
}

// Text returns the element's text content.
func (e *Element) Text() string {
	return e.text
}

// Visible reports the element's visibility flag.
func (e *Element) Visible() bool {
	return e.visible
}

// ClassList returns the element's class tokens in order.
func (e *Element) ClassList() []string {
	return slices.Clone(e.classes)
}

// StyleMap returns a copy of the element's style declarations.
func (e *Element) StyleMap() map[string]string {
	return maps.Clone(e.style)
}

// PropMap returns a copy of the element's props. Values are strings or
// the boolean true for flags.
func (e *Element) PropMap() map[string]any {
	return maps.Clone(e.props)
}

// DefaultSlot returns the element's always-present "default" slot.
func (e *Element) DefaultSlot() *Slot {
	return e.defaultSlot
}

// Slot returns the named slot, if present.
func (e *Element) Slot(name string) (*Slot, bool) {
	s, ok := e.slots[name]
	return s, ok
}

// AddSlot creates a named slot on this element. Slot names are unique per
// element; re-adding an existing name is an E2002 state error.
func (e *Element) AddSlot(name string) (*Slot, error) {
	if _, ok := e.slots[name]; ok {
		return nil, errors.New("E2002").
			WithDetail("element %d already has a slot named %q", e.id, name)
	}
	return e.addSlot(name), nil
}

func (e *Element) addSlot(name string) *Slot {
	s := &Slot{parent: e, name: name}
	e.slots[name] = s
	e.slotOrder = append(e.slotOrder, name)
	return s
}

// Enter pushes the element's default slot onto the client's active-slot
// stack and returns the function that pops it.
func (e *Element) Enter() func() {
	return e.defaultSlot.Enter()
}

// With runs fn while the element's default slot is active, so elements
// constructed inside fn become its children. The slot is released even if
// fn panics.
func (e *Element) With(fn func()) *Element {
	e.defaultSlot.With(fn)
	return e
}

// Classes merges space-separated class tokens into the element's list.
// The merge starts from the current list, or from an empty list when
// replace is non-empty; tokens in remove are dropped, then add tokens and
// replace tokens are appended, and duplicates collapse onto their first
// occurrence. An update is pushed only when the resulting list differs.
//
// Pass "" for arguments that should not take part in the merge.
func (e *Element) Classes(add, remove, replace string) *Element {
	base := e.classes
	if replace != "" {
		base = nil
	}

	removed := make(map[string]struct{})
	for _, token := range strings.Fields(remove) {
		removed[token] = struct{}{}
	}

	var list []string
	for _, token := range base {
		if _, drop := removed[token]; !drop {
			list = append(list, token)
		}
	}
	list = append(list, strings.Fields(add)...)
	list = append(list, strings.Fields(replace)...)

	seen := make(map[string]struct{}, len(list))
	var next []string
	for _, token := range list {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		next = append(next, token)
	}

	if !slices.Equal(e.classes, next) {
		e.classes = next
		e.Update()
	}
	return e
}

// Style merges CSS declaration strings (see attrs.ParseStyle) into the
// element's style map. The merge starts from the current map, or from an
// empty one when replace is non-empty; remove's keys are deleted first,
// then add and replace are overlaid in that order.
//
// Removing a key that is absent from the base map is an E2001 error —
// unlike prop removal, which ignores absent keys. All three inputs are
// parsed before anything is applied, so a failed call leaves the element
// unchanged. An update is pushed only on net change.
func (e *Element) Style(add, remove, replace string) (*Element, error) {
	addMap, err := attrs.ParseStyle(add)
	if err != nil {
		return e, err
	}
	removeMap, err := attrs.ParseStyle(remove)
	if err != nil {
		return e, err
	}
	replaceMap, err := attrs.ParseStyle(replace)
	if err != nil {
		return e, err
	}

	base := make(map[string]string, len(e.style)+len(addMap)+len(replaceMap))
	if replace == "" {
		maps.Copy(base, e.style)
	}
	for key := range removeMap {
		if _, ok := base[key]; !ok {
			return e, errors.New("E2001").
				WithDetail("cannot remove style %q: not set on element %d", key, e.id)
		}
		delete(base, key)
	}
	maps.Copy(base, addMap)
	maps.Copy(base, replaceMap)

	if !maps.Equal(e.style, base) {
		e.style = base
		e.Update()
	}
	return e, nil
}

// Props merges prop strings (see attrs.ParseProps) into the element's
// prop map. Keys listed in remove are deleted when present and silently
// ignored when absent; add sets every key whose value differs from the
// current one. An update is pushed only when at least one prop changed.
func (e *Element) Props(add, remove string) (*Element, error) {
	addMap, err := attrs.ParseProps(add)
	if err != nil {
		return e, err
	}
	removeMap, err := attrs.ParseProps(remove)
	if err != nil {
		return e, err
	}

	changed := false
	for key := range removeMap {
		if _, ok := e.props[key]; ok {
			delete(e.props, key)
			changed = true
		}
	}
	for key, value := range addMap {
		if current, ok := e.props[key]; !ok || current != value {
			e.props[key] = value
			changed = true
		}
	}

	if changed {
		e.Update()
	}
	return e, nil
}

// SetText sets the element's text content, pushing an update on change.
func (e *Element) SetText(text string) *Element {
	if e.text != text {
		e.text = text
		e.Update()
	}
	return e
}

// OnVisibilityChange toggles the reserved "hidden" class: it is added
// when the element becomes invisible and removed when it becomes visible
// again. Repeated identical calls are no-ops, so a visibility binding may
// fire as often as it likes without producing spurious updates.
func (e *Element) OnVisibilityChange(visible bool) {
	e.visible = visible
	i := slices.Index(e.classes, HiddenClass)
	if visible && i >= 0 {
		e.classes = slices.Delete(e.classes, i, i+1)
		e.Update()
	}
	if !visible && i < 0 {
		e.classes = append(e.classes, HiddenClass)
		e.Update()
	}
}
