package uitest

import (
	"log/slog"
	"testing"

	"github.com/lumaui/luma/pkg/ui"
)

// Harness is a test fixture around a client with a recording dispatcher.
// All update batches emitted by the tree are captured for assertions.
type Harness struct {
	Client *ui.Client

	updates []ui.UpdatePayload
}

// NewHarness creates a harness with a fresh client.
func NewHarness() *Harness {
	h := &Harness{}
	h.Client = ui.NewClient(recorder{h}, slog.Default())
	return h
}

// recorder implements ui.Dispatcher by appending captured payloads.
type recorder struct {
	h *Harness
}

func (r recorder) Emit(event string, payload any, room string) {
	if event != ui.EventUpdate {
		return
	}
	if up, ok := payload.(ui.UpdatePayload); ok {
		r.h.updates = append(r.h.updates, up)
	}
}

// Updates returns all captured update batches in emission order.
func (h *Harness) Updates() []ui.UpdatePayload {
	return h.updates
}

// UpdateCount returns the number of captured update batches.
func (h *Harness) UpdateCount() int {
	return len(h.updates)
}

// LastUpdate returns the most recent update batch.
func (h *Harness) LastUpdate() (ui.UpdatePayload, bool) {
	if len(h.updates) == 0 {
		return ui.UpdatePayload{}, false
	}
	return h.updates[len(h.updates)-1], true
}

// Reset discards captured updates. Use it after setup mutations so
// assertions only see the interaction under test.
func (h *Harness) Reset() {
	h.updates = nil
}

// Fire routes an event to the element and fails the test on a routing
// error.
func (h *Harness) Fire(t *testing.T, el *ui.Element, eventType string, args map[string]any) {
	t.Helper()
	err := h.Client.HandleEvent(ui.Event{
		ElementID: el.ID(),
		Type:      eventType,
		Args:      args,
	})
	if err != nil {
		t.Fatalf("event %q on element %d: %v", eventType, el.ID(), err)
	}
}

// ExpectUpdated asserts that the last update batch contains the element.
func ExpectUpdated(t *testing.T, h *Harness, el *ui.Element) {
	t.Helper()
	last, ok := h.LastUpdate()
	if !ok {
		t.Fatal("no update batches captured")
	}
	if _, ok := last.Elements[el.ID()]; !ok {
		t.Errorf("element %d missing from last update batch", el.ID())
	}
}

// ExpectNoUpdate asserts that no update batches were captured.
func ExpectNoUpdate(t *testing.T, h *Harness) {
	t.Helper()
	if n := h.UpdateCount(); n != 0 {
		t.Errorf("captured %d update batches, want none", n)
	}
}

// ExpectText asserts the element's text in the last update batch.
func ExpectText(t *testing.T, h *Harness, el *ui.Element, want string) {
	t.Helper()
	data := lastData(t, h, el)
	if data.Text != want {
		t.Errorf("text = %q, want %q", data.Text, want)
	}
}

// ExpectClass asserts that the element carries the class in the last
// update batch.
func ExpectClass(t *testing.T, h *Harness, el *ui.Element, class string) {
	t.Helper()
	data := lastData(t, h, el)
	for _, c := range data.Class {
		if c == class {
			return
		}
	}
	t.Errorf("class %q missing, classes = %v", class, data.Class)
}

func lastData(t *testing.T, h *Harness, el *ui.Element) *ui.ElementData {
	t.Helper()
	last, ok := h.LastUpdate()
	if !ok {
		t.Fatal("no update batches captured")
	}
	data, ok := last.Elements[el.ID()]
	if !ok {
		t.Fatalf("element %d missing from last update batch", el.ID())
	}
	return data
}
