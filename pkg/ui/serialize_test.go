package ui

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSerializeWireFormat(t *testing.T) {
	c := NewClient(nil, nil)

	el := c.NewElement("q-btn")
	el.Classes("primary big", "", "")
	if _, err := el.Style("color: red", "", ""); err != nil {
		t.Fatalf("Style error: %v", err)
	}
	if _, err := el.Props(`dense label="hi there"`, ""); err != nil {
		t.Fatalf("Props error: %v", err)
	}
	el.On("click", func(Event) {}, "clientX", "clientY")
	el.SetText("go")
	var child *Element
	el.With(func() {
		child = c.NewElement("q-icon")
	})

	raw, err := json.Marshal(el.Serialize())
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	want := map[string]any{
		"id":     float64(el.ID()),
		"tag":    "q-btn",
		"class":  []any{"primary", "big"},
		"style":  map[string]any{"color": "red"},
		"props":  map[string]any{"dense": true, "label": "hi there"},
		"events": map[string]any{"click": []any{"clientX", "clientY"}},
		"text":   "go",
		"slots":  map[string]any{"default": []any{float64(child.ID())}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wire payload mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeEmptyElement(t *testing.T) {
	c := NewClient(nil, nil)
	el := c.NewElement("div")

	raw, err := json.Marshal(el.Serialize())
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	// Collections serialize as empty containers, never null.
	if _, ok := got["class"].([]any); !ok {
		t.Errorf("class = %v, want JSON array", got["class"])
	}
	if _, ok := got["style"].(map[string]any); !ok {
		t.Errorf("style = %v, want JSON object", got["style"])
	}
	if slots, ok := got["slots"].(map[string]any); !ok {
		t.Errorf("slots = %v, want JSON object", got["slots"])
	} else if _, ok := slots["default"].([]any); !ok {
		t.Errorf("slots.default = %v, want JSON array", slots["default"])
	}
}

func TestSerializeMergesListenersByType(t *testing.T) {
	c := NewClient(nil, nil)
	el := c.NewElement("q-input")

	el.On("change", func(Event) {}, "value")
	el.On("keydown", func(Event) {}, "key")
	el.On("change", func(Event) {}, "valid", "dirty")

	data := el.Serialize()
	want := map[string][]string{
		"change":  {"value", "valid", "dirty"},
		"keydown": {"key"},
	}
	if diff := cmp.Diff(want, data.Events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdatePayloadMarshalsElementsByID(t *testing.T) {
	c := NewClient(nil, nil)
	el := c.NewElement("div")

	payload := UpdatePayload{Elements: map[int]*ElementData{el.ID(): el.Serialize()}}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var got map[string]map[string]map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if _, ok := got["elements"]["0"]; !ok {
		t.Errorf("payload = %s, want elements keyed by id", raw)
	}
}
