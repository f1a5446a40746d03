package server

import (
	"testing"

	"github.com/lumaui/luma/internal/errors"
)

func TestDecodeEvent(t *testing.T) {
	ev, err := decodeEvent([]byte(`{"id": 3, "type": "click", "args": {"x": 10}}`))
	if err != nil {
		t.Fatalf("decodeEvent error: %v", err)
	}
	if ev.ElementID != 3 || ev.Type != "click" {
		t.Errorf("event = %+v, want id 3 type click", ev)
	}
	if ev.Args["x"] != 10.0 {
		t.Errorf("args = %v, want x=10", ev.Args)
	}
}

func TestDecodeEventZeroIDIsValid(t *testing.T) {
	ev, err := decodeEvent([]byte(`{"id": 0, "type": "click"}`))
	if err != nil {
		t.Fatalf("decodeEvent error: %v", err)
	}
	if ev.ElementID != 0 {
		t.Errorf("ElementID = %d, want 0", ev.ElementID)
	}
}

func TestDecodeEventMalformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", `{{{`},
		{"missing id", `{"type": "click"}`},
		{"missing type", `{"id": 1}`},
		{"empty type", `{"id": 1, "type": ""}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeEvent([]byte(tc.data))
			if !errors.IsCode(err, "E3002") {
				t.Errorf("error = %v, want E3002", err)
			}
		})
	}
}
