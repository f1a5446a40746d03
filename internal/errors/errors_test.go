package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewRegisteredCode(t *testing.T) {
	tests := []struct {
		code     string
		category Category
	}{
		{"E1001", CategoryParse},
		{"E1002", CategoryParse},
		{"E2001", CategoryState},
		{"E3001", CategoryProtocol},
		{"E4001", CategoryConfig},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := New(tt.code)
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
			if err.Category != tt.category {
				t.Errorf("Category = %q, want %q", err.Category, tt.category)
			}
			if err.Message == "" {
				t.Error("Message is empty")
			}
			if !strings.HasPrefix(err.Error(), tt.code+": ") {
				t.Errorf("Error() = %q, want %q prefix", err.Error(), tt.code+": ")
			}
		})
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E9999")
	if err.Code != "E9999" {
		t.Errorf("Code = %q, want E9999", err.Code)
	}
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q, want Unknown error", err.Message)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := New("E1001").Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is failed to find wrapped cause")
	}

	var le *LumaError
	if !stderrors.As(fmt.Errorf("outer: %w", err), &le) {
		t.Fatal("errors.As failed to find LumaError through wrapping")
	}
	if le.Code != "E1001" {
		t.Errorf("Code = %q, want E1001", le.Code)
	}
}

func TestIsCode(t *testing.T) {
	err := New("E2001")
	wrapped := fmt.Errorf("style merge: %w", err)

	if !IsCode(err, "E2001") {
		t.Error("IsCode(err, E2001) = false, want true")
	}
	if !IsCode(wrapped, "E2001") {
		t.Error("IsCode(wrapped, E2001) = false, want true")
	}
	if IsCode(err, "E1001") {
		t.Error("IsCode(err, E1001) = true, want false")
	}
	if IsCode(stderrors.New("plain"), "E2001") {
		t.Error("IsCode(plain, E2001) = true, want false")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E1001") != nil {
		t.Error("FromError(nil) should return nil")
	}

	cause := stderrors.New("boom")
	err := FromError(cause, "E3002")
	if err.Code != "E3002" {
		t.Errorf("Code = %q, want E3002", err.Code)
	}
	if !stderrors.Is(err, cause) {
		t.Error("cause not wrapped")
	}

	// Already a LumaError: passed through, not re-wrapped.
	again := FromError(err, "E1001")
	if again.Code != "E3002" {
		t.Errorf("Code = %q, want E3002 (original preserved)", again.Code)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E2001").WithSuggestion("remove only keys that are present")
	out := err.Format()

	for _, want := range []string{"ERROR E2001", "Style key not found", "Hint:", "Learn more:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E1002")
	got := err.FormatCompact()
	want := "E1002: Unterminated quote in prop string"
	if got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestWrapTextShortInput(t *testing.T) {
	lines := wrapText("short", 70)
	if len(lines) != 1 || lines[0] != "short" {
		t.Errorf("wrapText = %v, want [short]", lines)
	}
	if wrapText("", 70) != nil {
		t.Error("wrapText(\"\") should be nil")
	}
}
