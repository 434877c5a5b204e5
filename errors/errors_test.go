package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want []string
	}{
		{
			name: "template not found",
			err:  TemplateNotFound("pl/card/card", "card", nil),
			want: []string{"[load]", "template_not_found", "pl/card/card::card"},
		},
		{
			name: "missing attribute",
			err:  MissingRequiredAttribute("pl:card", "title", "card(title)"),
			want: []string{"[resolve]", "missing_attribute", "pl:card", "title", "card(title)"},
		},
		{
			name: "duplicate slot",
			err:  DuplicateSlot("header"),
			want: []string{"[extract]", "duplicate_slot", "header"},
		},
		{
			name: "depth exceeded",
			err:  DepthExceeded("pl:self", 64),
			want: []string{"[walk]", "depth_exceeded", "pl:self", "64"},
		},
		{
			name: "internal with format args",
			err:  Internal(PhaseResolve, "no invocation element in model of %d events", 3),
			want: []string{"[resolve]", "internal_consistency", "3 events"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.want {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, missing %q", msg, want)
				}
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := TemplateNotFound("a", "b", nil)

	if !errors.Is(err, &Error{Phase: PhaseLoad, Kind: KindTemplateNotFound}) {
		t.Error("errors.Is should match on phase+kind")
	}
	if errors.Is(err, &Error{Phase: PhaseResolve, Kind: KindTemplateNotFound}) {
		t.Error("errors.Is should not match a different phase")
	}
	if errors.Is(err, &Error{Phase: PhaseLoad, Kind: KindDuplicateSlot}) {
		t.Error("errors.Is should not match a different kind")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("file does not exist")
	err := TemplateNotFound("pl/card/card", "", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
	if !strings.Contains(err.Error(), "file does not exist") {
		t.Errorf("Error() = %q, cause missing", err.Error())
	}
}

func TestErrorAs(t *testing.T) {
	var wrapped error = DuplicateSlot("body")

	var e *Error
	if !errors.As(wrapped, &e) {
		t.Fatal("errors.As failed")
	}
	if e.Name != "body" {
		t.Errorf("Name = %q, want %q", e.Name, "body")
	}
}
