package hcleval

import (
	"reflect"
	"testing"
)

func TestEvaluate(t *testing.T) {
	vars := map[string]any{
		"title":  "Hello",
		"count":  3,
		"ratio":  0.5,
		"active": true,
		"user":   map[string]any{"name": "ada"},
		"tags":   []string{"a", "b"},
	}

	tests := []struct {
		expr string
		want any
	}{
		{`title`, "Hello"},
		{`"quoted"`, "quoted"},
		{`count`, int64(3)},
		{`count + 1`, int64(4)},
		{`ratio * 2`, int64(1)},
		{`ratio`, 0.5},
		{`active`, true},
		{`!active`, false},
		{`active ? "on" : "off"`, "on"},
		{`user.name`, "ada"},
		{`tags[1]`, "b"},
		{`"Hi ${user.name}"`, "Hi ada"},
		{`[1, 2]`, []any{int64(1), int64(2)}},
		{`{a = 1}`, map[string]any{"a": int64(1)}},
	}

	e := New()
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := e.Evaluate(tt.expr, vars)
			if err != nil {
				t.Fatalf("Evaluate(%q): %v", tt.expr, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate(%q) = %#v (%T), want %#v (%T)", tt.expr, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestEvaluateNilVariable(t *testing.T) {
	got, err := New().Evaluate(`missing == null ? "yes" : "no"`, map[string]any{"missing": nil})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got != "yes" {
		t.Errorf("got %v, want yes", got)
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"unknown variable", `nope`},
		{"syntax error", `card-large-#`},
		{"plain prose", `two words`},
	}

	e := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.Evaluate(tt.expr, nil); err == nil {
				t.Errorf("Evaluate(%q) should fail", tt.expr)
			}
		})
	}
}

func TestEvaluateSkipsUnconvertibleVariables(t *testing.T) {
	// A scope entry with no cty representation must not poison the rest of
	// the scope.
	vars := map[string]any{
		"ok":  "fine",
		"bad": make(chan int),
	}
	got, err := New().Evaluate(`ok`, vars)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got != "fine" {
		t.Errorf("got %v, want fine", got)
	}
}
