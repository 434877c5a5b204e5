package component

import (
	"testing"

	"github.com/HellButcher/thymeleaf-component-dialect/model"
)

func TestResolveAttributesPartitionsNamespace(t *testing.T) {
	tag := model.OpenTag{Name: "pl:card", Attrs: model.Attrs{
		attr("pl:title", "greeting"),
		attr("class", "wide"),
		attr("pl:level", "2"),
		attr("id", "c1"),
	}}
	vars := map[string]any{"greeting": "Hello"}

	props := ResolveAttributes(tag, plNames(), true, varsEvaluator{}, vars)
	pass := ResolveAttributes(tag, plNames(), false, varsEvaluator{}, vars)

	if len(props) != 2 {
		t.Fatalf("props = %v, want 2 bindings", props)
	}
	if v, _ := props.Get("title"); v != "Hello" {
		t.Errorf("title = %v, want evaluated %q", v, "Hello")
	}
	// "2" is not a known variable: literal fallback, never an error.
	if v, _ := props.Get("level"); v != "2" {
		t.Errorf("level = %v, want literal fallback %q", v, "2")
	}

	if len(pass) != 2 {
		t.Fatalf("pass-through = %v, want 2 bindings", pass)
	}
	if pass[0].Name != "class" || pass[1].Name != "id" {
		t.Errorf("pass-through order = %v, want class then id", pass)
	}
	if v, _ := pass.Get("class"); v != "wide" {
		t.Errorf("class = %v, want literal fallback %q", v, "wide")
	}
}

func TestResolveAttributesBooleanAttribute(t *testing.T) {
	tag := model.StandaloneTag{Name: "pl:toggle", Attrs: model.Attrs{
		bareAttr("pl:active"),
		bareAttr("disabled"),
	}}

	props := ResolveAttributes(tag, plNames(), true, varsEvaluator{}, nil)
	if v, ok := props.Get("active"); !ok || v != nil {
		t.Errorf("active = (%v, %v), want bound nil", v, ok)
	}

	pass := ResolveAttributes(tag, plNames(), false, varsEvaluator{}, nil)
	attrs := pass.Attrs()
	if len(attrs) != 1 || attrs[0].Name != "disabled" || attrs[0].HasValue {
		t.Errorf("pass-through attrs = %v, want bare disabled", attrs)
	}
}

func TestResolveAttributesSkipsMarkers(t *testing.T) {
	tag := model.OpenTag{Name: "div", Attrs: model.Attrs{
		attr("pl:fragment", "card(title)"),
		attr("pl:title", "fallback title"),
		bareAttr("pl:pass-attrs"),
	}}

	props := ResolveAttributes(tag, plNames(), true, varsEvaluator{}, nil)
	if props.Has("fragment") || props.Has("pass-attrs") {
		t.Errorf("dialect markers leaked into props: %v", props)
	}
	if !props.Has("title") {
		t.Errorf("props = %v, want title bound", props)
	}

	pass := ResolveAttributes(tag, plNames(), false, varsEvaluator{}, nil)
	if len(pass) != 0 {
		t.Errorf("pass-through = %v, want none", pass)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"s", "s"},
		{true, "true"},
		{42, "42"},
		{int64(7), "7"},
		{2.5, "2.5"},
		{3.0, "3"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
