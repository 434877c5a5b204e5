package component

import (
	"testing"

	dialect "github.com/HellButcher/thymeleaf-component-dialect"
)

func TestKindTemplateRef(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want dialect.TemplateRef
	}{
		{
			name: "conventional path from prefix and element",
			kind: Kind{Prefix: "pl", Element: "card"},
			want: dialect.TemplateRef{Path: "pl/card/card", Fragment: "card"},
		},
		{
			name: "explicit path keeps element as selector",
			kind: Kind{Prefix: "pl", Element: "card", TemplatePath: "shared/cards"},
			want: dialect.TemplateRef{Path: "shared/cards", Fragment: "card"},
		},
		{
			name: "path with selector",
			kind: Kind{Prefix: "pl", Element: "card", TemplatePath: "shared/cards :: fancy"},
			want: dialect.TemplateRef{Path: "shared/cards", Fragment: "fancy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.TemplateRef(); got != tt.want {
				t.Errorf("TemplateRef() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Kind{Prefix: "pl", Element: "card"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := r.Register(Kind{Prefix: "pl", Element: "card", TemplatePath: "other"}); err == nil {
		t.Error("duplicate registration should fail")
	}
}

func TestRegistryRejectsInvalidKinds(t *testing.T) {
	r := NewRegistry()
	for _, k := range []Kind{
		{Prefix: "", Element: "card"},
		{Prefix: "pl", Element: ""},
		{Prefix: "pl:x", Element: "card"},
		{Prefix: "pl", Element: "slot"},
		{Prefix: "pl", Element: "block"},
	} {
		if err := r.Register(k); err == nil {
			t.Errorf("Register(%+v) should fail", k)
		}
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(Kind{Prefix: "pl", Element: "card"})

	if _, ok := r.Lookup("pl:card"); !ok {
		t.Error("Lookup(pl:card) = false, want true")
	}
	// The dash form a browser would treat as a web component is not a match.
	if _, ok := r.Lookup("pl-card"); ok {
		t.Error("Lookup(pl-card) = true, want false")
	}
}

func TestRegistrySlotNames(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(Kind{Prefix: "pl", Element: "card"})

	if n, ok := r.SlotNames("pl:slot"); !ok || n.Prefix != "pl" {
		t.Errorf("SlotNames(pl:slot) = (%v, %v), want pl dialect", n, ok)
	}
	if _, ok := r.SlotNames("ui:slot"); ok {
		t.Error("SlotNames for unregistered prefix should miss")
	}
	if _, ok := r.SlotNames("pl:card"); ok {
		t.Error("SlotNames for a component element should miss")
	}
	if _, ok := r.SlotNames("slot"); ok {
		t.Error("SlotNames for an unprefixed element should miss")
	}
}

func TestRegistryKindsSorted(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(Kind{Prefix: "pl", Element: "nav"})
	r.MustRegister(Kind{Prefix: "pl", Element: "card"})

	kinds := r.Kinds()
	if len(kinds) != 2 || kinds[0].Element != "card" || kinds[1].Element != "nav" {
		t.Errorf("Kinds() = %v, want card then nav", kinds)
	}
}
