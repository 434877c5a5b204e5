package component

import (
	"errors"
	"reflect"
	"testing"

	dialect "github.com/HellButcher/thymeleaf-component-dialect"
	dialecterr "github.com/HellButcher/thymeleaf-component-dialect/errors"
	"github.com/HellButcher/thymeleaf-component-dialect/model"
)

func TestParseSignature(t *testing.T) {
	tests := []struct {
		raw     string
		want    Signature
		wantErr bool
	}{
		{"", Signature{Raw: ""}, false},
		{"card", Signature{Name: "card", Raw: "card"}, false},
		{"card()", Signature{Name: "card", Raw: "card()"}, false},
		{"card(title)", Signature{Name: "card", Params: []string{"title"}, Raw: "card(title)"}, false},
		{"card( title , body )", Signature{Name: "card", Params: []string{"title", "body"}, Raw: "card( title , body )"}, false},
		{"card(title", Signature{}, true},
		{"card(title,,body)", Signature{}, true},
		{"card(title, title)", Signature{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseSignature(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSignature(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNewFragment(t *testing.T) {
	ref := dialect.TemplateRef{Path: "pl/card/card", Fragment: "card"}
	events := model.Model{
		model.OpenTag{Name: "div", Attrs: model.Attrs{attr("pl:fragment", "card(title)")}},
		model.Text{Data: "body"},
		model.CloseTag{Name: "div"},
	}

	f, err := NewFragment(ref, events, plNames())
	if err != nil {
		t.Fatalf("NewFragment: %v", err)
	}
	if f.Root != 0 {
		t.Errorf("Root = %d, want 0", f.Root)
	}
	if f.Signature.Name != "card" || !f.Signature.HasParams() {
		t.Errorf("Signature = %+v", f.Signature)
	}

	inner, err := f.Inner()
	if err != nil {
		t.Fatalf("Inner: %v", err)
	}
	if len(inner) != 1 {
		t.Fatalf("inner = %v, want 1 event", inner)
	}
}

func TestNewFragmentMissingMarker(t *testing.T) {
	ref := dialect.TemplateRef{Path: "pl/card/card", Fragment: "card"}
	events := model.Model{
		model.OpenTag{Name: "div"},
		model.CloseTag{Name: "div"},
	}

	_, err := NewFragment(ref, events, plNames())
	if !errors.Is(err, &dialecterr.Error{Phase: dialecterr.PhaseLoad, Kind: dialecterr.KindTemplateNotFound}) {
		t.Fatalf("error = %v, want template_not_found", err)
	}
}

func TestNewFragmentBadSignatureNamesTemplate(t *testing.T) {
	ref := dialect.TemplateRef{Path: "pl/card/card", Fragment: "card"}
	events := model.Model{
		model.OpenTag{Name: "div", Attrs: model.Attrs{attr("pl:fragment", "card(")}},
		model.CloseTag{Name: "div"},
	}

	_, err := NewFragment(ref, events, plNames())
	var de *dialecterr.Error
	if !errors.As(err, &de) || de.Kind != dialecterr.KindInvalidSignature {
		t.Fatalf("error = %v, want invalid_signature", err)
	}
	if de.Template != "pl/card/card::card" {
		t.Errorf("Template = %q, want the full reference", de.Template)
	}
}

func TestFragmentInnerIsIsolated(t *testing.T) {
	ref := dialect.TemplateRef{Path: "p", Fragment: "f"}
	events := model.Model{
		model.OpenTag{Name: "div", Attrs: model.Attrs{attr("pl:fragment", "f")}},
		model.OpenTag{Name: "span", Attrs: model.Attrs{attr("class", "a")}},
		model.CloseTag{Name: "span"},
		model.CloseTag{Name: "div"},
	}
	f := mustFragment(ref, events, plNames())

	inner, _ := f.Inner()
	inner[0] = model.Text{Data: "overwritten"}

	again, _ := f.Inner()
	if _, ok := again[0].(model.OpenTag); !ok {
		t.Error("mutating one Inner() result leaked into the cached fragment")
	}
}
