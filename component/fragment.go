package component

import (
	"context"
	"strings"

	dialect "github.com/HellButcher/thymeleaf-component-dialect"
	"github.com/HellButcher/thymeleaf-component-dialect/errors"
	"github.com/HellButcher/thymeleaf-component-dialect/model"
)

// Signature is a fragment's declared interface, parsed from the signature
// marker attribute: "card" declares no parameters, "card(title, body)"
// requires title and body at every call site.
type Signature struct {
	Name   string
	Params []string
	Raw    string
}

// HasParams reports whether the signature declares required parameters.
func (s Signature) HasParams() bool {
	return len(s.Params) > 0
}

// ParseSignature parses a signature marker value. An empty value yields an
// empty signature (no name, no parameters), matching an unannotated marker.
func ParseSignature(raw string) (Signature, error) {
	sig := Signature{Raw: raw}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return sig, nil
	}

	name, rest, hasParams := strings.Cut(trimmed, "(")
	sig.Name = strings.TrimSpace(name)
	if !hasParams {
		return sig, nil
	}

	rest = strings.TrimSpace(rest)
	if !strings.HasSuffix(rest, ")") {
		return Signature{}, errors.InvalidSignature("", "unterminated parameter list in "+raw)
	}
	inner := strings.TrimSuffix(rest, ")")
	if strings.TrimSpace(inner) == "" {
		return sig, nil
	}

	seen := make(map[string]struct{})
	for _, p := range strings.Split(inner, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			return Signature{}, errors.InvalidSignature("", "empty parameter name in "+raw)
		}
		if _, dup := seen[p]; dup {
			return Signature{}, errors.InvalidSignature("", "duplicate parameter "+p+" in "+raw)
		}
		seen[p] = struct{}{}
		sig.Params = append(sig.Params, p)
	}
	return sig, nil
}

// Fragment is a loaded fragment definition: the balanced event range rooted
// at the element carrying the signature marker, plus the parsed signature.
// Fragments are owned and cached by the loader and shared across renders;
// expansion never mutates them.
type Fragment struct {
	Ref       dialect.TemplateRef
	Events    model.Model
	Root      int
	Signature Signature
}

// NewFragment validates a fragment model at load time: the root element must
// exist, carry the dialect's signature marker, and open the one balanced
// subtree that makes up the fragment. The signature is parsed here, once,
// instead of on every expansion.
func NewFragment(ref dialect.TemplateRef, events model.Model, names Names) (*Fragment, error) {
	root := events.FirstOpenTagWith(names.FragmentAttr())
	if root < 0 {
		return nil, errors.TemplateNotFound(ref.Path, ref.Fragment, nil)
	}
	if !events.Balanced() {
		return nil, errors.InvalidModel(errors.PhaseLoad, "fragment model for "+ref.String()+" is not balanced")
	}

	open := events[root].(model.OpenTag)
	sig, err := ParseSignature(open.Attrs.Value(names.FragmentAttr()))
	if err != nil {
		sigErr := err.(*errors.Error)
		sigErr.Template = ref.String()
		return nil, sigErr
	}

	return &Fragment{
		Ref:       ref,
		Events:    events,
		Root:      root,
		Signature: sig,
	}, nil
}

// RootTag returns the fragment's root element.
func (f *Fragment) RootTag() model.OpenTag {
	return f.Events[f.Root].(model.OpenTag)
}

// Inner returns a fresh copy of the fragment root's inner range. Expansion
// mutates the replacement content, so callers always get an isolated clone
// of the cached events.
func (f *Fragment) Inner() (model.Model, error) {
	inner, err := model.InnerRange(f.Events, f.Root)
	if err != nil {
		return nil, err
	}
	return inner.Clone(), nil
}

// Loader resolves (templatePath, fragment selector) pairs to fragment
// definitions. A miss is fatal and must surface both the path and the
// selector. Caching and I/O policy belong to the implementation, which must
// support safe concurrent reads with populate-once-on-miss semantics.
type Loader interface {
	Load(ctx context.Context, path, fragment string) (*Fragment, error)
}
