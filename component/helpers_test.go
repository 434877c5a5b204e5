package component

import (
	"context"
	"fmt"

	dialect "github.com/HellButcher/thymeleaf-component-dialect"
	"github.com/HellButcher/thymeleaf-component-dialect/errors"
	"github.com/HellButcher/thymeleaf-component-dialect/model"
)

// varsEvaluator resolves a raw value as a plain variable name; anything not
// found in vars is an evaluation failure, which the resolver turns into the
// literal fallback.
type varsEvaluator struct{}

func (varsEvaluator) Evaluate(raw string, vars map[string]any) (any, error) {
	if v, ok := vars[raw]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("unknown variable %q", raw)
}

// mapLoader serves fragments from a fixed map keyed by path.
type mapLoader struct {
	fragments map[string]*Fragment
}

func (l *mapLoader) Load(_ context.Context, path, fragment string) (*Fragment, error) {
	if f, ok := l.fragments[path]; ok {
		return f, nil
	}
	return nil, errors.TemplateNotFound(path, fragment, nil)
}

func attr(name, value string) model.Attr {
	return model.Attr{Name: name, Value: value, HasValue: true}
}

func bareAttr(name string) model.Attr {
	return model.Attr{Name: name}
}

// mustFragment builds a Fragment from events, failing the test setup on
// malformed fixtures.
func mustFragment(ref dialect.TemplateRef, events model.Model, names Names) *Fragment {
	f, err := NewFragment(ref, events, names)
	if err != nil {
		panic(err)
	}
	return f
}

func plNames() Names { return Names{Prefix: "pl"} }
