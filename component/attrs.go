package component

import (
	"fmt"
	"strconv"
	"strings"

	dialect "github.com/HellButcher/thymeleaf-component-dialect"
	"github.com/HellButcher/thymeleaf-component-dialect/model"
)

// Binding is one resolved attribute: the binding name and the evaluated
// value. A boolean-style attribute (no raw value) binds nil.
type Binding struct {
	Name  string
	Value any
}

// Bindings is an ordered set of resolved attributes. Order follows the
// source attribute order.
type Bindings []Binding

// Has reports whether the name is bound.
func (b Bindings) Has(name string) bool {
	for _, bd := range b {
		if bd.Name == name {
			return true
		}
	}
	return false
}

// Get returns the bound value.
func (b Bindings) Get(name string) (any, bool) {
	for _, bd := range b {
		if bd.Name == name {
			return bd.Value, true
		}
	}
	return nil, false
}

// Attrs converts the bindings back to an attribute list: nil values become
// boolean-style attributes, everything else is formatted to text.
func (b Bindings) Attrs() model.Attrs {
	out := make(model.Attrs, 0, len(b))
	for _, bd := range b {
		if bd.Value == nil {
			out = append(out, model.Attr{Name: bd.Name})
			continue
		}
		out = append(out, model.Attr{Name: bd.Name, Value: FormatValue(bd.Value), HasValue: true})
	}
	return out
}

// ResolveAttributes evaluates and partitions an element's attributes.
//
// With componentNS true it yields the component-properties: attributes in
// the dialect namespace, bound under their name with the prefix stripped.
// With componentNS false it yields the pass-through attributes: everything
// outside the namespace, bound under the complete name. Reserved dialect
// markers are never bound either way.
//
// Raw values are evaluated through eval against vars; an evaluation failure
// falls back to the raw literal text and never propagates.
func ResolveAttributes(tag model.Tag, names Names, componentNS bool, eval dialect.Evaluator, vars map[string]any) Bindings {
	nsPrefix := names.Prefix + ":"

	var out Bindings
	for _, at := range tag.TagAttrs() {
		if names.reserved(at.Name) {
			continue
		}
		inNS := strings.HasPrefix(at.Name, nsPrefix)
		if inNS != componentNS {
			continue
		}

		name := at.Name
		if componentNS {
			name = at.Name[len(nsPrefix):]
		}
		out = append(out, Binding{Name: name, Value: resolveValue(at, eval, vars)})
	}
	return out
}

func resolveValue(at model.Attr, eval dialect.Evaluator, vars map[string]any) any {
	if !at.HasValue {
		return nil
	}
	v, err := eval.Evaluate(at.Value, vars)
	if err != nil {
		// Recoverable by design: the raw text stands in for the value.
		return at.Value
	}
	return v
}

// FormatValue renders an evaluated attribute value as attribute text.
func FormatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
