package hcleval

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Evaluator parses and evaluates one expression per call. It holds no state
// and is safe for concurrent use.
type Evaluator struct{}

// New creates an HCL expression evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// Evaluate parses raw as an HCL expression and evaluates it against vars.
func (*Evaluator) Evaluate(raw string, vars map[string]any) (any, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(raw), "expression", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %q: %w", raw, diags)
	}

	val, diags := expr.Value(evalContext(vars))
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluate %q: %w", raw, diags)
	}
	return fromCty(val)
}

// evalContext exposes the variable scope to the expression. Values with no
// cty representation are omitted rather than failing the whole scope.
func evalContext(vars map[string]any) *hcl.EvalContext {
	variables := make(map[string]cty.Value, len(vars))
	for name, v := range vars {
		cv, err := toCty(v)
		if err != nil {
			continue
		}
		variables[name] = cv
	}
	return &hcl.EvalContext{Variables: variables}
}

func toCty(v any) (cty.Value, error) {
	if v == nil {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty type: %w", err)
	}
	return gocty.ToCtyValue(v, ty)
}

// fromCty converts an evaluation result to its most natural Go counterpart.
// Whole numbers become int64, everything else fractional becomes float64.
func fromCty(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty == cty.Number:
		f := v.AsBigFloat()
		if i, acc := f.Int64(); acc == big.Exact {
			return i, nil
		}
		out, _ := f.Float64()
		return out, nil

	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		slice := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			converted, err := fromCty(ev)
			if err != nil {
				return nil, err
			}
			slice = append(slice, converted)
		}
		return slice, nil

	case ty.IsMapType() || ty.IsObjectType():
		m := make(map[string]any, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			key, ev := it.Element()
			converted, err := fromCty(ev)
			if err != nil {
				return nil, err
			}
			m[key.AsString()] = converted
		}
		return m, nil

	default:
		return nil, fmt.Errorf("unsupported result type %s", ty.FriendlyName())
	}
}
