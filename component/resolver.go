package component

import (
	"context"

	dialect "github.com/HellButcher/thymeleaf-component-dialect"
	"github.com/HellButcher/thymeleaf-component-dialect/errors"
	"github.com/HellButcher/thymeleaf-component-dialect/model"
)

// Expansion is the outcome of expanding one component invocation: the
// replacement content plus the render-state changes that apply while the
// walker re-scans it.
type Expansion struct {
	// Replacement substitutes the whole call-site range. Nested invocations
	// and slot placeholders inside it are handled on subsequent passes.
	Replacement model.Model

	// Vars are the fragment-local values: call-site component properties,
	// plus fragment-root defaults for anything the call site left unset,
	// layered over the enclosing variables.
	Vars map[string]any

	// Scope is the new active scope-chain node carrying the call site's
	// slot content.
	Scope *Scope

	// Ref is the fragment's own template identity; nested processing inside
	// the replacement is attributed and resolved relative to the fragment,
	// not the call site.
	Ref dialect.TemplateRef
}

// Resolver expands component invocations against their fragment
// definitions. It is stateless and safe for concurrent use; per-render state
// travels through the parameters and the returned Expansion.
type Resolver struct {
	loader Loader
	eval   dialect.Evaluator
}

// NewResolver creates a resolver using the given template loader and
// attribute expression evaluator.
func NewResolver(loader Loader, eval dialect.Evaluator) *Resolver {
	return &Resolver{loader: loader, eval: eval}
}

// Expand resolves one component invocation. callSite is the balanced range
// of the invocation element; vars, origin, and scope describe the render
// state active at the call site.
//
// A nil Expansion with nil error means the element's qualified name does not
// exactly match the kind (a lookalike such as a "pl-card" web component);
// the caller must leave the model untouched.
func (r *Resolver) Expand(ctx context.Context, kind Kind, callSite model.Model, vars map[string]any, origin dialect.TemplateRef, scope *Scope) (*Expansion, error) {
	idx, tag := callSite.FirstTag()
	if tag == nil {
		return nil, errors.Internal(errors.PhaseResolve,
			"no invocation element in model of %d events", len(callSite))
	}
	if tag.TagName() != kind.QualifiedName() {
		return nil, nil
	}
	names := kind.Names()

	props := ResolveAttributes(tag, names, true, r.eval, vars)
	passThrough := ResolveAttributes(tag, names, false, r.eval, vars)

	ref := kind.TemplateRef()
	frag, err := r.loader.Load(ctx, ref.Path, ref.Fragment)
	if err != nil {
		return nil, err
	}

	locals := make(map[string]any, len(vars)+len(props))
	for k, v := range vars {
		locals[k] = v
	}
	for _, b := range props {
		locals[b.Name] = b.Value
	}

	// Fragment-root defaults: the call site wins on any key it supplied.
	for _, b := range ResolveAttributes(frag.RootTag(), names, true, r.eval, vars) {
		if !props.Has(b.Name) {
			locals[b.Name] = b.Value
		}
	}

	// Signature parameters must be satisfied by the call site itself,
	// defaults do not count.
	for _, param := range frag.Signature.Params {
		if !props.Has(param) {
			return nil, errors.MissingRequiredAttribute(kind.QualifiedName(), param, frag.Signature.Raw)
		}
	}

	body, err := model.InnerRange(callSite, idx)
	if err != nil {
		return nil, err
	}
	slots, err := ExtractSlots(body, names)
	if err != nil {
		return nil, err
	}

	replacement, err := r.assemble(frag, names, passThrough)
	if err != nil {
		return nil, err
	}

	return &Expansion{
		Replacement: replacement,
		Vars:        locals,
		Scope:       NewScope(slots, origin, scope),
		Ref:         frag.Ref,
	}, nil
}

// assemble builds the replacement content from the fragment root's inner
// range and routes the pass-through attributes: onto every element marked as
// acceptor (call-site values win, marker stripped), or, when no element
// accepts them, onto one synthetic container wrapped around the whole
// replacement so they are never silently lost.
func (r *Resolver) assemble(frag *Fragment, names Names, passThrough Bindings) (model.Model, error) {
	replacement, err := frag.Inner()
	if err != nil {
		return nil, err
	}

	marker := names.PassAttrsAttr()
	ptAttrs := passThrough.Attrs()

	accepted := false
	for i, ev := range replacement {
		tag, isTag := model.AsTag(ev)
		if !isTag || !tag.TagAttrs().Has(marker) {
			continue
		}
		merged := tag.TagAttrs().Without(marker).Merge(ptAttrs)
		replacement[i] = model.WithAttrs(tag, merged)
		accepted = true
	}

	if !accepted && len(ptAttrs) > 0 {
		wrapped := make(model.Model, 0, len(replacement)+2)
		wrapped = append(wrapped, model.OpenTag{Name: names.BlockElement(), Attrs: ptAttrs})
		wrapped = append(wrapped, replacement...)
		wrapped = append(wrapped, model.CloseTag{Name: names.BlockElement()})
		return wrapped, nil
	}
	return replacement, nil
}
