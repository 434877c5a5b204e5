package engine

import (
	"context"

	"go.uber.org/zap"

	dialect "github.com/HellButcher/thymeleaf-component-dialect"
	"github.com/HellButcher/thymeleaf-component-dialect/component"
	"github.com/HellButcher/thymeleaf-component-dialect/errors"
	"github.com/HellButcher/thymeleaf-component-dialect/model"
)

// DefaultMaxDepth bounds component-nesting depth per render. Legitimate
// documents nest far shallower; the guard exists to fail self-referential
// component definitions deterministically.
const DefaultMaxDepth = 64

// Engine expands component invocations and slot placeholders in a document
// model. It is safe for concurrent use; every render owns isolated state.
type Engine struct {
	registry *component.Registry
	resolver *component.Resolver
	maxDepth int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxDepth overrides the expansion depth guard.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

// New creates an engine over the registered component kinds, using loader
// for fragment definitions and eval for attribute expressions.
func New(registry *component.Registry, loader component.Loader, eval dialect.Evaluator, opts ...Option) *Engine {
	e := &Engine{
		registry: registry,
		resolver: component.NewResolver(loader, eval),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// state is the render state active for one expansion region: the local
// variables, the template identity nested work is attributed to, and the
// active slot scope-chain node.
type state struct {
	vars  map[string]any
	ref   dialect.TemplateRef
	scope *component.Scope
}

// Render expands doc completely and returns the result. doc is not
// modified. vars seeds the variable scope visible to attribute expressions.
//
// Any fatal condition aborts the whole render; partial output is never
// returned.
func (e *Engine) Render(ctx context.Context, doc model.Model, vars map[string]any) (model.Model, error) {
	if !doc.Balanced() {
		return nil, errors.InvalidModel(errors.PhaseWalk, "document model is not balanced")
	}
	return e.expand(ctx, doc, state{vars: vars}, 0)
}

// expand walks one region, replacing invocations and placeholders, and
// re-scanning every replacement under its own state at depth+1.
func (e *Engine) expand(ctx context.Context, events model.Model, st state, depth int) (model.Model, error) {
	out := make(model.Model, 0, len(events))

	i := 0
	for i < len(events) {
		tag, isTag := model.AsTag(events[i])
		if !isTag {
			out = append(out, events[i])
			i++
			continue
		}

		if kind, found := e.registry.Lookup(tag.TagName()); found {
			n, err := e.expandInvocation(ctx, kind, events, i, st, depth, &out)
			if err != nil {
				return nil, err
			}
			i += n
			continue
		}

		if names, isSlot := e.registry.SlotNames(tag.TagName()); isSlot {
			n, err := e.injectPlaceholder(ctx, names, events, i, st, depth, &out)
			if err != nil {
				return nil, err
			}
			i += n
			continue
		}

		out = append(out, events[i])
		i++
	}

	return out, nil
}

// expandInvocation resolves the component invocation at index i, appends the
// fully expanded replacement to out, and returns how many input events the
// call-site range consumed.
func (e *Engine) expandInvocation(ctx context.Context, kind component.Kind, events model.Model, i int, st state, depth int, out *model.Model) (int, error) {
	callSite, err := model.BalancedRange(events, i)
	if err != nil {
		return 0, err
	}

	if depth >= e.maxDepth {
		return 0, errors.DepthExceeded(kind.QualifiedName(), depth)
	}

	exp, err := e.resolver.Expand(ctx, kind, callSite, st.vars, st.ref, st.scope)
	if err != nil {
		return 0, err
	}
	if exp == nil {
		// Lookalike element outside the dialect; leave it untouched.
		*out = append(*out, callSite...)
		return len(callSite), nil
	}

	Logger().Debug("expanding component",
		zap.String("component", kind.QualifiedName()),
		zap.String("fragment", exp.Ref.String()),
		zap.Int("depth", depth))

	expanded, err := e.expand(ctx, exp.Replacement, state{
		vars:  exp.Vars,
		ref:   exp.Ref,
		scope: exp.Scope,
	}, depth+1)
	if err != nil {
		return 0, err
	}

	*out = append(*out, expanded...)
	return len(callSite), nil
}

// injectPlaceholder rewrites the slot placeholder at index i. Supplied
// content expands under the scope chain's parent node and the identity where
// the content was captured; a fallback body expands under the current state.
func (e *Engine) injectPlaceholder(ctx context.Context, names component.Names, events model.Model, i int, st state, depth int, out *model.Model) (int, error) {
	rng, err := model.BalancedRange(events, i)
	if err != nil {
		return 0, err
	}

	inj, err := component.InjectSlot(rng, names, st.scope)
	if err != nil {
		return 0, err
	}

	next := st
	if inj.SwitchScope {
		next.scope = inj.Scope
		next.ref = inj.Ref
	}

	Logger().Debug("injecting slot",
		zap.Bool("supplied", inj.SwitchScope),
		zap.Int("events", len(inj.Replacement)),
		zap.Int("depth", depth))

	expanded, err := e.expand(ctx, inj.Replacement, next, depth+1)
	if err != nil {
		return 0, err
	}

	*out = append(*out, expanded...)
	return len(rng), nil
}
