package component

import (
	dialect "github.com/HellButcher/thymeleaf-component-dialect"
	"github.com/HellButcher/thymeleaf-component-dialect/errors"
	"github.com/HellButcher/thymeleaf-component-dialect/model"
)

// Injection is the outcome of rewriting one slot placeholder.
type Injection struct {
	// Replacement substitutes the whole placeholder range. Nil means the
	// placeholder and its fallback disappear entirely.
	Replacement model.Model

	// SwitchScope is true when Replacement is captured call-site content:
	// the walker must expand it under Scope and Ref (where the content was
	// written) instead of the current state. When false the replacement is
	// the placeholder's own fallback body and the current state stands.
	SwitchScope bool

	// Scope and Ref apply only when SwitchScope is true.
	Scope *Scope
	Ref   dialect.TemplateRef
}

// InjectSlot rewrites a slot placeholder. placeholder is the balanced range
// of the placeholder element; scope is the active scope-chain node.
//
// The requested slot name comes from the placeholder's name attribute,
// defaulting to the unnamed slot. Three cases:
//
//   - supplied content: it replaces the placeholder and its fallback; before
//     expansion the scope switches to the node's parent and the template
//     identity to where the content was captured (content is evaluated where
//     it was written, not where it lands);
//   - explicitly empty content: placeholder and fallback are both removed;
//   - slot not supplied: only the placeholder's own tags are removed, the
//     fallback body stands, scope unchanged.
func InjectSlot(placeholder model.Model, names Names, scope *Scope) (*Injection, error) {
	idx, tag := placeholder.FirstTag()
	if tag == nil {
		return nil, errors.Internal(errors.PhaseInject,
			"no placeholder element in model of %d events", len(placeholder))
	}

	name := DefaultSlotName
	if at, ok := tag.TagAttrs().Get(names.NameAttr()); ok {
		name = at.Value
	}

	if content, supplied := scope.Content(name); supplied {
		if content == nil {
			// Explicit empty beats fallback.
			return &Injection{}, nil
		}
		return &Injection{
			Replacement: content,
			SwitchScope: true,
			Scope:       scope.Parent,
			Ref:         scope.Origin,
		}, nil
	}

	fallback, err := model.InnerRange(placeholder, idx)
	if err != nil {
		return nil, err
	}
	return &Injection{Replacement: fallback}, nil
}
