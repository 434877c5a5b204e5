package component

import (
	"sort"
	"strings"
	"sync"

	dialect "github.com/HellButcher/thymeleaf-component-dialect"
	"github.com/HellButcher/thymeleaf-component-dialect/errors"
)

// Kind configures one component: the dialect prefix, the element name the
// call site uses, and optionally where the fragment definition lives.
//
// An empty TemplatePath derives the conventional location
// "prefix/element/element" with the element name as fragment selector. A
// TemplatePath containing "::" splits into path and selector; otherwise the
// selector defaults to the element name.
type Kind struct {
	Prefix       string
	Element      string
	TemplatePath string
}

// QualifiedName returns the call-site element name, e.g. "pl:card".
func (k Kind) QualifiedName() string {
	return k.Prefix + ":" + k.Element
}

// TemplateRef resolves the fragment location for this kind.
func (k Kind) TemplateRef() dialect.TemplateRef {
	switch {
	case k.TemplatePath == "":
		return dialect.TemplateRef{
			Path:     k.Prefix + "/" + k.Element + "/" + k.Element,
			Fragment: k.Element,
		}
	case strings.Contains(k.TemplatePath, "::"):
		path, fragment, _ := strings.Cut(k.TemplatePath, "::")
		return dialect.TemplateRef{
			Path:     strings.TrimSpace(path),
			Fragment: strings.TrimSpace(fragment),
		}
	default:
		return dialect.TemplateRef{Path: k.TemplatePath, Fragment: k.Element}
	}
}

// Names returns the reserved vocabulary of this kind's dialect.
func (k Kind) Names() Names {
	return Names{Prefix: k.Prefix}
}

// Names derives the reserved dialect vocabulary from a namespace prefix.
// All markers are resolved through this type once, at registration or load
// time, rather than rebuilt ad hoc during each walk.
type Names struct {
	Prefix string
}

// FragmentAttr is the fragment signature marker attribute, e.g. "pl:fragment".
func (n Names) FragmentAttr() string { return n.Prefix + ":fragment" }

// SlotAttr is the call-site attribute that claims a subtree for a named
// slot, e.g. pl:slot="header".
func (n Names) SlotAttr() string { return n.Prefix + ":slot" }

// NameAttr selects the slot a placeholder element stands for, e.g.
// <pl:slot pl:name="header">. Absent means the default slot.
func (n Names) NameAttr() string { return n.Prefix + ":name" }

// PassAttrsAttr marks the fragment element that accepts the call site's
// pass-through attributes.
func (n Names) PassAttrsAttr() string { return n.Prefix + ":pass-attrs" }

// SlotElement is the placeholder element name, e.g. "pl:slot".
func (n Names) SlotElement() string { return n.Prefix + ":slot" }

// BlockElement is the synthetic container used when no fragment element
// accepts the pass-through attributes, e.g. "pl:block".
func (n Names) BlockElement() string { return n.Prefix + ":block" }

// reserved reports whether the attribute name is a dialect marker rather
// than a component property. Only the fragment-side markers are reserved;
// slot claims live on body elements, which attribute resolution never sees.
func (n Names) reserved(attrName string) bool {
	return attrName == n.FragmentAttr() || attrName == n.PassAttrsAttr()
}

// Registry maps qualified element names to component kinds. Registration is
// explicit; duplicate names are rejected so collisions surface at startup,
// not during a render. Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	kinds    map[string]Kind
	prefixes map[string]struct{}
}

// NewRegistry creates an empty component registry.
func NewRegistry() *Registry {
	return &Registry{
		kinds:    make(map[string]Kind),
		prefixes: make(map[string]struct{}),
	}
}

// Register adds a component kind. The prefix and element must be non-empty
// and the qualified name must not already be taken.
func (r *Registry) Register(k Kind) error {
	if k.Prefix == "" || k.Element == "" {
		return errors.Registration(k.QualifiedName(), "prefix and element are required")
	}
	if strings.ContainsAny(k.Prefix, ": ") || strings.ContainsAny(k.Element, ": ") {
		return errors.Registration(k.QualifiedName(), "prefix and element must not contain ':' or spaces")
	}
	if k.Element == "slot" || k.Element == "block" {
		return errors.Registration(k.QualifiedName(), "element name is reserved by the dialect")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	name := k.QualifiedName()
	if _, exists := r.kinds[name]; exists {
		return errors.Registration(name, "already registered")
	}
	r.kinds[name] = k
	r.prefixes[k.Prefix] = struct{}{}
	return nil
}

// MustRegister is Register that panics on error, for static setup code.
func (r *Registry) MustRegister(k Kind) {
	if err := r.Register(k); err != nil {
		panic(err)
	}
}

// Lookup finds the kind registered under the qualified element name.
func (r *Registry) Lookup(qualifiedName string) (Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.kinds[qualifiedName]
	return k, ok
}

// SlotNames reports whether the element name is a slot placeholder of a
// registered dialect, and if so returns that dialect's vocabulary.
func (r *Registry) SlotNames(elementName string) (Names, bool) {
	prefix, rest, ok := strings.Cut(elementName, ":")
	if !ok || rest != "slot" {
		return Names{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, known := r.prefixes[prefix]; !known {
		return Names{}, false
	}
	return Names{Prefix: prefix}, true
}

// Kinds returns the registered kinds sorted by qualified name.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Kind, 0, len(r.kinds))
	for _, k := range r.kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].QualifiedName() < out[j].QualifiedName()
	})
	return out
}
