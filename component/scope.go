package component

import (
	dialect "github.com/HellButcher/thymeleaf-component-dialect"
	"github.com/HellButcher/thymeleaf-component-dialect/model"
)

// Scope is one node of the slot scope chain: the slot content captured at a
// call site, the template identity of where that content was written, and
// the chain that was active when the component was invoked.
//
// The chain is immutable and newest-first. It is threaded explicitly through
// each expansion and returned alongside results; it is never stored as
// hidden global state. The parent link exists for lexical correctness when
// captured content forwards a slot into a nested component; there is no
// multi-level dynamic lookup beyond following that single link per
// injection.
type Scope struct {
	Slots  SlotMap
	Origin dialect.TemplateRef
	Parent *Scope
}

// NewScope pushes a node onto the chain.
func NewScope(slots SlotMap, origin dialect.TemplateRef, parent *Scope) *Scope {
	return &Scope{Slots: slots, Origin: origin, Parent: parent}
}

// Content looks up a slot in this node only. The boolean reports key
// presence; a present key may still map to nil content (explicitly empty).
func (s *Scope) Content(name string) (model.Model, bool) {
	if s == nil {
		return nil, false
	}
	m, ok := s.Slots[name]
	return m, ok
}
