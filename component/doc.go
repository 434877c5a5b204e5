// Package component implements the component dialect: kind registration,
// slot extraction and injection, attribute resolution, and the resolver that
// expands one component invocation into replacement content.
//
// A component kind is registered once with a namespace prefix, an element
// name, and an optional template path. The reserved dialect vocabulary
// (fragment signature marker, slot attribute, placeholder element,
// pass-through acceptor marker, synthetic container) derives from the prefix;
// see Names.
//
// Expansion is linear with no backtracking. The resolver produces replacement
// content plus the render-state changes the walker must apply before
// re-scanning it: fragment-local values, the fragment's template identity,
// and a new scope-chain node capturing the call site's slot content. Slot
// placeholders found on later passes are rewritten by InjectSlot using that
// chain, which gives slot content lexical (call-site) scoping across
// arbitrarily nested expansions.
package component
