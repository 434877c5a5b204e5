// Package engine walks a document model and drives component expansion.
//
// The walker scans the event stream for component invocations and slot
// placeholders. An invocation is handed to the component resolver, which
// returns replacement content plus the render state for it; the walker then
// re-scans the replacement before continuing, so nested invocations and the
// placeholders a fragment contains are handled on subsequent passes. Each
// replacement region is expanded as its own unit of work with its own state,
// and a depth guard converts unbounded self-referential component
// definitions into a fatal error instead of runaway recursion.
//
// Render state (variables, template identity, slot scope chain) is visible
// only within the subtree being expanded and is discarded on leaving it.
package engine
