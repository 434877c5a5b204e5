// Package htmlmodel converts between HTML source text and the event model.
//
// Parsing is pure tokenization: no tree construction, no implicit tags, and
// attribute order is preserved, so a parse/render round trip keeps the
// document's shape. Known void elements and self-closed tags become
// standalone events; everything else pairs an open with a close event.
//
// The tokenizer cannot distinguish a bare attribute from one written with an
// empty value, so both parse as a valueless attribute.
package htmlmodel
