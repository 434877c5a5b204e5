// Package model defines the event representation of a parsed template.
//
// A template is a flat, ordered sequence of events (Model). Tag events open,
// close, or stand alone; everything else (text, comments, directives) passes
// through untouched. A Model is balanced: a depth-first traversal never goes
// negative and returns to zero exactly at the end of the sequence.
//
// BalancedRange and InnerRange extract contiguous depth-balanced subtrees
// from a model by index. They are the foundation for slot extraction and
// component expansion.
package model
