// Package errors provides structured error types for template rendering.
//
// Errors are categorized by Phase (where in processing the error occurred)
// and Kind (error category). The Error type carries rich context: the
// template reference, the component and dialect name involved, and a cause
// chain.
//
// Use the convenience constructors for the common fatal conditions:
//
//	err := errors.TemplateNotFound("pl/card/card", "card")
//	err := errors.MissingRequiredAttribute("pl:card", "title", "card(title)")
//	err := errors.DuplicateSlot("header")
//
// All errors implement the standard error interface and support
// errors.Is/errors.As. Two *Error values match under errors.Is when their
// Phase and Kind agree, so callers can classify failures without string
// matching.
//
// Attribute expression evaluation failure is deliberately absent: it is
// recovered locally with a literal-text fallback and never surfaces.
package errors
