package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad    Phase = "load"    // template loading and fragment selection
	PhaseResolve Phase = "resolve" // component expansion
	PhaseExtract Phase = "extract" // slot extraction
	PhaseInject  Phase = "inject"  // slot injection
	PhaseWalk    Phase = "walk"    // document walking
	PhaseModel   Phase = "model"   // event model manipulation
)

// Kind categorizes the error
type Kind string

const (
	KindInternal         Kind = "internal_consistency"
	KindTemplateNotFound Kind = "template_not_found"
	KindMissingAttribute Kind = "missing_attribute"
	KindDuplicateSlot    Kind = "duplicate_slot"
	KindInvalidModel     Kind = "invalid_model"
	KindInvalidSignature Kind = "invalid_signature"
	KindDepthExceeded    Kind = "depth_exceeded"
	KindRegistration     Kind = "registration"
)

// Error is the structured error type used throughout the dialect
type Error struct {
	Cause     error
	Phase     Phase
	Kind      Kind
	Template  string // template reference in path::fragment form
	Component string // qualified component name, e.g. "pl:card"
	Name      string // slot or parameter name, when applicable
	Detail    string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Component != "" {
		b.WriteString(" in ")
		b.WriteString(e.Component)
	}

	if e.Template != "" {
		b.WriteString(" (template ")
		b.WriteString(e.Template)
		b.WriteByte(')')
	}

	if e.Name != "" {
		b.WriteString(": ")
		b.WriteString(e.Name)
	}

	if e.Detail != "" {
		if e.Name != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for the fatal conditions of the dialect

// Internal creates an internal-consistency error. These conditions should be
// unreachable given well-formed input.
func Internal(phase Phase, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInternal,
		Detail: detail,
	}
}

// TemplateNotFound creates an error for a missing template or fragment,
// naming the path and the fragment selector.
func TemplateNotFound(path, fragment string, cause error) *Error {
	template := path
	if fragment != "" {
		template = path + "::" + fragment
	}
	return &Error{
		Phase:    PhaseLoad,
		Kind:     KindTemplateNotFound,
		Template: template,
		Cause:    cause,
	}
}

// MissingRequiredAttribute creates an error for a fragment-signature
// parameter that is absent at the call site.
func MissingRequiredAttribute(component, parameter, signature string) *Error {
	return &Error{
		Phase:     PhaseResolve,
		Kind:      KindMissingAttribute,
		Component: component,
		Name:      parameter,
		Detail:    fmt.Sprintf("declared in fragment signature %q", signature),
	}
}

// DuplicateSlot creates an error for a slot name claimed twice in one body.
func DuplicateSlot(name string) *Error {
	return &Error{
		Phase: PhaseExtract,
		Kind:  KindDuplicateSlot,
		Name:  name,
	}
}

// InvalidModel creates an error for an unbalanced or malformed event model.
func InvalidModel(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidModel,
		Detail: detail,
	}
}

// InvalidSignature creates an error for a fragment-signature marker that
// cannot be parsed.
func InvalidSignature(template, detail string) *Error {
	return &Error{
		Phase:    PhaseLoad,
		Kind:     KindInvalidSignature,
		Template: template,
		Detail:   detail,
	}
}

// DepthExceeded creates an error for expansion recursion past the configured
// guard, usually a self-referential component definition.
func DepthExceeded(component string, depth int) *Error {
	return &Error{
		Phase:     PhaseWalk,
		Kind:      KindDepthExceeded,
		Component: component,
		Detail:    fmt.Sprintf("expansion depth %d exceeded", depth),
	}
}

// Registration creates an error for an invalid component-kind registration.
func Registration(component, detail string) *Error {
	return &Error{
		Phase:     PhaseResolve,
		Kind:      KindRegistration,
		Component: component,
		Detail:    detail,
	}
}

// Load wraps a template loading failure
func Load(path string, cause error) *Error {
	return &Error{
		Phase:    PhaseLoad,
		Kind:     KindInvalidModel,
		Template: path,
		Cause:    cause,
	}
}
