package dialect

// Evaluator computes attribute expression values against the variables of the
// current render state. Implementations live outside the core; hcleval
// provides one backed by HCL expression syntax.
//
// An evaluation error never aborts a render: the attribute resolver catches it
// and falls back to the raw attribute text.
type Evaluator interface {
	Evaluate(raw string, vars map[string]any) (any, error)
}

// TemplateRef identifies the originating template of a model: the template
// path plus the optional fragment selector inside it. It is used for relative
// resolution of nested expansions and for diagnostics.
type TemplateRef struct {
	Path     string
	Fragment string
}

// String renders the reference in path::fragment form.
func (r TemplateRef) String() string {
	if r.Fragment == "" {
		return r.Path
	}
	return r.Path + "::" + r.Fragment
}

// IsZero reports whether the reference carries no identity.
func (r TemplateRef) IsZero() bool {
	return r.Path == "" && r.Fragment == ""
}
