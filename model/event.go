package model

// Event is one entry of a template event stream. The set of implementations
// is closed: OpenTag, CloseTag, StandaloneTag, Text, Comment, and Other.
// Switches over Event values are exhaustive over these six types.
type Event interface {
	isEvent()
}

// Attr is a single attribute. HasValue distinguishes name="value" from a
// bare boolean-style attribute (name with no value at all).
type Attr struct {
	Name     string
	Value    string
	HasValue bool
}

// Attrs is an ordered attribute list. Order is preserved through parsing,
// merging, and serialization.
type Attrs []Attr

// Index returns the position of the named attribute, or -1.
func (a Attrs) Index(name string) int {
	for i, at := range a {
		if at.Name == name {
			return i
		}
	}
	return -1
}

// Has reports whether the named attribute is present.
func (a Attrs) Has(name string) bool {
	return a.Index(name) >= 0
}

// Get returns the named attribute.
func (a Attrs) Get(name string) (Attr, bool) {
	if i := a.Index(name); i >= 0 {
		return a[i], true
	}
	return Attr{}, false
}

// Value returns the value of the named attribute, or "" when the attribute
// is absent or has no value.
func (a Attrs) Value(name string) string {
	if at, ok := a.Get(name); ok {
		return at.Value
	}
	return ""
}

// Clone returns an independent copy of the attribute list.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	copy(out, a)
	return out
}

// Without returns a copy of the list with the named attribute removed.
func (a Attrs) Without(name string) Attrs {
	out := make(Attrs, 0, len(a))
	for _, at := range a {
		if at.Name != name {
			out = append(out, at)
		}
	}
	return out
}

// Merge returns a copy with extra merged in: names already present are
// overwritten in place (extra wins), new names are appended in order.
func (a Attrs) Merge(extra Attrs) Attrs {
	out := a.Clone()
	for _, at := range extra {
		if i := out.Index(at.Name); i >= 0 {
			out[i] = at
		} else {
			out = append(out, at)
		}
	}
	return out
}

// OpenTag opens an element subtree; it has exactly one matching CloseTag.
type OpenTag struct {
	Name  string
	Attrs Attrs
}

// CloseTag closes the nearest unclosed OpenTag of the same name.
type CloseTag struct {
	Name string
}

// StandaloneTag is a self-contained element; it is depth-neutral. Minimized
// records whether the source used the <name/> short form.
type StandaloneTag struct {
	Name      string
	Attrs     Attrs
	Minimized bool
}

// Text is character data between tags.
type Text struct {
	Data string
}

// Comment is a source comment, carried through unmodified.
type Comment struct {
	Data string
}

// Other is any event the parser produced that the dialect does not interpret
// (doctype declarations, processing instructions).
type Other struct {
	Data string
}

func (OpenTag) isEvent()       {}
func (CloseTag) isEvent()      {}
func (StandaloneTag) isEvent() {}
func (Text) isEvent()          {}
func (Comment) isEvent()       {}
func (Other) isEvent()         {}

// Tag is the common view of the two attribute-carrying tag events.
type Tag interface {
	Event
	TagName() string
	TagAttrs() Attrs
}

func (t OpenTag) TagName() string       { return t.Name }
func (t OpenTag) TagAttrs() Attrs       { return t.Attrs }
func (t StandaloneTag) TagName() string { return t.Name }
func (t StandaloneTag) TagAttrs() Attrs { return t.Attrs }

// AsTag returns the event as a Tag when it is an OpenTag or StandaloneTag.
func AsTag(ev Event) (Tag, bool) {
	switch t := ev.(type) {
	case OpenTag:
		return t, true
	case StandaloneTag:
		return t, true
	default:
		return nil, false
	}
}

// WithAttrs returns a copy of the tag event carrying the given attributes.
// The dynamic type (open vs standalone) is preserved.
func WithAttrs(t Tag, attrs Attrs) Tag {
	switch tag := t.(type) {
	case OpenTag:
		tag.Attrs = attrs
		return tag
	case StandaloneTag:
		tag.Attrs = attrs
		return tag
	default:
		// Tag is only implemented by the two cases above.
		panic("model: unsupported tag type")
	}
}
