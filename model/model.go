package model

// Model is an ordered sequence of template events. A well-formed model is
// balanced: depth never goes negative and returns to zero only at the end.
type Model []Event

// Balanced reports whether the model is well-formed: every OpenTag has a
// matching later CloseTag, and no CloseTag appears without an open subtree.
func (m Model) Balanced() bool {
	depth := 0
	for _, ev := range m {
		switch ev.(type) {
		case OpenTag:
			depth++
		case CloseTag:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// Clone returns an independent copy of the event sequence. Attribute lists
// are cloned as well, so mutating a tag in the copy cannot alias the source.
func (m Model) Clone() Model {
	if m == nil {
		return nil
	}
	out := make(Model, len(m))
	for i, ev := range m {
		switch t := ev.(type) {
		case OpenTag:
			t.Attrs = t.Attrs.Clone()
			out[i] = t
		case StandaloneTag:
			t.Attrs = t.Attrs.Clone()
			out[i] = t
		default:
			out[i] = ev
		}
	}
	return out
}

// FirstTag returns the index and value of the first open-or-standalone tag
// event, or (-1, nil) when the model has none.
func (m Model) FirstTag() (int, Tag) {
	for i, ev := range m {
		if t, ok := AsTag(ev); ok {
			return i, t
		}
	}
	return -1, nil
}

// FirstOpenTagWith returns the index of the first OpenTag carrying the named
// attribute, or -1. Standalone tags are not considered: an element that can
// receive body content must open a subtree.
func (m Model) FirstOpenTagWith(attrName string) int {
	for i, ev := range m {
		if open, ok := ev.(OpenTag); ok && open.Attrs.Has(attrName) {
			return i
		}
	}
	return -1
}
