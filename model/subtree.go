package model

import (
	"github.com/HellButcher/thymeleaf-component-dialect/errors"
)

// BalancedRange extracts the contiguous depth-balanced event range starting
// at start. For an OpenTag the range runs through its matching CloseTag; for
// any other event the range is that single event.
//
// The model must be balanced and start must point into it. Violations are
// internal-consistency errors: they are unreachable given well-formed input.
func BalancedRange(m Model, start int) (Model, error) {
	if start < 0 || start >= len(m) {
		return nil, errors.Internal(errors.PhaseModel,
			"balanced range start %d outside model of %d events", start, len(m))
	}

	if _, ok := m[start].(OpenTag); !ok {
		return m[start : start+1], nil
	}

	depth := 1
	for i := start + 1; i < len(m); i++ {
		switch m[i].(type) {
		case OpenTag:
			depth++
		case CloseTag:
			depth--
		}
		if depth == 0 {
			return m[start : i+1], nil
		}
	}

	return nil, errors.Internal(errors.PhaseModel,
		"unclosed element %q at %d", m[start].(OpenTag).Name, start)
}

// InnerRange is BalancedRange without the bounding Open/Close pair: the
// children of the element at start. It returns an empty range for childless
// elements and for non-container events.
func InnerRange(m Model, start int) (Model, error) {
	sub, err := BalancedRange(m, start)
	if err != nil {
		return nil, err
	}
	if len(sub) < 2 {
		return nil, nil
	}
	return sub[1 : len(sub)-1], nil
}
