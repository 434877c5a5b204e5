package component

import (
	"github.com/HellButcher/thymeleaf-component-dialect/errors"
	"github.com/HellButcher/thymeleaf-component-dialect/model"
)

// DefaultSlotName keys the unnamed catch-all slot. The leading '#' keeps it
// out of the namespace of user-written slot names.
const DefaultSlotName = "#default"

// SlotMap maps slot names to captured call-site content.
//
// Three states matter downstream:
//   - key absent: the call site did not supply the slot; placeholder
//     fallbacks stand.
//   - key present, nil content: the slot was supplied as an empty marker
//     with no children; explicit empty beats fallback.
//   - key present, non-nil content (possibly zero-length): the slot was
//     supplied; the content replaces the placeholder.
type SlotMap map[string]model.Model

// ExtractSlots partitions a component invocation's body into named-slot
// content plus default content.
//
// The scan walks body left to right without descending into ranges already
// claimed for a named slot; a slot marker nested inside claimed content is
// handled on a later pass, after injection. Each marker contributes the
// inner range of its balanced subtree. A name claimed twice among the
// directly scanned markers is fatal.
//
// Whatever the named slots did not claim becomes the default slot; when the
// named slots consume the body entirely, the default key stays absent so a
// default placeholder's fallback still applies.
func ExtractSlots(body model.Model, names Names) (SlotMap, error) {
	slots := make(SlotMap)
	var leftover model.Model

	slotAttr := names.SlotAttr()
	i := 0
	for i < len(body) {
		tag, isTag := model.AsTag(body[i])
		if !isTag || !tag.TagAttrs().Has(slotAttr) {
			leftover = append(leftover, body[i])
			i++
			continue
		}

		name := tag.TagAttrs().Value(slotAttr)
		if _, dup := slots[name]; dup {
			return nil, errors.DuplicateSlot(name)
		}

		claimed, err := model.BalancedRange(body, i)
		if err != nil {
			return nil, err
		}
		content, err := model.InnerRange(body, i)
		if err != nil {
			return nil, err
		}
		slots[name] = content
		i += len(claimed)
	}

	if len(leftover) > 0 {
		slots[DefaultSlotName] = leftover
	}
	return slots, nil
}
