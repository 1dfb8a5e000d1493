package lineup

import "strings"

// spellings maps an upper-cased label to every stored spelling of that slot.
// The first entry is the label used by the fixed slot table.
var spellings = map[string][]string{
	"CENTRE":             {"Centre", "Center"},
	"CENTER":             {"Centre", "Center"},
	"FORWARD/CENTRE":     {"Forward/Centre", "Forward/Center"},
	"FORWARD/CENTER":     {"Forward/Centre", "Forward/Center"},
	"RES FORWARD/CENTER": {"Res Forward/Center", "Res Forward/Centre"},
	"RES FORWARD/CENTRE": {"Res Forward/Center", "Res Forward/Centre"},
}

// Rule decides which player position codes may fill a slot.
type Rule struct {
	class Class
	known bool
}

// Class returns the slot class, or "" for an unknown slot.
func (r Rule) Class() Class {
	return r.class
}

// Accepts matches a stored position string case-insensitively.
func (r Rule) Accepts(position string) bool {
	if !r.known {
		return false
	}
	return ClassAccepts(r.class, position)
}

// ClassAccepts applies the per-class position table.
func ClassAccepts(class Class, position string) bool {
	pos := strings.ToUpper(strings.TrimSpace(position))
	switch class {
	case ClassGuard:
		return strings.Contains(pos, "G")
	case ClassForward:
		return strings.Contains(pos, "F") && !strings.Contains(pos, "C")
	case ClassCentre:
		return pos == "C" || pos == "F/C"
	case ClassGuardForward:
		return strings.Contains(pos, "G") || strings.Contains(pos, "F")
	case ClassForwardCentre:
		return strings.Contains(pos, "F") || strings.Contains(pos, "C")
	case ClassAny:
		return true
	default:
		return false
	}
}

// EligiblePositions returns the rule for a slot label. Unknown labels accept
// nothing.
func EligiblePositions(slotName string) Rule {
	slot, ok := CanonicalSlot(slotName)
	if !ok {
		return Rule{}
	}
	return Rule{class: slot.Class, known: true}
}

func Accepts(slotName, position string) bool {
	return EligiblePositions(slotName).Accepts(position)
}

// SpellingVariants returns every label under which the slot may be stored.
func SpellingVariants(slotName string) []string {
	key := normalizeLabel(slotName)
	if variants, ok := spellings[key]; ok {
		return append([]string(nil), variants...)
	}
	if slot, ok := CanonicalSlot(slotName); ok {
		return []string{slot.Label}
	}
	return nil
}

// CanonicalSlot resolves a label or spelling variant to its fixed slot.
func CanonicalSlot(name string) (Slot, bool) {
	key := normalizeLabel(name)
	if key == "" {
		return Slot{}, false
	}
	if variants, ok := spellings[key]; ok {
		key = normalizeLabel(variants[0])
	}
	for _, s := range slots {
		if normalizeLabel(s.Label) == key {
			return s, true
		}
	}
	return Slot{}, false
}

// SameSlot reports whether two stored labels name the same slot.
func SameSlot(a, b string) bool {
	sa, okA := CanonicalSlot(a)
	sb, okB := CanonicalSlot(b)
	return okA && okB && sa.ID == sb.ID
}

func normalizeLabel(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}
