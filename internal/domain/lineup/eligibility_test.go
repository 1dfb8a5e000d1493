package lineup

import (
	"reflect"
	"testing"
)

func TestEligiblePositions_Centre(t *testing.T) {
	t.Parallel()

	rule := EligiblePositions("Centre")
	if !rule.Accepts("F/C") {
		t.Fatalf("Centre should accept F/C")
	}
	if rule.Accepts("G") {
		t.Fatalf("Centre should reject G")
	}
}

func TestAccepts_RuleTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		slot     string
		position string
		want     bool
	}{
		{"Guard 1", "G", true},
		{"Guard 2", "G/F", true},
		{"Res Guard", "F", false},
		{"Forward 1", "F", true},
		{"Forward 2", "G/F", true},
		{"Forward 1", "F/C", false},
		{"Centre", "C", true},
		{"Center", "c", true},
		{"Centre", "C/F", false},
		{"Guard/Forward", "G", true},
		{"Guard/Forward", "F", true},
		{"Guard/Forward", "C", false},
		{"Forward/Centre", "C", true},
		{"Forward/Center", "F", true},
		{"Forward/Centre", "G", false},
		{"Res Forward/Center", "F/C", true},
		{"Res Forward/Centre", "G", false},
		{"Flex 1", "G", true},
		{"Flex 2", "", true},
		{"Res Flex", "C", true},
		{"Bench", "G", false},
	}

	for _, tc := range tests {
		t.Run(tc.slot+"/"+tc.position, func(t *testing.T) {
			t.Parallel()

			if got := Accepts(tc.slot, tc.position); got != tc.want {
				t.Fatalf("Accepts(%q,%q)=%v want %v", tc.slot, tc.position, got, tc.want)
			}
		})
	}
}

func TestSpellingVariants(t *testing.T) {
	t.Parallel()

	tests := map[string][]string{
		"Centre":             {"Centre", "Center"},
		" center ":           {"Centre", "Center"},
		"Forward/Center":     {"Forward/Centre", "Forward/Center"},
		"res forward/centre": {"Res Forward/Center", "Res Forward/Centre"},
		"Guard 1":            {"Guard 1"},
		"Nope":               nil,
	}
	for name, want := range tests {
		if got := SpellingVariants(name); !reflect.DeepEqual(got, want) {
			t.Fatalf("SpellingVariants(%q)=%v want %v", name, got, want)
		}
	}
}

func TestCanonicalSlot(t *testing.T) {
	t.Parallel()

	slot, ok := CanonicalSlot("RES FORWARD/CENTRE")
	if !ok || slot.ID != SlotForwardCentreRes || !slot.Reserve {
		t.Fatalf("got=%+v ok=%v", slot, ok)
	}
	if _, ok := CanonicalSlot(""); ok {
		t.Fatalf("empty label should not resolve")
	}
	if !SameSlot("Centre", "center") || SameSlot("Guard 1", "Guard 2") {
		t.Fatalf("SameSlot mismatch")
	}
}

func TestSlots_FixedTwelve(t *testing.T) {
	t.Parallel()

	all := Slots()
	if len(all) != SlotCount {
		t.Fatalf("slots=%d want %d", len(all), SlotCount)
	}
	reserves := 0
	seen := make(map[SlotID]struct{})
	for _, s := range all {
		if _, dup := seen[s.ID]; dup {
			t.Fatalf("duplicate slot id %s", s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.Reserve {
			reserves++
		}
	}
	if reserves != 3 {
		t.Fatalf("reserves=%d want 3", reserves)
	}
}
