package id

import (
	"strings"
	"testing"
)

func TestNanoIDGenerator_PrefixAndUniqueness(t *testing.T) {
	gen := NewNanoIDGenerator("aud")
	seen := make(map[string]struct{}, 100)

	for i := 0; i < 100; i++ {
		v, err := gen.NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		if !strings.HasPrefix(v, "aud_") {
			t.Fatalf("missing prefix: %s", v)
		}
		if len(v) != len("aud_")+defaultLength {
			t.Fatalf("unexpected length %d for %s", len(v), v)
		}
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate id %s", v)
		}
		seen[v] = struct{}{}
	}
}
