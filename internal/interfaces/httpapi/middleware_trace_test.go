package httpapi

import "testing"

func TestShouldTraceRequest(t *testing.T) {
	tests := map[string]bool{
		"/healthz":            false,
		"/health":             false,
		"/livez":              false,
		"/readyz":             false,
		" /healthz ":          false,
		"/v1/health/sheets":   true,
		"/v1/teams":           true,
		"/v1/selections":      true,
		"/v1/teams/T001/cap":  true,
		"/":                   true,
		"/docs":               true,
	}
	for path, want := range tests {
		if got := shouldTraceRequest(path); got != want {
			t.Fatalf("shouldTraceRequest(%q)=%v want=%v", path, got, want)
		}
	}
}
