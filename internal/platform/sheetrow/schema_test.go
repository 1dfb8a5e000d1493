package sheetrow

import (
	"reflect"
	"strings"
	"testing"
)

type sample struct {
	ID    string
	Name  string
	Week  int
	Score float64
	Note  string
}

func sampleSchema(t *testing.T) *Schema[sample] {
	t.Helper()
	s, err := NewSchema("sample",
		TextOr(0, "id", func(r *sample) *string { return &r.ID }, IndexedID("row")),
		Trimmed(1, "name", func(r *sample) *string { return &r.Name }),
		Int(2, "week", func(r *sample) *int { return &r.Week }),
		Float(3, "score", func(r *sample) *float64 { return &r.Score }),
		ReadOnly(Text(5, "note", func(r *sample) *string { return &r.Note })),
	)
	if err != nil {
		t.Fatalf("new schema: %v", err)
	}
	return s
}

func TestSchema_DecodeAppliesDefaults(t *testing.T) {
	s := sampleSchema(t)

	tests := []struct {
		name  string
		row   []string
		index int
		want  sample
	}{
		{
			name:  "full row",
			row:   []string{"x1", "  Alpha ", "3", "101.5", "", "hello"},
			index: 0,
			want:  sample{ID: "x1", Name: "Alpha", Week: 3, Score: 101.5, Note: "hello"},
		},
		{
			name:  "short row falls back",
			row:   []string{"", "Beta"},
			index: 4,
			want:  sample{ID: "row_4", Name: "Beta"},
		},
		{
			name:  "unparseable numbers default to zero",
			row:   []string{"x2", "Gamma", "n/a", "--"},
			index: 1,
			want:  sample{ID: "x2", Name: "Gamma"},
		},
		{
			name:  "lenient numeric prefix",
			row:   []string{"x3", "Delta", "7th", "0.455x"},
			index: 2,
			want:  sample{ID: "x3", Name: "Delta", Week: 7, Score: 0.455},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Decode(tc.row, tc.index)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("decode mismatch: got=%+v want=%+v", got, tc.want)
			}
		})
	}
}

func TestSchema_DecodeAllSkipsHeaderAndHandlesEmpty(t *testing.T) {
	s := sampleSchema(t)

	if got := s.DecodeAll(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice for nil rows, got %#v", got)
	}
	if got := s.DecodeAll([][]string{{"id", "name"}}); len(got) != 0 {
		t.Fatalf("header-only table should be empty, got %d", len(got))
	}

	got := s.DecodeAll([][]string{
		{"id", "name", "week"},
		{"a", "A", "1"},
		{"", "B", "2"},
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[1].ID != "row_1" {
		t.Fatalf("expected index-derived id row_1, got %s", got[1].ID)
	}
}

func TestSchema_EncodeRoundTripsWritableColumns(t *testing.T) {
	s := sampleSchema(t)

	row := s.Encode(sample{ID: "x9", Name: "Zed", Week: 12, Score: 2.5, Note: "ignored"})
	want := []string{"x9", "Zed", "12", "2.5", "", ""}
	if !reflect.DeepEqual(row, want) {
		t.Fatalf("encode mismatch: got=%q want=%q", row, want)
	}
	if s.Width() != 6 {
		t.Fatalf("unexpected width %d", s.Width())
	}
}

func TestSchema_EncodeWritableDropsTrailingReadOnlyColumns(t *testing.T) {
	s := sampleSchema(t)

	row := s.EncodeWritable(sample{ID: "x9", Name: "Zed", Week: 12, Score: 2.5, Note: "ignored"})
	want := []string{"x9", "Zed", "12", "2.5"}
	if !reflect.DeepEqual(row, want) {
		t.Fatalf("encode mismatch: got=%q want=%q", row, want)
	}
}

func TestNewSchema_RejectsDuplicateColumns(t *testing.T) {
	_, err := NewSchema("broken",
		Text(1, "a", func(r *sample) *string { return &r.ID }),
		Text(1, "b", func(r *sample) *string { return &r.Name }),
	)
	if err == nil || !strings.Contains(err.Error(), "column 1") {
		t.Fatalf("expected duplicate column error, got %v", err)
	}
}

func TestNewSchema_RejectsNegativeColumn(t *testing.T) {
	_, err := NewSchema("broken", Text(-1, "a", func(r *sample) *string { return &r.ID }))
	if err == nil {
		t.Fatalf("expected negative column error")
	}
}

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		in      string
		wantInt int
		wantF   float64
		ok      bool
	}{
		{in: "42", wantInt: 42, wantF: 42, ok: true},
		{in: " -3.75 ", wantInt: -3, wantF: -3.75, ok: true},
		{in: ".5", wantInt: 0, wantF: 0.5, ok: true},
		{in: "", ok: false},
		{in: "abc", ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			f, ok := ParseFloatPrefix(tc.in)
			if ok != tc.ok || f != tc.wantF {
				t.Fatalf("float: got=(%v,%v) want=(%v,%v)", f, ok, tc.wantF, tc.ok)
			}
			if tc.in == ".5" {
				return
			}
			i, iok := ParseIntPrefix(tc.in)
			if iok != tc.ok || i != tc.wantInt {
				t.Fatalf("int: got=(%v,%v) want=(%v,%v)", i, iok, tc.wantInt, tc.ok)
			}
		})
	}
}
