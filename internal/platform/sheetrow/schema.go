// Package sheetrow maps positional spreadsheet rows to typed records.
//
// A Schema is an ordered list of fields. Each field owns one column index and
// knows how to decode its cell into the record and how to encode it back, so a
// column shift is a one-line change in the schema rather than scattered index
// arithmetic.
package sheetrow

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Field binds one column of a row to part of a record of type T.
type Field[T any] struct {
	Column int
	Name   string

	decode func(cell string, index int, rec *T)
	encode func(rec *T) string
}

// Schema is an immutable, validated set of fields.
type Schema[T any] struct {
	name     string
	fields   []Field[T]
	width    int
	writable int
}

// NewSchema validates that every column index is non-negative and unique.
func NewSchema[T any](name string, fields ...Field[T]) (*Schema[T], error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("schema %s: at least one field is required", name)
	}

	ordered := append([]Field[T](nil), fields...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Column < ordered[j].Column })

	seen := make(map[int]string, len(ordered))
	writable := 0
	for _, f := range ordered {
		if f.Column < 0 {
			return nil, fmt.Errorf("schema %s: field %s has negative column %d", name, f.Name, f.Column)
		}
		if f.decode == nil && f.encode == nil {
			return nil, fmt.Errorf("schema %s: field %s has no codec", name, f.Name)
		}
		if other, dup := seen[f.Column]; dup {
			return nil, fmt.Errorf("schema %s: column %d claimed by %s and %s", name, f.Column, other, f.Name)
		}
		seen[f.Column] = f.Name
		if f.encode != nil {
			writable = f.Column + 1
		}
	}

	return &Schema[T]{
		name:     name,
		fields:   ordered,
		width:    ordered[len(ordered)-1].Column + 1,
		writable: writable,
	}, nil
}

// MustSchema is NewSchema for package-level schema definitions.
func MustSchema[T any](name string, fields ...Field[T]) *Schema[T] {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema[T]) Name() string { return s.name }

// Width is the number of cells Encode produces.
func (s *Schema[T]) Width() int { return s.width }

// Decode maps one data row. index is the zero-based data-row position (header
// excluded) and feeds index-derived defaults such as "player_3".
func (s *Schema[T]) Decode(row []string, index int) T {
	var rec T
	for _, f := range s.fields {
		if f.decode == nil {
			continue
		}
		f.decode(Cell(row, f.Column), index, &rec)
	}
	return rec
}

// DecodeAll skips the header row. Fewer than two rows yields an empty,
// non-nil slice.
func (s *Schema[T]) DecodeAll(rows [][]string) []T {
	if len(rows) < 2 {
		return []T{}
	}
	out := make([]T, 0, len(rows)-1)
	for i, row := range rows[1:] {
		out = append(out, s.Decode(row, i))
	}
	return out
}

// Encode renders rec as a row of Width cells. Columns without an encoder are
// left empty.
func (s *Schema[T]) Encode(rec T) []string {
	row := make([]string, s.width)
	for _, f := range s.fields {
		if f.encode == nil {
			continue
		}
		row[f.Column] = f.encode(&rec)
	}
	return row
}

// EncodeWritable is Encode cut after the last column that has an encoder, so
// read-only trailing columns are not part of the written row.
func (s *Schema[T]) EncodeWritable(rec T) []string {
	return s.Encode(rec)[:s.writable]
}

// Cell returns row[i] or "" when the row is too short.
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// Text maps a string cell verbatim.
func Text[T any](column int, name string, ref func(*T) *string) Field[T] {
	return Field[T]{
		Column: column,
		Name:   name,
		decode: func(cell string, _ int, rec *T) { *ref(rec) = cell },
		encode: func(rec *T) string { return *ref(rec) },
	}
}

// Trimmed maps a string cell with surrounding whitespace removed.
func Trimmed[T any](column int, name string, ref func(*T) *string) Field[T] {
	return Field[T]{
		Column: column,
		Name:   name,
		decode: func(cell string, _ int, rec *T) { *ref(rec) = strings.TrimSpace(cell) },
		encode: func(rec *T) string { return *ref(rec) },
	}
}

// TextOr maps a string cell and falls back to fallback(index) when empty.
func TextOr[T any](column int, name string, ref func(*T) *string, fallback func(index int) string) Field[T] {
	return Field[T]{
		Column: column,
		Name:   name,
		decode: func(cell string, index int, rec *T) {
			if cell == "" {
				cell = fallback(index)
			}
			*ref(rec) = cell
		},
		encode: func(rec *T) string { return *ref(rec) },
	}
}

// IndexedID is the fallback used for identifier columns, e.g. "player_0".
func IndexedID(prefix string) func(int) string {
	return func(index int) string { return prefix + "_" + strconv.Itoa(index) }
}

// Int maps a whole-number cell with lenient parsing and a zero default.
func Int[T any](column int, name string, ref func(*T) *int) Field[T] {
	return Field[T]{
		Column: column,
		Name:   name,
		decode: func(cell string, _ int, rec *T) {
			v, _ := ParseIntPrefix(cell)
			*ref(rec) = v
		},
		encode: func(rec *T) string { return strconv.Itoa(*ref(rec)) },
	}
}

// Float maps a decimal cell with lenient parsing and a zero default.
func Float[T any](column int, name string, ref func(*T) *float64) Field[T] {
	return Field[T]{
		Column: column,
		Name:   name,
		decode: func(cell string, _ int, rec *T) {
			v, _ := ParseFloatPrefix(cell)
			*ref(rec) = v
		},
		encode: func(rec *T) string { return strconv.FormatFloat(*ref(rec), 'f', -1, 64) },
	}
}

// Custom maps a cell through caller-provided codecs. Either may be nil.
func Custom[T any](column int, name string, decode func(cell string, rec *T), encode func(rec *T) string) Field[T] {
	f := Field[T]{Column: column, Name: name, encode: encode}
	if decode != nil {
		f.decode = func(cell string, _ int, rec *T) { decode(cell, rec) }
	}
	return f
}

// ReadOnly drops the encoder of f so Encode leaves its column empty.
func ReadOnly[T any](f Field[T]) Field[T] {
	f.encode = nil
	return f
}
