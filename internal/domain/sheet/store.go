package sheet

import (
	"context"
	"errors"
)

// ErrTabNotFound reports a range whose tab does not exist in the spreadsheet.
var ErrTabNotFound = errors.New("sheet tab not found")

// Store is a range-addressed spreadsheet. Rows are ordered cell strings and the
// column position is the schema. Trailing empty cells may be omitted.
type Store interface {
	Get(ctx context.Context, rng string) ([][]string, error)
	Clear(ctx context.Context, rng string) error
	Update(ctx context.Context, rng string, rows [][]string) error
}

// ReadData reads rng and treats a missing tab as an empty table.
func ReadData(ctx context.Context, store Store, rng string) ([][]string, error) {
	rows, err := store.Get(ctx, rng)
	if errors.Is(err, ErrTabNotFound) {
		return nil, nil
	}
	return rows, err
}

// Table is a full read of a range: the header row plus data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable splits raw rows into header and data. The first row is always the
// header, blank or not.
func NewTable(raw [][]string) Table {
	if len(raw) == 0 {
		return Table{Header: []string{}}
	}
	return Table{
		Header: append([]string{}, raw[0]...),
		Rows:   cloneRows(raw[1:]),
	}
}

// Values renders the table back to raw rows. Row 1 is the header slot and is
// written as an empty row when the table has no header, so data never lands
// where readers expect column names.
func (t Table) Values() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, append([]string{}, t.Header...))
	return append(out, cloneRows(t.Rows)...)
}

func (t Table) Clone() Table {
	return Table{
		Header: append([]string(nil), t.Header...),
		Rows:   cloneRows(t.Rows),
	}
}

func cloneRows(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, append([]string(nil), row...))
	}
	return out
}
