package spreadsheet

import (
	"context"
	"fmt"

	"github.com/riskibarqy/dynasty-league/internal/domain/selection"
	"github.com/riskibarqy/dynasty-league/internal/domain/sheet"
)

// SelectionRepository writes lineups to one range and reads scored selections
// from another. Both share the selections column layout.
type SelectionRepository struct {
	store    sheet.Store
	writeRng string
	readRng  string
}

func NewSelectionRepository(store sheet.Store, writeRng, readRng string) *SelectionRepository {
	return &SelectionRepository{store: store, writeRng: writeRng, readRng: readRng}
}

func (r *SelectionRepository) Table(ctx context.Context) (sheet.Table, error) {
	rows, err := sheet.ReadData(ctx, r.store, r.writeRng)
	if err != nil {
		return sheet.Table{}, fmt.Errorf("read selections: %w", err)
	}
	return sheet.NewTable(rows), nil
}

// Replace clears the write range and rewrites it. A failure between the two
// calls leaves the range empty.
func (r *SelectionRepository) Replace(ctx context.Context, table sheet.Table) error {
	if err := r.store.Clear(ctx, r.writeRng); err != nil {
		return fmt.Errorf("clear selections: %w", err)
	}
	if err := r.store.Update(ctx, r.writeRng, table.Values()); err != nil {
		return fmt.Errorf("update selections: %w", err)
	}
	return nil
}

func (r *SelectionRepository) EncodeRows(records []selection.Selection) [][]string {
	out := make([][]string, 0, len(records))
	for _, rec := range records {
		out = append(out, selectionSchema.EncodeWritable(rec))
	}
	return out
}

func (r *SelectionRepository) List(ctx context.Context, filter selection.Filter) ([]selection.Selection, error) {
	rows, err := sheet.ReadData(ctx, r.store, r.readRng)
	if err != nil {
		return nil, fmt.Errorf("read player game stats: %w", err)
	}
	if len(rows) < 2 {
		return []selection.Selection{}, nil
	}

	out := make([]selection.Selection, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if !filter.MatchesRow(row) {
			continue
		}
		out = append(out, selectionSchema.Decode(row, i))
	}
	return out, nil
}
