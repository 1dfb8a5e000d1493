package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/dynasty-league/internal/domain/sheet"
)

// SheetStore is an in-process spreadsheet. Reads behave like the Sheets values
// API: trailing empty cells and trailing empty rows are omitted.
type SheetStore struct {
	mu      sync.RWMutex
	tabs    map[string][][]string
	clears  int
	updates int
}

func NewSheetStore(tabs map[string][][]string) *SheetStore {
	s := &SheetStore{tabs: make(map[string][][]string, len(tabs))}
	for name, rows := range tabs {
		s.tabs[name] = cloneRows(rows)
	}
	return s
}

func (s *SheetStore) Get(_ context.Context, rng string) ([][]string, error) {
	r, err := sheet.ParseRange(rng)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, ok := s.tabs[r.Tab]
	if !ok {
		return nil, fmt.Errorf("%w: %s", sheet.ErrTabNotFound, r.Tab)
	}

	first, last := rowBounds(r, len(rows))
	out := make([][]string, 0, max(0, last-first))
	for i := first; i < last; i++ {
		row := rows[i]
		var cells []string
		if r.StartCol < len(row) {
			cells = row[r.StartCol:min(len(row), r.EndCol+1)]
		}
		out = append(out, trimTrailing(append([]string(nil), cells...)))
	}
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (s *SheetStore) Clear(_ context.Context, rng string) error {
	r, err := sheet.ParseRange(rng)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, ok := s.tabs[r.Tab]
	if !ok {
		return fmt.Errorf("%w: %s", sheet.ErrTabNotFound, r.Tab)
	}
	s.clears++

	first, last := rowBounds(r, len(rows))
	for i := first; i < last; i++ {
		for c := r.StartCol; c <= r.EndCol && c < len(rows[i]); c++ {
			rows[i][c] = ""
		}
	}
	return nil
}

func (s *SheetStore) Update(_ context.Context, rng string, values [][]string) error {
	r, err := sheet.ParseRange(rng)
	if err != nil {
		return err
	}
	for i, row := range values {
		if len(row) > r.Width() {
			return fmt.Errorf("row %d has %d cells, range %s allows %d", i, len(row), rng, r.Width())
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, ok := s.tabs[r.Tab]
	if !ok {
		return fmt.Errorf("%w: %s", sheet.ErrTabNotFound, r.Tab)
	}
	s.updates++

	start := max(r.StartRow, 1) - 1
	for i, row := range values {
		target := start + i
		for len(rows) <= target {
			rows = append(rows, nil)
		}
		dst := rows[target]
		if need := r.StartCol + len(row); len(dst) < need {
			dst = append(dst, make([]string, need-len(dst))...)
		}
		copy(dst[r.StartCol:], row)
		rows[target] = dst
	}
	s.tabs[r.Tab] = rows
	return nil
}

// Tab returns a copy of every stored row of name, blanks included.
func (s *SheetStore) Tab(name string) ([][]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, ok := s.tabs[name]
	if !ok {
		return nil, false
	}
	return cloneRows(rows), true
}

// SetTab replaces a tab's contents.
func (s *SheetStore) SetTab(name string, rows [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabs[name] = cloneRows(rows)
}

// Writes reports how many clear and update calls have been applied.
func (s *SheetStore) Writes() (clears, updates int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clears, s.updates
}

func rowBounds(r sheet.Range, n int) (int, int) {
	first := 0
	if r.StartRow > 0 {
		first = r.StartRow - 1
	}
	last := n
	if r.EndRow > 0 && r.EndRow < last {
		last = r.EndRow
	}
	if first > last {
		first = last
	}
	return first, last
}

func trimTrailing(row []string) []string {
	end := len(row)
	for end > 0 && row[end-1] == "" {
		end--
	}
	return row[:end]
}

func cloneRows(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, append([]string(nil), row...))
	}
	return out
}
