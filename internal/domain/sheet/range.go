package sheet

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a parsed A1 reference such as "Players!A:BB" or "TodaysDate!A2:B2".
// Columns are zero-based and inclusive. Rows are one-based and inclusive; a
// zero row bound is open.
type Range struct {
	Tab      string
	StartCol int
	EndCol   int
	StartRow int
	EndRow   int
}

func ParseRange(raw string) (Range, error) {
	raw = strings.TrimSpace(raw)
	sep := strings.LastIndex(raw, "!")
	if sep <= 0 || sep == len(raw)-1 {
		return Range{}, fmt.Errorf("invalid range %q: expected Tab!Cells", raw)
	}

	tab := raw[:sep]
	if len(tab) >= 2 && strings.HasPrefix(tab, "'") && strings.HasSuffix(tab, "'") {
		tab = strings.ReplaceAll(tab[1:len(tab)-1], "''", "'")
	}

	cells := strings.Split(raw[sep+1:], ":")
	if len(cells) > 2 {
		return Range{}, fmt.Errorf("invalid range %q: too many ':'", raw)
	}
	startCol, startRow, err := parseCell(cells[0])
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", raw, err)
	}
	endCol, endRow := startCol, startRow
	if len(cells) == 2 {
		endCol, endRow, err = parseCell(cells[1])
		if err != nil {
			return Range{}, fmt.Errorf("invalid range %q: %w", raw, err)
		}
	}
	if endCol < startCol {
		return Range{}, fmt.Errorf("invalid range %q: end column before start", raw)
	}

	return Range{Tab: tab, StartCol: startCol, EndCol: endCol, StartRow: startRow, EndRow: endRow}, nil
}

// Width is the number of columns the range spans.
func (r Range) Width() int {
	return r.EndCol - r.StartCol + 1
}

func (r Range) String() string {
	tab := r.Tab
	if strings.ContainsAny(tab, " '!") {
		tab = "'" + strings.ReplaceAll(tab, "'", "''") + "'"
	}
	start := ColumnName(r.StartCol)
	end := ColumnName(r.EndCol)
	if r.StartRow > 0 {
		start += strconv.Itoa(r.StartRow)
	}
	if r.EndRow > 0 {
		end += strconv.Itoa(r.EndRow)
	}
	return tab + "!" + start + ":" + end
}

// ColumnIndex converts "A" to 0 and "BB" to 53.
func ColumnIndex(letters string) (int, error) {
	letters = strings.ToUpper(strings.TrimSpace(letters))
	if letters == "" {
		return 0, fmt.Errorf("empty column")
	}
	n := 0
	for _, ch := range letters {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("invalid column %q", letters)
		}
		n = n*26 + int(ch-'A'+1)
	}
	return n - 1, nil
}

// ColumnName converts 0 to "A" and 53 to "BB".
func ColumnName(index int) string {
	n := index + 1
	var out []byte
	for n > 0 {
		n--
		out = append([]byte{byte('A' + n%26)}, out...)
		n /= 26
	}
	return string(out)
}

func parseCell(cell string) (int, int, error) {
	cell = strings.TrimSpace(cell)
	split := len(cell)
	for i, ch := range cell {
		if ch >= '0' && ch <= '9' {
			split = i
			break
		}
	}
	col, err := ColumnIndex(cell[:split])
	if err != nil {
		return 0, 0, err
	}
	row := 0
	if split < len(cell) {
		row, err = strconv.Atoi(cell[split:])
		if err != nil || row < 1 {
			return 0, 0, fmt.Errorf("invalid row in %q", cell)
		}
	}
	return col, row, nil
}
