package player

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/dynasty-league/internal/platform/sheetrow"
)

// salarySentinels are contract-status markers kept verbatim instead of a figure.
// EXT/UFA must be checked before UFA.
var salarySentinels = []string{"EXT/UFA", "RFA", "UFA", "TO"}

// Salary is either a numeric amount in millions, a contract-status sentinel,
// or empty. Empty means no usable data and is distinct from a zero salary.
type Salary struct {
	amount   float64
	sentinel string
	numeric  bool
}

func Amount(v float64) Salary {
	return Salary{amount: v, numeric: true}
}

func Sentinel(s string) Salary {
	return Salary{sentinel: s}
}

// ParseSalary reads a salary cell. Sentinels match case-sensitively and are
// preserved verbatim; other values drop "$", "m", "M", "," and whitespace
// before a lenient numeric parse.
func ParseSalary(raw string) Salary {
	if strings.TrimSpace(raw) == "" {
		return Salary{}
	}
	for _, marker := range salarySentinels {
		if strings.Contains(raw, marker) {
			return Sentinel(raw)
		}
	}

	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '$', 'm', 'M', ',', ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, raw)
	v, ok := sheetrow.ParseFloatPrefix(cleaned)
	if !ok {
		return Salary{}
	}
	return Amount(v)
}

// Number returns the numeric amount and whether one is present.
func (s Salary) Number() (float64, bool) {
	return s.amount, s.numeric
}

// Value is the amount counted in cap arithmetic; sentinels and empty are 0.
func (s Salary) Value() float64 {
	if !s.numeric {
		return 0
	}
	return s.amount
}

func (s Salary) Sentinel() string {
	return s.sentinel
}

func (s Salary) IsEmpty() bool {
	return !s.numeric && s.sentinel == ""
}

// String renders the cell form: the number, the sentinel, or "".
func (s Salary) String() string {
	switch {
	case s.numeric:
		return strconv.FormatFloat(s.amount, 'f', -1, 64)
	default:
		return s.sentinel
	}
}
