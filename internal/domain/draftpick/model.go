package draftpick

import "context"

// FirstYear is the earliest draft tracked in the picks tab.
const FirstYear = 2026

// Years lists the draft years in column order.
var Years = []int{2026, 2027, 2028, 2029, 2030, 2031}

// Holding is the set of picks a team owns, keyed by draft year.
type Holding struct {
	TeamID string
	Picks  map[int]string
	Notes  string
}

type Repository interface {
	List(ctx context.Context) ([]Holding, error)
}
