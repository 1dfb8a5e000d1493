package audit

import (
	"context"
	"time"
)

type Kind string

const (
	KindSubmit Kind = "submit"
	KindEdit   Kind = "edit"
)

// Entry records one accepted write to the selections tab.
type Entry struct {
	ID          string
	Kind        Kind
	Week        string
	TeamID      string
	TeamName    string
	MatchupID   string
	Position    string
	ActorTeamID string
	RowCount    int
	Changes     map[string]string
	CreatedAt   time.Time
}

// Filter narrows a listing. Zero values match everything.
type Filter struct {
	Week   string
	TeamID string
	Limit  int
}

func (f Filter) Matches(e Entry) bool {
	if f.Week != "" && e.Week != f.Week {
		return false
	}
	if f.TeamID != "" && e.TeamID != f.TeamID {
		return false
	}
	return true
}

type Repository interface {
	Create(ctx context.Context, entry Entry) error
	List(ctx context.Context, filter Filter) ([]Entry, error)
}
