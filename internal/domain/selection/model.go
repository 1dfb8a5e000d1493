package selection

import (
	"context"

	"github.com/riskibarqy/dynasty-league/internal/domain/sheet"
)

// Selection is one slot of a team's weekly lineup. Stats are filled by the
// upstream stats feed after the game is played and are read-only here.
type Selection struct {
	Week              string
	MatchupID         string
	TeamID            string
	TeamName          string
	OpponentTeamName  string
	Position          string
	PlayerID          string
	PlayerName        string
	NBATeam           string
	GameDate          string
	SelectedGame      string
	SubmittedDateTime string
	DateCode          string
	Time              string
	Stats             Stats
	PhotoURL          string
}

type Stats struct {
	Min       float64
	PTS       float64
	ThreePM   float64
	AST       float64
	STL       float64
	BLK       float64
	ORB       float64
	DRB       float64
	FGM       float64
	FGA       float64
	FGPercent float64
	FTM       float64
	FTA       float64
	FTPercent float64
}

// Filter matches raw key cells exactly. Empty fields match everything.
type Filter struct {
	Week      string
	TeamID    string
	MatchupID string
}

func (f Filter) MatchesRow(row []string) bool {
	if f.Week != "" && cell(row, ColWeek) != f.Week {
		return false
	}
	if f.TeamID != "" && cell(row, ColTeamID) != f.TeamID {
		return false
	}
	if f.MatchupID != "" && cell(row, ColMatchupID) != f.MatchupID {
		return false
	}
	return true
}

// Repository reads and rewrites the shared selections tab.
type Repository interface {
	// Table reads the write range in full, header included.
	Table(ctx context.Context) (sheet.Table, error)
	// Replace clears the write range and writes table back in one pass.
	Replace(ctx context.Context, table sheet.Table) error
	// List reads the stats range and decodes rows matching filter.
	List(ctx context.Context, filter Filter) ([]Selection, error)
	// EncodeRows renders records in the tab's column layout, written columns
	// only.
	EncodeRows(records []Selection) [][]string
}
