package matchup

import "context"

// Matchup is one head-to-head pairing for a week, with totals aggregated upstream.
type Matchup struct {
	Week  int
	ID    string
	Team1 Side
	Team2 Side
}

type Side struct {
	TeamID   string
	TeamName string
	Totals   Totals
}

// Totals are cumulative box-score figures for one side of a matchup.
type Totals struct {
	Score     float64
	GP        int
	PTS       int
	ThreePM   int
	AST       int
	STL       int
	BLK       int
	ORB       int
	DRB       int
	FGM       int
	FGA       int
	FGPercent float64
	FTM       int
	FTA       int
	FTPercent float64
}

// Involves reports whether teamID plays in the matchup.
func (m Matchup) Involves(teamID string) bool {
	return teamID != "" && (m.Team1.TeamID == teamID || m.Team2.TeamID == teamID)
}

// Opponent returns the side facing teamID.
func (m Matchup) Opponent(teamID string) Side {
	if m.Team1.TeamID == teamID {
		return m.Team2
	}
	return m.Team1
}

type Repository interface {
	List(ctx context.Context) ([]Matchup, error)
}
