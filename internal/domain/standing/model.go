package standing

import "context"

// PlayoffLine is the last position shown in the standings table.
const PlayoffLine = 7

type Standing struct {
	TeamID        string
	TeamName      string
	Conference    string
	Position      int
	Wins          int
	Losses        int
	Ties          int
	Record        string
	PointsFor     float64
	PointsAgainst float64
	Percentage    float64
}

// Ranked reports whether the row belongs in the displayed table.
func (s Standing) Ranked() bool {
	return s.TeamID != "" && s.Position > 0 && s.Position <= PlayoffLine
}

type Repository interface {
	List(ctx context.Context) ([]Standing, error)
}
