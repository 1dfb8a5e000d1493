package schedule

import "context"

// Game is one NBA fixture a selected player may be scored on.
type Game struct {
	Week     int
	NBATeam  string
	Date     string
	Opponent string
	HomeAway string
}

// ID is the composite key the lineup builder stores for a chosen game.
func (g Game) ID() string {
	return GameID(g.NBATeam, g.Date)
}

func GameID(nbaTeam, date string) string {
	return nbaTeam + "-" + date
}

// Display is the selected-game label written to the selections tab.
func (g Game) Display() string {
	if g.HomeAway == "" {
		return g.Opponent
	}
	return g.HomeAway + " " + g.Opponent
}

type Repository interface {
	List(ctx context.Context) ([]Game, error)
}
