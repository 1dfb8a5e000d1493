package spreadsheet

import (
	"github.com/riskibarqy/dynasty-league/internal/domain/selection"
	"github.com/riskibarqy/dynasty-league/internal/platform/sheetrow"
)

var selectionSchema = sheetrow.MustSchema("selections", selectionFields()...)

func selectionFields() []sheetrow.Field[selection.Selection] {
	type ref = func(*selection.Selection) *string
	text := func(col int, name string, r ref) sheetrow.Field[selection.Selection] {
		return sheetrow.Text(col, name, r)
	}
	stat := func(i int, name string, r func(*selection.Stats) *float64) sheetrow.Field[selection.Selection] {
		return sheetrow.ReadOnly(sheetrow.Float(selection.ColStatsStart+i, name,
			func(s *selection.Selection) *float64 { return r(&s.Stats) }))
	}

	return []sheetrow.Field[selection.Selection]{
		text(selection.ColWeek, "week", func(s *selection.Selection) *string { return &s.Week }),
		text(selection.ColMatchupID, "matchupId", func(s *selection.Selection) *string { return &s.MatchupID }),
		text(selection.ColTeamID, "teamId", func(s *selection.Selection) *string { return &s.TeamID }),
		text(selection.ColTeamName, "teamName", func(s *selection.Selection) *string { return &s.TeamName }),
		text(selection.ColOpponentTeamName, "opponentTeamName", func(s *selection.Selection) *string { return &s.OpponentTeamName }),
		text(selection.ColPosition, "position", func(s *selection.Selection) *string { return &s.Position }),
		text(selection.ColPlayerID, "playerId", func(s *selection.Selection) *string { return &s.PlayerID }),
		text(selection.ColPlayerName, "playerName", func(s *selection.Selection) *string { return &s.PlayerName }),
		text(selection.ColNBATeam, "nbaTeam", func(s *selection.Selection) *string { return &s.NBATeam }),
		text(selection.ColGameDate, "gameDate", func(s *selection.Selection) *string { return &s.GameDate }),
		text(selection.ColSelectedGame, "selectedGame", func(s *selection.Selection) *string { return &s.SelectedGame }),
		text(selection.ColSubmitted, "submittedDateTime", func(s *selection.Selection) *string { return &s.SubmittedDateTime }),
		sheetrow.ReadOnly(text(selection.ColDateCode, "dateCode", func(s *selection.Selection) *string { return &s.DateCode })),
		sheetrow.ReadOnly(text(selection.ColTime, "time", func(s *selection.Selection) *string { return &s.Time })),
		stat(0, "min", func(x *selection.Stats) *float64 { return &x.Min }),
		stat(1, "pts", func(x *selection.Stats) *float64 { return &x.PTS }),
		stat(2, "threePm", func(x *selection.Stats) *float64 { return &x.ThreePM }),
		stat(3, "ast", func(x *selection.Stats) *float64 { return &x.AST }),
		stat(4, "stl", func(x *selection.Stats) *float64 { return &x.STL }),
		stat(5, "blk", func(x *selection.Stats) *float64 { return &x.BLK }),
		stat(6, "orb", func(x *selection.Stats) *float64 { return &x.ORB }),
		stat(7, "drb", func(x *selection.Stats) *float64 { return &x.DRB }),
		stat(8, "fgm", func(x *selection.Stats) *float64 { return &x.FGM }),
		stat(9, "fga", func(x *selection.Stats) *float64 { return &x.FGA }),
		stat(10, "fgPercent", func(x *selection.Stats) *float64 { return &x.FGPercent }),
		stat(11, "ftm", func(x *selection.Stats) *float64 { return &x.FTM }),
		stat(12, "fta", func(x *selection.Stats) *float64 { return &x.FTA }),
		stat(13, "ftPercent", func(x *selection.Stats) *float64 { return &x.FTPercent }),
	}
}
