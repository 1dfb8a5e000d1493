package spreadsheet

import (
	"strconv"

	"github.com/riskibarqy/dynasty-league/internal/domain/draftpick"
	"github.com/riskibarqy/dynasty-league/internal/domain/matchup"
	"github.com/riskibarqy/dynasty-league/internal/domain/schedule"
	"github.com/riskibarqy/dynasty-league/internal/domain/standing"
	"github.com/riskibarqy/dynasty-league/internal/domain/weekdate"
	"github.com/riskibarqy/dynasty-league/internal/platform/sheetrow"
)

const (
	colTeam1Totals = 6
	colTeam2Totals = 21
)

var matchupSchema = sheetrow.MustSchema("matchups", matchupFields()...)

func matchupFields() []sheetrow.Field[matchup.Matchup] {
	team1 := func(m *matchup.Matchup) *matchup.Side { return &m.Team1 }
	team2 := func(m *matchup.Matchup) *matchup.Side { return &m.Team2 }

	fields := []sheetrow.Field[matchup.Matchup]{
		sheetrow.Int(0, "week", func(m *matchup.Matchup) *int { return &m.Week }),
		sheetrow.TextOr(1, "matchupId", func(m *matchup.Matchup) *string { return &m.ID }, sheetrow.IndexedID("matchup")),
		sheetrow.Text(2, "team1Id", func(m *matchup.Matchup) *string { return &m.Team1.TeamID }),
		sheetrow.Text(3, "team1Name", func(m *matchup.Matchup) *string { return &m.Team1.TeamName }),
		sheetrow.Text(4, "team2Id", func(m *matchup.Matchup) *string { return &m.Team2.TeamID }),
		sheetrow.Text(5, "team2Name", func(m *matchup.Matchup) *string { return &m.Team2.TeamName }),
	}
	fields = append(fields, totalsFields("team1", colTeam1Totals, team1)...)
	fields = append(fields, totalsFields("team2", colTeam2Totals, team2)...)
	return fields
}

func totalsFields(prefix string, offset int, side func(*matchup.Matchup) *matchup.Side) []sheetrow.Field[matchup.Matchup] {
	t := func(m *matchup.Matchup) *matchup.Totals { return &side(m).Totals }
	intField := func(i int, name string, ref func(*matchup.Totals) *int) sheetrow.Field[matchup.Matchup] {
		return sheetrow.Int(offset+i, prefix+name, func(m *matchup.Matchup) *int { return ref(t(m)) })
	}
	floatField := func(i int, name string, ref func(*matchup.Totals) *float64) sheetrow.Field[matchup.Matchup] {
		return sheetrow.Float(offset+i, prefix+name, func(m *matchup.Matchup) *float64 { return ref(t(m)) })
	}

	return []sheetrow.Field[matchup.Matchup]{
		floatField(0, "Score", func(x *matchup.Totals) *float64 { return &x.Score }),
		intField(1, "GP", func(x *matchup.Totals) *int { return &x.GP }),
		intField(2, "PTS", func(x *matchup.Totals) *int { return &x.PTS }),
		intField(3, "3PM", func(x *matchup.Totals) *int { return &x.ThreePM }),
		intField(4, "AST", func(x *matchup.Totals) *int { return &x.AST }),
		intField(5, "STL", func(x *matchup.Totals) *int { return &x.STL }),
		intField(6, "BLK", func(x *matchup.Totals) *int { return &x.BLK }),
		intField(7, "ORB", func(x *matchup.Totals) *int { return &x.ORB }),
		intField(8, "DRB", func(x *matchup.Totals) *int { return &x.DRB }),
		intField(9, "FGM", func(x *matchup.Totals) *int { return &x.FGM }),
		intField(10, "FGA", func(x *matchup.Totals) *int { return &x.FGA }),
		floatField(11, "FGPercent", func(x *matchup.Totals) *float64 { return &x.FGPercent }),
		intField(12, "FTM", func(x *matchup.Totals) *int { return &x.FTM }),
		intField(13, "FTA", func(x *matchup.Totals) *int { return &x.FTA }),
		floatField(14, "FTPercent", func(x *matchup.Totals) *float64 { return &x.FTPercent }),
	}
}

var gameSchema = sheetrow.MustSchema("schedule",
	sheetrow.Int(0, "week", func(g *schedule.Game) *int { return &g.Week }),
	sheetrow.Text(1, "nbaTeam", func(g *schedule.Game) *string { return &g.NBATeam }),
	sheetrow.Text(2, "date", func(g *schedule.Game) *string { return &g.Date }),
	sheetrow.Text(3, "opponent", func(g *schedule.Game) *string { return &g.Opponent }),
	sheetrow.Text(4, "homeAway", func(g *schedule.Game) *string { return &g.HomeAway }),
)

var standingSchema = sheetrow.MustSchema("standings",
	sheetrow.Text(0, "teamId", func(s *standing.Standing) *string { return &s.TeamID }),
	sheetrow.Text(1, "teamName", func(s *standing.Standing) *string { return &s.TeamName }),
	sheetrow.Text(2, "conference", func(s *standing.Standing) *string { return &s.Conference }),
	sheetrow.Int(3, "position", func(s *standing.Standing) *int { return &s.Position }),
	sheetrow.Int(4, "wins", func(s *standing.Standing) *int { return &s.Wins }),
	sheetrow.Int(5, "losses", func(s *standing.Standing) *int { return &s.Losses }),
	sheetrow.Int(6, "ties", func(s *standing.Standing) *int { return &s.Ties }),
	sheetrow.Text(7, "record", func(s *standing.Standing) *string { return &s.Record }),
	sheetrow.Float(8, "pointsFor", func(s *standing.Standing) *float64 { return &s.PointsFor }),
	sheetrow.Float(9, "pointsAgainst", func(s *standing.Standing) *float64 { return &s.PointsAgainst }),
	sheetrow.Float(10, "percentage", func(s *standing.Standing) *float64 { return &s.Percentage }),
)

var weekDateSchema = sheetrow.MustSchema("weekdates",
	sheetrow.Int(0, "week", func(w *weekdate.WeekDate) *int { return &w.Week }),
	sheetrow.Trimmed(1, "startDate", func(w *weekdate.WeekDate) *string { return &w.StartDate }),
	sheetrow.Trimmed(2, "finishDate", func(w *weekdate.WeekDate) *string { return &w.FinishDate }),
)

var todaySchema = sheetrow.MustSchema("todaysdate",
	sheetrow.Trimmed(0, "date", func(t *weekdate.Today) *string { return &t.Date }),
	sheetrow.Trimmed(1, "time", func(t *weekdate.Today) *string { return &t.Time }),
)

var draftPickSchema = sheetrow.MustSchema("draftpicks", draftPickFields()...)

func draftPickFields() []sheetrow.Field[draftpick.Holding] {
	fields := []sheetrow.Field[draftpick.Holding]{
		sheetrow.Trimmed(0, "teamId", func(h *draftpick.Holding) *string { return &h.TeamID }),
		sheetrow.Text(len(draftpick.Years)+1, "notes", func(h *draftpick.Holding) *string { return &h.Notes }),
	}
	for i, year := range draftpick.Years {
		fields = append(fields, sheetrow.Custom(i+1, "picks"+strconv.Itoa(year),
			func(cell string, h *draftpick.Holding) {
				if h.Picks == nil {
					h.Picks = make(map[int]string, len(draftpick.Years))
				}
				h.Picks[year] = cell
			},
			func(h *draftpick.Holding) string { return h.Picks[year] },
		))
	}
	return fields
}
