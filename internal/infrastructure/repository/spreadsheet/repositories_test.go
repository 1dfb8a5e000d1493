package spreadsheet

import (
	"context"
	"reflect"
	"testing"

	"github.com/riskibarqy/dynasty-league/internal/domain/player"
	"github.com/riskibarqy/dynasty-league/internal/domain/selection"
	"github.com/riskibarqy/dynasty-league/internal/infrastructure/repository/memory"
)

func playerRow(cells map[int]string) []string {
	row := make([]string, 54)
	for i, v := range cells {
		row[i] = v
	}
	return row
}

func TestPlayerRepository_DecodesRowMapperRules(t *testing.T) {
	store := memory.NewSheetStore(map[string][][]string{
		"Players": {
			{"header"},
			playerRow(map[int]string{0: "P1", 1: "Avery", 2: "T001", 4: "dev", 6: "G", 8: "24yo", 29: "$3.1m", 30: "RFA", 33: "$12.5m", 34: "TO", 35: "UFA", 37: "n/a", 53: "https://img/p1.png"}),
			{"", "Unnamed", "T002", "T002", "IR"},
		},
	})
	repo := NewPlayerRepository(store, "Players!A:BB")

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("players=%d want 2", len(got))
	}

	p := got[0]
	if p.RosterStatus != player.StatusDevelopment || p.Age != 24 || p.Photo != "https://img/p1.png" {
		t.Fatalf("unexpected player: %+v", p)
	}
	if v, ok := p.SalaryFor("25-26").Number(); !ok || v != 12.5 {
		t.Fatalf("salary25_26=(%v,%v)", v, ok)
	}
	if p.Contracts["25-26"].Option != "TO" {
		t.Fatalf("option25_26=%q", p.Contracts["25-26"].Option)
	}
	if p.SalaryFor("26-27").Sentinel() != "UFA" {
		t.Fatalf("salary26_27=%+v", p.SalaryFor("26-27"))
	}
	if !p.SalaryFor("27-28").IsEmpty() {
		t.Fatalf("unparseable salary should be empty")
	}
	if p.LegacySalaries["21-22"] != 3.1 || p.LegacySalaries["22-23"] != 0 {
		t.Fatalf("legacy salaries=%v", p.LegacySalaries)
	}

	short := got[1]
	if short.ID != "player_1" || short.RosterStatus != player.StatusInjury || short.Age != 0 {
		t.Fatalf("unexpected short row: %+v", short)
	}
	if !short.SalaryFor("25-26").IsEmpty() {
		t.Fatalf("missing salary should be empty")
	}
}

func TestRepositories_EmptyTabsYieldEmptySlices(t *testing.T) {
	store := memory.NewSheetStore(map[string][][]string{
		"Teams":     {{"TeamID"}},
		"Matchups":  {},
		"Standings": {{"TeamID"}},
	})
	ctx := context.Background()

	teams, err := NewTeamRepository(store, "Teams!A:Z").List(ctx)
	if err != nil || teams == nil || len(teams) != 0 {
		t.Fatalf("teams=%v err=%v", teams, err)
	}
	matchups, err := NewMatchupRepository(store, "Matchups!A:AJ").List(ctx)
	if err != nil || matchups == nil || len(matchups) != 0 {
		t.Fatalf("matchups=%v err=%v", matchups, err)
	}
	games, err := NewScheduleRepository(store, "Schedule!A:E").List(ctx)
	if err != nil || games == nil || len(games) != 0 {
		t.Fatalf("missing tab should be empty: games=%v err=%v", games, err)
	}
}

func TestTeamRepository_DefaultsAndTrims(t *testing.T) {
	store := memory.NewSheetStore(map[string][][]string{
		"Teams": {
			{"TeamID", "TeamName"},
			{"", "Hawks", "h@x", "pw", "  logo.png  ", " word.png"},
		},
	})

	got, err := NewTeamRepository(store, "Teams!A:Z").List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got[0].ID != "team_0" || got[0].MainLogo != "logo.png" || got[0].WordLogo != "word.png" {
		t.Fatalf("unexpected team: %+v", got[0])
	}
}

func TestMatchupRepository_DecodesBothSides(t *testing.T) {
	row := make([]string, 36)
	copy(row, []string{"2", "", "T001", "Hawks", "T002", "Goats"})
	row[6], row[7], row[17] = "101.5", "9", "0.475"
	row[21], row[35] = "99", "0.8x"

	store := memory.NewSheetStore(map[string][][]string{"Matchups": {{"h"}, row}})
	got, err := NewMatchupRepository(store, "Matchups!A:AJ").List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	m := got[0]
	if m.Week != 2 || m.ID != "matchup_0" || m.Team1.Totals.Score != 101.5 || m.Team1.Totals.GP != 9 {
		t.Fatalf("unexpected matchup: %+v", m)
	}
	if m.Team1.Totals.FGPercent != 0.475 || m.Team2.Totals.Score != 99 || m.Team2.Totals.FTPercent != 0.8 {
		t.Fatalf("unexpected totals: %+v / %+v", m.Team1.Totals, m.Team2.Totals)
	}
}

func TestSelectionRepository_ListFiltersAndMapsStats(t *testing.T) {
	scored := []string{"3", "M1", "T001", "Hawks", "Goats", "Guard 1", "P1", "Avery", "BOS", "04/11/2025", "vs NYK", "ts", "D1", "19:30", "34", "28", "4", "7", "2", "1", "0", "5", "10", "18", "0.556", "4", "5", "0.8"}
	store := memory.NewSheetStore(map[string][][]string{
		"PlayerGameStats": {
			{"header"},
			scored,
			{"3", "M1", "T002", "Goats", "Hawks", "Guard 1", "P9"},
			{"4", "M2", "T001", "Hawks", "Suns", "Guard 1", "P1", "", "", "", "", "", "", "", "dnp"},
		},
	})
	repo := NewSelectionRepository(store, "Selections!A:AB", "PlayerGameStats!A:AB")

	got, err := repo.List(context.Background(), selection.Filter{Week: "3", TeamID: "T001"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("selections=%d want 1", len(got))
	}
	s := got[0]
	if s.PlayerName != "Avery" || s.Stats.Min != 34 || s.Stats.PTS != 28 || s.Stats.FTPercent != 0.8 || s.Time != "19:30" {
		t.Fatalf("unexpected selection: %+v", s)
	}

	all, err := repo.List(context.Background(), selection.Filter{TeamID: "T001"})
	if err != nil || len(all) != 2 || all[1].Stats.Min != 0 {
		t.Fatalf("non-numeric stats should fall back to 0: %+v err=%v", all, err)
	}
}

func TestSelectionRepository_ReplaceRewritesWriteRange(t *testing.T) {
	store := memory.NewSheetStore(map[string][][]string{
		"Selections": {{"h"}, {"1", "M1", "T001"}, {"1", "M1", "T002"}},
	})
	repo := NewSelectionRepository(store, "Selections!A:AB", "Selections!A:AB")
	ctx := context.Background()

	table, err := repo.Table(ctx)
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	table.Rows = table.Rows[1:]
	if err := repo.Replace(ctx, table); err != nil {
		t.Fatalf("replace: %v", err)
	}

	rows, _ := store.Get(ctx, "Selections!A:AB")
	if !reflect.DeepEqual(rows, [][]string{{"h"}, {"1", "M1", "T002"}}) {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

func TestWeekDateRepository_Today(t *testing.T) {
	ctx := context.Background()

	store := memory.NewSheetStore(map[string][][]string{"TodaysDate": {{"Date", "Time"}, {" 22/10/2025 ", "09:00"}}})
	repo := NewWeekDateRepository(store, "WeekDates!A:C", "TodaysDate!A2:B2")
	today, ok, err := repo.Today(ctx)
	if err != nil || !ok || today.Date != "22/10/2025" || today.Time != "09:00" {
		t.Fatalf("today=%+v ok=%v err=%v", today, ok, err)
	}

	empty := NewWeekDateRepository(memory.NewSheetStore(map[string][][]string{"TodaysDate": {{"Date", "Time"}}}), "WeekDates!A:C", "TodaysDate!A2:B2")
	if _, ok, err := empty.Today(ctx); ok || err != nil {
		t.Fatalf("empty today: ok=%v err=%v", ok, err)
	}
}

func TestDraftPickRepository_MapsYears(t *testing.T) {
	store := memory.NewSheetStore(map[string][][]string{
		"Draft Picks": {{"TeamID"}, {" T001 ", "1st", "2nd", "", "", "", "1st, 2nd", "traded 2028"}},
	})

	got, err := NewDraftPickRepository(store, "'Draft Picks'!A:H").List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	h := got[0]
	if h.TeamID != "T001" || h.Picks[2026] != "1st" || h.Picks[2031] != "1st, 2nd" || h.Notes != "traded 2028" {
		t.Fatalf("unexpected holding: %+v", h)
	}
}

func TestSchemas_RoundTripTeam(t *testing.T) {
	row := []string{"T001", "Hawks", "h@x", "pw", "logo", "word", "2021", "East", "Sam", "12-4", "3", "1", "1"}
	rec := teamSchema.Decode(row, 0)
	if got := teamSchema.Encode(rec); !reflect.DeepEqual(got, row) {
		t.Fatalf("round trip: %v", got)
	}
}

func TestSelectionRepository_EncodeRowsWritesOwnedColumns(t *testing.T) {
	sub := selection.Submission{
		Week: "3", MatchupID: "M7", TeamID: "T001", TeamName: "Alpha", OpponentTeamName: "Beta",
		Entries: []selection.Entry{{Position: "Guard 1", PlayerID: "P1", PlayerName: "Pat", NBATeam: "BOS", GameDate: "04/11/2025", SelectedGame: "vs NYK"}},
	}
	records := sub.Selections("2025-11-03T10:00:00.000Z")
	records[0].DateCode = "45965"
	records[0].Stats.PTS = 31

	rows := NewSelectionRepository(nil, "", "").EncodeRows(records)
	want := []string{"3", "M7", "T001", "Alpha", "Beta", "Guard 1", "P1", "Pat", "BOS", "04/11/2025", "vs NYK", "2025-11-03T10:00:00.000Z"}
	if len(rows) != 1 || !reflect.DeepEqual(rows[0], want) {
		t.Fatalf("rows=%q want=%q", rows, want)
	}
	if len(rows[0]) != selection.WrittenColumns {
		t.Fatalf("expected %d cells, got %d", selection.WrittenColumns, len(rows[0]))
	}
}
