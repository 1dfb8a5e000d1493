package usecase

import (
	"testing"
	"time"

	"github.com/riskibarqy/dynasty-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/dynasty-league/internal/infrastructure/repository/spreadsheet"
	idgen "github.com/riskibarqy/dynasty-league/internal/platform/id"
	"github.com/riskibarqy/dynasty-league/internal/platform/logging"
)

var fixedNow = time.Date(2025, 10, 22, 9, 30, 0, 0, time.UTC)

type league struct {
	store      *memory.SheetStore
	ranges     spreadsheet.Ranges
	audit      *memory.AuditRepository
	players    *spreadsheet.PlayerRepository
	selections *spreadsheet.SelectionRepository
	repos      LeagueRepositories
}

// newLeague wires spreadsheet repositories over a freshly seeded memory store.
func newLeague(t *testing.T) *league {
	t.Helper()

	store := memory.NewSheetStore(memory.SeedTabs())
	rng := spreadsheet.DefaultRanges()
	return &league{
		store:      store,
		ranges:     rng,
		audit:      memory.NewAuditRepository(),
		players:    spreadsheet.NewPlayerRepository(store, rng.Players),
		selections: spreadsheet.NewSelectionRepository(store, rng.SelectionsWrite, rng.SelectionsRead),
		repos: LeagueRepositories{
			Teams:      spreadsheet.NewTeamRepository(store, rng.Teams),
			Matchups:   spreadsheet.NewMatchupRepository(store, rng.Matchups),
			Schedule:   spreadsheet.NewScheduleRepository(store, rng.Schedule),
			Standings:  spreadsheet.NewStandingRepository(store, rng.Standings),
			DraftPicks: spreadsheet.NewDraftPickRepository(store, rng.DraftPicks),
			WeekDates:  spreadsheet.NewWeekDateRepository(store, rng.WeekDates, rng.TodaysDate),
		},
	}
}

func (l *league) selectionService() *SelectionService {
	svc := NewSelectionService(
		l.selections,
		l.players,
		l.audit,
		idgen.NewNanoIDGenerator("aud"),
		SelectionServiceConfig{},
		logging.NewNop(),
	)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// selectionRows returns the stored selections tab without its header.
func (l *league) selectionRows(t *testing.T) [][]string {
	t.Helper()

	rows, ok := l.store.Tab(memory.TabSelections)
	if !ok {
		t.Fatalf("selections tab missing")
	}
	out := make([][]string, 0, len(rows))
	for _, row := range rows[1:] {
		if len(trimRow(row)) == 0 {
			continue
		}
		out = append(out, row)
	}
	return out
}

func trimRow(row []string) []string {
	end := len(row)
	for end > 0 && row[end-1] == "" {
		end--
	}
	return row[:end]
}

func strPtr(v string) *string { return &v }
