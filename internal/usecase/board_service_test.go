package usecase

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/riskibarqy/dynasty-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/dynasty-league/internal/platform/logging"
)

func newBoardService(l *league) *BoardService {
	return NewBoardService(
		NewPlayerService(l.players),
		NewLeagueService(l.repos),
		NewWeekService(l.repos.WeekDates),
		l.selectionService(),
	)
}

func TestBoardService_LoadCurrentWeek(t *testing.T) {
	t.Parallel()

	l := newLeague(t)
	stats := [][]string{
		{"Week", "MatchupID", "TeamID", "TeamName", "OpponentTeamName", "Position", "PlayerID", "PlayerName"},
		{"2", "W2M1", "T001", "Harbour Hawks", "Desert Suns", "Guard 1", "P001", "Avery Cole"},
		{"1", "W1M1", "T001", "Harbour Hawks", "Mountain Goats", "Guard 1", "P001", "Avery Cole"},
		{"2", "W2M2", "T002", "Mountain Goats", "League Office", "Guard 1", "P007", "Gale Price"},
	}
	l.store.SetTab(memory.TabPlayerGameStats, stats)

	board, err := newBoardService(l).Load(context.Background(), "T001", 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if board.Week != 2 {
		t.Fatalf("week = %d, want 2", board.Week)
	}
	if board.Matchup == nil || board.Matchup.ID != "W2M1" {
		t.Fatalf("unexpected matchup: %+v", board.Matchup)
	}
	if len(board.Roster) != 5 || len(board.Games) != 2 || len(board.WeekDates) != 2 {
		t.Fatalf("roster=%d games=%d weeks=%d", len(board.Roster), len(board.Games), len(board.WeekDates))
	}
	if len(board.Selections) != 1 || board.Selections[0].MatchupID != "W2M1" {
		t.Fatalf("unexpected selections: %+v", board.Selections)
	}
}

func TestBoardService_LoadExplicitWeekWithoutMatchup(t *testing.T) {
	t.Parallel()

	board, err := newBoardService(newLeague(t)).Load(context.Background(), "T001", 7)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if board.Week != 7 || board.Matchup != nil || len(board.Games) != 0 {
		t.Fatalf("unexpected board: %+v", board)
	}
}

func TestBoardService_LoadRequiresTeam(t *testing.T) {
	t.Parallel()

	if _, err := newBoardService(newLeague(t)).Load(context.Background(), "", 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestWarmupService_RunReportsEveryTask(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ok := func(context.Context) error {
		calls.Add(1)
		return nil
	}
	tasks := []WarmupTask{
		{Name: "teams", Load: ok},
		{Name: "players", Load: ok},
		{Name: "matchups", Load: func(context.Context) error {
			calls.Add(1)
			return errors.New("sheet unavailable")
		}},
	}

	res, err := NewWarmupService(tasks, 2, logging.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls.Load() != 3 {
		t.Fatalf("expected every task to run, got %d", calls.Load())
	}
	if res.SuccessCount != 2 || res.FailedCount != 1 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if res.Tasks[0].Name != "matchups" || res.Tasks[0].Status != warmupStatusFailed || res.Tasks[0].Message != "sheet unavailable" {
		t.Fatalf("unexpected first task: %+v", res.Tasks[0])
	}
}

func TestWarmupService_NoTasks(t *testing.T) {
	t.Parallel()

	res, err := NewWarmupService(nil, 0, nil).Run(context.Background())
	if err != nil || len(res.Tasks) != 0 {
		t.Fatalf("unexpected result %+v err=%v", res, err)
	}
}

func TestHealthService_Sheets(t *testing.T) {
	t.Parallel()

	creds := SheetsCredentials{Backend: "google", HasSheetsID: true, HasClientEmail: true, HasPrivateKey: true}

	t.Run("probe succeeds", func(t *testing.T) {
		svc := NewHealthService(creds, func(context.Context) ([]string, error) {
			return []string{"TeamID", "TeamName"}, nil
		})
		got, ok := svc.Sheets(context.Background())
		if !ok || !got.SheetsAccess || strings.Join(got.SampleHeaders, ",") != "TeamID,TeamName" {
			t.Fatalf("unexpected health %+v ok=%v", got, ok)
		}
		if !got.Credentials.HasPrivateKey {
			t.Fatalf("credentials not reported: %+v", got.Credentials)
		}
	})

	t.Run("probe fails", func(t *testing.T) {
		svc := NewHealthService(creds, func(context.Context) ([]string, error) {
			return nil, errors.New("permission denied")
		})
		got, ok := svc.Sheets(context.Background())
		if ok || got.SheetsAccess || got.Error != "permission denied" {
			t.Fatalf("unexpected health %+v ok=%v", got, ok)
		}
	})

	t.Run("no probe", func(t *testing.T) {
		if _, ok := NewHealthService(creds, nil).Sheets(context.Background()); ok {
			t.Fatalf("expected failure without a probe")
		}
	})
}
