package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/dynasty-league/internal/domain/team"
	"github.com/riskibarqy/dynasty-league/internal/domain/weekdate"
	basecache "github.com/riskibarqy/dynasty-league/internal/platform/cache"
)

type countingTeams struct {
	calls int
	items []team.Team
	err   error
}

func (c *countingTeams) List(context.Context) ([]team.Team, error) {
	c.calls++
	return c.items, c.err
}

func TestTeamRepository_CachesAndCopies(t *testing.T) {
	next := &countingTeams{items: []team.Team{{ID: "T001", Name: "Hawks"}}}
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))
	ctx := context.Background()

	first, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	first[0].Name = "mutated"

	second, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if next.calls != 1 {
		t.Fatalf("upstream calls=%d want 1", next.calls)
	}
	if second[0].Name != "Hawks" {
		t.Fatalf("cached slice was mutated through a caller copy")
	}
}

func TestTeamRepository_ErrorsAreNotCached(t *testing.T) {
	next := &countingTeams{err: errors.New("quota")}
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))
	ctx := context.Background()

	if _, err := repo.List(ctx); err == nil {
		t.Fatalf("expected error")
	}
	next.err = nil
	got, err := repo.List(ctx)
	if err != nil || next.calls != 2 || len(got) != 0 || got == nil {
		t.Fatalf("got=%v err=%v calls=%d", got, err, next.calls)
	}
}

type fixedWeeks struct {
	today weekdate.Today
	ok    bool
	calls int
}

func (f *fixedWeeks) List(context.Context) ([]weekdate.WeekDate, error) { return nil, nil }

func (f *fixedWeeks) Today(context.Context) (weekdate.Today, bool, error) {
	f.calls++
	return f.today, f.ok, nil
}

func TestWeekDateRepository_CachesMissingToday(t *testing.T) {
	next := &fixedWeeks{}
	repo := NewWeekDateRepository(next, basecache.NewStore(time.Minute))

	for range 3 {
		if _, ok, err := repo.Today(context.Background()); ok || err != nil {
			t.Fatalf("ok=%v err=%v", ok, err)
		}
	}
	if next.calls != 1 {
		t.Fatalf("calls=%d want 1", next.calls)
	}
}
