package cache

import (
	"context"
	"slices"

	"github.com/riskibarqy/dynasty-league/internal/domain/draftpick"
	"github.com/riskibarqy/dynasty-league/internal/domain/matchup"
	"github.com/riskibarqy/dynasty-league/internal/domain/player"
	"github.com/riskibarqy/dynasty-league/internal/domain/schedule"
	"github.com/riskibarqy/dynasty-league/internal/domain/standing"
	"github.com/riskibarqy/dynasty-league/internal/domain/team"
	"github.com/riskibarqy/dynasty-league/internal/domain/weekdate"
	basecache "github.com/riskibarqy/dynasty-league/internal/platform/cache"
)

// Cache keys. Every key shares the "tab:" prefix so a refresh can drop them
// together.
const (
	KeyPrefix     = "tab:"
	keyTeams      = KeyPrefix + "team:list"
	keyPlayers    = KeyPrefix + "player:list"
	keyMatchups   = KeyPrefix + "matchup:list"
	keySchedule   = KeyPrefix + "schedule:list"
	keyStandings  = KeyPrefix + "standing:list"
	keyWeekDates  = KeyPrefix + "weekdate:list"
	keyToday      = KeyPrefix + "weekdate:today"
	keyDraftPicks = KeyPrefix + "draftpick:list"
)

func loadList[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	items, err := basecache.Load(ctx, store, key, func(ctx context.Context) ([]T, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return slices.Clone(items), nil
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		return []T{}, nil
	}
	return slices.Clone(items), nil
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	return loadList(ctx, r.cache, keyTeams, r.next.List)
}

// PlayerRepository caches the roster tab. Player values carry maps that are
// shared between copies and must be treated as read-only.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return loadList(ctx, r.cache, keyPlayers, r.next.List)
}

type MatchupRepository struct {
	next  matchup.Repository
	cache *basecache.Store
}

func NewMatchupRepository(next matchup.Repository, cache *basecache.Store) *MatchupRepository {
	return &MatchupRepository{next: next, cache: cache}
}

func (r *MatchupRepository) List(ctx context.Context) ([]matchup.Matchup, error) {
	return loadList(ctx, r.cache, keyMatchups, r.next.List)
}

type ScheduleRepository struct {
	next  schedule.Repository
	cache *basecache.Store
}

func NewScheduleRepository(next schedule.Repository, cache *basecache.Store) *ScheduleRepository {
	return &ScheduleRepository{next: next, cache: cache}
}

func (r *ScheduleRepository) List(ctx context.Context) ([]schedule.Game, error) {
	return loadList(ctx, r.cache, keySchedule, r.next.List)
}

type StandingRepository struct {
	next  standing.Repository
	cache *basecache.Store
}

func NewStandingRepository(next standing.Repository, cache *basecache.Store) *StandingRepository {
	return &StandingRepository{next: next, cache: cache}
}

func (r *StandingRepository) List(ctx context.Context) ([]standing.Standing, error) {
	return loadList(ctx, r.cache, keyStandings, r.next.List)
}

type DraftPickRepository struct {
	next  draftpick.Repository
	cache *basecache.Store
}

func NewDraftPickRepository(next draftpick.Repository, cache *basecache.Store) *DraftPickRepository {
	return &DraftPickRepository{next: next, cache: cache}
}

func (r *DraftPickRepository) List(ctx context.Context) ([]draftpick.Holding, error) {
	return loadList(ctx, r.cache, keyDraftPicks, r.next.List)
}

type WeekDateRepository struct {
	next  weekdate.Repository
	cache *basecache.Store
}

func NewWeekDateRepository(next weekdate.Repository, cache *basecache.Store) *WeekDateRepository {
	return &WeekDateRepository{next: next, cache: cache}
}

func (r *WeekDateRepository) List(ctx context.Context) ([]weekdate.WeekDate, error) {
	return loadList(ctx, r.cache, keyWeekDates, r.next.List)
}

func (r *WeekDateRepository) Today(ctx context.Context) (weekdate.Today, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, keyToday, func(ctx context.Context) (cachedToday, error) {
		value, exists, err := r.next.Today(ctx)
		if err != nil {
			return cachedToday{}, err
		}
		return cachedToday{value: value, exists: exists}, nil
	})
	if err != nil {
		return weekdate.Today{}, false, err
	}
	return cached.value, cached.exists, nil
}

type cachedToday struct {
	value  weekdate.Today
	exists bool
}
