package spreadsheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/dynasty-league/internal/domain/draftpick"
	"github.com/riskibarqy/dynasty-league/internal/domain/matchup"
	"github.com/riskibarqy/dynasty-league/internal/domain/player"
	"github.com/riskibarqy/dynasty-league/internal/domain/schedule"
	"github.com/riskibarqy/dynasty-league/internal/domain/sheet"
	"github.com/riskibarqy/dynasty-league/internal/domain/standing"
	"github.com/riskibarqy/dynasty-league/internal/domain/team"
	"github.com/riskibarqy/dynasty-league/internal/domain/weekdate"
	"github.com/riskibarqy/dynasty-league/internal/platform/sheetrow"
)

func readAll[T any](ctx context.Context, store sheet.Store, rng string, schema *sheetrow.Schema[T]) ([]T, error) {
	rows, err := sheet.ReadData(ctx, store, rng)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", schema.Name(), err)
	}
	return schema.DecodeAll(rows), nil
}

type TeamRepository struct {
	store sheet.Store
	rng   string
}

func NewTeamRepository(store sheet.Store, rng string) *TeamRepository {
	return &TeamRepository{store: store, rng: rng}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	return readAll(ctx, r.store, r.rng, teamSchema)
}

type PlayerRepository struct {
	store sheet.Store
	rng   string
}

func NewPlayerRepository(store sheet.Store, rng string) *PlayerRepository {
	return &PlayerRepository{store: store, rng: rng}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return readAll(ctx, r.store, r.rng, playerSchema)
}

type MatchupRepository struct {
	store sheet.Store
	rng   string
}

func NewMatchupRepository(store sheet.Store, rng string) *MatchupRepository {
	return &MatchupRepository{store: store, rng: rng}
}

func (r *MatchupRepository) List(ctx context.Context) ([]matchup.Matchup, error) {
	return readAll(ctx, r.store, r.rng, matchupSchema)
}

type ScheduleRepository struct {
	store sheet.Store
	rng   string
}

func NewScheduleRepository(store sheet.Store, rng string) *ScheduleRepository {
	return &ScheduleRepository{store: store, rng: rng}
}

func (r *ScheduleRepository) List(ctx context.Context) ([]schedule.Game, error) {
	return readAll(ctx, r.store, r.rng, gameSchema)
}

type StandingRepository struct {
	store sheet.Store
	rng   string
}

func NewStandingRepository(store sheet.Store, rng string) *StandingRepository {
	return &StandingRepository{store: store, rng: rng}
}

func (r *StandingRepository) List(ctx context.Context) ([]standing.Standing, error) {
	return readAll(ctx, r.store, r.rng, standingSchema)
}

type DraftPickRepository struct {
	store sheet.Store
	rng   string
}

func NewDraftPickRepository(store sheet.Store, rng string) *DraftPickRepository {
	return &DraftPickRepository{store: store, rng: rng}
}

func (r *DraftPickRepository) List(ctx context.Context) ([]draftpick.Holding, error) {
	return readAll(ctx, r.store, r.rng, draftPickSchema)
}

type WeekDateRepository struct {
	store    sheet.Store
	rng      string
	todayRng string
}

func NewWeekDateRepository(store sheet.Store, rng, todayRng string) *WeekDateRepository {
	return &WeekDateRepository{store: store, rng: rng, todayRng: todayRng}
}

func (r *WeekDateRepository) List(ctx context.Context) ([]weekdate.WeekDate, error) {
	return readAll(ctx, r.store, r.rng, weekDateSchema)
}

// Today reads the single-row date range. The range starts below the header so
// the first returned row is the value.
func (r *WeekDateRepository) Today(ctx context.Context) (weekdate.Today, bool, error) {
	rows, err := sheet.ReadData(ctx, r.store, r.todayRng)
	if err != nil {
		return weekdate.Today{}, false, fmt.Errorf("read todaysdate: %w", err)
	}
	if len(rows) == 0 {
		return weekdate.Today{}, false, nil
	}

	today := todaySchema.Decode(rows[0], 0)
	if strings.TrimSpace(today.Date) == "" {
		return weekdate.Today{}, false, nil
	}
	return today, true, nil
}

// Probe reads a header range to confirm the spreadsheet is reachable.
func Probe(ctx context.Context, store sheet.Store, rng string) ([]string, error) {
	rows, err := store.Get(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", rng, err)
	}
	if len(rows) == 0 {
		return []string{}, nil
	}
	return rows[0], nil
}
