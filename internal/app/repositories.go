package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/dynasty-league/internal/config"
	"github.com/riskibarqy/dynasty-league/internal/domain/player"
	"github.com/riskibarqy/dynasty-league/internal/domain/selection"
	"github.com/riskibarqy/dynasty-league/internal/domain/sheet"
	"github.com/riskibarqy/dynasty-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/dynasty-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/dynasty-league/internal/infrastructure/repository/spreadsheet"
	"github.com/riskibarqy/dynasty-league/internal/infrastructure/sheets"
	basecache "github.com/riskibarqy/dynasty-league/internal/platform/cache"
	idgen "github.com/riskibarqy/dynasty-league/internal/platform/id"
	"github.com/riskibarqy/dynasty-league/internal/platform/logging"
	"github.com/riskibarqy/dynasty-league/internal/platform/resilience"
	"github.com/riskibarqy/dynasty-league/internal/usecase"
)

const auditIDPrefix = "aud"

type repositories struct {
	players    player.Repository
	league     usecase.LeagueRepositories
	selections selection.Repository
	auditIDs   idgen.Generator
	probe      usecase.HeaderProbe
	cached     bool
}

func newSheetStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (sheet.Store, error) {
	switch cfg.SheetsBackend {
	case config.SheetsBackendMemory:
		logger.Warn("using in-memory spreadsheet seed", "backend", cfg.SheetsBackend)
		return memory.NewSheetStore(memory.SeedTabs()), nil
	case config.SheetsBackendGoogle:
		client, err := sheets.NewClient(ctx, sheets.ClientConfig{
			SpreadsheetID: cfg.GoogleSheetsID,
			ClientEmail:   cfg.GoogleClientEmail,
			PrivateKey:    cfg.GooglePrivateKey,
			Timeout:       cfg.SheetsTimeout,
			MaxRetries:    cfg.SheetsMaxRetries,
			Logger:        logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.SheetsCircuitEnabled,
				FailureThreshold: cfg.SheetsCircuitFailureCount,
				OpenTimeout:      cfg.SheetsCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.SheetsCircuitHalfOpenMaxReq,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("build sheets client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported sheets backend %q", cfg.SheetsBackend)
	}
}

func newRepositories(cfg config.Config, store sheet.Store) repositories {
	rng := spreadsheet.DefaultRanges()
	if cfg.SelectionsWriteRange != "" {
		rng.SelectionsWrite = cfg.SelectionsWriteRange
	}
	if cfg.SelectionsReadRange != "" {
		rng.SelectionsRead = cfg.SelectionsReadRange
	}

	repos := repositories{
		players: spreadsheet.NewPlayerRepository(store, rng.Players),
		league: usecase.LeagueRepositories{
			Teams:      spreadsheet.NewTeamRepository(store, rng.Teams),
			Matchups:   spreadsheet.NewMatchupRepository(store, rng.Matchups),
			Schedule:   spreadsheet.NewScheduleRepository(store, rng.Schedule),
			Standings:  spreadsheet.NewStandingRepository(store, rng.Standings),
			DraftPicks: spreadsheet.NewDraftPickRepository(store, rng.DraftPicks),
			WeekDates:  spreadsheet.NewWeekDateRepository(store, rng.WeekDates, rng.TodaysDate),
		},
		// Selections are written by this service and must always be read fresh.
		selections: spreadsheet.NewSelectionRepository(store, rng.SelectionsWrite, rng.SelectionsRead),
		auditIDs:   idgen.NewNanoIDGenerator(auditIDPrefix),
		probe: func(ctx context.Context) ([]string, error) {
			return spreadsheet.Probe(ctx, store, rng.HealthProbe)
		},
	}

	if !cfg.CacheEnabled {
		return repos
	}

	tabs := basecache.NewStore(cfg.CacheTTL)
	repos.cached = true
	repos.players = cache.NewPlayerRepository(repos.players, tabs)
	repos.league = usecase.LeagueRepositories{
		Teams:      cache.NewTeamRepository(repos.league.Teams, tabs),
		Matchups:   cache.NewMatchupRepository(repos.league.Matchups, tabs),
		Schedule:   cache.NewScheduleRepository(repos.league.Schedule, tabs),
		Standings:  cache.NewStandingRepository(repos.league.Standings, tabs),
		DraftPicks: cache.NewDraftPickRepository(repos.league.DraftPicks, tabs),
		WeekDates:  cache.NewWeekDateRepository(repos.league.WeekDates, tabs),
	}
	return repos
}

func (r repositories) warmupTasks() []usecase.WarmupTask {
	if !r.cached {
		return nil
	}
	return []usecase.WarmupTask{
		{Name: "teams", Load: discard(r.league.Teams.List)},
		{Name: "players", Load: discard(r.players.List)},
		{Name: "matchups", Load: discard(r.league.Matchups.List)},
		{Name: "schedule", Load: discard(r.league.Schedule.List)},
		{Name: "standings", Load: discard(r.league.Standings.List)},
		{Name: "draft_picks", Load: discard(r.league.DraftPicks.List)},
		{Name: "week_dates", Load: discard(r.league.WeekDates.List)},
		{Name: "todays_date", Load: func(ctx context.Context) error {
			_, _, err := r.league.WeekDates.Today(ctx)
			return err
		}},
	}
}

func discard[T any](list func(context.Context) ([]T, error)) func(context.Context) error {
	return func(ctx context.Context) error {
		_, err := list(ctx)
		return err
	}
}
