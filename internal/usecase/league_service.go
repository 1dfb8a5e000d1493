package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/dynasty-league/internal/domain/draftpick"
	"github.com/riskibarqy/dynasty-league/internal/domain/matchup"
	"github.com/riskibarqy/dynasty-league/internal/domain/schedule"
	"github.com/riskibarqy/dynasty-league/internal/domain/standing"
	"github.com/riskibarqy/dynasty-league/internal/domain/team"
	"github.com/riskibarqy/dynasty-league/internal/domain/weekdate"
)

// LeagueService serves the read-only league tabs.
type LeagueService struct {
	teamRepo      team.Repository
	matchupRepo   matchup.Repository
	scheduleRepo  schedule.Repository
	standingRepo  standing.Repository
	draftPickRepo draftpick.Repository
	weekDateRepo  weekdate.Repository
}

type LeagueRepositories struct {
	Teams      team.Repository
	Matchups   matchup.Repository
	Schedule   schedule.Repository
	Standings  standing.Repository
	DraftPicks draftpick.Repository
	WeekDates  weekdate.Repository
}

func NewLeagueService(repos LeagueRepositories) *LeagueService {
	return &LeagueService{
		teamRepo:      repos.Teams,
		matchupRepo:   repos.Matchups,
		scheduleRepo:  repos.Schedule,
		standingRepo:  repos.Standings,
		draftPickRepo: repos.DraftPicks,
		weekDateRepo:  repos.WeekDates,
	}
}

func (s *LeagueService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *LeagueService) ListMatchups(ctx context.Context) ([]matchup.Matchup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListMatchups")
	defer span.End()

	items, err := s.matchupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matchups: %w", err)
	}
	return items, nil
}

// ListSchedule returns every game, or only week's games when week > 0.
func (s *LeagueService) ListSchedule(ctx context.Context, week int) ([]schedule.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListSchedule")
	defer span.End()

	games, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedule: %w", err)
	}
	if week <= 0 {
		return games, nil
	}

	out := make([]schedule.Game, 0, len(games))
	for _, g := range games {
		if g.Week == week {
			out = append(out, g)
		}
	}
	return out, nil
}

// ListStandings keeps only ranked rows inside the playoff line.
func (s *LeagueService) ListStandings(ctx context.Context) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListStandings")
	defer span.End()

	rows, err := s.standingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		if row.Ranked() {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *LeagueService) GetDraftPicks(ctx context.Context, teamID string) (draftpick.Holding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetDraftPicks")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return draftpick.Holding{}, fmt.Errorf("%w: Team ID is required", ErrInvalidInput)
	}

	holdings, err := s.draftPickRepo.List(ctx)
	if err != nil {
		return draftpick.Holding{}, fmt.Errorf("list draft picks: %w", err)
	}
	for _, h := range holdings {
		if h.TeamID == teamID {
			return h, nil
		}
	}
	return draftpick.Holding{}, fmt.Errorf("%w: Team not found", ErrNotFound)
}

func (s *LeagueService) ListWeekDates(ctx context.Context) ([]weekdate.WeekDate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListWeekDates")
	defer span.End()

	weeks, err := s.weekDateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list week dates: %w", err)
	}
	return weeks, nil
}

// CurrentTime returns the league's stored today value.
func (s *LeagueService) CurrentTime(ctx context.Context) (weekdate.Today, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CurrentTime")
	defer span.End()

	today, ok, err := s.weekDateRepo.Today(ctx)
	if err != nil {
		return weekdate.Today{}, fmt.Errorf("read today: %w", err)
	}
	if !ok {
		return weekdate.Today{}, fmt.Errorf("%w: No data found", ErrNotFound)
	}
	return today, nil
}
