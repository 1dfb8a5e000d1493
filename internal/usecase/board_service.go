package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/dynasty-league/internal/domain/matchup"
	"github.com/riskibarqy/dynasty-league/internal/domain/player"
	"github.com/riskibarqy/dynasty-league/internal/domain/schedule"
	"github.com/riskibarqy/dynasty-league/internal/domain/selection"
	"github.com/riskibarqy/dynasty-league/internal/domain/weekdate"
	"github.com/sourcegraph/conc/pool"
)

// SelectionBoard is everything the weekly selection screen needs for one team.
type SelectionBoard struct {
	TeamID     string
	Week       int
	Roster     []player.Player
	Matchup    *matchup.Matchup
	WeekDates  []weekdate.WeekDate
	Games      []schedule.Game
	Selections []selection.Selection
}

type BoardService struct {
	players    *PlayerService
	league     *LeagueService
	weeks      *WeekService
	selections *SelectionService
}

func NewBoardService(players *PlayerService, league *LeagueService, weeks *WeekService, selections *SelectionService) *BoardService {
	return &BoardService{players: players, league: league, weeks: weeks, selections: selections}
}

// Load fetches the board's parts concurrently. week <= 0 resolves the current
// week first.
func (s *BoardService) Load(ctx context.Context, teamID string, week int) (SelectionBoard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.Load")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return SelectionBoard{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if week <= 0 {
		current, err := s.weeks.CurrentWeek(ctx)
		if err != nil {
			return SelectionBoard{}, err
		}
		week = current.Week
	}

	board := SelectionBoard{TeamID: teamID, Week: week}
	var matchups []matchup.Matchup

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		roster, err := s.players.Roster(ctx, teamID)
		board.Roster = roster
		return err
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.league.ListMatchups(ctx)
		matchups = items
		return err
	})
	p.Go(func(ctx context.Context) error {
		weeks, err := s.league.ListWeekDates(ctx)
		board.WeekDates = weeks
		return err
	})
	p.Go(func(ctx context.Context) error {
		games, err := s.league.ListSchedule(ctx, week)
		board.Games = games
		return err
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.selections.List(ctx, selection.Filter{
			Week:   fmt.Sprint(week),
			TeamID: teamID,
		})
		board.Selections = items
		return err
	})
	if err := p.Wait(); err != nil {
		return SelectionBoard{}, fmt.Errorf("load selection board: %w", err)
	}

	for i := range matchups {
		if matchups[i].Week == week && matchups[i].Involves(teamID) {
			m := matchups[i]
			board.Matchup = &m
			break
		}
	}
	return board, nil
}
