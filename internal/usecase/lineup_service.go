package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/dynasty-league/internal/domain/lineup"
	"github.com/riskibarqy/dynasty-league/internal/domain/player"
	"github.com/riskibarqy/dynasty-league/internal/domain/schedule"
	"github.com/riskibarqy/dynasty-league/internal/domain/selection"
)

type SlotOption struct {
	Slot    lineup.Slot
	Players []player.Player
}

type LineupDraftSlot struct {
	SlotID   lineup.SlotID
	PlayerID string
	GameID   string
}

type LineupDraft struct {
	TeamID string
	Week   int
	Slots  []LineupDraftSlot
}

// LineupCheck is advisory. Submit accepts drafts that fail it.
type LineupCheck struct {
	Ready      bool
	Unfilled   []lineup.SlotID
	Duplicates []string
	Entries    []selection.Entry
}

type LineupService struct {
	playerRepo   player.Repository
	scheduleRepo schedule.Repository
}

func NewLineupService(playerRepo player.Repository, scheduleRepo schedule.Repository) *LineupService {
	return &LineupService{playerRepo: playerRepo, scheduleRepo: scheduleRepo}
}

// Options lists, for every fixed slot, the team's players that may fill it.
func (s *LineupService) Options(ctx context.Context, teamID string) ([]SlotOption, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Options")
	defer span.End()

	roster, err := s.roster(ctx, teamID)
	if err != nil {
		return nil, err
	}

	builder := lineup.NewBuilder(roster, nil)
	out := make([]SlotOption, 0, lineup.SlotCount)
	for _, slot := range lineup.Slots() {
		out = append(out, SlotOption{
			Slot:    slot,
			Players: builder.AvailablePlayers(slot.Class, slot.ID),
		})
	}
	return out, nil
}

// Check replays a draft through the lineup builder.
func (s *LineupService) Check(ctx context.Context, draft LineupDraft) (LineupCheck, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Check")
	defer span.End()

	roster, err := s.roster(ctx, draft.TeamID)
	if err != nil {
		return LineupCheck{}, err
	}

	var games []schedule.Game
	if draft.Week > 0 {
		all, err := s.scheduleRepo.List(ctx)
		if err != nil {
			return LineupCheck{}, fmt.Errorf("list schedule: %w", err)
		}
		for _, g := range all {
			if g.Week == draft.Week {
				games = append(games, g)
			}
		}
	}

	builder := lineup.NewBuilder(roster, games)
	for _, slot := range draft.Slots {
		if strings.TrimSpace(slot.PlayerID) == "" {
			continue
		}
		builder.AssignPlayer(slot.SlotID, strings.TrimSpace(slot.PlayerID))
		if gameID := strings.TrimSpace(slot.GameID); gameID != "" {
			builder.AssignGame(slot.SlotID, gameID)
		}
	}

	return LineupCheck{
		Ready:      builder.IsReadyToSubmit(),
		Unfilled:   builder.Unfilled(),
		Duplicates: builder.DuplicatePlayers(),
		Entries:    builder.Selections(),
	}, nil
}

func (s *LineupService) roster(ctx context.Context, teamID string) ([]player.Player, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	out := make([]player.Player, 0, 32)
	for _, p := range players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}
