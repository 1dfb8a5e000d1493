package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/dynasty-league/internal/domain/player"
)

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

// ListPlayers filters the roster by exact team id and normalised status. A
// status that does not normalise is ignored.
func (s *PlayerService) ListPlayers(ctx context.Context, teamID, status string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	filter := player.Filter{TeamID: teamID}
	if normalized, ok := player.LookupRosterStatus(status); ok {
		filter.Status = normalized
	}

	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Roster returns every player on teamID.
func (s *PlayerService) Roster(ctx context.Context, teamID string) ([]player.Player, error) {
	return s.ListPlayers(ctx, teamID, "")
}
