package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/dynasty-league/internal/domain/player"
	"github.com/riskibarqy/dynasty-league/internal/domain/salarycap"
)

type CapService struct {
	playerRepo player.Repository
}

func NewCapService(playerRepo player.Repository) *CapService {
	return &CapService{playerRepo: playerRepo}
}

// TeamCap summarises every modeled season for teamID. A team with no players
// still gets a summary (full cap space, maximum shortfall).
func (s *CapService) TeamCap(ctx context.Context, teamID string) ([]salarycap.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CapService.TeamCap")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	roster := make([]player.Player, 0, 32)
	for _, p := range players {
		if p.TeamID == teamID {
			roster = append(roster, p)
		}
	}
	return salarycap.CalculateAll(teamID, roster), nil
}
