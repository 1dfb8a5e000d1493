package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/dynasty-league/internal/domain/weekdate"
)

type CurrentWeek struct {
	Week  int
	Today weekdate.Today
}

type WeekService struct {
	weekDateRepo weekdate.Repository
}

func NewWeekService(weekDateRepo weekdate.Repository) *WeekService {
	return &WeekService{weekDateRepo: weekDateRepo}
}

// CurrentWeek resolves the selection week from the week table and the
// league's stored today value.
func (s *WeekService) CurrentWeek(ctx context.Context) (CurrentWeek, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeekService.CurrentWeek")
	defer span.End()

	weeks, err := s.weekDateRepo.List(ctx)
	if err != nil {
		return CurrentWeek{}, fmt.Errorf("list week dates: %w", err)
	}
	today, ok, err := s.weekDateRepo.Today(ctx)
	if err != nil {
		return CurrentWeek{}, fmt.Errorf("read today: %w", err)
	}

	return CurrentWeek{
		Week:  weekdate.ResolveStored(weeks, today, ok),
		Today: today,
	}, nil
}
