package salarycap

import (
	"fmt"

	"github.com/riskibarqy/dynasty-league/internal/domain/player"
)

// injuryWeight is the share of an injured player's salary counted to the cap.
const injuryWeight = 0.5

// Summary is a team's cap position for one season. Negative space or headroom
// is an overage, not an error.
type Summary struct {
	Season          Season
	Allocation      float64
	Bonus           float64
	CapSpace        float64
	HardCapHeadroom float64
	ActiveCount     int
	InjuryCount     int
	DevelopCount    int
}

func (s Summary) OverCap() bool {
	return s.CapSpace < 0
}

func (s Summary) OverHardCap() bool {
	return s.HardCapHeadroom < 0
}

// Allocation sums active salaries plus half of injured salaries for season.
// Development players and non-numeric salaries count zero.
func Allocation(roster []player.Player, season string) float64 {
	var active, injured float64
	for _, p := range roster {
		switch p.RosterStatus {
		case player.StatusActive:
			active += p.SalaryFor(season).Value()
		case player.StatusInjury:
			injured += p.SalaryFor(season).Value()
		}
	}
	return active + injuryWeight*injured
}

// Calculate derives cap space and hard-cap headroom for teamID's roster.
func Calculate(teamID string, roster []player.Player, seasonName string) (Summary, error) {
	season, ok := LookupSeason(seasonName)
	if !ok {
		return Summary{}, fmt.Errorf("unknown cap season %q", seasonName)
	}

	out := Summary{Season: season}
	for _, p := range roster {
		switch p.RosterStatus {
		case player.StatusActive:
			out.ActiveCount++
		case player.StatusInjury:
			out.InjuryCount++
		case player.StatusDevelopment:
			out.DevelopCount++
		}
	}

	out.Allocation = Allocation(roster, season.Name)
	out.Bonus = Bonus(teamID, season.Name)
	out.CapSpace = season.Cap + out.Bonus - out.Allocation

	shortfall := max(0, MinActiveRoster-out.ActiveCount)
	out.HardCapHeadroom = season.HardCap - out.Allocation - float64(shortfall)*season.MinSalary
	return out, nil
}

// CalculateAll returns a summary for every modeled season.
func CalculateAll(teamID string, roster []player.Player) []Summary {
	out := make([]Summary, 0, len(seasons))
	for _, s := range seasons {
		summary, _ := Calculate(teamID, roster, s.Name)
		out = append(out, summary)
	}
	return out
}
