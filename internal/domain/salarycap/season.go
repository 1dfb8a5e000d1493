package salarycap

// MinActiveRoster is the active roster size below which phantom minimum
// salaries are charged against the hard cap.
const MinActiveRoster = 16

// Season holds the per-season cap constants, in millions.
type Season struct {
	Name      string
	Cap       float64
	HardCap   float64
	MinSalary float64
}

var seasons = []Season{
	{Name: "25-26", Cap: 247.2, HardCap: 296.8, MinSalary: 2.48},
	{Name: "26-27", Cap: 276.87, HardCap: 332.25, MinSalary: 2.77},
	{Name: "27-28", Cap: 276.87, HardCap: 332.25, MinSalary: 2.77},
	{Name: "28-29", Cap: 276.87, HardCap: 332.25, MinSalary: 2.77},
	{Name: "29-30", Cap: 276.87, HardCap: 332.25, MinSalary: 2.77},
	{Name: "30-31", Cap: 276.87, HardCap: 332.25, MinSalary: 2.77},
}

// bonusSeason is the only season that carries the Dynasty Cup payout.
const bonusSeason = "25-26"

var dynastyCupBonus = map[string]float64{
	"T001": 12.36,
	"T002": 3.71,
	"T003": 3.71,
	"T004": 12.36,
	"T011": 7.42,
	"T012": 3.71,
	"T013": 3.71,
	"T014": 7.42,
}

// Seasons returns the modeled seasons in order.
func Seasons() []Season {
	out := make([]Season, len(seasons))
	copy(out, seasons)
	return out
}

func LookupSeason(name string) (Season, bool) {
	for _, s := range seasons {
		if s.Name == name {
			return s, true
		}
	}
	return Season{}, false
}

// Bonus is the one-time cap adjustment for teamID in season.
func Bonus(teamID, season string) float64 {
	if season != bonusSeason {
		return 0
	}
	return dynastyCupBonus[teamID]
}
