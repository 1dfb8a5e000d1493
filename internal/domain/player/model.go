package player

// Player is one contract on a dynasty roster.
type Player struct {
	ID             string
	Name           string
	TeamID         string
	DynastyTeam    string
	RosterStatus   RosterStatus
	NBATeam        string
	Position       string
	BirthDate      string
	Age            int
	Drafted        string
	SignedVia      string
	Year           string
	ContractLength string
	ContractNotes  string
	Extension      string
	Awards         string
	HistoryLog     string
	RankType       string
	TwoYearRank    string
	CareerRank     string
	Ranks          map[string]string
	CareerEarnings string
	LegacySalaries map[string]float64
	Contracts      map[string]Contract
	Photo          string
}

// Contract is the salary and option status of one modeled season.
type Contract struct {
	Salary Salary
	Option string
}

// SalaryFor returns the season's salary, or an empty salary if none is recorded.
func (p Player) SalaryFor(season string) Salary {
	if p.Contracts == nil {
		return Salary{}
	}
	return p.Contracts[season].Salary
}

// CurrentSalary is the amount used for ordering roster pickers.
func (p Player) CurrentSalary() float64 {
	return p.SalaryFor(CurrentSeason).Value()
}

// Filter narrows a roster listing. Zero values match everything.
type Filter struct {
	TeamID string
	Status RosterStatus
}

func (f Filter) Matches(p Player) bool {
	if f.TeamID != "" && p.TeamID != f.TeamID {
		return false
	}
	if f.Status != "" && p.RosterStatus != f.Status {
		return false
	}
	return true
}
