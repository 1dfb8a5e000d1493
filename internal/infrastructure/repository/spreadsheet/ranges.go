package spreadsheet

// Ranges are the A1 ranges read and written for each tab.
type Ranges struct {
	Teams           string
	Players         string
	Matchups        string
	Schedule        string
	SelectionsWrite string
	SelectionsRead  string
	Standings       string
	WeekDates       string
	DraftPicks      string
	TodaysDate      string
	HealthProbe     string
}

func DefaultRanges() Ranges {
	return Ranges{
		Teams:           "Teams!A:Z",
		Players:         "Players!A:BB",
		Matchups:        "Matchups!A:AJ",
		Schedule:        "Schedule!A:E",
		SelectionsWrite: "Selections!A:AB",
		SelectionsRead:  "PlayerGameStats!A:AB",
		Standings:       "Standings!A:K",
		WeekDates:       "WeekDates!A:C",
		DraftPicks:      "'Draft Picks'!A:H",
		TodaysDate:      "TodaysDate!A2:B2",
		HealthProbe:     "Teams!A1:F1",
	}
}

// WithDefaults fills empty ranges from DefaultRanges.
func (r Ranges) WithDefaults() Ranges {
	d := DefaultRanges()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&r.Teams, d.Teams)
	fill(&r.Players, d.Players)
	fill(&r.Matchups, d.Matchups)
	fill(&r.Schedule, d.Schedule)
	fill(&r.SelectionsWrite, d.SelectionsWrite)
	fill(&r.SelectionsRead, d.SelectionsRead)
	fill(&r.Standings, d.Standings)
	fill(&r.WeekDates, d.WeekDates)
	fill(&r.DraftPicks, d.DraftPicks)
	fill(&r.TodaysDate, d.TodaysDate)
	fill(&r.HealthProbe, d.HealthProbe)
	return r
}
