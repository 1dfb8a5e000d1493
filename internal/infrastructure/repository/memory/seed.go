package memory

import "strconv"

// Tab names used by the demo league.
const (
	TabTeams           = "Teams"
	TabPlayers         = "Players"
	TabMatchups        = "Matchups"
	TabSchedule        = "Schedule"
	TabSelections      = "Selections"
	TabPlayerGameStats = "PlayerGameStats"
	TabStandings       = "Standings"
	TabWeekDates       = "WeekDates"
	TabDraftPicks      = "Draft Picks"
	TabTodaysDate      = "TodaysDate"
)

var selectionHeader = []string{
	"Week", "MatchupID", "TeamID", "TeamName", "OpponentTeamName", "Position",
	"PlayerID", "PlayerName", "NBATeam", "GameDate", "SelectedGame", "SubmittedDateTime",
	"DateCode", "Time", "MIN", "PTS", "3PM", "AST", "STL", "BLK", "ORB", "DRB",
	"FGM", "FGA", "FG%", "FTM", "FTA", "FT%",
}

// SeedTabs returns a small two-matchup league for the memory backend.
func SeedTabs() map[string][][]string {
	return map[string][][]string{
		TabTeams: {
			{"TeamID", "TeamName", "Email", "Password", "MainLogo", "WordLogo", "Established", "Conference", "Manager", "Record", "Playoffs", "ConferenceTitles", "Championships"},
			{"T001", "Harbour Hawks", "hawks@example.com", "hawks", "", "", "2021", "East", "Sam", "12-4", "3", "1", "1"},
			{"T002", "Mountain Goats", "goats@example.com", "goats", "", "", "2021", "East", "Ari", "9-7", "2", "0", "0"},
			{"T011", "Desert Suns", "suns@example.com", "suns", "", "", "2021", "West", "Kai", "10-6", "2", "1", "0"},
			{"T014", "League Office", "office@example.com", "office", "", "", "2021", "West", "Commissioner", "8-8", "1", "0", "0"},
		},
		TabPlayers: seedPlayers(),
		TabMatchups: {
			{"Week", "MatchupID", "Team1ID", "Team1Name", "Team2ID", "Team2Name"},
			{"1", "W1M1", "T001", "Harbour Hawks", "T002", "Mountain Goats"},
			{"1", "W1M2", "T011", "Desert Suns", "T014", "League Office"},
			{"2", "W2M1", "T001", "Harbour Hawks", "T011", "Desert Suns"},
			{"2", "W2M2", "T002", "Mountain Goats", "T014", "League Office"},
		},
		TabSchedule: {
			{"Week", "NBATeam", "Date", "Opponent", "HomeAway"},
			{"1", "BOS", "21/10/2025", "NYK", "vs"},
			{"1", "DEN", "22/10/2025", "GSW", "@"},
			{"2", "BOS", "28/10/2025", "MIA", "@"},
			{"2", "DEN", "29/10/2025", "LAL", "vs"},
		},
		TabSelections:      {selectionHeader},
		TabPlayerGameStats: {selectionHeader},
		TabStandings: {
			{"TeamID", "TeamName", "Conference", "Position", "Wins", "Losses", "Ties", "Record", "PointsFor", "PointsAgainst", "Percentage"},
			{"T001", "Harbour Hawks", "East", "1", "12", "4", "0", "12-4", "1840.5", "1702", "0.75"},
			{"T011", "Desert Suns", "West", "2", "10", "6", "0", "10-6", "1790", "1733.5", "0.625"},
			{"T002", "Mountain Goats", "East", "3", "9", "7", "0", "9-7", "1711", "1698", "0.5625"},
			{"T014", "League Office", "West", "4", "8", "8", "0", "8-8", "1650", "1700", "0.5"},
		},
		TabWeekDates: {
			{"Week", "StartDate", "FinishDate"},
			{"1", "20/10/2025", "26/10/2025"},
			{"2", "27/10/2025", "02/11/2025"},
		},
		TabDraftPicks: {
			{"TeamID", "2026", "2027", "2028", "2029", "2030", "2031", "Notes"},
			{"T001", "1st, 2nd", "1st", "1st, 2nd", "1st, 2nd", "1st, 2nd", "1st, 2nd", "2027 2nd to T002"},
			{"T002", "1st, 2nd", "1st, 2nd, 2nd (T001)", "1st, 2nd", "1st, 2nd", "1st, 2nd", "1st, 2nd", ""},
		},
		TabTodaysDate: {
			{"Date", "Time"},
			{"22/10/2025", "09:00"},
		},
	}
}

func seedPlayers() [][]string {
	const width = 54
	header := make([]string, width)
	header[0], header[1], header[2], header[4], header[5], header[6], header[33] = "PlayerID", "Name", "TeamID", "RosterStatus", "NBATeam", "Position", "Salary25_26"

	type seed struct {
		id, name, teamID, status, nbaTeam, position, salary string
	}
	seeds := []seed{
		{"P001", "Avery Cole", "T001", "ACTIVE", "BOS", "G", "$32.4m"},
		{"P002", "Briar Lane", "T001", "ACTIVE", "BOS", "G/F", "18.1"},
		{"P003", "Cruz Malik", "T001", "IR", "DEN", "F", "12"},
		{"P004", "Dell Ortiz", "T001", "DEV", "DEN", "C", "2.48"},
		{"P005", "Emery Shaw", "T001", "ACTIVE", "DEN", "F/C", "RFA"},
		{"P006", "Finn Adair", "T002", "ACTIVE", "BOS", "C", "21.7"},
		{"P007", "Gale Price", "T002", "ACTIVE", "DEN", "G", "9.9"},
	}

	rows := [][]string{header}
	for _, s := range seeds {
		row := make([]string, width)
		row[0], row[1], row[2], row[3] = s.id, s.name, s.teamID, s.teamID
		row[4], row[5], row[6] = s.status, s.nbaTeam, s.position
		row[8] = strconv.Itoa(24 + len(rows))
		row[33] = s.salary
		rows = append(rows, row)
	}
	return rows
}
