package selection

import "strings"

// Column positions of the selections tab. Columns past ColSubmitted belong to
// the stats feed.
const (
	ColWeek = iota
	ColMatchupID
	ColTeamID
	ColTeamName
	ColOpponentTeamName
	ColPosition
	ColPlayerID
	ColPlayerName
	ColNBATeam
	ColGameDate
	ColSelectedGame
	ColSubmitted
	ColDateCode
	ColTime
	ColStatsStart
)

// WrittenColumns is the number of cells this service owns in each row.
const WrittenColumns = ColSubmitted + 1

// Entry is one submitted slot pick.
type Entry struct {
	Position     string
	PlayerID     string
	PlayerName   string
	NBATeam      string
	GameDate     string
	SelectedGame string
}

// Submission is a team's lineup for one week.
type Submission struct {
	Week             string
	MatchupID        string
	TeamID           string
	TeamName         string
	OpponentTeamName string
	Entries          []Entry
}

// Selections expands the submission into one record per entry, stamped with
// submittedAt.
func (s Submission) Selections(submittedAt string) []Selection {
	out := make([]Selection, 0, len(s.Entries))
	for _, e := range s.Entries {
		out = append(out, Selection{
			Week:              s.Week,
			MatchupID:         s.MatchupID,
			TeamID:            s.TeamID,
			TeamName:          s.TeamName,
			OpponentTeamName:  s.OpponentTeamName,
			Position:          e.Position,
			PlayerID:          e.PlayerID,
			PlayerName:        e.PlayerName,
			NBATeam:           e.NBATeam,
			GameDate:          e.GameDate,
			SelectedGame:      e.SelectedGame,
			SubmittedDateTime: submittedAt,
		})
	}
	return out
}

// DropTeamWeek returns rows that do not belong to (week, teamID), and the
// number removed. Keys compare exactly.
func DropTeamWeek(rows [][]string, week, teamID string) ([][]string, int) {
	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		if cell(row, ColWeek) == week && cell(row, ColTeamID) == teamID {
			continue
		}
		kept = append(kept, row)
	}
	return kept, len(rows) - len(kept)
}

// Key identifies the row a commissioner edit targets.
type Key struct {
	Week      string
	MatchupID string
	TeamName  string
	Position  string
}

// FindRow returns the index of the first row whose trimmed key cells equal the
// trimmed key, or -1.
func FindRow(rows [][]string, key Key) int {
	week := strings.TrimSpace(key.Week)
	matchupID := strings.TrimSpace(key.MatchupID)
	teamName := strings.TrimSpace(key.TeamName)
	position := strings.TrimSpace(key.Position)

	for i, row := range rows {
		if strings.TrimSpace(cell(row, ColWeek)) == week &&
			strings.TrimSpace(cell(row, ColMatchupID)) == matchupID &&
			strings.TrimSpace(cell(row, ColTeamName)) == teamName &&
			strings.TrimSpace(cell(row, ColPosition)) == position {
			return i
		}
	}
	return -1
}

// Changes is a sparse patch. Nil fields are left untouched.
type Changes struct {
	PlayerID      *string
	PlayerName    *string
	NBATeam       *string
	GameDate      *string
	SelectedGame  *string
	NBAOpposition *string
}

func (c Changes) Empty() bool {
	return c.PlayerID == nil && c.PlayerName == nil && c.NBATeam == nil &&
		c.GameDate == nil && c.SelectedGame == nil && c.NBAOpposition == nil
}

// Fields lists the applied changes by column name.
func (c Changes) Fields() map[string]string {
	out := make(map[string]string)
	set := func(name string, v *string) {
		if v != nil {
			out[name] = *v
		}
	}
	set("playerId", c.PlayerID)
	set("playerName", c.PlayerName)
	set("nbaTeam", c.NBATeam)
	set("gameDate", c.GameDate)
	if c.SelectedGame != nil {
		set("selectedGame", c.SelectedGame)
	} else {
		set("selectedGame", c.NBAOpposition)
	}
	return out
}

// Apply returns a patched copy of row, padded to WrittenColumns and stamped
// with submittedAt. Cells outside the patch keep their values.
func (c Changes) Apply(row []string, submittedAt string) []string {
	width := max(len(row), WrittenColumns)
	out := make([]string, width)
	copy(out, row)

	put := func(col int, v *string) {
		if v != nil {
			out[col] = *v
		}
	}
	put(ColPlayerID, c.PlayerID)
	put(ColPlayerName, c.PlayerName)
	put(ColNBATeam, c.NBATeam)
	put(ColGameDate, c.GameDate)
	if c.SelectedGame != nil {
		put(ColSelectedGame, c.SelectedGame)
	} else {
		put(ColSelectedGame, c.NBAOpposition)
	}
	out[ColSubmitted] = submittedAt
	return out
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
