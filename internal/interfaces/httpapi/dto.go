package httpapi

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/dynasty-league/internal/domain/audit"
	"github.com/riskibarqy/dynasty-league/internal/domain/draftpick"
	"github.com/riskibarqy/dynasty-league/internal/domain/lineup"
	"github.com/riskibarqy/dynasty-league/internal/domain/matchup"
	"github.com/riskibarqy/dynasty-league/internal/domain/player"
	"github.com/riskibarqy/dynasty-league/internal/domain/salarycap"
	"github.com/riskibarqy/dynasty-league/internal/domain/schedule"
	"github.com/riskibarqy/dynasty-league/internal/domain/selection"
	"github.com/riskibarqy/dynasty-league/internal/domain/standing"
	"github.com/riskibarqy/dynasty-league/internal/domain/team"
	"github.com/riskibarqy/dynasty-league/internal/domain/user"
	"github.com/riskibarqy/dynasty-league/internal/domain/weekdate"
	"github.com/riskibarqy/dynasty-league/internal/usecase"
)

// flexString accepts a JSON string or number. Clients send the week either
// way.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := jsoniter.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(s))
		return nil
	}
	var n jsoniter.Number
	if err := jsoniter.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string {
	return string(f)
}

// weekNumber renders a stored week cell as a number when it is one.
func weekNumber(raw string) any {
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		return n
	}
	return raw
}

// salaryValue renders a salary as a number, its sentinel, or "".
func salaryValue(s player.Salary) any {
	if v, ok := s.Number(); ok {
		return v
	}
	return s.Sentinel()
}

type teamDTO struct {
	TeamID           string `json:"teamId"`
	TeamName         string `json:"teamName"`
	MainLogo         string `json:"mainLogo"`
	WordLogo         string `json:"wordLogo"`
	Established      string `json:"established,omitempty"`
	Conference       string `json:"conference,omitempty"`
	Manager          string `json:"manager,omitempty"`
	Record           string `json:"record,omitempty"`
	Playoffs         string `json:"playoffs,omitempty"`
	ConferenceTitles string `json:"conferenceTitles,omitempty"`
	Championships    string `json:"championships,omitempty"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		TeamID:           t.ID,
		TeamName:         t.Name,
		MainLogo:         t.MainLogo,
		WordLogo:         t.WordLogo,
		Established:      t.Established,
		Conference:       t.Conference,
		Manager:          t.Manager,
		Record:           t.Record,
		Playoffs:         t.Playoffs,
		ConferenceTitles: t.ConferenceTitles,
		Championships:    t.Championships,
	}
}

type contractDTO struct {
	Season string `json:"season"`
	Salary any    `json:"salary"`
	Option string `json:"option"`
}

type playerDTO struct {
	PlayerID         string             `json:"playerId"`
	Name             string             `json:"name"`
	TeamID           string             `json:"teamId"`
	DynastyTeam      string             `json:"dynastyTeam"`
	RosterStatus     string             `json:"rosterStatus"`
	NBATeam          string             `json:"nbaTeam"`
	Position         string             `json:"position"`
	BirthDate        string             `json:"birthDate"`
	Age              int                `json:"age"`
	Drafted          string             `json:"drafted"`
	SignedVia        string             `json:"signedVia"`
	Year             string             `json:"year"`
	ContractLength   string             `json:"contractLength"`
	ContractNotes    string             `json:"contractNotes"`
	Extension        string             `json:"extension"`
	Awards           string             `json:"awards"`
	PlayerHistoryLog string             `json:"playerHistoryLog"`
	RankType         string             `json:"rankType"`
	TwoYearRank      string             `json:"twoYearRank"`
	CareerRank       string             `json:"careerRank"`
	Ranks            map[string]string  `json:"ranks"`
	CareerEarnings   string             `json:"careerEarnings"`
	LegacySalaries   map[string]float64 `json:"legacySalaries"`
	CurrentSalary    any                `json:"currentSalary"`
	Contracts        []contractDTO      `json:"contracts"`
	Photo            string             `json:"photo"`
}

func playerToDTO(p player.Player) playerDTO {
	contracts := make([]contractDTO, 0, len(player.ContractSeasons))
	for _, season := range player.ContractSeasons {
		c := p.Contracts[season]
		contracts = append(contracts, contractDTO{
			Season: season,
			Salary: salaryValue(c.Salary),
			Option: c.Option,
		})
	}
	ranks := p.Ranks
	if ranks == nil {
		ranks = map[string]string{}
	}
	legacy := p.LegacySalaries
	if legacy == nil {
		legacy = map[string]float64{}
	}

	return playerDTO{
		PlayerID:         p.ID,
		Name:             p.Name,
		TeamID:           p.TeamID,
		DynastyTeam:      p.DynastyTeam,
		RosterStatus:     string(p.RosterStatus),
		NBATeam:          p.NBATeam,
		Position:         p.Position,
		BirthDate:        p.BirthDate,
		Age:              p.Age,
		Drafted:          p.Drafted,
		SignedVia:        p.SignedVia,
		Year:             p.Year,
		ContractLength:   p.ContractLength,
		ContractNotes:    p.ContractNotes,
		Extension:        p.Extension,
		Awards:           p.Awards,
		PlayerHistoryLog: p.HistoryLog,
		RankType:         p.RankType,
		TwoYearRank:      p.TwoYearRank,
		CareerRank:       p.CareerRank,
		Ranks:            ranks,
		CareerEarnings:   p.CareerEarnings,
		LegacySalaries:   legacy,
		CurrentSalary:    salaryValue(p.SalaryFor(player.CurrentSeason)),
		Contracts:        contracts,
		Photo:            p.Photo,
	}
}

func playersToDTO(players []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, playerToDTO(p))
	}
	return out
}

type matchupSideDTO struct {
	TeamID    string  `json:"teamId"`
	TeamName  string  `json:"teamName"`
	Score     float64 `json:"score"`
	GP        int     `json:"gp"`
	PTS       int     `json:"pts"`
	ThreePM   int     `json:"threePm"`
	AST       int     `json:"ast"`
	STL       int     `json:"stl"`
	BLK       int     `json:"blk"`
	ORB       int     `json:"orb"`
	DRB       int     `json:"drb"`
	FGM       int     `json:"fgm"`
	FGA       int     `json:"fga"`
	FGPercent float64 `json:"fgPercent"`
	FTM       int     `json:"ftm"`
	FTA       int     `json:"fta"`
	FTPercent float64 `json:"ftPercent"`
}

type matchupDTO struct {
	Week      int            `json:"week"`
	MatchupID string         `json:"matchupId"`
	Team1     matchupSideDTO `json:"team1"`
	Team2     matchupSideDTO `json:"team2"`
}

func sideToDTO(s matchup.Side) matchupSideDTO {
	t := s.Totals
	return matchupSideDTO{
		TeamID:    s.TeamID,
		TeamName:  s.TeamName,
		Score:     t.Score,
		GP:        t.GP,
		PTS:       t.PTS,
		ThreePM:   t.ThreePM,
		AST:       t.AST,
		STL:       t.STL,
		BLK:       t.BLK,
		ORB:       t.ORB,
		DRB:       t.DRB,
		FGM:       t.FGM,
		FGA:       t.FGA,
		FGPercent: t.FGPercent,
		FTM:       t.FTM,
		FTA:       t.FTA,
		FTPercent: t.FTPercent,
	}
}

func matchupToDTO(m matchup.Matchup) matchupDTO {
	return matchupDTO{
		Week:      m.Week,
		MatchupID: m.ID,
		Team1:     sideToDTO(m.Team1),
		Team2:     sideToDTO(m.Team2),
	}
}

type weekDateDTO struct {
	Week       int    `json:"week"`
	StartDate  string `json:"startDate"`
	FinishDate string `json:"finishDate"`
}

func weekDateToDTO(w weekdate.WeekDate) weekDateDTO {
	return weekDateDTO{Week: w.Week, StartDate: w.StartDate, FinishDate: w.FinishDate}
}

type gameDTO struct {
	GameID   string `json:"gameId"`
	Week     int    `json:"week"`
	NBATeam  string `json:"nbaTeam"`
	Date     string `json:"date"`
	Opponent string `json:"opponent"`
	HomeAway string `json:"homeAway"`
	Display  string `json:"display"`
}

func gameToDTO(g schedule.Game) gameDTO {
	return gameDTO{
		GameID:   g.ID(),
		Week:     g.Week,
		NBATeam:  g.NBATeam,
		Date:     g.Date,
		Opponent: g.Opponent,
		HomeAway: g.HomeAway,
		Display:  g.Display(),
	}
}

type standingDTO struct {
	TeamID        string  `json:"teamId"`
	TeamName      string  `json:"teamName"`
	Conference    string  `json:"conference"`
	Position      int     `json:"position"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	Record        string  `json:"record"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
	Percentage    float64 `json:"percentage"`
}

func standingToDTO(s standing.Standing) standingDTO {
	return standingDTO{
		TeamID:        s.TeamID,
		TeamName:      s.TeamName,
		Conference:    s.Conference,
		Position:      s.Position,
		Wins:          s.Wins,
		Losses:        s.Losses,
		Ties:          s.Ties,
		Record:        s.Record,
		PointsFor:     s.PointsFor,
		PointsAgainst: s.PointsAgainst,
		Percentage:    s.Percentage,
	}
}

type draftPicksDTO struct {
	TeamID    string `json:"teamId"`
	Picks2026 string `json:"picks2026"`
	Picks2027 string `json:"picks2027"`
	Picks2028 string `json:"picks2028"`
	Picks2029 string `json:"picks2029"`
	Picks2030 string `json:"picks2030"`
	Picks2031 string `json:"picks2031"`
	Notes     string `json:"notes"`
}

func draftPicksToDTO(h draftpick.Holding) draftPicksDTO {
	return draftPicksDTO{
		TeamID:    h.TeamID,
		Picks2026: h.Picks[2026],
		Picks2027: h.Picks[2027],
		Picks2028: h.Picks[2028],
		Picks2029: h.Picks[2029],
		Picks2030: h.Picks[2030],
		Picks2031: h.Picks[2031],
		Notes:     h.Notes,
	}
}

type todayDTO struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type currentWeekDTO struct {
	Week  int      `json:"week"`
	Today todayDTO `json:"today"`
}

type selectionDTO struct {
	Week              any     `json:"week"`
	MatchupID         string  `json:"matchupId"`
	TeamID            string  `json:"teamId"`
	TeamName          string  `json:"teamName"`
	OpponentTeamName  string  `json:"opponentTeamName"`
	Position          string  `json:"position"`
	PlayerID          string  `json:"playerId"`
	PlayerName        string  `json:"playerName"`
	PhotoURL          string  `json:"photoUrl,omitempty"`
	NBATeam           string  `json:"nbaTeam"`
	GameDate          string  `json:"gameDate"`
	NBAOpposition     string  `json:"nbaOpposition"`
	SubmittedDateTime string  `json:"submittedDateTime"`
	DateCode          string  `json:"dateCode"`
	Time              string  `json:"time"`
	Min               float64 `json:"min"`
	PTS               float64 `json:"pts"`
	ThreePM           float64 `json:"threePm"`
	AST               float64 `json:"ast"`
	STL               float64 `json:"stl"`
	BLK               float64 `json:"blk"`
	ORB               float64 `json:"orb"`
	DRB               float64 `json:"drb"`
	FGM               float64 `json:"fgm"`
	FGA               float64 `json:"fga"`
	FGPercent         float64 `json:"fgPercent"`
	FTM               float64 `json:"ftm"`
	FTA               float64 `json:"fta"`
	FTPercent         float64 `json:"ftPercent"`
}

func selectionToDTO(s selection.Selection) selectionDTO {
	st := s.Stats
	return selectionDTO{
		Week:              weekNumber(s.Week),
		MatchupID:         s.MatchupID,
		TeamID:            s.TeamID,
		TeamName:          s.TeamName,
		OpponentTeamName:  s.OpponentTeamName,
		Position:          s.Position,
		PlayerID:          s.PlayerID,
		PlayerName:        s.PlayerName,
		PhotoURL:          s.PhotoURL,
		NBATeam:           s.NBATeam,
		GameDate:          s.GameDate,
		NBAOpposition:     s.SelectedGame,
		SubmittedDateTime: s.SubmittedDateTime,
		DateCode:          s.DateCode,
		Time:              s.Time,
		Min:               st.Min,
		PTS:               st.PTS,
		ThreePM:           st.ThreePM,
		AST:               st.AST,
		STL:               st.STL,
		BLK:               st.BLK,
		ORB:               st.ORB,
		DRB:               st.DRB,
		FGM:               st.FGM,
		FGA:               st.FGA,
		FGPercent:         st.FGPercent,
		FTM:               st.FTM,
		FTA:               st.FTA,
		FTPercent:         st.FTPercent,
	}
}

func selectionsToDTO(items []selection.Selection) []selectionDTO {
	out := make([]selectionDTO, 0, len(items))
	for _, s := range items {
		out = append(out, selectionToDTO(s))
	}
	return out
}

type selectionEntryDTO struct {
	Position     string `json:"position"`
	PlayerID     string `json:"playerId"`
	PlayerName   string `json:"playerName"`
	NBATeam      string `json:"nbaTeam"`
	GameDate     string `json:"gameDate"`
	SelectedGame string `json:"selectedGame,omitempty"`
}

func entryToDTO(e selection.Entry) selectionEntryDTO {
	return selectionEntryDTO{
		Position:     e.Position,
		PlayerID:     e.PlayerID,
		PlayerName:   e.PlayerName,
		NBATeam:      e.NBATeam,
		GameDate:     e.GameDate,
		SelectedGame: e.SelectedGame,
	}
}

type submitSelectionsRequest struct {
	Week             flexString          `json:"week"`
	MatchupID        string              `json:"matchupId"`
	TeamID           string              `json:"teamId"`
	TeamName         string              `json:"teamName"`
	OpponentTeamName string              `json:"opponentTeamName"`
	Selections       []selectionEntryDTO `json:"selections"`
}

func (r submitSelectionsRequest) toInput() usecase.SubmitSelectionsInput {
	in := usecase.SubmitSelectionsInput{
		Week:             r.Week.String(),
		MatchupID:        strings.TrimSpace(r.MatchupID),
		TeamID:           r.TeamID,
		TeamName:         r.TeamName,
		OpponentTeamName: r.OpponentTeamName,
	}
	if r.Selections != nil {
		in.Entries = make([]selection.Entry, 0, len(r.Selections))
		for _, s := range r.Selections {
			in.Entries = append(in.Entries, selection.Entry{
				Position:     s.Position,
				PlayerID:     s.PlayerID,
				PlayerName:   s.PlayerName,
				NBATeam:      s.NBATeam,
				GameDate:     s.GameDate,
				SelectedGame: s.SelectedGame,
			})
		}
	}
	return in
}

type submitSelectionsResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Written  int    `json:"written"`
	Replaced int    `json:"replaced"`
}

// selectionChangesDTO keeps key presence so an explicit null clears the cell
// while an absent key leaves it alone.
type selectionChangesDTO map[string]*string

func (c selectionChangesDTO) field(key string) *string {
	v, ok := c[key]
	if !ok {
		return nil
	}
	if v == nil {
		empty := ""
		return &empty
	}
	return v
}

type editSelectionRequest struct {
	Week      flexString          `json:"week"`
	MatchupID string              `json:"matchupId"`
	TeamName  string              `json:"teamName"`
	Position  string              `json:"position"`
	Changes   selectionChangesDTO `json:"changes"`
}

func (r editSelectionRequest) toInput() usecase.EditSelectionInput {
	return usecase.EditSelectionInput{
		Week:      r.Week.String(),
		MatchupID: r.MatchupID,
		TeamName:  r.TeamName,
		Position:  r.Position,
		Changes: selection.Changes{
			PlayerID:      r.Changes.field("playerId"),
			PlayerName:    r.Changes.field("playerName"),
			NBATeam:       r.Changes.field("nbaTeam"),
			GameDate:      r.Changes.field("gameDate"),
			SelectedGame:  r.Changes.field("selectedGame"),
			NBAOpposition: r.Changes.field("nbaOpposition"),
		},
	}
}

type editSelectionResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Week      any               `json:"week"`
	MatchupID string            `json:"matchupId"`
	TeamName  string            `json:"teamName"`
	Position  string            `json:"position"`
	Changes   map[string]string `json:"changes"`
}

type auditEntryDTO struct {
	ID          string            `json:"id"`
	Kind        string            `json:"kind"`
	Week        string            `json:"week"`
	TeamID      string            `json:"teamId"`
	TeamName    string            `json:"teamName"`
	MatchupID   string            `json:"matchupId"`
	Position    string            `json:"position,omitempty"`
	ActorTeamID string            `json:"actorTeamId,omitempty"`
	RowCount    int               `json:"rowCount"`
	Changes     map[string]string `json:"changes,omitempty"`
	CreatedAt   string            `json:"createdAt"`
}

func auditEntryToDTO(e audit.Entry) auditEntryDTO {
	return auditEntryDTO{
		ID:          e.ID,
		Kind:        string(e.Kind),
		Week:        e.Week,
		TeamID:      e.TeamID,
		TeamName:    e.TeamName,
		MatchupID:   e.MatchupID,
		Position:    e.Position,
		ActorTeamID: e.ActorTeamID,
		RowCount:    e.RowCount,
		Changes:     e.Changes,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type capSeasonDTO struct {
	Season          string  `json:"season"`
	Cap             float64 `json:"cap"`
	HardCap         float64 `json:"hardCap"`
	MinSalary       float64 `json:"minSalary"`
	Allocation      float64 `json:"allocation"`
	Bonus           float64 `json:"bonus"`
	CapSpace        float64 `json:"capSpace"`
	HardCapHeadroom float64 `json:"hardCapHeadroom"`
	OverCap         bool    `json:"overCap"`
	OverHardCap     bool    `json:"overHardCap"`
	ActiveCount     int     `json:"activeCount"`
	InjuryCount     int     `json:"injuryCount"`
	DevelopCount    int     `json:"developmentCount"`
}

type teamCapDTO struct {
	TeamID  string         `json:"teamId"`
	Seasons []capSeasonDTO `json:"seasons"`
}

func capToDTO(teamID string, summaries []salarycap.Summary) teamCapDTO {
	out := teamCapDTO{TeamID: teamID, Seasons: make([]capSeasonDTO, 0, len(summaries))}
	for _, s := range summaries {
		out.Seasons = append(out.Seasons, capSeasonDTO{
			Season:          s.Season.Name,
			Cap:             s.Season.Cap,
			HardCap:         s.Season.HardCap,
			MinSalary:       s.Season.MinSalary,
			Allocation:      s.Allocation,
			Bonus:           s.Bonus,
			CapSpace:        s.CapSpace,
			HardCapHeadroom: s.HardCapHeadroom,
			OverCap:         s.OverCap(),
			OverHardCap:     s.OverHardCap(),
			ActiveCount:     s.ActiveCount,
			InjuryCount:     s.InjuryCount,
			DevelopCount:    s.DevelopCount,
		})
	}
	return out
}

type slotDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Reserve  bool   `json:"reserve"`
}

func slotToDTO(s lineup.Slot) slotDTO {
	return slotDTO{ID: string(s.ID), Name: s.Label, Position: string(s.Class), Reserve: s.Reserve}
}

type slotOptionDTO struct {
	Slot    slotDTO     `json:"slot"`
	Players []playerDTO `json:"players"`
}

type lineupCheckSlotRequest struct {
	SlotID   string `json:"slotId" validate:"required"`
	PlayerID string `json:"playerId"`
	GameID   string `json:"gameId"`
}

type lineupCheckRequest struct {
	TeamID string                   `json:"teamId" validate:"required"`
	Week   int                      `json:"week" validate:"gte=0"`
	Slots  []lineupCheckSlotRequest `json:"slots" validate:"max=12,dive"`
}

type lineupCheckDTO struct {
	Ready      bool                `json:"ready"`
	Unfilled   []string            `json:"unfilled"`
	Duplicates []string            `json:"duplicates"`
	Selections []selectionEntryDTO `json:"selections"`
}

func lineupCheckToDTO(c usecase.LineupCheck) lineupCheckDTO {
	out := lineupCheckDTO{
		Ready:      c.Ready,
		Unfilled:   make([]string, 0, len(c.Unfilled)),
		Duplicates: append([]string{}, c.Duplicates...),
		Selections: make([]selectionEntryDTO, 0, len(c.Entries)),
	}
	for _, id := range c.Unfilled {
		out.Unfilled = append(out.Unfilled, string(id))
	}
	for _, e := range c.Entries {
		out.Selections = append(out.Selections, entryToDTO(e))
	}
	return out
}

type selectionBoardDTO struct {
	TeamID     string         `json:"teamId"`
	Week       int            `json:"week"`
	Roster     []playerDTO    `json:"roster"`
	Matchup    *matchupDTO    `json:"matchup"`
	WeekDates  []weekDateDTO  `json:"weekDates"`
	Games      []gameDTO      `json:"games"`
	Selections []selectionDTO `json:"selections"`
}

func boardToDTO(b usecase.SelectionBoard) selectionBoardDTO {
	out := selectionBoardDTO{
		TeamID:     b.TeamID,
		Week:       b.Week,
		Roster:     playersToDTO(b.Roster),
		WeekDates:  make([]weekDateDTO, 0, len(b.WeekDates)),
		Games:      make([]gameDTO, 0, len(b.Games)),
		Selections: selectionsToDTO(b.Selections),
	}
	if b.Matchup != nil {
		m := matchupToDTO(*b.Matchup)
		out.Matchup = &m
	}
	for _, w := range b.WeekDates {
		out.WeekDates = append(out.WeekDates, weekDateToDTO(w))
	}
	for _, g := range b.Games {
		out.Games = append(out.Games, gameToDTO(g))
	}
	return out
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type sessionDTO struct {
	TeamID   string `json:"teamId"`
	TeamName string `json:"teamName"`
	Role     string `json:"role"`
}

func sessionToDTO(p user.Principal) sessionDTO {
	return sessionDTO{TeamID: p.TeamID, TeamName: p.TeamName, Role: string(p.Role)}
}

type sheetsEnvDTO struct {
	Backend        string `json:"backend"`
	HasSheetsID    bool   `json:"hasSheetsId"`
	HasClientEmail bool   `json:"hasClientEmail"`
	HasPrivateKey  bool   `json:"hasPrivateKey"`
	UsingBase64    bool   `json:"usingBase64"`
}

type sheetsHealthDTO struct {
	Env           sheetsEnvDTO `json:"env"`
	SheetsAccess  string       `json:"sheetsAccess,omitempty"`
	SampleHeaders []string     `json:"sampleHeaders,omitempty"`
	Error         string       `json:"error,omitempty"`
}

func sheetsHealthToDTO(h usecase.SheetsHealth) sheetsHealthDTO {
	out := sheetsHealthDTO{
		Env: sheetsEnvDTO{
			Backend:        h.Credentials.Backend,
			HasSheetsID:    h.Credentials.HasSheetsID,
			HasClientEmail: h.Credentials.HasClientEmail,
			HasPrivateKey:  h.Credentials.HasPrivateKey,
			UsingBase64:    h.Credentials.UsingBase64,
		},
		SampleHeaders: h.SampleHeaders,
		Error:         h.Error,
	}
	if h.SheetsAccess {
		out.SheetsAccess = "ok"
	}
	return out
}
