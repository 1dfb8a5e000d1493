package team

import "strings"

// Team is one dynasty franchise. Email and Password are login credentials held
// in the league spreadsheet and are never serialised to clients.
type Team struct {
	ID               string
	Name             string
	Email            string
	Password         string
	MainLogo         string
	WordLogo         string
	Established      string
	Conference       string
	Manager          string
	Record           string
	Playoffs         string
	ConferenceTitles string
	Championships    string
}

// MatchesEmail compares login emails case-insensitively.
func (t Team) MatchesEmail(email string) bool {
	email = strings.TrimSpace(email)
	return email != "" && strings.EqualFold(strings.TrimSpace(t.Email), email)
}
