package spreadsheet

import (
	"github.com/riskibarqy/dynasty-league/internal/domain/team"
	"github.com/riskibarqy/dynasty-league/internal/platform/sheetrow"
)

var teamSchema = sheetrow.MustSchema("teams",
	sheetrow.TextOr(0, "teamId", func(t *team.Team) *string { return &t.ID }, sheetrow.IndexedID("team")),
	sheetrow.Text(1, "teamName", func(t *team.Team) *string { return &t.Name }),
	sheetrow.Text(2, "email", func(t *team.Team) *string { return &t.Email }),
	sheetrow.Text(3, "password", func(t *team.Team) *string { return &t.Password }),
	sheetrow.Trimmed(4, "mainLogo", func(t *team.Team) *string { return &t.MainLogo }),
	sheetrow.Trimmed(5, "wordLogo", func(t *team.Team) *string { return &t.WordLogo }),
	sheetrow.Text(6, "established", func(t *team.Team) *string { return &t.Established }),
	sheetrow.Text(7, "conference", func(t *team.Team) *string { return &t.Conference }),
	sheetrow.Text(8, "manager", func(t *team.Team) *string { return &t.Manager }),
	sheetrow.Text(9, "record", func(t *team.Team) *string { return &t.Record }),
	sheetrow.Text(10, "playoffs", func(t *team.Team) *string { return &t.Playoffs }),
	sheetrow.Text(11, "conferenceTitles", func(t *team.Team) *string { return &t.ConferenceTitles }),
	sheetrow.Text(12, "championships", func(t *team.Team) *string { return &t.Championships }),
)
