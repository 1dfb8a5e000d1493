package spreadsheet

import (
	"strconv"

	"github.com/riskibarqy/dynasty-league/internal/domain/player"
	"github.com/riskibarqy/dynasty-league/internal/platform/sheetrow"
)

// Player column anchors. Contract seasons occupy salary/option pairs starting
// at colFirstContract.
const (
	colFirstRank     = 20
	colCareerEarning = 28
	colFirstLegacy   = 29
	colFirstContract = 33
	colPhoto         = 53
)

var playerSchema = sheetrow.MustSchema("players", playerFields()...)

func playerFields() []sheetrow.Field[player.Player] {
	text := func(col int, name string, ref func(*player.Player) *string) sheetrow.Field[player.Player] {
		return sheetrow.Text(col, name, ref)
	}

	fields := []sheetrow.Field[player.Player]{
		sheetrow.TextOr(0, "playerId", func(p *player.Player) *string { return &p.ID }, sheetrow.IndexedID("player")),
		text(1, "name", func(p *player.Player) *string { return &p.Name }),
		text(2, "teamId", func(p *player.Player) *string { return &p.TeamID }),
		text(3, "dynastyTeam", func(p *player.Player) *string { return &p.DynastyTeam }),
		sheetrow.Custom(4, "rosterStatus",
			func(cell string, p *player.Player) { p.RosterStatus = player.ParseRosterStatus(cell) },
			func(p *player.Player) string { return string(p.RosterStatus) },
		),
		text(5, "nbaTeam", func(p *player.Player) *string { return &p.NBATeam }),
		text(6, "position", func(p *player.Player) *string { return &p.Position }),
		text(7, "birthDate", func(p *player.Player) *string { return &p.BirthDate }),
		sheetrow.Int(8, "age", func(p *player.Player) *int { return &p.Age }),
		text(9, "drafted", func(p *player.Player) *string { return &p.Drafted }),
		text(10, "signedVia", func(p *player.Player) *string { return &p.SignedVia }),
		text(11, "year", func(p *player.Player) *string { return &p.Year }),
		text(12, "contractLength", func(p *player.Player) *string { return &p.ContractLength }),
		text(13, "contractNotes", func(p *player.Player) *string { return &p.ContractNotes }),
		text(14, "extension", func(p *player.Player) *string { return &p.Extension }),
		text(15, "awards", func(p *player.Player) *string { return &p.Awards }),
		text(16, "playerHistoryLog", func(p *player.Player) *string { return &p.HistoryLog }),
		text(17, "rankType", func(p *player.Player) *string { return &p.RankType }),
		text(18, "twoYearRank", func(p *player.Player) *string { return &p.TwoYearRank }),
		text(19, "careerRank", func(p *player.Player) *string { return &p.CareerRank }),
		text(colCareerEarning, "careerEarnings", func(p *player.Player) *string { return &p.CareerEarnings }),
		text(colPhoto, "photo", func(p *player.Player) *string { return &p.Photo }),
	}

	for i, season := range player.RankSeasons {
		fields = append(fields, sheetrow.Custom(colFirstRank+i, "rank"+player.FieldKey(season),
			func(cell string, p *player.Player) {
				if p.Ranks == nil {
					p.Ranks = make(map[string]string, len(player.RankSeasons))
				}
				p.Ranks[season] = cell
			},
			func(p *player.Player) string { return p.Ranks[season] },
		))
	}

	for i, season := range player.LegacySeasons {
		fields = append(fields, sheetrow.Custom(colFirstLegacy+i, "salary"+player.FieldKey(season),
			func(cell string, p *player.Player) {
				if p.LegacySalaries == nil {
					p.LegacySalaries = make(map[string]float64, len(player.LegacySeasons))
				}
				p.LegacySalaries[season] = player.ParseSalary(cell).Value()
			},
			func(p *player.Player) string {
				return strconv.FormatFloat(p.LegacySalaries[season], 'f', -1, 64)
			},
		))
	}

	for i, season := range player.ContractSeasons {
		salaryCol := colFirstContract + 2*i
		fields = append(fields,
			sheetrow.Custom(salaryCol, "salary"+player.FieldKey(season),
				func(cell string, p *player.Player) {
					c := contractOf(p, season)
					c.Salary = player.ParseSalary(cell)
					p.Contracts[season] = c
				},
				func(p *player.Player) string { return p.Contracts[season].Salary.String() },
			),
			sheetrow.Custom(salaryCol+1, "option"+player.FieldKey(season),
				func(cell string, p *player.Player) {
					c := contractOf(p, season)
					c.Option = cell
					p.Contracts[season] = c
				},
				func(p *player.Player) string { return p.Contracts[season].Option },
			),
		)
	}

	return fields
}

func contractOf(p *player.Player, season string) player.Contract {
	if p.Contracts == nil {
		p.Contracts = make(map[string]player.Contract, len(player.ContractSeasons))
	}
	return p.Contracts[season]
}
