package player

// CurrentSeason is the first season with a full contract column pair.
const CurrentSeason = "25-26"

// LegacySeasons hold numeric-only salary history.
var LegacySeasons = []string{"21-22", "22-23", "23-24", "24-25"}

// ContractSeasons hold salary and option pairs, in column order.
var ContractSeasons = []string{
	"25-26", "26-27", "27-28", "28-29", "29-30",
	"30-31", "31-32", "32-33", "33-34", "34-35",
}

// RankSeasons label the per-season rank columns.
var RankSeasons = []string{
	"21-22", "22-23", "23-24", "24-25",
	"25-26", "26-27", "27-28", "28-29",
}

// FieldKey renders a season as a column key suffix: "25-26" becomes "25_26".
func FieldKey(season string) string {
	out := []byte(season)
	for i, ch := range out {
		if ch == '-' {
			out[i] = '_'
		}
	}
	return string(out)
}
