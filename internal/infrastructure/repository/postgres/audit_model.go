package postgres

import "time"

const auditTable = "selection_audit"

type auditTableModel struct {
	ID          string    `db:"id"`
	Kind        string    `db:"kind"`
	Week        string    `db:"week"`
	TeamID      string    `db:"team_id"`
	TeamName    string    `db:"team_name"`
	MatchupID   string    `db:"matchup_id"`
	Position    string    `db:"position"`
	ActorTeamID string    `db:"actor_team_id"`
	RowCount    int       `db:"row_count"`
	Changes     string    `db:"changes"`
	CreatedAt   time.Time `db:"created_at"`
}
