package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/dynasty-league/internal/domain/audit"
	qb "github.com/riskibarqy/dynasty-league/internal/platform/querybuilder"
)

const defaultAuditLimit = 200

type AuditRepository struct {
	db *sqlx.DB
}

func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, entry audit.Entry) error {
	row, err := auditToRow(entry)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertModel(auditTable, row, "")
	if err != nil {
		return fmt.Errorf("build insert audit query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert audit: duplicate id %s: %w", entry.ID, err)
		}
		if isUndefinedTable(err) {
			return fmt.Errorf("insert audit: table %s missing, run migrations: %w", auditTable, err)
		}
		return fmt.Errorf("insert audit: %w", err)
	}
	return nil
}

// List returns matching entries newest first.
func (r *AuditRepository) List(ctx context.Context, filter audit.Filter) ([]audit.Entry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultAuditLimit
	}

	b := qb.Select("*").From(auditTable)
	b.Where(qb.When(filter.Week != "", qb.Eq("week", filter.Week))...)
	b.Where(qb.When(filter.TeamID != "", qb.Eq("team_id", filter.TeamID))...)
	query, args, err := b.OrderBy("created_at DESC", "id DESC").Limit(limit).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list audit query: %w", err)
	}

	var rows []auditTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		if isNotFound(err) {
			return []audit.Entry{}, nil
		}
		return nil, fmt.Errorf("list audit: %w", err)
	}

	out := make([]audit.Entry, 0, len(rows))
	for _, row := range rows {
		entry, err := auditFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

func auditToRow(entry audit.Entry) (auditTableModel, error) {
	changes := entry.Changes
	if changes == nil {
		changes = map[string]string{}
	}
	raw, err := sonic.Marshal(changes)
	if err != nil {
		return auditTableModel{}, fmt.Errorf("encode audit changes: %w", err)
	}

	return auditTableModel{
		ID:          entry.ID,
		Kind:        string(entry.Kind),
		Week:        entry.Week,
		TeamID:      entry.TeamID,
		TeamName:    entry.TeamName,
		MatchupID:   entry.MatchupID,
		Position:    entry.Position,
		ActorTeamID: entry.ActorTeamID,
		RowCount:    entry.RowCount,
		Changes:     string(raw),
		CreatedAt:   entry.CreatedAt.UTC(),
	}, nil
}

func auditFromRow(row auditTableModel) (audit.Entry, error) {
	changes := map[string]string{}
	if len(row.Changes) > 0 {
		if err := sonic.UnmarshalString(row.Changes, &changes); err != nil {
			return audit.Entry{}, fmt.Errorf("decode audit changes %s: %w", row.ID, err)
		}
	}

	return audit.Entry{
		ID:          row.ID,
		Kind:        audit.Kind(row.Kind),
		Week:        row.Week,
		TeamID:      row.TeamID,
		TeamName:    row.TeamName,
		MatchupID:   row.MatchupID,
		Position:    row.Position,
		ActorTeamID: row.ActorTeamID,
		RowCount:    row.RowCount,
		Changes:     changes,
		CreatedAt:   row.CreatedAt,
	}, nil
}
