package querybuilder

import (
	"reflect"
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "kind").
		From("selection_audit").
		Where(Eq("week", "3"), IsNull("deleted_at")).
		Where(When(false, Eq("team_id", "T001"))...).
		OrderBy("created_at DESC").
		Limit(50).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, kind FROM selection_audit WHERE week = $1 AND deleted_at IS NULL ORDER BY created_at DESC LIMIT 50"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{"3"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID        string    `db:"id"`
		Week      string    `db:"week,omitempty"`
		Skipped   string    `db:"-"`
		Untagged  string
		CreatedAt time.Time `db:"created_at"`
		hidden    string    `db:"hidden"`
	}
	ts := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	query, args, err := InsertModel("selection_audit", row{ID: "a1", Week: "3", CreatedAt: ts, hidden: "x"}, "ON CONFLICT DO NOTHING")
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	wantQuery := "INSERT INTO selection_audit (id, week, created_at) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{"a1", "3", ts}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_ValueCountMismatch(t *testing.T) {
	if _, _, err := InsertInto("t").Columns("a", "b").Values(1).ToSQL(); err == nil {
		t.Fatalf("expected mismatch error")
	}
}
