package usecase

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/riskibarqy/dynasty-league/internal/domain/audit"
	"github.com/riskibarqy/dynasty-league/internal/domain/lineup"
	"github.com/riskibarqy/dynasty-league/internal/domain/player"
	"github.com/riskibarqy/dynasty-league/internal/domain/selection"
	"github.com/riskibarqy/dynasty-league/internal/domain/sheet"
	"github.com/riskibarqy/dynasty-league/internal/domain/user"
	"github.com/riskibarqy/dynasty-league/internal/infrastructure/repository/memory"
	selectionmock "github.com/riskibarqy/dynasty-league/internal/mocks/domain/selection"
	"github.com/riskibarqy/dynasty-league/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

var commissioner = user.Principal{TeamID: DefaultCommissionerTeamID, TeamName: "League Office", Role: user.RoleCommissioner}

func fullLineup(playerIDs ...string) []selection.Entry {
	out := make([]selection.Entry, 0, lineup.SlotCount)
	for i, slot := range lineup.Slots() {
		id := playerIDs[i%len(playerIDs)]
		out = append(out, selection.Entry{
			Position:     slot.Label,
			PlayerID:     id,
			PlayerName:   "Player " + id,
			NBATeam:      "BOS",
			GameDate:     "21/10/2025",
			SelectedGame: "vs NYK",
		})
	}
	return out
}

func hawksWeekOne(entries []selection.Entry) SubmitSelectionsInput {
	return SubmitSelectionsInput{
		Week:             "1",
		MatchupID:        "W1M1",
		TeamID:           "T001",
		TeamName:         "Harbour Hawks",
		OpponentTeamName: "Mountain Goats",
		Entries:          entries,
	}
}

func TestSelectionService_SubmitWritesOneRowPerEntry(t *testing.T) {
	t.Parallel()

	l := newLeague(t)
	svc := l.selectionService()

	res, err := svc.Submit(context.Background(), user.Principal{}, hawksWeekOne(fullLineup("P001", "P002", "P005")))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Written != lineup.SlotCount || res.Replaced != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}

	rows := l.selectionRows(t)
	if len(rows) != lineup.SlotCount {
		t.Fatalf("expected %d rows, got %d", lineup.SlotCount, len(rows))
	}
	first := rows[0]
	if first[selection.ColWeek] != "1" || first[selection.ColTeamID] != "T001" || first[selection.ColPosition] != "Guard 1" {
		t.Fatalf("unexpected first row: %v", first)
	}
	if got := first[selection.ColSubmitted]; got != "2025-10-22T09:30:00.000Z" {
		t.Fatalf("submitted timestamp = %q", got)
	}

	header, _ := l.store.Tab(memory.TabSelections)
	if header[0][0] != "Week" {
		t.Fatalf("header row must survive the rewrite, got %v", header[0])
	}
}

func TestSelectionService_SubmitIntoHeaderlessTab(t *testing.T) {
	t.Parallel()

	goatsRow := make([]string, selection.ColSubmitted+1)
	goatsRow[selection.ColWeek] = "1"
	goatsRow[selection.ColTeamID] = "T002"
	goatsRow[selection.ColPosition] = "Guard 1"

	tests := map[string][][]string{
		"empty tab":       nil,
		"blank first row": {{}, goatsRow},
	}

	for name, seed := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			l := newLeague(t)
			l.store.SetTab(memory.TabSelections, seed)

			if _, err := l.selectionService().Submit(context.Background(), user.Principal{}, hawksWeekOne(fullLineup("P001"))); err != nil {
				t.Fatalf("Submit: %v", err)
			}

			table, err := l.selections.Table(context.Background())
			if err != nil {
				t.Fatalf("Table: %v", err)
			}
			var hawks, goats int
			for _, row := range table.Rows {
				switch row[selection.ColTeamID] {
				case "T001":
					hawks++
				case "T002":
					goats++
				}
			}
			if hawks != lineup.SlotCount {
				t.Fatalf("expected %d rows for T001, got %d", lineup.SlotCount, hawks)
			}
			if want := len(seed) - 1; seed != nil && goats != want {
				t.Fatalf("expected %d rows for T002, got %d", want, goats)
			}
		})
	}
}

func TestSelectionService_ResubmitReplacesTeamWeek(t *testing.T) {
	t.Parallel()

	l := newLeague(t)
	svc := l.selectionService()
	ctx := context.Background()

	if _, err := svc.Submit(ctx, user.Principal{}, hawksWeekOne(fullLineup("P001"))); err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	goats := SubmitSelectionsInput{
		Week:      "1",
		MatchupID: "W1M1",
		TeamID:    "T002",
		TeamName:  "Mountain Goats",
		Entries:   fullLineup("P006"),
	}
	if _, err := svc.Submit(ctx, user.Principal{}, goats); err != nil {
		t.Fatalf("other team Submit: %v", err)
	}

	res, err := svc.Submit(ctx, user.Principal{}, hawksWeekOne(fullLineup("P002")))
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if res.Replaced != lineup.SlotCount {
		t.Fatalf("expected %d replaced rows, got %d", lineup.SlotCount, res.Replaced)
	}

	rows := l.selectionRows(t)
	if len(rows) != 2*lineup.SlotCount {
		t.Fatalf("expected %d rows, got %d", 2*lineup.SlotCount, len(rows))
	}
	var hawks, goatsRows int
	for _, row := range rows {
		switch row[selection.ColTeamID] {
		case "T001":
			hawks++
			if row[selection.ColPlayerID] != "P002" {
				t.Fatalf("stale hawks row survived: %v", row)
			}
		case "T002":
			goatsRows++
		}
	}
	if hawks != lineup.SlotCount || goatsRows != lineup.SlotCount {
		t.Fatalf("hawks=%d goats=%d", hawks, goatsRows)
	}
}

func TestSelectionService_SubmitIsIdempotent(t *testing.T) {
	t.Parallel()

	l := newLeague(t)
	svc := l.selectionService()
	input := hawksWeekOne(fullLineup("P001", "P002"))

	for range 2 {
		if _, err := svc.Submit(context.Background(), user.Principal{}, input); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	if got := len(l.selectionRows(t)); got != lineup.SlotCount {
		t.Fatalf("expected %d rows after resubmit, got %d", lineup.SlotCount, got)
	}
}

func TestSelectionService_SubmitAllowsDuplicatePlayers(t *testing.T) {
	t.Parallel()

	l := newLeague(t)
	svc := l.selectionService()

	if _, err := svc.Submit(context.Background(), user.Principal{}, hawksWeekOne(fullLineup("P001"))); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	for _, row := range l.selectionRows(t) {
		if row[selection.ColPlayerID] != "P001" {
			t.Fatalf("unexpected row %v", row)
		}
	}
}

func TestSelectionService_SubmitEmptySelectionsClearsTeamWeek(t *testing.T) {
	t.Parallel()

	l := newLeague(t)
	svc := l.selectionService()
	ctx := context.Background()

	if _, err := svc.Submit(ctx, user.Principal{}, hawksWeekOne(fullLineup("P001"))); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	res, err := svc.Submit(ctx, user.Principal{}, hawksWeekOne([]selection.Entry{}))
	if err != nil {
		t.Fatalf("empty Submit: %v", err)
	}
	if res.Written != 0 || res.Replaced != lineup.SlotCount {
		t.Fatalf("unexpected result: %+v", res)
	}
	if got := len(l.selectionRows(t)); got != 0 {
		t.Fatalf("expected no rows, got %d", got)
	}
}

func TestSelectionService_SubmitRecordsAudit(t *testing.T) {
	t.Parallel()

	l := newLeague(t)
	svc := l.selectionService()
	actor := user.Principal{TeamID: "T001", TeamName: "Harbour Hawks", Role: user.RoleTeam}

	if _, err := svc.Submit(context.Background(), actor, hawksWeekOne(fullLineup("P001"))); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	entries, err := l.audit.List(context.Background(), audit.Filter{})
	if err != nil {
		t.Fatalf("List audit: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one audit entry, got %d", len(entries))
	}
	got := entries[0]
	if got.Kind != audit.KindSubmit || got.ActorTeamID != "T001" || got.RowCount != lineup.SlotCount || got.ID == "" {
		t.Fatalf("unexpected audit entry: %+v", got)
	}
	if !got.CreatedAt.Equal(fixedNow) {
		t.Fatalf("created at = %v", got.CreatedAt)
	}
}

func TestSelectionService_SubmitRejectsMissingFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*SubmitSelectionsInput)
	}{
		{name: "week", mutate: func(in *SubmitSelectionsInput) { in.Week = " " }},
		{name: "team id", mutate: func(in *SubmitSelectionsInput) { in.TeamID = "" }},
		{name: "team name", mutate: func(in *SubmitSelectionsInput) { in.TeamName = "" }},
		{name: "selections", mutate: func(in *SubmitSelectionsInput) { in.Entries = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := selectionmock.NewRepository(t)
			svc := NewSelectionService(repo, nil, nil, nil, SelectionServiceConfig{}, logging.NewNop())

			input := hawksWeekOne(fullLineup("P001"))
			tc.mutate(&input)
			_, err := svc.Submit(context.Background(), user.Principal{}, input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSelectionService_SubmitSurfacesWriteFailure(t *testing.T) {
	t.Parallel()

	repo := selectionmock.NewRepository(t)
	repo.On("Table", mock.Anything).Return(sheet.Table{Header: []string{"Week"}}, nil).Once()
	repo.On("EncodeRows", mock.Anything).Return([][]string{{"1", "W1M1", "T001"}}).Once()
	repo.On("Replace", mock.Anything, mock.Anything).Return(ErrDependencyUnavailable).Once()

	svc := NewSelectionService(repo, nil, nil, nil, SelectionServiceConfig{}, logging.NewNop())
	_, err := svc.Submit(context.Background(), user.Principal{}, hawksWeekOne(fullLineup("P001")))
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func editInput(changes selection.Changes) EditSelectionInput {
	return EditSelectionInput{
		Week:      "1",
		MatchupID: "W1M1",
		TeamName:  "Harbour Hawks",
		Position:  "Guard 1",
		Changes:   changes,
	}
}

func TestSelectionService_EditPatchesOneRow(t *testing.T) {
	t.Parallel()

	l := newLeague(t)
	svc := l.selectionService()
	ctx := context.Background()

	if _, err := svc.Submit(ctx, user.Principal{}, hawksWeekOne(fullLineup("P001", "P002"))); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	before := l.selectionRows(t)

	res, err := svc.Edit(ctx, commissioner, true, editInput(selection.Changes{
		PlayerID:   strPtr("P005"),
		PlayerName: strPtr("Emery Shaw"),
	}))
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if res.Changes["playerId"] != "P005" || res.Position != "Guard 1" {
		t.Fatalf("unexpected result: %+v", res)
	}

	after := l.selectionRows(t)
	if len(after) != len(before) {
		t.Fatalf("row count changed from %d to %d", len(before), len(after))
	}
	changed := 0
	for i := range after {
		if !slices.Equal(trimRow(before[i]), trimRow(after[i])) {
			changed++
			if after[i][selection.ColPlayerID] != "P005" || after[i][selection.ColPlayerName] != "Emery Shaw" {
				t.Fatalf("unexpected patched row: %v", after[i])
			}
			if after[i][selection.ColNBATeam] != before[i][selection.ColNBATeam] {
				t.Fatalf("untouched cell changed: %v", after[i])
			}
		}
	}
	if changed != 1 {
		t.Fatalf("expected exactly one changed row, got %d", changed)
	}

	entries, _ := l.audit.List(ctx, audit.Filter{})
	if len(entries) != 2 || entries[0].Kind != audit.KindEdit || entries[0].TeamID != "T001" {
		t.Fatalf("unexpected audit trail: %+v", entries)
	}
}

func TestSelectionService_EditNBAOppositionAlias(t *testing.T) {
	t.Parallel()

	l := newLeague(t)
	svc := l.selectionService()
	ctx := context.Background()

	if _, err := svc.Submit(ctx, user.Principal{}, hawksWeekOne(fullLineup("P001"))); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := svc.Edit(ctx, commissioner, true, editInput(selection.Changes{NBAOpposition: strPtr("@ MIA")})); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	row := l.selectionRows(t)[0]
	if row[selection.ColSelectedGame] != "@ MIA" {
		t.Fatalf("selected game = %q", row[selection.ColSelectedGame])
	}
}

func TestSelectionService_EditAuthorization(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		actor         user.Principal
		authenticated bool
		want          error
	}{
		{name: "anonymous", want: ErrUnauthorized},
		{name: "team manager", actor: user.Principal{TeamID: "T001", Role: user.RoleTeam}, authenticated: true, want: ErrForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := selectionmock.NewRepository(t)
			svc := NewSelectionService(repo, nil, nil, nil, SelectionServiceConfig{}, logging.NewNop())

			_, err := svc.Edit(context.Background(), tc.actor, tc.authenticated, editInput(selection.Changes{PlayerID: strPtr("P002")}))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestSelectionService_EditValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input EditSelectionInput
	}{
		{name: "missing position", input: EditSelectionInput{Week: "1", MatchupID: "W1M1", TeamName: "Harbour Hawks", Changes: selection.Changes{PlayerID: strPtr("P002")}}},
		{name: "no changes", input: editInput(selection.Changes{})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := selectionmock.NewRepository(t)
			svc := NewSelectionService(repo, nil, nil, nil, SelectionServiceConfig{}, logging.NewNop())

			if _, err := svc.Edit(context.Background(), commissioner, true, tc.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSelectionService_EditNoMatchDoesNotWrite(t *testing.T) {
	t.Parallel()

	repo := selectionmock.NewRepository(t)
	repo.On("Table", mock.Anything).Return(sheet.Table{
		Header: []string{"Week", "MatchupID", "TeamID", "TeamName", "OpponentTeamName", "Position"},
		Rows:   [][]string{{"1", "W1M1", "T001", "Harbour Hawks", "Mountain Goats", "Guard 2"}},
	}, nil).Once()

	svc := NewSelectionService(repo, nil, nil, nil, SelectionServiceConfig{}, logging.NewNop())
	_, err := svc.Edit(context.Background(), commissioner, true, editInput(selection.Changes{PlayerID: strPtr("P002")}))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSelectionService_EditEmptyTab(t *testing.T) {
	t.Parallel()

	repo := selectionmock.NewRepository(t)
	repo.On("Table", mock.Anything).Return(sheet.Table{}, nil).Once()

	svc := NewSelectionService(repo, nil, nil, nil, SelectionServiceConfig{}, logging.NewNop())
	_, err := svc.Edit(context.Background(), commissioner, true, editInput(selection.Changes{PlayerID: strPtr("P002")}))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

type stubPlayers struct {
	players []player.Player
	err     error
}

func (s stubPlayers) List(context.Context) ([]player.Player, error) {
	return s.players, s.err
}

func TestSelectionService_ListJoinsPhotosByName(t *testing.T) {
	t.Parallel()

	repo := selectionmock.NewRepository(t)
	filter := selection.Filter{Week: "1", TeamID: "T001"}
	repo.On("List", mock.Anything, filter).Return([]selection.Selection{
		{Week: "1", TeamID: "T001", PlayerName: "  Avery Cole "},
		{Week: "1", TeamID: "T001", PlayerName: "Unknown Player"},
	}, nil).Once()

	players := stubPlayers{players: []player.Player{
		{ID: "P001", Name: "AVERY COLE", Photo: "https://img.example.com/p001.png"},
	}}
	svc := NewSelectionService(repo, players, nil, nil, SelectionServiceConfig{}, logging.NewNop())

	items, err := svc.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if items[0].PhotoURL != "https://img.example.com/p001.png" {
		t.Fatalf("photo not joined: %+v", items[0])
	}
	if items[1].PhotoURL != "" {
		t.Fatalf("unexpected photo for unknown player: %+v", items[1])
	}
}

func TestSelectionService_ListFallsBackWhenPhotosFail(t *testing.T) {
	t.Parallel()

	repo := selectionmock.NewRepository(t)
	repo.On("List", mock.Anything, selection.Filter{}).Return([]selection.Selection{{PlayerName: "Avery Cole"}}, nil).Once()

	svc := NewSelectionService(repo, stubPlayers{err: errors.New("players tab down")}, nil, nil, SelectionServiceConfig{}, logging.NewNop())
	items, err := svc.List(context.Background(), selection.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 || items[0].PhotoURL != "" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestSelectionService_ListAuditIsCommissionerOnly(t *testing.T) {
	t.Parallel()

	l := newLeague(t)
	svc := l.selectionService()
	ctx := context.Background()

	if _, err := svc.Submit(ctx, user.Principal{}, hawksWeekOne(fullLineup("P001"))); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := svc.ListAudit(ctx, user.Principal{TeamID: "T001"}, true, audit.Filter{}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	entries, err := svc.ListAudit(ctx, commissioner, true, audit.Filter{TeamID: "T001"})
	if err != nil {
		t.Fatalf("ListAudit: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
}
