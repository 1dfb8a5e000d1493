package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/dynasty-league/internal/domain/audit"
	"github.com/riskibarqy/dynasty-league/internal/domain/player"
	"github.com/riskibarqy/dynasty-league/internal/domain/selection"
	"github.com/riskibarqy/dynasty-league/internal/domain/user"
	idgen "github.com/riskibarqy/dynasty-league/internal/platform/id"
	"github.com/riskibarqy/dynasty-league/internal/platform/logging"
)

// submittedLayout is ISO-8601 UTC with milliseconds.
const submittedLayout = "2006-01-02T15:04:05.000Z07:00"

type SubmitSelectionsInput struct {
	Week             string
	MatchupID        string
	TeamID           string
	TeamName         string
	OpponentTeamName string
	// Entries is nil when the request carried no selections at all. An empty,
	// non-nil slice clears the team's week.
	Entries []selection.Entry
}

type SubmitSelectionsResult struct {
	Written  int
	Replaced int
}

type EditSelectionInput struct {
	Week      string
	MatchupID string
	TeamName  string
	Position  string
	Changes   selection.Changes
}

type EditSelectionResult struct {
	Week      string
	MatchupID string
	TeamName  string
	Position  string
	Changes   map[string]string
}

type SelectionService struct {
	selectionRepo      selection.Repository
	playerRepo         player.Repository
	auditRepo          audit.Repository
	idGen              idgen.Generator
	commissionerTeamID string
	logger             *logging.Logger
	now                func() time.Time

	// writeMu serialises read-modify-write cycles on the selections tab within
	// this process.
	writeMu sync.Mutex
}

type SelectionServiceConfig struct {
	CommissionerTeamID string
}

func NewSelectionService(
	selectionRepo selection.Repository,
	playerRepo player.Repository,
	auditRepo audit.Repository,
	idGen idgen.Generator,
	cfg SelectionServiceConfig,
	logger *logging.Logger,
) *SelectionService {
	if logger == nil {
		logger = logging.Default()
	}
	commissioner := strings.TrimSpace(cfg.CommissionerTeamID)
	if commissioner == "" {
		commissioner = DefaultCommissionerTeamID
	}

	return &SelectionService{
		selectionRepo:      selectionRepo,
		playerRepo:         playerRepo,
		auditRepo:          auditRepo,
		idGen:              idGen,
		commissionerTeamID: commissioner,
		logger:             logger,
		now:                time.Now,
	}
}

// Submit replaces every row of (week, teamId) with one row per entry and
// rewrites the whole selections range.
func (s *SelectionService) Submit(ctx context.Context, actor user.Principal, input SubmitSelectionsInput) (SubmitSelectionsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SelectionService.Submit")
	defer span.End()

	input.Week = strings.TrimSpace(input.Week)
	input.TeamID = strings.TrimSpace(input.TeamID)
	input.TeamName = strings.TrimSpace(input.TeamName)
	if input.Week == "" || input.TeamID == "" || input.TeamName == "" || input.Entries == nil {
		s.logger.WarnContext(ctx, "selection submit missing required fields",
			"week", input.Week,
			"team_id", input.TeamID,
			"has_selections", input.Entries != nil,
		)
		return SubmitSelectionsResult{}, fmt.Errorf("%w: Missing required fields", ErrInvalidInput)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	table, err := s.selectionRepo.Table(ctx)
	if err != nil {
		return SubmitSelectionsResult{}, fmt.Errorf("read selections table: %w", err)
	}

	submittedAt := s.timestamp()
	kept, replaced := selection.DropTeamWeek(table.Rows, input.Week, input.TeamID)
	sub := selection.Submission{
		Week:             input.Week,
		MatchupID:        input.MatchupID,
		TeamID:           input.TeamID,
		TeamName:         input.TeamName,
		OpponentTeamName: input.OpponentTeamName,
		Entries:          input.Entries,
	}
	fresh := s.selectionRepo.EncodeRows(sub.Selections(submittedAt))
	table.Rows = append(kept, fresh...)

	if err := s.selectionRepo.Replace(ctx, table); err != nil {
		return SubmitSelectionsResult{}, fmt.Errorf("replace selections table: %w", err)
	}

	s.logger.InfoContext(ctx, "selections submitted",
		"week", input.Week,
		"team_id", input.TeamID,
		"rows", len(fresh),
		"replaced", replaced,
	)
	s.recordAudit(ctx, audit.Entry{
		Kind:        audit.KindSubmit,
		Week:        input.Week,
		TeamID:      input.TeamID,
		TeamName:    input.TeamName,
		MatchupID:   input.MatchupID,
		ActorTeamID: actor.TeamID,
		RowCount:    len(fresh),
	})

	return SubmitSelectionsResult{Written: len(fresh), Replaced: replaced}, nil
}

// Edit patches the first row matching the key. Only the commissioner may edit.
func (s *SelectionService) Edit(ctx context.Context, actor user.Principal, authenticated bool, input EditSelectionInput) (EditSelectionResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SelectionService.Edit")
	defer span.End()

	if err := requireCommissioner(actor, authenticated, s.commissionerTeamID); err != nil {
		return EditSelectionResult{}, err
	}

	key := selection.Key{
		Week:      strings.TrimSpace(input.Week),
		MatchupID: strings.TrimSpace(input.MatchupID),
		TeamName:  strings.TrimSpace(input.TeamName),
		Position:  strings.TrimSpace(input.Position),
	}
	if key.Week == "" || key.MatchupID == "" || key.TeamName == "" || key.Position == "" {
		return EditSelectionResult{}, fmt.Errorf("%w: Missing required fields: week, matchupId, teamName, position", ErrInvalidInput)
	}
	if input.Changes.Empty() {
		return EditSelectionResult{}, fmt.Errorf("%w: No changes provided", ErrInvalidInput)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	table, err := s.selectionRepo.Table(ctx)
	if err != nil {
		return EditSelectionResult{}, fmt.Errorf("read selections table: %w", err)
	}
	if table.Header == nil && len(table.Rows) == 0 {
		return EditSelectionResult{}, fmt.Errorf("%w: No selections found", ErrNotFound)
	}

	idx := selection.FindRow(table.Rows, key)
	if idx < 0 {
		return EditSelectionResult{}, fmt.Errorf("%w: No matching selection found", ErrNotFound)
	}
	table.Rows[idx] = input.Changes.Apply(table.Rows[idx], s.timestamp())

	if err := s.selectionRepo.Replace(ctx, table); err != nil {
		return EditSelectionResult{}, fmt.Errorf("replace selections table: %w", err)
	}

	changes := input.Changes.Fields()
	s.logger.InfoContext(ctx, "selection edited",
		"week", key.Week,
		"matchup_id", key.MatchupID,
		"team_name", key.TeamName,
		"position", key.Position,
		"actor_team_id", actor.TeamID,
	)
	s.recordAudit(ctx, audit.Entry{
		Kind:        audit.KindEdit,
		Week:        key.Week,
		TeamID:      strings.TrimSpace(table.Rows[idx][selection.ColTeamID]),
		TeamName:    key.TeamName,
		MatchupID:   key.MatchupID,
		Position:    key.Position,
		ActorTeamID: actor.TeamID,
		RowCount:    1,
		Changes:     changes,
	})

	return EditSelectionResult{
		Week:      key.Week,
		MatchupID: key.MatchupID,
		TeamName:  key.TeamName,
		Position:  key.Position,
		Changes:   changes,
	}, nil
}

// List reads scored selections and joins player photos by name. A failed join
// is logged and the selections are returned without photos.
func (s *SelectionService) List(ctx context.Context, filter selection.Filter) ([]selection.Selection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SelectionService.List")
	defer span.End()

	items, err := s.selectionRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	if len(items) == 0 || s.playerRepo == nil {
		return items, nil
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "photo enrichment failed, returning base selections", "error", err)
		return items, nil
	}

	photos := make(map[string]string, len(players))
	for _, p := range players {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		photos[strings.ToLower(name)] = strings.TrimSpace(p.Photo)
	}
	for i := range items {
		items[i].PhotoURL = photos[strings.ToLower(strings.TrimSpace(items[i].PlayerName))]
	}
	return items, nil
}

// ListAudit returns recorded writes, newest first. Commissioner only.
func (s *SelectionService) ListAudit(ctx context.Context, actor user.Principal, authenticated bool, filter audit.Filter) ([]audit.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SelectionService.ListAudit")
	defer span.End()

	if err := requireCommissioner(actor, authenticated, s.commissionerTeamID); err != nil {
		return nil, err
	}
	if s.auditRepo == nil {
		return []audit.Entry{}, nil
	}

	entries, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list selection audit: %w", err)
	}
	return entries, nil
}

func (s *SelectionService) recordAudit(ctx context.Context, entry audit.Entry) {
	if s.auditRepo == nil {
		return
	}

	if s.idGen != nil {
		id, err := s.idGen.NewID()
		if err != nil {
			s.logger.WarnContext(ctx, "generate audit id failed", "error", err)
			return
		}
		entry.ID = id
	}
	entry.CreatedAt = s.now().UTC()

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.logger.WarnContext(ctx, "record selection audit failed",
			"kind", entry.Kind,
			"week", entry.Week,
			"team_id", entry.TeamID,
			"error", err,
		)
	}
}

func (s *SelectionService) timestamp() string {
	return s.now().UTC().Format(submittedLayout)
}
