package lineup

import (
	"slices"
	"strings"

	"github.com/riskibarqy/dynasty-league/internal/domain/player"
	"github.com/riskibarqy/dynasty-league/internal/domain/schedule"
	"github.com/riskibarqy/dynasty-league/internal/domain/selection"
)

// Assignment is the draft state of one slot.
type Assignment struct {
	Slot     Slot
	PlayerID string
	GameID   string
}

func (a Assignment) Filled() bool {
	return a.PlayerID != "" && a.GameID != ""
}

// Builder holds a team's draft lineup for one week. It is not safe for
// concurrent use.
type Builder struct {
	assignments map[SlotID]*Assignment
	roster      []player.Player
	byID        map[string]int
	games       map[string]schedule.Game
}

// NewBuilder starts an empty draft over roster. games may be nil; when set it
// is used to resolve game ids into dates and display strings.
func NewBuilder(roster []player.Player, games []schedule.Game) *Builder {
	b := &Builder{
		assignments: make(map[SlotID]*Assignment, SlotCount),
		roster:      slices.Clone(roster),
		byID:        make(map[string]int, len(roster)),
		games:       make(map[string]schedule.Game, len(games)),
	}
	for _, s := range slots {
		b.assignments[s.ID] = &Assignment{Slot: s}
	}
	for i, p := range b.roster {
		if _, seen := b.byID[p.ID]; !seen {
			b.byID[p.ID] = i
		}
	}
	for _, g := range games {
		b.games[g.ID()] = g
	}
	return b
}

// AssignPlayer sets the slot's player and clears its game, which was scoped to
// the previous player's team. Unknown slots or players are ignored.
func (b *Builder) AssignPlayer(slotID SlotID, playerID string) {
	a, ok := b.assignments[slotID]
	if !ok {
		return
	}
	if _, ok := b.byID[playerID]; !ok {
		return
	}
	a.PlayerID = playerID
	a.GameID = ""
}

// AssignGame sets the slot's game id ("nbaTeam-date").
func (b *Builder) AssignGame(slotID SlotID, gameID string) {
	a, ok := b.assignments[slotID]
	if !ok {
		return
	}
	a.GameID = gameID
}

func (b *Builder) ClearSlot(slotID SlotID) {
	a, ok := b.assignments[slotID]
	if !ok {
		return
	}
	a.PlayerID = ""
	a.GameID = ""
}

// AvailablePlayers lists selectable roster players of class that are not
// already used by a slot other than excludingSlotID, highest current salary
// first. Ties keep roster order.
func (b *Builder) AvailablePlayers(class Class, excludingSlotID SlotID) []player.Player {
	used := make(map[string]struct{}, SlotCount)
	for id, a := range b.assignments {
		if id == excludingSlotID || a.PlayerID == "" {
			continue
		}
		used[a.PlayerID] = struct{}{}
	}

	out := make([]player.Player, 0, len(b.roster))
	for _, p := range b.roster {
		if !p.RosterStatus.Selectable() {
			continue
		}
		if _, taken := used[p.ID]; taken {
			continue
		}
		if !ClassAccepts(class, p.Position) {
			continue
		}
		out = append(out, p)
	}

	slices.SortStableFunc(out, func(x, y player.Player) int {
		sx, sy := x.CurrentSalary(), y.CurrentSalary()
		switch {
		case sx > sy:
			return -1
		case sx < sy:
			return 1
		default:
			return 0
		}
	})
	return out
}

// IsReadyToSubmit reports whether every fixed slot has a player and a game.
func (b *Builder) IsReadyToSubmit() bool {
	return len(b.Unfilled()) == 0
}

// Unfilled lists slots missing a player or a game, in slot order.
func (b *Builder) Unfilled() []SlotID {
	var out []SlotID
	for _, s := range slots {
		if !b.assignments[s.ID].Filled() {
			out = append(out, s.ID)
		}
	}
	return out
}

// DuplicatePlayers lists player ids assigned to more than one slot.
func (b *Builder) DuplicatePlayers() []string {
	counts := make(map[string]int, SlotCount)
	var order []string
	for _, s := range slots {
		id := b.assignments[s.ID].PlayerID
		if id == "" {
			continue
		}
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}

	var out []string
	for _, id := range order {
		if counts[id] > 1 {
			out = append(out, id)
		}
	}
	return out
}

func (b *Builder) Assignment(slotID SlotID) (Assignment, bool) {
	a, ok := b.assignments[slotID]
	if !ok {
		return Assignment{}, false
	}
	return *a, true
}

// Assignments returns the draft in slot order.
func (b *Builder) Assignments() []Assignment {
	out := make([]Assignment, 0, SlotCount)
	for _, s := range slots {
		out = append(out, *b.assignments[s.ID])
	}
	return out
}

// Selections materialises submit entries for filled slots, in slot order.
func (b *Builder) Selections() []selection.Entry {
	out := make([]selection.Entry, 0, SlotCount)
	for _, a := range b.Assignments() {
		if a.PlayerID == "" {
			continue
		}
		p := b.roster[b.byID[a.PlayerID]]
		entry := selection.Entry{
			Position:   a.Slot.Label,
			PlayerID:   p.ID,
			PlayerName: p.Name,
			NBATeam:    p.NBATeam,
		}
		if g, ok := b.games[a.GameID]; ok {
			entry.GameDate = g.Date
			entry.SelectedGame = g.Display()
		} else {
			entry.GameDate = strings.TrimPrefix(a.GameID, p.NBATeam+"-")
		}
		out = append(out, entry)
	}
	return out
}
