package player

import "strings"

// RosterStatus classifies a player within a dynasty team and drives cap weighting.
type RosterStatus string

const (
	StatusActive      RosterStatus = "ACTIVE"
	StatusDevelopment RosterStatus = "DEVELOPMENT"
	StatusInjury      RosterStatus = "INJURY"
)

// ParseRosterStatus normalises a stored status; anything unknown is ACTIVE.
func ParseRosterStatus(raw string) RosterStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "DEV", "DEVELOPMENTAL", "DEVELOPMENT":
		return StatusDevelopment
	case "IR", "INJ", "INJURY":
		return StatusInjury
	default:
		return StatusActive
	}
}

// LookupRosterStatus is the strict form used for query filters.
func LookupRosterStatus(raw string) (RosterStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "DEV", "DEVELOPMENTAL", "DEVELOPMENT":
		return StatusDevelopment, true
	case "IR", "INJ", "INJURY":
		return StatusInjury, true
	case "ACTIVE":
		return StatusActive, true
	default:
		return "", false
	}
}

// Selectable reports whether the player may fill a weekly lineup slot.
func (s RosterStatus) Selectable() bool {
	return s == StatusActive || s == StatusDevelopment
}
