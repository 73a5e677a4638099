package state

import (
	"errors"
	"fmt"
)

// Phase is the lifecycle state of the session store.
type Phase string

const (
	// PhaseLoading is the initial state, before the first fetch join settles.
	PhaseLoading Phase = "loading"
	// PhaseReady means a snapshot is available and interaction is allowed.
	PhaseReady Phase = "ready"
	// PhaseRefreshing means a snapshot is available and a replacement fetch
	// is in flight.
	PhaseRefreshing Phase = "refreshing"
)

// Section identifies one navigable dashboard tab.
type Section string

const (
	SectionOverview      Section = "overview"
	SectionAnalytics     Section = "analytics"
	SectionAgents        Section = "agents"
	SectionInventory     Section = "inventory"
	SectionTransactions  Section = "transactions"
	SectionSettings      Section = "settings"
	SectionNotifications Section = "notifications"
)

var validSections = map[Section]bool{
	SectionOverview:      true,
	SectionAnalytics:     true,
	SectionAgents:        true,
	SectionInventory:     true,
	SectionTransactions:  true,
	SectionSettings:      true,
	SectionNotifications: true,
}

// ErrNotReady is returned for interactions attempted before the initial load
// has settled.
var ErrNotReady = errors.New("no data loaded yet")

// ParseSection validates a section identifier. Unknown identifiers are
// rejected, never coerced to a default.
func ParseSection(id string) (Section, error) {
	s := Section(id)
	if !validSections[s] {
		return "", fmt.Errorf("unknown section %q", id)
	}
	return s, nil
}
