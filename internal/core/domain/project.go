package domain

import "time"

// ProjectType distinguishes artist work from internal (non-recoupable) work.
type ProjectType string

const (
	ProjectArtist   ProjectType = "ARTIST"
	ProjectInternal ProjectType = "INTERNAL"
)

// ProjectMode selects the recoupment accounting strategy for a project.
// It is chosen at project creation and never changes mid-calculation.
type ProjectMode string

const (
	// ModeStandalone settles the project on its own: profit is split 50/50,
	// losses accrue to the artist's per-project balance.
	ModeStandalone ProjectMode = "STANDALONE"
	// ModeMainTab rolls the project's costs into the artist's shared tab;
	// the artist is paid immediately on gross income and the label's share
	// services the outstanding tab first.
	ModeMainTab ProjectMode = "MAIN_TAB"
)

// Project is a unit of creative-production work tracked against a budget.
type Project struct {
	ProjectID string      `json:"projectID"`
	Code      string      `json:"code"` // unique human-facing code, used by imports
	Name      string      `json:"name"`
	ArtistID  *string     `json:"artistID,omitempty"`
	Type      ProjectType `json:"type"`
	Mode      ProjectMode `json:"mode"`
	StartDate *time.Time  `json:"startDate,omitempty"`
	EndDate   *time.Time  `json:"endDate,omitempty"`
	AuditFields
}

// Artist is the party whose recoupment balances the ledger tracks.
type Artist struct {
	ArtistID string `json:"artistID"`
	Name     string `json:"name"`
	AuditFields
}
