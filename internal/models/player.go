package models

import (
	"time"

	"github.com/google/uuid"
)

// PlayerStatus defines the auction status of a player.
type PlayerStatus string

const (
	StatusAvailable PlayerStatus = "Available"
	StatusSoldOther PlayerStatus = "SoldOther"
	StatusBoughtUs  PlayerStatus = "BoughtUs"

	// StatusAll is a query-only sentinel that matches every status.
	// It is never stored on a player.
	StatusAll PlayerStatus = "All"
)

// Valid reports whether s is a storable player status.
func (s PlayerStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusSoldOther, StatusBoughtUs:
		return true
	default:
		return false
	}
}

// Label returns the human-readable form used in exports.
func (s PlayerStatus) Label() string {
	switch s {
	case StatusBoughtUs:
		return "Bought by Us"
	case StatusSoldOther:
		return "Sold to Others"
	default:
		return "Available"
	}
}

// Player represents one auction candidate.
//
// ActualPrice is set if and only if Status is BoughtUs. HandledAt is set if
// and only if Status is not Available. Transitions in the roster store
// maintain both invariants.
type Player struct {
	ID                uuid.UUID    `json:"id"`
	PlayerNo          string       `json:"player_no,omitempty"`
	Name              string       `json:"name"`
	ParishName        string       `json:"parish_name,omitempty"`
	PreassignedPoints float64      `json:"preassigned_points"`
	ActualPrice       *float64     `json:"actual_price,omitempty"`
	Status            PlayerStatus `json:"status"`
	Role              string       `json:"role,omitempty"`
	Priority          string       `json:"priority,omitempty"`
	Reasons           string       `json:"reasons,omitempty"`
	Notes             string       `json:"notes,omitempty"`
	HandledAt         *time.Time   `json:"handled_at,omitempty"`
}

// Clone returns a copy of the player that shares no pointers with the
// original.
func (p Player) Clone() Player {
	out := p
	if p.ActualPrice != nil {
		price := *p.ActualPrice
		out.ActualPrice = &price
	}
	if p.HandledAt != nil {
		at := *p.HandledAt
		out.HandledAt = &at
	}
	return out
}
