package models

import "github.com/google/uuid"

// AuctionState is the aggregate root for one auction session. Players keep
// their import order; no two players share an ID.
type AuctionState struct {
	TeamName    string   `json:"team_name"`
	TotalBudget float64  `json:"total_budget"`
	Players     []Player `json:"players"`
	IsStarted   bool     `json:"is_started"`
}

// Clone returns a deep copy of the state, safe to hand to readers while the
// original keeps being mutated.
func (s AuctionState) Clone() AuctionState {
	out := s
	if s.Players != nil {
		out.Players = make([]Player, len(s.Players))
		for i, p := range s.Players {
			out.Players[i] = p.Clone()
		}
	}
	return out
}

// FindPlayer returns the index of the player with the given ID, or -1 if no
// such player exists.
func (s AuctionState) FindPlayer(id uuid.UUID) int {
	for i, p := range s.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}
