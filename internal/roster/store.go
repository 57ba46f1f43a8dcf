package roster

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/mcdev12/auctiontracker/internal/models"
)

// SnapshotRepository persists the auction state outside the process. Load
// must return the zero-value default state (not an error) when no snapshot
// exists yet.
type SnapshotRepository interface {
	Save(ctx context.Context, state models.AuctionState) error
	Load(ctx context.Context) (models.AuctionState, error)
}

// Store owns the canonical AuctionState and is the only component allowed to
// mutate player status and price. Guards refuse silently: invalid operations
// return false without partial effect, and callers are expected to validate
// preconditions up front.
//
// Every successful mutation triggers a fire-and-forget snapshot save; save
// failures are logged and never propagated, keeping persistence off the read
// path.
type Store struct {
	mu    sync.Mutex
	state models.AuctionState

	clock  clockwork.Clock
	repo   SnapshotRepository // nil disables persistence
	logger zerolog.Logger
}

// NewStore creates a store holding the zero-value default state.
func NewStore(clock clockwork.Clock, repo SnapshotRepository, logger zerolog.Logger) *Store {
	return &Store{
		clock:  clock,
		repo:   repo,
		logger: logger,
	}
}

// Restore replaces the in-memory state with the persisted snapshot. Meant for
// process start; an absent snapshot restores the default state.
func (s *Store) Restore(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	state, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	s.logger.Info().
		Str("team", state.TeamName).
		Int("players", len(state.Players)).
		Bool("started", state.IsStarted).
		Msg("restored auction state from snapshot")
	return nil
}

// StartSession opens the auction session. Refused unless teamName is
// non-empty and budget is a positive finite number.
func (s *Store) StartSession(teamName string, budget float64) bool {
	if teamName == "" || budget <= 0 || math.IsNaN(budget) || math.IsInf(budget, 0) {
		s.logger.Warn().Str("team", teamName).Float64("budget", budget).Msg("refused to start session")
		return false
	}

	s.mu.Lock()
	s.state.TeamName = teamName
	s.state.TotalBudget = budget
	s.state.IsStarted = true
	s.mu.Unlock()

	s.logger.Info().Str("team", teamName).Float64("budget", budget).Msg("session started")
	s.persist()
	return true
}

// MergeImportedPlayers appends confirmed import candidates to the roster,
// preserving order. Duplicate names are allowed to coexist; flagging them was
// the import pipeline's job and the judgment call is the operator's.
func (s *Store) MergeImportedPlayers(candidates []models.Player) {
	if len(candidates) == 0 {
		return
	}

	s.mu.Lock()
	for _, c := range candidates {
		s.state.Players = append(s.state.Players, c.Clone())
	}
	total := len(s.state.Players)
	s.mu.Unlock()

	s.logger.Info().Int("merged", len(candidates)).Int("roster_size", total).Msg("merged imported players")
	s.persist()
}

// Transition moves a player to a new status, replacing the player record
// atomically. BoughtUs requires a finite price; the price is cleared for any
// other status. HandledAt is stamped for non-Available statuses and cleared
// when the player returns to Available.
//
// Refused (no partial update) when the player is unknown, the status is not
// storable, or a BoughtUs price is missing or non-finite.
func (s *Store) Transition(playerID uuid.UUID, status models.PlayerStatus, price *float64) bool {
	if !status.Valid() {
		s.logger.Warn().Str("status", string(status)).Msg("refused transition to invalid status")
		return false
	}
	if status == models.StatusBoughtUs {
		if price == nil || math.IsNaN(*price) || math.IsInf(*price, 0) {
			s.logger.Warn().Str("player_id", playerID.String()).Msg("refused purchase without a finite price")
			return false
		}
	}

	s.mu.Lock()
	idx := s.state.FindPlayer(playerID)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.Warn().Str("player_id", playerID.String()).Msg("refused transition for unknown player")
		return false
	}

	updated := s.state.Players[idx].Clone()
	updated.Status = status
	if status == models.StatusBoughtUs {
		paid := *price
		updated.ActualPrice = &paid
	} else {
		updated.ActualPrice = nil
	}
	if status == models.StatusAvailable {
		updated.HandledAt = nil
	} else {
		now := s.clock.Now()
		updated.HandledAt = &now
	}
	s.state.Players[idx] = updated
	s.mu.Unlock()

	s.logger.Info().
		Str("player_id", playerID.String()).
		Str("name", updated.Name).
		Str("status", string(status)).
		Msg("player transitioned")
	s.persist()
	return true
}

// ClearPlayers empties the roster while keeping the session settings. Used by
// the setup flow to discard a list before re-importing.
func (s *Store) ClearPlayers() {
	s.mu.Lock()
	s.state.Players = nil
	s.mu.Unlock()

	s.logger.Info().Msg("cleared player list")
	s.persist()
}

// ResetSession replaces the entire state with the zero-value default.
// Irreversible.
func (s *Store) ResetSession() {
	s.mu.Lock()
	s.state = models.AuctionState{}
	s.mu.Unlock()

	s.logger.Info().Msg("session reset")
	s.persist()
}

// Snapshot returns a deep copy of the current state. Readers never observe a
// partially written record.
func (s *Store) Snapshot() models.AuctionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// RecentlyHandled returns up to n non-Available players, most recently
// handled first.
func (s *Store) RecentlyHandled(n int) []models.Player {
	s.mu.Lock()
	var handled []models.Player
	for _, p := range s.state.Players {
		if p.Status != models.StatusAvailable && p.HandledAt != nil {
			handled = append(handled, p.Clone())
		}
	}
	s.mu.Unlock()

	sort.SliceStable(handled, func(i, j int) bool {
		return handled[i].HandledAt.After(*handled[j].HandledAt)
	})
	if n >= 0 && len(handled) > n {
		handled = handled[:n]
	}
	return handled
}

func (s *Store) persist() {
	if s.repo == nil {
		return
	}
	state := s.Snapshot()
	if err := s.repo.Save(context.Background(), state); err != nil {
		s.logger.Error().Err(err).Msg("failed to save auction snapshot")
	}
}
