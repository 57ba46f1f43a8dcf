package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/mcdev12/auctiontracker/internal/models"
)

// PostgresStore keeps the snapshot as a single jsonb row keyed by the schema
// version, upserted on every save.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresStore creates a Postgres-backed snapshot store over an existing
// pool.
func NewPostgresStore(pool *pgxpool.Pool, logger zerolog.Logger) *PostgresStore {
	return &PostgresStore{
		pool:   pool,
		logger: logger,
	}
}

// EnsureSchema creates the snapshot table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS auction_snapshots (
			key        text PRIMARY KEY,
			state      jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create snapshot table: %w", err)
	}
	return nil
}

// Save upserts the current state under the schema version key.
func (s *PostgresStore) Save(ctx context.Context, state models.AuctionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO auction_snapshots (key, state, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET state = EXCLUDED.state, updated_at = now()`,
		Version, data)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load reads the persisted state. An absent row yields the zero-value default
// state.
func (s *PostgresStore) Load(ctx context.Context) (models.AuctionState, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT state FROM auction_snapshots WHERE key = $1`, Version).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.AuctionState{}, nil
	}
	if err != nil {
		return models.AuctionState{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var state models.AuctionState
	if err := json.Unmarshal(data, &state); err != nil {
		return models.AuctionState{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return state, nil
}
