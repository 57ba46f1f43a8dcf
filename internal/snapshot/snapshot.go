// Package snapshot persists the auction state as a single versioned
// document. The storage key versions the schema so a future layout change can
// migrate or invalidate old snapshots instead of misreading them.
package snapshot

import "github.com/mcdev12/auctiontracker/internal/models"

// Version is the storage key for the current snapshot schema.
const Version = "auction_tracker_v1"

type envelope struct {
	Version string              `json:"version"`
	State   models.AuctionState `json:"state"`
}
