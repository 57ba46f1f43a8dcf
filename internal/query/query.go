package query

import (
	"sort"
	"strings"

	"github.com/mcdev12/auctiontracker/internal/models"
)

// SortKey selects the sort column.
type SortKey string

const (
	SortByName   SortKey = "name"
	SortByPoints SortKey = "points"
)

// SortOrder selects the sort direction.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Params describes one roster query. All three filters are ANDed.
//
// Name is a case-insensitive substring match; empty matches all. Number is an
// exact match against PlayerNo (a player without a number never matches a
// non-empty number query). Status filters on exact status; StatusAll or the
// zero value passes everything. Zero-value sort settings mean name ascending.
type Params struct {
	Name   string
	Number string
	Status models.PlayerStatus
	SortBy SortKey
	Order  SortOrder
}

// Search returns an ordered, filtered view of players. It is a pure function:
// the input slice is never mutated and identical arguments over an unchanged
// roster yield identical results.
func Search(players []models.Player, params Params) []models.Player {
	nameQuery := strings.ToLower(strings.TrimSpace(params.Name))
	numberQuery := strings.TrimSpace(params.Number)

	result := make([]models.Player, 0, len(players))
	for _, p := range players {
		if nameQuery != "" && !strings.Contains(strings.ToLower(p.Name), nameQuery) {
			continue
		}
		// Exact match on player number so "1" does not return "101".
		if numberQuery != "" && (p.PlayerNo == "" || p.PlayerNo != numberQuery) {
			continue
		}
		if params.Status != "" && params.Status != models.StatusAll && p.Status != params.Status {
			continue
		}
		result = append(result, p)
	}

	desc := params.Order == Descending
	sort.SliceStable(result, func(i, j int) bool {
		var less bool
		if params.SortBy == SortByPoints {
			less = result[i].PreassignedPoints < result[j].PreassignedPoints
		} else {
			less = strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
		}
		if desc {
			return !less && !equal(result[i], result[j], params.SortBy)
		}
		return less
	})

	return result
}

func equal(a, b models.Player, key SortKey) bool {
	if key == SortByPoints {
		return a.PreassignedPoints == b.PreassignedPoints
	}
	return strings.EqualFold(a.Name, b.Name)
}
