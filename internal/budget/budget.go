package budget

import (
	"math"

	"github.com/mcdev12/auctiontracker/internal/models"
)

// Calculate derives the spent and remaining totals from the player list. A
// bought player with no recorded price counts as 0 rather than failing; the
// roster store's invariants should make that impossible. Remaining may be
// negative: over-budget is a valid, flagged state.
func Calculate(players []models.Player, totalBudget float64) models.BudgetSummary {
	summary := models.BudgetSummary{TotalBudget: totalBudget}
	for _, p := range players {
		if p.Status != models.StatusBoughtUs {
			continue
		}
		summary.BoughtCount++
		if p.ActualPrice != nil {
			summary.Spent += *p.ActualPrice
		}
	}
	summary.Remaining = totalBudget - summary.Spent
	return summary
}

// TeamStats summarizes the bought side of the roster for the team view.
type TeamStats struct {
	AverageCost float64
	// Efficiency is planned points recovered per point spent, as a
	// percentage rounded to the nearest whole number.
	Efficiency float64
}

// Stats computes average cost and spend efficiency over bought players.
// Returns zero stats when nothing has been bought or nothing was spent.
func Stats(players []models.Player) TeamStats {
	var spent, planned float64
	var bought int
	for _, p := range players {
		if p.Status != models.StatusBoughtUs {
			continue
		}
		bought++
		planned += p.PreassignedPoints
		if p.ActualPrice != nil {
			spent += *p.ActualPrice
		}
	}

	var stats TeamStats
	if bought > 0 {
		stats.AverageCost = math.Round(spent / float64(bought))
	}
	if spent > 0 {
		stats.Efficiency = math.Round(planned / spent * 100)
	}
	return stats
}
