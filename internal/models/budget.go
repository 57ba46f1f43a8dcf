package models

// BudgetSummary is a pure derivation of the player list against the session
// budget.
type BudgetSummary struct {
	TotalBudget float64 `json:"total_budget"`
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	BoughtCount int     `json:"bought_count"`
}

// OverBudget reports whether spending exceeds the budget. Over-budget is a
// valid, flagged state, not an error.
func (b BudgetSummary) OverBudget() bool {
	return b.Remaining < 0
}
