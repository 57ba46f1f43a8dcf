package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mcdev12/auctiontracker/internal/models"
)

const (
	// ResultsSheet lists one row per player.
	ResultsSheet = "Auction Results"
	// SummarySheet holds the session key/value summary.
	SummarySheet = "Summary"

	timestampLayout = "1/2/2006, 3:04:05 PM"
)

// Filename returns the deterministic export name for a team.
func Filename(teamName string) string {
	return teamName + "_Auction_Tracker_Export.xlsx"
}

// BuildWorkbook projects the roster and budget summary into a two-sheet
// workbook. It is a pure projection: callers pass a state snapshot and the
// roster store is never touched.
func BuildWorkbook(state models.AuctionState, summary models.BudgetSummary, exportedAt time.Time) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), ResultsSheet); err != nil {
		return nil, fmt.Errorf("failed to create results sheet: %w", err)
	}
	if err := writeRow(f, ResultsSheet, 1, []any{
		"Player Name", "Status", "Preassigned Points", "Final Price",
		"Role", "Priority", "Notes", "Handled At",
	}); err != nil {
		return nil, err
	}
	for i, p := range state.Players {
		if err := writeRow(f, ResultsSheet, i+2, []any{
			p.Name,
			p.Status.Label(),
			p.PreassignedPoints,
			finalPrice(p),
			orDash(p.Role),
			orDash(p.Priority),
			orDash(p.Notes),
			handledAt(p),
		}); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	summaryRows := [][]any{
		{"Auction Summary", ""},
		{"Team Name", state.TeamName},
		{"Total Budget", state.TotalBudget},
		{"Points Spent", summary.Spent},
		{"Remaining Points", summary.Remaining},
		{"Total Players Bought", summary.BoughtCount},
		{"Exported On", exportedAt.Format(timestampLayout)},
	}
	for i, row := range summaryRows {
		if err := writeRow(f, SummarySheet, i+1, row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func finalPrice(p models.Player) any {
	if p.Status == models.StatusBoughtUs && p.ActualPrice != nil {
		return *p.ActualPrice
	}
	return "-"
}

func handledAt(p models.Player) string {
	if p.HandledAt == nil {
		return "-"
	}
	return p.HandledAt.Local().Format(timestampLayout)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
