package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mcdev12/auctiontracker/internal/mapping"
	"github.com/mcdev12/auctiontracker/internal/models"
)

// UnknownPlayerName is the sentinel name given to a candidate whose row had
// content but no usable name.
const UnknownPlayerName = "Unknown Player"

// NormalizeRow validates one raw row and produces a candidate player, issues,
// or both. rowNum is the 1-based position of the row in the source sequence.
//
// A row with no field content at all is silently skipped (nil candidate, no
// issues): blank spreadsheet rows are not worth reporting. Issues never block
// the candidate from being emitted; error-typed issues only block the batch
// confirmation downstream.
func (p *Processor) NormalizeRow(row map[string]any, rowNum int) (*models.Player, []models.ImportIssue) {
	playerNo := p.stringField(row, mapping.FieldPlayerNo)
	name := p.stringField(row, mapping.FieldName)
	parishName := p.stringField(row, mapping.FieldParishName)
	role := p.stringField(row, mapping.FieldRole)
	priority := p.stringField(row, mapping.FieldPriority)
	reasons := p.stringField(row, mapping.FieldReasons)
	notes := p.stringField(row, mapping.FieldNotes)

	rawPoints, havePoints := p.columns.Lookup(row, mapping.FieldPreassignedPoints)
	points, pointsOK := coerceFloat(rawPoints)
	if !havePoints {
		pointsOK = false
	}

	hasOtherContent := playerNo != "" || parishName != "" || role != "" ||
		priority != "" || reasons != "" || notes != ""

	if name == "" && !pointsOK && !hasOtherContent {
		return nil, nil
	}

	var issues []models.ImportIssue
	if name == "" {
		issues = append(issues, models.ImportIssue{
			Row:     rowNum,
			Field:   "name",
			Message: fmt.Sprintf("Row %d: Missing player name", rowNum),
			Type:    models.IssueError,
		})
	}
	if !pointsOK {
		issues = append(issues, models.ImportIssue{
			Row:     rowNum,
			Field:   "points",
			Message: fmt.Sprintf("Row %d: Missing or invalid points", rowNum),
			Type:    models.IssueError,
		})
		points = 0
	}

	candidate := &models.Player{
		ID:                uuid.New(),
		PlayerNo:          playerNo,
		Name:              name,
		ParishName:        parishName,
		PreassignedPoints: points,
		Status:            models.StatusAvailable,
		Role:              role,
		Priority:          priority,
		Reasons:           reasons,
		Notes:             notes,
	}
	if candidate.Name == "" {
		candidate.Name = UnknownPlayerName
	}
	return candidate, issues
}

func (p *Processor) stringField(row map[string]any, field mapping.Field) string {
	value, ok := p.columns.Lookup(row, field)
	if !ok {
		return ""
	}
	return coerceString(value)
}

func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// coerceFloat applies the numeric coercion rules: values already numeric pass
// through; strings are parsed as floating point; anything else is invalid.
func coerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, !math.IsNaN(t) && !math.IsInf(t, 0)
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
