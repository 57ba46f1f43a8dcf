package importer

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/auctiontracker/internal/mapping"
	"github.com/mcdev12/auctiontracker/internal/models"
)

func newTestProcessor() *Processor {
	return NewProcessor(mapping.DefaultColumns(), zerolog.Nop())
}

func TestProcessNormalizesValidRows(t *testing.T) {
	p := newTestProcessor()

	preview := p.Process([]map[string]any{
		{"Player No": "7", "Player Name": "Sam Ali", "Parish": "St. Mary", "Points": "450", "Role": "Batsman"},
		{"player name": "Jo Fernandes", "points": 300.5},
	}, nil)

	require.Len(t, preview.Players, 2)
	require.Empty(t, preview.Issues)

	first := preview.Players[0]
	assert.Equal(t, "7", first.PlayerNo)
	assert.Equal(t, "Sam Ali", first.Name)
	assert.Equal(t, "St. Mary", first.ParishName)
	assert.Equal(t, 450.0, first.PreassignedPoints)
	assert.Equal(t, "Batsman", first.Role)
	assert.Equal(t, models.StatusAvailable, first.Status)
	assert.Nil(t, first.ActualPrice)
	assert.Nil(t, first.HandledAt)

	// Numeric cell values pass through without string parsing.
	assert.Equal(t, 300.5, preview.Players[1].PreassignedPoints)

	assert.NotEqual(t, preview.Players[0].ID, preview.Players[1].ID)
}

func TestProcessMissingPoints(t *testing.T) {
	p := newTestProcessor()

	preview := p.Process([]map[string]any{
		{"Player Name": "Sam Ali"},
		{"Player Name": "Jo Fernandes", "Points": "not-a-number"},
	}, nil)

	require.Len(t, preview.Players, 2)
	require.Len(t, preview.Issues, 2)
	for i, issue := range preview.Issues {
		assert.Equal(t, i+1, issue.Row)
		assert.Equal(t, "points", issue.Field)
		assert.Equal(t, models.IssueError, issue.Type)
	}
	assert.Equal(t, 0.0, preview.Players[0].PreassignedPoints)
	assert.Equal(t, 0.0, preview.Players[1].PreassignedPoints)
	assert.True(t, preview.HasErrors())
}

func TestProcessMissingName(t *testing.T) {
	p := newTestProcessor()

	preview := p.Process([]map[string]any{
		{"Points": "120", "Notes": "left-arm quick"},
	}, nil)

	require.Len(t, preview.Players, 1)
	assert.Equal(t, UnknownPlayerName, preview.Players[0].Name)

	require.Len(t, preview.Issues, 1)
	assert.Equal(t, "name", preview.Issues[0].Field)
	assert.Equal(t, "Row 1: Missing player name", preview.Issues[0].Message)
	assert.Equal(t, models.IssueError, preview.Issues[0].Type)
}

func TestProcessSkipsBlankRows(t *testing.T) {
	p := newTestProcessor()

	preview := p.Process([]map[string]any{
		{},
		{"Player Name": "  ", "Points": ""},
		{"Player Name": "Sam Ali", "Points": "100"},
	}, nil)

	require.Len(t, preview.Players, 1)
	assert.Equal(t, "Sam Ali", preview.Players[0].Name)
	// The surviving row keeps its 1-based source position.
	require.Empty(t, preview.Issues)
}

func TestProcessUnrecognizedHeaders(t *testing.T) {
	p := newTestProcessor()

	preview := p.Process([]map[string]any{
		{"colonne un": "a", "colonne deux": "b"},
	}, nil)

	assert.True(t, preview.Empty())
}

func TestProcessFlagsDuplicatesWithinBatch(t *testing.T) {
	p := newTestProcessor()

	preview := p.Process([]map[string]any{
		{"Player Name": "Sam Ali", "Points": "100"},
		{"Player Name": "  SAM ali ", "Points": "200"},
	}, nil)

	// Both candidates survive; the collision is flagged exactly once.
	require.Len(t, preview.Players, 2)
	require.Len(t, preview.Issues, 1)
	assert.Equal(t, models.IssueWarning, preview.Issues[0].Type)
	assert.Equal(t, 2, preview.Issues[0].Row)
	assert.Contains(t, preview.Issues[0].Message, "Duplicate name:")
	assert.False(t, preview.HasErrors())
}

func TestProcessFlagsDuplicatesAgainstRoster(t *testing.T) {
	p := newTestProcessor()
	existing := []models.Player{{Name: "Sam Ali", Status: models.StatusAvailable}}

	preview := p.Process([]map[string]any{
		{"Player Name": "sam ali", "Points": "100"},
	}, existing)

	require.Len(t, preview.Players, 1)
	require.Len(t, preview.Issues, 1)
	assert.Equal(t, models.IssueWarning, preview.Issues[0].Type)
	assert.False(t, preview.HasErrors(), "roster duplicates must not block confirmation")
}

func TestProcessRowWithBothIssueKinds(t *testing.T) {
	p := newTestProcessor()
	existing := []models.Player{{Name: "Unknown Player"}}

	// Unknown-name candidates never join duplicate detection, even when the
	// roster already holds the sentinel name.
	preview := p.Process([]map[string]any{
		{"Parish": "St. Mary"},
	}, existing)

	require.Len(t, preview.Players, 1)
	require.Len(t, preview.Issues, 2)
	assert.Equal(t, "name", preview.Issues[0].Field)
	assert.Equal(t, "points", preview.Issues[1].Field)
}
