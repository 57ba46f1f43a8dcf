package importer

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/mcdev12/auctiontracker/internal/mapping"
	"github.com/mcdev12/auctiontracker/internal/models"
)

// Processor runs the column mapper and row validator over a raw row sequence
// and assembles an import preview. It never touches the roster store: the
// preview is reviewed externally and merged (or discarded) by the caller.
type Processor struct {
	columns mapping.Columns
	logger  zerolog.Logger
}

// NewProcessor creates a Processor over the given column synonym table.
func NewProcessor(columns mapping.Columns, logger zerolog.Logger) *Processor {
	return &Processor{
		columns: columns,
		logger:  logger,
	}
}

// Process validates every row and flags duplicate names against both the
// batch itself and the existing roster. Duplicates are warnings, not
// rejections: auction staff make the final call, so flagged candidates stay
// in the preview.
//
// An empty preview (no candidates, no issues) means no canonical field
// matched any row; callers should treat that as unrecognized headers and
// abort before reaching the roster store.
func (p *Processor) Process(rows []map[string]any, existing []models.Player) models.ImportPreview {
	existingNames := make(map[string]struct{}, len(existing))
	for _, player := range existing {
		existingNames[normalizeName(player.Name)] = struct{}{}
	}

	var preview models.ImportPreview
	seenNames := make(map[string]struct{})

	for idx, row := range rows {
		rowNum := idx + 1

		candidate, issues := p.NormalizeRow(row, rowNum)
		preview.Issues = append(preview.Issues, issues...)
		if candidate == nil {
			continue
		}

		if candidate.Name != UnknownPlayerName {
			key := normalizeName(candidate.Name)
			_, inBatch := seenNames[key]
			_, inRoster := existingNames[key]
			if inBatch || inRoster {
				preview.Issues = append(preview.Issues, models.ImportIssue{
					Row:     rowNum,
					Field:   "name",
					Message: "Duplicate name: " + candidate.Name,
					Type:    models.IssueWarning,
				})
			}
			seenNames[key] = struct{}{}
		}

		preview.Players = append(preview.Players, *candidate)
	}

	p.logger.Info().
		Int("rows", len(rows)).
		Int("candidates", len(preview.Players)).
		Int("issues", len(preview.Issues)).
		Bool("has_errors", preview.HasErrors()).
		Msg("processed import batch")

	return preview
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
