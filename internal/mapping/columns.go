package mapping

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Field is a canonical column of the player import schema.
type Field string

const (
	FieldPlayerNo          Field = "playerNo"
	FieldName              Field = "name"
	FieldParishName        Field = "parishName"
	FieldPreassignedPoints Field = "preassignedPoints"
	FieldRole              Field = "role"
	FieldPriority          Field = "priority"
	FieldReasons           Field = "reasons"
	FieldNotes             Field = "notes"
)

// Columns maps each canonical field to the spreadsheet headers accepted for
// it, in priority order. Header comparison is case-insensitive and
// whitespace-trimmed on both sides, so spreadsheets with arbitrary header
// conventions can be ingested without per-file configuration.
//
// The table is data, not code: Load can extend it from a YAML file.
type Columns map[Field][]string

// DefaultColumns returns the header synonyms seen across auction sheets in
// the wild.
func DefaultColumns() Columns {
	return Columns{
		FieldPlayerNo:          {"player no", "no", "sr no", "id", "p_no"},
		FieldName:              {"player name", "name", "player", "p_name"},
		FieldParishName:        {"parish name", "parish", "team", "club"},
		FieldPreassignedPoints: {"points", "planned points", "base price", "preassigned points", "value"},
		FieldRole:              {"role", "position", "type"},
		FieldPriority:          {"priority", "tier"},
		FieldReasons:           {"reasons", "reason", "remarks"},
		FieldNotes:             {"notes", "comments", "info"},
	}
}

// Load merges a YAML synonym table over the defaults. A field listed in the
// file replaces its default synonym list entirely; fields absent from the
// file keep their defaults.
func Load(r io.Reader) (Columns, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read column mappings: %w", err)
	}

	var overrides map[Field][]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse column mappings: %w", err)
	}

	cols := DefaultColumns()
	for field, synonyms := range overrides {
		cols[field] = synonyms
	}
	return cols, nil
}

// Lookup returns the value under the first row key whose normalized form
// matches any synonym registered for the field, in synonym priority order.
// The second return is false when no key matches.
func (c Columns) Lookup(row map[string]any, field Field) (any, bool) {
	for _, synonym := range c[field] {
		want := normalizeHeader(synonym)
		for key, value := range row {
			if normalizeHeader(key) == want {
				return value, true
			}
		}
	}
	return nil, false
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}
