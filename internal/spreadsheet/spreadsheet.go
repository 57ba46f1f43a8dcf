// Package spreadsheet decodes uploaded roster files into the unordered row
// maps the import pipeline consumes. It is the only asynchronous boundary of
// an import: the file bytes are fully read before any row is processed.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// Parse decodes spreadsheet bytes into one string-keyed map per data row,
// using the first row as headers. Both .xlsx workbooks (first sheet only) and
// CSV files are accepted; the format is sniffed from the bytes, not a file
// name. Fully blank rows are dropped, and blank cells are omitted from the
// row map, mirroring how auction sheets are usually exported.
//
// Malformed bytes fail the whole import with an error; no partial row set is
// returned.
func Parse(data []byte) ([]map[string]any, error) {
	if isZip(data) {
		return parseWorkbook(data)
	}
	return parseCSV(data)
}

func isZip(data []byte) bool {
	return len(data) >= 2 && data[0] == 'P' && data[1] == 'K'
}

func parseCSV(data []byte) ([]map[string]any, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rowsToMaps(records), nil
}

// rowsToMaps turns a header row plus data rows into row maps. Shared by the
// CSV and workbook paths.
func rowsToMaps(records [][]string) []map[string]any {
	if len(records) == 0 {
		return nil
	}
	headers := records[0]

	var rows []map[string]any
	for _, record := range records[1:] {
		row := make(map[string]any)
		for i, cell := range record {
			if i >= len(headers) {
				break
			}
			header := strings.TrimSpace(headers[i])
			if header == "" || strings.TrimSpace(cell) == "" {
				continue
			}
			row[header] = cell
		}
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
