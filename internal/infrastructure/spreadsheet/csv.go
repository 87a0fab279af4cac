// Package spreadsheet reads the vendor export files accepted by the admin
// upload endpoints: weekly stats CSVs and the team/fixture XLSX workbooks.
package spreadsheet

import (
	"encoding/csv"
	"io"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/draftghost/statsportal/internal/domain/upload"
)

// ParseStatsCSV reads a vendor stats export: one header row followed by one
// record per player. Ragged records are tolerated; short rows simply leave
// trailing columns absent. Fully blank records are skipped.
func ParseStatsCSV(r io.Reader) ([]upload.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, crerr.Wrap(err, "read csv")
	}
	if len(records) == 0 {
		return nil, crerr.New("csv file is empty")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]upload.RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlankRecord(record) {
			continue
		}

		row := make(upload.RawRow, len(headers))
		for i, cell := range record {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			row[headers[i]] = strings.TrimSpace(cell)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
