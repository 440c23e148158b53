// Package export writes the assembled records out as CSV, Parquet or XLSX,
// and persists the run's alert log. All writers receive fully accumulated
// in-memory state and write their file once, at run end.
package export

import (
	"strings"

	"github.com/museoabiertos/artcat/internal/dates"
	"github.com/museoabiertos/artcat/internal/extract"
	"github.com/museoabiertos/artcat/internal/scan"
)

// Columns is the fixed output column order shared by every format.
var Columns = []string{
	extract.KeyID,
	"File",
	extract.KeyAgent,
	extract.KeyTitle,
	extract.KeyType,
	extract.KeyDescription,
	extract.KeyMeasurements,
	extract.KeyDate,
}

// rowValues flattens a record into column order. Every value is trimmed
// and loses a single trailing period; the date field is additionally
// normalized. An absent field becomes an empty cell.
func rowValues(r scan.Record) []string {
	row := make([]string, 0, len(Columns))
	for _, col := range Columns {
		var v string
		if col == "File" {
			v = cleanField(r.ImageFile)
		} else {
			v = cleanField(r.Fields[col])
		}
		if col == extract.KeyDate {
			v = dates.Normalize(v)
		}
		row = append(row, v)
	}
	return row
}

// cleanField trims whitespace and strips one trailing period, not other
// punctuation.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimSuffix(s, ".")
}
