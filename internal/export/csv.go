package export

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/museoabiertos/artcat/internal/scan"
)

// WriteCSV writes one row per record to path. Every field is quoted
// unconditionally (the downstream ingest expects QUOTE_ALL style), with
// RFC 4180 doubling for embedded quotes; encoding/csv only quotes on
// demand, so the rows are assembled by hand.
func WriteCSV(path string, records []scan.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	writeQuotedRow(w, Columns)
	for _, r := range records {
		writeQuotedRow(w, rowValues(r))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func writeQuotedRow(w *bufio.Writer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(field, `"`, `""`))
		w.WriteByte('"')
	}
	// RFC 4180 row terminator.
	w.WriteString("\r\n")
}
