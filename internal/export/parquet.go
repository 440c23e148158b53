package export

import (
	"fmt"
	"os"

	"github.com/museoabiertos/artcat/internal/scan"
	"github.com/parquet-go/parquet-go"
)

// parquetRow mirrors the CSV column order with snake_case parquet names.
type parquetRow struct {
	WorkID           string `parquet:"work_id"`
	File             string `parquet:"file"`
	WorkAgent        string `parquet:"work_agent"`
	WorkTitle        string `parquet:"work_title"`
	WorkType         string `parquet:"work_type"`
	WorkDescription  string `parquet:"work_description"`
	WorkMeasurements string `parquet:"work_measurements"`
	WorkDate         string `parquet:"work_date"`
}

// WriteParquet writes the records as a Parquet dataset with the same
// cleaning as the CSV output.
func WriteParquet(path string, records []scan.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create parquet: %w", err)
	}
	defer f.Close()

	rows := make([]parquetRow, 0, len(records))
	for _, r := range records {
		v := rowValues(r)
		rows = append(rows, parquetRow{
			WorkID:           v[0],
			File:             v[1],
			WorkAgent:        v[2],
			WorkTitle:        v[3],
			WorkType:         v[4],
			WorkDescription:  v[5],
			WorkMeasurements: v[6],
			WorkDate:         v[7],
		})
	}

	w := parquet.NewGenericWriter[parquetRow](f)
	if _, err := w.Write(rows); err != nil {
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}
