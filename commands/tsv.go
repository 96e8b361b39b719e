package commands

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/kyle-bartlett/analysis-dashboards/sheets"
)

func writeTSV(f io.Writer, table sheets.Table) error {
	w := csv.NewWriter(f)
	w.Comma = '\t'

	for _, record := range table {
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

func readTSV(f io.Reader) (sheets.Table, error) {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("TSV file is empty")
	}

	return sheets.Table(records), nil
}
