package report

import (
	"encoding/csv"
	"io"
)

var csvHeader = []string{"Date", "Category", "Description", "Amount"}

// WriteCSV writes the transaction rows of the report as CSV with a header line.
func (r Report) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	err := writer.Write(csvHeader)
	if err != nil {
		return err
	}

	for _, row := range r.Rows {
		err = writer.Write([]string{row.Date, row.Category, row.Description, row.Amount})
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
