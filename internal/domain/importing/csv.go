package importing

import (
	"encoding/csv"
	"io"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

const utf8BOM = "\ufeff"

// ReadCSV reads a header-first CSV into rows keyed by header name. Column
// order is free; short records leave trailing columns blank.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []Row{}, nil
	}
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "read csv header"), ErrParse)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], utf8BOM))
	}

	rows := make([]Row, 0, 64)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, crerr.Mark(crerr.Wrapf(err, "read csv record %d", len(rows)+1), ErrParse)
		}

		row := make(Row, len(header))
		for i, col := range header {
			if col == "" || i >= len(record) {
				continue
			}
			row[col] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteCSV writes columns as the header followed by one record per row.
func WriteCSV(w io.Writer, columns []string, rows []Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(columns); err != nil {
		return crerr.Wrap(err, "write csv header")
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return crerr.Wrap(err, "write csv record")
		}
	}

	writer.Flush()
	return writer.Error()
}
