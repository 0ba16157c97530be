package commands

import (
	"encoding/csv"
	"fmt"
	"io"
)

// gridToTSV writes a worksheet grid as TSV, padding every row to the header width.
func gridToTSV(f io.Writer, grid [][]string) error {
	if len(grid) == 0 {
		return fmt.Errorf("empty sheet")
	}

	// ... header
	header := make([]string, len(grid[0]))
	for i, v := range grid[0] {
		header[i] = clean(v)
	}

	if len(header) == 0 {
		return fmt.Errorf("missing/invalid header row")
	}

	// ... records
	records := [][]string{}
	for _, row := range grid[1:] {
		record := make([]string, len(header))
		for i := range record {
			if i < len(row) {
				record[i] = clean(row[i])
			}
		}

		records = append(records, record)
	}

	// ... write to file
	w := csv.NewWriter(f)
	w.Comma = '\t'

	w.Write(header)
	for _, record := range records {
		w.Write(record)
	}

	w.Flush()

	return w.Error()
}

// tsvToRows reads a TSV file and returns the header and the data rows.
func tsvToRows(f io.Reader) ([]string, [][]string, error) {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("TSV file is empty")
	}

	header := make([]string, len(records[0]))
	for i, v := range records[0] {
		header[i] = clean(v)
	}

	rows := [][]string{}
	for _, record := range records[1:] {
		row := make([]string, len(record))
		for i, v := range record {
			row[i] = clean(v)
		}

		rows = append(rows, row)
	}

	return header, rows, nil
}

// align reorders TSV rows to match the worksheet header, matching column names while
// ignoring case and spaces. Worksheet columns missing from the TSV are left blank.
func align(header []string, columns []string, rows [][]string) ([][]string, error) {
	// .. build index
	index := map[string]int{}
	for i, v := range header {
		k := normalise(v)
		if _, ok := index[k]; ok {
			return nil, fmt.Errorf("duplicate column name '%s' in worksheet", v)
		}

		index[k] = i
	}

	xref := map[int]int{}
	for i, v := range columns {
		ix, ok := index[normalise(v)]
		if !ok {
			return nil, fmt.Errorf("column '%s' is not in the worksheet header", v)
		}

		xref[i] = ix
	}

	aligned := [][]string{}
	for _, row := range rows {
		record := make([]string, len(header))
		for i, v := range row {
			if ix, ok := xref[i]; ok {
				record[ix] = v
			}
		}

		aligned = append(aligned, record)
	}

	return aligned, nil
}
