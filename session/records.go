package session

// Record maps column header to cell value for a single worksheet row.
type Record map[string]string

func makeRecords(grid [][]string) []Record {
	records := []Record{}
	if len(grid) == 0 {
		return records
	}

	// ... header
	header := grid[0]

	// ... records
	for _, row := range grid[1:] {
		record := Record{}
		for i, h := range header {
			v := ""
			if i < len(row) {
				v = row[i]
			}

			record[h] = v
		}

		records = append(records, record)
	}

	return records
}
