package session

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// Sheet is a single worksheet of a spreadsheet. It holds no data - every operation
// is a call to the Sheets API.
type Sheet struct {
	Spreadsheet string
	Title       string
	ID          int64
	service     *sheets.Service
}

// Cell is a 1-based reference to a worksheet cell.
type Cell struct {
	Row   int
	Col   int
	Value string
}

// A1 returns the cell address in A1 notation e.g. B3.
func (c Cell) A1() string {
	a1, _ := A1(c.Row, c.Col)

	return a1
}

// Values returns the worksheet contents as formatted values, top to bottom. Trailing
// empty rows and cells are not included.
func (s *Sheet) Values(ctx context.Context) ([][]string, error) {
	response, err := s.service.Spreadsheets.Values.Get(s.Spreadsheet, quote(s.Title)).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()

	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%w)", err)
	}

	grid := make([][]string, len(response.Values))
	for i, row := range response.Values {
		grid[i] = make([]string, len(row))
		for j, v := range row {
			grid[i][j] = stringify(v)
		}
	}

	return grid, nil
}

// ReadAll returns every row after the header row as a record keyed by the header.
func (s *Sheet) ReadAll(ctx context.Context) ([]Record, error) {
	grid, err := s.Values(ctx)
	if err != nil {
		return nil, err
	}

	return makeRecords(grid), nil
}

// AppendRow adds a row after the last row of the worksheet, one value per column
// starting at column A. Values are stored as-is.
func (s *Sheet) AppendRow(ctx context.Context, values ...string) error {
	area := quote(s.Title)

	if len(values) == 0 {
		return &WriteError{Range: area, Err: fmt.Errorf("no values")}
	}

	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}

	rq := sheets.ValueRange{
		MajorDimension: "ROWS",
		Values:         [][]any{row},
	}

	if _, err := s.service.Spreadsheets.Values.Append(s.Spreadsheet, area, &rq).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do(); err != nil {
		return &WriteError{Range: area, Err: err}
	}

	return nil
}

// FindCell returns the first cell whose formatted value is exactly equal to value,
// searching row by row from the top left.
func (s *Sheet) FindCell(ctx context.Context, value string) (*Cell, error) {
	grid, err := s.Values(ctx)
	if err != nil {
		return nil, err
	}

	for r, row := range grid {
		for c, v := range row {
			if v == value {
				return &Cell{Row: r + 1, Col: c + 1, Value: v}, nil
			}
		}
	}

	return nil, &CellNotFoundError{Value: value}
}

// UpdateCell overwrites a single cell. The value is parsed as if typed into the
// Sheets UI. Cells outside the worksheet grid are rejected rather than extending it.
func (s *Sheet) UpdateCell(ctx context.Context, row, col int, value string) error {
	cell, err := A1(row, col)
	if err != nil {
		return &WriteError{Range: fmt.Sprintf("%s!R%vC%v", quote(s.Title), row, col), Err: err}
	}

	area := quote(s.Title) + "!" + cell
	rq := sheets.ValueRange{
		Range:          area,
		MajorDimension: "ROWS",
		Values:         [][]any{{value}},
	}

	if _, err := s.service.Spreadsheets.Values.Update(s.Spreadsheet, area, &rq).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do(); err != nil {
		return &WriteError{Range: area, Err: err}
	}

	return nil
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}
