package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSheet(t *testing.T, s *store, name string) *Sheet {
	t.Helper()

	sheet, err := newTestSession(t, s).Open(context.Background(), name)
	require.NoError(t, err)

	return sheet
}

func gridStore(grid ...[]string) *store {
	return newStore(&document{
		ID:    "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		Title: "My Website Data",
		Worksheets: []*worksheet{
			{ID: 0, Title: "Sheet1", Rows: 10, Cols: 5, Grid: grid},
		},
	})
}

func TestReadAll(t *testing.T) {
	expected := []Record{
		{"Name": "Rahul", "Age": "19"},
	}

	sheet := openTestSheet(t, gridStore([]string{"Name", "Age"}, []string{"Rahul", "19"}), "My Website Data")

	records, err := sheet.ReadAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, records)
}

func TestReadAllWithHeaderOnly(t *testing.T) {
	sheet := openTestSheet(t, gridStore([]string{"Name", "Age"}), "My Website Data")

	records, err := sheet.ReadAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestReadAllWithEmptySheet(t *testing.T) {
	sheet := openTestSheet(t, gridStore(), "My Website Data")

	records, err := sheet.ReadAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadAllWithRaggedRows(t *testing.T) {
	expected := []Record{
		{"Name": "Rahul", "Email": "", "Role": ""},
		{"Name": "Amit", "Email": "amit@gmail.com", "Role": "Seller"},
	}

	sheet := openTestSheet(t, gridStore(
		[]string{"Name", "Email", "Role"},
		[]string{"Rahul"},
		[]string{"Amit", "amit@gmail.com", "Seller", "ignored"},
	), "My Website Data")

	records, err := sheet.ReadAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, records)
}

func TestAppendRow(t *testing.T) {
	s := demoStore()
	sheet := openTestSheet(t, s, "My Website Data")

	err := sheet.AppendRow(context.Background(), "Vikas", "vikas@gmail.com", "Buyer")
	require.NoError(t, err)

	records, err := sheet.ReadAll(context.Background())
	require.NoError(t, err)

	assert.Contains(t, records, Record{"Name": "Vikas", "Email": "vikas@gmail.com", "Role": "Buyer"})
	assert.Equal(t, []string{"Vikas", "vikas@gmail.com", "Buyer"}, s.Grid(sheet.Spreadsheet, sheet.Title)[2])
}

func TestAppendRowWithoutValues(t *testing.T) {
	s := demoStore()
	sheet := openTestSheet(t, s, "My Website Data")
	calls := s.Calls()

	err := sheet.AppendRow(context.Background())

	var werr *WriteError
	assert.True(t, errors.As(err, &werr), "expected WriteError, got %v", err)
	assert.Equal(t, calls, s.Calls())
}

func TestFindCell(t *testing.T) {
	sheet := openTestSheet(t, demoStore(), "My Website Data")

	require.NoError(t, sheet.AppendRow(context.Background(), "Vikas", "vikas@gmail.com", "Buyer"))

	cell, err := sheet.FindCell(context.Background(), "vikas@gmail.com")

	require.NoError(t, err)
	assert.Equal(t, &Cell{Row: 3, Col: 2, Value: "vikas@gmail.com"}, cell)
	assert.Equal(t, "B3", cell.A1())
}

func TestFindCellWithUnknownValue(t *testing.T) {
	sheet := openTestSheet(t, demoStore(), "My Website Data")

	for _, v := range []string{"nonexistent@x.com", "RAHUL", "rahul@gmail"} {
		_, err := sheet.FindCell(context.Background(), v)

		var nerr *CellNotFoundError
		if assert.True(t, errors.As(err, &nerr), "expected CellNotFoundError for '%v', got %v", v, err) {
			assert.Equal(t, v, nerr.Value)
		}
	}
}

func TestFindCellIsRowMajor(t *testing.T) {
	sheet := openTestSheet(t, gridStore(
		[]string{"A", "B", "C"},
		[]string{"", "", "x"},
		[]string{"x", "", ""},
	), "My Website Data")

	cell, err := sheet.FindCell(context.Background(), "x")

	require.NoError(t, err)
	assert.Equal(t, 2, cell.Row)
	assert.Equal(t, 3, cell.Col)
}

func TestUpdateCell(t *testing.T) {
	s := demoStore()
	sheet := openTestSheet(t, s, "My Website Data")

	require.NoError(t, sheet.UpdateCell(context.Background(), 2, 3, "Seller"))

	records, err := sheet.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Record{{"Name": "Rahul", "Email": "rahul@gmail.com", "Role": "Seller"}}, records)

	first := s.Grid(sheet.Spreadsheet, sheet.Title)

	require.NoError(t, sheet.UpdateCell(context.Background(), 2, 3, "Seller"))
	assert.Equal(t, first, s.Grid(sheet.Spreadsheet, sheet.Title))
}

func TestUpdateCellOutsideGrid(t *testing.T) {
	sheet := openTestSheet(t, demoStore(), "My Website Data")

	tests := []struct {
		row int
		col int
	}{
		{11, 1},
		{1, 6},
	}

	for _, test := range tests {
		err := sheet.UpdateCell(context.Background(), test.row, test.col, "Seller")

		var werr *WriteError
		assert.True(t, errors.As(err, &werr), "expected WriteError for (%v,%v), got %v", test.row, test.col, err)
	}
}

func TestUpdateCellWithInvalidCoordinates(t *testing.T) {
	s := demoStore()
	sheet := openTestSheet(t, s, "My Website Data")
	calls := s.Calls()

	for _, rc := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		err := sheet.UpdateCell(context.Background(), rc[0], rc[1], "Seller")

		var werr *WriteError
		assert.True(t, errors.As(err, &werr), "expected WriteError for %v, got %v", rc, err)
	}

	assert.Equal(t, calls, s.Calls())
}

func TestDemoScenario(t *testing.T) {
	s := gridStore([]string{"Name", "Email", "Role"})
	sheet := openTestSheet(t, s, "My Website Data")
	ctx := context.Background()

	records, err := sheet.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, sheet.AppendRow(ctx, "Vikas", "vikas@gmail.com", "Buyer"))

	cell, err := sheet.FindCell(ctx, "vikas@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, 2, cell.Row)
	assert.Equal(t, 2, cell.Col)

	require.NoError(t, sheet.UpdateCell(ctx, 2, 3, "Seller"))

	records, err = sheet.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Record{{"Name": "Vikas", "Email": "vikas@gmail.com", "Role": "Seller"}}, records)
}
