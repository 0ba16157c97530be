// Package sheetstest provides an in-memory stand-in for the Sheets v4 and Drive v3 REST
// APIs, for tests that exercise spreadsheet sessions without a Google account.
package sheetstest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Store holds the spreadsheets served by a Server.
type Store struct {
	spreadsheets []*Document
	requests     []string
	sync.Mutex
}

// Document is a spreadsheet. A Private document is listed by Drive but cannot be
// fetched, as for a spreadsheet that has not been shared with the caller.
type Document struct {
	ID         string
	Title      string
	Private    bool
	Worksheets []*Worksheet
}

// Worksheet is a single sheet. Rows and Cols are the grid limits enforced on update.
type Worksheet struct {
	ID    int64
	Title string
	Rows  int
	Cols  int
	Grid  [][]string
}

func NewStore(documents ...*Document) *Store {
	return &Store{
		spreadsheets: documents,
	}
}

// Server is a running Store.
type Server struct {
	*httptest.Server
}

// NewServer starts serving the store. The server is closed when the test completes.
func NewServer(t testing.TB, s *Store) *Server {
	t.Helper()

	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)

	return &Server{srv}
}

// Options returns the client options that point the Sheets and Drive services at
// the server.
func (srv *Server) Options() []option.ClientOption {
	return []option.ClientOption{
		option.WithEndpoint(srv.URL + "/"),
		option.WithHTTPClient(srv.Client()),
	}
}

func (s *Store) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Lock()
	defer s.Unlock()

	s.requests = append(s.requests, r.Method+" "+r.URL.Path)

	path := r.URL.Path
	switch {
	case path == "/files" && r.Method == http.MethodGet:
		s.list(w, r)

	case strings.HasPrefix(path, "/v4/spreadsheets/"):
		id, tail, _ := strings.Cut(strings.TrimPrefix(path, "/v4/spreadsheets/"), "/")
		doc := s.find(id)
		if doc == nil {
			reply(w, http.StatusNotFound, "Requested entity was not found.")
			return
		}

		if doc.Private {
			reply(w, http.StatusForbidden, "The caller does not have permission")
			return
		}

		switch {
		case tail == "" && r.Method == http.MethodGet:
			s.get(w, doc)

		case strings.HasPrefix(tail, "values/") && r.Method == http.MethodGet:
			s.values(w, doc, strings.TrimPrefix(tail, "values/"))

		case strings.HasPrefix(tail, "values/") && strings.HasSuffix(tail, ":append") && r.Method == http.MethodPost:
			s.append(w, r, doc, strings.TrimSuffix(strings.TrimPrefix(tail, "values/"), ":append"))

		case strings.HasPrefix(tail, "values/") && r.Method == http.MethodPut:
			s.update(w, r, doc, strings.TrimPrefix(tail, "values/"))

		default:
			reply(w, http.StatusNotFound, "unsupported request")
		}

	default:
		reply(w, http.StatusNotFound, "unsupported request")
	}
}

// Calls returns the number of requests received so far.
func (s *Store) Calls() int {
	s.Lock()
	defer s.Unlock()

	return len(s.requests)
}

// Grid returns a copy of a worksheet's cells.
func (s *Store) Grid(id, title string) [][]string {
	s.Lock()
	defer s.Unlock()

	grid := [][]string{}
	if doc := s.find(id); doc != nil {
		for _, ws := range doc.Worksheets {
			if ws.Title == title {
				for _, row := range ws.Grid {
					grid = append(grid, append([]string{}, row...))
				}
			}
		}
	}

	return grid
}

func (s *Store) find(id string) *Document {
	for _, doc := range s.spreadsheets {
		if doc.ID == id {
			return doc
		}
	}

	return nil
}

// list emulates Drive files.list, which matches names case-insensitively.
func (s *Store) list(w http.ResponseWriter, r *http.Request) {
	name := queryName(r.URL.Query().Get("q"))
	files := []map[string]string{}

	for _, doc := range s.spreadsheets {
		if strings.EqualFold(doc.Title, name) {
			files = append(files, map[string]string{"id": doc.ID, "name": doc.Title})
		}
	}

	write(w, map[string]any{"files": files})
}

func (s *Store) get(w http.ResponseWriter, doc *Document) {
	response := sheets.Spreadsheet{
		SpreadsheetId: doc.ID,
		Properties:    &sheets.SpreadsheetProperties{Title: doc.Title},
	}

	for i, ws := range doc.Worksheets {
		response.Sheets = append(response.Sheets, &sheets.Sheet{
			Properties: &sheets.SheetProperties{
				SheetId: ws.ID,
				Title:   ws.Title,
				Index:   int64(i),
				GridProperties: &sheets.GridProperties{
					RowCount:    int64(ws.Rows),
					ColumnCount: int64(ws.Cols),
				},
			},
		})
	}

	write(w, response)
}

func (s *Store) values(w http.ResponseWriter, doc *Document, area string) {
	ws, _, ok := doc.lookup(area)
	if !ok {
		reply(w, http.StatusBadRequest, fmt.Sprintf("Unable to parse range: %s", area))
		return
	}

	values := [][]any{}
	for _, row := range trim(ws.Grid) {
		record := []any{}
		for _, v := range row {
			record = append(record, v)
		}
		values = append(values, record)
	}

	write(w, sheets.ValueRange{
		Range:          area,
		MajorDimension: "ROWS",
		Values:         values,
	})
}

func (s *Store) append(w http.ResponseWriter, r *http.Request, doc *Document, area string) {
	ws, _, ok := doc.lookup(area)
	if !ok {
		reply(w, http.StatusBadRequest, fmt.Sprintf("Unable to parse range: %s", area))
		return
	}

	if r.URL.Query().Get("valueInputOption") == "" {
		reply(w, http.StatusBadRequest, "'valueInputOption' is required but not specified")
		return
	}

	var rq sheets.ValueRange
	if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
		reply(w, http.StatusBadRequest, err.Error())
		return
	}

	ws.Grid = trim(ws.Grid)
	for _, row := range rq.Values {
		record := []string{}
		for _, v := range row {
			record = append(record, fmt.Sprintf("%v", v))
		}

		ws.Grid = append(ws.Grid, record)
		if len(ws.Grid) > ws.Rows {
			ws.Rows = len(ws.Grid)
		}
	}

	write(w, sheets.AppendValuesResponse{
		SpreadsheetId: doc.ID,
		TableRange:    area,
	})
}

func (s *Store) update(w http.ResponseWriter, r *http.Request, doc *Document, area string) {
	ws, cell, ok := doc.lookup(area)
	if !ok {
		reply(w, http.StatusBadRequest, fmt.Sprintf("Unable to parse range: %s", area))
		return
	}

	row, col, ok := parseA1(cell)
	if !ok {
		reply(w, http.StatusBadRequest, fmt.Sprintf("Unable to parse range: %s", area))
		return
	}

	if row > ws.Rows || col > ws.Cols {
		reply(w, http.StatusBadRequest, fmt.Sprintf("Range (%s) exceeds grid limits. Max rows: %v, max columns: %v", area, ws.Rows, ws.Cols))
		return
	}

	var rq sheets.ValueRange
	if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
		reply(w, http.StatusBadRequest, err.Error())
		return
	}

	for len(ws.Grid) < row {
		ws.Grid = append(ws.Grid, []string{})
	}

	for len(ws.Grid[row-1]) < col {
		ws.Grid[row-1] = append(ws.Grid[row-1], "")
	}

	ws.Grid[row-1][col-1] = fmt.Sprintf("%v", rq.Values[0][0])

	write(w, sheets.UpdateValuesResponse{
		SpreadsheetId: doc.ID,
		UpdatedRange:  area,
		UpdatedCells:  1,
	})
}

// lookup splits a range like 'Sheet1'!C2 into its worksheet and cell.
func (d *Document) lookup(area string) (*Worksheet, string, bool) {
	title, cell := area, ""

	if strings.HasPrefix(area, "'") {
		end := strings.LastIndex(area, "'")
		if end <= 0 {
			return nil, "", false
		}

		title = strings.ReplaceAll(area[1:end], "''", "'")
		cell = strings.TrimPrefix(area[end+1:], "!")
	} else if t, c, ok := strings.Cut(area, "!"); ok {
		title, cell = t, c
	}

	for _, ws := range d.Worksheets {
		if ws.Title == title {
			return ws, cell, true
		}
	}

	return nil, "", false
}

func parseA1(cell string) (int, int, bool) {
	match := regexp.MustCompile(`^([A-Z]+)([0-9]+)$`).FindStringSubmatch(cell)
	if len(match) < 3 {
		return 0, 0, false
	}

	col := 0
	for _, ch := range match[1] {
		col = col*26 + int(ch-'A'+1)
	}

	row, _ := strconv.Atoi(match[2])

	return row, col, true
}

func queryName(q string) string {
	_, rest, ok := strings.Cut(q, "name = '")
	if !ok {
		return ""
	}

	var name strings.Builder
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '\\':
			if i+1 < len(rest) {
				i++
				name.WriteByte(rest[i])
			}
		case '\'':
			return name.String()
		default:
			name.WriteByte(rest[i])
		}
	}

	return name.String()
}

// trim drops trailing empty cells and rows, as the Sheets API does.
func trim(grid [][]string) [][]string {
	trimmed := [][]string{}
	for _, row := range grid {
		n := len(row)
		for n > 0 && row[n-1] == "" {
			n--
		}
		trimmed = append(trimmed, row[:n])
	}

	n := len(trimmed)
	for n > 0 && len(trimmed[n-1]) == 0 {
		n--
	}

	return trimmed[:n]
}

func write(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func reply(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    status,
			"message": message,
		},
	})
}
