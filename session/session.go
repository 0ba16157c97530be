package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const mimeSpreadsheet = "application/vnd.google-apps.spreadsheet"

// DefaultScopes grants read/write access to Google Sheets and to the Google Drive files
// backing them. Drive access is required to resolve a spreadsheet by name.
var DefaultScopes = []string{
	sheets.SpreadsheetsScope,
	drive.DriveScope,
}

// Session is an authorised handle used to resolve spreadsheets.
type Session struct {
	sheets *sheets.Service
	drive  *drive.Service
	email  string
}

// Spreadsheet is a resolved Google Sheets document.
type Spreadsheet struct {
	ID         string
	Title      string
	worksheets []*sheets.SheetProperties
	service    *sheets.Service
}

// Authorize loads a service account credentials file and returns a session authorised
// for the requested scopes (DefaultScopes if nil). Additional client options are applied
// after the authorised HTTP client and may override it.
func Authorize(ctx context.Context, credentials string, scopes []string, opts ...option.ClientOption) (*Session, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, &CredentialsError{Path: credentials, Err: err}
	}

	if len(scopes) == 0 {
		scopes = DefaultScopes
	}

	config, err := google.JWTConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, &CredentialsError{Path: credentials, Err: err}
	} else if config.Email == "" {
		return nil, &CredentialsError{Path: credentials, Err: fmt.Errorf("missing 'client_email'")}
	} else if len(config.PrivateKey) == 0 {
		return nil, &CredentialsError{Path: credentials, Err: fmt.Errorf("missing 'private_key'")}
	}

	options := append([]option.ClientOption{option.WithHTTPClient(config.Client(ctx))}, opts...)

	s, err := NewSession(ctx, options...)
	if err != nil {
		return nil, err
	}

	s.email = config.Email

	return s, nil
}

// NewSession creates the Sheets and Drive clients for an already authorised transport.
func NewSession(ctx context.Context, opts ...option.ClientOption) (*Session, error) {
	gsheets, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	gdrive, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Drive client (%w)", err)
	}

	return &Session{
		sheets: gsheets,
		drive:  gdrive,
	}, nil
}

// Email returns the service account e-mail address, i.e. the identity spreadsheets
// need to be shared with.
func (s *Session) Email() string {
	return s.email
}

// Open returns the first worksheet of the spreadsheet with exactly the given name.
func (s *Session) Open(ctx context.Context, name string) (*Sheet, error) {
	spreadsheet, err := s.OpenSpreadsheet(ctx, name)
	if err != nil {
		return nil, err
	}

	return spreadsheet.Sheet1()
}

// OpenSpreadsheet resolves a spreadsheet by display name. The match is exact and
// case-sensitive; if several spreadsheets share the name the first one listed by
// Drive is returned.
func (s *Session) OpenSpreadsheet(ctx context.Context, name string) (*Spreadsheet, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &SheetNotFoundError{Name: name, Account: s.email}
	}

	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", escape(name), mimeSpreadsheet)
	page := ""

	for {
		call := s.drive.Files.List().
			Q(q).
			Fields("nextPageToken", "files(id, name)").
			SupportsAllDrives(true).
			IncludeItemsFromAllDrives(true)

		if page != "" {
			call.PageToken(page)
		}

		files, err := call.Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("unable to search for spreadsheet '%s' (%w)", name, err)
		}

		for _, f := range files.Files {
			if f.Name == name {
				return s.openByKey(ctx, f.Id, name)
			}
		}

		if page = files.NextPageToken; page == "" {
			break
		}
	}

	return nil, &SheetNotFoundError{Name: name, Account: s.email}
}

// OpenSpreadsheetByKey resolves a spreadsheet by its ID.
func (s *Session) OpenSpreadsheetByKey(ctx context.Context, key string) (*Spreadsheet, error) {
	return s.openByKey(ctx, key, key)
}

// openByKey fetches the spreadsheet metadata. 'name' is the spreadsheet as the caller
// identified it and is reported in a SheetNotFoundError.
func (s *Session) openByKey(ctx context.Context, key string, name string) (*Spreadsheet, error) {
	if strings.TrimSpace(key) == "" {
		return nil, &SheetNotFoundError{Name: name, Account: s.email}
	}

	response, err := s.sheets.Spreadsheets.Get(key).
		Fields("spreadsheetId", "properties.title", "sheets.properties").
		Context(ctx).
		Do()

	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && (gerr.Code == http.StatusNotFound || gerr.Code == http.StatusForbidden) {
			return nil, &SheetNotFoundError{Name: name, Account: s.email}
		}

		return nil, fmt.Errorf("failed to fetch spreadsheet (%w)", err)
	}

	spreadsheet := Spreadsheet{
		ID:      response.SpreadsheetId,
		service: s.sheets,
	}

	if response.Properties != nil {
		spreadsheet.Title = response.Properties.Title
	}

	for _, sheet := range response.Sheets {
		if sheet.Properties != nil {
			spreadsheet.worksheets = append(spreadsheet.worksheets, sheet.Properties)
		}
	}

	sort.SliceStable(spreadsheet.worksheets, func(i, j int) bool {
		return spreadsheet.worksheets[i].Index < spreadsheet.worksheets[j].Index
	})

	return &spreadsheet, nil
}

// OpenByURL resolves a spreadsheet from its https://docs.google.com/spreadsheets/d/... URL.
func (s *Session) OpenByURL(ctx context.Context, url string) (*Spreadsheet, error) {
	key, err := ParseURL(url)
	if err != nil {
		return nil, err
	}

	return s.openByKey(ctx, key, url)
}

// Sheet1 returns the first worksheet.
func (s *Spreadsheet) Sheet1() (*Sheet, error) {
	if len(s.worksheets) == 0 {
		return nil, fmt.Errorf("spreadsheet '%s' has no worksheets", s.Title)
	}

	return s.sheet(s.worksheets[0]), nil
}

// Worksheet returns the worksheet with the given title, ignoring case and surrounding
// whitespace.
func (s *Spreadsheet) Worksheet(title string) (*Sheet, error) {
	for _, p := range s.worksheets {
		if normalise(p.Title) == normalise(title) {
			return s.sheet(p), nil
		}
	}

	return nil, fmt.Errorf("unable to identify worksheet '%s' in spreadsheet '%s'", title, s.Title)
}

// Worksheets returns the worksheet titles in tab order.
func (s *Spreadsheet) Worksheets() []string {
	titles := []string{}
	for _, p := range s.worksheets {
		titles = append(titles, p.Title)
	}

	return titles
}

func (s *Spreadsheet) sheet(p *sheets.SheetProperties) *Sheet {
	return &Sheet{
		Spreadsheet: s.ID,
		Title:       p.Title,
		ID:          p.SheetId,
		service:     s.service,
	}
}

// escape quotes a value for use as a string literal in a Drive query.
func escape(v string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v)
}
