package commands

import (
	"context"
	"strings"

	"github.com/uhppoted/uhppoted-app-sheetdb/session"
)

func (c *command) authorise(ctx context.Context) (*session.Session, error) {
	if c.debug {
		debugf("credentials:%s", c.credentials)
	}

	s, err := session.Authorize(ctx, c.credentials, session.DefaultScopes, c.options...)
	if err != nil {
		return nil, err
	}

	if c.debug {
		debugf("authorised as %s", s.Email())
	}

	return s, nil
}

func (c *command) resolve(ctx context.Context, s *session.Session) (*session.Sheet, error) {
	var spreadsheet *session.Spreadsheet
	var err error

	if strings.TrimSpace(c.url) != "" {
		spreadsheet, err = s.OpenByURL(ctx, c.url)
	} else {
		spreadsheet, err = s.OpenSpreadsheet(ctx, c.spreadsheet)
	}

	if err != nil {
		return nil, err
	}

	if c.debug {
		debugf("spreadsheet - ID:%s  title:%s  worksheets:%v", spreadsheet.ID, spreadsheet.Title, spreadsheet.Worksheets())
	}

	if strings.TrimSpace(c.worksheet) != "" {
		return spreadsheet.Worksheet(c.worksheet)
	}

	return spreadsheet.Sheet1()
}

// open authorises a session and resolves the configured worksheet.
func (c *command) open(ctx context.Context) (*session.Sheet, error) {
	s, err := c.authorise(ctx)
	if err != nil {
		return nil, err
	}

	return c.resolve(ctx, s)
}
