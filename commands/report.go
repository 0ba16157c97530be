package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/uhppoted/uhppoted-app-sheetdb/session"
)

// stdout is the destination for command status lines.
var stdout io.Writer = color.Output

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
)

// Report writes a descriptive message for an error returned by a command.
func Report(w io.Writer, err error) {
	var cerr *session.CredentialsError
	var nerr *session.SheetNotFoundError
	var ferr *session.CellNotFoundError
	var werr *session.WriteError

	switch {
	case err == nil:
		return

	case errors.As(err, &cerr):
		red.Fprintf(w, "Error: credentials file '%s' not found or invalid (%v)\n", cerr.Path, cerr.Err)
		fmt.Fprintln(w, "       Please place your Google Cloud service account JSON key at that path or use --credentials")

	case errors.As(err, &nerr):
		red.Fprintf(w, "Error: spreadsheet '%s' not found\n", nerr.Name)
		if nerr.Account != "" {
			fmt.Fprintf(w, "       Please make sure the sheet exists and is shared with the service account %s\n", nerr.Account)
		} else {
			fmt.Fprintln(w, "       Please make sure the sheet exists and is shared with the service account")
		}

	case errors.As(err, &ferr):
		yellow.Fprintf(w, "'%s' not found\n", ferr.Value)

	case errors.As(err, &werr):
		red.Fprintf(w, "Error: unable to write to %s (%v)\n", werr.Range, werr.Err)

	default:
		red.Fprintf(w, "An unexpected error occurred: %v\n", err)
	}
}

func okf(format string, args ...any) {
	green.Fprintf(stdout, format+"\n", args...)
}

func noticef(format string, args ...any) {
	yellow.Fprintf(stdout, format+"\n", args...)
}
